package session

import (
	"fmt"
	"strings"
	"unicode"
)

// User is the authenticated account, set after a successful login or
// registration. It is deliberately small: everything else lives in Profile.
type User struct {
	ID       string `json:"id,omitempty"`       // Unique identifier for the user
	Email    string `json:"email,omitempty"`    // User's email address
	Username string `json:"username,omitempty"` // Unique username
}

// Profile holds the user's storefront profile. The backend exposes one
// profile per user; a one-element list response is normalized to this shape
// at the API boundary.
type Profile struct {
	ID              string `json:"id,omitempty"`
	FirstName       string `json:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"`
	BillingAddress  string `json:"billing_address,omitempty"`
	ShippingAddress string `json:"shipping_address,omitempty"`
	PhoneNumber     string `json:"phone_number,omitempty"`
}

const (
	usernameMinLength = 3
	passwordMinLength = 6
)

// ValidateEmail performs a basic email format check.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("email is required")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return fmt.Errorf("invalid email format")
	}
	if !strings.Contains(email[at:], ".") {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

// ValidateCredentials validates login credentials before they reach the
// network.
func ValidateCredentials(email, password string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// ValidateRegistration checks registration fields:
// - username of at least 3 characters
// - password of at least 6 characters containing a letter and a number
func ValidateRegistration(email, username, password string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	if len(strings.TrimSpace(username)) < usernameMinLength {
		return fmt.Errorf("username must be at least %d characters long", usernameMinLength)
	}
	if len(password) < passwordMinLength {
		return fmt.Errorf("password must be at least %d characters long", passwordMinLength)
	}

	var hasLetter, hasNumber bool
	for _, char := range password {
		if unicode.IsLetter(char) {
			hasLetter = true
		} else if unicode.IsDigit(char) {
			hasNumber = true
		}
	}
	if !hasLetter {
		return fmt.Errorf("password must contain at least one letter")
	}
	if !hasNumber {
		return fmt.Errorf("password must contain at least one number")
	}
	return nil
}
