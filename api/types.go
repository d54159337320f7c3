package api

import (
	"fmt"

	"github.com/jrsteele09/go-storefront-client/session"
)

// CartItemAction is the closed action set accepted by PATCH /cart-item/{id}/.
type CartItemAction string

const (
	CartItemIncrement CartItemAction = "increment"
	CartItemDecrement CartItemAction = "decrement"
	CartItemRemove    CartItemAction = "remove"
)

// Validate rejects actions outside the closed set before they reach the
// network.
func (a CartItemAction) Validate() error {
	switch a {
	case CartItemIncrement, CartItemDecrement, CartItemRemove:
		return nil
	default:
		return fmt.Errorf("invalid cart item action %q", a)
	}
}

// AddToCartRequest is the body of POST /cart/.
type AddToCartRequest struct {
	ProductID string `json:"product_id"`
	Color     string `json:"color,omitempty"`
	Size      string `json:"size,omitempty"`
	Quantity  int    `json:"quantity"`
}

// CreateCartItemRequest is the body of POST /cart-item/.
type CreateCartItemRequest struct {
	ProductID string `json:"product_id"`
	Color     string `json:"color,omitempty"`
	Size      string `json:"size,omitempty"`
	Quantity  int    `json:"quantity"`
}

// UpdateCartItemArgs identifies a cart line and the action applied to it.
type UpdateCartItemArgs struct {
	ID     string         `json:"id"`
	Action CartItemAction `json:"action"`
}

// LoginRequest is the body of POST auth/login/.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the new session's tokens and user.
type LoginResponse struct {
	Access  string       `json:"access"`
	Refresh string       `json:"refresh"`
	User    session.User `json:"user"`
}

// RegisterRequest is the body of POST auth/users/.
type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// ProfileRequest is the body of POST/PATCH api/user-profile/.
type ProfileRequest struct {
	FirstName       string `json:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"`
	BillingAddress  string `json:"billing_address,omitempty"`
	ShippingAddress string `json:"shipping_address,omitempty"`
	PhoneNumber     string `json:"phone_number,omitempty"`
}
