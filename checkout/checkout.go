package checkout

import (
	"fmt"
	"strings"

	"github.com/jrsteele09/go-storefront-client/catalog"
	"github.com/jrsteele09/go-storefront-client/session"
)

// AddressOption selects between the profile's saved address and one entered
// during checkout.
type AddressOption string

const (
	AddressSaved AddressOption = "saved"
	AddressNew   AddressOption = "new"
)

// PaymentMethod is the closed set of accepted payment methods.
type PaymentMethod string

const (
	PaymentCard     PaymentMethod = "card"
	PaymentDelivery PaymentMethod = "delivery"
)

// Address is a checkout-entered address. Saved addresses come from the
// profile as single strings; new ones are joined in the same shape.
type Address struct {
	AddressLine1 string
	City         string
	State        string
	PostalCode   string
	Country      string
}

// String joins the address fields into the backend's single-string form.
func (a Address) String() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s", a.AddressLine1, a.City, a.State, a.PostalCode, a.Country)
}

func (a Address) complete() bool {
	return a.AddressLine1 != "" && a.City != "" && a.State != "" && a.PostalCode != "" && a.Country != ""
}

// Card holds the entered card fields. Only masked digits ever leave the
// client; the full number is not part of the order payload.
type Card struct {
	Number string
	Expiry string
	CVV    string
}

// MaskedNumber returns the card number reduced to its last four digits.
func (c Card) MaskedNumber() string {
	digits := strings.ReplaceAll(strings.TrimSpace(c.Number), " ", "")
	if len(digits) <= 4 {
		return digits
	}
	return digits[len(digits)-4:]
}

// Details gathers everything the user selects or enters during checkout.
type Details struct {
	ShippingOption AddressOption
	ShippingNew    Address
	BillingOption  AddressOption
	BillingNew     Address
	Payment        PaymentMethod
	Card           Card
}

// Validate checks the checkout form before anything reaches the network.
func (d Details) Validate(profile *session.Profile) error {
	if _, err := resolveAddress(d.ShippingOption, d.ShippingNew, profile, profileShipping); err != nil {
		return fmt.Errorf("shipping address: %w", err)
	}
	if _, err := resolveAddress(d.BillingOption, d.BillingNew, profile, profileBilling); err != nil {
		return fmt.Errorf("billing address: %w", err)
	}

	switch d.Payment {
	case PaymentCard:
		if d.Card.MaskedNumber() == "" || d.Card.Expiry == "" || d.Card.CVV == "" {
			return fmt.Errorf("card details are incomplete")
		}
	case PaymentDelivery:
	default:
		return fmt.Errorf("unknown payment method %q", d.Payment)
	}
	return nil
}

type profileAddress func(*session.Profile) string

func profileShipping(p *session.Profile) string { return p.ShippingAddress }
func profileBilling(p *session.Profile) string  { return p.BillingAddress }

func resolveAddress(option AddressOption, entered Address, profile *session.Profile, saved profileAddress) (string, error) {
	switch option {
	case AddressSaved:
		if profile == nil || saved(profile) == "" {
			return "", fmt.Errorf("no saved address on profile")
		}
		return saved(profile), nil
	case AddressNew:
		if !entered.complete() {
			return "", fmt.Errorf("entered address is incomplete")
		}
		return entered.String(), nil
	default:
		return "", fmt.Errorf("unknown address option %q", option)
	}
}

// OrderItem is one cart line reduced to what the order endpoint needs.
type OrderItem struct {
	ProductID string `json:"product"`
	Quantity  int    `json:"quantity"`
	Color     string `json:"color,omitempty"`
	Size      string `json:"size,omitempty"`
}

// OrderPayload is the body of POST /orders/.
type OrderPayload struct {
	UserID          string      `json:"user"`
	Items           []OrderItem `json:"items"`
	PaymentMethod   string      `json:"payment_method"`
	ShippingAddress string      `json:"shipping_address"`
	BillingAddress  string      `json:"billing_address"`
	CardLast4       string      `json:"card_last4,omitempty"`
	CardExpiry      string      `json:"card_expiry,omitempty"`
}

// BuildOrderPayload assembles the order request from the authenticated user,
// the server-authoritative cart, and the validated checkout details.
func BuildOrderPayload(user *session.User, profile *session.Profile, cart catalog.Cart, details Details) (OrderPayload, error) {
	if user == nil {
		return OrderPayload{}, fmt.Errorf("no authenticated user")
	}
	if cart.Empty() {
		return OrderPayload{}, fmt.Errorf("cart is empty")
	}
	if err := details.Validate(profile); err != nil {
		return OrderPayload{}, err
	}

	shipping, _ := resolveAddress(details.ShippingOption, details.ShippingNew, profile, profileShipping)
	billing, _ := resolveAddress(details.BillingOption, details.BillingNew, profile, profileBilling)

	items := make([]OrderItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Color:     item.Color,
			Size:      item.Size,
		})
	}

	payload := OrderPayload{
		UserID:          user.ID,
		Items:           items,
		PaymentMethod:   string(details.Payment),
		ShippingAddress: shipping,
		BillingAddress:  billing,
	}
	if details.Payment == PaymentCard {
		payload.CardLast4 = details.Card.MaskedNumber()
		payload.CardExpiry = details.Card.Expiry
	}
	return payload, nil
}
