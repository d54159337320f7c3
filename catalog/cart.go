package catalog

import "time"

// CartItem is a single cart line as the backend reports it. TotalPrice is
// the line total computed by the backend; the client never recomputes it.
type CartItem struct {
	ID           string  `json:"id"`
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductImage string  `json:"product_image,omitempty"`
	Color        string  `json:"color,omitempty"`
	Size         string  `json:"size,omitempty"`
	Quantity     int     `json:"quantity"`
	TotalPrice   float64 `json:"total_price"`
}

// Cart is the current user's cart snapshot. An empty Cart (zero ID, no
// items) is a valid state, not an error.
type Cart struct {
	ID         string     `json:"id,omitempty"`
	Items      []CartItem `json:"items,omitempty"`
	TotalPrice float64    `json:"total_price"`
	CreatedAt  time.Time  `json:"created_at,omitempty"`
	UpdatedAt  time.Time  `json:"updated_at,omitempty"`
}

// Empty reports whether the cart holds no items.
func (c Cart) Empty() bool {
	return len(c.Items) == 0
}

// Item returns the cart line with the given ID, if present.
func (c Cart) Item(id string) (CartItem, bool) {
	for _, item := range c.Items {
		if item.ID == id {
			return item, true
		}
	}
	return CartItem{}, false
}

// Order is a placed order as returned by GET /orders.
type Order struct {
	ID              string     `json:"id"`
	PlacedAt        time.Time  `json:"placed_at"`
	Status          string     `json:"status"`
	BillingAddress  string     `json:"billing_address"`
	ShippingAddress string     `json:"shipping_address"`
	PaymentMethod   string     `json:"payment_method"`
	Items           []CartItem `json:"items,omitempty"`
	TotalPrice      float64    `json:"total_price"`
}
