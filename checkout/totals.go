// Package checkout derives display totals and assembles order payloads. The
// cart subtotal is always the backend's figure; only tax and shipping are
// computed here, at render time, and never persisted.
package checkout

// Pricing constants. Changing these cannot desynchronize stored data because
// derived totals are recomputed from the authoritative subtotal every time.
const (
	TaxRate               = 0.08
	FreeShippingThreshold = 1000.00
	StandardShipping      = 5.00
)

// Totals is the display breakdown of an order total.
type Totals struct {
	Subtotal float64
	Shipping float64
	Tax      float64
	Total    float64
}

// Shipping returns the shipping fee for a subtotal: free for an empty cart
// or above the free-shipping threshold, otherwise the flat standard fee.
func Shipping(subtotal float64) float64 {
	if subtotal == 0 || subtotal > FreeShippingThreshold {
		return 0
	}
	return StandardShipping
}

// ComputeTotals derives the full breakdown from a cart subtotal.
func ComputeTotals(subtotal float64) Totals {
	tax := subtotal * TaxRate
	shipping := Shipping(subtotal)
	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}
