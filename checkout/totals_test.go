package checkout_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-storefront-client/checkout"
)

func TestComputeTotalsStandardShipping(t *testing.T) {
	totals := checkout.ComputeTotals(250.00)

	require.Equal(t, 250.00, totals.Subtotal)
	require.Equal(t, checkout.StandardShipping, totals.Shipping)
	require.InDelta(t, 20.00, totals.Tax, 0.001)
	require.InDelta(t, 275.00, totals.Total, 0.001)
}

func TestComputeTotalsFreeShippingAboveThreshold(t *testing.T) {
	totals := checkout.ComputeTotals(1200.00)

	require.Equal(t, 0.0, totals.Shipping)
	require.InDelta(t, 96.00, totals.Tax, 0.001)
	require.InDelta(t, 1296.00, totals.Total, 0.001)
}

func TestComputeTotalsEmptyCart(t *testing.T) {
	totals := checkout.ComputeTotals(0)

	require.Equal(t, 0.0, totals.Subtotal)
	require.Equal(t, 0.0, totals.Shipping)
	require.Equal(t, 0.0, totals.Tax)
	require.Equal(t, 0.0, totals.Total)
}

func TestShippingAtExactThreshold(t *testing.T) {
	// The threshold itself still pays the flat fee; only strictly above is
	// free.
	require.Equal(t, checkout.StandardShipping, checkout.Shipping(checkout.FreeShippingThreshold))
	require.Equal(t, 0.0, checkout.Shipping(checkout.FreeShippingThreshold+0.01))
}

func TestTotalIsSubtotalPlusShippingPlusTax(t *testing.T) {
	for _, subtotal := range []float64{0, 4.99, 250, 999.99, 1000, 1000.01, 5000} {
		totals := checkout.ComputeTotals(subtotal)
		expected := subtotal + checkout.Shipping(subtotal) + subtotal*checkout.TaxRate
		require.InDelta(t, expected, totals.Total, 0.0001)
	}
}
