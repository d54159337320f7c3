package storefront

import (
	"context"

	"github.com/jrsteele09/go-storefront-client/api"
	"github.com/jrsteele09/go-storefront-client/catalog"
	"github.com/jrsteele09/go-storefront-client/checkout"
	clienterrors "github.com/jrsteele09/go-storefront-client/internal/errors"
	"github.com/jrsteele09/go-storefront-client/notify"
)

// CartTotals derives the display totals from the server-authoritative cart
// subtotal. The result is never persisted.
func (c *Client) CartTotals() checkout.Totals {
	return checkout.ComputeTotals(c.stores.Catalog.Cart().TotalPrice)
}

// PlaceOrder validates the checkout details, places the order, and on
// success clears the cart (remote and local) and refreshes the order
// history. A failed order leaves the cart exactly as it was.
func (c *Client) PlaceOrder(ctx context.Context, details checkout.Details) (*catalog.Order, error) {
	if !c.stores.Session.Authenticated() {
		return nil, clienterrors.ErrNotAuthenticated
	}

	user := c.stores.Session.User()
	profile := c.stores.Session.Profile()
	cart := c.stores.Catalog.Cart()

	payload, err := checkout.BuildOrderPayload(user, profile, cart, details)
	if err != nil {
		return nil, clienterrors.NewValidationError("checkout", err.Error())
	}

	data, err := c.cache.Mutate(ctx, api.EndpointCreateOrder, payload)
	if err != nil {
		c.fail(clienterrors.OpPlaceOrder, err)
		return nil, err
	}
	order, ok := data.(*catalog.Order)
	if !ok || order == nil {
		return nil, clienterrors.Wrapf(clienterrors.ErrInternal, "[Client.PlaceOrder] unexpected response %T", data)
	}

	// The order is placed; clearing the cart is cleanup. A failure here is
	// reported but does not undo the order.
	if _, err := c.cache.Mutate(ctx, api.EndpointClearCart, nil); err != nil {
		c.notifier.Push(notify.LevelWarning, clienterrors.OperationMessage(clienterrors.OpUpdateCart, err))
	}
	c.stores.Catalog.ClearCart()

	if err := c.LoadOrders(ctx); err != nil {
		c.log.Warn().Err(err).Msg("order placed but order history refresh failed")
	}

	c.notifier.Push(notify.LevelSuccess, "Order placed successfully!")
	c.log.Info().Str("order", order.ID).Msg("order placed")
	return order, nil
}
