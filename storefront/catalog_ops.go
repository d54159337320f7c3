package storefront

import (
	"context"

	"github.com/jrsteele09/go-storefront-client/api"
	"github.com/jrsteele09/go-storefront-client/catalog"
	"github.com/jrsteele09/go-storefront-client/filter"
	clienterrors "github.com/jrsteele09/go-storefront-client/internal/errors"
	"github.com/jrsteele09/go-storefront-client/notify"
	"github.com/jrsteele09/go-storefront-client/session"
)

// LoadCatalog fetches the product list through the cache and copies it into
// the catalog store. On first load it also seeds the filter selections from
// the catalog's in-stock variants, so an untouched filter matches
// everything.
func (c *Client) LoadCatalog(ctx context.Context) error {
	c.ensureSubscribed(api.EndpointGetProducts, nil)

	entry, err := c.cache.Fetch(ctx, api.EndpointGetProducts, nil)
	if err != nil {
		c.fail(clienterrors.OpFetchProducts, err)
		return err
	}
	products, ok := entry.Data.([]catalog.Product)
	if !ok {
		return clienterrors.Wrapf(clienterrors.ErrInternal, "[Client.LoadCatalog] unexpected cache data %T", entry.Data)
	}

	if err := c.stores.Catalog.SetProducts(products); err != nil {
		return err
	}
	c.seedFilterOptions(products)
	return nil
}

// LoadCategories fetches the category list into the catalog store.
func (c *Client) LoadCategories(ctx context.Context) error {
	entry, err := c.cache.Fetch(ctx, api.EndpointGetCategories, nil)
	if err != nil {
		c.fail(clienterrors.OpFetchProducts, err)
		return err
	}
	categories, ok := entry.Data.([]catalog.Category)
	if !ok {
		return clienterrors.Wrapf(clienterrors.ErrInternal, "[Client.LoadCategories] unexpected cache data %T", entry.Data)
	}
	return c.stores.Catalog.SetCategories(categories)
}

// LoadCart fetches the current user's cart through the cache into the
// catalog store.
func (c *Client) LoadCart(ctx context.Context) error {
	if !c.stores.Session.Authenticated() {
		return clienterrors.ErrNotAuthenticated
	}
	c.ensureSubscribed(api.EndpointGetCart, nil)
	return c.syncCart(ctx, clienterrors.OpFetchCart)
}

// LoadOrders fetches the order history through the cache into the catalog
// store.
func (c *Client) LoadOrders(ctx context.Context) error {
	if !c.stores.Session.Authenticated() {
		return clienterrors.ErrNotAuthenticated
	}
	c.ensureSubscribed(api.EndpointGetOrders, nil)

	entry, err := c.cache.Fetch(ctx, api.EndpointGetOrders, nil)
	if err != nil {
		c.fail(clienterrors.OpFetchOrders, err)
		return err
	}
	orders, ok := entry.Data.([]catalog.Order)
	if !ok {
		return clienterrors.Wrapf(clienterrors.ErrInternal, "[Client.LoadOrders] unexpected cache data %T", entry.Data)
	}
	return c.stores.Catalog.SetOrders(orders)
}

// AddToCart adds a product to the cart and synchronizes the snapshot from
// the backend's refetched cart. On failure the prior snapshot stays
// displayed.
func (c *Client) AddToCart(ctx context.Context, req api.AddToCartRequest) error {
	return c.mutateCart(ctx, clienterrors.OpAddToCart, api.EndpointAddToCart, req)
}

// IncrementCartItem raises a cart line's quantity by one. Callers must
// serialize mutations per cart line (or accept last-write-wins on the
// refetch).
func (c *Client) IncrementCartItem(ctx context.Context, itemID string) error {
	return c.mutateCart(ctx, clienterrors.OpUpdateCart, api.EndpointUpdateCartItem,
		api.UpdateCartItemArgs{ID: itemID, Action: api.CartItemIncrement})
}

// DecrementCartItem lowers a cart line's quantity by one.
func (c *Client) DecrementCartItem(ctx context.Context, itemID string) error {
	return c.mutateCart(ctx, clienterrors.OpUpdateCart, api.EndpointUpdateCartItem,
		api.UpdateCartItemArgs{ID: itemID, Action: api.CartItemDecrement})
}

// RemoveCartItem removes a line via the action endpoint.
func (c *Client) RemoveCartItem(ctx context.Context, itemID string) error {
	return c.mutateCart(ctx, clienterrors.OpRemoveFromCart, api.EndpointUpdateCartItem,
		api.UpdateCartItemArgs{ID: itemID, Action: api.CartItemRemove})
}

// DeleteCartItem removes a line via DELETE.
func (c *Client) DeleteCartItem(ctx context.Context, itemID string) error {
	return c.mutateCart(ctx, clienterrors.OpRemoveFromCart, api.EndpointDeleteCartItem, itemID)
}

// ClearCart empties the cart remotely, then clears the local snapshot.
func (c *Client) ClearCart(ctx context.Context) error {
	if !c.stores.Session.Authenticated() {
		return clienterrors.ErrNotAuthenticated
	}
	if _, err := c.cache.Mutate(ctx, api.EndpointClearCart, nil); err != nil {
		c.fail(clienterrors.OpUpdateCart, err)
		return err
	}
	c.stores.Catalog.ClearCart()
	return nil
}

// mutateCart runs a cart mutation through the cache (which invalidates the
// Cart tag on success) and writes the refetched cart into the store. The
// store only ever receives the backend's snapshot; quantities are never
// adjusted locally.
func (c *Client) mutateCart(ctx context.Context, op clienterrors.Operation, endpoint api.EndpointID, args any) error {
	if !c.stores.Session.Authenticated() {
		return clienterrors.ErrNotAuthenticated
	}
	if _, err := c.cache.Mutate(ctx, endpoint, args); err != nil {
		c.fail(op, err)
		return err
	}
	return c.syncCart(ctx, op)
}

func (c *Client) syncCart(ctx context.Context, op clienterrors.Operation) error {
	entry, err := c.cache.Fetch(ctx, api.EndpointGetCart, nil)
	if err != nil {
		c.fail(op, err)
		return err
	}
	cart, ok := entry.Data.(catalog.Cart)
	if !ok {
		return clienterrors.Wrapf(clienterrors.ErrInternal, "[Client.syncCart] unexpected cache data %T", entry.Data)
	}
	return c.stores.Catalog.SetCart(cart)
}

// LoadProfile fetches the profile through the cache into the session store.
func (c *Client) LoadProfile(ctx context.Context) error {
	if !c.stores.Session.Authenticated() {
		return clienterrors.ErrNotAuthenticated
	}
	c.ensureSubscribed(api.EndpointGetProfile, nil)

	entry, err := c.cache.Fetch(ctx, api.EndpointGetProfile, nil)
	if err != nil {
		c.fail(clienterrors.OpUpdateProfile, err)
		return err
	}
	profile, ok := entry.Data.(*session.Profile)
	if !ok {
		return clienterrors.Wrapf(clienterrors.ErrInternal, "[Client.LoadProfile] unexpected cache data %T", entry.Data)
	}
	c.stores.Session.SetProfile(profile)
	return nil
}

// UpdateProfile patches profile fields and replaces the stored profile with
// the backend's response.
func (c *Client) UpdateProfile(ctx context.Context, req api.ProfileRequest) error {
	if !c.stores.Session.Authenticated() {
		return clienterrors.ErrNotAuthenticated
	}
	profile := c.stores.Session.Profile()
	if profile == nil {
		return clienterrors.ErrProfileNotLoaded
	}

	data, err := c.cache.Mutate(ctx, api.EndpointPatchProfile, api.ProfilePatchArgs{ID: profile.ID, Request: req})
	if err != nil {
		c.fail(clienterrors.OpUpdateProfile, err)
		return err
	}
	if updated, ok := data.(*session.Profile); ok && updated != nil {
		c.stores.Session.SetProfile(updated)
	}
	return nil
}

// CreateProfile creates the user's profile.
func (c *Client) CreateProfile(ctx context.Context, req api.ProfileRequest) error {
	if !c.stores.Session.Authenticated() {
		return clienterrors.ErrNotAuthenticated
	}
	data, err := c.cache.Mutate(ctx, api.EndpointCreateProfile, req)
	if err != nil {
		c.fail(clienterrors.OpUpdateProfile, err)
		return err
	}
	if created, ok := data.(*session.Profile); ok && created != nil {
		c.stores.Session.SetProfile(created)
	}
	return nil
}

// ToggleWishlist flips a product's membership and notifies.
func (c *Client) ToggleWishlist(productID string) bool {
	added := c.stores.Wishlist.Toggle(productID)
	if added {
		c.notifier.Push(notify.LevelSuccess, "Added to wishlist.")
	} else {
		c.notifier.Push(notify.LevelInfo, "Removed from wishlist.")
	}
	return added
}

// seedFilterOptions selects every in-stock color and storage size present
// in the catalog when the filter has no selections yet.
func (c *Client) seedFilterOptions(products []catalog.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.criteria.Colors) > 0 || len(c.criteria.Storages) > 0 {
		return
	}

	var colors, storages []string
	seenColors := make(map[string]struct{})
	seenStorages := make(map[string]struct{})
	for _, p := range products {
		for _, color := range p.InStockColors() {
			if _, ok := seenColors[color]; !ok {
				seenColors[color] = struct{}{}
				colors = append(colors, color)
			}
		}
		for _, size := range p.InStockStorages() {
			if _, ok := seenStorages[size]; !ok {
				seenStorages[size] = struct{}{}
				storages = append(storages, size)
			}
		}
	}
	c.criteria = filter.NewCriteria(colors, storages)
}

func resetCriteria() filter.Criteria {
	return filter.NewCriteria(nil, nil)
}
