package api

import (
	"context"
	"fmt"

	"github.com/jrsteele09/go-storefront-client/checkout"
	clienterrors "github.com/jrsteele09/go-storefront-client/internal/errors"
)

// Invoke dispatches an endpoint ID with its typed arguments to the matching
// client method. The cache layer uses it as its fetcher, so every cacheable
// read and every tag-invalidating mutation must be covered here. Login and
// registration stay off this path on purpose: their responses are never
// cached.
func Invoke(ctx context.Context, client *Client, endpoint EndpointID, args any) (any, error) {
	switch endpoint {
	case EndpointGetCategories:
		return client.GetCategories(ctx)

	case EndpointGetCategory:
		id, err := stringArg(endpoint, args)
		if err != nil {
			return nil, err
		}
		return client.GetCategory(ctx, id)

	case EndpointGetProducts:
		return client.GetProducts(ctx)

	case EndpointGetProduct:
		id, err := stringArg(endpoint, args)
		if err != nil {
			return nil, err
		}
		return client.GetProduct(ctx, id)

	case EndpointGetCart:
		return client.GetCart(ctx)

	case EndpointAddToCart:
		req, err := typedArg[AddToCartRequest](endpoint, args)
		if err != nil {
			return nil, err
		}
		return nil, client.AddToCart(ctx, req)

	case EndpointCreateCartItem:
		req, err := typedArg[CreateCartItemRequest](endpoint, args)
		if err != nil {
			return nil, err
		}
		return nil, client.CreateCartItem(ctx, req)

	case EndpointUpdateCartItem:
		req, err := typedArg[UpdateCartItemArgs](endpoint, args)
		if err != nil {
			return nil, err
		}
		return nil, client.UpdateCartItem(ctx, req)

	case EndpointDeleteCartItem:
		id, err := stringArg(endpoint, args)
		if err != nil {
			return nil, err
		}
		return nil, client.DeleteCartItem(ctx, id)

	case EndpointClearCart:
		return nil, client.ClearCart(ctx)

	case EndpointGetOrders:
		return client.GetOrders(ctx)

	case EndpointGetOrder:
		id, err := stringArg(endpoint, args)
		if err != nil {
			return nil, err
		}
		return client.GetOrder(ctx, id)

	case EndpointCreateOrder:
		payload, err := typedArg[checkout.OrderPayload](endpoint, args)
		if err != nil {
			return nil, err
		}
		return client.CreateOrder(ctx, payload)

	case EndpointGetProfile:
		return client.GetProfile(ctx)

	case EndpointCreateProfile:
		req, err := typedArg[ProfileRequest](endpoint, args)
		if err != nil {
			return nil, err
		}
		return client.CreateProfile(ctx, req)

	case EndpointPatchProfile:
		patch, err := typedArg[ProfilePatchArgs](endpoint, args)
		if err != nil {
			return nil, err
		}
		return client.PatchProfile(ctx, patch.ID, patch.Request)

	default:
		return nil, clienterrors.Wrapf(clienterrors.ErrUnknownEndpoint, "%s", endpoint)
	}
}

// ProfilePatchArgs identifies the profile being patched and the fields to
// change.
type ProfilePatchArgs struct {
	ID      string         `json:"id"`
	Request ProfileRequest `json:"request"`
}

func stringArg(endpoint EndpointID, args any) (string, error) {
	id, ok := args.(string)
	if !ok || id == "" {
		return "", fmt.Errorf("endpoint %s requires a string ID argument, got %T", endpoint, args)
	}
	return id, nil
}

func typedArg[T any](endpoint EndpointID, args any) (T, error) {
	typed, ok := args.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("endpoint %s requires %T arguments, got %T", endpoint, zero, args)
	}
	return typed, nil
}
