package api_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-storefront-client/api"
)

func TestReadAndMutationSetsAreDisjoint(t *testing.T) {
	reads := []api.EndpointID{
		api.EndpointGetCategories,
		api.EndpointGetCategory,
		api.EndpointGetProducts,
		api.EndpointGetProduct,
		api.EndpointGetCart,
		api.EndpointGetOrders,
		api.EndpointGetOrder,
		api.EndpointGetProfile,
	}
	mutations := []api.EndpointID{
		api.EndpointAddToCart,
		api.EndpointCreateCartItem,
		api.EndpointUpdateCartItem,
		api.EndpointDeleteCartItem,
		api.EndpointClearCart,
		api.EndpointCreateOrder,
		api.EndpointCreateProfile,
		api.EndpointPatchProfile,
	}

	for _, id := range reads {
		require.True(t, api.IsRead(id), "%s should be a read endpoint", id)
		require.False(t, api.IsMutation(id), "%s should not mutate", id)
	}
	for _, id := range mutations {
		require.True(t, api.IsMutation(id), "%s should be a mutation", id)
		require.False(t, api.IsRead(id), "%s should not be cacheable", id)
	}
}

func TestCartMutationsInvalidateCartTag(t *testing.T) {
	for _, id := range []api.EndpointID{
		api.EndpointAddToCart,
		api.EndpointCreateCartItem,
		api.EndpointUpdateCartItem,
		api.EndpointDeleteCartItem,
		api.EndpointClearCart,
	} {
		require.Equal(t, []api.Tag{api.TagCart}, api.Invalidates(id))
	}
}

func TestProvidedTagsMatchEndpointDomain(t *testing.T) {
	require.Equal(t, []api.Tag{api.TagCart}, api.Provides(api.EndpointGetCart))
	require.Equal(t, []api.Tag{api.TagProduct}, api.Provides(api.EndpointGetProducts))
	require.Equal(t, []api.Tag{api.TagOrders}, api.Provides(api.EndpointGetOrders))
	require.Equal(t, []api.Tag{api.TagUserProfile}, api.Provides(api.EndpointGetProfile))

	// Category reads carry no tag: nothing invalidates them short of a
	// session reset.
	require.Empty(t, api.Provides(api.EndpointGetCategories))
}

func TestOrderCreationDoesNotInvalidateCart(t *testing.T) {
	// Clearing the cart after checkout is an explicit follow-up call, not a
	// side effect of the order mutation.
	require.Equal(t, []api.Tag{api.TagOrders}, api.Invalidates(api.EndpointCreateOrder))
}
