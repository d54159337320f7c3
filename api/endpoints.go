package api

// EndpointID names one backend endpoint for the cache layer.
type EndpointID string

const (
	EndpointGetCategories  EndpointID = "getCategories"
	EndpointGetCategory    EndpointID = "getCategoryById"
	EndpointGetProducts    EndpointID = "getProducts"
	EndpointGetProduct     EndpointID = "getProductById"
	EndpointGetCart        EndpointID = "getCartItemsByUser"
	EndpointAddToCart      EndpointID = "addToCart"
	EndpointCreateCartItem EndpointID = "createCartItem"
	EndpointUpdateCartItem EndpointID = "updateCartItem"
	EndpointDeleteCartItem EndpointID = "deleteCartItem"
	EndpointClearCart      EndpointID = "clearCart"
	EndpointGetOrders      EndpointID = "getOrdersByUser"
	EndpointGetOrder       EndpointID = "getOrderById"
	EndpointCreateOrder    EndpointID = "createOrder"
	EndpointGetProfile     EndpointID = "getCurrentUserProfile"
	EndpointCreateProfile  EndpointID = "createUserProfile"
	EndpointPatchProfile   EndpointID = "patchUserProfile"
)

// Tag is a capability tag in the closed cache taxonomy. Adding a tag is a
// deliberate design decision, not incidental.
type Tag string

const (
	TagCart        Tag = "Cart"
	TagProduct     Tag = "Product"
	TagOrders      Tag = "Orders"
	TagUserProfile Tag = "UserProfile"
)

// provides declares which tags each read endpoint's cached entries carry.
var provides = map[EndpointID][]Tag{
	EndpointGetCategories: nil,
	EndpointGetCategory:   nil,
	EndpointGetProducts:   {TagProduct},
	EndpointGetProduct:    {TagProduct},
	EndpointGetCart:       {TagCart},
	EndpointGetOrders:     {TagOrders},
	EndpointGetOrder:      {TagOrders},
	EndpointGetProfile:    {TagUserProfile},
}

// invalidates declares which tags each mutating endpoint invalidates on
// success. Together with provides this forms the bipartite dependency graph
// driving refetches.
var invalidates = map[EndpointID][]Tag{
	EndpointAddToCart:      {TagCart},
	EndpointCreateCartItem: {TagCart},
	EndpointUpdateCartItem: {TagCart},
	EndpointDeleteCartItem: {TagCart},
	EndpointClearCart:      {TagCart},
	EndpointCreateOrder:    {TagOrders},
	EndpointCreateProfile:  {TagUserProfile},
	EndpointPatchProfile:   {TagUserProfile},
}

// Provides returns the tags carried by entries of a read endpoint.
func Provides(id EndpointID) []Tag {
	return provides[id]
}

// Invalidates returns the tags a mutating endpoint invalidates.
func Invalidates(id EndpointID) []Tag {
	return invalidates[id]
}

// IsMutation reports whether the endpoint mutates remote state.
func IsMutation(id EndpointID) bool {
	_, ok := invalidates[id]
	return ok
}

// IsRead reports whether the endpoint is cacheable.
func IsRead(id EndpointID) bool {
	_, ok := provides[id]
	return ok
}
