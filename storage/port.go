// Package storage provides the persistence port used by the stateful stores.
// Each store serializes its entire current value on every change; the port is
// append/overwrite only, never read-modify-write.
package storage

// Persisted key names, partitioned by owning store. The cache layer has no
// keys here on purpose: cached responses must never survive a reload.
const (
	KeyAccessToken  = "auth.access"
	KeyRefreshToken = "auth.refresh"

	KeyProducts   = "products.products"
	KeyCategories = "products.categories"
	KeyCart       = "products.cart"
	KeyOrders     = "products.orders"

	KeyWishlist = "wishlist.items"
)

// Port defines the interface for persisted client storage. Implementations
// may write to disk, a browser-like key-value store, or stay in memory for
// tests.
type Port interface {
	// Load retrieves the value stored under key. The second return value
	// reports whether the key was present.
	Load(key string) ([]byte, bool, error)

	// Save stores the value under key, overwriting any previous value.
	Save(key string, value []byte) error

	// Remove deletes the key. Removing a missing key is not an error.
	Remove(key string) error
}
