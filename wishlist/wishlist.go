// Package wishlist holds the user's persisted set of favorite product IDs.
package wishlist

import (
	"encoding/json"
	"sort"
	"sync"

	"github.com/pkg/errors"

	"github.com/jrsteele09/go-storefront-client/storage"
)

// Store is a persisted product-ID set.
type Store struct {
	mu    sync.RWMutex
	items map[string]struct{}

	persistence storage.Port
}

// NewStore creates a wishlist store and rehydrates it from the persistence
// port.
func NewStore(persistence storage.Port) (*Store, error) {
	if persistence == nil {
		return nil, errors.New("[wishlist.NewStore] persistence port is required")
	}
	s := &Store{
		items:       make(map[string]struct{}),
		persistence: persistence,
	}

	data, ok, err := persistence.Load(storage.KeyWishlist)
	if err != nil {
		return nil, errors.Wrap(err, "[wishlist.NewStore] load")
	}
	if ok {
		var ids []string
		if err := json.Unmarshal(data, &ids); err == nil {
			for _, id := range ids {
				s.items[id] = struct{}{}
			}
		}
	}
	return s, nil
}

// Add puts a product on the wishlist.
func (s *Store) Add(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[productID] = struct{}{}
	s.persist()
}

// Remove takes a product off the wishlist.
func (s *Store) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, productID)
	s.persist()
}

// Toggle flips a product's wishlist membership and reports the new state.
func (s *Store) Toggle(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[productID]; ok {
		delete(s.items, productID)
		s.persist()
		return false
	}
	s.items[productID] = struct{}{}
	s.persist()
	return true
}

// Contains reports whether a product is on the wishlist.
func (s *Store) Contains(productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.items[productID]
	return ok
}

// IDs returns the wishlisted product IDs in stable order.
func (s *Store) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.items))
	for id := range s.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Clear empties the wishlist and its persisted copy. Part of the session
// boundary.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make(map[string]struct{})
	_ = s.persistence.Remove(storage.KeyWishlist)
}

// persist serializes the whole set. Callers hold the write lock.
func (s *Store) persist() {
	ids := make([]string, 0, len(s.items))
	for id := range s.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	data, err := json.Marshal(ids)
	if err != nil {
		return
	}
	_ = s.persistence.Save(storage.KeyWishlist, data)
}
