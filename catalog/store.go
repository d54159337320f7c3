package catalog

import (
	"encoding/json"
	"sync"

	"github.com/pkg/errors"

	"github.com/jrsteele09/go-storefront-client/storage"
)

// Store holds the last-fetched catalog, cart, and order snapshots. Every
// setter replaces the whole value and serializes it to the persistence port,
// so the persisted copy always matches the in-memory one.
type Store struct {
	mu         sync.RWMutex
	products   []Product
	categories []Category
	cart       Cart
	orders     []Order

	persistence storage.Port
}

// NewStore creates a catalog store backed by the given persistence port and
// rehydrates any persisted snapshots.
func NewStore(persistence storage.Port) (*Store, error) {
	if persistence == nil {
		return nil, errors.New("[catalog.NewStore] persistence port is required")
	}
	s := &Store{persistence: persistence}
	if err := s.rehydrate(); err != nil {
		return nil, errors.Wrap(err, "[catalog.NewStore] rehydrate")
	}
	return s, nil
}

func (s *Store) rehydrate() error {
	if err := s.load(storage.KeyProducts, &s.products); err != nil {
		return err
	}
	if err := s.load(storage.KeyCategories, &s.categories); err != nil {
		return err
	}
	if err := s.load(storage.KeyCart, &s.cart); err != nil {
		return err
	}
	return s.load(storage.KeyOrders, &s.orders)
}

func (s *Store) load(key string, target any) error {
	data, ok, err := s.persistence.Load(key)
	if err != nil {
		return errors.Wrapf(err, "load %s", key)
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal(data, target); err != nil {
		// A corrupt persisted snapshot is dropped rather than carried; the
		// next fetch rewrites it.
		return s.persistence.Remove(key)
	}
	return nil
}

func (s *Store) save(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "marshal %s", key)
	}
	return s.persistence.Save(key, data)
}

// SetProducts replaces the product snapshot.
func (s *Store) SetProducts(products []Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = products
	return errors.Wrap(s.save(storage.KeyProducts, products), "[Store.SetProducts]")
}

// SetCategories replaces the category snapshot.
func (s *Store) SetCategories(categories []Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.categories = categories
	return errors.Wrap(s.save(storage.KeyCategories, categories), "[Store.SetCategories]")
}

// SetCart replaces the cart snapshot with the backend's response. This is
// the only way the cart changes: the store never increments or decrements
// quantities on its own.
func (s *Store) SetCart(cart Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = cart
	return errors.Wrap(s.save(storage.KeyCart, cart), "[Store.SetCart]")
}

// SetOrders replaces the order-history snapshot.
func (s *Store) SetOrders(orders []Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = orders
	return errors.Wrap(s.save(storage.KeyOrders, orders), "[Store.SetOrders]")
}

// ClearCart empties the cart snapshot and its persisted copy. Called after
// a successful checkout.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = Cart{}
	_ = s.persistence.Remove(storage.KeyCart)
}

// Reset clears products, categories, cart, and orders together with their
// persisted copies. Part of the session boundary.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = nil
	s.categories = nil
	s.cart = Cart{}
	s.orders = nil

	_ = s.persistence.Remove(storage.KeyProducts)
	_ = s.persistence.Remove(storage.KeyCategories)
	_ = s.persistence.Remove(storage.KeyCart)
	_ = s.persistence.Remove(storage.KeyOrders)
}

// Products returns the current product snapshot.
func (s *Store) Products() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products
}

// Categories returns the current category snapshot.
func (s *Store) Categories() []Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.categories
}

// Cart returns the current cart snapshot.
func (s *Store) Cart() Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart
}

// Orders returns the current order-history snapshot.
func (s *Store) Orders() []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.orders
}

// Order returns a single order from the snapshot by ID.
func (s *Store) Order(id string) (Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return Order{}, false
}
