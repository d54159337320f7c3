// Package storefront ties the stores, the remote cache, and the API client
// together behind one facade. It owns the session boundary: login,
// registration, and logout reset the session store, the catalog store, and
// the remote cache as a unit.
package storefront

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/jrsteele09/go-storefront-client/api"
	"github.com/jrsteele09/go-storefront-client/apicache"
	"github.com/jrsteele09/go-storefront-client/catalog"
	"github.com/jrsteele09/go-storefront-client/filter"
	clienterrors "github.com/jrsteele09/go-storefront-client/internal/errors"
	"github.com/jrsteele09/go-storefront-client/internal/timer"
	"github.com/jrsteele09/go-storefront-client/notify"
	"github.com/jrsteele09/go-storefront-client/session"
	"github.com/jrsteele09/go-storefront-client/wishlist"
)

// DefaultSearchDebounce is the delay applied to search keystrokes.
const DefaultSearchDebounce = 300 * time.Millisecond

// Stores holds the stateful components the facade coordinates.
type Stores struct {
	Session  *session.Store  // tokens, user, profile
	Catalog  *catalog.Store  // products, cart, orders
	Wishlist *wishlist.Store // favorite product IDs
}

// Client is the storefront facade.
type Client struct {
	api      *api.Client
	cache    *apicache.Cache
	stores   Stores
	notifier *notify.Center
	log      zerolog.Logger

	pageSize  int
	debouncer *timer.Debouncer

	mu         sync.Mutex
	criteria   filter.Criteria
	subscribed map[apicache.Key]struct{}
}

// Option configures the Client.
type Option func(*Client)

// WithLogger attaches a logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithPageSize overrides the catalog page size.
func WithPageSize(pageSize int) Option {
	return func(c *Client) {
		if pageSize > 0 {
			c.pageSize = pageSize
		}
	}
}

// WithSearchDebounce overrides the search debounce delay.
func WithSearchDebounce(delay time.Duration) Option {
	return func(c *Client) {
		c.debouncer = timer.NewDebouncer(delay)
	}
}

// New creates the facade. All dependencies are required.
func New(apiClient *api.Client, cache *apicache.Cache, stores Stores, notifier *notify.Center, options ...Option) (*Client, error) {
	if apiClient == nil {
		return nil, errors.New("[storefront.New] api client is required")
	}
	if cache == nil {
		return nil, errors.New("[storefront.New] cache is required")
	}
	if stores.Session == nil {
		return nil, errors.New("[storefront.New] session store is required")
	}
	if stores.Catalog == nil {
		return nil, errors.New("[storefront.New] catalog store is required")
	}
	if stores.Wishlist == nil {
		return nil, errors.New("[storefront.New] wishlist store is required")
	}
	if notifier == nil {
		return nil, errors.New("[storefront.New] notification center is required")
	}

	c := &Client{
		api:        apiClient,
		cache:      cache,
		stores:     stores,
		notifier:   notifier,
		log:        zerolog.Nop(),
		pageSize:   filter.DefaultPageSize,
		debouncer:  timer.NewDebouncer(DefaultSearchDebounce),
		criteria:   filter.NewCriteria(nil, nil),
		subscribed: make(map[apicache.Key]struct{}),
	}
	for _, opt := range options {
		opt(c)
	}

	// The catalog store may have rehydrated a product snapshot; the filter
	// selections must cover its variants from the start, not only after the
	// next fetch.
	c.seedFilterOptions(stores.Catalog.Products())
	return c, nil
}

// Session returns the session store.
func (c *Client) Session() *session.Store {
	return c.stores.Session
}

// Catalog returns the catalog store.
func (c *Client) Catalog() *catalog.Store {
	return c.stores.Catalog
}

// Wishlist returns the wishlist store.
func (c *Client) Wishlist() *wishlist.Store {
	return c.stores.Wishlist
}

// Notifications returns the notification center.
func (c *Client) Notifications() *notify.Center {
	return c.notifier
}

// ensureSubscribed registers one cache subscription per key so invalidation
// refetches the entry instead of dropping it.
func (c *Client) ensureSubscribed(endpoint api.EndpointID, args any) {
	key := apicache.NewKey(endpoint, args)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.subscribed[key]; ok {
		return
	}
	c.cache.Subscribe(endpoint, args)
	c.subscribed[key] = struct{}{}
}

// fail pushes a user-facing notification for a failed operation and, on a
// 401/403 seen while a session is believed active, forces the session
// boundary (the backend no longer recognizes the tokens).
func (c *Client) fail(op clienterrors.Operation, err error) {
	if clienterrors.IsAuthError(err) && c.stores.Session.Authenticated() {
		c.log.Warn().Str("operation", string(op)).Msg("auth failure with active session, forcing logout")
		c.resetSessionState()
	}
	c.notifier.Push(notify.LevelError, clienterrors.OperationMessage(op, err))
}
