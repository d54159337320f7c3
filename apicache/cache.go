// Package apicache is the remote cache layer: a request/response cache keyed
// by (endpoint, arguments) and annotated with capability tags. Mutations
// invalidate by tag; invalidation is a traversal of the endpoint/tag graph
// declared in the api package.
package apicache

import (
	"context"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jrsteele09/go-storefront-client/api"
	clienterrors "github.com/jrsteele09/go-storefront-client/internal/errors"
)

// Fetcher executes one endpoint invocation. api.Invoke bound to a client is
// the production fetcher; tests substitute their own.
type Fetcher func(ctx context.Context, endpoint api.EndpointID, args any) (any, error)

// Cache holds remote responses until a mutation invalidates their tags or a
// session boundary reset drops everything. It is never persisted.
type Cache struct {
	mu      sync.Mutex
	entries map[Key]*entry
	fetcher Fetcher
	log     zerolog.Logger
}

// Option configures the Cache.
type Option func(*Cache)

// WithLogger attaches a logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Cache) {
		c.log = log
	}
}

// New creates a cache around a fetcher.
func New(fetcher Fetcher, options ...Option) (*Cache, error) {
	if fetcher == nil {
		return nil, clienterrors.Wrapf(clienterrors.ErrInternal, "[apicache.New] fetcher is required")
	}
	c := &Cache{
		entries: make(map[Key]*entry),
		fetcher: fetcher,
		log:     zerolog.Nop(),
	}
	for _, opt := range options {
		opt(c)
	}
	return c, nil
}

// Fetch returns the cached entry for (endpoint, args), fetching if the
// entry is missing or stale. Fetch is idempotent per key: a fresh success
// entry is served as-is. The returned Entry is a snapshot; its Data is
// replaced wholesale on refetch, never mutated in place.
func (c *Cache) Fetch(ctx context.Context, endpoint api.EndpointID, args any) (*Entry, error) {
	if !api.IsRead(endpoint) {
		return nil, clienterrors.Wrapf(clienterrors.ErrUnknownEndpoint, "[Cache.Fetch] %s is not a read endpoint", endpoint)
	}

	key := NewKey(endpoint, args)

	c.mu.Lock()
	e, ok := c.entries[key]
	if ok && e.status == StatusSuccess && !e.stale {
		snapshot := e.snapshot()
		c.mu.Unlock()
		return snapshot, nil
	}
	if !ok {
		e = &entry{
			key:  key,
			args: args,
			tags: tagSet(api.Provides(endpoint)),
		}
		c.entries[key] = e
	}
	e.status = StatusLoading
	c.mu.Unlock()

	return c.refetch(ctx, e)
}

// refetch executes the fetcher and writes the result into the entry as one
// replacement.
func (c *Cache) refetch(ctx context.Context, e *entry) (*Entry, error) {
	data, err := c.fetcher(ctx, e.key.Endpoint, e.args)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		e.status = StatusError
		e.err = err
		c.log.Debug().Str("key", e.key.String()).Err(err).Msg("fetch failed")
		return e.snapshot(), err
	}

	e.status = StatusSuccess
	e.data = data
	e.err = nil
	e.stale = false
	return e.snapshot(), nil
}

// Mutate executes a mutating endpoint and, on success, invalidates the tags
// it declares. On failure nothing is invalidated: cached reads keep serving
// the prior snapshot. There is no automatic retry.
func (c *Cache) Mutate(ctx context.Context, endpoint api.EndpointID, args any) (any, error) {
	if !api.IsMutation(endpoint) {
		return nil, clienterrors.Wrapf(clienterrors.ErrUnknownEndpoint, "[Cache.Mutate] %s is not a mutating endpoint", endpoint)
	}

	data, err := c.fetcher(ctx, endpoint, args)
	if err != nil {
		return nil, err
	}

	c.Invalidate(ctx, api.Invalidates(endpoint))
	return data, nil
}

// Invalidate marks every entry whose tag set intersects tags as stale.
// Entries with active subscribers refetch immediately, in deterministic
// order per endpoint; entries nobody holds are dropped.
func (c *Cache) Invalidate(ctx context.Context, tags []api.Tag) {
	if len(tags) == 0 {
		return
	}

	c.mu.Lock()
	var refetchList []*entry
	for key, e := range c.entries {
		if !e.hasAnyTag(tags) {
			continue
		}
		e.stale = true
		if e.subscribers > 0 {
			refetchList = append(refetchList, e)
		} else {
			delete(c.entries, key)
		}
	}
	c.mu.Unlock()

	// Stable ordering so invalidations for the same endpoint are observed
	// in invalidation order. No ordering guarantee across endpoints.
	sort.Slice(refetchList, func(i, j int) bool {
		return refetchList[i].key.String() < refetchList[j].key.String()
	})

	for _, e := range refetchList {
		c.log.Debug().Str("key", e.key.String()).Msg("refetch on invalidation")
		_, _ = c.refetch(ctx, e)
	}
}

// Subscribe registers interest in an entry so invalidation refetches it
// instead of dropping it. Returns the current snapshot, if any.
func (c *Cache) Subscribe(endpoint api.EndpointID, args any) *Entry {
	key := NewKey(endpoint, args)

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		e = &entry{
			key:  key,
			args: args,
			tags: tagSet(api.Provides(endpoint)),
		}
		c.entries[key] = e
	}
	e.subscribers++
	return e.snapshot()
}

// Unsubscribe releases one subscription. The entry itself is retained until
// the next invalidation touching its tags.
func (c *Cache) Unsubscribe(endpoint api.EndpointID, args any) {
	key := NewKey(endpoint, args)

	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok && e.subscribers > 0 {
		e.subscribers--
	}
}

// Get returns the snapshot for a key without fetching.
func (c *Cache) Get(endpoint api.EndpointID, args any) (*Entry, bool) {
	key := NewKey(endpoint, args)

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return e.snapshot(), true
}

// Stale reports whether the entry exists and is marked stale.
func (c *Cache) Stale(endpoint api.EndpointID, args any) bool {
	key := NewKey(endpoint, args)

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	return ok && e.stale
}

// Reset drops every entry regardless of tag. This is the session boundary:
// no cached response from one session may be servable in the next.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[Key]*entry)
	c.log.Debug().Msg("cache reset")
}

// Len returns the number of live entries. Used by tests.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
