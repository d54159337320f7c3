package apicache

import (
	"encoding/json"
	"fmt"

	"github.com/jrsteele09/go-storefront-client/api"
)

// Key identifies a cache entry: one endpoint with one serialized argument
// set.
type Key struct {
	Endpoint api.EndpointID
	Args     string
}

func (k Key) String() string {
	if k.Args == "" {
		return string(k.Endpoint)
	}
	return fmt.Sprintf("%s(%s)", k.Endpoint, k.Args)
}

// SerializeArgs builds a stable string form of endpoint arguments. JSON is
// deterministic for the tagged request structs used as args; anything that
// fails to marshal falls back to its printed form rather than panicking.
func SerializeArgs(args any) string {
	if args == nil {
		return ""
	}
	data, err := json.Marshal(args)
	if err != nil {
		return fmt.Sprintf("%v", args)
	}
	return string(data)
}

// NewKey builds the cache key for an endpoint invocation.
func NewKey(endpoint api.EndpointID, args any) Key {
	return Key{Endpoint: endpoint, Args: SerializeArgs(args)}
}
