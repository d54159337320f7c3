// Package api is the typed client for the storefront REST backend. It is
// the only package that talks to the network; everything above it consumes
// decoded values or errors from the taxonomy in internal/errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jrsteele09/go-storefront-client/catalog"
	"github.com/jrsteele09/go-storefront-client/checkout"
	clienterrors "github.com/jrsteele09/go-storefront-client/internal/errors"
	"github.com/jrsteele09/go-storefront-client/session"
)

// TokenProvider supplies the current access token. The session store
// implements it; an empty token means the request goes out unauthenticated.
type TokenProvider interface {
	AccessToken() string
}

// Doer abstracts *http.Client for testing.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client issues requests against the storefront backend. Authenticated
// requests carry "Authorization: JWT <accessToken>".
type Client struct {
	baseURL string
	http    Doer
	tokens  TokenProvider
	log     zerolog.Logger
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(doer Doer) Option {
	return func(c *Client) {
		c.http = doer
	}
}

// WithLogger attaches a logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a backend client. tokens may not be nil; use a provider
// returning "" for anonymous access.
func NewClient(baseURL string, tokens TokenProvider, options ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, fmt.Errorf("[api.NewClient] baseURL is required")
	}
	if tokens == nil {
		return nil, fmt.Errorf("[api.NewClient] token provider is required")
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		tokens:  tokens,
		log:     zerolog.Nop(),
	}
	for _, opt := range options {
		opt(c)
	}
	return c, nil
}

// GetCategories fetches all categories.
func (c *Client) GetCategories(ctx context.Context) ([]catalog.Category, error) {
	var categories []catalog.Category
	if err := c.do(ctx, http.MethodGet, "/category", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// GetCategory fetches a category by ID.
func (c *Client) GetCategory(ctx context.Context, id string) (*catalog.Category, error) {
	var category catalog.Category
	if err := c.do(ctx, http.MethodGet, "/category/"+url.PathEscape(id), nil, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// GetProducts fetches the full product list.
func (c *Client) GetProducts(ctx context.Context) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct fetches a product by ID.
func (c *Client) GetProduct(ctx context.Context, id string) (*catalog.Product, error) {
	var product catalog.Product
	if err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// GetCart fetches the current user's cart.
func (c *Client) GetCart(ctx context.Context) (catalog.Cart, error) {
	var cart catalog.Cart
	if err := c.do(ctx, http.MethodGet, "/cart/me", nil, &cart); err != nil {
		return catalog.Cart{}, err
	}
	return cart, nil
}

// AddToCart adds a product to the cart. The updated cart is fetched
// separately; the response body is not trusted as a snapshot.
func (c *Client) AddToCart(ctx context.Context, req AddToCartRequest) error {
	return c.do(ctx, http.MethodPost, "/cart/", req, nil)
}

// CreateCartItem creates a cart line directly.
func (c *Client) CreateCartItem(ctx context.Context, req CreateCartItemRequest) error {
	return c.do(ctx, http.MethodPost, "/cart-item/", req, nil)
}

// UpdateCartItem applies an increment/decrement/remove action to a cart
// line.
func (c *Client) UpdateCartItem(ctx context.Context, args UpdateCartItemArgs) error {
	if err := args.Action.Validate(); err != nil {
		return clienterrors.NewValidationError("action", err.Error())
	}
	body := struct {
		Action CartItemAction `json:"action"`
	}{Action: args.Action}
	return c.do(ctx, http.MethodPatch, "/cart-item/"+url.PathEscape(args.ID)+"/", body, nil)
}

// DeleteCartItem removes a cart line.
func (c *Client) DeleteCartItem(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/cart-item/"+url.PathEscape(id)+"/", nil, nil)
}

// ClearCart empties the current user's cart.
func (c *Client) ClearCart(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/cart/clear/", nil, nil)
}

// GetOrders fetches the current user's order history.
func (c *Client) GetOrders(ctx context.Context) ([]catalog.Order, error) {
	var orders []catalog.Order
	if err := c.do(ctx, http.MethodGet, "/orders/me", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrder fetches one order by ID.
func (c *Client) GetOrder(ctx context.Context, id string) (*catalog.Order, error) {
	var order catalog.Order
	if err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(id)+"/", nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateOrder places an order.
func (c *Client) CreateOrder(ctx context.Context, payload checkout.OrderPayload) (*catalog.Order, error) {
	var order catalog.Order
	if err := c.do(ctx, http.MethodPost, "/orders/", payload, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// Login exchanges credentials for tokens and the authenticated user.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login/", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*session.User, error) {
	var user session.User
	if err := c.do(ctx, http.MethodPost, "/auth/users/", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CurrentUser fetches the authenticated user.
func (c *Client) CurrentUser(ctx context.Context) (*session.User, error) {
	var user session.User
	if err := c.do(ctx, http.MethodGet, "/auth/users/me/", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetProfile fetches the current user's profile. The backend has served
// both a single object and a one-element list here; both decode to one
// profile.
func (c *Client) GetProfile(ctx context.Context) (*session.Profile, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/api/user-profile/", nil, &raw); err != nil {
		return nil, err
	}
	return normalizeProfile(raw)
}

// CreateProfile creates the user's profile.
func (c *Client) CreateProfile(ctx context.Context, req ProfileRequest) (*session.Profile, error) {
	var profile session.Profile
	if err := c.do(ctx, http.MethodPost, "/api/user-profile/", req, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// PatchProfile updates profile fields.
func (c *Client) PatchProfile(ctx context.Context, id string, req ProfileRequest) (*session.Profile, error) {
	var profile session.Profile
	if err := c.do(ctx, http.MethodPatch, "/api/user-profile/"+url.PathEscape(id)+"/", req, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func normalizeProfile(raw json.RawMessage) (*session.Profile, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return nil, nil
	}
	if trimmed[0] == '[' {
		var profiles []session.Profile
		if err := json.Unmarshal(trimmed, &profiles); err != nil {
			return nil, &clienterrors.ParsingError{Err: err}
		}
		if len(profiles) == 0 {
			return nil, nil
		}
		return &profiles[0], nil
	}
	var profile session.Profile
	if err := json.Unmarshal(trimmed, &profile); err != nil {
		return nil, &clienterrors.ParsingError{Err: err}
	}
	return &profile, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, target any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &clienterrors.ParsingError{Err: err}
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("[Client.do] build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.AccessToken(); token != "" {
		req.Header.Set("Authorization", "JWT "+token)
	}

	c.log.Debug().Str("method", method).Str("path", path).Msg("request")

	resp, err := c.http.Do(req)
	if err != nil {
		return transportError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &clienterrors.HTTPError{Status: resp.StatusCode, Body: string(data)}
	}

	if target == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return &clienterrors.ParsingError{Err: err}
	}
	return nil
}

func transportError(ctx context.Context, err error) error {
	if ctx.Err() == context.DeadlineExceeded {
		return &clienterrors.TimeoutError{Err: err}
	}
	var urlErr *url.Error
	if clienterrors.As(err, &urlErr) && urlErr.Timeout() {
		return &clienterrors.TimeoutError{Err: err}
	}
	return &clienterrors.NetworkError{Err: err}
}
