package storefront

import (
	"context"

	"github.com/jrsteele09/go-storefront-client/api"
	"github.com/jrsteele09/go-storefront-client/apicache"
	clienterrors "github.com/jrsteele09/go-storefront-client/internal/errors"
	"github.com/jrsteele09/go-storefront-client/internal/utils"
	"github.com/jrsteele09/go-storefront-client/notify"
	"github.com/jrsteele09/go-storefront-client/session"
)

// resetSessionState is the session boundary: it clears the session store,
// the catalog store, the wishlist, the filter criteria, and finally every
// remote cache entry. The cache reset runs before any component can
// re-subscribe under a new session, so no entry keyed by arguments that
// happen to match ("current user's cart") survives into the next session.
func (c *Client) resetSessionState() {
	c.debouncer.Cancel()

	c.stores.Session.Reset()
	c.stores.Catalog.Reset()
	c.stores.Wishlist.Clear()

	c.mu.Lock()
	c.criteria = resetCriteria()
	c.subscribed = make(map[apicache.Key]struct{})
	c.mu.Unlock()

	c.cache.Reset()
}

// Logout ends the session. It never fails: logout is a local state
// transition, not a network operation.
func (c *Client) Logout() {
	c.log.Info().Msg("logout")
	c.resetSessionState()
}

// Login authenticates and starts a fresh session. The boundary reset runs
// after the backend accepts the credentials but before the new session's
// tokens and user are written, so a stale cart from a previous session is
// never visible to the new user.
func (c *Client) Login(ctx context.Context, email, password string) error {
	if err := session.ValidateCredentials(email, password); err != nil {
		return clienterrors.NewValidationError("credentials", err.Error())
	}

	resp, err := c.api.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		c.notifier.Push(notify.LevelError, clienterrors.OperationMessage(clienterrors.OpLogin, err))
		return err
	}

	c.resetSessionState()

	if err := c.stores.Session.SetTokens(resp.Access, resp.Refresh); err != nil {
		return clienterrors.Wrapf(err, "[Client.Login] SetTokens")
	}
	c.stores.Session.SetUser(utils.Ptr(resp.User))

	c.loadIdentity(ctx)
	c.log.Info().Str("user", resp.User.ID).Msg("login")
	return nil
}

// Register creates an account and logs it straight in, which runs the same
// session boundary as Login.
func (c *Client) Register(ctx context.Context, email, username, password string) error {
	if err := session.ValidateRegistration(email, username, password); err != nil {
		return clienterrors.NewValidationError("registration", err.Error())
	}

	if _, err := c.api.Register(ctx, api.RegisterRequest{
		Email:    email,
		Username: username,
		Password: password,
	}); err != nil {
		c.notifier.Push(notify.LevelError, clienterrors.OperationMessage(clienterrors.OpRegister, err))
		return err
	}

	return c.Login(ctx, email, password)
}

// loadIdentity fetches the authenticated user and profile under the new
// session. Both are best-effort: a failure leaves them to be re-fetched
// later, it does not abort the login.
func (c *Client) loadIdentity(ctx context.Context) {
	if user, err := c.api.CurrentUser(ctx); err == nil {
		c.stores.Session.SetUser(user)
	}
	if profile, err := c.api.GetProfile(ctx); err == nil && profile != nil {
		c.stores.Session.SetProfile(profile)
	}
}
