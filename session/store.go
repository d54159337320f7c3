package session

import (
	"strings"
	"sync"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"github.com/jrsteele09/go-storefront-client/storage"
)

// Store holds the authenticated session: access/refresh tokens, the user,
// and the user's profile. Only the tokens are persisted; user and profile
// are re-fetched on reload.
//
// Invariant: user and profile are only non-nil while the access token is
// non-empty, and all three are cleared together by Reset.
type Store struct {
	mu      sync.RWMutex
	access  string
	refresh string
	user    *User
	profile *Profile

	persistence storage.Port
}

// NewStore creates a session store backed by the given persistence port and
// rehydrates tokens from it. User and profile are deliberately not
// persisted, which forces a profile re-fetch on reload.
func NewStore(persistence storage.Port) (*Store, error) {
	if persistence == nil {
		return nil, errors.New("[session.NewStore] persistence port is required")
	}
	s := &Store{persistence: persistence}
	if err := s.rehydrate(); err != nil {
		return nil, errors.Wrap(err, "[session.NewStore] rehydrate")
	}
	return s, nil
}

func (s *Store) rehydrate() error {
	if access, ok, err := s.persistence.Load(storage.KeyAccessToken); err != nil {
		return err
	} else if ok {
		s.access = string(access)
	}
	if refresh, ok, err := s.persistence.Load(storage.KeyRefreshToken); err != nil {
		return err
	} else if ok {
		s.refresh = string(refresh)
	}
	return nil
}

// SetTokens stores both tokens. A non-empty token is persisted; an empty
// one removes its persisted key, so a later rehydrate can never pair a stale
// token from a previous write with a fresh one.
func (s *Store) SetTokens(access, refresh string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.access = access
	s.refresh = refresh

	if access != "" {
		if err := s.persistence.Save(storage.KeyAccessToken, []byte(access)); err != nil {
			return errors.Wrap(err, "[Store.SetTokens] save access token")
		}
	} else if err := s.persistence.Remove(storage.KeyAccessToken); err != nil {
		return errors.Wrap(err, "[Store.SetTokens] remove access token")
	}
	if refresh != "" {
		if err := s.persistence.Save(storage.KeyRefreshToken, []byte(refresh)); err != nil {
			return errors.Wrap(err, "[Store.SetTokens] save refresh token")
		}
	} else if err := s.persistence.Remove(storage.KeyRefreshToken); err != nil {
		return errors.Wrap(err, "[Store.SetTokens] remove refresh token")
	}
	return nil
}

// SetUser replaces the authenticated user. No merge.
func (s *Store) SetUser(user *User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
}

// SetProfile replaces the user profile. No merge.
func (s *Store) SetProfile(profile *Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = profile
}

// Reset clears tokens, user, and profile together and removes the persisted
// token keys. This is the only legal way to end a session.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.access = ""
	s.refresh = ""
	s.user = nil
	s.profile = nil

	// Persistence failures on removal cannot leave a partial session in
	// memory, so they are deliberately not surfaced.
	_ = s.persistence.Remove(storage.KeyAccessToken)
	_ = s.persistence.Remove(storage.KeyRefreshToken)
}

// AccessToken returns the current access token, empty if not authenticated.
func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access
}

// RefreshToken returns the current refresh token.
func (s *Store) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refresh
}

// User returns the authenticated user, nil when logged out.
func (s *Store) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Profile returns the user profile, nil until fetched.
func (s *Store) Profile() *Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// Authenticated reports whether an access token is held.
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access != ""
}

// Claims are the token claims the client cares about. The token is parsed
// without signature verification: the client is not the audience that needs
// to trust it, the backend re-verifies on every request.
type Claims struct {
	Subject   string
	ExpiresAt time.Time
	IssuedAt  time.Time
}

// Claims extracts subject and expiry from the stored access token.
func (s *Store) Claims() (*Claims, error) {
	s.mu.RLock()
	access := s.access
	s.mu.RUnlock()

	if strings.TrimSpace(access) == "" {
		return nil, errors.New("[Store.Claims] no access token")
	}

	parsed, _, err := jwtlib.NewParser().ParseUnverified(access, jwtlib.MapClaims{})
	if err != nil {
		return nil, errors.Wrap(err, "[Store.Claims] ParseUnverified")
	}

	mapClaims, ok := parsed.Claims.(jwtlib.MapClaims)
	if !ok {
		return nil, errors.New("[Store.Claims] error extracting claims")
	}

	claims := &Claims{}
	if sub, err := mapClaims.GetSubject(); err == nil {
		claims.Subject = sub
	}
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}
	if iat, err := mapClaims.GetIssuedAt(); err == nil && iat != nil {
		claims.IssuedAt = iat.Time
	}
	return claims, nil
}

// Expired reports whether the access token carries an exp claim in the past.
// A token without a readable exp claim is treated as not expired; the
// backend has the final say.
func (s *Store) Expired(now time.Time) bool {
	claims, err := s.Claims()
	if err != nil {
		return false
	}
	if claims.ExpiresAt.IsZero() {
		return false
	}
	return now.After(claims.ExpiresAt)
}
