package session_test

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-storefront-client/session"
	"github.com/jrsteele09/go-storefront-client/storage"
)

const testSigningKey = "test-signing-key"

func signedToken(t *testing.T, subject string, expiresAt time.Time) string {
	t.Helper()
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, jwtlib.MapClaims{
		"sub": subject,
		"exp": expiresAt.Unix(),
		"iat": expiresAt.Add(-time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSigningKey))
	require.NoError(t, err)
	return signed
}

func TestNewStoreRequiresPersistence(t *testing.T) {
	_, err := session.NewStore(nil)
	require.Error(t, err)
}

func TestSetTokensPersistsNonEmptyTokens(t *testing.T) {
	port := storage.NewMemoryPort()
	store, err := session.NewStore(port)
	require.NoError(t, err)

	require.NoError(t, store.SetTokens("access-1", "refresh-1"))
	require.Equal(t, "access-1", store.AccessToken())
	require.Equal(t, "refresh-1", store.RefreshToken())
	require.True(t, store.Authenticated())

	saved, ok, err := port.Load(storage.KeyAccessToken)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "access-1", string(saved))
}

func TestSetTokensDoesNotPersistEmptyTokens(t *testing.T) {
	port := storage.NewMemoryPort()
	store, err := session.NewStore(port)
	require.NoError(t, err)

	require.NoError(t, store.SetTokens("", ""))
	require.False(t, store.Authenticated())
	require.Empty(t, port.Keys())
}

func TestSetTokensRemovesStalePersistedToken(t *testing.T) {
	port := storage.NewMemoryPort()
	store, err := session.NewStore(port)
	require.NoError(t, err)

	require.NoError(t, store.SetTokens("access-1", "refresh-1"))
	require.NoError(t, store.SetTokens("access-2", ""))

	saved, ok, err := port.Load(storage.KeyAccessToken)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "access-2", string(saved))

	// The earlier refresh token is gone from persistence too; a new store
	// over the same port must not resurrect it next to the newer access
	// token.
	_, ok, err = port.Load(storage.KeyRefreshToken)
	require.NoError(t, err)
	require.False(t, ok)

	reloaded, err := session.NewStore(port)
	require.NoError(t, err)
	require.Equal(t, "access-2", reloaded.AccessToken())
	require.Empty(t, reloaded.RefreshToken())
}

func TestNewStoreRehydratesTokensOnly(t *testing.T) {
	port := storage.NewMemoryPort()
	require.NoError(t, port.Save(storage.KeyAccessToken, []byte("persisted-access")))
	require.NoError(t, port.Save(storage.KeyRefreshToken, []byte("persisted-refresh")))

	store, err := session.NewStore(port)
	require.NoError(t, err)

	require.Equal(t, "persisted-access", store.AccessToken())
	require.Equal(t, "persisted-refresh", store.RefreshToken())
	require.True(t, store.Authenticated())

	// User and profile are never persisted; a fresh store starts without
	// them even when tokens survive.
	require.Nil(t, store.User())
	require.Nil(t, store.Profile())
}

func TestSetUserAndProfileAreWholesale(t *testing.T) {
	store, err := session.NewStore(storage.NewMemoryPort())
	require.NoError(t, err)

	store.SetUser(&session.User{ID: "u1", Username: "ada"})
	store.SetProfile(&session.Profile{ID: "pr1", FirstName: "Ada"})

	require.Equal(t, "ada", store.User().Username)
	require.Equal(t, "Ada", store.Profile().FirstName)

	store.SetUser(&session.User{ID: "u2"})
	require.Empty(t, store.User().Username)
}

func TestResetClearsEverythingTogether(t *testing.T) {
	port := storage.NewMemoryPort()
	store, err := session.NewStore(port)
	require.NoError(t, err)

	require.NoError(t, store.SetTokens("access", "refresh"))
	store.SetUser(&session.User{ID: "u1"})
	store.SetProfile(&session.Profile{ID: "pr1"})

	store.Reset()

	require.False(t, store.Authenticated())
	require.Empty(t, store.AccessToken())
	require.Empty(t, store.RefreshToken())
	require.Nil(t, store.User())
	require.Nil(t, store.Profile())
	require.Empty(t, port.Keys())
}

func TestClaimsExtractsSubjectAndExpiry(t *testing.T) {
	store, err := session.NewStore(storage.NewMemoryPort())
	require.NoError(t, err)

	expires := time.Now().Add(time.Hour).Truncate(time.Second)
	require.NoError(t, store.SetTokens(signedToken(t, "user-42", expires), "refresh"))

	claims, err := store.Claims()
	require.NoError(t, err)
	require.Equal(t, "user-42", claims.Subject)
	require.True(t, claims.ExpiresAt.Equal(expires))
}

func TestClaimsWithoutTokenFails(t *testing.T) {
	store, err := session.NewStore(storage.NewMemoryPort())
	require.NoError(t, err)

	_, err = store.Claims()
	require.Error(t, err)
}

func TestClaimsRejectsMalformedToken(t *testing.T) {
	store, err := session.NewStore(storage.NewMemoryPort())
	require.NoError(t, err)
	require.NoError(t, store.SetTokens("not-a-jwt", ""))

	_, err = store.Claims()
	require.Error(t, err)
}

func TestExpired(t *testing.T) {
	store, err := session.NewStore(storage.NewMemoryPort())
	require.NoError(t, err)

	now := time.Now()

	require.NoError(t, store.SetTokens(signedToken(t, "u1", now.Add(time.Hour)), ""))
	require.False(t, store.Expired(now))

	require.NoError(t, store.SetTokens(signedToken(t, "u1", now.Add(-time.Hour)), ""))
	require.True(t, store.Expired(now))

	// A token that cannot be parsed is not treated as expired.
	require.NoError(t, store.SetTokens("opaque-token", ""))
	require.False(t, store.Expired(now))
}
