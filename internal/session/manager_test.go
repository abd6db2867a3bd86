package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wallet-dashboard/internal/clock"
	"wallet-dashboard/internal/domain"
)

var now = time.Date(2025, 5, 10, 9, 0, 0, 0, time.UTC)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": exp.Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func newManager() (*Manager, *MemoryStore, *clock.FakeClock) {
	store := NewMemoryStore()
	clk := clock.Fake(now)
	return NewManager(store, clk, zap.NewNop()), store, clk
}

var citizen = domain.User{ID: "user-1", FirstName: "Aline", Role: domain.RoleCitizen}

func TestManager_LoginAndLogout(t *testing.T) {
	ctx := context.Background()
	m, store, _ := newManager()
	token := signedToken(t, now.Add(time.Hour))

	s, err := m.Login(ctx, token, citizen)
	require.NoError(t, err)
	assert.Equal(t, "Aline", s.User.FirstName)
	assert.True(t, m.Active(s.Epoch))

	got, err := m.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, token, got)
	assert.Equal(t, time.Hour, m.ExpiresIn(ctx))

	require.NoError(t, m.Logout(ctx))
	assert.False(t, m.Active(s.Epoch))

	_, ok, _ := store.Get(ctx, keyToken)
	assert.False(t, ok)

	_, err = m.Current(ctx)
	var authErr *domain.AuthenticationError
	require.True(t, errors.As(err, &authErr))
	assert.True(t, errors.Is(err, domain.ErrNotLoggedIn))
}

func TestManager_ExpiredToken(t *testing.T) {
	ctx := context.Background()
	m, _, clk := newManager()

	_, err := m.Login(ctx, signedToken(t, now.Add(-time.Minute)), citizen)
	assert.True(t, errors.Is(err, domain.ErrTokenExpired))

	_, err = m.Login(ctx, signedToken(t, now.Add(time.Minute)), citizen)
	require.NoError(t, err)

	clk.Advance(2 * time.Minute)
	_, err = m.Token(ctx)
	assert.True(t, errors.Is(err, domain.ErrTokenExpired))
}

func TestManager_RejectsMalformedInput(t *testing.T) {
	ctx := context.Background()
	m, _, _ := newManager()

	_, err := m.Login(ctx, "", citizen)
	assert.True(t, errors.Is(err, domain.ErrNotLoggedIn))

	_, err = m.Login(ctx, "not.a.jwt", citizen)
	assert.True(t, errors.Is(err, domain.ErrTokenRejected))

	_, err = m.Login(ctx, "opaque-token", domain.User{ID: "x", Role: "guest"})
	var verr *domain.ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestManager_OpaqueTokenAccepted(t *testing.T) {
	ctx := context.Background()
	m, _, _ := newManager()

	_, err := m.Login(ctx, "opaque-token", citizen)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), m.ExpiresIn(ctx))
}

func TestManager_RestoresFromStore(t *testing.T) {
	ctx := context.Background()
	first, store, clk := newManager()
	token := signedToken(t, now.Add(time.Hour))
	_, err := first.Login(ctx, token, citizen)
	require.NoError(t, err)

	// A new process sharing the same store picks the session back up.
	second := NewManager(store, clk, zap.NewNop())
	s, err := second.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, token, s.Token)
	assert.Equal(t, citizen, s.User)
	assert.True(t, second.Active(s.Epoch))
}

func TestManager_NewLoginInvalidatesOldEpoch(t *testing.T) {
	ctx := context.Background()
	m, store, _ := newManager()

	first, err := m.Login(ctx, "token-a", citizen)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "panel", "wallets"))

	second, err := m.Login(ctx, "token-b", citizen)
	require.NoError(t, err)

	assert.False(t, m.Active(first.Epoch))
	assert.True(t, m.Active(second.Epoch))
	_, ok, _ := store.Get(ctx, "panel")
	assert.False(t, ok)
}
