// Package session holds the authenticated user's token and profile for the
// lifetime of one login. Components receive a *Manager explicitly instead
// of reading ambient global state.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"wallet-dashboard/internal/clock"
	"wallet-dashboard/internal/domain"
)

const (
	keyToken   = "token"
	keyProfile = "profile"
)

// Session is a snapshot of the current login.
type Session struct {
	Token string
	User  domain.User
	// Epoch identifies the login. Results of work started under an older
	// epoch must be discarded.
	Epoch uint64
}

// Manager owns login and logout and hands out the bearer token.
type Manager struct {
	store  Store
	clock  clock.Clock
	logger *zap.Logger

	mu      sync.RWMutex
	epoch   uint64
	current *Session
}

// NewManager creates a session manager backed by store.
func NewManager(store Store, clk clock.Clock, logger *zap.Logger) *Manager {
	return &Manager{store: store, clock: clk, logger: logger}
}

// Store exposes the underlying key-value store for session-scoped UI state
// such as the active panel.
func (m *Manager) Store() Store { return m.store }

// Login validates the token, wipes any previous session state and stores
// the new one.
func (m *Manager) Login(ctx context.Context, token string, user domain.User) (*Session, error) {
	token = strings.TrimSpace(token)
	if err := m.checkToken(token); err != nil {
		return nil, err
	}
	if !user.Role.Valid() {
		return nil, &domain.ValidationError{Field: "role", Reason: fmt.Sprintf("unknown role %q", user.Role)}
	}
	profile, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("encode profile: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Clear(ctx); err != nil {
		return nil, fmt.Errorf("clear session store: %w", err)
	}
	if err := m.store.Set(ctx, keyToken, token); err != nil {
		return nil, fmt.Errorf("store token: %w", err)
	}
	if err := m.store.Set(ctx, keyProfile, string(profile)); err != nil {
		return nil, fmt.Errorf("store profile: %w", err)
	}

	m.epoch++
	m.current = &Session{Token: token, User: user, Epoch: m.epoch}
	m.logger.Info("session started", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	s := *m.current
	return &s, nil
}

// Logout clears the store and invalidates the epoch so late responses are
// ignored.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.epoch++
	m.current = nil
	if err := m.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear session store: %w", err)
	}
	m.logger.Info("session ended")
	return nil
}

// Current returns the active session, restoring it from the store when the
// process restarted mid-session.
func (m *Manager) Current(ctx context.Context) (*Session, error) {
	m.mu.RLock()
	cur := m.current
	m.mu.RUnlock()

	if cur == nil {
		restored, err := m.restore(ctx)
		if err != nil {
			return nil, err
		}
		cur = restored
	}
	if err := m.checkToken(cur.Token); err != nil {
		return nil, err
	}
	s := *cur
	return &s, nil
}

// Token returns the bearer token for outbound requests.
func (m *Manager) Token(ctx context.Context) (string, error) {
	s, err := m.Current(ctx)
	if err != nil {
		return "", err
	}
	return s.Token, nil
}

// Active reports whether epoch is still the live login.
func (m *Manager) Active(epoch uint64) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current != nil && m.current.Epoch == epoch
}

func (m *Manager) restore(ctx context.Context) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil {
		return m.current, nil
	}
	token, ok, err := m.store.Get(ctx, keyToken)
	if err != nil {
		return nil, fmt.Errorf("read token: %w", err)
	}
	if !ok || token == "" {
		return nil, &domain.AuthenticationError{Err: domain.ErrNotLoggedIn}
	}
	raw, ok, err := m.store.Get(ctx, keyProfile)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	var user domain.User
	if ok {
		if err := json.Unmarshal([]byte(raw), &user); err != nil {
			m.logger.Warn("stored profile unreadable", zap.Error(err))
		}
	}

	m.epoch++
	m.current = &Session{Token: token, User: user, Epoch: m.epoch}
	return m.current, nil
}

// checkToken rejects empty tokens, malformed JWTs and JWTs past their exp
// claim. Opaque (non-JWT) tokens are left for the server to judge.
func (m *Manager) checkToken(token string) error {
	if token == "" {
		return &domain.AuthenticationError{Err: domain.ErrNotLoggedIn}
	}
	if strings.Count(token, ".") != 2 {
		return nil
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return &domain.AuthenticationError{Err: fmt.Errorf("%w: %v", domain.ErrTokenRejected, err)}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return &domain.AuthenticationError{Err: fmt.Errorf("%w: %v", domain.ErrTokenRejected, err)}
	}
	if exp != nil && !m.clock.Now().Before(exp.Time) {
		return &domain.AuthenticationError{Err: domain.ErrTokenExpired}
	}
	return nil
}

// ExpiresIn is how long the current JWT remains valid; zero for opaque
// tokens or no session.
func (m *Manager) ExpiresIn(ctx context.Context) time.Duration {
	s, err := m.Current(ctx)
	if err != nil || strings.Count(s.Token, ".") != 2 {
		return 0
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.Token, claims); err != nil {
		return 0
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return 0
	}
	return exp.Time.Sub(m.clock.Now())
}
