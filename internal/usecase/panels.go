package usecase

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"wallet-dashboard/internal/domain"
	"wallet-dashboard/internal/session"
)

const (
	keyPanelRole = "panel_role"
	keyPanel     = "panel"
)

// PanelRouter maps the current role and the selected panel key to the
// active dashboard panel. The selection is kept in the session store so it
// survives navigation but not a new login.
type PanelRouter struct {
	store  session.Store
	logger *zap.Logger

	mu     sync.Mutex
	role   domain.Role
	active domain.PanelKey
}

// NewPanelRouter restores the persisted panel for role when the store holds
// one for the same role, otherwise starts at the dashboard.
func NewPanelRouter(ctx context.Context, store session.Store, role domain.Role, logger *zap.Logger) (*PanelRouter, error) {
	if !role.Valid() {
		return nil, &domain.ValidationError{Field: "role", Reason: fmt.Sprintf("unknown role %q", role)}
	}
	r := &PanelRouter{store: store, logger: logger, role: role, active: domain.PanelDashboard}

	storedRole, ok, err := store.Get(ctx, keyPanelRole)
	if err != nil {
		return nil, fmt.Errorf("read panel role: %w", err)
	}
	if ok && domain.Role(storedRole) == role {
		storedPanel, ok, err := store.Get(ctx, keyPanel)
		if err != nil {
			return nil, fmt.Errorf("read panel: %w", err)
		}
		if ok && role.Allows(domain.PanelKey(storedPanel)) {
			r.active = domain.PanelKey(storedPanel)
		}
	}
	if err := r.persist(ctx, r.role, r.active); err != nil {
		return nil, err
	}
	return r, nil
}

// Active returns the role and its active panel.
func (r *PanelRouter) Active() (domain.Role, domain.PanelKey) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.role, r.active
}

// Select activates key when the role allows it. Otherwise nothing changes
// and Select reports false.
func (r *PanelRouter) Select(ctx context.Context, key domain.PanelKey) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.role.Allows(key) {
		r.logger.Debug("panel not allowed for role", zap.String("role", string(r.role)), zap.String("panel", string(key)))
		return false, nil
	}
	if err := r.persist(ctx, r.role, key); err != nil {
		return false, err
	}
	r.active = key
	return true, nil
}

// SwitchRole resets to the new role's dashboard.
func (r *PanelRouter) SwitchRole(ctx context.Context, role domain.Role) error {
	if !role.Valid() {
		return &domain.ValidationError{Field: "role", Reason: fmt.Sprintf("unknown role %q", role)}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.persist(ctx, role, domain.PanelDashboard); err != nil {
		return err
	}
	r.role = role
	r.active = domain.PanelDashboard
	return nil
}

// persist writes the selection before it takes effect in memory, so a
// failed write leaves the router unchanged.
func (r *PanelRouter) persist(ctx context.Context, role domain.Role, active domain.PanelKey) error {
	if err := r.store.Set(ctx, keyPanelRole, string(role)); err != nil {
		return fmt.Errorf("persist panel role: %w", err)
	}
	if err := r.store.Set(ctx, keyPanel, string(active)); err != nil {
		return fmt.Errorf("persist panel: %w", err)
	}
	return nil
}
