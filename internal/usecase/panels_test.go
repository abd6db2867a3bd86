package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wallet-dashboard/internal/domain"
	"wallet-dashboard/internal/session"
	"wallet-dashboard/internal/usecase"
)

func TestPanelRouter_Select(t *testing.T) {
	tests := []struct {
		name       string
		role       domain.Role
		key        domain.PanelKey
		wantOK     bool
		wantActive domain.PanelKey
	}{
		{name: "citizen may open transfers", role: domain.RoleCitizen, key: "transfers", wantOK: true, wantActive: "transfers"},
		{name: "citizen may not open commission", role: domain.RoleCitizen, key: "commission", wantOK: false, wantActive: domain.PanelDashboard},
		{name: "agent may open commission", role: domain.RoleAgent, key: "commission", wantOK: true, wantActive: "commission"},
		{name: "agent may not open user management", role: domain.RoleAgent, key: "user-management", wantOK: false, wantActive: domain.PanelDashboard},
		{name: "manager may open agent overview", role: domain.RoleManager, key: "agent-overview", wantOK: true, wantActive: "agent-overview"},
		{name: "admin may open user management", role: domain.RoleAdmin, key: "user-management", wantOK: true, wantActive: "user-management"},
		{name: "unknown key is ignored", role: domain.RoleAdmin, key: "settings", wantOK: false, wantActive: domain.PanelDashboard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			router, err := usecase.NewPanelRouter(ctx, session.NewMemoryStore(), tt.role, zap.NewNop())
			require.NoError(t, err)

			ok, err := router.Select(ctx, tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)

			role, active := router.Active()
			assert.Equal(t, tt.role, role)
			assert.Equal(t, tt.wantActive, active)
			assert.True(t, role.Allows(active))
		})
	}
}

func TestPanelRouter_RestoresSelection(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()

	first, err := usecase.NewPanelRouter(ctx, store, domain.RoleAgent, zap.NewNop())
	require.NoError(t, err)
	ok, err := first.Select(ctx, "commission")
	require.NoError(t, err)
	require.True(t, ok)

	again, err := usecase.NewPanelRouter(ctx, store, domain.RoleAgent, zap.NewNop())
	require.NoError(t, err)
	_, active := again.Active()
	assert.Equal(t, domain.PanelKey("commission"), active)

	citizen, err := usecase.NewPanelRouter(ctx, store, domain.RoleCitizen, zap.NewNop())
	require.NoError(t, err)
	_, active = citizen.Active()
	assert.Equal(t, domain.PanelDashboard, active)
}

func TestPanelRouter_IgnoresDisallowedStoredPanel(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "panel_role", "citizen"))
	require.NoError(t, store.Set(ctx, "panel", "user-management"))

	router, err := usecase.NewPanelRouter(ctx, store, domain.RoleCitizen, zap.NewNop())
	require.NoError(t, err)
	_, active := router.Active()
	assert.Equal(t, domain.PanelDashboard, active)
}

func TestPanelRouter_SwitchRole(t *testing.T) {
	ctx := context.Background()
	router, err := usecase.NewPanelRouter(ctx, session.NewMemoryStore(), domain.RoleAdmin, zap.NewNop())
	require.NoError(t, err)

	_, err = router.Select(ctx, "system-commission")
	require.NoError(t, err)

	require.NoError(t, router.SwitchRole(ctx, domain.RoleCitizen))
	role, active := router.Active()
	assert.Equal(t, domain.RoleCitizen, role)
	assert.Equal(t, domain.PanelDashboard, active)

	assert.Error(t, router.SwitchRole(ctx, "guest"))
	_, err = usecase.NewPanelRouter(ctx, session.NewMemoryStore(), "guest", zap.NewNop())
	assert.Error(t, err)
}

// flakyStore fails every Set once broken is true.
type flakyStore struct {
	*session.MemoryStore
	broken bool
}

func (s *flakyStore) Set(ctx context.Context, key, value string) error {
	if s.broken {
		return errors.New("store unavailable")
	}
	return s.MemoryStore.Set(ctx, key, value)
}

func TestPanelRouter_FailedWriteKeepsSelection(t *testing.T) {
	ctx := context.Background()
	store := &flakyStore{MemoryStore: session.NewMemoryStore()}
	router, err := usecase.NewPanelRouter(ctx, store, domain.RoleCitizen, zap.NewNop())
	require.NoError(t, err)

	_, err = router.Select(ctx, "wallets")
	require.NoError(t, err)

	store.broken = true

	selected, err := router.Select(ctx, "transfers")
	assert.Error(t, err)
	assert.False(t, selected)
	_, active := router.Active()
	assert.Equal(t, domain.PanelKey("wallets"), active)

	assert.Error(t, router.SwitchRole(ctx, domain.RoleAgent))
	role, active := router.Active()
	assert.Equal(t, domain.RoleCitizen, role)
	assert.Equal(t, domain.PanelKey("wallets"), active)
}
