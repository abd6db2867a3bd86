package domain

// Role scopes which dashboard panels a user may open.
type Role string

const (
	RoleCitizen Role = "citizen"
	RoleAgent   Role = "agent"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

// PanelKey names a dashboard sub-view.
type PanelKey string

// PanelDashboard is every role's default panel.
const PanelDashboard PanelKey = "dashboard"

var rolePanels = map[Role][]PanelKey{
	RoleCitizen: {"dashboard", "wallets", "rates", "withdraw", "transfers", "money-flow"},
	RoleAgent:   {"dashboard", "deposit", "withdraw", "commission", "agent-transactions", "agent-wallets"},
	RoleManager: {"dashboard", "agent-overview", "manager-wallet", "manager-transactions", "withdraw-commission", "profile", "user-role-management"},
	RoleAdmin:   {"dashboard", "user-management", "wallet-management", "system-commission", "role-management"},
}

// Panels returns a copy of the role's allow-list, nil for unknown roles.
func (r Role) Panels() []PanelKey {
	panels, ok := rolePanels[r]
	if !ok {
		return nil
	}
	out := make([]PanelKey, len(panels))
	copy(out, panels)
	return out
}

// Allows reports whether key is in the role's allow-list.
func (r Role) Allows(key PanelKey) bool {
	for _, p := range rolePanels[r] {
		if p == key {
			return true
		}
	}
	return false
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	_, ok := rolePanels[r]
	return ok
}

// User is the authenticated user's profile.
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email,omitempty"`
	Role      Role   `json:"role"`
	AccountID string `json:"accountId,omitempty"`
}

// UserSummary is one row of the admin user listing.
type UserSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	Active    bool   `json:"isActive"`
}

// Metrics is a pre-aggregated payload from a role-scoped endpoint. The
// client displays it and never recomputes it.
type Metrics map[string]any
