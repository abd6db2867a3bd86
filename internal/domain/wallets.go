package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// PlatformCurrency is the unit every wallet balance is held in.
const PlatformCurrency = "AT"

// WalletType is an open enumeration; unknown values are kept verbatim.
type WalletType string

const (
	WalletTypeSavings       WalletType = "savings"
	WalletTypeFamily        WalletType = "family"
	WalletTypeBusiness      WalletType = "business"
	WalletTypeEmergency     WalletType = "emergency"
	WalletTypeAgentWallet   WalletType = "agent-wallet"
	WalletTypeManagerWallet WalletType = "manager-wallet"
	WalletTypeGoal          WalletType = "goal"
)

// Wallet is a read-only snapshot of a balance bucket owned by a user.
type Wallet struct {
	WalletType WalletType      `json:"walletType"`
	AccountID  string          `json:"accountId"`
	Balance    decimal.Decimal `json:"balance"`
	Active     bool            `json:"status"`
	OwnerName  string          `json:"ownerName,omitempty"`
}

// WalletFilter narrows GetWalletDetails. Both fields empty means the
// session owner's wallets.
type WalletFilter struct {
	OwnerID  string
	WalletID string
}

// WalletMeta is the display metadata resolved from a wallet type.
type WalletMeta struct {
	Label string `json:"label"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

var defaultWalletMeta = WalletMeta{Label: "Wallet", Color: "gray", Icon: "wallet"}

var walletMetas = map[WalletType]WalletMeta{
	WalletTypeSavings:       {Label: "Savings Wallet", Color: "green", Icon: "piggy-bank"},
	WalletTypeFamily:        {Label: "Family Wallet", Color: "purple", Icon: "users"},
	WalletTypeBusiness:      {Label: "Business Wallet", Color: "blue", Icon: "briefcase"},
	WalletTypeEmergency:     {Label: "Emergency Wallet", Color: "red", Icon: "life-buoy"},
	WalletTypeAgentWallet:   {Label: "Agent Wallet", Color: "orange", Icon: "store"},
	WalletTypeManagerWallet: {Label: "Manager Wallet", Color: "indigo", Icon: "building"},
	WalletTypeGoal:          {Label: "Goal Wallet", Color: "teal", Icon: "target"},
}

// Meta returns the display metadata for t, or the default mapping when t
// is not a known type.
func (t WalletType) Meta() WalletMeta {
	if m, ok := walletMetas[t]; ok {
		return m
	}
	return defaultWalletMeta
}

// Known reports whether t is one of the built-in wallet types.
func (t WalletType) Known() bool {
	_, ok := walletMetas[t]
	return ok
}

// MaskAccountID hides all but the last four characters.
func MaskAccountID(id string) string {
	r := []rune(id)
	if len(r) <= 4 {
		return id
	}
	return strings.Repeat("*", len(r)-4) + string(r[len(r)-4:])
}

// NoTransactionsLabel is shown for a wallet whose last transaction is
// absent or could not be fetched.
const NoTransactionsLabel = "No transactions"

// WalletView is a wallet enriched for display.
type WalletView struct {
	Wallet          Wallet       `json:"wallet"`
	Meta            WalletMeta   `json:"meta"`
	DisplayAccount  string       `json:"displayAccount"`
	OwnerName       string       `json:"ownerName"`
	LastTransaction *Transaction `json:"lastTransaction,omitempty"`
	// LastActivity is NoTransactionsLabel when LastTransaction is nil.
	LastActivity string `json:"lastActivity"`
	// LookupFailed is set when the last-transaction lookup errored, as
	// opposed to the wallet simply having no history.
	LookupFailed bool `json:"lookupFailed"`
}

// WalletSummary is the result of one wallet aggregation.
type WalletSummary struct {
	Wallets         []WalletView    `json:"wallets"`
	TotalBalance    decimal.Decimal `json:"totalBalance"`
	Currency        string          `json:"currency"`
	PartialFailures int             `json:"partialFailures"`
}

// SumBalances totals the balances of views.
func SumBalances(views []WalletView) decimal.Decimal {
	total := decimal.Zero
	for _, v := range views {
		total = total.Add(v.Wallet.Balance)
	}
	return total
}
