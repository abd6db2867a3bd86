package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// WithdrawalState is the approval state of a withdrawal request.
type WithdrawalState string

const (
	WithdrawalPending  WithdrawalState = "pending"
	WithdrawalApproved WithdrawalState = "approved"
	WithdrawalRejected WithdrawalState = "rejected"
)

// Terminal reports whether no further action is accepted.
func (s WithdrawalState) Terminal() bool {
	return s == WithdrawalApproved || s == WithdrawalRejected
}

// WithdrawalAction is an approver's response to a pending request.
type WithdrawalAction string

const (
	ActionApprove WithdrawalAction = "approve"
	ActionReject  WithdrawalAction = "reject"
)

// WithdrawalRequest is a withdrawal awaiting approval.
type WithdrawalRequest struct {
	ID                 string          `json:"id"`
	AccountID          string          `json:"accountId"`
	WalletType         WalletType      `json:"walletType"`
	UserName           string          `json:"userName,omitempty"`
	Amount             decimal.Decimal `json:"amount"`
	WithdrawalAmount   decimal.Decimal `json:"withdrawalAmount"`
	WithdrawalCurrency string          `json:"withdrawalCurrency"`
	Charges            decimal.Decimal `json:"charges"`
	TotalAmount        decimal.Decimal `json:"totalAmount"`
	State              WithdrawalState `json:"state"`
	CreatedAt          string          `json:"createdAt"`
	ProcessedAt        *time.Time      `json:"processedAt"`
}

// Apply moves a pending request to its terminal state. Terminal requests
// reject every action with ErrInvalidState and are left untouched.
func (w *WithdrawalRequest) Apply(action WithdrawalAction, now time.Time) error {
	if w.State != WithdrawalPending {
		return fmt.Errorf("withdrawal request %s is %s: %w", w.ID, w.State, ErrInvalidState)
	}
	switch action {
	case ActionApprove:
		w.State = WithdrawalApproved
	case ActionReject:
		w.State = WithdrawalRejected
	default:
		return &ValidationError{Field: "action", Reason: fmt.Sprintf("unknown action %q", action)}
	}
	w.ProcessedAt = &now
	return nil
}

// TransferRequest moves funds from one of the caller's wallets to another
// account.
type TransferRequest struct {
	RecipientAccountID string          `json:"recipientAccountId"`
	Amount             decimal.Decimal `json:"amount"`
	Currency           string          `json:"currency"`
	FromWalletType     WalletType      `json:"fromWalletType"`
}

// DepositRequest asks an agent-facing flow to credit a wallet.
type DepositRequest struct {
	AccountID  string          `json:"accountId"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	WalletType WalletType      `json:"walletType"`
}

// WithdrawalSubmission opens a new withdrawal request.
type WithdrawalSubmission struct {
	AccountID          string          `json:"accountId"`
	Amount             decimal.Decimal `json:"amount"`
	WithdrawalCurrency string          `json:"withdrawalCurrency"`
	WalletType         WalletType      `json:"walletType"`
}

// Ack is the remote service's acknowledgement of a command.
type Ack struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}
