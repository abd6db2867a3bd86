package gateway

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"wallet-dashboard/internal/domain"
)

// flexID accepts ids sent either as JSON strings or numbers.
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

// transactionWire is a transaction as the service sends it. Status is a
// bool there; in transaction lists false means failed.
type transactionWire struct {
	ID               flexID        `json:"id"`
	TransactionType  string        `json:"transactionType"`
	Amount           domain.Amount `json:"amount"`
	WalletType       string        `json:"walletType"`
	Status           *bool         `json:"status"`
	CreatedAt        string        `json:"createdAt"`
	OriginalAmount   domain.Amount `json:"originalAmount"`
	OriginalCurrency string        `json:"originalCurrency"`
	DoneBy           string        `json:"doneBy"`
	UserName         string        `json:"userName"`
	AccountID        string        `json:"accountId"`
}

func (w transactionWire) toDomain() domain.Transaction {
	status := domain.StatusFailed
	switch {
	case w.Status == nil:
		status = domain.StatusPending
	case *w.Status:
		status = domain.StatusCompleted
	}
	return domain.Transaction{
		ID:               string(w.ID),
		TransactionType:  domain.TransactionType(strings.ToLower(strings.TrimSpace(w.TransactionType))),
		Amount:           w.Amount,
		WalletType:       domain.WalletType(w.WalletType),
		Status:           status,
		CreatedAt:        w.CreatedAt,
		OriginalAmount:   w.OriginalAmount,
		OriginalCurrency: canonicalCurrency(w.OriginalCurrency),
		DoneBy:           w.DoneBy,
		UserName:         w.UserName,
		AccountID:        w.AccountID,
	}
}

type transactionPageWire struct {
	Transactions []transactionWire `json:"transactions"`
	Pagination   domain.Pagination `json:"pagination"`
}

// withdrawalWire is a withdrawal request. Here status=false means the
// request is still pending; an explicit state wins when present.
type withdrawalWire struct {
	ID                 flexID          `json:"id"`
	AccountID          string          `json:"accountId"`
	WalletType         string          `json:"walletType"`
	UserName           string          `json:"userName"`
	Amount             decimal.Decimal `json:"amount"`
	WithdrawalAmount   decimal.Decimal `json:"withdrawalAmount"`
	WithdrawalCurrency string          `json:"withdrawalCurrency"`
	Charges            decimal.Decimal `json:"charges"`
	TotalAmount        decimal.Decimal `json:"totalAmount"`
	Status             bool            `json:"status"`
	State              string          `json:"state"`
	CreatedAt          string          `json:"createdAt"`
	ProcessedAt        string          `json:"processedAt"`
}

func (w withdrawalWire) toDomain() domain.WithdrawalRequest {
	state := domain.WithdrawalState(strings.ToLower(strings.TrimSpace(w.State)))
	switch state {
	case domain.WithdrawalPending, domain.WithdrawalApproved, domain.WithdrawalRejected:
	default:
		state = domain.WithdrawalPending
		if w.Status {
			state = domain.WithdrawalApproved
		}
	}
	req := domain.WithdrawalRequest{
		ID:                 string(w.ID),
		AccountID:          w.AccountID,
		WalletType:         domain.WalletType(w.WalletType),
		UserName:           w.UserName,
		Amount:             w.Amount,
		WithdrawalAmount:   w.WithdrawalAmount,
		WithdrawalCurrency: canonicalCurrency(w.WithdrawalCurrency),
		Charges:            w.Charges,
		TotalAmount:        w.TotalAmount,
		State:              state,
		CreatedAt:          w.CreatedAt,
	}
	if t, ok := domain.ParseTimestamp(w.ProcessedAt); ok {
		processed := t.In(time.UTC)
		req.ProcessedAt = &processed
	}
	return req
}

type conversionWire struct {
	OriginalAmount   decimal.Decimal `json:"originalAmount"`
	OriginalCurrency string          `json:"originalCurrency"`
	ConvertedAmount  decimal.Decimal `json:"convertedAmount"`
	TargetCurrency   string          `json:"targetCurrency"`
}

type ackWire struct {
	Message string `json:"message"`
	Detail  string `json:"detail"`
	ID      flexID `json:"id"`
}

func (w ackWire) toDomain() *domain.Ack {
	msg := w.Message
	if msg == "" {
		msg = w.Detail
	}
	return &domain.Ack{Message: msg, ID: string(w.ID)}
}

type respondWire struct {
	Action domain.WithdrawalAction `json:"action"`
}

type activateWire struct {
	WalletType domain.WalletType `json:"walletType"`
}

// canonicalCurrency normalizes codes coming off the wire. Codes the
// normalizer rejects are kept, upper-cased, so nothing is lost.
func canonicalCurrency(code string) string {
	if strings.TrimSpace(code) == "" {
		return ""
	}
	normalized, err := domain.NormalizeCurrency(code)
	if err != nil {
		return strings.ToUpper(strings.TrimSpace(code))
	}
	return normalized
}
