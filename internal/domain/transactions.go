package domain

import (
	"strings"
	"time"
)

// TransactionType is an open enumeration of transaction kinds.
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
	TransactionTypeTransfer   TransactionType = "transfer"
	TransactionTypeCommission TransactionType = "commission"
)

// TransactionStatus separates "still pending" from "failed"; the remote
// service encodes both as status=false depending on the endpoint.
type TransactionStatus string

const (
	StatusCompleted TransactionStatus = "completed"
	StatusPending   TransactionStatus = "pending"
	StatusFailed    TransactionStatus = "failed"
)

// Transaction is a single ledger entry as reported by the remote service.
type Transaction struct {
	ID              string            `json:"id"`
	TransactionType TransactionType   `json:"transactionType"`
	Amount          Amount            `json:"amount"`
	WalletType      WalletType        `json:"walletType"`
	Status          TransactionStatus `json:"status"`
	// CreatedAt is kept as received; see CreatedTime.
	CreatedAt string `json:"createdAt"`

	OriginalAmount   Amount `json:"originalAmount"`
	OriginalCurrency string `json:"originalCurrency,omitempty"`
	DoneBy           string `json:"doneBy,omitempty"`
	UserName         string `json:"userName,omitempty"`
	AccountID        string `json:"accountId,omitempty"`
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	time.DateOnly,
}

// ParseTimestamp accepts the timestamp shapes the remote service emits.
// Zone-less values are read as UTC.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CreatedTime parses CreatedAt.
func (t Transaction) CreatedTime() (time.Time, bool) {
	return ParseTimestamp(t.CreatedAt)
}

// Malformed reports whether the record cannot take part in numeric or
// date aggregates.
func (t Transaction) Malformed() bool {
	if !t.Amount.Valid {
		return true
	}
	_, ok := t.CreatedTime()
	return !ok
}

// TransactionQuery selects one paginated transaction stream. Empty fields
// are not sent.
type TransactionQuery struct {
	AccountID  string
	WalletType WalletType
	DoneBy     string
	Page       int
	PerPage    int
}

// Pagination is the paging envelope returned with a transaction page.
type Pagination struct {
	TotalPages int `json:"totalPages"`
	TotalItems int `json:"totalItems"`
}

// TransactionPage is one page of a transaction stream.
type TransactionPage struct {
	Transactions []Transaction `json:"transactions"`
	Pagination   Pagination    `json:"pagination"`
}

// TransactionSource is an already-fetched stream, labelled for logging.
type TransactionSource struct {
	Name         string
	Transactions []Transaction
	// Truncated is set when the page cap stopped the fetch before the
	// last page, so totals over this source are incomplete.
	Truncated bool
}
