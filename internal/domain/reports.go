package domain

import "github.com/shopspring/decimal"

// DateRange is one of four exclusive date buckets.
type DateRange string

const (
	DateRangeAll   DateRange = "all"
	DateRangeToday DateRange = "today"
	DateRangeWeek  DateRange = "week"
	DateRangeMonth DateRange = "month"
)

// FilterAll is the selector value that matches every record.
const FilterAll = "all"

// TransactionFilter is the active filter set. A record must match every
// dimension. Empty selectors behave like FilterAll.
type TransactionFilter struct {
	Search    string    `json:"search"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	DateRange DateRange `json:"dateRange"`
}

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Sort keys understood by the aggregator. Any other key is compared as a
// string on the matching field, or sorts nothing when unknown.
const (
	SortKeyAmount     = "amount"
	SortKeyCreatedAt  = "createdAt"
	SortKeyType       = "transactionType"
	SortKeyWalletType = "walletType"
	SortKeyStatus     = "status"
	SortKeyID         = "id"
	SortKeyDoneBy     = "doneBy"
	SortKeyUserName   = "userName"
)

// SortState is a single active sort key and its direction.
type SortState struct {
	Key       string        `json:"key"`
	Direction SortDirection `json:"direction"`
}

// Toggle returns the state after the user selects key: the same key flips
// direction, a new key starts descending.
func (s SortState) Toggle(key string) SortState {
	if s.Key == key {
		if s.Direction == SortAsc {
			return SortState{Key: key, Direction: SortDesc}
		}
		return SortState{Key: key, Direction: SortAsc}
	}
	return SortState{Key: key, Direction: SortDesc}
}

// StatsScope tells the aggregator which set statistics run over.
type StatsScope int

const (
	StatsOverFiltered StatsScope = iota
	StatsOverAll
)

// CategoryTotal is the per-transaction-type breakdown.
type CategoryTotal struct {
	Type  TransactionType `json:"type"`
	Count int             `json:"count"`
	// Total is the sum of absolute amounts.
	Total decimal.Decimal `json:"total"`
}

// DailyVolume splits one calendar day into credit and debit sub-totals.
type DailyVolume struct {
	Date   string          `json:"date"`
	Credit decimal.Decimal `json:"credit"`
	Debit  decimal.Decimal `json:"debit"`
	Count  int             `json:"count"`
}

// Statistics are derived from a transaction set in one pass.
type Statistics struct {
	Count        int             `json:"count"`
	Completed    int             `json:"completed"`
	TotalInflow  decimal.Decimal `json:"totalInflow"`
	TotalOutflow decimal.Decimal `json:"totalOutflow"`
	Net          decimal.Decimal `json:"net"`
	// SuccessRate is a percentage in [0, 100].
	SuccessRate float64         `json:"successRate"`
	Categories  []CategoryTotal `json:"categories"`
	Daily       []DailyVolume   `json:"daily"`
	// Excluded counts malformed records left out of numeric aggregates.
	Excluded int `json:"excluded"`
}

// TypeTotal returns the absolute total for one transaction type.
func (s Statistics) TypeTotal(t TransactionType) decimal.Decimal {
	for _, c := range s.Categories {
		if c.Type == t {
			return c.Total
		}
	}
	return decimal.Zero
}

// TransactionView is the merged, filtered and sorted collection.
type TransactionView struct {
	Rows              []Transaction     `json:"rows"`
	Statistics        Statistics        `json:"statistics"`
	Sources           int               `json:"sources"`
	DuplicatesDropped int               `json:"duplicatesDropped"`
	// TruncatedSources names the sources cut short by the page cap.
	TruncatedSources  []string          `json:"truncatedSources,omitempty"`
	Filter            TransactionFilter `json:"filter"`
	Sort              SortState         `json:"sort"`
}

// Page returns the 1-based page of rows. Out-of-range pages are empty.
func (v TransactionView) Page(page, perPage int) []Transaction {
	if page < 1 || perPage < 1 || page > v.TotalPages(perPage) {
		return nil
	}
	// page-1 < TotalPages keeps start below len(v.Rows), so neither the
	// product nor the sum below can wrap.
	start := (page - 1) * perPage
	end := len(v.Rows)
	if perPage < end-start {
		end = start + perPage
	}
	return v.Rows[start:end]
}

// TotalPages is the page count for perPage rows per page.
func (v TransactionView) TotalPages(perPage int) int {
	if perPage < 1 || len(v.Rows) == 0 {
		return 0
	}
	return 1 + (len(v.Rows)-1)/perPage
}
