package usecase

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"wallet-dashboard/internal/clock"
	"wallet-dashboard/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// TransactionAggregator merges already-fetched transaction sources into one
// view and derives statistics. It performs no I/O.
type TransactionAggregator struct {
	clock  clock.Clock
	logger *zap.Logger
}

// NewTransactionAggregator creates an aggregator; clk anchors date ranges.
func NewTransactionAggregator(clk clock.Clock, logger *zap.Logger) *TransactionAggregator {
	return &TransactionAggregator{clock: clk, logger: logger}
}

// ViewOptions selects the set statistics are computed over.
type ViewOptions struct {
	StatsScope domain.StatsScope
}

// BuildView concatenates the sources, drops duplicate ids (first
// occurrence wins), filters, sorts and computes statistics. Statistics are
// always computed over the merged set, never per source.
func (a *TransactionAggregator) BuildView(sources []domain.TransactionSource, filter domain.TransactionFilter, sortState domain.SortState, opts ViewOptions) domain.TransactionView {
	merged, dropped := mergeSources(sources)
	if dropped > 0 {
		a.logger.Debug("dropped duplicate transactions", zap.Int("count", dropped), zap.Int("sources", len(sources)))
	}

	rows := a.Filter(merged, filter)
	SortTransactions(rows, sortState)

	statsSet := rows
	if opts.StatsScope == domain.StatsOverAll {
		statsSet = merged
	}
	stats := ComputeStatistics(statsSet)
	if stats.Excluded > 0 {
		a.logger.Warn("malformed transactions excluded from totals", zap.Int("excluded", stats.Excluded))
	}

	var truncated []string
	for _, src := range sources {
		if src.Truncated {
			truncated = append(truncated, src.Name)
		}
	}

	return domain.TransactionView{
		Rows:              rows,
		Statistics:        stats,
		Sources:           len(sources),
		DuplicatesDropped: dropped,
		TruncatedSources:  truncated,
		Filter:            filter,
		Sort:              sortState,
	}
}

func mergeSources(sources []domain.TransactionSource) ([]domain.Transaction, int) {
	total := 0
	for _, s := range sources {
		total += len(s.Transactions)
	}
	merged := make([]domain.Transaction, 0, total)
	seen := make(map[string]struct{}, total)
	dropped := 0
	for _, s := range sources {
		for _, tx := range s.Transactions {
			if _, dup := seen[tx.ID]; dup {
				dropped++
				continue
			}
			seen[tx.ID] = struct{}{}
			merged = append(merged, tx)
		}
	}
	return merged, dropped
}

// Filter returns the records matching every dimension of f. The input is
// not modified.
func (a *TransactionAggregator) Filter(txs []domain.Transaction, f domain.TransactionFilter) []domain.Transaction {
	now := a.clock.Now()
	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]domain.Transaction, 0, len(txs))
	for _, tx := range txs {
		if matchesSearch(tx, search) &&
			matchesSelector(string(tx.TransactionType), f.Type) &&
			matchesSelector(string(tx.Status), f.Status) &&
			matchesDateRange(tx, f.DateRange, now) {
			out = append(out, tx)
		}
	}
	return out
}

func matchesSearch(tx domain.Transaction, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(string(tx.TransactionType)), search) ||
		strings.Contains(strings.ToLower(string(tx.WalletType)), search)
}

func matchesSelector(value, selector string) bool {
	if selector == "" || selector == domain.FilterAll {
		return true
	}
	return strings.EqualFold(value, selector)
}

// matchesDateRange evaluates the bucket in now's location. Records whose
// timestamp cannot be parsed only match DateRangeAll.
func matchesDateRange(tx domain.Transaction, r domain.DateRange, now time.Time) bool {
	if r == "" || r == domain.DateRangeAll {
		return true
	}
	created, ok := tx.CreatedTime()
	if !ok {
		return false
	}
	created = created.In(now.Location())
	switch r {
	case domain.DateRangeToday:
		cy, cm, cd := created.Date()
		ny, nm, nd := now.Date()
		return cy == ny && cm == nm && cd == nd
	case domain.DateRangeWeek:
		return !created.Before(now.Add(-7*24*time.Hour)) && !created.After(now)
	case domain.DateRangeMonth:
		return created.Year() == now.Year() && created.Month() == now.Month()
	default:
		return false
	}
}

// SortTransactions orders txs in place by one key. Amounts compare
// numerically with invalid amounts last; every other key compares as a
// string. Equal keys keep their merge order.
func SortTransactions(txs []domain.Transaction, s domain.SortState) {
	if s.Key == "" {
		return
	}
	desc := s.Direction != domain.SortAsc

	if s.Key == domain.SortKeyAmount {
		sort.SliceStable(txs, func(i, j int) bool {
			ai, aj := txs[i].Amount, txs[j].Amount
			if ai.Valid != aj.Valid {
				return ai.Valid
			}
			if !ai.Valid {
				return false
			}
			if desc {
				return ai.Value.GreaterThan(aj.Value)
			}
			return ai.Value.LessThan(aj.Value)
		})
		return
	}

	field, ok := stringFields[s.Key]
	if !ok {
		return
	}
	sort.SliceStable(txs, func(i, j int) bool {
		fi, fj := field(txs[i]), field(txs[j])
		if desc {
			return fi > fj
		}
		return fi < fj
	})
}

var stringFields = map[string]func(domain.Transaction) string{
	domain.SortKeyCreatedAt:  func(t domain.Transaction) string { return t.CreatedAt },
	domain.SortKeyType:       func(t domain.Transaction) string { return string(t.TransactionType) },
	domain.SortKeyWalletType: func(t domain.Transaction) string { return string(t.WalletType) },
	domain.SortKeyStatus:     func(t domain.Transaction) string { return string(t.Status) },
	domain.SortKeyID:         func(t domain.Transaction) string { return t.ID },
	domain.SortKeyDoneBy:     func(t domain.Transaction) string { return t.DoneBy },
	domain.SortKeyUserName:   func(t domain.Transaction) string { return t.UserName },
}

// ComputeStatistics derives totals in one pass. Malformed records count
// toward Count and SuccessRate, since their status is intact, but not
// toward any amount or date aggregate.
func ComputeStatistics(txs []domain.Transaction) domain.Statistics {
	stats := domain.Statistics{
		TotalInflow:  decimal.Zero,
		TotalOutflow: decimal.Zero,
		Net:          decimal.Zero,
		Categories:   []domain.CategoryTotal{},
		Daily:        []domain.DailyVolume{},
	}

	categories := make(map[domain.TransactionType]*domain.CategoryTotal)
	days := make(map[string]*domain.DailyVolume)

	for _, tx := range txs {
		stats.Count++
		if tx.Status == domain.StatusCompleted {
			stats.Completed++
		}

		created, timeOK := tx.CreatedTime()
		if !tx.Amount.Valid || !timeOK {
			stats.Excluded++
			continue
		}

		amount := tx.Amount.Value
		stats.Net = stats.Net.Add(amount)

		day := created.Format(time.DateOnly)
		dv, ok := days[day]
		if !ok {
			dv = &domain.DailyVolume{Date: day, Credit: decimal.Zero, Debit: decimal.Zero}
			days[day] = dv
		}
		dv.Count++

		switch {
		case amount.IsPositive():
			stats.TotalInflow = stats.TotalInflow.Add(amount)
			dv.Credit = dv.Credit.Add(amount)
		case amount.IsNegative():
			stats.TotalOutflow = stats.TotalOutflow.Add(amount.Abs())
			dv.Debit = dv.Debit.Add(amount.Abs())
		}

		ct, ok := categories[tx.TransactionType]
		if !ok {
			ct = &domain.CategoryTotal{Type: tx.TransactionType, Total: decimal.Zero}
			categories[tx.TransactionType] = ct
		}
		ct.Count++
		ct.Total = ct.Total.Add(amount.Abs())
	}

	if stats.Count > 0 {
		rate, _ := decimal.NewFromInt(int64(stats.Completed)).
			Mul(hundred).
			DivRound(decimal.NewFromInt(int64(stats.Count)), 2).
			Float64()
		stats.SuccessRate = rate
	}

	for _, ct := range categories {
		stats.Categories = append(stats.Categories, *ct)
	}
	sort.Slice(stats.Categories, func(i, j int) bool { return stats.Categories[i].Type < stats.Categories[j].Type })

	for _, dv := range days {
		stats.Daily = append(stats.Daily, *dv)
	}
	sort.Slice(stats.Daily, func(i, j int) bool { return stats.Daily[i].Date < stats.Daily[j].Date })

	return stats
}
