package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"wallet-dashboard/internal/domain"
)

// NamedQuery labels one transaction stream, e.g. "my-wallet" or
// "processed-for-others".
type NamedQuery struct {
	Name  string
	Query domain.TransactionQuery
}

// TransactionLoader fetches several transaction streams concurrently so
// they can be handed to TransactionAggregator.BuildView as one set.
type TransactionLoader struct {
	gateway  TransactionGateway
	sessions SessionProvider
	logger   *zap.Logger
	maxPages int
	perPage  int
}

// NewTransactionLoader creates a loader fetching at most maxPages pages of
// perPage rows per query.
func NewTransactionLoader(gateway TransactionGateway, sessions SessionProvider, logger *zap.Logger, maxPages, perPage int) *TransactionLoader {
	if maxPages < 1 {
		maxPages = 1
	}
	if perPage < 1 {
		perPage = 50
	}
	return &TransactionLoader{gateway: gateway, sessions: sessions, logger: logger, maxPages: maxPages, perPage: perPage}
}

// Load runs every query concurrently. Each query walks its pages in order
// up to the page cap. Any failed query aborts the load with an
// AggregationFatalError, since a partial history would misstate totals.
func (l *TransactionLoader) Load(ctx context.Context, queries ...NamedQuery) ([]domain.TransactionSource, error) {
	sess, err := l.sessions.Current(ctx)
	if err != nil {
		return nil, err
	}

	sources := make([]domain.TransactionSource, len(queries))
	g, gctx := errgroup.WithContext(ctx)
	for i, q := range queries {
		g.Go(func() error {
			txs, truncated, err := l.fetchAll(gctx, q.Query)
			if err != nil {
				return fmt.Errorf("source %s: %w", q.Name, err)
			}
			if truncated {
				l.logger.Warn("transaction history truncated at page cap",
					zap.String("source", q.Name), zap.Int("max_pages", l.maxPages), zap.Int("loaded", len(txs)))
			}
			sources[i] = domain.TransactionSource{Name: q.Name, Transactions: txs, Truncated: truncated}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		l.logger.Error("transaction load failed", zap.String("user_id", sess.User.ID), zap.Error(err))
		return nil, &domain.AggregationFatalError{Op: "load transactions", Err: err}
	}
	if !l.sessions.Active(sess.Epoch) {
		return nil, domain.ErrSessionEnded
	}
	return sources, nil
}

// fetchAll walks pages from q.Page on. truncated reports that the page
// cap was hit while the server still listed more pages.
func (l *TransactionLoader) fetchAll(ctx context.Context, q domain.TransactionQuery) (all []domain.Transaction, truncated bool, err error) {
	if q.PerPage < 1 {
		q.PerPage = l.perPage
	}
	start := q.Page
	if start < 1 {
		start = 1
	}

	for page := start; page < start+l.maxPages; page++ {
		q.Page = page
		result, err := l.gateway.ListTransactions(ctx, q)
		if err != nil {
			return nil, false, err
		}
		all = append(all, result.Transactions...)
		if page >= result.Pagination.TotalPages || len(result.Transactions) == 0 {
			return all, false, nil
		}
	}
	return all, true, nil
}
