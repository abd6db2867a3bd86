package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"wallet-dashboard/internal/domain"
)

// WalletAggregator loads the session's wallets and enriches each one with
// its most recent transaction.
type WalletAggregator struct {
	gateway  WalletGateway
	sessions SessionProvider
	logger   *zap.Logger
}

// NewWalletAggregator creates a new wallet aggregator instance.
func NewWalletAggregator(gateway WalletGateway, sessions SessionProvider, logger *zap.Logger) *WalletAggregator {
	return &WalletAggregator{gateway: gateway, sessions: sessions, logger: logger}
}

// WalletOptions controls one aggregation.
type WalletOptions struct {
	Filter domain.WalletFilter
	// Reveal shows full account numbers instead of masked ones.
	Reveal bool
}

// LoadWallets fetches the wallet list, then looks up every wallet's last
// transaction concurrently. A failed lookup degrades only that wallet; a
// failed wallet-list fetch is an AggregationFatalError with no views.
func (a *WalletAggregator) LoadWallets(ctx context.Context, opts WalletOptions) (*domain.WalletSummary, error) {
	sess, err := a.sessions.Current(ctx)
	if err != nil {
		return emptySummary(), err
	}

	wallets, err := a.gateway.GetWalletDetails(ctx, opts.Filter)
	if err != nil {
		a.logger.Error("wallet list fetch failed", zap.String("user_id", sess.User.ID), zap.Error(err))
		return emptySummary(), &domain.AggregationFatalError{Op: "load wallets", Err: err}
	}

	type lookup struct {
		tx  *domain.Transaction
		err error
	}
	results := make([]lookup, len(wallets))

	g, gctx := errgroup.WithContext(ctx)
	for i, w := range wallets {
		g.Go(func() error {
			tx, err := a.gateway.GetLastTransaction(gctx, w.AccountID, w.WalletType)
			results[i] = lookup{tx: tx, err: err}
			// Never fail the group: a sibling's error must not cancel the
			// remaining lookups.
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return emptySummary(), err
	}
	if !a.sessions.Active(sess.Epoch) {
		return emptySummary(), domain.ErrSessionEnded
	}

	summary := &domain.WalletSummary{
		Wallets:  make([]domain.WalletView, 0, len(wallets)),
		Currency: domain.PlatformCurrency,
	}
	for i, w := range wallets {
		view := domain.WalletView{
			Wallet:         w,
			Meta:           w.WalletType.Meta(),
			DisplayAccount: displayAccount(w.AccountID, opts.Reveal),
			OwnerName:      w.OwnerName,
			LastActivity:   domain.NoTransactionsLabel,
		}
		if view.OwnerName == "" {
			view.OwnerName = sess.User.FirstName
		}

		r := results[i]
		switch {
		case r.err != nil:
			partial := &domain.PartialAggregationError{
				Item: fmt.Sprintf("%s/%s", w.AccountID, w.WalletType),
				Err:  r.err,
			}
			a.logger.Warn("last transaction lookup failed", zap.Error(partial))
			view.LookupFailed = true
			summary.PartialFailures++
		case r.tx != nil:
			view.LastTransaction = r.tx
			view.LastActivity = lastActivity(*r.tx)
		}
		summary.Wallets = append(summary.Wallets, view)
	}
	summary.TotalBalance = domain.SumBalances(summary.Wallets)

	a.logger.Debug("wallets aggregated",
		zap.Int("wallets", len(summary.Wallets)),
		zap.Int("partial_failures", summary.PartialFailures),
		zap.String("total_balance", summary.TotalBalance.StringFixed(2)))
	return summary, nil
}

func emptySummary() *domain.WalletSummary {
	return &domain.WalletSummary{Wallets: []domain.WalletView{}, Currency: domain.PlatformCurrency}
}

func displayAccount(accountID string, reveal bool) string {
	if reveal {
		return accountID
	}
	return domain.MaskAccountID(accountID)
}

func lastActivity(tx domain.Transaction) string {
	if !tx.Amount.Valid {
		return string(tx.TransactionType)
	}
	return fmt.Sprintf("%s %s %s", tx.TransactionType, tx.Amount.Abs().StringFixed(2), domain.PlatformCurrency)
}
