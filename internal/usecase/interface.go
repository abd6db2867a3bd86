package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"wallet-dashboard/internal/domain"
	"wallet-dashboard/internal/session"
)

// The usecase layer depends on these interfaces, not on the HTTP client.
// gateway.Client satisfies all of the gateway ones.
//
//go:generate mockgen -destination=mocks/mock_usecase.go -source=interface.go -package=mock_usecase

// WalletGateway reads wallet snapshots.
type WalletGateway interface {
	GetWalletDetails(ctx context.Context, filter domain.WalletFilter) ([]domain.Wallet, error)
	// GetLastTransaction returns nil, nil when the wallet has no history.
	GetLastTransaction(ctx context.Context, accountID string, walletType domain.WalletType) (*domain.Transaction, error)
}

// TransactionGateway reads paginated transaction streams.
type TransactionGateway interface {
	ListTransactions(ctx context.Context, query domain.TransactionQuery) (*domain.TransactionPage, error)
}

// Converter quotes a currency conversion.
type Converter interface {
	Convert(ctx context.Context, amount decimal.Decimal, fromCurrency, toCurrency string) (*domain.ConversionQuote, error)
}

// CommandGateway issues requests that may change balances server-side.
type CommandGateway interface {
	ActivateWallet(ctx context.Context, walletType domain.WalletType) (*domain.Ack, error)
	Transfer(ctx context.Context, req domain.TransferRequest) (*domain.Ack, error)
	CreateDepositRequest(ctx context.Context, req domain.DepositRequest) (*domain.Ack, error)
	CreateWithdrawalRequest(ctx context.Context, req domain.WithdrawalSubmission) (*domain.Ack, error)
	ListWithdrawalRequests(ctx context.Context, state domain.WithdrawalState) ([]domain.WithdrawalRequest, error)
	RespondWithdrawalRequest(ctx context.Context, requestID string, action domain.WithdrawalAction) (*domain.Ack, error)
}

// ReportGateway reads role-scoped, pre-aggregated figures. They are shown
// as received and never recomputed.
type ReportGateway interface {
	ManagerDashboardMetrics(ctx context.Context) (domain.Metrics, error)
	ManagerCommissionStats(ctx context.Context) (domain.Metrics, error)
	AdminAllUsers(ctx context.Context) ([]domain.UserSummary, error)
}

// SessionProvider is the slice of session.Manager the aggregators need.
type SessionProvider interface {
	Current(ctx context.Context) (*session.Session, error)
	Active(epoch uint64) bool
}
