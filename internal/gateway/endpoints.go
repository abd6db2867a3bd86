package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"wallet-dashboard/internal/domain"
)

// GetWalletDetails lists wallets, optionally narrowed to one owner or one
// wallet.
func (c *Client) GetWalletDetails(ctx context.Context, filter domain.WalletFilter) ([]domain.Wallet, error) {
	q := url.Values{}
	if filter.OwnerID != "" {
		q.Set("owner_id", filter.OwnerID)
	}
	if filter.WalletID != "" {
		q.Set("wallet_id", filter.WalletID)
	}
	var wallets []domain.Wallet
	if err := c.call(ctx, "load wallets", http.MethodGet, "/wallets", q, nil, &wallets); err != nil {
		return nil, err
	}
	return wallets, nil
}

// GetLastTransaction returns nil, nil when the wallet has no history.
func (c *Client) GetLastTransaction(ctx context.Context, accountID string, walletType domain.WalletType) (*domain.Transaction, error) {
	q := url.Values{}
	q.Set("account_id", accountID)
	q.Set("wallet_type", string(walletType))

	var wire *transactionWire
	err := c.call(ctx, "load last transaction", http.MethodGet, "/transactions/last", q, nil, &wire)
	if isStatus(err, http.StatusNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if wire == nil || wire.ID == "" {
		return nil, nil
	}
	tx := wire.toDomain()
	return &tx, nil
}

func (c *Client) ListTransactions(ctx context.Context, query domain.TransactionQuery) (*domain.TransactionPage, error) {
	q := url.Values{}
	if query.AccountID != "" {
		q.Set("account_id", query.AccountID)
	}
	if query.WalletType != "" {
		q.Set("wallet_type", string(query.WalletType))
	}
	if query.DoneBy != "" {
		q.Set("done_by", query.DoneBy)
	}
	if query.Page > 0 {
		q.Set("page", strconv.Itoa(query.Page))
	}
	if query.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(query.PerPage))
	}

	var wire transactionPageWire
	if err := c.call(ctx, "load transactions", http.MethodGet, "/transactions", q, nil, &wire); err != nil {
		return nil, err
	}
	page := &domain.TransactionPage{
		Transactions: make([]domain.Transaction, 0, len(wire.Transactions)),
		Pagination:   wire.Pagination,
	}
	for _, tx := range wire.Transactions {
		page.Transactions = append(page.Transactions, tx.toDomain())
	}
	return page, nil
}

// Convert quotes amount in fromCurrency expressed in toCurrency.
func (c *Client) Convert(ctx context.Context, amount decimal.Decimal, fromCurrency, toCurrency string) (*domain.ConversionQuote, error) {
	from, err := domain.NormalizeCurrency(fromCurrency)
	if err != nil {
		return nil, err
	}
	to, err := domain.NormalizeCurrency(toCurrency)
	if err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("amount", amount.String())
	q.Set("from", from)
	q.Set("to", to)

	var wire conversionWire
	if err := c.call(ctx, "convert currency", http.MethodGet, "/conversion", q, nil, &wire); err != nil {
		return nil, err
	}
	quote := &domain.ConversionQuote{
		OriginalAmount:   wire.OriginalAmount,
		OriginalCurrency: canonicalCurrency(wire.OriginalCurrency),
		ConvertedAmount:  wire.ConvertedAmount,
		TargetCurrency:   canonicalCurrency(wire.TargetCurrency),
	}
	if quote.OriginalCurrency == "" {
		quote.OriginalCurrency = from
	}
	if quote.TargetCurrency == "" {
		quote.TargetCurrency = to
	}
	return quote, nil
}

func (c *Client) ActivateWallet(ctx context.Context, walletType domain.WalletType) (*domain.Ack, error) {
	return c.command(ctx, "activate wallet", "/wallets/activate", activateWire{WalletType: walletType})
}

func (c *Client) Transfer(ctx context.Context, req domain.TransferRequest) (*domain.Ack, error) {
	return c.command(ctx, "transfer funds", "/transfers", req)
}

func (c *Client) CreateDepositRequest(ctx context.Context, req domain.DepositRequest) (*domain.Ack, error) {
	return c.command(ctx, "create deposit request", "/deposit-requests", req)
}

func (c *Client) CreateWithdrawalRequest(ctx context.Context, req domain.WithdrawalSubmission) (*domain.Ack, error) {
	return c.command(ctx, "create withdrawal request", "/withdrawal-requests", req)
}

// ListWithdrawalRequests lists requests in state. An empty state lists all.
func (c *Client) ListWithdrawalRequests(ctx context.Context, state domain.WithdrawalState) ([]domain.WithdrawalRequest, error) {
	q := url.Values{}
	if state != "" {
		q.Set("status", string(state))
	}
	var wire []withdrawalWire
	if err := c.call(ctx, "load withdrawal requests", http.MethodGet, "/withdrawal-requests", q, nil, &wire); err != nil {
		return nil, err
	}
	out := make([]domain.WithdrawalRequest, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.toDomain())
	}
	return out, nil
}

func (c *Client) RespondWithdrawalRequest(ctx context.Context, requestID string, action domain.WithdrawalAction) (*domain.Ack, error) {
	path := "/withdrawal-requests/" + url.PathEscape(requestID) + "/respond"
	return c.command(ctx, "respond to withdrawal request", path, respondWire{Action: action})
}

// ManagerDashboardMetrics returns the pre-aggregated manager dashboard.
func (c *Client) ManagerDashboardMetrics(ctx context.Context) (domain.Metrics, error) {
	return c.metrics(ctx, "load dashboard metrics", "/manager/dashboard-metrics")
}

// ManagerCommissionStats returns the pre-aggregated commission figures.
func (c *Client) ManagerCommissionStats(ctx context.Context) (domain.Metrics, error) {
	return c.metrics(ctx, "load commission stats", "/manager/commission-stats")
}

func (c *Client) AdminAllUsers(ctx context.Context) ([]domain.UserSummary, error) {
	var users []domain.UserSummary
	if err := c.call(ctx, "load users", http.MethodGet, "/admin/users", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) metrics(ctx context.Context, op, path string) (domain.Metrics, error) {
	metrics := domain.Metrics{}
	if err := c.call(ctx, op, http.MethodGet, path, nil, nil, &metrics); err != nil {
		return nil, err
	}
	return metrics, nil
}

func (c *Client) command(ctx context.Context, op, path string, body any) (*domain.Ack, error) {
	var wire ackWire
	if err := c.call(ctx, op, http.MethodPost, path, nil, body, &wire); err != nil {
		return nil, err
	}
	return wire.toDomain(), nil
}
