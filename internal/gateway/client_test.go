package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wallet-dashboard/internal/domain"
)

type staticToken struct {
	token string
	err   error
}

func (s staticToken) Token(context.Context) (string, error) { return s.token, s.err }

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, time.Second, staticToken{token: "tok"}, zap.NewNop())
}

func TestClient_SendsHeaders(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_, err := uuid.Parse(r.Header.Get("X-Request-ID"))
		assert.NoError(t, err)
		assert.Equal(t, "/wallets", r.URL.Path)
		assert.Equal(t, "u-7", r.URL.Query().Get("owner_id"))
		assert.False(t, r.URL.Query().Has("wallet_id"))
		_, _ = io.WriteString(w, `[{"walletType":"savings","accountId":"ACC-1","balance":"100.50","status":true},
			{"walletType":"crypto-vault","accountId":"ACC-2","balance":7,"status":false}]`)
	})

	wallets, err := client.GetWalletDetails(context.Background(), domain.WalletFilter{OwnerID: "u-7"})
	require.NoError(t, err)
	require.Len(t, wallets, 2)
	assert.True(t, decimal.RequireFromString("100.50").Equal(wallets[0].Balance))
	assert.True(t, wallets[0].Active)
	assert.Equal(t, domain.WalletType("crypto-vault"), wallets[1].WalletType)
	assert.True(t, decimal.NewFromInt(7).Equal(wallets[1].Balance))
}

func TestClient_TokenErrorStopsRequest(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))
	defer srv.Close()

	authErr := &domain.AuthenticationError{Err: domain.ErrNotLoggedIn}
	client := NewClient(srv.URL, time.Second, staticToken{err: authErr}, zap.NewNop())

	_, err := client.GetWalletDetails(context.Background(), domain.WalletFilter{})
	assert.ErrorIs(t, err, domain.ErrNotLoggedIn)
	assert.False(t, called)
}

func TestClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "detail surfaced verbatim",
			status: http.StatusBadRequest,
			body:   `{"detail":"Insufficient balance"}`,
			check: func(t *testing.T, err error) {
				var remote *domain.RemoteError
				require.True(t, errors.As(err, &remote))
				assert.Equal(t, http.StatusBadRequest, remote.StatusCode)
				assert.Equal(t, "Insufficient balance", remote.Message())
			},
		},
		{
			name:   "generic message without detail",
			status: http.StatusInternalServerError,
			body:   `<html>oops</html>`,
			check: func(t *testing.T, err error) {
				var remote *domain.RemoteError
				require.True(t, errors.As(err, &remote))
				assert.Equal(t, "Failed to transfer funds. Please try again.", remote.Message())
			},
		},
		{
			name:   "structured detail falls back to generic",
			status: http.StatusUnprocessableEntity,
			body:   `{"detail":[{"loc":["body","amount"],"msg":"field required"}]}`,
			check: func(t *testing.T, err error) {
				var remote *domain.RemoteError
				require.True(t, errors.As(err, &remote))
				assert.Empty(t, remote.Detail)
			},
		},
		{
			name:   "unauthorized is an authentication error",
			status: http.StatusUnauthorized,
			body:   `{"detail":"Token expired"}`,
			check: func(t *testing.T, err error) {
				var authErr *domain.AuthenticationError
				require.True(t, errors.As(err, &authErr))
				assert.ErrorIs(t, err, domain.ErrTokenRejected)
			},
		},
		{
			name:   "forbidden is an authentication error",
			status: http.StatusForbidden,
			check: func(t *testing.T, err error) {
				var authErr *domain.AuthenticationError
				assert.True(t, errors.As(err, &authErr))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})
			ack, err := client.Transfer(context.Background(), domain.TransferRequest{RecipientAccountID: "A", Amount: decimal.NewFromInt(1), Currency: "AT", FromWalletType: domain.WalletTypeSavings})
			assert.Nil(t, ack)
			tt.check(t, err)
		})
	}
}

func TestClient_GetLastTransaction(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantNil bool
		wantErr bool
	}{
		{name: "found", status: http.StatusOK, body: `{"id":42,"transactionType":"Deposit","amount":25,"walletType":"savings","status":true,"createdAt":"2025-05-01T10:00:00Z"}`},
		{name: "not found means none", status: http.StatusNotFound, body: `{"detail":"No transactions"}`, wantNil: true},
		{name: "null body means none", status: http.StatusOK, body: `null`, wantNil: true},
		{name: "server error", status: http.StatusBadGateway, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/transactions/last", r.URL.Path)
				assert.Equal(t, "ACC-1", r.URL.Query().Get("account_id"))
				assert.Equal(t, "savings", r.URL.Query().Get("wallet_type"))
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			tx, err := client.GetLastTransaction(context.Background(), "ACC-1", domain.WalletTypeSavings)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, tx)
				return
			}
			require.NotNil(t, tx)
			assert.Equal(t, "42", tx.ID)
			assert.Equal(t, domain.TransactionTypeDeposit, tx.TransactionType)
			assert.Equal(t, domain.StatusCompleted, tx.Status)
			assert.True(t, decimal.NewFromInt(25).Equal(tx.Amount.Value))
		})
	}
}

func TestClient_ListTransactions(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "ACC-1", q.Get("account_id"))
		assert.Equal(t, "u1", q.Get("done_by"))
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "25", q.Get("per_page"))
		assert.False(t, q.Has("wallet_type"))
		_, _ = io.WriteString(w, `{"transactions":[
			{"id":"t1","transactionType":"withdrawal","amount":"-50","walletType":"savings","status":false,"createdAt":"2025-05-01T10:00:00Z","originalAmount":4000,"originalCurrency":"rwf"},
			{"id":"t2","transactionType":"deposit","amount":"abc","walletType":"savings","status":true,"createdAt":"yesterday"}
		],"pagination":{"totalPages":3,"totalItems":70}}`)
	})

	page, err := client.ListTransactions(context.Background(), domain.TransactionQuery{AccountID: "ACC-1", DoneBy: "u1", Page: 2, PerPage: 25})
	require.NoError(t, err)
	assert.Equal(t, domain.Pagination{TotalPages: 3, TotalItems: 70}, page.Pagination)
	require.Len(t, page.Transactions, 2)

	failed := page.Transactions[0]
	assert.Equal(t, domain.StatusFailed, failed.Status)
	assert.Equal(t, "RWF", failed.OriginalCurrency)
	assert.True(t, decimal.NewFromInt(4000).Equal(failed.OriginalAmount.Value))

	malformed := page.Transactions[1]
	assert.True(t, malformed.Malformed())
	assert.Equal(t, domain.StatusCompleted, malformed.Status)
}

func TestClient_Convert(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "100", q.Get("amount"))
		assert.Equal(t, "AT", q.Get("from"))
		assert.Equal(t, "USD", q.Get("to"))
		_, _ = io.WriteString(w, `{"originalAmount":100,"originalCurrency":"AT","convertedAmount":"0.75","targetCurrency":"usd"}`)
	})

	quote, err := client.Convert(context.Background(), decimal.NewFromInt(100), "aft", "usd")
	require.NoError(t, err)
	assert.Equal(t, "USD", quote.TargetCurrency)
	assert.True(t, decimal.RequireFromString("0.75").Equal(quote.ConvertedAmount))

	_, err = client.Convert(context.Background(), decimal.NewFromInt(1), "AT", "nope")
	var verr *domain.ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestClient_WithdrawalRequests(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/withdrawal-requests":
			assert.Equal(t, "pending", r.URL.Query().Get("status"))
			_, _ = io.WriteString(w, `[
				{"id":1,"accountId":"A","walletType":"savings","amount":40,"withdrawalCurrency":"usd","status":false,"createdAt":"2025-05-01T10:00:00Z"},
				{"id":2,"accountId":"B","walletType":"savings","amount":10,"status":true,"processedAt":"2025-05-02T10:00:00Z"},
				{"id":3,"accountId":"C","walletType":"savings","amount":10,"status":true,"state":"rejected"}
			]`)
		case r.Method == http.MethodPost && r.URL.Path == "/withdrawal-requests/1/respond":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "approve", body["action"])
			_, _ = io.WriteString(w, `{"message":"Withdrawal approved","id":1}`)
		default:
			http.NotFound(w, r)
		}
	})

	reqs, err := client.ListWithdrawalRequests(context.Background(), domain.WithdrawalPending)
	require.NoError(t, err)
	require.Len(t, reqs, 3)
	assert.Equal(t, domain.WithdrawalPending, reqs[0].State)
	assert.Equal(t, "USD", reqs[0].WithdrawalCurrency)
	assert.Nil(t, reqs[0].ProcessedAt)
	assert.Equal(t, domain.WithdrawalApproved, reqs[1].State)
	assert.NotNil(t, reqs[1].ProcessedAt)
	assert.Equal(t, domain.WithdrawalRejected, reqs[2].State)

	ack, err := client.RespondWithdrawalRequest(context.Background(), "1", domain.ActionApprove)
	require.NoError(t, err)
	assert.Equal(t, &domain.Ack{Message: "Withdrawal approved", ID: "1"}, ack)
}

func TestClient_Commands(t *testing.T) {
	var paths []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		paths = append(paths, r.URL.Path)
		_, _ = io.WriteString(w, `{"detail":"Request received"}`)
	})
	ctx := context.Background()

	ack, err := client.ActivateWallet(ctx, domain.WalletTypeGoal)
	require.NoError(t, err)
	assert.Equal(t, "Request received", ack.Message)

	_, err = client.CreateDepositRequest(ctx, domain.DepositRequest{AccountID: "A", Amount: decimal.NewFromInt(1), Currency: "AT", WalletType: domain.WalletTypeSavings})
	require.NoError(t, err)
	_, err = client.CreateWithdrawalRequest(ctx, domain.WithdrawalSubmission{AccountID: "A", Amount: decimal.NewFromInt(1), WithdrawalCurrency: "AT", WalletType: domain.WalletTypeSavings})
	require.NoError(t, err)

	assert.Equal(t, []string{"/wallets/activate", "/deposit-requests", "/withdrawal-requests"}, paths)
}

func TestClient_RoleScopedMetrics(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/manager/dashboard-metrics":
			_, _ = io.WriteString(w, `{"totalAgents":12,"pendingWithdrawals":3}`)
		case "/manager/commission-stats":
			_, _ = io.WriteString(w, `{"totalCommission":"120.50"}`)
		case "/admin/users":
			_, _ = io.WriteString(w, `[{"id":"u1","firstName":"Aline","lastName":"M","email":"a@example.com","role":"agent","isActive":true}]`)
		}
	})
	ctx := context.Background()

	dash, err := client.ManagerDashboardMetrics(ctx)
	require.NoError(t, err)
	assert.Equal(t, float64(12), dash["totalAgents"])

	stats, err := client.ManagerCommissionStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, "120.50", stats["totalCommission"])

	users, err := client.AdminAllUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, domain.RoleAgent, users[0].Role)
	assert.True(t, users[0].Active)
}
