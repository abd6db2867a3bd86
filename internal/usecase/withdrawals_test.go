package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wallet-dashboard/internal/clock"
	"wallet-dashboard/internal/domain"
	"wallet-dashboard/internal/usecase"
	mock_usecase "wallet-dashboard/internal/usecase/mocks"
)

func TestWithdrawalDesk_Respond(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	gw := mock_usecase.NewMockCommandGateway(ctrl)
	desk := usecase.NewWithdrawalDesk(gw, clock.Fake(now), zap.NewNop())

	req := &domain.WithdrawalRequest{ID: "w-1", State: domain.WithdrawalPending, Amount: decimal.NewFromInt(40)}

	gw.EXPECT().RespondWithdrawalRequest(gomock.Any(), "w-1", domain.ActionApprove).
		Return(&domain.Ack{Message: "Withdrawal approved"}, nil)

	ack, err := desk.Respond(context.Background(), req, domain.ActionApprove)
	require.NoError(t, err)
	assert.Equal(t, "Withdrawal approved", ack.Message)
	assert.Equal(t, domain.WithdrawalApproved, req.State)
	require.NotNil(t, req.ProcessedAt)
	assert.Equal(t, now, *req.ProcessedAt)

	// A second response is refused locally; the gateway sees nothing.
	_, err = desk.Respond(context.Background(), req, domain.ActionReject)
	assert.True(t, errors.Is(err, domain.ErrInvalidState))
	assert.Equal(t, domain.WithdrawalApproved, req.State)
}

func TestWithdrawalDesk_RespondErrors(t *testing.T) {
	tests := []struct {
		name      string
		action    domain.WithdrawalAction
		remoteErr error
		check     func(t *testing.T, err error)
	}{
		{
			name:   "unknown action",
			action: "escalate",
			check: func(t *testing.T, err error) {
				var verr *domain.ValidationError
				assert.True(t, errors.As(err, &verr))
			},
		},
		{
			name:      "remote failure leaves the request pending",
			action:    domain.ActionReject,
			remoteErr: &domain.RemoteError{Op: "respond to withdrawal request", StatusCode: 409, Detail: "Already processed"},
			check: func(t *testing.T, err error) {
				var remote *domain.RemoteError
				require.True(t, errors.As(err, &remote))
				assert.Equal(t, "Already processed", remote.Message())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			gw := mock_usecase.NewMockCommandGateway(ctrl)
			if tt.remoteErr != nil {
				gw.EXPECT().RespondWithdrawalRequest(gomock.Any(), "w-2", tt.action).Return(nil, tt.remoteErr)
			}
			req := &domain.WithdrawalRequest{ID: "w-2", State: domain.WithdrawalPending}

			_, err := usecase.NewWithdrawalDesk(gw, clock.Fake(time.Now()), zap.NewNop()).
				Respond(context.Background(), req, tt.action)
			tt.check(t, err)
			assert.Equal(t, domain.WithdrawalPending, req.State)
			assert.Nil(t, req.ProcessedAt)
		})
	}
}

func TestWithdrawalDesk_Commands(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mock_usecase.NewMockCommandGateway(ctrl)
	desk := usecase.NewWithdrawalDesk(gw, clock.Fake(time.Now()), zap.NewNop())
	ctx := context.Background()

	gw.EXPECT().Transfer(gomock.Any(), domain.TransferRequest{
		RecipientAccountID: "ACC-9",
		Amount:             decimal.NewFromInt(10),
		Currency:           "AT",
		FromWalletType:     domain.WalletTypeSavings,
	}).Return(&domain.Ack{Message: "Transfer successful", ID: "tr-1"}, nil)

	ack, err := desk.Transfer(ctx, domain.TransferRequest{
		RecipientAccountID: "ACC-9",
		Amount:             decimal.NewFromInt(10),
		Currency:           "aft",
		FromWalletType:     domain.WalletTypeSavings,
	})
	require.NoError(t, err)
	assert.Equal(t, "tr-1", ack.ID)

	gw.EXPECT().CreateDepositRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req domain.DepositRequest) (*domain.Ack, error) {
			assert.Equal(t, "USD", req.Currency)
			return nil, nil
		})
	ack, err = desk.Deposit(ctx, domain.DepositRequest{AccountID: "ACC-1", Amount: decimal.NewFromInt(5), Currency: "usd", WalletType: domain.WalletTypeBusiness})
	require.NoError(t, err)
	assert.NotNil(t, ack)

	gw.EXPECT().CreateWithdrawalRequest(gomock.Any(), gomock.Any()).Return(&domain.Ack{Message: "Withdrawal request submitted"}, nil)
	_, err = desk.Withdraw(ctx, domain.WithdrawalSubmission{AccountID: "ACC-1", Amount: decimal.NewFromInt(5), WithdrawalCurrency: "RWF", WalletType: domain.WalletTypeSavings})
	require.NoError(t, err)

	gw.EXPECT().ActivateWallet(gomock.Any(), domain.WalletTypeGoal).Return(nil, &domain.RemoteError{Op: "activate wallet", StatusCode: 400})
	_, err = desk.ActivateWallet(ctx, domain.WalletTypeGoal)
	assert.Error(t, err)

	gw.EXPECT().ListWithdrawalRequests(gomock.Any(), domain.WithdrawalPending).
		Return([]domain.WithdrawalRequest{{ID: "w-1", State: domain.WithdrawalPending}}, nil)
	pending, err := desk.Pending(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}

func TestWithdrawalDesk_ValidatesBeforeSending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No expectations: any gateway call fails the test.
	desk := usecase.NewWithdrawalDesk(mock_usecase.NewMockCommandGateway(ctrl), clock.Fake(time.Now()), zap.NewNop())
	ctx := context.Background()

	tests := []struct {
		name  string
		call  func() error
		field string
	}{
		{
			name: "transfer without recipient",
			call: func() error {
				_, err := desk.Transfer(ctx, domain.TransferRequest{Amount: decimal.NewFromInt(1), Currency: "AT", FromWalletType: domain.WalletTypeSavings})
				return err
			},
			field: "recipientAccountId",
		},
		{
			name: "transfer of zero",
			call: func() error {
				_, err := desk.Transfer(ctx, domain.TransferRequest{RecipientAccountID: "A", Currency: "AT", FromWalletType: domain.WalletTypeSavings})
				return err
			},
			field: "amount",
		},
		{
			name: "transfer with unknown currency",
			call: func() error {
				_, err := desk.Transfer(ctx, domain.TransferRequest{RecipientAccountID: "A", Amount: decimal.NewFromInt(1), Currency: "dollars", FromWalletType: domain.WalletTypeSavings})
				return err
			},
			field: "currency",
		},
		{
			name: "deposit without wallet type",
			call: func() error {
				_, err := desk.Deposit(ctx, domain.DepositRequest{AccountID: "A", Amount: decimal.NewFromInt(1), Currency: "AT"})
				return err
			},
			field: "walletType",
		},
		{
			name: "withdrawal with negative amount",
			call: func() error {
				_, err := desk.Withdraw(ctx, domain.WithdrawalSubmission{AccountID: "A", Amount: decimal.NewFromInt(-3), WithdrawalCurrency: "AT", WalletType: domain.WalletTypeSavings})
				return err
			},
			field: "amount",
		},
		{
			name: "activation without type",
			call: func() error {
				_, err := desk.ActivateWallet(ctx, "")
				return err
			},
			field: "walletType",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var verr *domain.ValidationError
			require.True(t, errors.As(tt.call(), &verr))
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestWithdrawalDesk_Lookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mock_usecase.NewMockCommandGateway(ctrl)
	gw.EXPECT().ListWithdrawalRequests(gomock.Any(), domain.WithdrawalState("")).
		Return([]domain.WithdrawalRequest{
			{ID: "w-1", State: domain.WithdrawalPending},
			{ID: "w-2", State: domain.WithdrawalRejected},
		}, nil).Times(2)
	desk := usecase.NewWithdrawalDesk(gw, clock.Fake(time.Now()), zap.NewNop())

	req, err := desk.Lookup(context.Background(), "w-2")
	require.NoError(t, err)
	assert.Equal(t, domain.WithdrawalRejected, req.State)

	_, err = desk.Lookup(context.Background(), "w-9")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
