package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"wallet-dashboard/internal/clock"
	"wallet-dashboard/internal/domain"
)

// WithdrawalDesk validates money-movement commands locally and forwards
// them to the remote service. Nothing here changes a balance.
type WithdrawalDesk struct {
	gateway CommandGateway
	clock   clock.Clock
	logger  *zap.Logger
}

// NewWithdrawalDesk creates a new withdrawal desk instance.
func NewWithdrawalDesk(gateway CommandGateway, clk clock.Clock, logger *zap.Logger) *WithdrawalDesk {
	return &WithdrawalDesk{gateway: gateway, clock: clk, logger: logger}
}

// Pending lists withdrawal requests awaiting a decision.
func (d *WithdrawalDesk) Pending(ctx context.Context) ([]domain.WithdrawalRequest, error) {
	reqs, err := d.gateway.ListWithdrawalRequests(ctx, domain.WithdrawalPending)
	if err != nil {
		d.logger.Error("list withdrawal requests failed", zap.Error(err))
		return nil, err
	}
	return reqs, nil
}

// Lookup finds one withdrawal request by id, in any state.
func (d *WithdrawalDesk) Lookup(ctx context.Context, id string) (*domain.WithdrawalRequest, error) {
	reqs, err := d.gateway.ListWithdrawalRequests(ctx, "")
	if err != nil {
		return nil, err
	}
	for i := range reqs {
		if reqs[i].ID == id {
			return &reqs[i], nil
		}
	}
	return nil, fmt.Errorf("withdrawal request %s: %w", id, domain.ErrNotFound)
}

// Respond approves or rejects req. Terminal requests fail with
// domain.ErrInvalidState before any request is sent. On success req is
// moved to its terminal state with ProcessedAt set.
func (d *WithdrawalDesk) Respond(ctx context.Context, req *domain.WithdrawalRequest, action domain.WithdrawalAction) (*domain.Ack, error) {
	if action != domain.ActionApprove && action != domain.ActionReject {
		return nil, &domain.ValidationError{Field: "action", Reason: fmt.Sprintf("unknown action %q", action)}
	}
	if req.State != domain.WithdrawalPending {
		return nil, fmt.Errorf("withdrawal request %s is %s: %w", req.ID, req.State, domain.ErrInvalidState)
	}

	ack, err := d.gateway.RespondWithdrawalRequest(ctx, req.ID, action)
	if err != nil {
		d.logger.Error("withdrawal response failed",
			zap.String("request_id", req.ID), zap.String("action", string(action)), zap.Error(err))
		return nil, err
	}
	if err := req.Apply(action, d.clock.Now()); err != nil {
		return nil, err
	}
	d.logger.Info("withdrawal request processed",
		zap.String("request_id", req.ID), zap.String("state", string(req.State)))
	return ack, nil
}

// Transfer sends funds to another account after validating the input.
func (d *WithdrawalDesk) Transfer(ctx context.Context, req domain.TransferRequest) (*domain.Ack, error) {
	if strings.TrimSpace(req.RecipientAccountID) == "" {
		return nil, &domain.ValidationError{Field: "recipientAccountId", Reason: "recipient is required"}
	}
	if err := validateMoney(req.Amount.IsPositive(), req.FromWalletType); err != nil {
		return nil, err
	}
	currency, err := domain.NormalizeCurrency(req.Currency)
	if err != nil {
		return nil, err
	}
	req.Currency = currency
	ack, err := d.gateway.Transfer(ctx, req)
	return d.logged("transfer", ack, err)
}

// Deposit opens a deposit request for an account.
func (d *WithdrawalDesk) Deposit(ctx context.Context, req domain.DepositRequest) (*domain.Ack, error) {
	if strings.TrimSpace(req.AccountID) == "" {
		return nil, &domain.ValidationError{Field: "accountId", Reason: "account is required"}
	}
	if err := validateMoney(req.Amount.IsPositive(), req.WalletType); err != nil {
		return nil, err
	}
	currency, err := domain.NormalizeCurrency(req.Currency)
	if err != nil {
		return nil, err
	}
	req.Currency = currency
	ack, err := d.gateway.CreateDepositRequest(ctx, req)
	return d.logged("deposit request", ack, err)
}

// Withdraw opens a withdrawal request paid out in WithdrawalCurrency.
func (d *WithdrawalDesk) Withdraw(ctx context.Context, req domain.WithdrawalSubmission) (*domain.Ack, error) {
	if strings.TrimSpace(req.AccountID) == "" {
		return nil, &domain.ValidationError{Field: "accountId", Reason: "account is required"}
	}
	if err := validateMoney(req.Amount.IsPositive(), req.WalletType); err != nil {
		return nil, err
	}
	currency, err := domain.NormalizeCurrency(req.WithdrawalCurrency)
	if err != nil {
		return nil, err
	}
	req.WithdrawalCurrency = currency
	ack, err := d.gateway.CreateWithdrawalRequest(ctx, req)
	return d.logged("withdrawal request", ack, err)
}

// ActivateWallet asks the service to open a wallet of the given type.
func (d *WithdrawalDesk) ActivateWallet(ctx context.Context, walletType domain.WalletType) (*domain.Ack, error) {
	if walletType == "" {
		return nil, &domain.ValidationError{Field: "walletType", Reason: "wallet type is required"}
	}
	ack, err := d.gateway.ActivateWallet(ctx, walletType)
	return d.logged("wallet activation", ack, err)
}

func (d *WithdrawalDesk) logged(op string, ack *domain.Ack, err error) (*domain.Ack, error) {
	if err != nil {
		d.logger.Error(op+" failed", zap.Error(err))
		return nil, err
	}
	if ack == nil {
		ack = &domain.Ack{}
	}
	d.logger.Info(op+" accepted", zap.String("ref", ack.ID))
	return ack, nil
}

func validateMoney(positive bool, walletType domain.WalletType) error {
	if !positive {
		return &domain.ValidationError{Field: "amount", Reason: "amount must be greater than zero"}
	}
	if walletType == "" {
		return &domain.ValidationError{Field: "walletType", Reason: "wallet type is required"}
	}
	return nil
}
