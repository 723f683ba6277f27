package payroll

import (
	"context"
	"time"

	"github.com/retailops/shiftbot/internal/accounts"
	"github.com/retailops/shiftbot/pkg/db/models"
	pkgerrors "github.com/retailops/shiftbot/pkg/errors"
	"github.com/shopspring/decimal"
)

// periodDays is the trailing window a payment covers, ending at payment time.
const periodDays = 30

// Service defines payroll operations.
type Service interface {
	Pay(ctx context.Context, params PayParams) (*models.SalaryPayment, error)
	ListByAccount(ctx context.Context, accountID int64) ([]models.SalaryPayment, error)
}

// PayParams describes a payout to record.
type PayParams struct {
	AccountID int64
	Amount    decimal.Decimal
	PaidBy    int64
}

type service struct {
	repo     Repository
	accounts accounts.Service
}

// NewService wires payroll dependencies.
func NewService(repo Repository, accountsSvc accounts.Service) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "payroll repository required")
	}
	if accountsSvc == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "accounts service required")
	}
	return &service{repo: repo, accounts: accountsSvc}, nil
}

// Pay records a payout to an existing active account covering the trailing
// 30-day period ending now.
func (s *service) Pay(ctx context.Context, params PayParams) (*models.SalaryPayment, error) {
	if !params.Amount.IsPositive() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid amount format. Enter a positive number:")
	}

	if _, err := s.accounts.Get(ctx, params.AccountID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	payment := &models.SalaryPayment{
		AccountID:   params.AccountID,
		Amount:      params.Amount,
		PeriodStart: now.AddDate(0, 0, -periodDays),
		PeriodEnd:   now,
		PaidBy:      params.PaidBy,
	}
	if err := s.repo.Create(ctx, payment); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "recording salary payment")
	}
	return payment, nil
}

func (s *service) ListByAccount(ctx context.Context, accountID int64) ([]models.SalaryPayment, error) {
	rows, err := s.repo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing salary payments")
	}
	return rows, nil
}
