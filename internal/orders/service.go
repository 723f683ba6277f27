package orders

import (
	"context"
	"errors"
	"strings"

	"github.com/retailops/shiftbot/pkg/db/models"
	pkgerrors "github.com/retailops/shiftbot/pkg/errors"
	"github.com/shopspring/decimal"
)

// Service defines order recording and listing operations.
type Service interface {
	Create(ctx context.Context, params CreateParams) (*models.Order, error)
	ListByShift(ctx context.Context, shiftID int64) ([]models.Order, error)
	ListAll(ctx context.Context) ([]Row, error)
}

// CreateParams describes an order collected through the conversation flow.
type CreateParams struct {
	ShiftID       int64
	CustomerPhone string
	Vehicle       string
	Product       string
	Amount        decimal.Decimal
}

type service struct {
	repo Repository
}

// NewService wires order dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "orders repository required")
	}
	return &service{repo: repo}, nil
}

// Create records a sale against an open shift. The order insert and the shift
// aggregate increment are observably consistent once the call returns.
func (s *service) Create(ctx context.Context, params CreateParams) (*models.Order, error) {
	if strings.TrimSpace(params.CustomerPhone) == "" ||
		strings.TrimSpace(params.Vehicle) == "" ||
		strings.TrimSpace(params.Product) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "All order fields are required.")
	}
	if !params.Amount.IsPositive() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid amount format. Enter a positive number:")
	}

	order := &models.Order{
		ShiftID:       params.ShiftID,
		CustomerPhone: strings.TrimSpace(params.CustomerPhone),
		Vehicle:       strings.TrimSpace(params.Vehicle),
		Product:       strings.TrimSpace(params.Product),
		Amount:        params.Amount,
	}
	if err := s.repo.Create(ctx, order); err != nil {
		if errors.Is(err, ErrShiftNotOpen) {
			return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "Shift is not open.")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "recording order")
	}
	return order, nil
}

func (s *service) ListByShift(ctx context.Context, shiftID int64) ([]models.Order, error) {
	rows, err := s.repo.ListByShift(ctx, shiftID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing shift orders")
	}
	return rows, nil
}

func (s *service) ListAll(ctx context.Context) ([]Row, error) {
	rows, err := s.repo.ListRows(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing orders")
	}
	return rows, nil
}
