package payroll

import (
	"context"

	"github.com/retailops/shiftbot/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes persistence helpers for salary payments. Payments are
// append-only.
type Repository interface {
	Create(ctx context.Context, payment *models.SalaryPayment) error
	ListByAccount(ctx context.Context, accountID int64) ([]models.SalaryPayment, error)
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns a payroll repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) Create(ctx context.Context, payment *models.SalaryPayment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *repositoryImpl) ListByAccount(ctx context.Context, accountID int64) ([]models.SalaryPayment, error) {
	var rows []models.SalaryPayment
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("paid_at DESC, id DESC").
		Find(&rows).Error
	return rows, err
}
