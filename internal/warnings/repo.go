package warnings

import (
	"context"

	"github.com/retailops/shiftbot/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes persistence helpers for warnings. Warnings are
// append-only.
type Repository interface {
	Create(ctx context.Context, warning *models.Warning) error
	ListByAccount(ctx context.Context, accountID int64) ([]models.Warning, error)
	ListAll(ctx context.Context) ([]models.Warning, error)
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns a warnings repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) Create(ctx context.Context, warning *models.Warning) error {
	return r.db.WithContext(ctx).Create(warning).Error
}

func (r *repositoryImpl) ListByAccount(ctx context.Context, accountID int64) ([]models.Warning, error) {
	var rows []models.Warning
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repositoryImpl) ListAll(ctx context.Context) ([]models.Warning, error) {
	var rows []models.Warning
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	return rows, err
}
