package accounts

import (
	"context"

	"github.com/retailops/shiftbot/pkg/db/models"
	"github.com/retailops/shiftbot/pkg/enums"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository exposes persistence helpers for accounts. Every role-scoped
// query excludes soft-deleted rows.
type Repository interface {
	Upsert(ctx context.Context, account *models.Account) error
	Get(ctx context.Context, id int64) (*models.Account, error)
	ListByRole(ctx context.Context, role enums.Role) ([]models.Account, error)
	ListActive(ctx context.Context) ([]models.Account, error)
	Deactivate(ctx context.Context, id int64) (bool, error)
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns an accounts repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) Upsert(ctx context.Context, account *models.Account) error {
	account.IsActive = true
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"username", "full_name", "role", "is_active"}),
		}).
		Create(account).Error
}

func (r *repositoryImpl) Get(ctx context.Context, id int64) (*models.Account, error) {
	var account models.Account
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *repositoryImpl) ListByRole(ctx context.Context, role enums.Role) ([]models.Account, error) {
	var accounts []models.Account
	err := r.db.WithContext(ctx).
		Where("role = ? AND is_active = ?", role, true).
		Order("created_at DESC, id DESC").
		Find(&accounts).Error
	return accounts, err
}

func (r *repositoryImpl) ListActive(ctx context.Context) ([]models.Account, error) {
	var accounts []models.Account
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC, id DESC").
		Find(&accounts).Error
	return accounts, err
}

func (r *repositoryImpl) Deactivate(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("id = ? AND is_active = ?", id, true).
		UpdateColumn("is_active", false)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
