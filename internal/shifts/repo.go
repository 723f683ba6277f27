package shifts

import (
	"context"
	"errors"
	"time"

	"github.com/retailops/shiftbot/pkg/db/models"
	"github.com/retailops/shiftbot/pkg/enums"
	"gorm.io/gorm"
)

// ErrAlreadyOpen is returned when an operator tries to open a second shift.
var ErrAlreadyOpen = errors.New("operator already has an open shift")

const selectRow = "shifts.id, shifts.operator_id, accounts.full_name AS operator_name, " +
	"shifts.started_at, shifts.ended_at, shifts.status, shifts.total_orders, shifts.total_amount"

// Repository exposes persistence helpers for shifts.
type Repository interface {
	Open(ctx context.Context, operatorID int64) (*models.Shift, error)
	FindOpenByOperator(ctx context.Context, operatorID int64) (*models.Shift, error)
	Close(ctx context.Context, shiftID int64, now time.Time) (bool, error)
	GetRow(ctx context.Context, shiftID int64) (*Row, error)
	ListRows(ctx context.Context) ([]Row, error)
	ListRowsByOperator(ctx context.Context, operatorID int64) ([]Row, error)
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns a shifts repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

// Open creates a shift for the operator unless one is already open. The check
// and the insert run in one transaction.
func (r *repositoryImpl) Open(ctx context.Context, operatorID int64) (*models.Shift, error) {
	shift := &models.Shift{
		OperatorID: operatorID,
		Status:     enums.ShiftStatusOpen,
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Shift{}).
			Where("operator_id = ? AND status = ?", operatorID, enums.ShiftStatusOpen).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyOpen
		}
		return tx.Create(shift).Error
	})
	if err != nil {
		return nil, err
	}
	return shift, nil
}

func (r *repositoryImpl) FindOpenByOperator(ctx context.Context, operatorID int64) (*models.Shift, error) {
	var shift models.Shift
	err := r.db.WithContext(ctx).
		Where("operator_id = ? AND status = ?", operatorID, enums.ShiftStatusOpen).
		First(&shift).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// Close freezes the shift. Only open shifts transition; the bool reports
// whether a row changed.
func (r *repositoryImpl) Close(ctx context.Context, shiftID int64, now time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Shift{}).
		Where("id = ? AND status = ?", shiftID, enums.ShiftStatusOpen).
		UpdateColumns(map[string]any{
			"status":   enums.ShiftStatusClosed,
			"ended_at": now,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *repositoryImpl) GetRow(ctx context.Context, shiftID int64) (*Row, error) {
	var row Row
	err := r.db.WithContext(ctx).
		Table("shifts").
		Select(selectRow).
		Joins("LEFT JOIN accounts ON accounts.id = shifts.operator_id").
		Where("shifts.id = ?", shiftID).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repositoryImpl) ListRows(ctx context.Context) ([]Row, error) {
	var rows []Row
	err := r.db.WithContext(ctx).
		Table("shifts").
		Select(selectRow).
		Joins("LEFT JOIN accounts ON accounts.id = shifts.operator_id").
		Order("shifts.started_at DESC, shifts.id DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *repositoryImpl) ListRowsByOperator(ctx context.Context, operatorID int64) ([]Row, error) {
	var rows []Row
	err := r.db.WithContext(ctx).
		Table("shifts").
		Select(selectRow).
		Joins("LEFT JOIN accounts ON accounts.id = shifts.operator_id").
		Where("shifts.operator_id = ?", operatorID).
		Order("shifts.started_at DESC, shifts.id DESC").
		Scan(&rows).Error
	return rows, err
}
