package orders

import (
	"context"
	"errors"

	"github.com/retailops/shiftbot/pkg/db/models"
	"github.com/retailops/shiftbot/pkg/enums"
	"gorm.io/gorm"
)

// ErrShiftNotOpen is returned when the referenced shift is missing or closed.
var ErrShiftNotOpen = errors.New("shift is not open")

// Repository exposes persistence helpers for orders.
type Repository interface {
	Create(ctx context.Context, order *models.Order) error
	ListByShift(ctx context.Context, shiftID int64) ([]models.Order, error)
	ListRows(ctx context.Context) ([]Row, error)
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns an orders repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

// Create inserts the order and rolls the parent shift's aggregates forward in
// one transaction: either both mutations commit or neither does. The parent
// shift must be open.
func (r *repositoryImpl) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var shift models.Shift
		err := tx.Where("id = ? AND status = ?", order.ShiftID, enums.ShiftStatusOpen).
			First(&shift).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrShiftNotOpen
			}
			return err
		}

		if err := tx.Create(order).Error; err != nil {
			return err
		}

		result := tx.Model(&models.Shift{}).
			Where("id = ? AND status = ?", order.ShiftID, enums.ShiftStatusOpen).
			UpdateColumns(map[string]any{
				"total_orders": shift.TotalOrders + 1,
				"total_amount": shift.TotalAmount.Add(order.Amount),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrShiftNotOpen
		}
		return nil
	})
}

func (r *repositoryImpl) ListByShift(ctx context.Context, shiftID int64) ([]models.Order, error) {
	var rows []models.Order
	err := r.db.WithContext(ctx).
		Where("shift_id = ?", shiftID).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repositoryImpl) ListRows(ctx context.Context) ([]Row, error) {
	var rows []Row
	err := r.db.WithContext(ctx).
		Table("orders").
		Select("orders.id, orders.shift_id, accounts.full_name AS operator_name, "+
			"shifts.started_at AS shift_started_at, orders.customer_phone, orders.vehicle, "+
			"orders.product, orders.amount, orders.created_at").
		Joins("LEFT JOIN shifts ON shifts.id = orders.shift_id").
		Joins("LEFT JOIN accounts ON accounts.id = shifts.operator_id").
		Order("orders.created_at DESC, orders.id DESC").
		Scan(&rows).Error
	return rows, err
}
