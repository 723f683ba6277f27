package models

import (
	"time"

	"github.com/retailops/shiftbot/pkg/enums"
	"github.com/shopspring/decimal"
)

// Shift is a bounded work session for one operator. Totals only grow while
// the shift is open and are frozen at close.
type Shift struct {
	ID          int64             `gorm:"primaryKey;autoIncrement"`
	OperatorID  int64             `gorm:"column:operator_id;not null;index"`
	StartedAt   time.Time         `gorm:"column:started_at;autoCreateTime"`
	EndedAt     *time.Time        `gorm:"column:ended_at"`
	Status      enums.ShiftStatus `gorm:"column:status;type:text;not null;default:open"`
	TotalOrders int               `gorm:"column:total_orders;not null;default:0"`
	TotalAmount decimal.Decimal   `gorm:"column:total_amount;type:numeric;not null;default:0"`
}
