package shifts

import (
	"time"

	"github.com/retailops/shiftbot/pkg/enums"
	"github.com/shopspring/decimal"
)

// Row is the read shape for shift listings: the owning operator's display
// name is materialized at read time so callers never resolve the join.
type Row struct {
	ID           int64             `gorm:"column:id"`
	OperatorID   int64             `gorm:"column:operator_id"`
	OperatorName string            `gorm:"column:operator_name"`
	StartedAt    time.Time         `gorm:"column:started_at"`
	EndedAt      *time.Time        `gorm:"column:ended_at"`
	Status       enums.ShiftStatus `gorm:"column:status"`
	TotalOrders  int               `gorm:"column:total_orders"`
	TotalAmount  decimal.Decimal   `gorm:"column:total_amount"`
}
