package orders

import (
	"time"

	"github.com/shopspring/decimal"
)

// Row is the read shape for order listings: operator display name and shift
// start are materialized at read time.
type Row struct {
	ID             int64           `gorm:"column:id"`
	ShiftID        int64           `gorm:"column:shift_id"`
	OperatorName   string          `gorm:"column:operator_name"`
	ShiftStartedAt time.Time       `gorm:"column:shift_started_at"`
	CustomerPhone  string          `gorm:"column:customer_phone"`
	Vehicle        string          `gorm:"column:vehicle"`
	Product        string          `gorm:"column:product"`
	Amount         decimal.Decimal `gorm:"column:amount"`
	CreatedAt      time.Time       `gorm:"column:created_at"`
}
