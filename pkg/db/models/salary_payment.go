package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryPayment records a payout against an account for a period.
// Immutable after creation.
type SalaryPayment struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	AccountID   int64           `gorm:"column:account_id;not null;index"`
	Amount      decimal.Decimal `gorm:"column:amount;type:numeric;not null"`
	PeriodStart time.Time       `gorm:"column:period_start;not null"`
	PeriodEnd   time.Time       `gorm:"column:period_end;not null"`
	PaidBy      int64           `gorm:"column:paid_by;not null"`
	PaidAt      time.Time       `gorm:"column:paid_at;autoCreateTime"`
}
