package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a single recorded sale tied to a shift. Immutable after creation.
type Order struct {
	ID            int64           `gorm:"primaryKey;autoIncrement"`
	ShiftID       int64           `gorm:"column:shift_id;not null;index"`
	CustomerPhone string          `gorm:"column:customer_phone;not null"`
	Vehicle       string          `gorm:"column:vehicle;not null"`
	Product       string          `gorm:"column:product;not null"`
	Amount        decimal.Decimal `gorm:"column:amount;type:numeric;not null"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime"`
}
