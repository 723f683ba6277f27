package models

import (
	"time"

	"github.com/retailops/shiftbot/pkg/enums"
)

// Warning is an administrative note of record against an account. Rows are
// append-only: never mutated, never deleted.
type Warning struct {
	ID        int64                 `gorm:"primaryKey;autoIncrement"`
	AccountID int64                 `gorm:"column:account_id;not null;index"`
	Reason    string                `gorm:"column:reason;not null"`
	Severity  enums.WarningSeverity `gorm:"column:severity;type:text;not null"`
	IssuedBy  int64                 `gorm:"column:issued_by;not null"`
	CreatedAt time.Time             `gorm:"column:created_at;autoCreateTime"`
}
