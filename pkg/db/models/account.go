package models

import (
	"time"

	"github.com/retailops/shiftbot/pkg/enums"
)

// Account is a registered chat participant. The primary key is the chat
// platform's externally assigned user id, never generated locally.
type Account struct {
	ID        int64      `gorm:"primaryKey;autoIncrement:false"`
	Username  string     `gorm:"column:username"`
	FullName  string     `gorm:"column:full_name;not null"`
	Role      enums.Role `gorm:"column:role;type:text;not null"`
	IsActive  bool       `gorm:"column:is_active;not null;default:true"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime"`
}
