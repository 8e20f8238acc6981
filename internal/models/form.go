package models

import (
	"time"
)

// Form is a screen of the inventory application that roles are granted on.
type Form struct {
	ID          int       `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Description *string   `gorm:"type:text"`
	Status      bool      `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`

	RoleForms []RoleForm `gorm:"foreignKey:FormID"`
}

func (Form) TableName() string {
	return "forms"
}
