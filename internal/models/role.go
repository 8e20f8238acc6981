package models

import (
	"time"
)

type Role struct {
	ID          int       `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"type:varchar(100);index;not null"`
	Description *string   `gorm:"type:text"`
	Status      bool      `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`

	RoleForms []RoleForm `gorm:"foreignKey:RoleID"`
}

func (Role) TableName() string {
	return "roles"
}
