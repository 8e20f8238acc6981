package models

import (
	"time"
)

const (
	PermissionRead  = "read"
	PermissionWrite = "write"
)

type RoleForm struct {
	ID         int       `gorm:"primaryKey;autoIncrement"`
	RoleID     int       `gorm:"not null;uniqueIndex:idx_role_form"`
	FormID     int       `gorm:"not null;uniqueIndex:idx_role_form"`
	Permission string    `gorm:"type:varchar(20);not null;default:read"`
	CreatedAt  time.Time `gorm:"not null"`

	Role Role `gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE"`
	Form Form `gorm:"foreignKey:FormID;constraint:OnDelete:CASCADE"`
}

func (RoleForm) TableName() string {
	return "role_forms"
}
