package testutil

import (
	"github.com/user/inventory_api/internal/models"
	"gorm.io/gorm"
)

func StringPtr(s string) *string {
	return &s
}

func CreateTestRole(db *gorm.DB, name string, description *string, status bool) (*models.Role, error) {
	role := &models.Role{
		Name:        name,
		Description: description,
		Status:      status,
	}

	if err := db.Create(role).Error; err != nil {
		return nil, err
	}
	return role, nil
}

func CreateTestForm(db *gorm.DB, name string) (*models.Form, error) {
	form := &models.Form{
		Name:   name,
		Status: true,
	}

	if err := db.Create(form).Error; err != nil {
		return nil, err
	}
	return form, nil
}

func CreateTestRoleForm(db *gorm.DB, roleID, formID int, permission string) (*models.RoleForm, error) {
	link := &models.RoleForm{
		RoleID:     roleID,
		FormID:     formID,
		Permission: permission,
	}

	if err := db.Create(link).Error; err != nil {
		return nil, err
	}
	return link, nil
}

func CountRoleForms(db *gorm.DB, roleID int) (int64, error) {
	var count int64
	err := db.Model(&models.RoleForm{}).Where("role_id = ?", roleID).Count(&count).Error
	return count, err
}
