package services

import (
	"github.com/user/inventory_api/internal/models"
)

// RoleView is the transfer shape of a role.
type RoleView struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Status      bool    `json:"status"`
}

type RoleMapper interface {
	ToView(role *models.Role) RoleView
	ToEntity(view *RoleView) *models.Role
}

type DefaultRoleMapper struct{}

var _ RoleMapper = DefaultRoleMapper{}

func (DefaultRoleMapper) ToView(role *models.Role) RoleView {
	return RoleView{
		ID:          role.ID,
		Name:        role.Name,
		Description: role.Description,
		Status:      role.Status,
	}
}

func (DefaultRoleMapper) ToEntity(view *RoleView) *models.Role {
	return &models.Role{
		ID:          view.ID,
		Name:        view.Name,
		Description: view.Description,
		Status:      view.Status,
	}
}

func toRoleViews(mapper RoleMapper, roles []models.Role) []RoleView {
	views := make([]RoleView, 0, len(roles))
	for i := range roles {
		views = append(views, mapper.ToView(&roles[i]))
	}
	return views
}

// RoleFormView is a form permission granted to a role.
type RoleFormView struct {
	ID         int    `json:"id"`
	RoleID     int    `json:"role_id"`
	FormID     int    `json:"form_id"`
	FormName   string `json:"form_name"`
	Permission string `json:"permission"`
}

func toRoleFormView(link *models.RoleForm) RoleFormView {
	return RoleFormView{
		ID:         link.ID,
		RoleID:     link.RoleID,
		FormID:     link.FormID,
		FormName:   link.Form.Name,
		Permission: link.Permission,
	}
}
