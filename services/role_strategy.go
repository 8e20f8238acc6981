package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/user/inventory_api/repository"
	"go.uber.org/zap"
)

const entityRole = "role"

// RoleStrategy holds the business rules applied to roles on top of the role
// repository. Validation and not-found errors come back as *ValidationError
// and *NotFoundError, every other failure as *ExternalServiceError.
type RoleStrategy interface {
	GetAllRoles(ctx context.Context) ([]RoleView, error)
	GetRoleByID(ctx context.Context, id int) (*RoleView, error)
	CreateRole(ctx context.Context, view *RoleView) (*RoleView, error)
	UpdateRole(ctx context.Context, view *RoleView) (bool, error)
	UpdatePartialRole(ctx context.Context, id int, fields *RoleView) (bool, error)
	SoftDeleteRole(ctx context.Context, id int) (bool, error)
	DeleteRole(ctx context.Context, id int) (bool, error)
}

type standardRoleStrategy struct {
	repo   repository.RoleRepository
	mapper RoleMapper
	logger *zap.Logger
}

var _ RoleStrategy = (*standardRoleStrategy)(nil)

func (s *standardRoleStrategy) GetAllRoles(ctx context.Context) ([]RoleView, error) {
	roles, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, s.external(err, "failed to retrieve the role list")
	}
	return toRoleViews(s.mapper, roles), nil
}

func (s *standardRoleStrategy) GetRoleByID(ctx context.Context, id int) (*RoleView, error) {
	if err := s.validateID(id, "get"); err != nil {
		return nil, err
	}

	role, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.external(err, fmt.Sprintf("failed to retrieve role with id %d", id), zap.Int("role_id", id))
	}
	if role == nil {
		s.logger.Info("role not found", zap.Int("role_id", id))
		return nil, &NotFoundError{Entity: entityRole, ID: id}
	}

	view := s.mapper.ToView(role)
	return &view, nil
}

func (s *standardRoleStrategy) CreateRole(ctx context.Context, view *RoleView) (*RoleView, error) {
	if err := s.validateRole(view); err != nil {
		return nil, err
	}

	role := s.mapper.ToEntity(view)
	role.ID = 0

	created, err := s.repo.Add(ctx, role)
	if err != nil {
		return nil, s.external(err, "failed to create role", zap.String("role_name", view.Name))
	}

	result := s.mapper.ToView(created)
	return &result, nil
}

func (s *standardRoleStrategy) UpdateRole(ctx context.Context, view *RoleView) (bool, error) {
	if err := s.validateRole(view); err != nil {
		return false, err
	}
	if err := s.validateID(view.ID, "update"); err != nil {
		return false, err
	}

	existing, err := s.repo.GetByID(ctx, view.ID)
	if err != nil {
		return false, s.external(err, fmt.Sprintf("failed to update role with id %d", view.ID), zap.Int("role_id", view.ID))
	}
	if existing == nil {
		s.logger.Warn("role to update not found", zap.Int("role_id", view.ID))
		return false, &NotFoundError{Entity: entityRole, ID: view.ID}
	}

	ok, err := s.repo.Update(ctx, s.mapper.ToEntity(view))
	if err != nil {
		return false, s.external(err, fmt.Sprintf("failed to update role with id %d", view.ID), zap.Int("role_id", view.ID))
	}
	return ok, nil
}

// UpdatePartialRole merges fields onto the stored role: the name when it is
// not blank, the description when it is not nil, and the status when it
// differs from the stored one.
func (s *standardRoleStrategy) UpdatePartialRole(ctx context.Context, id int, fields *RoleView) (bool, error) {
	if err := s.validateID(id, "partial update"); err != nil {
		return false, err
	}
	if fields == nil {
		s.logger.Warn("partial update without fields", zap.Int("role_id", id))
		return false, &ValidationError{Message: "role fields must not be nil"}
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return false, s.external(err, fmt.Sprintf("failed to partially update role with id %d", id), zap.Int("role_id", id))
	}
	if existing == nil {
		s.logger.Info("role to partially update not found", zap.Int("role_id", id))
		return false, &NotFoundError{Entity: entityRole, ID: id}
	}

	if strings.TrimSpace(fields.Name) != "" {
		existing.Name = fields.Name
	}
	if fields.Description != nil {
		existing.Description = fields.Description
	}
	if fields.Status != existing.Status {
		existing.Status = fields.Status
	}

	ok, err := s.repo.Update(ctx, existing)
	if err != nil {
		return false, s.external(err, fmt.Sprintf("failed to partially update role with id %d", id), zap.Int("role_id", id))
	}
	return ok, nil
}

// SoftDeleteRole leaves existence handling to the repository: a missing
// role yields false.
func (s *standardRoleStrategy) SoftDeleteRole(ctx context.Context, id int) (bool, error) {
	if err := s.validateID(id, "soft delete"); err != nil {
		return false, err
	}

	ok, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return false, s.external(err, fmt.Sprintf("failed to soft delete role with id %d", id), zap.Int("role_id", id))
	}
	return ok, nil
}

func (s *standardRoleStrategy) DeleteRole(ctx context.Context, id int) (bool, error) {
	if err := s.validateID(id, "delete"); err != nil {
		return false, err
	}

	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, s.external(err, fmt.Sprintf("failed to delete role with id %d", id), zap.Int("role_id", id))
	}
	return ok, nil
}

func (s *standardRoleStrategy) validateID(id int, operation string) error {
	if id <= 0 {
		s.logger.Warn("invalid role id", zap.String("operation", operation), zap.Int("role_id", id))
		return &ValidationError{Field: "id", Message: "role id must be greater than zero"}
	}
	return nil
}

func (s *standardRoleStrategy) validateRole(view *RoleView) error {
	if view == nil {
		s.logger.Warn("role payload is nil")
		return &ValidationError{Message: "role must not be nil"}
	}
	if strings.TrimSpace(view.Name) == "" {
		s.logger.Warn("role name is empty", zap.Int("role_id", view.ID))
		return &ValidationError{Field: "name", Message: "role name is required"}
	}
	return nil
}

func (s *standardRoleStrategy) external(err error, message string, fields ...zap.Field) error {
	s.logger.Error(message, append(fields, zap.Error(err))...)
	return &ExternalServiceError{Service: serviceDatabase, Message: message, Err: err}
}
