package services

import (
	"context"
	"fmt"

	"github.com/user/inventory_api/repository"
	"go.uber.org/zap"
)

type RoleFormService interface {
	GetRoleForms(ctx context.Context, roleID int) ([]RoleFormView, error)
}

type roleFormService struct {
	roles  repository.RoleRepository
	links  repository.RoleFormRepository
	logger *zap.Logger
}

type roleFormServiceBuilder struct {
	roles  repository.RoleRepository
	links  repository.RoleFormRepository
	logger *zap.Logger
}

func NewRoleFormService(roles repository.RoleRepository, links repository.RoleFormRepository) *roleFormServiceBuilder {
	return &roleFormServiceBuilder{roles: roles, links: links}
}

func (b *roleFormServiceBuilder) WithLogger(logger *zap.Logger) *roleFormServiceBuilder {
	b.logger = logger
	return b
}

func (b *roleFormServiceBuilder) Build() (RoleFormService, error) {
	if isNil(b.roles) {
		return nil, fmt.Errorf("role repository: %w", ErrNilDependency)
	}
	if isNil(b.links) {
		return nil, fmt.Errorf("role form repository: %w", ErrNilDependency)
	}
	if b.logger == nil {
		return nil, fmt.Errorf("logger: %w", ErrNilDependency)
	}
	return &roleFormService{
		roles:  b.roles,
		links:  b.links,
		logger: b.logger.Named("service.role_form"),
	}, nil
}

// GetRoleForms lists the form permissions of an existing role, inactive
// roles included.
func (s *roleFormService) GetRoleForms(ctx context.Context, roleID int) ([]RoleFormView, error) {
	if roleID <= 0 {
		s.logger.Warn("invalid role id", zap.Int("role_id", roleID))
		return nil, &ValidationError{Field: "id", Message: "role id must be greater than zero"}
	}

	role, err := s.roles.GetByID(ctx, roleID)
	if err != nil {
		s.logger.Error("failed to load role", zap.Int("role_id", roleID), zap.Error(err))
		return nil, &ExternalServiceError{Service: serviceDatabase, Message: fmt.Sprintf("failed to retrieve role with id %d", roleID), Err: err}
	}
	if role == nil {
		s.logger.Info("role not found", zap.Int("role_id", roleID))
		return nil, &NotFoundError{Entity: entityRole, ID: roleID}
	}

	links, err := s.links.GetByRole(ctx, roleID)
	if err != nil {
		s.logger.Error("failed to load role forms", zap.Int("role_id", roleID), zap.Error(err))
		return nil, &ExternalServiceError{Service: serviceDatabase, Message: fmt.Sprintf("failed to retrieve forms of role %d", roleID), Err: err}
	}

	views := make([]RoleFormView, 0, len(links))
	for i := range links {
		views = append(views, toRoleFormView(&links[i]))
	}
	return views, nil
}
