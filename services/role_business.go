package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// RoleService is the role contract consumed by the HTTP layer.
type RoleService interface {
	GetAllRoles(ctx context.Context) ([]RoleView, error)
	GetRoleByID(ctx context.Context, id int) (*RoleView, error)
	CreateRole(ctx context.Context, view *RoleView) (*RoleView, error)
	UpdateRole(ctx context.Context, view *RoleView) (bool, error)
	UpdatePartialRole(ctx context.Context, id int, fields *RoleView) (bool, error)
	SoftDeleteRole(ctx context.Context, id int) (bool, error)
	DeleteRole(ctx context.Context, id int) (bool, error)
}

// RoleBusiness delegates to the strategy it was built with and normalises
// whatever comes back into the three error kinds.
type RoleBusiness struct {
	strategy RoleStrategy
	logger   *zap.Logger
}

var _ RoleService = (*RoleBusiness)(nil)

func NewRoleBusiness(factory RoleStrategyFactory, logger *zap.Logger) (*RoleBusiness, error) {
	if factory == nil {
		return nil, fmt.Errorf("role strategy factory: %w", ErrNilDependency)
	}
	if logger == nil {
		return nil, fmt.Errorf("logger: %w", ErrNilDependency)
	}

	strategy := factory.CreateStrategy()
	if strategy == nil {
		return nil, fmt.Errorf("role strategy: %w", ErrNilDependency)
	}

	return &RoleBusiness{
		strategy: strategy,
		logger:   logger.Named("business.role"),
	}, nil
}

func (b *RoleBusiness) GetAllRoles(ctx context.Context) ([]RoleView, error) {
	roles, err := b.strategy.GetAllRoles(ctx)
	if err != nil {
		return nil, b.translate(err, "failed to retrieve the role list")
	}
	return roles, nil
}

func (b *RoleBusiness) GetRoleByID(ctx context.Context, id int) (*RoleView, error) {
	role, err := b.strategy.GetRoleByID(ctx, id)
	if err != nil {
		return nil, b.translate(err, fmt.Sprintf("failed to retrieve role with id %d", id), zap.Int("role_id", id))
	}
	return role, nil
}

func (b *RoleBusiness) CreateRole(ctx context.Context, view *RoleView) (*RoleView, error) {
	role, err := b.strategy.CreateRole(ctx, view)
	if err != nil {
		name := "<nil>"
		if view != nil {
			name = view.Name
		}
		return nil, b.translate(err, "failed to create role", zap.String("role_name", name))
	}
	return role, nil
}

func (b *RoleBusiness) UpdateRole(ctx context.Context, view *RoleView) (bool, error) {
	ok, err := b.strategy.UpdateRole(ctx, view)
	if err != nil {
		id := 0
		if view != nil {
			id = view.ID
		}
		return false, b.translate(err, fmt.Sprintf("failed to update role with id %d", id), zap.Int("role_id", id))
	}
	return ok, nil
}

func (b *RoleBusiness) UpdatePartialRole(ctx context.Context, id int, fields *RoleView) (bool, error) {
	ok, err := b.strategy.UpdatePartialRole(ctx, id, fields)
	if err != nil {
		return false, b.translate(err, fmt.Sprintf("failed to partially update role with id %d", id), zap.Int("role_id", id))
	}
	return ok, nil
}

func (b *RoleBusiness) SoftDeleteRole(ctx context.Context, id int) (bool, error) {
	ok, err := b.strategy.SoftDeleteRole(ctx, id)
	if err != nil {
		return false, b.translate(err, fmt.Sprintf("failed to soft delete role with id %d", id), zap.Int("role_id", id))
	}
	return ok, nil
}

func (b *RoleBusiness) DeleteRole(ctx context.Context, id int) (bool, error) {
	ok, err := b.strategy.DeleteRole(ctx, id)
	if err != nil {
		return false, b.translate(err, fmt.Sprintf("failed to delete role with id %d", id), zap.Int("role_id", id))
	}
	return ok, nil
}

// translate logs err at the severity of its kind. Validation, not-found and
// external-service errors pass through as they are; anything else is
// wrapped as an external-service failure carrying message.
func (b *RoleBusiness) translate(err error, message string, fields ...zap.Field) error {
	fields = append(fields, zap.Error(err))
	switch {
	case IsValidation(err):
		b.logger.Warn("validation failed: "+message, fields...)
		return err
	case IsNotFound(err):
		b.logger.Info("not found: "+message, fields...)
		return err
	case IsExternalService(err):
		b.logger.Error(message, fields...)
		return err
	default:
		b.logger.Error(message, fields...)
		return &ExternalServiceError{Service: serviceDatabase, Message: message, Err: err}
	}
}
