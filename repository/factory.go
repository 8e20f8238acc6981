package repository

import (
	"fmt"

	"github.com/user/inventory_api/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Factory hands out repositories sharing one connection pool. Each
// repository logs through its own named child of the factory logger.
type Factory struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewFactory(db *gorm.DB, logger *zap.Logger) (*Factory, error) {
	if db == nil {
		return nil, fmt.Errorf("db: %w", ErrNilDependency)
	}
	if logger == nil {
		return nil, fmt.Errorf("logger: %w", ErrNilDependency)
	}
	return &Factory{db: db, logger: logger}, nil
}

func (f *Factory) RoleRepository() RoleRepository {
	return newRoleRepository(f.db, f.logger.Named("repository.role"))
}

func (f *Factory) FormRepository() Repository[models.Form] {
	return newGormRepository[models.Form](f.db, models.Form{}.TableName(), f.logger.Named("repository.form"))
}

func (f *Factory) RoleFormRepository() RoleFormRepository {
	return newRoleFormRepository(f.db, f.logger.Named("repository.role_form"))
}
