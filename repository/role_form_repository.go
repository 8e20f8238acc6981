package repository

import (
	"context"

	"github.com/user/inventory_api/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type RoleFormRepository interface {
	Repository[models.RoleForm]
	GetByRole(ctx context.Context, roleID int) ([]models.RoleForm, error)
}

type roleFormRepository struct {
	*gormRepository[models.RoleForm]
}

var _ RoleFormRepository = (*roleFormRepository)(nil)

func newRoleFormRepository(db *gorm.DB, logger *zap.Logger) *roleFormRepository {
	return &roleFormRepository{gormRepository: newGormRepository[models.RoleForm](db, models.RoleForm{}.TableName(), logger)}
}

// GetByRole returns the links of a role with their Form loaded, ordered by
// form id.
func (r *roleFormRepository) GetByRole(ctx context.Context, roleID int) ([]models.RoleForm, error) {
	return instrument(ctx, r.logger, r.table, "get_by_role", func() ([]models.RoleForm, error) {
		var links []models.RoleForm
		err := r.db.WithContext(ctx).
			Preload("Form").
			Where("role_id = ?", roleID).
			Order("form_id ASC").
			Find(&links).Error
		if err != nil {
			return nil, err
		}
		return links, nil
	})
}
