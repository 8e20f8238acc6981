package repository

import (
	"context"

	"github.com/user/inventory_api/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type RoleRepository interface {
	Repository[models.Role]
	GetByName(ctx context.Context, name string) (*models.Role, error)
	SoftDelete(ctx context.Context, id int) (bool, error)
}

type roleRepository struct {
	*gormRepository[models.Role]
}

var _ RoleRepository = (*roleRepository)(nil)

func newRoleRepository(db *gorm.DB, logger *zap.Logger) *roleRepository {
	return &roleRepository{gormRepository: newGormRepository[models.Role](db, models.Role{}.TableName(), logger)}
}

func (r *roleRepository) GetByName(ctx context.Context, name string) (*models.Role, error) {
	return instrument(ctx, r.logger, r.table, "get_by_name", func() (*models.Role, error) {
		return r.first(ctx, "name = ?", name)
	})
}

// SoftDelete marks the role inactive. A missing role reports false. The
// read and the write are separate statements, so a concurrent update
// landing in between is overwritten.
func (r *roleRepository) SoftDelete(ctx context.Context, id int) (bool, error) {
	role, err := r.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if role == nil {
		return false, nil
	}

	role.Status = false
	return r.Update(ctx, role)
}

// Delete removes the role together with its form permission links.
func (r *roleRepository) Delete(ctx context.Context, id int) (bool, error) {
	return instrument(ctx, r.logger, r.table, "delete", func() (bool, error) {
		var deleted bool
		err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("role_id = ?", id).Delete(&models.RoleForm{}).Error; err != nil {
				return err
			}

			result := tx.Delete(&models.Role{}, id)
			if result.Error != nil {
				return result.Error
			}
			deleted = result.RowsAffected > 0
			return nil
		})
		if err != nil {
			return false, err
		}
		return deleted, nil
	})
}
