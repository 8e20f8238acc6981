package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository is the CRUD gateway shared by every entity table. Lookups that
// find nothing return a nil entity and a nil error.
type Repository[T any] interface {
	GetAll(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id int) (*T, error)
	Find(ctx context.Context, query any, args ...any) ([]T, error)
	Add(ctx context.Context, entity *T) (*T, error)
	Update(ctx context.Context, entity *T) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type gormRepository[T any] struct {
	db     *gorm.DB
	table  string
	logger *zap.Logger
}

var _ Repository[struct{}] = (*gormRepository[struct{}])(nil)

func newGormRepository[T any](db *gorm.DB, table string, logger *zap.Logger) *gormRepository[T] {
	return &gormRepository[T]{db: db, table: table, logger: logger}
}

func (r *gormRepository[T]) GetAll(ctx context.Context) ([]T, error) {
	return instrument(ctx, r.logger, r.table, "get_all", func() ([]T, error) {
		var entities []T
		if err := r.db.WithContext(ctx).Find(&entities).Error; err != nil {
			return nil, err
		}
		return entities, nil
	})
}

func (r *gormRepository[T]) GetByID(ctx context.Context, id int) (*T, error) {
	return instrument(ctx, r.logger, r.table, "get_by_id", func() (*T, error) {
		return r.first(ctx, "id = ?", id)
	})
}

func (r *gormRepository[T]) Find(ctx context.Context, query any, args ...any) ([]T, error) {
	return instrument(ctx, r.logger, r.table, "find", func() ([]T, error) {
		var entities []T
		if err := r.db.WithContext(ctx).Where(query, args...).Find(&entities).Error; err != nil {
			return nil, err
		}
		return entities, nil
	})
}

func (r *gormRepository[T]) Add(ctx context.Context, entity *T) (*T, error) {
	return instrument(ctx, r.logger, r.table, "add", func() (*T, error) {
		if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
			return nil, err
		}
		return entity, nil
	})
}

// Update writes every column of entity, zero values included. Associations
// and the creation timestamp are left alone.
func (r *gormRepository[T]) Update(ctx context.Context, entity *T) (bool, error) {
	return instrument(ctx, r.logger, r.table, "update", func() (bool, error) {
		result := r.db.WithContext(ctx).
			Model(entity).
			Select("*").
			Omit("created_at", clause.Associations).
			Updates(entity)
		if result.Error != nil {
			return false, result.Error
		}
		return result.RowsAffected > 0, nil
	})
}

func (r *gormRepository[T]) Delete(ctx context.Context, id int) (bool, error) {
	return instrument(ctx, r.logger, r.table, "delete", func() (bool, error) {
		result := r.db.WithContext(ctx).Delete(new(T), id)
		if result.Error != nil {
			return false, result.Error
		}
		return result.RowsAffected > 0, nil
	})
}

func (r *gormRepository[T]) first(ctx context.Context, query any, args ...any) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).Where(query, args...).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}
