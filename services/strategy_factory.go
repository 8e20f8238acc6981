package services

import (
	"fmt"

	"github.com/user/inventory_api/repository"
	"go.uber.org/zap"
)

type RoleStrategyFactory interface {
	CreateStrategy() RoleStrategy
}

type roleStrategyFactory struct {
	repo   repository.RoleRepository
	mapper RoleMapper
	logger *zap.Logger
}

type roleStrategyFactoryBuilder struct {
	repo      repository.RoleRepository
	mapper    RoleMapper
	mapperSet bool
	logger    *zap.Logger
}

func NewRoleStrategyFactory(repo repository.RoleRepository) *roleStrategyFactoryBuilder {
	return &roleStrategyFactoryBuilder{repo: repo, mapper: DefaultRoleMapper{}}
}

func (b *roleStrategyFactoryBuilder) WithMapper(mapper RoleMapper) *roleStrategyFactoryBuilder {
	b.mapper = mapper
	b.mapperSet = true
	return b
}

func (b *roleStrategyFactoryBuilder) WithLogger(logger *zap.Logger) *roleStrategyFactoryBuilder {
	b.logger = logger
	return b
}

func (b *roleStrategyFactoryBuilder) Build() (RoleStrategyFactory, error) {
	if isNil(b.repo) {
		return nil, fmt.Errorf("role repository: %w", ErrNilDependency)
	}
	if b.mapperSet && isNil(b.mapper) {
		return nil, fmt.Errorf("role mapper: %w", ErrNilDependency)
	}
	if b.logger == nil {
		return nil, fmt.Errorf("logger: %w", ErrNilDependency)
	}

	return &roleStrategyFactory{
		repo:   b.repo,
		mapper: b.mapper,
		logger: b.logger,
	}, nil
}

func (f *roleStrategyFactory) CreateStrategy() RoleStrategy {
	return &standardRoleStrategy{
		repo:   f.repo,
		mapper: f.mapper,
		logger: f.logger.Named("strategy.role"),
	}
}
