package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"go-user-management/internal/core/cache"
	"go-user-management/internal/domain"
)

const (
	rolesCatalogKey = "roles:catalog"
	rolesCatalogTTL = 5 * time.Minute
)

// RoleService serves the public role catalog. Roles are seeded once and
// read-only afterwards, so the catalog is a natural read-through cache; a nil
// cache degrades to direct store reads.
type RoleService struct {
	roles domain.RoleRepository
	cache *cache.Cache
	log   *zap.Logger
}

func NewRoleService(roles domain.RoleRepository, c *cache.Cache, log *zap.Logger) *RoleService {
	return &RoleService{roles: roles, cache: c, log: log}
}

func (s *RoleService) GetAll(ctx context.Context) ([]string, error) {
	if s.cache != nil {
		names, err := cache.GetOrLoadJSON[[]string](s.cache, ctx, rolesCatalogKey, rolesCatalogTTL, func(ctx context.Context) (*[]string, error) {
			out, e := s.load(ctx)
			if e != nil {
				return nil, e
			}
			return &out, nil
		})
		if err == nil && names != nil {
			return *names, nil
		}
		if err != nil {
			s.log.Warn("role catalog cache bypass", zap.Error(err))
		}
	}
	return s.load(ctx)
}

func (s *RoleService) load(ctx context.Context) ([]string, error) {
	roles, err := s.roles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.Name)
	}
	return names, nil
}
