package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"go-user-management/internal/core/auth"
	"go-user-management/internal/domain"
	"go-user-management/pkg/utils"
)

// Seeder guarantees the fixed role set and one Administrator account after
// first boot. Idempotent: each step is guarded by an existence check, so
// running it on every start is safe.
type Seeder struct {
	users             domain.UserRepository
	roles             domain.RoleRepository
	bootstrapEmail    string
	bootstrapPassword string
	log               *zap.Logger
}

func NewSeeder(users domain.UserRepository, roles domain.RoleRepository, bootstrapEmail, bootstrapPassword string, log *zap.Logger) *Seeder {
	return &Seeder{
		users:             users,
		roles:             roles,
		bootstrapEmail:    bootstrapEmail,
		bootstrapPassword: bootstrapPassword,
		log:               log,
	}
}

func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedRoles(ctx); err != nil {
		return err
	}
	return s.seedUsers(ctx)
}

func (s *Seeder) seedRoles(ctx context.Context) error {
	n, err := s.roles.Count(ctx)
	if err != nil {
		return fmt.Errorf("count roles: %w", err)
	}
	if n > 0 {
		return nil
	}
	for _, name := range []string{auth.RoleAdministrator, auth.RoleGuest} {
		if err := s.roles.Create(ctx, &domain.Role{UID: utils.NewID(), Name: name}); err != nil {
			return fmt.Errorf("seed role %s: %w", name, err)
		}
	}
	s.log.Info("seeded roles", zap.Strings("names", []string{auth.RoleAdministrator, auth.RoleGuest}))
	return nil
}

func (s *Seeder) seedUsers(ctx context.Context) error {
	n, err := s.users.Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if n > 0 {
		return nil
	}
	admin, err := s.roles.FindByName(ctx, auth.RoleAdministrator)
	if err != nil {
		return fmt.Errorf("find admin role: %w", err)
	}
	if admin == nil {
		return fmt.Errorf("admin role missing after seed")
	}
	u := &domain.User{
		UID:          utils.NewID(),
		FirstName:    "Root",
		LastName:     "Admin",
		Email:        s.bootstrapEmail,
		PasswordHash: utils.HashPassword(s.bootstrapPassword),
		Roles:        []string{admin.Name},
	}
	if err := s.users.Create(ctx, u); err != nil {
		return fmt.Errorf("seed bootstrap user: %w", err)
	}
	s.log.Warn("seeded bootstrap administrator, rotate its password",
		zap.String("uid", u.UID), zap.String("email", u.Email))
	return nil
}
