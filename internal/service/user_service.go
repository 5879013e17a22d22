package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"go-user-management/internal/core/auth"
	"go-user-management/internal/domain"
	"go-user-management/pkg/utils"
)

type UserRequest struct {
	FirstName string   `json:"firstName" binding:"required,max=64"`
	LastName  string   `json:"lastName" binding:"required,max=64"`
	Email     string   `json:"email" binding:"required,email"`
	Password  string   `json:"password" binding:"required"`
	Roles     []string `json:"roles"`
}

// UserSummary is the outward projection; the password hash never leaves the
// service layer.
type UserSummary struct {
	UID       string   `json:"uid"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	Roles     []string `json:"roles"`
}

type UserService struct {
	users domain.UserRepository
	roles domain.RoleRepository
	log   *zap.Logger
}

func NewUserService(users domain.UserRepository, roles domain.RoleRepository, log *zap.Logger) *UserService {
	return &UserService{users: users, roles: roles, log: log}
}

func summarize(u *domain.User) *UserSummary {
	roles := u.Roles
	if roles == nil {
		roles = []string{}
	}
	return &UserSummary{
		UID:       u.UID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Roles:     roles,
	}
}

func (s *UserService) ListAll(ctx context.Context) ([]UserSummary, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	out := make([]UserSummary, 0, len(users))
	for i := range users {
		out = append(out, *summarize(&users[i]))
	}
	return out, nil
}

// GetByUID returns nil when no such user exists.
func (s *UserService) GetByUID(ctx context.Context, uid string) (*UserSummary, error) {
	u, err := s.users.FindByUID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("find user %s: %w", uid, err)
	}
	if u == nil {
		return nil, nil
	}
	return summarize(u), nil
}

func (s *UserService) IsEmailAvailable(ctx context.Context, email string) (bool, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("find by email: %w", err)
	}
	return u == nil, nil
}

// resolveRoles maps each requested reference — role name or role uid — to its
// canonical name, dropping references that resolve to nothing. An empty
// request defaults to the Guest role. Single source for role canon; no
// "Administrator" literals scattered across services.
func (s *UserService) resolveRoles(ctx context.Context, refs []string) ([]string, error) {
	if len(refs) == 0 {
		guest, err := s.roles.FindByName(ctx, auth.RoleGuest)
		if err != nil {
			return nil, fmt.Errorf("resolve guest role: %w", err)
		}
		if guest == nil {
			return nil, errors.New("guest role not seeded")
		}
		return []string{guest.Name}, nil
	}

	seen := make(map[string]struct{}, len(refs))
	out := make([]string, 0, len(refs))
	for _, ref := range refs {
		r, err := s.roles.FindByName(ctx, ref)
		if err != nil {
			return nil, fmt.Errorf("resolve role %q: %w", ref, err)
		}
		if r == nil {
			r, err = s.roles.FindByUID(ctx, ref)
			if err != nil {
				return nil, fmt.Errorf("resolve role %q: %w", ref, err)
			}
		}
		if r == nil {
			continue // unresolvable reference is dropped, not an error
		}
		if _, dup := seen[r.Name]; dup {
			continue
		}
		seen[r.Name] = struct{}{}
		out = append(out, r.Name)
	}
	return out, nil
}

// Create registers a new user. The escalation gate runs on the resolved
// canonical names, so an Administrator reference by uid cannot slip past a
// non-admin caller. A nil caller is anonymous.
func (s *UserService) Create(ctx context.Context, req *UserRequest, caller *auth.CallerIdentity) (*UserSummary, error) {
	available, err := s.IsEmailAvailable(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, ErrEmailTaken
	}

	roles, err := s.resolveRoles(ctx, req.Roles)
	if err != nil {
		return nil, err
	}
	if !auth.CanGrantAdminRole(roles, caller.IsAdmin()) {
		return nil, ErrForbidden
	}

	u := &domain.User{
		UID:          utils.NewID(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: utils.HashPassword(req.Password),
		Roles:        roles,
	}
	if err := s.users.Create(ctx, u); err != nil {
		// 并发创建同邮箱：availability 检查是 best-effort，唯一索引兜底
		if errors.Is(err, domain.ErrDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	s.log.Info("user created", zap.String("uid", u.UID), zap.Strings("roles", u.Roles))
	return summarize(u), nil
}

// Edit overwrites names, email and password, and replaces roles only when the
// request carries a non-empty role list. Ownership (self-or-admin) is the
// transport layer's check; the escalation gate runs here, before anything
// else.
func (s *UserService) Edit(ctx context.Context, targetUID string, req *UserRequest, caller *auth.CallerIdentity) (*UserSummary, error) {
	var roles []string
	if len(req.Roles) > 0 {
		var err error
		roles, err = s.resolveRoles(ctx, req.Roles)
		if err != nil {
			return nil, err
		}
		if !auth.CanGrantAdminRole(roles, caller.IsAdmin()) {
			return nil, ErrForbidden
		}
	}

	u, err := s.users.FindByUID(ctx, targetUID)
	if err != nil {
		return nil, fmt.Errorf("find user %s: %w", targetUID, err)
	}
	if u == nil {
		return nil, ErrNotFound
	}

	u.FirstName = req.FirstName
	u.LastName = req.LastName
	u.Email = req.Email
	u.PasswordHash = utils.HashPassword(req.Password)
	if len(roles) > 0 {
		u.Roles = roles
	}
	if err := s.users.Update(ctx, u); err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("update user %s: %w", targetUID, err)
	}
	s.log.Info("user updated", zap.String("uid", u.UID))
	return summarize(u), nil
}

// Delete is a hard delete; false means the target never existed.
func (s *UserService) Delete(ctx context.Context, uid string) (bool, error) {
	ok, err := s.users.Delete(ctx, uid)
	if err != nil {
		return false, fmt.Errorf("delete user %s: %w", uid, err)
	}
	if ok {
		s.log.Info("user deleted", zap.String("uid", uid))
	}
	return ok, nil
}
