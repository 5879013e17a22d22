package service

import (
	"context"
	"sort"
	"sync"

	"go-user-management/internal/domain"
)

// In-memory repositories used across the service tests. A non-nil err makes
// every call fail, to exercise the internal-fault paths.

type memUsers struct {
	mu    sync.Mutex
	users map[string]domain.User
	err   error
}

func newMemUsers() *memUsers { return &memUsers{users: map[string]domain.User{}} }

func (m *memUsers) Create(ctx context.Context, u *domain.User) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.users {
		if e.Email == u.Email {
			return domain.ErrDuplicateKey
		}
	}
	m.users[u.UID] = *u
	return nil
}

func (m *memUsers) FindByUID(ctx context.Context, uid string) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[uid]; ok {
		cp := u
		return &cp, nil
	}
	return nil, nil
}

func (m *memUsers) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUsers) List(ctx context.Context) ([]domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

func (m *memUsers) Update(ctx context.Context, u *domain.User) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for uid, e := range m.users {
		if uid != u.UID && e.Email == u.Email {
			return domain.ErrDuplicateKey
		}
	}
	m.users[u.UID] = *u
	return nil
}

func (m *memUsers) Delete(ctx context.Context, uid string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[uid]; !ok {
		return false, nil
	}
	delete(m.users, uid)
	return true, nil
}

func (m *memUsers) Count(ctx context.Context) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.users)), nil
}

type memRoles struct {
	mu    sync.Mutex
	roles []domain.Role
	err   error
}

func newMemRoles(roles ...domain.Role) *memRoles { return &memRoles{roles: roles} }

func (m *memRoles) Create(ctx context.Context, r *domain.Role) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.roles {
		if e.Name == r.Name {
			return domain.ErrDuplicateKey
		}
	}
	m.roles = append(m.roles, *r)
	return nil
}

func (m *memRoles) FindByUID(ctx context.Context, uid string) (*domain.Role, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.roles {
		if r.UID == uid {
			cp := r
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memRoles) FindByName(ctx context.Context, name string) (*domain.Role, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.roles {
		if r.Name == name {
			cp := r
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memRoles) List(ctx context.Context) ([]domain.Role, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := append([]domain.Role(nil), m.roles...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memRoles) Count(ctx context.Context) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.roles)), nil
}
