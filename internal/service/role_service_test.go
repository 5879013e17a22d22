package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

func TestRoleService_GetAll_WithoutCache(t *testing.T) {
	t.Parallel()

	svc := NewRoleService(seededRoles(), nil, zap.NewNop())
	names, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll error: %v", err)
	}
	if len(names) != 2 || names[0] != "Administrator" || names[1] != "Guest" {
		t.Fatalf("unexpected catalog: %v", names)
	}
}

func TestRoleService_GetAll_StoreFault(t *testing.T) {
	t.Parallel()

	roles := newMemRoles()
	roles.err = errors.New("connection refused")
	svc := NewRoleService(roles, nil, zap.NewNop())
	if _, err := svc.GetAll(context.Background()); err == nil {
		t.Fatal("expected error from failing store")
	}
}
