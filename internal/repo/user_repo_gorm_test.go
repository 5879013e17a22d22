package repo

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"go-user-management/internal/domain"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("gorm.Open error: %v", err)
	}
	return db, mock
}

func TestUserRepo_FindByUID(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewUserRepo(db)

	rows := sqlmock.NewRows([]string{"uid", "first_name", "last_name", "email", "password_hash", "roles"}).
		AddRow("u1", "John", "Doe", "john@x.com", "hash", []byte(`["Guest"]`))
	mock.ExpectQuery("SELECT (.+) FROM `users` WHERE uid").WillReturnRows(rows)

	u, err := r.FindByUID(context.Background(), "u1")
	if err != nil {
		t.Fatalf("FindByUID error: %v", err)
	}
	if u == nil || u.Email != "john@x.com" {
		t.Fatalf("unexpected user: %+v", u)
	}
	if len(u.Roles) != 1 || u.Roles[0] != "Guest" {
		t.Fatalf("roles not deserialized: %v", u.Roles)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestUserRepo_FindByUID_NotFoundIsNilNil(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewUserRepo(db)

	mock.ExpectQuery("SELECT (.+) FROM `users` WHERE uid").
		WillReturnRows(sqlmock.NewRows([]string{"uid"}))

	u, err := r.FindByUID(context.Background(), "ghost")
	if err != nil || u != nil {
		t.Fatalf("want (nil, nil), got (%+v, %v)", u, err)
	}
}

func TestUserRepo_Create_DuplicateKey(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewUserRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnError(fmt.Errorf("Error 1062 (23000): Duplicate entry 'john@x.com' for key 'users.idx_users_email'"))
	mock.ExpectRollback()

	err := r.Create(context.Background(), &domain.User{UID: "u1", Email: "john@x.com", Roles: []string{"Guest"}})
	if !errors.Is(err, domain.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestUserRepo_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewUserRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `users` WHERE uid").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ok, err := r.Delete(context.Background(), "u1")
	if err != nil || !ok {
		t.Fatalf("Delete = (%v, %v), want (true, nil)", ok, err)
	}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `users` WHERE uid").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	ok, err = r.Delete(context.Background(), "ghost")
	if err != nil || ok {
		t.Fatalf("Delete of missing user = (%v, %v), want (false, nil)", ok, err)
	}
}

func TestUserRepo_Count(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewUserRepo(db)

	mock.ExpectQuery("SELECT count(.+) FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	n, err := r.Count(context.Background())
	if err != nil || n != 3 {
		t.Fatalf("Count = (%d, %v), want (3, nil)", n, err)
	}
}
