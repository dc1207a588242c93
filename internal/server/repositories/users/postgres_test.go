package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopkeeper/shopkeeper/internal/common"
	"github.com/shopkeeper/shopkeeper/internal/server/models"
)

func newMock(t *testing.T) (sqlmock.Sqlmock, *PostgresRepository) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return mock, NewPostgresRepository(db)
}

func TestCreate_Success(t *testing.T) {
	mock, repo := newMock(t)

	created := time.Now()
	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), "Alice", "alice@example.com", "$2a$10$hash").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	user, err := repo.Create(context.Background(), &models.User{
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$hash",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected generated id")
	}
	if !user.CreatedAt.Equal(created) {
		t.Fatalf("created_at not populated")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	_, err := repo.Create(context.Background(), &models.User{
		Email:        "alice@example.com",
		PasswordHash: "h",
	})
	if !errors.Is(err, common.ErrDuplicateAccount) {
		t.Fatalf("expected ErrDuplicateAccount, got %v", err)
	}
}

func TestGetByEmail_NotFound(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectQuery("SELECT id, name, email, password_hash").
		WithArgs("missing@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "created_at"}))

	_, err := repo.GetByEmail(context.Background(), "missing@example.com")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetByEmail_ReturnsHash(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectQuery("SELECT id, name, email, password_hash").
		WithArgs("alice@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "created_at"}).
			AddRow("u1", "Alice", "alice@example.com", "$2a$10$hash", time.Now()))

	user, err := repo.GetByEmail(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("GetByEmail error: %v", err)
	}
	if user.PasswordHash != "$2a$10$hash" {
		t.Fatalf("expected password hash to be loaded for verification")
	}
}

func TestGetByID_OmitsHash(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectQuery("SELECT id, name, email, created_at FROM users").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "created_at"}).
			AddRow("u1", "Alice", "alice@example.com", time.Now()))

	user, err := repo.GetByID(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if user.PasswordHash != "" {
		t.Fatalf("password hash must not be selected by GetByID")
	}
}

func TestList(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectQuery("SELECT id, name, email, created_at FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "created_at"}).
			AddRow("u1", "Alice", "alice@example.com", time.Now()).
			AddRow("u2", "Bob", "bob@example.com", time.Now()))

	list, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 users, got %d", len(list))
	}
	for _, u := range list {
		if u.PasswordHash != "" {
			t.Fatalf("password hash leaked into list")
		}
	}
}
