package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dfcastellanos/clientes-api/internal/logger"
	"github.com/dfcastellanos/clientes-api/models"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, driver: "pgx", logger: l},
		logger: l,
	}
	return repo, mock, db
}

func emptyUserRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"user_id", "username", "password_hash", "created_at"})
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func userRows(t *testing.T, id int64, username string) *sqlmock.Rows {
	t.Helper()
	return sqlmock.
		NewRows([]string{"user_id", "username", "password_hash", "created_at"}).
		AddRow(id, username, "$2a$10$hash", time.Now())
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Username: "admin", PasswordHash: "$2a$10$hash"}

	// pre-check lookup finds nothing
	mock.ExpectQuery("SELECT user_id").
		WithArgs("admin").
		WillReturnRows(emptyUserRows())

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Username, user.PasswordHash).
		WillReturnRows(userRows(t, 1, "admin"))

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != 1 {
		t.Errorf("expected UserID=1, got %d", created.UserID)
	}
	if created.Username != user.Username {
		t.Errorf("expected username %s, got %s", user.Username, created.Username)
	}
}

func TestCreateUser_UsernameTakenOnPreCheck(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT user_id").
		WithArgs("admin").
		WillReturnRows(userRows(t, 1, "admin"))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "admin"})
	if !errors.Is(err, ErrUsernameAlreadyExists) {
		t.Fatalf("expected ErrUsernameAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UniqueViolationBackstop(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	// the race window: pre-check sees nothing, insert still collides
	mock.ExpectQuery("SELECT user_id").
		WithArgs("admin").
		WillReturnRows(emptyUserRows())

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "admin"})
	if !errors.Is(err, ErrUsernameAlreadyExists) {
		t.Fatalf("expected ErrUsernameAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT user_id").
		WithArgs("admin").
		WillReturnRows(emptyUserRows())

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "admin"})
	if err == nil || !strings.Contains(err.Error(), "db network error") {
		t.Fatalf("expected wrapped DB error, got %v", err)
	}
}

func TestFindUserByUsername_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT user_id").
		WithArgs("admin").
		WillReturnRows(userRows(t, 7, "admin"))

	found, err := repo.FindUserByUsername(context.Background(), "admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.UserID != 7 {
		t.Errorf("expected UserID=7, got %d", found.UserID)
	}
}

func TestFindUserByUsername_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT user_id").
		WithArgs("ghost").
		WillReturnRows(emptyUserRows())

	_, err := repo.FindUserByUsername(context.Background(), "ghost")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestFindUserByID_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT user_id").
		WithArgs(int64(404)).
		WillReturnRows(emptyUserRows())

	_, err := repo.FindUserByID(context.Background(), 404)
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}
