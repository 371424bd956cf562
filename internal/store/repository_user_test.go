package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"

	"github.com/4GeeksAcademy/jwt-jaime35/internal/logger"
	"github.com/4GeeksAcademy/jwt-jaime35/models"
)

func newTestUserRepo(t *testing.T, driverName string) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, driverName: driverName, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func userRows(u models.User) *sqlmock.Rows {
	return sqlmock.
		NewRows([]string{"id", "email", "password", "is_active", "created_at"}).
		AddRow(u.ID, u.Email, u.Password, u.IsActive, time.Now())
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, "sqlite3")
	defer db.Close()

	ctx := context.Background()
	user := models.User{Email: "a@b.com", Password: "bcrypt-hash", IsActive: true}

	mock.ExpectExec("INSERT INTO users").
		WithArgs(user.Email, user.Password, user.IsActive).
		WillReturnResult(sqlmock.NewResult(1, 1))

	mock.ExpectQuery("SELECT id, email, password, is_active, created_at").
		WithArgs(user.Email).
		WillReturnRows(userRows(models.User{ID: 1, Email: user.Email, Password: user.Password, IsActive: true}))

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected ID=1, got %d", created.ID)
	}
	if created.Email != user.Email {
		t.Errorf("expected email %s, got %s", user.Email, created.Email)
	}
}

func TestCreateUser_UniqueViolation_Postgres(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, "pgx")
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "a@b.com"})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UniqueViolation_SQLite(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, "sqlite3")
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique})

	_, err := repo.CreateUser(context.Background(), models.User{Email: "a@b.com"})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, "sqlite3")
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("disk failure"))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "a@b.com"})
	if err == nil || errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected wrapped DB error, got %v", err)
	}
}

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, "sqlite3")
	defer db.Close()

	mock.ExpectQuery("SELECT id, email, password, is_active, created_at").
		WithArgs("a@b.com").
		WillReturnRows(userRows(models.User{ID: 5, Email: "a@b.com", Password: "h", IsActive: true}))

	found, err := repo.FindUserByEmail(context.Background(), "a@b.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != 5 || !found.IsActive {
		t.Errorf("unexpected user: %+v", found)
	}
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, "sqlite3")
	defer db.Close()

	mock.ExpectQuery("SELECT id, email, password, is_active, created_at").
		WithArgs("ghost@b.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByEmail(context.Background(), "ghost@b.com")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestFindUserByID_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, "pgx")
	defer db.Close()

	mock.ExpectQuery("SELECT id, email, password, is_active, created_at").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByID(context.Background(), 99)
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestRebind_PostgresPlaceholders(t *testing.T) {
	db := &DB{driverName: "pgx"}
	got := db.Rebind("SELECT * FROM users WHERE email = ? AND id = ?")
	want := "SELECT * FROM users WHERE email = $1 AND id = $2"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestRebind_SQLiteUntouched(t *testing.T) {
	db := &DB{driverName: "sqlite3"}
	query := "SELECT * FROM users WHERE email = ?"
	if got := db.Rebind(query); got != query {
		t.Fatalf("expected query unchanged, got %q", got)
	}
}
