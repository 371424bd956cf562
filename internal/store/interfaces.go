package store

import (
	"context"

	"github.com/4GeeksAcademy/jwt-jaime35/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/storages_mock.go -package=mock

// UserRepository is the data-access layer for user accounts.
type UserRepository interface {
	// CreateUser persists a new user and returns the record with its
	// server-assigned ID. Returns ErrEmailAlreadyExists when the email is
	// taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user registered under email, or
	// ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the user with the given ID, or ErrNoUserWasFound.
	FindUserByID(ctx context.Context, id int64) (models.User, error)
}

// TokenBlocklistRepository records revoked token identifiers so that
// logged-out tokens are rejected until they expire on their own.
type TokenBlocklistRepository interface {
	// Revoke stores the jti of a token invalidated by logout. Revoking an
	// already revoked jti is a no-op.
	Revoke(ctx context.Context, jti string) error

	// IsRevoked reports whether the jti is on the blocklist.
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
