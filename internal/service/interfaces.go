package service

import (
	"context"

	"github.com/4GeeksAcademy/jwt-jaime35/models"
)

// AuthService is the server-side contract for account and token lifecycle
// management.
type AuthService interface {
	// RegisterUser validates the credentials, hashes the password, and
	// persists a new active account. Returns the stored user record or a
	// validation/storage error (see errors.go and store.ErrEmailAlreadyExists).
	RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error)

	// Login verifies the credentials against the stored password hash.
	// Unknown accounts and wrong passwords both yield
	// ErrInvalidEmailOrPassword.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// GetUser loads the account identified by userID. Used by the profile
	// endpoint after token validation.
	GetUser(ctx context.Context, userID int64) (models.User, error)

	// CreateToken issues a signed JWT for the given user, carrying the user
	// ID as subject and a unique jti for later revocation.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw JWT string (signature, expiry, issuer) and
	// rejects tokens whose jti is on the blocklist. Validation failures are
	// normalised to ErrTokenIsExpiredOrInvalid; revoked tokens yield
	// ErrTokenRevoked.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// RevokeToken puts the given jti on the blocklist so the token is
	// rejected from now on. Revoking an already revoked jti is a no-op.
	RevokeToken(ctx context.Context, jti string) error
}
