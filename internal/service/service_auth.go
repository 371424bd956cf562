package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/4GeeksAcademy/jwt-jaime35/internal/config"
	"github.com/4GeeksAcademy/jwt-jaime35/internal/logger"
	"github.com/4GeeksAcademy/jwt-jaime35/internal/store"
	"github.com/4GeeksAcademy/jwt-jaime35/internal/utils"
	"github.com/4GeeksAcademy/jwt-jaime35/models"
)

const minPasswordLength = 8

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence, bcrypt for password
// hashing, and a TokenBlocklistRepository for logout revocation.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// blocklistRepository records revoked token identifiers (jti claims).
	blocklistRepository store.TokenBlocklistRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(storages store.Storages, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:      storages.UserRepository,
		blocklistRepository: storages.TokenBlocklistRepository,
		tokenSignKey:        cfg.TokenSignKey,
		tokenIssuer:         cfg.TokenIssuer,
		tokenDuration:       cfg.TokenDuration,
		logger:              logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates the credentials (both fields present, email contains "@",
// password at least 8 characters), hashes the password with bcrypt, and
// delegates persistence to the UserRepository. New accounts start active.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrEmailPasswordRequired, ErrInvalidEmailFormat, or
//     ErrPasswordTooShort on validation failure.
//   - A wrapped storage error if the repository call fails (e.g. the email
//     is already taken — see store.ErrEmailAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validateCredentials(creds); err != nil {
		log.Error().Str("email", creds.Email).Err(err).Msg("invalid signup credentials")
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Email:    strings.TrimSpace(creds.Email),
		Password: string(hash),
		IsActive: true,
	})
	if err != nil {
		log.Err(err).Str("email", creds.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks up the account by email and compares the supplied password
// against the stored bcrypt hash.
//
// Returns the authenticated user record or:
//   - ErrEmailPasswordRequired if either credential field is empty.
//   - ErrInvalidEmailOrPassword if the account does not exist or the
//     password does not match. The two cases are deliberately
//     indistinguishable to the caller.
//   - A wrapped storage error on any other repository failure.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if creds.Email == "" || creds.Password == "" {
		log.Error().Str("email", creds.Email).Msg("empty login credentials")
		return models.User{}, ErrEmailPasswordRequired
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, strings.TrimSpace(creds.Email))
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrInvalidEmailOrPassword
		}
		log.Err(err).Str("email", creds.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.Password), []byte(creds.Password)); err != nil {
		log.Error().Int64("id", foundUser.ID).Str("email", foundUser.Email).Msg("wrong password")
		return models.User{}, ErrInvalidEmailOrPassword
	}

	return foundUser, nil
}

// GetUser loads the account identified by userID.
func (a *authService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim and a fresh UUID as the "jti"
// claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation
// fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// expiry, and the issuer claim, then checks the token's jti against the
// blocklist. Any validation failure (expired, wrong issuer, malformed) is
// normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors; a revoked jti yields ErrTokenRevoked.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	revoked, err := a.blocklistRepository.IsRevoked(ctx, token.JTI())
	if err != nil {
		return models.Token{}, fmt.Errorf("blocklist lookup failed: %w", err)
	}
	if revoked {
		return models.Token{}, ErrTokenRevoked
	}

	return token, nil
}

// RevokeToken puts the given jti on the blocklist. Revocation is permanent
// for the token's lifetime; expired entries are simply never consulted again.
func (a *authService) RevokeToken(ctx context.Context, jti string) error {
	if err := a.blocklistRepository.Revoke(ctx, jti); err != nil {
		return fmt.Errorf("token revocation failed: %w", err)
	}

	return nil
}

func validateCredentials(creds models.Credentials) error {
	email := strings.TrimSpace(creds.Email)

	switch {
	case email == "" || creds.Password == "":
		return ErrEmailPasswordRequired
	case !strings.Contains(email, "@"):
		return ErrInvalidEmailFormat
	case len(creds.Password) < minPasswordLength:
		return ErrPasswordTooShort
	}

	return nil
}
