package store

import (
	"context"
	"fmt"

	"github.com/4GeeksAcademy/jwt-jaime35/internal/logger"
)

// tokenBlocklistRepository is the SQL-backed implementation of
// [TokenBlocklistRepository]. It tracks revoked jti values in the
// "token_blocklist" table.
type tokenBlocklistRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTokenBlocklistRepository constructs a [TokenBlocklistRepository] backed
// by the provided database connection and logger.
func NewTokenBlocklistRepository(db *DB, logger *logger.Logger) TokenBlocklistRepository {
	logger.Debug().Msg("creating token blocklist repository")
	return &tokenBlocklistRepository{
		db:     db,
		logger: logger,
	}
}

// Revoke inserts the jti into the blocklist. A duplicate insert means the
// token was already revoked, which is treated as success.
func (r *tokenBlocklistRepository) Revoke(ctx context.Context, jti string) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, r.db.Rebind(revokeToken), jti)
	if err != nil {
		if r.db.isUniqueViolation(err) {
			return nil
		}
		log.Err(err).Str("func", "*tokenBlocklistRepository.Revoke").Msg("error: insert failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// IsRevoked reports whether the jti is present on the blocklist.
func (r *tokenBlocklistRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	log := logger.FromContext(ctx)

	var count int64
	row := r.db.QueryRowContext(ctx, r.db.Rebind(countRevokedToken), jti)
	if err := row.Scan(&count); err != nil {
		log.Err(err).Str("func", "*tokenBlocklistRepository.IsRevoked").Msg("error: scanning error")
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	return count > 0, nil
}
