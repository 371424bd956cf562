package store

import (
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"

	"github.com/4GeeksAcademy/jwt-jaime35/internal/logger"
	"github.com/4GeeksAcademy/jwt-jaime35/migrations"
)

// DB wraps a database/sql connection together with the driver it was opened
// with. The driver name controls migration dialect, placeholder rebinding,
// and driver-specific error classification.
type DB struct {
	*sql.DB
	driverName string
	logger     *logger.Logger
}

// Migrate applies all pending schema migrations for this connection's driver.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driverName)
}

// Rebind converts a query written with `?` placeholders into the positional
// `$n` form when the underlying driver is pgx. SQLite consumes `?` natively.
func (db *DB) Rebind(query string) string {
	if db.driverName != "pgx" {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// isUniqueViolation reports whether err is the driver's unique-constraint
// violation, regardless of which backend produced it.
func (db *DB) isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}

	return false
}
