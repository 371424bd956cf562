package store

// Queries are written with `?` placeholders; [DB.Rebind] converts them to the
// `$n` form when the connection is backed by pgx.
const (
	createUser = `INSERT INTO users (email, password, is_active)
    VALUES (?, ?, ?);`

	findUserByEmail = `SELECT id, email, password, is_active, created_at
    FROM users
    WHERE email = ?;`

	findUserByID = `SELECT id, email, password, is_active, created_at
    FROM users
    WHERE id = ?;`

	revokeToken = `INSERT INTO token_blocklist (jti)
    VALUES (?);`

	countRevokedToken = `SELECT COUNT(1)
    FROM token_blocklist
    WHERE jti = ?;`
)
