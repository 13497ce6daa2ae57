package db

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error codes the api layer branches on.
const (
	ForeignKeyViolation = "23503"
	UniqueViolation     = "23505"
)

// ErrorCode returns the Postgres error code of err, or "" when err is not a
// Postgres error.
func ErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
