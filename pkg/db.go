package pkg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const pgCodeForeignKeyViolation = "23503"

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsForeignKeyViolationError checks if the error is a foreign key violation error,
// e.g. a post inserted for a blog id that does not exist
func IsForeignKeyViolationError(err error) bool {
	return pgErrorCode(err) == pgCodeForeignKeyViolation
}
