package repositories

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/employee-registry/internal/logger"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// Unique constraint names, see internal/migrations.
const (
	constraintEmployeesEmail = "employees_email_key"
	constraintUsersUsername  = "users_username_key"
	constraintUsersEmail     = "users_email_key"
)

// violatedConstraint reports the unique constraint rejected by err, if any.
func violatedConstraint(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return pgErr.ConstraintName, true
	}
	return "", false
}

// logQuery logs a query on a single line together with its args, result and error.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
