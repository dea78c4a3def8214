package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/employee-registry/internal/models"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsernameOrEmail returns the earliest registered user whose username or email matches.
// A nil identifier is ignored. It returns nil, nil when no user matches.
func (r *UserReadRepository) GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.UserDB, error) {
	const query = `
		SELECT id, username, email, password_hash, created_at, updated_at
		FROM users
		WHERE ($1::VARCHAR IS NOT NULL AND username = $1)
		   OR ($2::VARCHAR IS NOT NULL AND email = $2)
		ORDER BY created_at, id
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username, email)

	logQuery(query, []any{username, email}, user.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a user and returns the identifier generated by the database.
// Duplicate usernames and emails are reported as models.ErrDuplicateUsername
// and models.ErrDuplicateEmail.
func (r *UserWriteRepository) Save(ctx context.Context, username, passwordHash, email string) (uuid.UUID, error) {
	const query = `
		INSERT INTO users (username, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id
	`

	var userID uuid.UUID
	err := r.db.QueryRowxContext(ctx, query, username, email, passwordHash).Scan(&userID)

	// The hash stays out of the log.
	logQuery(query, []any{username, email}, userID, err)

	if err != nil {
		if constraint, ok := violatedConstraint(err); ok {
			switch constraint {
			case constraintUsersUsername:
				return uuid.Nil, models.ErrDuplicateUsername
			case constraintUsersEmail:
				return uuid.Nil, models.ErrDuplicateEmail
			}
		}
		return uuid.Nil, fmt.Errorf("insert user: %w", err)
	}

	return userID, nil
}
