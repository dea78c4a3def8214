package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/employee-registry/internal/logger"
	"github.com/sbilibin2017/employee-registry/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the bcrypt cost factor used for new passwords.
const PasswordHashCost = 10

// Error variables
var (
	ErrUsernameTaken     = errors.New("username is already registered")
	ErrEmailTaken        = errors.New("email is already registered")
	ErrUserNotRegistered = errors.New("username or email is not registered")
	ErrInvalidPassword   = errors.New("password is not correct")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsernameOrEmail(ctx context.Context, username *string, email *string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username string, passwordHash string, email string) (uuid.UUID, error)
}

// AuthService handles signup and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
	}
}

// Signup hashes the password and stores a new user, returning its id.
func (svc *AuthService) Signup(ctx context.Context, username, email, password string) (uuid.UUID, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return uuid.Nil, err
	}

	userID, err := svc.writer.Save(ctx, username, string(hashedPassword), email)
	switch {
	case errors.Is(err, models.ErrDuplicateUsername):
		logger.Log.Warnw("username already registered", "username", username)
		return uuid.Nil, ErrUsernameTaken
	case errors.Is(err, models.ErrDuplicateEmail):
		logger.Log.Warnw("email already registered", "email", email)
		return uuid.Nil, ErrEmailTaken
	case err != nil:
		logger.Log.Errorw("failed to save user", "err", err)
		return uuid.Nil, err
	}

	logger.Log.Infow("user created", "user_id", userID)
	return userID, nil
}

// Login checks the password of the user identified by username or email.
// Empty identifiers are ignored.
func (svc *AuthService) Login(ctx context.Context, username, email, password string) error {
	user, err := svc.reader.GetByUsernameOrEmail(ctx, nilIfEmpty(username), nilIfEmpty(email))
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return err
	}
	if user == nil {
		logger.Log.Warnw("user is not registered", "username", username, "email", email)
		return ErrUserNotRegistered
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Warnw("invalid password", "user_id", user.UserID)
		return ErrInvalidPassword
	}

	return nil
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
