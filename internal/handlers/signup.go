package handlers

//go:generate mockgen -source=signup.go -destination=signup_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/employee-registry/internal/logger"
	"github.com/sbilibin2017/employee-registry/internal/services"
	"github.com/sbilibin2017/employee-registry/internal/validation"
)

// Signuper defines the interface that the signup service must implement.
type Signuper interface {
	Signup(ctx context.Context, username, email, password string) (uuid.UUID, error)
}

var signupFields = []string{"username", "email", "password"}

// SignupRequest represents the JSON body for user signup
// swagger:model SignupRequest
type SignupRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password, at least 6 characters
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// SignupResponse represents a successful signup response
// swagger:model SignupResponse
type SignupResponse struct {
	// Success message
	// default: User created successfully.
	Message string `json:"message"`

	// Identifier of the new user
	UserID uuid.UUID `json:"user_id"`
}

// NewSignupHandler returns an HTTP handler for user signup.
// @Summary Sign up a new user
// @Description Creates a new user account. Username and email must be unique. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "User signup request"
// @Success 201 {object} handlers.SignupResponse "User created"
// @Failure 400 {object} handlers.ValidationErrorResponse "Invalid fields"
// @Failure 409 {object} handlers.ErrorResponse "Username or email is already registered"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /signup [post]
func NewSignupHandler(svc Signuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := validation.Decode(r.Body)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if errs := validation.Validate(payload, signupFields...); len(errs) > 0 {
			writeJSON(w, http.StatusBadRequest, ValidationErrorResponse{Errors: errs})
			return
		}

		userID, err := svc.Signup(
			r.Context(),
			payload.String("username"),
			payload.String("email"),
			payload.String("password"),
		)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUsernameTaken):
				writeError(w, http.StatusConflict, "Username is already registered.")
			case errors.Is(err, services.ErrEmailTaken):
				writeError(w, http.StatusConflict, "Email is already registered.")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Error creating the user")
			}
			return
		}

		writeJSON(w, http.StatusCreated, SignupResponse{
			Message: "User created successfully.",
			UserID:  userID,
		})
	}
}
