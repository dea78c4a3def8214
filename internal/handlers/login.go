package handlers

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/employee-registry/internal/logger"
	"github.com/sbilibin2017/employee-registry/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, email, password string) error
}

// LoginRequest represents the JSON body for user login.
// Either username or email identifies the user.
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// default: john_doe
	Username string `json:"username"`

	// Email
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Checks the password of the user identified by username or email
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.MessageResponse "Login successful"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body or wrong password"
// @Failure 409 {object} handlers.ErrorResponse "Username or email is not registered"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		err := svc.Login(r.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotRegistered):
				writeError(w, http.StatusConflict, "Username or Email haven't register")
			case errors.Is(err, services.ErrInvalidPassword):
				writeError(w, http.StatusBadRequest, "Password is not correct")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Error logging in")
			}
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Login successful."})
	}
}
