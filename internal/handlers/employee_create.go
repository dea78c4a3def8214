package handlers

//go:generate mockgen -source=employee_create.go -destination=employee_create_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/employee-registry/internal/logger"
	"github.com/sbilibin2017/employee-registry/internal/models"
	"github.com/sbilibin2017/employee-registry/internal/services"
	"github.com/sbilibin2017/employee-registry/internal/validation"
)

// EmployeeCreator defines the interface for creating employees.
type EmployeeCreator interface {
	Create(ctx context.Context, employee models.EmployeeDB) (uuid.UUID, error)
}

var employeeFields = []string{
	"first_name",
	"last_name",
	"email",
	"position",
	"salary",
	"date_of_joining",
	"department",
}

// CreateEmployeeRequest represents the JSON body for a new employee
// swagger:model CreateEmployeeRequest
type CreateEmployeeRequest struct {
	// required: true
	// default: John
	FirstName string `json:"first_name"`

	// required: true
	// default: Doe
	LastName string `json:"last_name"`

	// required: true
	// default: john.doe@example.com
	Email string `json:"email"`

	// required: true
	// default: Engineer
	Position string `json:"position"`

	// Number or numeric string
	// required: true
	// default: 85000
	Salary float64 `json:"salary"`

	// ISO-8601 date
	// required: true
	// default: 2024-01-15T00:00:00.000Z
	DateOfJoining string `json:"date_of_joining"`

	// required: true
	// default: Engineering
	Department string `json:"department"`
}

// CreateEmployeeResponse represents a successful create response
// swagger:model CreateEmployeeResponse
type CreateEmployeeResponse struct {
	// Success message
	// default: Employee created successfully.
	Message string `json:"message"`

	// Identifier of the new employee
	EmployeeID uuid.UUID `json:"employee_id"`
}

// NewCreateEmployeeHandler returns an HTTP handler creating an employee.
// @Summary Create employee
// @Description Validates every field and stores a new employee. Email must be unique.
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body handlers.CreateEmployeeRequest true "Employee"
// @Success 201 {object} handlers.CreateEmployeeResponse "Employee created"
// @Failure 400 {object} handlers.ValidationErrorResponse "Invalid fields"
// @Failure 409 {object} handlers.ErrorResponse "Employee is already added"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /employees [post]
func NewCreateEmployeeHandler(svc EmployeeCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := validation.Decode(r.Body)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if errs := validation.Validate(payload, employeeFields...); len(errs) > 0 {
			writeJSON(w, http.StatusBadRequest, ValidationErrorResponse{Errors: errs})
			return
		}

		// Both accessors succeed once validation passed.
		salary, _ := payload.Float("salary")
		joinedAt, _ := payload.Time("date_of_joining")

		employeeID, err := svc.Create(r.Context(), models.EmployeeDB{
			FirstName:     payload.String("first_name"),
			LastName:      payload.String("last_name"),
			Email:         payload.String("email"),
			Position:      payload.String("position"),
			Salary:        salary,
			DateOfJoining: joinedAt,
			Department:    payload.String("department"),
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmployeeAlreadyExists):
				writeError(w, http.StatusConflict, "Employee is already added")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Error creating the employee")
			}
			return
		}

		writeJSON(w, http.StatusCreated, CreateEmployeeResponse{
			Message:    "Employee created successfully.",
			EmployeeID: employeeID,
		})
	}
}
