package handlers

//go:generate mockgen -source=employee_update.go -destination=employee_update_mock.go -package=handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/employee-registry/internal/logger"
	"github.com/sbilibin2017/employee-registry/internal/models"
	"github.com/sbilibin2017/employee-registry/internal/services"
	"github.com/sbilibin2017/employee-registry/internal/validation"
)

// EmployeeUpdater defines the interface for partially updating an employee.
type EmployeeUpdater interface {
	Update(ctx context.Context, employeeID uuid.UUID, update models.EmployeeUpdate) error
}

// NewUpdateEmployeeHandler returns an HTTP handler updating an employee.
// Only the fields present in the body are changed; unknown keys are ignored
// and an empty body changes nothing.
// @Summary Update employee
// @Tags employees
// @Accept json
// @Produce json
// @Param eid path string true "Employee ID"
// @Param update body models.EmployeeUpdate true "Fields to change"
// @Success 200 {object} handlers.MessageResponse "Employee updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id or body"
// @Failure 404 {object} handlers.ErrorResponse "Employee not found"
// @Failure 409 {object} handlers.ErrorResponse "Email already in use"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /employees/{eid} [put]
func NewUpdateEmployeeHandler(svc EmployeeUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		employeeID, err := uuid.Parse(chi.URLParam(r, "eid"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Employee ID is invalid")
			return
		}

		update, err := decodeEmployeeUpdate(r.Body)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := svc.Update(r.Context(), employeeID, update); err != nil {
			switch {
			case errors.Is(err, services.ErrEmployeeNotFound):
				writeError(w, http.StatusNotFound, "Employee ID not found")
			case errors.Is(err, services.ErrEmployeeAlreadyExists):
				writeError(w, http.StatusConflict, "Employee email is already in use")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Error updating the employee")
			}
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Employee details updated successfully"})
	}
}

var errNotScalar = errors.New("field must be a string or a number")

// decodeEmployeeUpdate reads the fields present in body. Salaries and dates
// accept the same forms as on create. Null fields are treated as absent.
func decodeEmployeeUpdate(body io.Reader) (models.EmployeeUpdate, error) {
	var update models.EmployeeUpdate

	payload, err := validation.Decode(body)
	if errors.Is(err, io.EOF) {
		return update, nil
	}
	if err != nil {
		return update, err
	}

	text := func(field string) (*string, error) {
		switch payload[field].(type) {
		case nil:
			return nil, nil
		case map[string]any, []any:
			return nil, fmt.Errorf("%s: %w", field, errNotScalar)
		}
		s := payload.String(field)
		return &s, nil
	}

	for field, dst := range map[string]**string{
		"first_name": &update.FirstName,
		"last_name":  &update.LastName,
		"email":      &update.Email,
		"position":   &update.Position,
		"department": &update.Department,
	} {
		if *dst, err = text(field); err != nil {
			return update, err
		}
	}

	if payload["salary"] != nil {
		salary, err := payload.Float("salary")
		if err != nil {
			return update, fmt.Errorf("salary: %w", err)
		}
		update.Salary = &salary
	}

	if payload["date_of_joining"] != nil {
		joinedAt, err := payload.Time("date_of_joining")
		if err != nil {
			return update, fmt.Errorf("date_of_joining: %w", err)
		}
		update.DateOfJoining = &joinedAt
	}

	return update, nil
}
