package handlers

//go:generate mockgen -source=employee_delete.go -destination=employee_delete_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/employee-registry/internal/logger"
	"github.com/sbilibin2017/employee-registry/internal/services"
)

// EmployeeDeleter defines the interface for deleting employees.
type EmployeeDeleter interface {
	Delete(ctx context.Context, employeeID uuid.UUID) error
}

// NewDeleteEmployeeHandler returns an HTTP handler deleting an employee.
// The id is taken from the {eid} path segment, or from the eid query parameter.
// @Summary Delete employee
// @Tags employees
// @Produce json
// @Param eid query string false "Employee ID"
// @Success 200 {object} handlers.MessageResponse "Employee deleted"
// @Failure 400 {object} handlers.ErrorResponse "Missing or invalid id"
// @Failure 404 {object} handlers.ErrorResponse "Employee not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /employees [delete]
func NewDeleteEmployeeHandler(svc EmployeeDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eid := chi.URLParam(r, "eid")
		if eid == "" {
			eid = r.URL.Query().Get("eid")
		}
		if eid == "" {
			writeError(w, http.StatusBadRequest, "Employee id is required")
			return
		}

		employeeID, err := uuid.Parse(eid)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Employee ID is invalid")
			return
		}

		if err := svc.Delete(r.Context(), employeeID); err != nil {
			switch {
			case errors.Is(err, services.ErrEmployeeNotFound):
				writeError(w, http.StatusNotFound, "Employee not find")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Error deleting the employee")
			}
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Employee delete successfully"})
	}
}
