package handlers

//go:generate mockgen -source=employee_get.go -destination=employee_get_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/employee-registry/internal/logger"
	"github.com/sbilibin2017/employee-registry/internal/models"
	"github.com/sbilibin2017/employee-registry/internal/services"
)

// EmployeeGetter defines the interface for fetching a single employee.
type EmployeeGetter interface {
	Get(ctx context.Context, employeeID uuid.UUID) (*models.EmployeeDB, error)
}

// EmployeeResponse carries a single employee
// swagger:model EmployeeResponse
type EmployeeResponse struct {
	Employee models.EmployeeDB `json:"emp"`
}

// NewGetEmployeeHandler returns an HTTP handler fetching an employee by id.
// @Summary Get employee
// @Tags employees
// @Produce json
// @Param eid path string true "Employee ID"
// @Success 200 {object} handlers.EmployeeResponse "Employee"
// @Failure 400 {object} handlers.ErrorResponse "Employee ID is invalid"
// @Failure 404 {object} handlers.ErrorResponse "Employee not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /employees/{eid} [get]
func NewGetEmployeeHandler(svc EmployeeGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		employeeID, err := uuid.Parse(chi.URLParam(r, "eid"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Employee ID is invalid")
			return
		}

		employee, err := svc.Get(r.Context(), employeeID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmployeeNotFound):
				writeError(w, http.StatusNotFound, "Employee not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Error reading the employee data")
			}
			return
		}

		writeJSON(w, http.StatusOK, EmployeeResponse{Employee: *employee})
	}
}
