package handlers

//go:generate mockgen -source=employee_list.go -destination=employee_list_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/employee-registry/internal/logger"
	"github.com/sbilibin2017/employee-registry/internal/models"
)

// EmployeeLister defines the interface for listing employees.
type EmployeeLister interface {
	List(ctx context.Context) ([]models.EmployeeDB, error)
}

// EmployeeListResponse carries every stored employee
// swagger:model EmployeeListResponse
type EmployeeListResponse struct {
	Employees []models.EmployeeDB `json:"emp"`
}

// NewListEmployeesHandler returns an HTTP handler listing all employees.
// @Summary List employees
// @Description Returns every employee. An empty registry answers 200 with a message instead of a list.
// @Tags employees
// @Produce json
// @Success 200 {object} handlers.EmployeeListResponse "Employees"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /employees [get]
func NewListEmployeesHandler(svc EmployeeLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		employees, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Error reading the employee data")
			return
		}

		if len(employees) == 0 {
			writeJSON(w, http.StatusOK, MessageResponse{Message: "Employee list is empty!"})
			return
		}

		writeJSON(w, http.StatusOK, EmployeeListResponse{Employees: employees})
	}
}
