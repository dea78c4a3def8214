package handlers

//go:generate mockgen -source=employee_search.go -destination=employee_search_mock.go -package=handlers

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/employee-registry/internal/logger"
	"github.com/sbilibin2017/employee-registry/internal/models"
)

// EmployeeSearcher defines the interface for searching employees.
type EmployeeSearcher interface {
	Search(ctx context.Context, text string) ([]models.EmployeeDB, error)
}

// SearchEmployeesResponse carries the employees matching a search
// swagger:model SearchEmployeesResponse
type SearchEmployeesResponse struct {
	// default: true
	Status    bool                `json:"status"`
	Employees []models.EmployeeDB `json:"employees"`
}

// NewSearchEmployeesHandler returns an HTTP handler searching employees
// whose department or position equals the path text.
// @Summary Search employees
// @Description Exact match on department or position. No match answers 404.
// @Tags employees
// @Produce json
// @Param text path string true "Department or position"
// @Success 200 {object} handlers.SearchEmployeesResponse "Matching employees"
// @Failure 404 {object} handlers.ErrorResponse "No employees found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /employees/search/{text} [get]
func NewSearchEmployeesHandler(svc EmployeeSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		text := chi.URLParam(r, "text")
		// chi matches on RawPath when it is set, leaving the param escaped.
		if r.URL.RawPath != "" {
			if unescaped, err := url.PathUnescape(text); err == nil {
				text = unescaped
			}
		}

		employees, err := svc.Search(r.Context(), text)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Error searching employees")
			return
		}

		if len(employees) == 0 {
			writeError(w, http.StatusNotFound, "No employees found matching the criteria")
			return
		}

		writeJSON(w, http.StatusOK, SearchEmployeesResponse{Status: true, Employees: employees})
	}
}
