package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/employee-registry/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestSearchEmployeesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	employees := []models.EmployeeDB{sampleEmployee()}

	tests := []struct {
		name         string
		target       string
		mockSetup    func(m *MockEmployeeSearcher)
		expectedCode int
		expectedBody func(t *testing.T) map[string]any
	}{
		{
			name:   "matches",
			target: "/employees/search/Engineering",
			mockSetup: func(m *MockEmployeeSearcher) {
				m.EXPECT().Search(gomock.Any(), "Engineering").Return(employees, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: func(t *testing.T) map[string]any {
				return asJSON(t, SearchEmployeesResponse{Status: true, Employees: employees})
			},
		},
		{
			name:   "escaped text",
			target: "/employees/search/Human%20Resources",
			mockSetup: func(m *MockEmployeeSearcher) {
				m.EXPECT().Search(gomock.Any(), "Human Resources").Return(employees, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: func(t *testing.T) map[string]any {
				return asJSON(t, SearchEmployeesResponse{Status: true, Employees: employees})
			},
		},
		{
			name:   "escaped slash",
			target: "/employees/search/R%2FD",
			mockSetup: func(m *MockEmployeeSearcher) {
				m.EXPECT().Search(gomock.Any(), "R/D").Return(employees, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: func(t *testing.T) map[string]any {
				return asJSON(t, SearchEmployeesResponse{Status: true, Employees: employees})
			},
		},
		{
			name:   "no match",
			target: "/employees/search/Astronaut",
			mockSetup: func(m *MockEmployeeSearcher) {
				m.EXPECT().Search(gomock.Any(), "Astronaut").Return(nil, nil)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: func(t *testing.T) map[string]any {
				return errorBody("No employees found matching the criteria")
			},
		},
		{
			name:   "internal server error",
			target: "/employees/search/Engineering",
			mockSetup: func(m *MockEmployeeSearcher) {
				m.EXPECT().Search(gomock.Any(), "Engineering").Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: func(t *testing.T) map[string]any {
				return errorBody("Error searching employees")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockEmployeeSearcher(ctrl)
			tt.mockSetup(mockSvc)

			rr := serve(http.MethodGet, "/employees/search/{text}", tt.target, "", NewSearchEmployeesHandler(mockSvc))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedBody(t), decodeBody(t, rr))
		})
	}
}
