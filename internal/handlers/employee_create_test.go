package handlers

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/employee-registry/internal/models"
	"github.com/sbilibin2017/employee-registry/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestCreateEmployeeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	employeeID := uuid.New()
	validBody := `{
		"first_name": "John",
		"last_name": "Doe",
		"email": "john.doe@example.com",
		"position": "Engineer",
		"salary": 85000,
		"date_of_joining": "2024-01-15T00:00:00.000Z",
		"department": "Engineering"
	}`
	expected := models.EmployeeDB{
		FirstName:     "John",
		LastName:      "Doe",
		Email:         "john.doe@example.com",
		Position:      "Engineer",
		Salary:        85000,
		DateOfJoining: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Department:    "Engineering",
	}

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockEmployeeCreator)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name: "created",
			body: validBody,
			mockSetup: func(m *MockEmployeeCreator) {
				m.EXPECT().Create(gomock.Any(), expected).Return(employeeID, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: map[string]any{
				"message":     "Employee created successfully.",
				"employee_id": employeeID.String(),
			},
		},
		{
			name: "numeric string salary and plain date",
			body: `{
				"first_name": "John",
				"last_name": "Doe",
				"email": "john.doe@example.com",
				"position": "Engineer",
				"salary": "85000",
				"date_of_joining": "2024-01-15",
				"department": "Engineering"
			}`,
			mockSetup: func(m *MockEmployeeCreator) {
				m.EXPECT().Create(gomock.Any(), expected).Return(employeeID, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: map[string]any{
				"message":     "Employee created successfully.",
				"employee_id": employeeID.String(),
			},
		},
		{
			name: "duplicate email",
			body: validBody,
			mockSetup: func(m *MockEmployeeCreator) {
				m.EXPECT().Create(gomock.Any(), expected).Return(uuid.Nil, services.ErrEmployeeAlreadyExists)
			},
			expectedCode: http.StatusConflict,
			expectedBody: errorBody("Employee is already added"),
		},
		{
			name: "internal server error",
			body: validBody,
			mockSetup: func(m *MockEmployeeCreator) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: errorBody("Error creating the employee"),
		},
		{
			name:         "invalid json",
			body:         "{invalid json}",
			expectedCode: http.StatusBadRequest,
			expectedBody: errorBody("Invalid request body"),
		},
		{
			name:         "body is not an object",
			body:         `["John"]`,
			expectedCode: http.StatusBadRequest,
			expectedBody: errorBody("Invalid request body"),
		},
		{
			name: "invalid fields reported in order",
			body: `{
				"first_name": "",
				"last_name": "Doe",
				"email": "bad",
				"position": "Engineer",
				"salary": "abc",
				"date_of_joining": "15/01/2024"
			}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"errors": []any{
				map[string]any{"field": "first_name", "message": "First name is required", "value": ""},
				map[string]any{"field": "email", "message": "Please provide a valid email address", "value": "bad"},
				map[string]any{"field": "salary", "message": "Enter salary in number", "value": "abc"},
				map[string]any{"field": "date_of_joining", "message": "Please provide a valid date format (YYYY-MM-DDTHH:mm:ss.sssZ)", "value": "15/01/2024"},
				map[string]any{"field": "department", "message": "Department is required"},
			}},
		},
		{
			name: "salary out of range",
			body: `{"first_name":"John","last_name":"Doe","email":"john.doe@example.com","position":"Engineer",` +
				`"salary":"` + strings.Repeat("9", 400) + `","date_of_joining":"2024-01-15","department":"Engineering"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"errors": []any{
				map[string]any{"field": "salary", "message": "Enter salary in number", "value": strings.Repeat("9", 400)},
			}},
		},
		{
			name:         "missing joining date",
			body:         `{"first_name":"John","last_name":"Doe","email":"john.doe@example.com","position":"Engineer","salary":1,"department":"Engineering"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"errors": []any{
				map[string]any{"field": "date_of_joining", "message": "Joining date is required"},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockEmployeeCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			rr := serve(http.MethodPost, "/employees", "/employees", tt.body, NewCreateEmployeeHandler(mockSvc))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedBody, decodeBody(t, rr))
		})
	}
}
