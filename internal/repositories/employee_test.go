package repositories

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/employee-registry/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var employeeRowColumns = []string{
	"id", "first_name", "last_name", "email", "position", "salary",
	"date_of_joining", "department", "created_at", "updated_at",
}

func employeeRow(id uuid.UUID, email, position, department string, ts time.Time) []driver.Value {
	return []driver.Value{id.String(), "Ann", "Lee", email, position, 50000.0, ts, department, ts, ts}
}

func TestEmployeeReadRepository_List(t *testing.T) {
	now := time.Now().UTC()
	id1, id2 := uuid.New(), uuid.New()

	t.Run("rows", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("SELECT (.+) FROM employees ORDER BY created_at").
			WillReturnRows(sqlmock.NewRows(employeeRowColumns).
				AddRow(employeeRow(id1, "a@x.com", "Eng", "Engineering", now)...).
				AddRow(employeeRow(id2, "b@x.com", "Lead", "Sales", now)...))

		employees, err := NewEmployeeReadRepository(db).List(context.Background())
		require.NoError(t, err)
		require.Len(t, employees, 2)
		assert.Equal(t, id1, employees[0].EmployeeID)
		assert.Equal(t, "Sales", employees[1].Department)
		assert.Equal(t, 50000.0, employees[1].Salary)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("FROM employees").
			WillReturnRows(sqlmock.NewRows(employeeRowColumns))

		employees, err := NewEmployeeReadRepository(db).List(context.Background())
		require.NoError(t, err)
		assert.Empty(t, employees)
	})

	t.Run("error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("FROM employees").WillReturnError(errors.New("boom"))

		employees, err := NewEmployeeReadRepository(db).List(context.Background())
		assert.Error(t, err)
		assert.Nil(t, employees)
	})
}

func TestEmployeeReadRepository_GetByID(t *testing.T) {
	now := time.Now().UTC()
	id := uuid.New()

	tests := []struct {
		name      string
		mockSetup func(mock sqlmock.Sqlmock)
		wantFound bool
		wantErr   bool
	}{
		{
			name: "found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM employees WHERE id = \\$1").
					WithArgs(id).
					WillReturnRows(sqlmock.NewRows(employeeRowColumns).
						AddRow(employeeRow(id, "a@x.com", "Eng", "Engineering", now)...))
			},
			wantFound: true,
		},
		{
			name: "not found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM employees WHERE id = \\$1").
					WithArgs(id).
					WillReturnRows(sqlmock.NewRows(employeeRowColumns))
			},
		},
		{
			name: "error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM employees").WillReturnError(errors.New("boom"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.mockSetup(mock)

			employee, err := NewEmployeeReadRepository(db).GetByID(context.Background(), id)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.wantFound {
				require.NotNil(t, employee)
				assert.Equal(t, id, employee.EmployeeID)
				assert.Equal(t, "a@x.com", employee.Email)
			} else {
				assert.Nil(t, employee)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEmployeeReadRepository_Search(t *testing.T) {
	now := time.Now().UTC()
	id := uuid.New()

	db, mock := newMockDB(t)
	mock.ExpectQuery("WHERE department = \\$1 OR position = \\$1").
		WithArgs("Engineering").
		WillReturnRows(sqlmock.NewRows(employeeRowColumns).
			AddRow(employeeRow(id, "a@x.com", "Eng", "Engineering", now)...))

	employees, err := NewEmployeeReadRepository(db).Search(context.Background(), "Engineering")
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, id, employees[0].EmployeeID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeWriteRepository_Save(t *testing.T) {
	now := time.Now().UTC()
	id := uuid.New()
	joined := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	newEmployee := func() *models.EmployeeDB {
		return &models.EmployeeDB{
			FirstName:     "Ann",
			LastName:      "Lee",
			Email:         "a@x.com",
			Position:      "Eng",
			Salary:        50000,
			DateOfJoining: joined,
			Department:    "Engineering",
		}
	}

	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("INSERT INTO employees").
			WithArgs("Ann", "Lee", "a@x.com", "Eng", 50000.0, joined, "Engineering").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
				AddRow(id.String(), now, now))

		employee := newEmployee()
		err := NewEmployeeWriteRepository(db).Save(context.Background(), employee)
		require.NoError(t, err)
		assert.Equal(t, id, employee.EmployeeID)
		assert.Equal(t, now, employee.CreatedAt)
		assert.Equal(t, now, employee.UpdatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("INSERT INTO employees").
			WillReturnError(&pgconn.PgError{Code: uniqueViolation, ConstraintName: constraintEmployeesEmail})

		err := NewEmployeeWriteRepository(db).Save(context.Background(), newEmployee())
		assert.ErrorIs(t, err, models.ErrDuplicateEmail)
	})

	t.Run("other error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("INSERT INTO employees").WillReturnError(errors.New("boom"))

		err := NewEmployeeWriteRepository(db).Save(context.Background(), newEmployee())
		assert.Error(t, err)
		assert.NotErrorIs(t, err, models.ErrDuplicateEmail)
	})
}

func TestEmployeeWriteRepository_Update(t *testing.T) {
	now := time.Now().UTC()
	id := uuid.New()
	position := "Lead"

	tests := []struct {
		name      string
		mockSetup func(mock sqlmock.Sqlmock)
		wantFound bool
		wantErr   error
	}{
		{
			name: "updated",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("UPDATE employees SET").
					WithArgs(id, nil, nil, nil, position, nil, nil, nil).
					WillReturnRows(sqlmock.NewRows(employeeRowColumns).
						AddRow(employeeRow(id, "a@x.com", position, "Engineering", now)...))
			},
			wantFound: true,
		},
		{
			name: "not found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("UPDATE employees SET").
					WillReturnRows(sqlmock.NewRows(employeeRowColumns))
			},
		},
		{
			name: "duplicate email",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("UPDATE employees SET").
					WillReturnError(&pgconn.PgError{Code: uniqueViolation, ConstraintName: constraintEmployeesEmail})
			},
			wantErr: models.ErrDuplicateEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.mockSetup(mock)

			employee, err := NewEmployeeWriteRepository(db).Update(context.Background(), id,
				models.EmployeeUpdate{Position: &position})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			if tt.wantFound {
				require.NotNil(t, employee)
				assert.Equal(t, position, employee.Position)
			} else {
				assert.Nil(t, employee)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEmployeeWriteRepository_Delete(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name        string
		mockSetup   func(mock sqlmock.Sqlmock)
		wantDeleted bool
		wantErr     bool
	}{
		{
			name: "deleted",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM employees WHERE id = \\$1").
					WithArgs(id).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			wantDeleted: true,
		},
		{
			name: "nothing to delete",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM employees").
					WithArgs(id).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
		},
		{
			name: "error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM employees").WillReturnError(errors.New("boom"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.mockSetup(mock)

			deleted, err := NewEmployeeWriteRepository(db).Delete(context.Background(), id)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantDeleted, deleted)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
