package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/employee-registry/internal/models"
)

const employeeColumns = `id, first_name, last_name, email, position, salary,
	date_of_joining, department, created_at, updated_at`

// EmployeeReadRepository handles employee read operations
type EmployeeReadRepository struct {
	db *sqlx.DB
}

func NewEmployeeReadRepository(db *sqlx.DB) *EmployeeReadRepository {
	return &EmployeeReadRepository{db: db}
}

// List returns every employee, oldest first.
func (r *EmployeeReadRepository) List(ctx context.Context) ([]models.EmployeeDB, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY created_at, id`

	var employees []models.EmployeeDB
	err := r.db.SelectContext(ctx, &employees, query)

	logQuery(query, nil, len(employees), err)

	if err != nil {
		return nil, err
	}
	return employees, nil
}

// GetByID returns the employee with the given id, or nil, nil when absent.
func (r *EmployeeReadRepository) GetByID(ctx context.Context, employeeID uuid.UUID) (*models.EmployeeDB, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	var employee models.EmployeeDB
	err := r.db.GetContext(ctx, &employee, query, employeeID)

	logQuery(query, []any{employeeID}, employee.EmployeeID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// Search returns employees whose department or position equals text exactly.
func (r *EmployeeReadRepository) Search(ctx context.Context, text string) ([]models.EmployeeDB, error) {
	query := `SELECT ` + employeeColumns + `
		FROM employees
		WHERE department = $1 OR position = $1
		ORDER BY created_at, id`

	var employees []models.EmployeeDB
	err := r.db.SelectContext(ctx, &employees, query, text)

	logQuery(query, []any{text}, len(employees), err)

	if err != nil {
		return nil, err
	}
	return employees, nil
}

// EmployeeWriteRepository handles employee write operations
type EmployeeWriteRepository struct {
	db *sqlx.DB
}

func NewEmployeeWriteRepository(db *sqlx.DB) *EmployeeWriteRepository {
	return &EmployeeWriteRepository{db: db}
}

// Save inserts employee and fills in the id and timestamps assigned by the database.
// A duplicate email is reported as models.ErrDuplicateEmail.
func (r *EmployeeWriteRepository) Save(ctx context.Context, employee *models.EmployeeDB) error {
	const query = `
		INSERT INTO employees (first_name, last_name, email, position, salary,
			date_of_joining, department, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	args := []any{
		employee.FirstName, employee.LastName, employee.Email, employee.Position,
		employee.Salary, employee.DateOfJoining, employee.Department,
	}

	err := r.db.QueryRowxContext(ctx, query, args...).
		Scan(&employee.EmployeeID, &employee.CreatedAt, &employee.UpdatedAt)

	logQuery(query, args, employee.EmployeeID, err)

	if err != nil {
		if constraint, ok := violatedConstraint(err); ok && constraint == constraintEmployeesEmail {
			return models.ErrDuplicateEmail
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// Update overwrites the non-nil fields of update and refreshes updated_at in a
// single statement. It returns nil, nil when no employee has the given id.
func (r *EmployeeWriteRepository) Update(ctx context.Context, employeeID uuid.UUID, update models.EmployeeUpdate) (*models.EmployeeDB, error) {
	query := `
		UPDATE employees SET
			first_name = COALESCE($2, first_name),
			last_name = COALESCE($3, last_name),
			email = COALESCE($4, email),
			position = COALESCE($5, position),
			salary = COALESCE($6, salary),
			date_of_joining = COALESCE($7, date_of_joining),
			department = COALESCE($8, department),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + employeeColumns
	args := []any{
		employeeID, update.FirstName, update.LastName, update.Email, update.Position,
		update.Salary, update.DateOfJoining, update.Department,
	}

	var employee models.EmployeeDB
	err := r.db.GetContext(ctx, &employee, query, args...)

	logQuery(query, args, employee.EmployeeID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		if constraint, ok := violatedConstraint(err); ok && constraint == constraintEmployeesEmail {
			return nil, models.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("update employee: %w", err)
	}
	return &employee, nil
}

// Delete removes the employee and reports whether a row was deleted.
func (r *EmployeeWriteRepository) Delete(ctx context.Context, employeeID uuid.UUID) (bool, error) {
	const query = `DELETE FROM employees WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, employeeID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{employeeID}, rowsAffected, err)

	if err != nil {
		return false, fmt.Errorf("delete employee: %w", err)
	}
	return rowsAffected > 0, nil
}
