package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/muhasibpro/muhasib_app/internal/apperrors"
	"github.com/muhasibpro/muhasib_app/internal/core/domain"
	portsrepo "github.com/muhasibpro/muhasib_app/internal/core/ports/repositories"
)

type PgxEmployeeRepository struct {
	BaseRepository
}

// newPgxEmployeeRepository creates a new repository for employee data.
func newPgxEmployeeRepository(pool *pgxpool.Pool) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

const employeeColumns = `employee_id, code, name, role, phone, basic_salary, join_date, created_at, created_by, last_updated_at, last_updated_by`

func scanEmployee(row pgx.Row) (domain.Employee, error) {
	var e domain.Employee
	var joinDate sql.NullTime
	err := row.Scan(
		&e.EmployeeID,
		&e.Code,
		&e.Name,
		&e.Role,
		&e.Phone,
		&e.BasicSalary,
		&joinDate,
		&e.CreatedAt,
		&e.CreatedBy,
		&e.LastUpdatedAt,
		&e.LastUpdatedBy,
	)
	if err != nil {
		return domain.Employee{}, err
	}
	if joinDate.Valid {
		e.JoinDate = fromDBDate(joinDate.Time)
	}
	return e, nil
}

// SaveEmployee inserts a new employee.
func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	query := `
		INSERT INTO employees (employee_id, code, name, role, phone, basic_salary, join_date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	var joinDate sql.NullTime
	if employee.JoinDate != "" {
		joinDate = sql.NullTime{Time: toDBDate(employee.JoinDate), Valid: true}
	}

	_, err := r.Pool.Exec(ctx, query,
		employee.EmployeeID,
		employee.Code,
		employee.Name,
		employee.Role,
		employee.Phone,
		employee.BasicSalary,
		joinDate,
		employee.CreatedAt,
		employee.CreatedBy,
		employee.LastUpdatedAt,
		employee.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: employee with ID %s already exists", apperrors.ErrDuplicate, employee.EmployeeID)
		}
		return fmt.Errorf("failed to save employee %s: %w", employee.EmployeeID, err)
	}
	return nil
}

// FindEmployeeByID retrieves an employee by its ID.
func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = $1;`

	employee, err := scanEmployee(r.Pool.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee by ID %s: %w", employeeID, err)
	}
	return &employee, nil
}

// ListEmployees retrieves a paginated list of employees ordered by name.
func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context, limit int, offset int) ([]domain.Employee, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY name LIMIT $1 OFFSET $2;`

	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	employees := []domain.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, e)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating employee rows: %w", rows.Err())
	}
	return employees, nil
}

// UpdateEmployee updates an existing employee.
func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	query := `
		UPDATE employees
		SET code = $2, name = $3, role = $4, phone = $5, basic_salary = $6, join_date = $7, last_updated_at = $8, last_updated_by = $9
		WHERE employee_id = $1;
	`
	var joinDate sql.NullTime
	if employee.JoinDate != "" {
		joinDate = sql.NullTime{Time: toDBDate(employee.JoinDate), Valid: true}
	}

	cmdTag, err := r.Pool.Exec(ctx, query,
		employee.EmployeeID,
		employee.Code,
		employee.Name,
		employee.Role,
		employee.Phone,
		employee.BasicSalary,
		joinDate,
		employee.LastUpdatedAt,
		employee.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee %s: %w", employee.EmployeeID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteEmployee removes an employee. Historical transactions and custody
// records keep their employee_id reference.
func (r *PgxEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID string, userID string, now time.Time) error {
	query := `DELETE FROM employees WHERE employee_id = $1;`

	cmdTag, err := r.Pool.Exec(ctx, query, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete employee %s: %w", employeeID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
