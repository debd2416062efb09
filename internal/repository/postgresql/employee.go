package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pontosweb/pontosweb-backend-go/internal/domain/employee"
	"github.com/pontosweb/pontosweb-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (enrollment_no, name, mode, work_start_1, work_end_1, work_start_2, work_end_2)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.EnrollmentNo,
		emp.Name,
		emp.Mode,
		emp.WorkStart1,
		emp.WorkEnd1,
		emp.WorkStart2,
		emp.WorkEnd2,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrEnrollmentNoExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, enrollment_no, name, mode,
		       work_start_1, work_end_1, work_start_2, work_end_2,
		       created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.EnrollmentNo, &emp.Name, &emp.Mode,
		&emp.WorkStart1, &emp.WorkEnd1, &emp.WorkStart2, &emp.WorkEnd2,
		&emp.CreatedAt, &emp.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// GetByEnrollmentNo implements employee.EmployeeRepository.
func (r *employeeRepository) GetByEnrollmentNo(ctx context.Context, enrollmentNo string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, enrollment_no, name, mode,
		       work_start_1, work_end_1, work_start_2, work_end_2,
		       created_at, updated_at
		FROM employees
		WHERE enrollment_no = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, enrollmentNo).Scan(
		&emp.ID, &emp.EnrollmentNo, &emp.Name, &emp.Mode,
		&emp.WorkStart1, &emp.WorkEnd1, &emp.WorkStart2, &emp.WorkEnd2,
		&emp.CreatedAt, &emp.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No matching employee
		}
		return nil, fmt.Errorf("failed to get employee by enrollment number: %w", err)
	}

	return &emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.enrollment_no, e.name, e.mode,
		       e.work_start_1, e.work_end_1, e.work_start_2, e.work_end_2,
		       e.created_at, e.updated_at,
		       COUNT(DISTINCT p.id) AS punch_count,
		       COUNT(DISTINCT w.id) AS workday_count,
		       MAX(p.date_time) AS last_punch
		FROM employees e
		LEFT JOIN punches p ON p.employee_id = e.id
		LEFT JOIN workdays w ON w.employee_id = e.id
		GROUP BY e.id
		ORDER BY e.name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.EnrollmentNo, &emp.Name, &emp.Mode,
			&emp.WorkStart1, &emp.WorkEnd1, &emp.WorkStart2, &emp.WorkEnd2,
			&emp.CreatedAt, &emp.UpdatedAt,
			&emp.PunchCount, &emp.WorkdayCount, &emp.LastPunch,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}

// UpdateMode implements employee.EmployeeRepository.
func (r *employeeRepository) UpdateMode(ctx context.Context, id string, mode *int) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE employees SET mode = $2, updated_at = NOW() WHERE id = $1`, id, mode)
	if err != nil {
		return fmt.Errorf("failed to update employee mode: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// UpdateSchedule implements employee.EmployeeRepository.
func (r *employeeRepository) UpdateSchedule(ctx context.Context, id string, start1, end1, start2, end2 *string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET work_start_1 = $2, work_end_1 = $3, work_start_2 = $4, work_end_2 = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING id, enrollment_no, name, mode,
		          work_start_1, work_end_1, work_start_2, work_end_2,
		          created_at, updated_at
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id, start1, end1, start2, end2).Scan(
		&emp.ID, &emp.EnrollmentNo, &emp.Name, &emp.Mode,
		&emp.WorkStart1, &emp.WorkEnd1, &emp.WorkStart2, &emp.WorkEnd2,
		&emp.CreatedAt, &emp.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee schedule: %w", err)
	}

	return emp, nil
}
