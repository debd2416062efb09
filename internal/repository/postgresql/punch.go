package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/pontosweb/pontosweb-backend-go/internal/domain/punch"
	"github.com/pontosweb/pontosweb-backend-go/internal/pkg/database"
)

type punchRepository struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepository{db: db}
}

// Create implements punch.PunchRepository.
func (r *punchRepository) Create(ctx context.Context, p punch.Punch) (punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO punches (employee_id, date_time, io_mode, imported)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		p.EmployeeID,
		p.DateTime,
		p.IOMode,
		p.Imported,
	).Scan(&p.ID, &p.CreatedAt)

	if err != nil {
		return punch.Punch{}, fmt.Errorf("failed to create punch: %w", err)
	}

	return p, nil
}

// ExistsAt implements punch.PunchRepository.
func (r *punchRepository) ExistsAt(ctx context.Context, employeeID string, at time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM punches WHERE employee_id = $1 AND date_time = $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, at).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check punch existence: %w", err)
	}

	return exists, nil
}

// ListByEmployeeBetween implements punch.PunchRepository.
func (r *punchRepository) ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date_time, io_mode, imported, created_at
		FROM punches
		WHERE employee_id = $1
		  AND date_time >= $2
		  AND date_time <= $3
		ORDER BY date_time ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}
	defer rows.Close()

	var punches []punch.Punch
	for rows.Next() {
		var p punch.Punch
		if err := rows.Scan(&p.ID, &p.EmployeeID, &p.DateTime, &p.IOMode, &p.Imported, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		punches = append(punches, p)
	}

	return punches, rows.Err()
}

// CountDistinctEmployeesOn implements punch.PunchRepository.
func (r *punchRepository) CountDistinctEmployeesOn(ctx context.Context, date time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	query := `
		SELECT COUNT(DISTINCT employee_id)
		FROM punches
		WHERE date_time >= $1 AND date_time < $2
	`

	var count int
	if err := q.QueryRow(ctx, query, dayStart, dayEnd).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count punched employees: %w", err)
	}

	return count, nil
}
