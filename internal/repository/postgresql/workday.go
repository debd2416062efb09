package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pontosweb/pontosweb-backend-go/internal/domain/workday"
	"github.com/pontosweb/pontosweb-backend-go/internal/pkg/database"
)

type workdayRepository struct {
	db *database.DB
}

func NewWorkdayRepository(db *database.DB) workday.WorkdayRepository {
	return &workdayRepository{db: db}
}

const workdayColumns = `
	id, employee_id, date, entrada1, saida1, entrada2, saida2,
	worked_minutes, expected_minutes, extra_minutes, balance_minutes,
	status, created_at, updated_at
`

func scanWorkday(row pgx.Row) (workday.Workday, error) {
	var wd workday.Workday
	err := row.Scan(
		&wd.ID, &wd.EmployeeID, &wd.Date,
		&wd.Entrada1, &wd.Saida1, &wd.Entrada2, &wd.Saida2,
		&wd.WorkedMinutes, &wd.ExpectedMinutes, &wd.ExtraMinutes, &wd.BalanceMinutes,
		&wd.Status, &wd.CreatedAt, &wd.UpdatedAt,
	)
	return wd, err
}

// GetByID implements workday.WorkdayRepository.
func (r *workdayRepository) GetByID(ctx context.Context, id string) (workday.Workday, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workdayColumns + ` FROM workdays WHERE id = $1`

	wd, err := scanWorkday(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return workday.Workday{}, workday.ErrWorkdayNotFound
		}
		return workday.Workday{}, fmt.Errorf("failed to get workday: %w", err)
	}

	return wd, nil
}

// GetByEmployeeAndDate implements workday.WorkdayRepository.
func (r *workdayRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*workday.Workday, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workdayColumns + ` FROM workdays WHERE employee_id = $1 AND date = $2`

	wd, err := scanWorkday(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No existing workday
		}
		return nil, fmt.Errorf("failed to get workday by employee and date: %w", err)
	}

	return &wd, nil
}

// Upsert implements workday.WorkdayRepository.
func (r *workdayRepository) Upsert(ctx context.Context, wd workday.Workday) (workday.Workday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO workdays (
			employee_id, date, entrada1, saida1, entrada2, saida2,
			worked_minutes, expected_minutes, extra_minutes, balance_minutes, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			entrada1 = EXCLUDED.entrada1,
			saida1 = EXCLUDED.saida1,
			entrada2 = EXCLUDED.entrada2,
			saida2 = EXCLUDED.saida2,
			worked_minutes = EXCLUDED.worked_minutes,
			expected_minutes = EXCLUDED.expected_minutes,
			extra_minutes = EXCLUDED.extra_minutes,
			balance_minutes = EXCLUDED.balance_minutes,
			status = EXCLUDED.status,
			updated_at = NOW()
		RETURNING ` + workdayColumns

	result, err := scanWorkday(q.QueryRow(ctx, query,
		wd.EmployeeID, wd.Date,
		wd.Entrada1, wd.Saida1, wd.Entrada2, wd.Saida2,
		wd.WorkedMinutes, wd.ExpectedMinutes, wd.ExtraMinutes, wd.BalanceMinutes,
		wd.Status,
	))
	if err != nil {
		return workday.Workday{}, fmt.Errorf("failed to upsert workday: %w", err)
	}

	return result, nil
}

// UpdateDerived implements workday.WorkdayRepository.
func (r *workdayRepository) UpdateDerived(ctx context.Context, id string, expected, balance, extra int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE workdays
		SET expected_minutes = $2, balance_minutes = $3, extra_minutes = $4, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, expected, balance, extra)
	if err != nil {
		return fmt.Errorf("failed to update derived workday fields: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return workday.ErrWorkdayNotFound
	}

	return nil
}

// Update implements workday.WorkdayRepository.
func (r *workdayRepository) Update(ctx context.Context, wd workday.Workday) (workday.Workday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE workdays
		SET entrada1 = $2, saida1 = $3, entrada2 = $4, saida2 = $5,
		    worked_minutes = $6, expected_minutes = $7, extra_minutes = $8,
		    balance_minutes = $9, status = $10, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + workdayColumns

	result, err := scanWorkday(q.QueryRow(ctx, query,
		wd.ID,
		wd.Entrada1, wd.Saida1, wd.Entrada2, wd.Saida2,
		wd.WorkedMinutes, wd.ExpectedMinutes, wd.ExtraMinutes, wd.BalanceMinutes,
		wd.Status,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return workday.Workday{}, workday.ErrWorkdayNotFound
		}
		return workday.Workday{}, fmt.Errorf("failed to update workday: %w", err)
	}

	return result, nil
}

// ListByEmployeeBetween implements workday.WorkdayRepository.
func (r *workdayRepository) ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]workday.Workday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + workdayColumns + `
		FROM workdays
		WHERE employee_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list workdays: %w", err)
	}
	defer rows.Close()

	var workdays []workday.Workday
	for rows.Next() {
		wd, err := scanWorkday(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan workday: %w", err)
		}
		workdays = append(workdays, wd)
	}

	return workdays, rows.Err()
}

// CreateAdjustment implements workday.WorkdayRepository.
func (r *workdayRepository) CreateAdjustment(ctx context.Context, adj workday.Adjustment) (workday.Adjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO adjustments (workday_id, field, old_value, new_value, reason, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		adj.WorkdayID,
		adj.Field,
		adj.OldValue,
		adj.NewValue,
		adj.Reason,
		adj.CreatedBy,
	).Scan(&adj.ID, &adj.CreatedAt)

	if err != nil {
		return workday.Adjustment{}, fmt.Errorf("failed to create adjustment: %w", err)
	}

	return adj, nil
}

// ListAdjustments implements workday.WorkdayRepository.
func (r *workdayRepository) ListAdjustments(ctx context.Context, workdayID string) ([]workday.Adjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, workday_id, field, old_value, new_value, reason, created_by, created_at
		FROM adjustments
		WHERE workday_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, workdayID)
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustments: %w", err)
	}
	defer rows.Close()

	var adjustments []workday.Adjustment
	for rows.Next() {
		var adj workday.Adjustment
		err := rows.Scan(&adj.ID, &adj.WorkdayID, &adj.Field, &adj.OldValue, &adj.NewValue, &adj.Reason, &adj.CreatedBy, &adj.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan adjustment: %w", err)
		}
		adjustments = append(adjustments, adj)
	}

	return adjustments, rows.Err()
}
