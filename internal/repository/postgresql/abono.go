package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pontosweb/pontosweb-backend-go/internal/domain/abono"
	"github.com/pontosweb/pontosweb-backend-go/internal/pkg/database"
)

type abonoRepository struct {
	db *database.DB
}

func NewAbonoRepository(db *database.DB) abono.AbonoRepository {
	return &abonoRepository{db: db}
}

// Create implements abono.AbonoRepository.
func (r *abonoRepository) Create(ctx context.Context, a abono.Abono) (abono.Abono, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO abonos (workday_id, type, reason, start_time, end_time, minutes, document)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		a.WorkdayID,
		a.Type,
		a.Reason,
		a.StartTime,
		a.EndTime,
		a.Minutes,
		a.Document,
	).Scan(&a.ID, &a.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return abono.Abono{}, abono.ErrAbonoExists
		}
		return abono.Abono{}, fmt.Errorf("failed to create abono: %w", err)
	}

	return a, nil
}

// GetByID implements abono.AbonoRepository.
func (r *abonoRepository) GetByID(ctx context.Context, id string) (abono.Abono, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, workday_id, type, reason, start_time, end_time, minutes, document, created_at
		FROM abonos
		WHERE id = $1
	`

	var a abono.Abono
	err := q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.WorkdayID, &a.Type, &a.Reason, &a.StartTime, &a.EndTime, &a.Minutes, &a.Document, &a.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return abono.Abono{}, abono.ErrAbonoNotFound
		}
		return abono.Abono{}, fmt.Errorf("failed to get abono: %w", err)
	}

	return a, nil
}

// GetByWorkday implements abono.AbonoRepository.
func (r *abonoRepository) GetByWorkday(ctx context.Context, workdayID string) (*abono.Abono, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, workday_id, type, reason, start_time, end_time, minutes, document, created_at
		FROM abonos
		WHERE workday_id = $1
	`

	var a abono.Abono
	err := q.QueryRow(ctx, query, workdayID).Scan(
		&a.ID, &a.WorkdayID, &a.Type, &a.Reason, &a.StartTime, &a.EndTime, &a.Minutes, &a.Document, &a.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No abono for this workday
		}
		return nil, fmt.Errorf("failed to get abono by workday: %w", err)
	}

	return &a, nil
}

// UpdateDocument implements abono.AbonoRepository.
func (r *abonoRepository) UpdateDocument(ctx context.Context, id string, document string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE abonos SET document = $2 WHERE id = $1`, id, document)
	if err != nil {
		return fmt.Errorf("failed to update abono document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return abono.ErrAbonoNotFound
	}

	return nil
}

// Delete implements abono.AbonoRepository.
func (r *abonoRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM abonos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete abono: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return abono.ErrAbonoNotFound
	}

	return nil
}

// StatsForEmployeeMonth implements abono.AbonoRepository.
func (r *abonoRepository) StatsForEmployeeMonth(ctx context.Context, employeeID string, from, to time.Time) (abono.MonthStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.type, COUNT(*), COALESCE(SUM(a.minutes), 0)
		FROM abonos a
		JOIN workdays w ON w.id = a.workday_id
		WHERE w.employee_id = $1 AND w.date >= $2 AND w.date <= $3
		GROUP BY a.type
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return abono.MonthStats{}, fmt.Errorf("failed to aggregate abonos: %w", err)
	}
	defer rows.Close()

	stats := abono.MonthStats{ByType: make(map[string]abono.TypeStats)}
	for rows.Next() {
		var abonoType string
		var count, minutes int
		if err := rows.Scan(&abonoType, &count, &minutes); err != nil {
			return abono.MonthStats{}, fmt.Errorf("failed to scan abono aggregate: %w", err)
		}
		stats.ByType[abonoType] = abono.TypeStats{Count: count, Minutes: minutes}
		stats.Count += count
		stats.Minutes += minutes
	}

	return stats, rows.Err()
}
