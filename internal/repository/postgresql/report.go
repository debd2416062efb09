package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/pontosweb/pontosweb-backend-go/internal/domain/report"
	"github.com/pontosweb/pontosweb-backend-go/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepository{db: db}
}

// CompanyMonthlyRows implements report.ReportRepository.
func (r *reportRepository) CompanyMonthlyRows(ctx context.Context, from, to time.Time) ([]report.CompanyReportRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.enrollment_no, e.name,
		       COALESCE(SUM(w.expected_minutes), 0),
		       COALESCE(SUM(w.worked_minutes), 0),
		       COALESCE(SUM(a.minutes), 0),
		       COALESCE(SUM(w.extra_minutes), 0),
		       COALESCE(SUM(CASE WHEN w.balance_minutes < 0 THEN -w.balance_minutes ELSE 0 END), 0),
		       COALESCE(SUM(w.balance_minutes), 0)
		FROM employees e
		LEFT JOIN workdays w ON w.employee_id = e.id AND w.date >= $1 AND w.date <= $2
		LEFT JOIN abonos a ON a.workday_id = w.id
		GROUP BY e.id, e.enrollment_no, e.name
		ORDER BY e.name ASC
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query company report: %w", err)
	}
	defer rows.Close()

	var result []report.CompanyReportRow
	for rows.Next() {
		var row report.CompanyReportRow
		err := rows.Scan(
			&row.EmployeeID, &row.EnrollmentNo, &row.Name,
			&row.ExpectedMinutes, &row.WorkedMinutes, &row.AbonoMinutes,
			&row.ExtraMinutes, &row.DelayMinutes, &row.BalanceMinutes,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan company report row: %w", err)
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

// CountEmployees implements report.ReportRepository.
func (r *reportRepository) CountEmployees(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}

	return count, nil
}

// MonthlyMinuteTotals implements report.ReportRepository.
func (r *reportRepository) MonthlyMinuteTotals(ctx context.Context, from, to time.Time) (int, int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(extra_minutes), 0),
		       COALESCE(SUM(CASE WHEN balance_minutes < 0 THEN -balance_minutes ELSE 0 END), 0)
		FROM workdays
		WHERE date >= $1 AND date <= $2
	`

	var extra, delay int
	if err := q.QueryRow(ctx, query, from, to).Scan(&extra, &delay); err != nil {
		return 0, 0, fmt.Errorf("failed to aggregate monthly minutes: %w", err)
	}

	return extra, delay, nil
}
