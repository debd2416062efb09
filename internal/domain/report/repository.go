package report

import (
	"context"
	"time"
)

// ReportRepository defines aggregate queries over workdays and abonos.
type ReportRepository interface {
	// CompanyMonthlyRows returns one aggregate row per employee for
	// workdays within [from, to], ordered by employee name
	CompanyMonthlyRows(ctx context.Context, from, to time.Time) ([]CompanyReportRow, error)

	// CountEmployees counts all registered employees
	CountEmployees(ctx context.Context) (int, error)

	// MonthlyMinuteTotals sums extra and delay minutes over all
	// workdays within [from, to]
	MonthlyMinuteTotals(ctx context.Context, from, to time.Time) (extraMinutes int, delayMinutes int, err error)
}
