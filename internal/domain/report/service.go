package report

import (
	"context"
)

// ReportService builds company-wide aggregates and exports.
type ReportService interface {
	// CompanyMonthly returns one aggregate row per employee for the month
	CompanyMonthly(ctx context.Context, year, month int) (CompanyMonthlyReport, error)

	// CompanyMonthlyExcel renders the company report as an xlsx workbook
	CompanyMonthlyExcel(ctx context.Context, year, month int) ([]byte, error)

	// TimecardExcel renders one employee's monthly timecard as an xlsx
	// workbook
	TimecardExcel(ctx context.Context, employeeID string, year, month int) ([]byte, error)

	// Dashboard returns the landing-page summary stats
	Dashboard(ctx context.Context) (DashboardStats, error)
}
