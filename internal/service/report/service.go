package report

import (
	"context"
	"fmt"
	"time"

	"github.com/pontosweb/pontosweb-backend-go/internal/domain/punch"
	"github.com/pontosweb/pontosweb-backend-go/internal/domain/report"
	"github.com/pontosweb/pontosweb-backend-go/internal/domain/workday"
)

type ReportServiceImpl struct {
	report.ReportRepository
	punchRepo      punch.PunchRepository
	workdayService workday.WorkdayService
}

func NewReportService(
	reportRepo report.ReportRepository,
	punchRepo punch.PunchRepository,
	workdayService workday.WorkdayService,
) report.ReportService {
	return &ReportServiceImpl{
		ReportRepository: reportRepo,
		punchRepo:        punchRepo,
		workdayService:   workdayService,
	}
}

func monthRange(year, month int) (time.Time, time.Time) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, -1)
}

// CompanyMonthly implements report.ReportService.
func (s *ReportServiceImpl) CompanyMonthly(ctx context.Context, year, month int) (report.CompanyMonthlyReport, error) {
	from, to := monthRange(year, month)

	rows, err := s.ReportRepository.CompanyMonthlyRows(ctx, from, to)
	if err != nil {
		return report.CompanyMonthlyReport{}, err
	}

	result := report.CompanyMonthlyReport{
		Month: fmt.Sprintf("%04d-%02d", year, month),
		Rows:  rows,
	}
	for _, row := range rows {
		result.TotalExpectedMinutes += row.ExpectedMinutes
		result.TotalWorkedMinutes += row.WorkedMinutes
		result.TotalAbonoMinutes += row.AbonoMinutes
		result.TotalExtraMinutes += row.ExtraMinutes
		result.TotalDelayMinutes += row.DelayMinutes
		result.TotalBalanceMinutes += row.BalanceMinutes
	}

	return result, nil
}

// CompanyMonthlyExcel implements report.ReportService.
func (s *ReportServiceImpl) CompanyMonthlyExcel(ctx context.Context, year, month int) ([]byte, error) {
	rep, err := s.CompanyMonthly(ctx, year, month)
	if err != nil {
		return nil, err
	}
	return renderCompanyMonthlyExcel(rep)
}

// TimecardExcel implements report.ReportService.
func (s *ReportServiceImpl) TimecardExcel(ctx context.Context, employeeID string, year, month int) ([]byte, error) {
	timecard, err := s.workdayService.MonthlyTimecard(ctx, employeeID, year, month)
	if err != nil {
		return nil, err
	}
	return renderTimecardExcel(timecard)
}

// Dashboard implements report.ReportService.
func (s *ReportServiceImpl) Dashboard(ctx context.Context) (report.DashboardStats, error) {
	var stats report.DashboardStats

	total, err := s.ReportRepository.CountEmployees(ctx)
	if err != nil {
		return stats, err
	}

	today := time.Now()
	present, err := s.punchRepo.CountDistinctEmployeesOn(ctx, today)
	if err != nil {
		return stats, err
	}

	from, to := monthRange(today.Year(), int(today.Month()))
	extra, delay, err := s.ReportRepository.MonthlyMinuteTotals(ctx, from, to)
	if err != nil {
		return stats, err
	}

	stats.Employees.Total = total
	stats.Employees.Present = present
	stats.Employees.Absent = total - present
	stats.Monthly.ExtraHours = workday.FormatMinutes(extra)
	stats.Monthly.DelayHours = workday.FormatMinutes(delay)
	stats.Monthly.BalanceHours = workday.FormatMinutes(extra - delay)

	return stats, nil
}
