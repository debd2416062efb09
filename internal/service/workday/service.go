package workday

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pontosweb/pontosweb-backend-go/internal/domain/abono"
	"github.com/pontosweb/pontosweb-backend-go/internal/domain/employee"
	"github.com/pontosweb/pontosweb-backend-go/internal/domain/holiday"
	"github.com/pontosweb/pontosweb-backend-go/internal/domain/punch"
	"github.com/pontosweb/pontosweb-backend-go/internal/domain/workday"
	"github.com/pontosweb/pontosweb-backend-go/internal/pkg/database"
	"github.com/pontosweb/pontosweb-backend-go/internal/repository/postgresql"
)

type WorkdayServiceImpl struct {
	db *database.DB
	workday.WorkdayRepository
	punch.PunchRepository
	employee.EmployeeRepository
	holiday.HolidayRepository
	abono.AbonoRepository
	dedupWindow time.Duration
}

func NewWorkdayService(
	db *database.DB,
	workdayRepo workday.WorkdayRepository,
	punchRepo punch.PunchRepository,
	employeeRepo employee.EmployeeRepository,
	holidayRepo holiday.HolidayRepository,
	abonoRepo abono.AbonoRepository,
	dedupWindow time.Duration,
) workday.WorkdayService {
	if dedupWindow <= 0 {
		dedupWindow = DefaultDedupWindow
	}
	return &WorkdayServiceImpl{
		db:                 db,
		WorkdayRepository:  workdayRepo,
		PunchRepository:    punchRepo,
		EmployeeRepository: employeeRepo,
		HolidayRepository:  holidayRepo,
		AbonoRepository:    abonoRepo,
		dedupWindow:        dedupWindow,
	}
}

// dateOnly normalizes a timestamp to its calendar date at midnight UTC.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Reconcile implements workday.WorkdayService.
//
// Dates are processed strictly in calendar order. Each day's
// read-merge-write runs in its own transaction so a concurrent manual
// edit cannot be half-overwritten; a single failing day is logged and
// skipped without aborting the range.
func (s *WorkdayServiceImpl) Reconcile(ctx context.Context, employeeID string, start, end time.Time) ([]workday.Workday, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	// Schedule snapshot: fetched once per call so a concurrent schedule
	// change cannot split one run in two
	sched := emp.Schedule()

	start = dateOnly(start)
	end = dateOnly(end)

	// One-day buffer on each side absorbs shifts that start before
	// midnight but belong to an adjacent day
	loadFrom := time.Date(start.Year(), start.Month(), start.Day()-1, 0, 0, 0, 0, time.Local)
	loadTo := time.Date(end.Year(), end.Month(), end.Day()+1, 23, 59, 59, 0, time.Local)

	punches, err := s.PunchRepository.ListByEmployeeBetween(ctx, emp.ID, loadFrom, loadTo)
	if err != nil {
		return nil, fmt.Errorf("failed to load punches: %w", err)
	}

	// Group by the timestamp's own local calendar date
	punchesByDate := make(map[string][]time.Time)
	for _, p := range punches {
		key := p.DateTime.Local().Format("2006-01-02")
		punchesByDate[key] = append(punchesByDate[key], p.DateTime.Local())
	}

	holidayDates, err := s.HolidayRepository.DatesBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load holidays: %w", err)
	}
	holidays := make(map[string]bool, len(holidayDates))
	for _, d := range holidayDates {
		holidays[d.Format("2006-01-02")] = true
	}

	var results []workday.Workday
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		key := date.Format("2006-01-02")

		var result workday.Workday
		err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
			txCtx := context.WithValue(ctx, "tx", tx)

			existing, err := s.WorkdayRepository.GetByEmployeeAndDate(txCtx, emp.ID, date)
			if err != nil {
				return err
			}

			wd := buildWorkday(emp.ID, date, punchesByDate[key], sched, holidays[key], existing, s.dedupWindow)

			if existing != nil && existing.Status == workday.StatusEdited {
				// Operator-entered times stay authoritative; only the
				// schedule-derived fields follow the current config
				if err := s.WorkdayRepository.UpdateDerived(txCtx, wd.ID, wd.ExpectedMinutes, wd.BalanceMinutes, wd.ExtraMinutes); err != nil {
					return err
				}
				result = wd
				return nil
			}

			result, err = s.WorkdayRepository.Upsert(txCtx, wd)
			return err
		})
		if err != nil {
			slog.Error("failed to reconcile workday",
				"employee_id", emp.ID,
				"date", key,
				"error", err,
			)
			continue
		}

		results = append(results, result)
	}

	return results, nil
}

// ApplyEdit implements workday.WorkdayService.
func (s *WorkdayServiceImpl) ApplyEdit(ctx context.Context, workdayID string, req workday.EditRequest) (workday.WorkdayResponse, error) {
	if err := req.Validate(); err != nil {
		return workday.WorkdayResponse{}, err
	}

	wd, err := s.WorkdayRepository.GetByID(ctx, workdayID)
	if err != nil {
		return workday.WorkdayResponse{}, err
	}

	var adjustments []workday.Adjustment
	for _, field := range workday.EditableFields {
		newValue, present := req.Updates[field]
		if !present {
			continue
		}
		if newValue != nil && *newValue == "" {
			newValue = nil
		}

		target := fieldRef(&wd, field)
		oldValue := workday.FormatClock(*target)

		if clockEqual(oldValue, newValue) {
			continue
		}

		adjustments = append(adjustments, workday.Adjustment{
			WorkdayID: wd.ID,
			Field:     field,
			OldValue:  oldValue,
			NewValue:  newValue,
			Reason:    req.Reason,
			CreatedBy: req.CreatedBy,
		})

		*target = clockOnDate(newValue, wd.Date)
	}

	wd.WorkedMinutes = totalClockMinutes(
		workday.FormatClock(wd.Entrada1),
		workday.FormatClock(wd.Saida1),
		workday.FormatClock(wd.Entrada2),
		workday.FormatClock(wd.Saida2),
	)
	wd.BalanceMinutes = wd.WorkedMinutes - wd.ExpectedMinutes
	wd.ExtraMinutes = positivePart(wd.BalanceMinutes)
	// An edit always marks the day as manually corrected, even when no
	// value actually changed
	wd.Status = workday.StatusEdited

	var updated workday.Workday
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		for _, adj := range adjustments {
			if _, err := s.WorkdayRepository.CreateAdjustment(txCtx, adj); err != nil {
				return err
			}
		}

		var err error
		updated, err = s.WorkdayRepository.Update(txCtx, wd)
		return err
	})
	if err != nil {
		return workday.WorkdayResponse{}, fmt.Errorf("failed to apply workday edit: %w", err)
	}

	return workday.ToResponse(updated), nil
}

// History implements workday.WorkdayService.
func (s *WorkdayServiceImpl) History(ctx context.Context, workdayID string) ([]workday.AdjustmentResponse, error) {
	if _, err := s.WorkdayRepository.GetByID(ctx, workdayID); err != nil {
		return nil, err
	}

	adjustments, err := s.WorkdayRepository.ListAdjustments(ctx, workdayID)
	if err != nil {
		return nil, err
	}

	result := make([]workday.AdjustmentResponse, 0, len(adjustments))
	for _, adj := range adjustments {
		result = append(result, workday.ToAdjustmentResponse(adj))
	}
	return result, nil
}

// MonthlyTimecard implements workday.WorkdayService.
func (s *WorkdayServiceImpl) MonthlyTimecard(ctx context.Context, employeeID string, year, month int) (workday.TimecardResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return workday.TimecardResponse{}, err
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	workdays, err := s.WorkdayRepository.ListByEmployeeBetween(ctx, emp.ID, from, to)
	if err != nil {
		return workday.TimecardResponse{}, err
	}

	var totals workday.TimecardTotals
	responses := make([]workday.WorkdayResponse, 0, len(workdays))
	for _, wd := range workdays {
		responses = append(responses, workday.ToResponse(wd))
		totals.WorkedMinutes += wd.WorkedMinutes
		totals.ExpectedMinutes += wd.ExpectedMinutes
		totals.ExtraMinutes += wd.ExtraMinutes
		if wd.BalanceMinutes < 0 {
			totals.DelayMinutes += -wd.BalanceMinutes
		}
		totals.BalanceMinutes += wd.BalanceMinutes
	}
	totals.WorkedHours = workday.FormatMinutes(totals.WorkedMinutes)
	totals.ExpectedHours = workday.FormatMinutes(totals.ExpectedMinutes)
	totals.BalanceHours = workday.FormatMinutes(totals.BalanceMinutes)

	abonoStats, err := s.AbonoRepository.StatsForEmployeeMonth(ctx, emp.ID, from, to)
	if err != nil {
		return workday.TimecardResponse{}, err
	}

	return workday.TimecardResponse{
		Employee: workday.TimecardEmployee{
			ID:           emp.ID,
			EnrollmentNo: emp.EnrollmentNo,
			Name:         emp.Name,
		},
		Month:    fmt.Sprintf("%04d-%02d", year, month),
		Workdays: responses,
		Totals:   totals,
		Abonos:   abonoStats,
	}, nil
}

// fieldRef maps an editable field name to the workday's time pointer.
func fieldRef(wd *workday.Workday, field string) **time.Time {
	switch field {
	case "entrada1":
		return &wd.Entrada1
	case "saida1":
		return &wd.Saida1
	case "entrada2":
		return &wd.Entrada2
	default:
		return &wd.Saida2
	}
}

// clockOnDate places an HH:MM string on the workday's calendar date in
// local wall-clock time. A nil value clears the field.
func clockOnDate(value *string, date time.Time) *time.Time {
	if value == nil {
		return nil
	}
	minutes, ok := parseClockMinutes(*value)
	if !ok {
		return nil
	}
	t := time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, time.Local)
	return &t
}

// clockEqual compares two formatted HH:MM values.
func clockEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
