package workday

import (
	"context"
	"time"
)

// WorkdayService derives, recalculates and corrects workday records.
type WorkdayService interface {
	// Reconcile derives workday records for the employee over
	// [start, end] inclusive, merging with previously edited records
	Reconcile(ctx context.Context, employeeID string, start, end time.Time) ([]Workday, error)

	// ApplyEdit applies operator corrections to a workday's shift
	// times, recording one audit entry per changed field
	ApplyEdit(ctx context.Context, workdayID string, req EditRequest) (WorkdayResponse, error)

	// History returns the adjustment audit trail, most recent first
	History(ctx context.Context, workdayID string) ([]AdjustmentResponse, error)

	// MonthlyTimecard returns the employee's timecard for one month
	MonthlyTimecard(ctx context.Context, employeeID string, year, month int) (TimecardResponse, error)
}
