package workday

import (
	"context"
	"time"
)

// WorkdayRepository defines data access methods for workday records and
// their adjustment audit trail.
type WorkdayRepository interface {
	// GetByID retrieves a workday by id
	GetByID(ctx context.Context, id string) (Workday, error)

	// GetByEmployeeAndDate retrieves the workday for an employee on a
	// calendar date. Returns nil when none exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Workday, error)

	// Upsert creates or fully overwrites the workday for
	// (employee, date) with all computed fields
	Upsert(ctx context.Context, wd Workday) (Workday, error)

	// UpdateDerived refreshes only the schedule-derived fields, leaving
	// shift times, worked minutes and status untouched. Used when
	// reconciling an EDITED record.
	UpdateDerived(ctx context.Context, id string, expected, balance, extra int) error

	// Update replaces shift times and recomputed totals after a manual
	// edit
	Update(ctx context.Context, wd Workday) (Workday, error)

	// ListByEmployeeBetween retrieves workdays within [from, to] ordered
	// by date ascending
	ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]Workday, error)

	// CreateAdjustment appends one audit entry
	CreateAdjustment(ctx context.Context, adj Adjustment) (Adjustment, error)

	// ListAdjustments retrieves audit entries for a workday, most recent
	// first
	ListAdjustments(ctx context.Context, workdayID string) ([]Adjustment, error)
}
