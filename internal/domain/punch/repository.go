package punch

import (
	"context"
	"time"
)

// PunchRepository defines data access methods for punch events.
type PunchRepository interface {
	// Create appends a new punch event
	Create(ctx context.Context, p Punch) (Punch, error)

	// ExistsAt reports whether a punch already exists for the employee
	// at the exact timestamp. Used for idempotent imports.
	ExistsAt(ctx context.Context, employeeID string, at time.Time) (bool, error)

	// ListByEmployeeBetween retrieves punches for an employee within
	// [from, to] ordered by timestamp ascending
	ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]Punch, error)

	// CountDistinctEmployeesOn counts employees with at least one punch
	// on the given calendar date
	CountDistinctEmployeesOn(ctx context.Context, date time.Time) (int, error)
}
