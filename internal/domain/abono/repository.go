package abono

import (
	"context"
	"time"
)

// AbonoRepository defines data access methods for leave exceptions.
type AbonoRepository interface {
	// Create creates a new abono; at most one per workday
	Create(ctx context.Context, a Abono) (Abono, error)

	// GetByID retrieves an abono by id
	GetByID(ctx context.Context, id string) (Abono, error)

	// GetByWorkday retrieves the abono attached to a workday.
	// Returns nil when none exists.
	GetByWorkday(ctx context.Context, workdayID string) (*Abono, error)

	// UpdateDocument sets the stored document filename
	UpdateDocument(ctx context.Context, id string, document string) error

	// Delete removes an abono
	Delete(ctx context.Context, id string) error

	// StatsForEmployeeMonth aggregates abono count and minutes by type
	// over the employee's workdays within [from, to]
	StatsForEmployeeMonth(ctx context.Context, employeeID string, from, to time.Time) (MonthStats, error)
}
