package holiday

import (
	"context"
	"time"
)

// HolidayRepository defines data access methods for the holiday calendar.
type HolidayRepository interface {
	// Create creates a new holiday; at most one per calendar date
	Create(ctx context.Context, h Holiday) (Holiday, error)

	// List retrieves all holidays ordered by date ascending
	List(ctx context.Context) ([]Holiday, error)

	// ListByYear retrieves holidays within a calendar year
	ListByYear(ctx context.Context, year int) ([]Holiday, error)

	// DatesBetween retrieves the holiday dates within [from, to]
	DatesBetween(ctx context.Context, from, to time.Time) ([]time.Time, error)

	// Delete removes a holiday
	Delete(ctx context.Context, id string) error
}
