package holiday

import (
	"context"
)

// HolidayService manages the holiday calendar.
type HolidayService interface {
	// List returns all holidays, or only the given year's when year is
	// not nil
	List(ctx context.Context, year *int) ([]HolidayResponse, error)
	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	Delete(ctx context.Context, id string) error
}
