package holiday

import (
	"context"

	"github.com/pontosweb/pontosweb-backend-go/internal/domain/holiday"
	"github.com/pontosweb/pontosweb-backend-go/internal/pkg/validator"
)

type HolidayServiceImpl struct {
	holiday.HolidayRepository
}

func NewHolidayService(holidayRepo holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{
		HolidayRepository: holidayRepo,
	}
}

// List implements holiday.HolidayService.
func (s *HolidayServiceImpl) List(ctx context.Context, year *int) ([]holiday.HolidayResponse, error) {
	var (
		holidays []holiday.Holiday
		err      error
	)
	if year != nil {
		holidays, err = s.HolidayRepository.ListByYear(ctx, *year)
	} else {
		holidays, err = s.HolidayRepository.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	result := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		result = append(result, holiday.ToResponse(h))
	}
	return result, nil
}

// Create implements holiday.HolidayService.
func (s *HolidayServiceImpl) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	created, err := s.HolidayRepository.Create(ctx, holiday.Holiday{
		Date:        date,
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
	})
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	return holiday.ToResponse(created), nil
}

// Delete implements holiday.HolidayService.
func (s *HolidayServiceImpl) Delete(ctx context.Context, id string) error {
	return s.HolidayRepository.Delete(ctx, id)
}
