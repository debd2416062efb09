package abono

import (
	"github.com/pontosweb/pontosweb-backend-go/internal/pkg/validator"
)

type CreateAbonoRequest struct {
	WorkdayID string  `json:"workday_id"`
	Type      string  `json:"type"`
	Reason    string  `json:"reason"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
	Minutes   int     `json:"minutes"`
}

func (r *CreateAbonoRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkdayID) {
		errs = append(errs, validator.ValidationError{
			Field:   "workday_id",
			Message: "workday_id is required",
		})
	}

	if r.Type != TypeFullDay && r.Type != TypePartial {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be FULL_DAY or PARTIAL",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if r.Minutes <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "minutes",
			Message: "minutes must be greater than zero",
		})
	}

	check := func(field string, value *string) {
		if value != nil && *value != "" && !validator.IsValidClockTime(*value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: "invalid time format, use HH:MM",
			})
		}
	}
	check("start_time", r.StartTime)
	check("end_time", r.EndTime)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AbonoResponse struct {
	ID        string  `json:"id"`
	WorkdayID string  `json:"workday_id"`
	Type      string  `json:"type"`
	Reason    string  `json:"reason"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
	Minutes   int     `json:"minutes"`
	Document  *string `json:"document,omitempty"`
}

func ToResponse(a Abono) AbonoResponse {
	return AbonoResponse{
		ID:        a.ID,
		WorkdayID: a.WorkdayID,
		Type:      a.Type,
		Reason:    a.Reason,
		StartTime: a.StartTime,
		EndTime:   a.EndTime,
		Minutes:   a.Minutes,
		Document:  a.Document,
	}
}

// TypeStats aggregates abonos of one category.
type TypeStats struct {
	Count   int `json:"count"`
	Minutes int `json:"minutes"`
}

// MonthStats aggregates an employee's abonos for one month.
type MonthStats struct {
	Count   int                  `json:"count"`
	Minutes int                  `json:"minutes"`
	ByType  map[string]TypeStats `json:"by_type"`
}
