package employee

import (
	"time"

	"github.com/pontosweb/pontosweb-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EnrollmentNo string `json:"enrollment_no"`
	Name         string `json:"name"`
	Mode         *int   `json:"mode,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EnrollmentNo) {
		errs = append(errs, validator.ValidationError{
			Field:   "enrollment_no",
			Message: "enrollment_no is required",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateScheduleRequest struct {
	WorkStart1 *string `json:"work_start_1"`
	WorkEnd1   *string `json:"work_end_1"`
	WorkStart2 *string `json:"work_start_2"`
	WorkEnd2   *string `json:"work_end_2"`
}

func (r *UpdateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	check := func(field string, value *string) {
		if value != nil && *value != "" && !validator.IsValidClockTime(*value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: "invalid time format, use HH:MM",
			})
		}
	}

	check("work_start_1", r.WorkStart1)
	check("work_end_1", r.WorkEnd1)
	check("work_start_2", r.WorkStart2)
	check("work_end_2", r.WorkEnd2)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID           string     `json:"id"`
	EnrollmentNo string     `json:"enrollment_no"`
	Name         string     `json:"name"`
	Mode         *int       `json:"mode,omitempty"`
	WorkStart1   *string    `json:"work_start_1,omitempty"`
	WorkEnd1     *string    `json:"work_end_1,omitempty"`
	WorkStart2   *string    `json:"work_start_2,omitempty"`
	WorkEnd2     *string    `json:"work_end_2,omitempty"`
	PunchCount   int        `json:"punch_count"`
	WorkdayCount int        `json:"workday_count"`
	LastPunch    *time.Time `json:"last_punch,omitempty"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		EnrollmentNo: e.EnrollmentNo,
		Name:         e.Name,
		Mode:         e.Mode,
		WorkStart1:   e.WorkStart1,
		WorkEnd1:     e.WorkEnd1,
		WorkStart2:   e.WorkStart2,
		WorkEnd2:     e.WorkEnd2,
		PunchCount:   e.PunchCount,
		WorkdayCount: e.WorkdayCount,
		LastPunch:    e.LastPunch,
	}
}
