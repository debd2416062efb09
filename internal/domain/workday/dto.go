package workday

import (
	"fmt"
	"time"

	"github.com/pontosweb/pontosweb-backend-go/internal/domain/abono"
	"github.com/pontosweb/pontosweb-backend-go/internal/pkg/validator"
)

// EditableFields are the shift time fields a manual edit may touch, in
// the order adjustments are recorded.
var EditableFields = []string{"entrada1", "saida1", "entrada2", "saida2"}

// EditRequest applies operator corrections to a workday's shift times.
// Updates holds only the fields present in the request; a nil value
// clears the field.
type EditRequest struct {
	Updates   map[string]*string
	Reason    *string
	CreatedBy *string
}

func (r *EditRequest) Validate() error {
	var errs validator.ValidationErrors

	for field, value := range r.Updates {
		if !isEditableField(field) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: "field is not an editable shift time",
			})
			continue
		}
		if value != nil && *value != "" && !validator.IsValidClockTime(*value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: "invalid time format, use HH:MM",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func isEditableField(field string) bool {
	for _, f := range EditableFields {
		if f == field {
			return true
		}
	}
	return false
}

type ReconcileRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *ReconcileRequest) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required, use YYYY-MM-DD",
		})
	}

	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required, use YYYY-MM-DD",
		})
	}

	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type WorkdayResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	Date            string  `json:"date"`
	Entrada1        *string `json:"entrada1"`
	Saida1          *string `json:"saida1"`
	Entrada2        *string `json:"entrada2"`
	Saida2          *string `json:"saida2"`
	WorkedMinutes   int     `json:"worked_minutes"`
	ExpectedMinutes int     `json:"expected_minutes"`
	ExtraMinutes    int     `json:"extra_minutes"`
	BalanceMinutes  int     `json:"balance_minutes"`
	TotalHours      string  `json:"total_hours"`
	Status          string  `json:"status"`
}

func ToResponse(wd Workday) WorkdayResponse {
	return WorkdayResponse{
		ID:              wd.ID,
		EmployeeID:      wd.EmployeeID,
		Date:            wd.Date.Format("2006-01-02"),
		Entrada1:        FormatClock(wd.Entrada1),
		Saida1:          FormatClock(wd.Saida1),
		Entrada2:        FormatClock(wd.Entrada2),
		Saida2:          FormatClock(wd.Saida2),
		WorkedMinutes:   wd.WorkedMinutes,
		ExpectedMinutes: wd.ExpectedMinutes,
		ExtraMinutes:    wd.ExtraMinutes,
		BalanceMinutes:  wd.BalanceMinutes,
		TotalHours:      FormatMinutes(wd.WorkedMinutes),
		Status:          wd.Status,
	}
}

type AdjustmentResponse struct {
	ID        string  `json:"id"`
	WorkdayID string  `json:"workday_id"`
	Field     string  `json:"field"`
	OldValue  *string `json:"old_value"`
	NewValue  *string `json:"new_value"`
	Reason    *string `json:"reason,omitempty"`
	CreatedBy *string `json:"created_by,omitempty"`
	CreatedAt string  `json:"created_at"`
}

func ToAdjustmentResponse(adj Adjustment) AdjustmentResponse {
	return AdjustmentResponse{
		ID:        adj.ID,
		WorkdayID: adj.WorkdayID,
		Field:     adj.Field,
		OldValue:  adj.OldValue,
		NewValue:  adj.NewValue,
		Reason:    adj.Reason,
		CreatedBy: adj.CreatedBy,
		CreatedAt: adj.CreatedAt.Format(time.RFC3339),
	}
}

type TimecardEmployee struct {
	ID           string `json:"id"`
	EnrollmentNo string `json:"enrollment_no"`
	Name         string `json:"name"`
}

type TimecardTotals struct {
	WorkedMinutes   int    `json:"worked_minutes"`
	ExpectedMinutes int    `json:"expected_minutes"`
	ExtraMinutes    int    `json:"extra_minutes"`
	DelayMinutes    int    `json:"delay_minutes"`
	BalanceMinutes  int    `json:"balance_minutes"`
	WorkedHours     string `json:"worked_hours"`
	ExpectedHours   string `json:"expected_hours"`
	BalanceHours    string `json:"balance_hours"`
}

type TimecardResponse struct {
	Employee TimecardEmployee  `json:"employee"`
	Month    string            `json:"month"`
	Workdays []WorkdayResponse `json:"workdays"`
	Totals   TimecardTotals    `json:"totals"`
	Abonos   abono.MonthStats  `json:"abonos"`
}

// FormatClock renders a timestamp as an HH:MM wall-clock string in
// local time, regardless of the zone the driver scanned it in.
func FormatClock(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Local().Format("15:04")
	return &s
}

// FormatMinutes renders a signed minute total as H:MM.
func FormatMinutes(minutes int) string {
	sign := ""
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("%s%d:%02d", sign, minutes/60, minutes%60)
}
