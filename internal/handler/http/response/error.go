package response

import (
	"errors"
	"net/http"

	"github.com/pontosweb/pontosweb-backend-go/internal/domain/abono"
	"github.com/pontosweb/pontosweb-backend-go/internal/domain/employee"
	"github.com/pontosweb/pontosweb-backend-go/internal/domain/holiday"
	"github.com/pontosweb/pontosweb-backend-go/internal/domain/punch"
	"github.com/pontosweb/pontosweb-backend-go/internal/domain/workday"
	"github.com/pontosweb/pontosweb-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEnrollmentNoExists):
		Conflict(w, "Enrollment number already registered")

	// Punch domain errors
	case errors.Is(err, punch.ErrEmptyFile):
		BadRequest(w, "Punch file is empty", nil)

	// Workday domain errors
	case errors.Is(err, workday.ErrWorkdayNotFound):
		NotFound(w, "Workday not found")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "A holiday already exists on this date")

	// Abono domain errors
	case errors.Is(err, abono.ErrAbonoNotFound):
		NotFound(w, "Abono not found")
	case errors.Is(err, abono.ErrAbonoExists):
		Conflict(w, "An abono already exists for this workday")
	case errors.Is(err, abono.ErrDocumentNotFound):
		NotFound(w, "Abono document not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
