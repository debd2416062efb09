package http

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pontosweb/pontosweb-backend-go/internal/domain/workday"
	"github.com/pontosweb/pontosweb-backend-go/internal/handler/http/response"
	"github.com/pontosweb/pontosweb-backend-go/internal/pkg/validator"
)

type WorkdayHandler interface {
	MonthlyTimecard(w http.ResponseWriter, r *http.Request)
	Reconcile(w http.ResponseWriter, r *http.Request)
	UpdateWorkday(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
}

type workdayHandlerImpl struct {
	workdayService workday.WorkdayService
}

func NewWorkdayHandler(workdayService workday.WorkdayService) WorkdayHandler {
	return &workdayHandlerImpl{
		workdayService: workdayService,
	}
}

// MonthlyTimecard implements WorkdayHandler
func (h *workdayHandlerImpl) MonthlyTimecard(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	year, month, ok := validator.IsValidMonth(chi.URLParam(r, "month"))
	if employeeID == "" || !ok {
		response.BadRequest(w, "Employee ID and month (YYYY-MM) are required", nil)
		return
	}

	result, err := h.workdayService.MonthlyTimecard(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Reconcile implements WorkdayHandler
func (h *workdayHandlerImpl) Reconcile(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	var req workday.ReconcileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	workdays, err := h.workdayService.Reconcile(r.Context(), employeeID, start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := make([]workday.WorkdayResponse, 0, len(workdays))
	for _, wd := range workdays {
		result = append(result, workday.ToResponse(wd))
	}

	response.SuccessWithMessage(w, "Workdays reconciled", result)
}

// UpdateWorkday implements WorkdayHandler.
//
// The request body distinguishes an absent field (left untouched) from
// an explicit null (cleared), so the raw JSON is inspected for key
// presence before building the edit.
func (h *workdayHandlerImpl) UpdateWorkday(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Workday ID is required", nil)
		return
	}

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	req := workday.EditRequest{
		Updates: make(map[string]*string),
	}

	for _, field := range workday.EditableFields {
		value, present := raw[field]
		if !present {
			continue
		}
		if bytes.Equal(value, []byte("null")) {
			req.Updates[field] = nil
			continue
		}
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			response.BadRequest(w, "Shift times must be HH:MM strings or null", nil)
			return
		}
		req.Updates[field] = &s
	}

	if value, ok := raw["reason"]; ok && !bytes.Equal(value, []byte("null")) {
		var s string
		if err := json.Unmarshal(value, &s); err == nil {
			req.Reason = &s
		}
	}
	if value, ok := raw["created_by"]; ok && !bytes.Equal(value, []byte("null")) {
		var s string
		if err := json.Unmarshal(value, &s); err == nil {
			req.CreatedBy = &s
		}
	}

	result, err := h.workdayService.ApplyEdit(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Workday updated", result)
}

// History implements WorkdayHandler
func (h *workdayHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Workday ID is required", nil)
		return
	}

	result, err := h.workdayService.History(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
