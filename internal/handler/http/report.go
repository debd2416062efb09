package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pontosweb/pontosweb-backend-go/internal/domain/report"
	"github.com/pontosweb/pontosweb-backend-go/internal/handler/http/response"
	"github.com/pontosweb/pontosweb-backend-go/internal/pkg/validator"
)

type ReportHandler interface {
	CompanyMonthly(w http.ResponseWriter, r *http.Request)
	CompanyMonthlyExcel(w http.ResponseWriter, r *http.Request)
	TimecardExcel(w http.ResponseWriter, r *http.Request)
	Dashboard(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// CompanyMonthly implements ReportHandler
func (h *reportHandlerImpl) CompanyMonthly(w http.ResponseWriter, r *http.Request) {
	year, month, ok := validator.IsValidMonth(chi.URLParam(r, "month"))
	if !ok {
		response.BadRequest(w, "Month (YYYY-MM) is required", nil)
		return
	}

	result, err := h.reportService.CompanyMonthly(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CompanyMonthlyExcel implements ReportHandler
func (h *reportHandlerImpl) CompanyMonthlyExcel(w http.ResponseWriter, r *http.Request) {
	year, month, ok := validator.IsValidMonth(chi.URLParam(r, "month"))
	if !ok {
		response.BadRequest(w, "Month (YYYY-MM) is required", nil)
		return
	}

	data, err := h.reportService.CompanyMonthlyExcel(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeWorkbook(w, data, fmt.Sprintf("relatorio-%04d-%02d.xlsx", year, month))
}

// TimecardExcel implements ReportHandler
func (h *reportHandlerImpl) TimecardExcel(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	year, month, ok := validator.IsValidMonth(chi.URLParam(r, "month"))
	if employeeID == "" || !ok {
		response.BadRequest(w, "Employee ID and month (YYYY-MM) are required", nil)
		return
	}

	data, err := h.reportService.TimecardExcel(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeWorkbook(w, data, fmt.Sprintf("cartao-ponto-%s-%04d-%02d.xlsx", employeeID, year, month))
}

// Dashboard implements ReportHandler
func (h *reportHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.Dashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func writeWorkbook(w http.ResponseWriter, data []byte, filename string) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(data)
}
