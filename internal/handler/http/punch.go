package http

import (
	"io"
	"net/http"

	"github.com/pontosweb/pontosweb-backend-go/internal/domain/punch"
	"github.com/pontosweb/pontosweb-backend-go/internal/domain/workday"
	"github.com/pontosweb/pontosweb-backend-go/internal/handler/http/response"
)

type PunchHandler interface {
	ImportFile(w http.ResponseWriter, r *http.Request)
}

type punchHandlerImpl struct {
	punchService   punch.PunchService
	workdayService workday.WorkdayService
}

func NewPunchHandler(punchService punch.PunchService, workdayService workday.WorkdayService) PunchHandler {
	return &punchHandlerImpl{
		punchService:   punchService,
		workdayService: workdayService,
	}
}

type importResponse struct {
	punch.ImportResult
	ReconciledWorkdays int `json:"reconciled_workdays"`
}

// ImportFile implements PunchHandler. Accepts the punch export as a
// multipart "file" field and reconciles every affected employee over
// the imported date range before responding.
func (h *punchHandlerImpl) ImportFile(w http.ResponseWriter, r *http.Request) {
	// Punch exports are small text files; 10MB is generous
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "File is required", nil)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		response.BadRequest(w, "Failed to read file", nil)
		return
	}

	result, err := h.punchService.Import(r.Context(), string(content))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := importResponse{ImportResult: result}

	if result.Meta.MinDate != nil && result.Meta.MaxDate != nil {
		for _, employeeID := range result.Meta.AffectedEmployeeIDs {
			workdays, err := h.workdayService.Reconcile(r.Context(), employeeID, *result.Meta.MinDate, *result.Meta.MaxDate)
			if err != nil {
				result.Errors = append(result.Errors, punch.ImportIssue{
					Record: employeeID,
					Error:  err.Error(),
				})
				continue
			}
			resp.ReconciledWorkdays += len(workdays)
		}
		resp.Errors = result.Errors
	}

	response.SuccessWithMessage(w, "Punch file imported", resp)
}
