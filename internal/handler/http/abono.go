package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pontosweb/pontosweb-backend-go/internal/domain/abono"
	"github.com/pontosweb/pontosweb-backend-go/internal/handler/http/response"
)

type AbonoHandler interface {
	GetByWorkday(w http.ResponseWriter, r *http.Request)
	CreateAbono(w http.ResponseWriter, r *http.Request)
	DeleteAbono(w http.ResponseWriter, r *http.Request)
	UploadDocument(w http.ResponseWriter, r *http.Request)
	DownloadDocument(w http.ResponseWriter, r *http.Request)
}

type abonoHandlerImpl struct {
	abonoService abono.AbonoService
}

func NewAbonoHandler(abonoService abono.AbonoService) AbonoHandler {
	return &abonoHandlerImpl{
		abonoService: abonoService,
	}
}

// GetByWorkday implements AbonoHandler
func (h *abonoHandlerImpl) GetByWorkday(w http.ResponseWriter, r *http.Request) {
	workdayID := chi.URLParam(r, "workdayId")
	if workdayID == "" {
		response.BadRequest(w, "Workday ID is required", nil)
		return
	}

	result, err := h.abonoService.GetByWorkday(r.Context(), workdayID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateAbono implements AbonoHandler
func (h *abonoHandlerImpl) CreateAbono(w http.ResponseWriter, r *http.Request) {
	var req abono.CreateAbonoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.abonoService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Abono created", result)
}

// DeleteAbono implements AbonoHandler
func (h *abonoHandlerImpl) DeleteAbono(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Abono ID is required", nil)
		return
	}

	if err := h.abonoService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Abono deleted", nil)
}

// UploadDocument implements AbonoHandler
func (h *abonoHandlerImpl) UploadDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Abono ID is required", nil)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "File is required", nil)
		return
	}
	defer file.Close()

	stored, err := h.abonoService.UploadDocument(r.Context(), id, file, header.Filename)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Document uploaded", map[string]string{"document": stored})
}

// DownloadDocument implements AbonoHandler
func (h *abonoHandlerImpl) DownloadDocument(w http.ResponseWriter, r *http.Request) {
	workdayID := chi.URLParam(r, "workdayId")
	if workdayID == "" {
		response.BadRequest(w, "Workday ID is required", nil)
		return
	}

	reader, filename, err := h.abonoService.DownloadDocument(r.Context(), workdayID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := io.Copy(w, reader); err != nil {
		// Headers are already sent; nothing left to do but drop the
		// connection
		return
	}
}
