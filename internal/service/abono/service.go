package abono

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pontosweb/pontosweb-backend-go/internal/domain/abono"
	"github.com/pontosweb/pontosweb-backend-go/internal/domain/workday"
	"github.com/pontosweb/pontosweb-backend-go/internal/pkg/storage"
)

type AbonoServiceImpl struct {
	abono.AbonoRepository
	workday.WorkdayRepository
	storage storage.FileStorage
}

func NewAbonoService(
	abonoRepo abono.AbonoRepository,
	workdayRepo workday.WorkdayRepository,
	fileStorage storage.FileStorage,
) abono.AbonoService {
	return &AbonoServiceImpl{
		AbonoRepository:   abonoRepo,
		WorkdayRepository: workdayRepo,
		storage:           fileStorage,
	}
}

// GetByWorkday implements abono.AbonoService.
func (s *AbonoServiceImpl) GetByWorkday(ctx context.Context, workdayID string) (abono.AbonoResponse, error) {
	a, err := s.AbonoRepository.GetByWorkday(ctx, workdayID)
	if err != nil {
		return abono.AbonoResponse{}, err
	}
	if a == nil {
		return abono.AbonoResponse{}, abono.ErrAbonoNotFound
	}
	return abono.ToResponse(*a), nil
}

// Create implements abono.AbonoService.
func (s *AbonoServiceImpl) Create(ctx context.Context, req abono.CreateAbonoRequest) (abono.AbonoResponse, error) {
	if err := req.Validate(); err != nil {
		return abono.AbonoResponse{}, err
	}

	if _, err := s.WorkdayRepository.GetByID(ctx, req.WorkdayID); err != nil {
		return abono.AbonoResponse{}, err
	}

	created, err := s.AbonoRepository.Create(ctx, abono.Abono{
		WorkdayID: req.WorkdayID,
		Type:      req.Type,
		Reason:    req.Reason,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Minutes:   req.Minutes,
	})
	if err != nil {
		return abono.AbonoResponse{}, err
	}

	return abono.ToResponse(created), nil
}

// Delete implements abono.AbonoService.
func (s *AbonoServiceImpl) Delete(ctx context.Context, id string) error {
	a, err := s.AbonoRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.AbonoRepository.Delete(ctx, a.ID); err != nil {
		return err
	}

	// The record is gone; a leftover file is only noise
	if a.Document != nil {
		if err := s.storage.Delete(ctx, documentPath(a.ID, *a.Document)); err != nil {
			slog.Warn("failed to delete abono document", "abono_id", a.ID, "error", err)
		}
	}

	return nil
}

// UploadDocument implements abono.AbonoService.
func (s *AbonoServiceImpl) UploadDocument(ctx context.Context, id string, file multipart.File, filename string) (string, error) {
	a, err := s.AbonoRepository.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	// Random prefix keeps uploads from colliding and hides the original
	// name from the filesystem
	stored := uuid.New().String() + filepath.Ext(filename)

	if _, err := s.storage.Upload(ctx, file, documentPath(a.ID, stored)); err != nil {
		return "", fmt.Errorf("failed to store document: %w", err)
	}

	if err := s.AbonoRepository.UpdateDocument(ctx, a.ID, stored); err != nil {
		return "", err
	}

	if a.Document != nil && *a.Document != stored {
		if err := s.storage.Delete(ctx, documentPath(a.ID, *a.Document)); err != nil {
			slog.Warn("failed to delete replaced abono document", "abono_id", a.ID, "error", err)
		}
	}

	return stored, nil
}

// DownloadDocument implements abono.AbonoService.
func (s *AbonoServiceImpl) DownloadDocument(ctx context.Context, workdayID string) (io.ReadCloser, string, error) {
	a, err := s.AbonoRepository.GetByWorkday(ctx, workdayID)
	if err != nil {
		return nil, "", err
	}
	if a == nil {
		return nil, "", abono.ErrAbonoNotFound
	}
	if a.Document == nil {
		return nil, "", abono.ErrDocumentNotFound
	}

	reader, err := s.storage.Download(ctx, documentPath(a.ID, *a.Document))
	if err != nil {
		return nil, "", abono.ErrDocumentNotFound
	}

	return reader, *a.Document, nil
}

func documentPath(abonoID, filename string) string {
	return filepath.Join("abonos", abonoID, filename)
}
