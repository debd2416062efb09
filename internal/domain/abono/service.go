package abono

import (
	"context"
	"io"
	"mime/multipart"
)

// AbonoService manages leave exceptions and their supporting documents.
type AbonoService interface {
	GetByWorkday(ctx context.Context, workdayID string) (AbonoResponse, error)
	Create(ctx context.Context, req CreateAbonoRequest) (AbonoResponse, error)

	// Delete removes the abono and its attached document, if any
	Delete(ctx context.Context, id string) error

	// UploadDocument stores a supporting document for the abono
	UploadDocument(ctx context.Context, id string, file multipart.File, filename string) (string, error)

	// DownloadDocument streams the workday's abono document
	DownloadDocument(ctx context.Context, workdayID string) (io.ReadCloser, string, error)
}
