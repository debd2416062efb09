package punch

import (
	"context"
)

// PunchService imports punch-clock export files.
type PunchService interface {
	// Import parses and ingests a punch export file. Per-line and
	// per-record failures are collected in the result, not returned
	// as an error.
	Import(ctx context.Context, content string) (ImportResult, error)
}
