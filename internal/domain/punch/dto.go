package punch

import (
	"time"
)

// Record is one parsed line of a punch-clock export file.
type Record struct {
	EnrollmentNo string
	Name         string
	Mode         *int
	IOMode       int
	DateTime     time.Time
}

// ParseError describes a single rejected line. Parsing never aborts the
// batch, so a file can yield both records and errors.
type ParseError struct {
	Line    int    `json:"line"`
	Error   string `json:"error"`
	Content string `json:"content"`
}

// ParseResult is the outcome of parsing a punch export file.
type ParseResult struct {
	Records []Record
	Errors  []ParseError
}

// ImportIssue is one per-line or per-record failure during import.
type ImportIssue struct {
	Line    int    `json:"line,omitempty"`
	Record  string `json:"record,omitempty"`
	Error   string `json:"error"`
	Content string `json:"content,omitempty"`
}

// ImportMeta scopes the reconciliation that follows an import.
type ImportMeta struct {
	AffectedEmployeeIDs []string   `json:"affected_employees"`
	MinDate             *time.Time `json:"min_date,omitempty"`
	MaxDate             *time.Time `json:"max_date,omitempty"`
}

// ImportResult summarizes a punch file import.
type ImportResult struct {
	Processed int           `json:"processed"`
	Total     int           `json:"total"`
	Errors    []ImportIssue `json:"errors"`
	Meta      ImportMeta    `json:"meta"`
}
