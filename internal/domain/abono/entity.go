package abono

import (
	"time"
)

// Abono categories.
const (
	TypeFullDay = "FULL_DAY"
	TypePartial = "PARTIAL"
)

// Abono is an approved exemption from the expected-minutes penalty for a
// single workday. At most one abono exists per workday.
type Abono struct {
	ID        string
	WorkdayID string
	Type      string
	Reason    string
	StartTime *string
	EndTime   *string
	Minutes   int
	// Document is the stored filename of the supporting document
	Document  *string
	CreatedAt time.Time
}
