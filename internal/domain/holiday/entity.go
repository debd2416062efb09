package holiday

import (
	"time"
)

// Holiday categories.
const (
	TypeNational     = "NATIONAL"
	TypeMunicipal    = "MUNICIPAL"
	TypeCompensatory = "COMPENSATORY"
)

// Holiday marks one calendar date as non-working. At most one holiday
// exists per date.
type Holiday struct {
	ID string
	// Date is normalized to midnight UTC, day granularity
	Date        time.Time
	Name        string
	Type        string
	Description *string
	CreatedAt   time.Time
}
