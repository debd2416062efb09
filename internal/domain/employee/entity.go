package employee

import (
	"time"
)

type Employee struct {
	ID           string
	EnrollmentNo string
	Name         string
	// Mode is the hardware punch mode tag, stored as-is
	Mode       *int
	WorkStart1 *string
	WorkEnd1   *string
	WorkStart2 *string
	WorkEnd2   *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	PunchCount   int
	WorkdayCount int
	LastPunch    *time.Time
}

// WorkSchedule is the weekly shift template snapshot used during
// reconciliation. Empty strings mean the slot is not configured.
type WorkSchedule struct {
	Start1 string
	End1   string
	Start2 string
	End2   string
}

// Schedule returns the employee's current shift template snapshot.
func (e Employee) Schedule() WorkSchedule {
	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}
	return WorkSchedule{
		Start1: deref(e.WorkStart1),
		End1:   deref(e.WorkEnd1),
		Start2: deref(e.WorkStart2),
		End2:   deref(e.WorkEnd2),
	}
}
