package workday

import (
	"time"
)

// Workday status values.
const (
	// StatusOK means the day satisfies its expected shift pattern.
	StatusOK = "OK"
	// StatusIncomplete means one or more expected shift punches are missing.
	StatusIncomplete = "INCOMPLETE"
	// StatusEdited means shift times were manually corrected; they are
	// authoritative and protected from automatic overwrite.
	StatusEdited = "EDITED"
)

// Workday is the reconciled daily attendance record for one employee on
// one calendar date. Exactly one record exists per (employee, date).
type Workday struct {
	ID         string
	EmployeeID string
	// Date is the calendar date, normalized to midnight UTC
	Date            time.Time
	Entrada1        *time.Time
	Saida1          *time.Time
	Entrada2        *time.Time
	Saida2          *time.Time
	WorkedMinutes   int
	ExpectedMinutes int
	ExtraMinutes    int
	BalanceMinutes  int
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Adjustment is an immutable audit entry for one manually-changed field
// on a workday. Adjustments are append-only.
type Adjustment struct {
	ID        string
	WorkdayID string
	Field     string
	OldValue  *string
	NewValue  *string
	Reason    *string
	CreatedBy *string
	CreatedAt time.Time
}
