package punch

import (
	"time"
)

// Punch is one observed clock action. Punches are append-only: they are
// created by file import and never mutated or deleted.
type Punch struct {
	ID         string
	EmployeeID string
	DateTime   time.Time
	IOMode     int
	Imported   bool
	CreatedAt  time.Time
}
