package employee

import (
	"context"
)

// EmployeeRepository defines data access methods for employee profiles.
type EmployeeRepository interface {
	// Create creates a new employee; enrollment number must be unique
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves an employee by internal id
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByEnrollmentNo retrieves an employee by badge number.
	// Returns nil when no employee matches.
	GetByEnrollmentNo(ctx context.Context, enrollmentNo string) (*Employee, error)

	// List retrieves all employees ordered by name, with punch/workday
	// counts and last punch timestamp attached
	List(ctx context.Context) ([]Employee, error)

	// UpdateMode updates the stored hardware mode tag
	UpdateMode(ctx context.Context, id string, mode *int) error

	// UpdateSchedule replaces the weekly shift template
	UpdateSchedule(ctx context.Context, id string, start1, end1, start2, end2 *string) (Employee, error)
}
