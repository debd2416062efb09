package employee

import (
	"context"
)

// EmployeeService manages employee profiles and shift templates.
type EmployeeService interface {
	List(ctx context.Context) ([]EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	UpdateSchedule(ctx context.Context, id string, req UpdateScheduleRequest) (EmployeeResponse, error)
}
