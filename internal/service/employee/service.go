package employee

import (
	"context"
	"fmt"

	"github.com/pontosweb/pontosweb-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepo,
	}
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		result = append(result, employee.ToResponse(emp))
	}
	return result, nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		EnrollmentNo: req.EnrollmentNo,
		Name:         req.Name,
		Mode:         req.Mode,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

// UpdateSchedule implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateSchedule(ctx context.Context, id string, req employee.UpdateScheduleRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, id); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.EmployeeRepository.UpdateSchedule(ctx, id,
		normalizeClock(req.WorkStart1),
		normalizeClock(req.WorkEnd1),
		normalizeClock(req.WorkStart2),
		normalizeClock(req.WorkEnd2),
	)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update schedule: %w", err)
	}

	return employee.ToResponse(updated), nil
}

// normalizeClock treats an empty string as clearing the slot.
func normalizeClock(v *string) *string {
	if v != nil && *v == "" {
		return nil
	}
	return v
}
