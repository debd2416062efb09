package punch

import (
	"context"
	"strings"
	"time"

	"github.com/pontosweb/pontosweb-backend-go/internal/domain/employee"
	"github.com/pontosweb/pontosweb-backend-go/internal/domain/punch"
)

type PunchServiceImpl struct {
	punch.PunchRepository
	employee.EmployeeRepository
}

func NewPunchService(
	punchRepo punch.PunchRepository,
	employeeRepo employee.EmployeeRepository,
) punch.PunchService {
	return &PunchServiceImpl{
		PunchRepository:    punchRepo,
		EmployeeRepository: employeeRepo,
	}
}

// Import implements punch.PunchService.
//
// Employees are created on first sight of their enrollment number, so a
// punch file is the system's primary onboarding path. Duplicate punches
// are skipped, which makes re-importing the same file safe. One bad
// record never aborts the batch.
func (s *PunchServiceImpl) Import(ctx context.Context, content string) (punch.ImportResult, error) {
	if strings.TrimSpace(content) == "" {
		return punch.ImportResult{}, punch.ErrEmptyFile
	}

	parsed := ParsePunchFile(content)

	result := punch.ImportResult{
		Total: len(parsed.Records) + len(parsed.Errors),
	}
	for _, pe := range parsed.Errors {
		result.Errors = append(result.Errors, punch.ImportIssue{
			Line:    pe.Line,
			Error:   pe.Error,
			Content: pe.Content,
		})
	}

	employees := make(map[string]*employee.Employee)
	affected := make(map[string]bool)
	var minDate, maxDate *time.Time

	for _, rec := range parsed.Records {
		emp, err := s.resolveEmployee(ctx, employees, rec)
		if err != nil {
			result.Errors = append(result.Errors, punch.ImportIssue{
				Record: rec.EnrollmentNo,
				Error:  err.Error(),
			})
			continue
		}

		exists, err := s.PunchRepository.ExistsAt(ctx, emp.ID, rec.DateTime)
		if err != nil {
			result.Errors = append(result.Errors, punch.ImportIssue{
				Record: rec.EnrollmentNo,
				Error:  err.Error(),
			})
			continue
		}
		if !exists {
			_, err = s.PunchRepository.Create(ctx, punch.Punch{
				EmployeeID: emp.ID,
				DateTime:   rec.DateTime,
				IOMode:     rec.IOMode,
				Imported:   true,
			})
			if err != nil {
				result.Errors = append(result.Errors, punch.ImportIssue{
					Record: rec.EnrollmentNo,
					Error:  err.Error(),
				})
				continue
			}
		}

		result.Processed++
		affected[emp.ID] = true

		day := rec.DateTime
		if minDate == nil || day.Before(*minDate) {
			d := day
			minDate = &d
		}
		if maxDate == nil || day.After(*maxDate) {
			d := day
			maxDate = &d
		}
	}

	for id := range affected {
		result.Meta.AffectedEmployeeIDs = append(result.Meta.AffectedEmployeeIDs, id)
	}
	result.Meta.MinDate = minDate
	result.Meta.MaxDate = maxDate

	return result, nil
}

// resolveEmployee finds or creates the employee behind a record and
// keeps the stored hardware mode tag in sync with the file.
func (s *PunchServiceImpl) resolveEmployee(ctx context.Context, cache map[string]*employee.Employee, rec punch.Record) (*employee.Employee, error) {
	if emp, ok := cache[rec.EnrollmentNo]; ok {
		return emp, nil
	}

	emp, err := s.EmployeeRepository.GetByEnrollmentNo(ctx, rec.EnrollmentNo)
	if err != nil {
		return nil, err
	}

	if emp == nil {
		created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
			EnrollmentNo: rec.EnrollmentNo,
			Name:         rec.Name,
			Mode:         rec.Mode,
		})
		if err != nil {
			return nil, err
		}
		emp = &created
	} else if rec.Mode != nil && !modeEqual(emp.Mode, rec.Mode) {
		if err := s.EmployeeRepository.UpdateMode(ctx, emp.ID, rec.Mode); err != nil {
			return nil, err
		}
		emp.Mode = rec.Mode
	}

	cache[rec.EnrollmentNo] = emp
	return emp, nil
}

func modeEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
