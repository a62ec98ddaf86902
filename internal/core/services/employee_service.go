package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/muhasibpro/muhasib_app/internal/apperrors"
	"github.com/muhasibpro/muhasib_app/internal/core/domain"
	portsrepo "github.com/muhasibpro/muhasib_app/internal/core/ports/repositories"
	portssvc "github.com/muhasibpro/muhasib_app/internal/core/ports/services"
	"github.com/muhasibpro/muhasib_app/internal/dto"
)

// employeeService implements the EmployeeSvcFacade interface
type employeeService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepositoryFacade
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(repo portsrepo.EmployeeRepositoryFacade) portssvc.EmployeeSvcFacade {
	return &employeeService{
		employeeRepo: repo,
	}
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

func (s *employeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, userID string) (*domain.Employee, error) {
	if req.BasicSalary.IsNegative() {
		err := apperrors.ErrValidation
		s.LogError(ctx, err, "Basic salary must not be negative",
			slog.String("basic_salary", req.BasicSalary.String()))
		return nil, fmt.Errorf("basic salary must not be negative: %w", err)
	}
	if req.JoinDate != "" && !domain.ValidDate(req.JoinDate) {
		err := apperrors.ErrValidation
		s.LogError(ctx, err, "Malformed join date",
			slog.String("join_date", req.JoinDate))
		return nil, fmt.Errorf("invalid join date %q: %w", req.JoinDate, err)
	}

	now := time.Now()
	employee := domain.Employee{
		EmployeeID:  uuid.NewString(),
		Code:        req.Code,
		Name:        req.Name,
		Role:        req.Role,
		Phone:       req.Phone,
		BasicSalary: req.BasicSalary,
		JoinDate:    req.JoinDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		s.LogError(ctx, err, "Failed to save employee",
			slog.String("employee_id", employee.EmployeeID))
		return nil, err
	}

	s.LogInfo(ctx, "Employee created successfully",
		slog.String("employee_id", employee.EmployeeID))
	return &employee, nil
}

func (s *employeeService) GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find employee by ID",
				slog.String("employee_id", employeeID))
		}
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) ListEmployees(ctx context.Context, limit int, offset int) ([]domain.Employee, error) {
	employees, err := s.employeeRepo.ListEmployees(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees",
			slog.Int("limit", limit),
			slog.Int("offset", offset))
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	if employees == nil {
		return []domain.Employee{}, nil
	}
	return employees, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest, userID string) (*domain.Employee, error) {
	employee, err := s.GetEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Code != nil {
		employee.Code = *req.Code
		updated = true
	}
	if req.Name != nil {
		employee.Name = *req.Name
		updated = true
	}
	if req.Role != nil {
		employee.Role = *req.Role
		updated = true
	}
	if req.Phone != nil {
		employee.Phone = *req.Phone
		updated = true
	}
	if req.BasicSalary != nil {
		if req.BasicSalary.IsNegative() {
			err := apperrors.ErrValidation
			s.LogError(ctx, err, "Basic salary must not be negative",
				slog.String("employee_id", employeeID))
			return nil, fmt.Errorf("basic salary must not be negative: %w", err)
		}
		employee.BasicSalary = *req.BasicSalary
		updated = true
	}
	if req.JoinDate != nil {
		if *req.JoinDate != "" && !domain.ValidDate(*req.JoinDate) {
			err := apperrors.ErrValidation
			s.LogError(ctx, err, "Malformed join date",
				slog.String("join_date", *req.JoinDate))
			return nil, fmt.Errorf("invalid join date %q: %w", *req.JoinDate, err)
		}
		employee.JoinDate = *req.JoinDate
		updated = true
	}
	if !updated {
		s.LogDebug(ctx, "No fields provided for employee update",
			slog.String("employee_id", employeeID))
		return employee, nil
	}

	now := time.Now()
	employee.LastUpdatedAt = now
	employee.LastUpdatedBy = userID

	if err := s.employeeRepo.UpdateEmployee(ctx, *employee); err != nil {
		s.LogError(ctx, err, "Failed to update employee",
			slog.String("employee_id", employeeID))
		return nil, err
	}

	s.LogInfo(ctx, "Employee updated successfully",
		slog.String("employee_id", employeeID))
	return employee, nil
}

func (s *employeeService) DeleteEmployee(ctx context.Context, employeeID string, userID string) error {
	// Verify existence first so a missing ID surfaces as not-found
	if _, err := s.GetEmployeeByID(ctx, employeeID); err != nil {
		return err
	}

	now := time.Now()
	if err := s.employeeRepo.DeleteEmployee(ctx, employeeID, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to delete employee",
			slog.String("employee_id", employeeID))
		return err
	}

	s.LogInfo(ctx, "Employee deleted successfully",
		slog.String("employee_id", employeeID))
	return nil
}
