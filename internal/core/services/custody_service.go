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
	"github.com/shopspring/decimal"
)

// custodyService implements the CustodySvcFacade interface
type custodyService struct {
	BaseService
	custodyRepo  portsrepo.CustodyRepositoryFacade
	employeeRepo portsrepo.EmployeeReader
}

// NewCustodyService creates a new custody service
func NewCustodyService(repo portsrepo.CustodyRepositoryFacade, employeeRepo portsrepo.EmployeeReader) portssvc.CustodySvcFacade {
	return &custodyService{
		custodyRepo:  repo,
		employeeRepo: employeeRepo,
	}
}

var _ portssvc.CustodySvcFacade = (*custodyService)(nil)

func (s *custodyService) OpenCustody(ctx context.Context, req dto.OpenCustodyRequest, userID string) (*domain.Custody, error) {
	if !req.Amount.IsPositive() {
		err := apperrors.ErrValidation
		s.LogError(ctx, err, "Custody amount must be positive",
			slog.String("amount", req.Amount.String()))
		return nil, fmt.Errorf("custody amount must be positive: %w", err)
	}

	// The advance must reference a real employee
	if _, err := s.employeeRepo.FindEmployeeByID(ctx, req.EmployeeID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find employee for custody",
				slog.String("employee_id", req.EmployeeID))
		}
		return nil, fmt.Errorf("invalid employee: %w", err)
	}

	now := time.Now()
	dateGiven := req.DateGiven
	if dateGiven == "" {
		dateGiven = now.Format(domain.DateLayout)
	} else if !domain.ValidDate(dateGiven) {
		err := apperrors.ErrValidation
		s.LogError(ctx, err, "Malformed custody date",
			slog.String("date_given", dateGiven))
		return nil, fmt.Errorf("invalid date %q: %w", dateGiven, err)
	}

	custody := domain.Custody{
		CustodyID:    uuid.NewString(),
		EmployeeID:   req.EmployeeID,
		Amount:       req.Amount,
		DateGiven:    dateGiven,
		Status:       domain.CustodyActive,
		Expenses:     decimal.Zero,
		ReturnAmount: decimal.Zero,
		Notes:        req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.custodyRepo.SaveCustody(ctx, custody); err != nil {
		s.LogError(ctx, err, "Failed to save custody",
			slog.String("custody_id", custody.CustodyID),
			slog.String("employee_id", custody.EmployeeID))
		return nil, err
	}

	s.LogInfo(ctx, "Custody opened successfully",
		slog.String("custody_id", custody.CustodyID),
		slog.String("employee_id", custody.EmployeeID))
	return &custody, nil
}

// CloseCustody settles an active custody: returnAmount = amount - expenses.
// The computed return may be negative (expenses exceeded the advance); it is
// recorded as-is so the shortfall stays visible.
func (s *custodyService) CloseCustody(ctx context.Context, custodyID string, req dto.CloseCustodyRequest, userID string) (*domain.Custody, error) {
	if req.Expenses.IsNegative() {
		err := apperrors.ErrValidation
		s.LogError(ctx, err, "Custody expenses must not be negative",
			slog.String("expenses", req.Expenses.String()))
		return nil, fmt.Errorf("custody expenses must not be negative: %w", err)
	}

	custody, err := s.GetCustodyByID(ctx, custodyID)
	if err != nil {
		return nil, err
	}
	if custody.Status != domain.CustodyActive {
		err := apperrors.ErrConflict
		s.LogError(ctx, err, "Custody already closed",
			slog.String("custody_id", custodyID))
		return nil, fmt.Errorf("custody %s is already closed: %w", custodyID, err)
	}

	now := time.Now()
	custody.Status = domain.CustodyClosed
	custody.Expenses = req.Expenses
	custody.ReturnAmount = custody.Amount.Sub(req.Expenses)
	if req.Notes != nil {
		custody.Notes = *req.Notes
	}
	custody.LastUpdatedAt = now
	custody.LastUpdatedBy = userID

	// The repository guards the write on status still being active, so a
	// concurrent close loses with a conflict instead of overwriting.
	if err := s.custodyRepo.CloseCustody(ctx, *custody); err != nil {
		s.LogError(ctx, err, "Failed to close custody",
			slog.String("custody_id", custodyID))
		return nil, err
	}

	if custody.ReturnAmount.IsNegative() {
		s.LogInfo(ctx, "Custody closed with overspend",
			slog.String("custody_id", custodyID),
			slog.String("return_amount", custody.ReturnAmount.String()))
	} else {
		s.LogInfo(ctx, "Custody closed successfully",
			slog.String("custody_id", custodyID),
			slog.String("return_amount", custody.ReturnAmount.String()))
	}
	return custody, nil
}

func (s *custodyService) GetCustodyByID(ctx context.Context, custodyID string) (*domain.Custody, error) {
	custody, err := s.custodyRepo.FindCustodyByID(ctx, custodyID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find custody by ID",
				slog.String("custody_id", custodyID))
		}
		return nil, err
	}
	return custody, nil
}

func (s *custodyService) ListCustodies(ctx context.Context, employeeID string) ([]domain.Custody, error) {
	var (
		custodies []domain.Custody
		err       error
	)
	if employeeID != "" {
		custodies, err = s.custodyRepo.ListCustodiesByEmployee(ctx, employeeID)
	} else {
		custodies, err = s.custodyRepo.ListCustodies(ctx)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to list custodies",
			slog.String("employee_id", employeeID))
		return nil, fmt.Errorf("failed to list custodies: %w", err)
	}
	if custodies == nil {
		return []domain.Custody{}, nil
	}
	return custodies, nil
}

func (s *custodyService) ExposureForEmployee(ctx context.Context, employeeID string) (decimal.Decimal, error) {
	custodies, err := s.custodyRepo.ListCustodiesByEmployee(ctx, employeeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list custodies for exposure",
			slog.String("employee_id", employeeID))
		return decimal.Zero, err
	}
	return domain.TotalExposure(custodies), nil
}
