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

// closingService implements the ClosingSvcFacade interface
type closingService struct {
	BaseService
	closingRepo portsrepo.ClosingRepositoryFacade
}

// NewClosingService creates a new daily closing service
func NewClosingService(repo portsrepo.ClosingRepositoryFacade) portssvc.ClosingSvcFacade {
	return &closingService{
		closingRepo: repo,
	}
}

var _ portssvc.ClosingSvcFacade = (*closingService)(nil)

func (s *closingService) CreateClosing(ctx context.Context, req dto.CreateClosingRequest, userID string) (*domain.DailyClosing, error) {
	if !domain.ValidDate(req.Date) {
		err := apperrors.ErrValidation
		s.LogError(ctx, err, "Malformed closing date",
			slog.String("date", req.Date))
		return nil, fmt.Errorf("invalid closing date %q: %w", req.Date, err)
	}

	now := time.Now()
	closing := domain.DailyClosing{
		ClosingID:      uuid.NewString(),
		Date:           req.Date,
		CashActual:     req.CashActual,
		CardActual:     req.CardActual,
		TotalActual:    req.TotalActual,
		CashSystem:     req.CashSystem,
		CardSystem:     req.CardSystem,
		TotalSystem:    req.TotalSystem,
		Variance:       domain.ClosingVariance(req.TotalActual, req.TotalSystem),
		GrossSales:     req.GrossSales,
		NetSales:       req.NetSales,
		VATAmount:      req.VATAmount,
		DiscountAmount: req.DiscountAmount,
		Tips:           req.Tips,
		Details:        req.Details,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.closingRepo.SaveClosing(ctx, closing); err != nil {
		s.LogError(ctx, err, "Failed to save daily closing",
			slog.String("closing_id", closing.ClosingID),
			slog.String("date", closing.Date))
		return nil, err
	}

	s.LogInfo(ctx, "Daily closing recorded",
		slog.String("closing_id", closing.ClosingID),
		slog.String("date", closing.Date),
		slog.String("variance", closing.Variance.String()))
	return &closing, nil
}

func (s *closingService) GetClosingByID(ctx context.Context, closingID string) (*domain.DailyClosing, error) {
	closing, err := s.closingRepo.FindClosingByID(ctx, closingID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find closing by ID",
				slog.String("closing_id", closingID))
		}
		return nil, err
	}
	return closing, nil
}

func (s *closingService) ListClosings(ctx context.Context, limit int, offset int) ([]domain.DailyClosing, error) {
	closings, err := s.closingRepo.ListClosings(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list closings",
			slog.Int("limit", limit),
			slog.Int("offset", offset))
		return nil, fmt.Errorf("failed to list closings: %w", err)
	}
	if closings == nil {
		return []domain.DailyClosing{}, nil
	}
	return closings, nil
}
