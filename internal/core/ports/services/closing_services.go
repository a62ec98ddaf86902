package services

import (
	"context"

	"github.com/muhasibpro/muhasib_app/internal/core/domain"
	"github.com/muhasibpro/muhasib_app/internal/dto"
)

// ClosingReaderSvc defines read operations on daily closings
type ClosingReaderSvc interface {
	GetClosingByID(ctx context.Context, closingID string) (*domain.DailyClosing, error)
	ListClosings(ctx context.Context, limit int, offset int) ([]domain.DailyClosing, error)
}

// ClosingWriterSvc records counted-versus-system reconciliations
type ClosingWriterSvc interface {
	// CreateClosing records one day's reconciliation. The variance is always
	// recomputed from the submitted totals; a client-supplied variance is
	// ignored.
	CreateClosing(ctx context.Context, req dto.CreateClosingRequest, userID string) (*domain.DailyClosing, error)
}

// ClosingSvcFacade combines all closing-related service interfaces
type ClosingSvcFacade interface {
	ClosingReaderSvc
	ClosingWriterSvc
}
