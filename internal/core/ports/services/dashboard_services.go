package services

import (
	"context"

	"github.com/muhasibpro/muhasib_app/internal/core/domain"
)

// DashboardSvcFacade produces the time-windowed roll-up over closings,
// purchases, and the stock snapshot.
type DashboardSvcFacade interface {
	// Summarize aggregates all records falling inside the range. The
	// low-stock count is a present-state snapshot and ignores the range.
	Summarize(ctx context.Context, window domain.DateRange) (*domain.DashboardSummary, error)
}
