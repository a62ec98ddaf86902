package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/muhasibpro/muhasib_app/internal/core/domain"
	portsrepo "github.com/muhasibpro/muhasib_app/internal/core/ports/repositories"
	portssvc "github.com/muhasibpro/muhasib_app/internal/core/ports/services"
)

// dashboardService implements the DashboardSvcFacade interface
type dashboardService struct {
	BaseService
	closingRepo  portsrepo.ClosingReader
	purchaseRepo portsrepo.PurchaseReader
	productRepo  portsrepo.ProductReader
}

// NewDashboardService creates a new dashboard aggregation service
func NewDashboardService(closingRepo portsrepo.ClosingReader, purchaseRepo portsrepo.PurchaseReader, productRepo portsrepo.ProductReader) portssvc.DashboardSvcFacade {
	return &dashboardService{
		closingRepo:  closingRepo,
		purchaseRepo: purchaseRepo,
		productRepo:  productRepo,
	}
}

var _ portssvc.DashboardSvcFacade = (*dashboardService)(nil)

// Summarize folds closings and purchases inside the window into totals and a
// per-day chart. The low-stock count reads the present product snapshot and
// ignores the window. A failed fetch degrades that entity to an empty
// collection so the remaining panels still render.
func (s *dashboardService) Summarize(ctx context.Context, window domain.DateRange) (*domain.DashboardSummary, error) {
	closings, err := s.closingRepo.ListAllClosings(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list closings for dashboard")
		closings = nil
	}
	purchases, err := s.purchaseRepo.ListAllPurchases(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list purchases for dashboard")
		purchases = nil
	}
	products, err := s.productRepo.ListAllProducts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products for dashboard")
		products = nil
	}

	summary := domain.BuildDashboardSummary(window, time.Now(), closings, purchases, products)
	s.LogDebug(ctx, "Dashboard summary built",
		slog.String("range", summary.Range),
		slog.Int("chart_points", len(summary.Chart)),
		slog.Int("low_stock", summary.LowStockCount))
	return &summary, nil
}
