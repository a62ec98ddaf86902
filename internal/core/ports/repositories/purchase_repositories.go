package repositories

import (
	"context"

	"github.com/muhasibpro/muhasib_app/internal/core/domain"
)

// PurchaseReader defines read operations for purchase invoices
type PurchaseReader interface {
	// FindPurchaseByID retrieves a purchase with its line items.
	FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error)

	// ListPurchasesBySupplier retrieves a supplier's purchases, newest date
	// first, without line items.
	ListPurchasesBySupplier(ctx context.Context, supplierID string) ([]domain.Purchase, error)

	// ListPurchases retrieves a paginated list of purchases, newest date
	// first, without line items.
	ListPurchases(ctx context.Context, limit int, offset int) ([]domain.Purchase, error)

	// ListAllPurchases retrieves every purchase; used by the dashboard
	// roll-up.
	ListAllPurchases(ctx context.Context) ([]domain.Purchase, error)
}

// PurchaseWriter defines write operations for purchase invoices. A purchase
// owns its line items: SavePurchase persists both atomically in one
// transaction, DeletePurchase removes both.
type PurchaseWriter interface {
	SavePurchase(ctx context.Context, purchase domain.Purchase) error
	DeletePurchase(ctx context.Context, purchaseID string) error
}

// PurchaseRepositoryFacade combines reader and writer
type PurchaseRepositoryFacade interface {
	PurchaseReader
	PurchaseWriter
}
