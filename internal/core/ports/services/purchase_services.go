package services

import (
	"context"

	"github.com/muhasibpro/muhasib_app/internal/core/domain"
	"github.com/muhasibpro/muhasib_app/internal/dto"
)

// PurchaseReaderSvc defines read operations on supplier invoices
type PurchaseReaderSvc interface {
	// GetPurchaseByID returns the invoice with its line items.
	GetPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error)

	// ListPurchases returns invoices, or only one supplier's when supplierID
	// is non-empty.
	ListPurchases(ctx context.Context, supplierID string, limit int, offset int) ([]domain.Purchase, error)
}

// PurchaseWriterSvc defines write operations on supplier invoices
type PurchaseWriterSvc interface {
	// CreatePurchase saves the invoice and its line items atomically. Line
	// totals are recomputed from quantity and unit price.
	CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest, userID string) (*domain.Purchase, error)

	DeletePurchase(ctx context.Context, purchaseID string, userID string) error
}

// PurchaseSvcFacade combines all purchase-related service interfaces
type PurchaseSvcFacade interface {
	PurchaseReaderSvc
	PurchaseWriterSvc
}
