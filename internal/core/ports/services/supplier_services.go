package services

import (
	"context"

	"github.com/muhasibpro/muhasib_app/internal/core/domain"
	"github.com/muhasibpro/muhasib_app/internal/dto"
)

// SupplierReaderSvc defines read operations on suppliers
type SupplierReaderSvc interface {
	GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error)

	// GetStatement builds the categorized purchase statement for one supplier.
	// The statement reports the stored balance as-is; it never recomputes it
	// from the purchase history.
	GetStatement(ctx context.Context, supplierID string) (*domain.SupplierStatement, error)
}

// SupplierWriterSvc defines write operations on suppliers
type SupplierWriterSvc interface {
	CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest, userID string) (*domain.Supplier, error)
	UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest, userID string) (*domain.Supplier, error)
	DeleteSupplier(ctx context.Context, supplierID string, userID string) error
}

// SupplierSvcFacade combines all supplier-related service interfaces
type SupplierSvcFacade interface {
	SupplierReaderSvc
	SupplierWriterSvc
}
