package repositories

import (
	"context"

	"github.com/muhasibpro/muhasib_app/internal/core/domain"
)

// ProductReader defines read operations for inventory products
type ProductReader interface {
	// FindProductByID retrieves a specific product.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts retrieves a paginated list of products.
	ListProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error)

	// ListAllProducts retrieves the full inventory snapshot; used by the
	// dashboard low-stock count.
	ListAllProducts(ctx context.Context) ([]domain.Product, error)
}

// ProductWriter defines write operations for inventory products
type ProductWriter interface {
	SaveProduct(ctx context.Context, product domain.Product) error
	UpdateProduct(ctx context.Context, product domain.Product) error
	DeleteProduct(ctx context.Context, productID string) error
}

// ProductRepositoryFacade combines reader and writer
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}
