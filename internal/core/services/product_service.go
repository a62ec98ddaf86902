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

// productService implements the ProductSvcFacade interface
type productService struct {
	BaseService
	productRepo portsrepo.ProductRepositoryFacade
}

// NewProductService creates a new product service
func NewProductService(repo portsrepo.ProductRepositoryFacade) portssvc.ProductSvcFacade {
	return &productService{
		productRepo: repo,
	}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, userID string) (*domain.Product, error) {
	if req.Quantity < 0 {
		err := apperrors.ErrValidation
		s.LogError(ctx, err, "Product quantity must not be negative",
			slog.Int64("quantity", req.Quantity))
		return nil, fmt.Errorf("product quantity must not be negative: %w", err)
	}

	now := time.Now()
	product := domain.Product{
		ProductID: uuid.NewString(),
		Name:      req.Name,
		SKU:       req.SKU,
		Category:  req.Category,
		Quantity:  req.Quantity,
		Price:     req.Price,
		Cost:      req.Cost,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		s.LogError(ctx, err, "Failed to save product",
			slog.String("product_id", product.ProductID))
		return nil, err
	}

	s.LogInfo(ctx, "Product created successfully",
		slog.String("product_id", product.ProductID))
	return &product, nil
}

func (s *productService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find product by ID",
				slog.String("product_id", productID))
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) ListProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products",
			slog.Int("limit", limit),
			slog.Int("offset", offset))
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	if products == nil {
		return []domain.Product{}, nil
	}
	return products, nil
}

func (s *productService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, userID string) (*domain.Product, error) {
	product, err := s.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil {
		product.Name = *req.Name
		updated = true
	}
	if req.SKU != nil {
		product.SKU = *req.SKU
		updated = true
	}
	if req.Category != nil {
		product.Category = *req.Category
		updated = true
	}
	if req.Quantity != nil {
		if *req.Quantity < 0 {
			err := apperrors.ErrValidation
			s.LogError(ctx, err, "Product quantity must not be negative",
				slog.String("product_id", productID))
			return nil, fmt.Errorf("product quantity must not be negative: %w", err)
		}
		product.Quantity = *req.Quantity
		updated = true
	}
	if req.Price != nil {
		product.Price = *req.Price
		updated = true
	}
	if req.Cost != nil {
		product.Cost = *req.Cost
		updated = true
	}
	if !updated {
		s.LogDebug(ctx, "No fields provided for product update",
			slog.String("product_id", productID))
		return product, nil
	}

	now := time.Now()
	product.LastUpdatedAt = now
	product.LastUpdatedBy = userID

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		s.LogError(ctx, err, "Failed to update product",
			slog.String("product_id", productID))
		return nil, err
	}

	s.LogInfo(ctx, "Product updated successfully",
		slog.String("product_id", productID))
	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, productID string, userID string) error {
	if _, err := s.GetProductByID(ctx, productID); err != nil {
		return err
	}

	if err := s.productRepo.DeleteProduct(ctx, productID); err != nil {
		s.LogError(ctx, err, "Failed to delete product",
			slog.String("product_id", productID))
		return err
	}

	s.LogInfo(ctx, "Product deleted successfully",
		slog.String("product_id", productID),
		slog.String("deleted_by", userID))
	return nil
}
