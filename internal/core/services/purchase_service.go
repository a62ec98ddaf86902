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

// purchaseService implements the PurchaseSvcFacade interface
type purchaseService struct {
	BaseService
	purchaseRepo portsrepo.PurchaseRepositoryFacade
	supplierRepo portsrepo.SupplierReader
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(repo portsrepo.PurchaseRepositoryFacade, supplierRepo portsrepo.SupplierReader) portssvc.PurchaseSvcFacade {
	return &purchaseService{
		purchaseRepo: repo,
		supplierRepo: supplierRepo,
	}
}

var _ portssvc.PurchaseSvcFacade = (*purchaseService)(nil)

func (s *purchaseService) CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest, userID string) (*domain.Purchase, error) {
	if !req.Amount.IsPositive() {
		err := apperrors.ErrValidation
		s.LogError(ctx, err, "Purchase amount must be positive",
			slog.String("amount", req.Amount.String()))
		return nil, fmt.Errorf("purchase amount must be positive: %w", err)
	}
	if !domain.ValidPaymentMethod(req.PaymentMethod) {
		err := apperrors.ErrValidation
		s.LogError(ctx, err, "Unknown payment method",
			slog.String("payment_method", string(req.PaymentMethod)))
		return nil, fmt.Errorf("unknown payment method %q: %w", req.PaymentMethod, err)
	}
	if !domain.ValidDate(req.Date) {
		err := apperrors.ErrValidation
		s.LogError(ctx, err, "Malformed purchase date",
			slog.String("date", req.Date))
		return nil, fmt.Errorf("invalid purchase date %q: %w", req.Date, err)
	}

	if _, err := s.supplierRepo.FindSupplierByID(ctx, req.SupplierID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find supplier for purchase",
				slog.String("supplier_id", req.SupplierID))
		}
		return nil, fmt.Errorf("invalid supplier: %w", err)
	}

	now := time.Now()
	purchaseID := uuid.NewString()
	items := make([]domain.PurchaseItem, 0, len(req.Items))
	for _, it := range req.Items {
		if it.Quantity.IsNegative() || it.UnitPrice.IsNegative() {
			err := apperrors.ErrValidation
			s.LogError(ctx, err, "Invoice line must not be negative",
				slog.String("description", it.Description))
			return nil, fmt.Errorf("invoice line %q must not be negative: %w", it.Description, err)
		}
		items = append(items, domain.PurchaseItem{
			ItemID:      uuid.NewString(),
			PurchaseID:  purchaseID,
			Code:        it.Code,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			LineTotal:   it.Quantity.Mul(it.UnitPrice),
		})
	}

	purchase := domain.Purchase{
		PurchaseID:    purchaseID,
		SupplierID:    req.SupplierID,
		InvoiceNumber: req.InvoiceNumber,
		Date:          req.Date,
		Amount:        req.Amount,
		Currency:      req.Currency,
		TaxNumber:     req.TaxNumber,
		Description:   req.Description,
		PaymentMethod: req.PaymentMethod,
		Items:         items,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.purchaseRepo.SavePurchase(ctx, purchase); err != nil {
		s.LogError(ctx, err, "Failed to save purchase",
			slog.String("purchase_id", purchaseID),
			slog.String("supplier_id", purchase.SupplierID))
		return nil, err
	}

	s.LogInfo(ctx, "Purchase recorded",
		slog.String("purchase_id", purchaseID),
		slog.String("supplier_id", purchase.SupplierID),
		slog.Int("items", len(items)))
	return &purchase, nil
}

func (s *purchaseService) GetPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	purchase, err := s.purchaseRepo.FindPurchaseByID(ctx, purchaseID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find purchase by ID",
				slog.String("purchase_id", purchaseID))
		}
		return nil, err
	}
	return purchase, nil
}

func (s *purchaseService) ListPurchases(ctx context.Context, supplierID string, limit int, offset int) ([]domain.Purchase, error) {
	var (
		purchases []domain.Purchase
		err       error
	)
	if supplierID != "" {
		purchases, err = s.purchaseRepo.ListPurchasesBySupplier(ctx, supplierID)
	} else {
		purchases, err = s.purchaseRepo.ListPurchases(ctx, limit, offset)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to list purchases",
			slog.String("supplier_id", supplierID))
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	if purchases == nil {
		return []domain.Purchase{}, nil
	}
	return purchases, nil
}

func (s *purchaseService) DeletePurchase(ctx context.Context, purchaseID string, userID string) error {
	if _, err := s.GetPurchaseByID(ctx, purchaseID); err != nil {
		return err
	}

	// Items go with the invoice
	if err := s.purchaseRepo.DeletePurchase(ctx, purchaseID); err != nil {
		s.LogError(ctx, err, "Failed to delete purchase",
			slog.String("purchase_id", purchaseID))
		return err
	}

	s.LogInfo(ctx, "Purchase deleted",
		slog.String("purchase_id", purchaseID),
		slog.String("deleted_by", userID))
	return nil
}
