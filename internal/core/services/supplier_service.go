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
	"github.com/shopspring/decimal"
)

// supplierService implements the SupplierSvcFacade interface
type supplierService struct {
	BaseService
	supplierRepo portsrepo.SupplierRepositoryFacade
	purchaseRepo portsrepo.PurchaseReader
}

// NewSupplierService creates a new supplier service
func NewSupplierService(repo portsrepo.SupplierRepositoryFacade, purchaseRepo portsrepo.PurchaseReader) portssvc.SupplierSvcFacade {
	return &supplierService{
		supplierRepo: repo,
		purchaseRepo: purchaseRepo,
	}
}

var _ portssvc.SupplierSvcFacade = (*supplierService)(nil)

func (s *supplierService) CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest, userID string) (*domain.Supplier, error) {
	now := time.Now()
	supplier := domain.Supplier{
		SupplierID: uuid.NewString(),
		Code:       req.Code,
		Name:       req.Name,
		Phone:      req.Phone,
		TaxNumber:  req.TaxNumber,
		Balance:    req.Balance,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.supplierRepo.SaveSupplier(ctx, supplier); err != nil {
		s.LogError(ctx, err, "Failed to save supplier",
			slog.String("supplier_id", supplier.SupplierID))
		return nil, err
	}

	s.LogInfo(ctx, "Supplier created successfully",
		slog.String("supplier_id", supplier.SupplierID))
	return &supplier, nil
}

func (s *supplierService) GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find supplier by ID",
				slog.String("supplier_id", supplierID))
		}
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error) {
	suppliers, err := s.supplierRepo.ListSuppliers(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list suppliers",
			slog.Int("limit", limit),
			slog.Int("offset", offset))
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	if suppliers == nil {
		return []domain.Supplier{}, nil
	}
	return suppliers, nil
}

func (s *supplierService) UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest, userID string) (*domain.Supplier, error) {
	supplier, err := s.GetSupplierByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Code != nil {
		supplier.Code = *req.Code
		updated = true
	}
	if req.Name != nil {
		supplier.Name = *req.Name
		updated = true
	}
	if req.Phone != nil {
		supplier.Phone = *req.Phone
		updated = true
	}
	if req.TaxNumber != nil {
		supplier.TaxNumber = *req.TaxNumber
		updated = true
	}
	if req.Balance != nil {
		supplier.Balance = *req.Balance
		updated = true
	}
	if !updated {
		s.LogDebug(ctx, "No fields provided for supplier update",
			slog.String("supplier_id", supplierID))
		return supplier, nil
	}

	now := time.Now()
	supplier.LastUpdatedAt = now
	supplier.LastUpdatedBy = userID

	if err := s.supplierRepo.UpdateSupplier(ctx, *supplier); err != nil {
		s.LogError(ctx, err, "Failed to update supplier",
			slog.String("supplier_id", supplierID))
		return nil, err
	}

	s.LogInfo(ctx, "Supplier updated successfully",
		slog.String("supplier_id", supplierID))
	return supplier, nil
}

func (s *supplierService) DeleteSupplier(ctx context.Context, supplierID string, userID string) error {
	if _, err := s.GetSupplierByID(ctx, supplierID); err != nil {
		return err
	}

	now := time.Now()
	if err := s.supplierRepo.DeleteSupplier(ctx, supplierID, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to delete supplier",
			slog.String("supplier_id", supplierID))
		return err
	}

	s.LogInfo(ctx, "Supplier deleted successfully",
		slog.String("supplier_id", supplierID))
	return nil
}

// GetStatement builds the categorized purchase statement. Credit purchases
// and immediate payments (cash or transfer) partition the history; every
// purchase lands in exactly one bucket. The supplier's stored balance is
// reported as-is.
func (s *supplierService) GetStatement(ctx context.Context, supplierID string) (*domain.SupplierStatement, error) {
	supplier, err := s.GetSupplierByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	purchases, err := s.purchaseRepo.ListPurchasesBySupplier(ctx, supplierID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list purchases for statement",
			slog.String("supplier_id", supplierID))
		return nil, err
	}

	statement := domain.SupplierStatement{
		Supplier:    *supplier,
		CreditTotal: decimal.Zero,
		CashTotal:   decimal.Zero,
		Lines:       make([]domain.StatementLine, 0, len(purchases)),
	}
	for _, p := range purchases {
		deferred := p.PaymentMethod.Deferred()
		if deferred {
			statement.CreditTotal = statement.CreditTotal.Add(p.Amount)
		} else {
			statement.CashTotal = statement.CashTotal.Add(p.Amount)
		}
		reference := p.InvoiceNumber
		if reference == "" {
			reference = p.PurchaseID
		}
		statement.Lines = append(statement.Lines, domain.StatementLine{
			PurchaseID:    p.PurchaseID,
			Reference:     reference,
			Date:          p.Date,
			Description:   p.Description,
			Amount:        p.Amount,
			PaymentMethod: p.PaymentMethod,
			Deferred:      deferred,
		})
	}

	s.LogDebug(ctx, "Supplier statement built",
		slog.String("supplier_id", supplierID),
		slog.Int("lines", len(statement.Lines)))
	return &statement, nil
}
