package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/muhasibpro/muhasib_app/internal/apperrors"
	"github.com/muhasibpro/muhasib_app/internal/core/domain"
	portssvc "github.com/muhasibpro/muhasib_app/internal/core/ports/services"
	"github.com/muhasibpro/muhasib_app/internal/core/services"
	"github.com/muhasibpro/muhasib_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SupplierRepository ---
type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) DeleteSupplier(ctx context.Context, supplierID string, userID string, now time.Time) error {
	args := m.Called(ctx, supplierID, userID, now)
	return args.Error(0)
}

// --- Test Suite ---
type SupplierServiceTestSuite struct {
	suite.Suite
	mockRepo         *MockSupplierRepository
	mockPurchaseRepo *MockPurchaseRepository
	service          portssvc.SupplierSvcFacade
}

func (suite *SupplierServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockSupplierRepository)
	suite.mockPurchaseRepo = new(MockPurchaseRepository)
	suite.service = services.NewSupplierService(suite.mockRepo, suite.mockPurchaseRepo)
}

// --- Test Cases ---

func (suite *SupplierServiceTestSuite) TestCreateSupplier_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateSupplierRequest{
		Code:    "SUP-3",
		Name:    "Al Noor Trading",
		Phone:   "0559876543",
		Balance: decimal.NewFromInt(1200),
	}

	suite.mockRepo.On("SaveSupplier", ctx, mock.MatchedBy(func(s domain.Supplier) bool {
		return s.Name == req.Name && s.Balance.Equal(req.Balance) && s.CreatedBy == creatorUserID
	})).Return(nil).Once()

	supplier, err := suite.service.CreateSupplier(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(supplier)
	suite.NotEmpty(supplier.SupplierID)
	suite.True(supplier.Balance.Equal(req.Balance))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SupplierServiceTestSuite) TestUpdateSupplier_BalanceOnly() {
	ctx := context.Background()
	supplierID := uuid.NewString()
	existing := &domain.Supplier{
		SupplierID: supplierID,
		Name:       "Al Noor Trading",
		Balance:    decimal.NewFromInt(1200),
	}
	newBalance := decimal.NewFromInt(700)
	req := dto.UpdateSupplierRequest{Balance: &newBalance}

	suite.mockRepo.On("FindSupplierByID", ctx, supplierID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateSupplier", ctx, mock.MatchedBy(func(s domain.Supplier) bool {
		return s.Balance.Equal(newBalance) && s.Name == "Al Noor Trading"
	})).Return(nil).Once()

	supplier, err := suite.service.UpdateSupplier(ctx, supplierID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(supplier.Balance.Equal(newBalance))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SupplierServiceTestSuite) TestGetStatement_PartitionsByPaymentMethod() {
	ctx := context.Background()
	supplierID := uuid.NewString()
	supplier := &domain.Supplier{
		SupplierID: supplierID,
		Name:       "Al Noor Trading",
		Balance:    decimal.NewFromInt(850),
	}
	purchases := []domain.Purchase{
		{PurchaseID: uuid.NewString(), InvoiceNumber: "INV-9", Date: "2025-06-14", Amount: decimal.NewFromInt(600), PaymentMethod: domain.PaymentCredit},
		{PurchaseID: uuid.NewString(), InvoiceNumber: "INV-8", Date: "2025-06-10", Amount: decimal.NewFromInt(250), PaymentMethod: domain.PaymentCash},
		{PurchaseID: uuid.NewString(), InvoiceNumber: "INV-7", Date: "2025-06-02", Amount: decimal.NewFromInt(150), PaymentMethod: domain.PaymentTransfer},
		{PurchaseID: uuid.NewString(), InvoiceNumber: "INV-6", Date: "2025-05-28", Amount: decimal.NewFromInt(400), PaymentMethod: domain.PaymentCredit},
	}

	suite.mockRepo.On("FindSupplierByID", ctx, supplierID).Return(supplier, nil).Once()
	suite.mockPurchaseRepo.On("ListPurchasesBySupplier", ctx, supplierID).Return(purchases, nil).Once()

	statement, err := suite.service.GetStatement(ctx, supplierID)

	suite.Require().NoError(err)
	suite.True(statement.CreditTotal.Equal(decimal.NewFromInt(1000)))
	suite.True(statement.CashTotal.Equal(decimal.NewFromInt(400)), "cash and transfer land in the immediate bucket")
	suite.Len(statement.Lines, 4)
	suite.True(statement.Lines[0].Deferred)
	suite.False(statement.Lines[1].Deferred)
	suite.False(statement.Lines[2].Deferred)
	// Every purchase lands in exactly one bucket
	suite.True(statement.CreditTotal.Add(statement.CashTotal).Equal(decimal.NewFromInt(1400)))
	// The stored balance is echoed, not recomputed from the ledger
	suite.True(statement.Supplier.Balance.Equal(decimal.NewFromInt(850)))
	suite.mockPurchaseRepo.AssertExpectations(suite.T())
}

func (suite *SupplierServiceTestSuite) TestGetStatement_ReferenceFallsBackToID() {
	ctx := context.Background()
	supplierID := uuid.NewString()
	purchaseID := uuid.NewString()
	supplier := &domain.Supplier{SupplierID: supplierID}
	purchases := []domain.Purchase{
		{PurchaseID: purchaseID, InvoiceNumber: "", Date: "2025-06-14", Amount: decimal.NewFromInt(90), PaymentMethod: domain.PaymentCash},
	}

	suite.mockRepo.On("FindSupplierByID", ctx, supplierID).Return(supplier, nil).Once()
	suite.mockPurchaseRepo.On("ListPurchasesBySupplier", ctx, supplierID).Return(purchases, nil).Once()

	statement, err := suite.service.GetStatement(ctx, supplierID)

	suite.Require().NoError(err)
	suite.Equal(purchaseID, statement.Lines[0].Reference)
	suite.mockPurchaseRepo.AssertExpectations(suite.T())
}

func (suite *SupplierServiceTestSuite) TestGetStatement_NoPurchases() {
	ctx := context.Background()
	supplierID := uuid.NewString()
	supplier := &domain.Supplier{SupplierID: supplierID, Balance: decimal.NewFromInt(300)}

	suite.mockRepo.On("FindSupplierByID", ctx, supplierID).Return(supplier, nil).Once()
	suite.mockPurchaseRepo.On("ListPurchasesBySupplier", ctx, supplierID).Return([]domain.Purchase{}, nil).Once()

	statement, err := suite.service.GetStatement(ctx, supplierID)

	suite.Require().NoError(err)
	suite.Empty(statement.Lines)
	suite.True(statement.CreditTotal.IsZero())
	suite.True(statement.CashTotal.IsZero())
	suite.True(statement.Supplier.Balance.Equal(decimal.NewFromInt(300)))
}

func (suite *SupplierServiceTestSuite) TestGetStatement_SupplierNotFound() {
	ctx := context.Background()
	supplierID := uuid.NewString()

	suite.mockRepo.On("FindSupplierByID", ctx, supplierID).Return(nil, apperrors.ErrNotFound).Once()

	statement, err := suite.service.GetStatement(ctx, supplierID)

	suite.Require().Error(err)
	suite.Nil(statement)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPurchaseRepo.AssertNotCalled(suite.T(), "ListPurchasesBySupplier")
}

func (suite *SupplierServiceTestSuite) TestDeleteSupplier_NotFound() {
	ctx := context.Background()
	supplierID := uuid.NewString()

	suite.mockRepo.On("FindSupplierByID", ctx, supplierID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteSupplier(ctx, supplierID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteSupplier")
}

// --- Run Suite ---
func TestSupplierService(t *testing.T) {
	suite.Run(t, new(SupplierServiceTestSuite))
}
