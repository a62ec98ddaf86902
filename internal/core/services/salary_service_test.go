package services_test

import (
	"context"
	"testing"

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

// --- Mock SalaryTransactionRepository ---
type MockSalaryTransactionRepository struct {
	mock.Mock
}

func (m *MockSalaryTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.SalaryTransaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalaryTransaction), args.Error(1)
}

func (m *MockSalaryTransactionRepository) ListTransactionsByEmployee(ctx context.Context, employeeID string) ([]domain.SalaryTransaction, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalaryTransaction), args.Error(1)
}

func (m *MockSalaryTransactionRepository) ListTransactions(ctx context.Context) ([]domain.SalaryTransaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalaryTransaction), args.Error(1)
}

func (m *MockSalaryTransactionRepository) SaveTransaction(ctx context.Context, txn domain.SalaryTransaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockSalaryTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

// --- Test Suite ---
type SalaryServiceTestSuite struct {
	suite.Suite
	mockTxnRepo      *MockSalaryTransactionRepository
	mockEmployeeRepo *MockEmployeeRepository
	mockCustodyRepo  *MockCustodyRepository
	service          portssvc.SalarySvcFacade
}

func (suite *SalaryServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockSalaryTransactionRepository)
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.mockCustodyRepo = new(MockCustodyRepository)
	suite.service = services.NewSalaryService(suite.mockTxnRepo, suite.mockEmployeeRepo, suite.mockCustodyRepo)
}

// --- Test Cases ---

func (suite *SalaryServiceTestSuite) TestAddTransaction_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	employeeID := uuid.NewString()
	req := dto.CreateSalaryTransactionRequest{
		EmployeeID: employeeID,
		Type:       domain.TxnLoan,
		Amount:     decimal.NewFromInt(200),
		Date:       "2025-06-05",
		Notes:      "advance against July",
	}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, employeeID).Return(&domain.Employee{EmployeeID: employeeID}, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.SalaryTransaction) bool {
		return t.EmployeeID == employeeID &&
			t.Type == domain.TxnLoan &&
			t.Amount.Equal(req.Amount) &&
			t.Date == req.Date &&
			t.CreatedBy == creatorUserID
	})).Return(nil).Once()

	txn, err := suite.service.AddTransaction(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.NotEmpty(txn.TransactionID)
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockEmployeeRepo.AssertExpectations(suite.T())
}

func (suite *SalaryServiceTestSuite) TestAddTransaction_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateSalaryTransactionRequest{
		EmployeeID: uuid.NewString(),
		Type:       domain.TxnBonus,
		Amount:     decimal.Zero,
	}

	txn, err := suite.service.AddTransaction(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *SalaryServiceTestSuite) TestAddTransaction_UnknownType() {
	ctx := context.Background()
	req := dto.CreateSalaryTransactionRequest{
		EmployeeID: uuid.NewString(),
		Type:       domain.SalaryTransactionType("overtime"),
		Amount:     decimal.NewFromInt(50),
	}

	txn, err := suite.service.AddTransaction(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *SalaryServiceTestSuite) TestAddTransaction_UnknownEmployee() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	req := dto.CreateSalaryTransactionRequest{
		EmployeeID: employeeID,
		Type:       domain.TxnDeduction,
		Amount:     decimal.NewFromInt(50),
	}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, employeeID).Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.AddTransaction(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *SalaryServiceTestSuite) TestComputeStatement_NetSalary() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	employee := &domain.Employee{
		EmployeeID:  employeeID,
		Name:        "Ahmed",
		BasicSalary: decimal.NewFromInt(2000),
	}
	txns := []domain.SalaryTransaction{
		{Type: domain.TxnBonus, Amount: decimal.NewFromInt(300)},
		{Type: domain.TxnLoan, Amount: decimal.NewFromInt(400)},
		{Type: domain.TxnDeduction, Amount: decimal.NewFromInt(100)},
		{Type: domain.TxnMeal, Amount: decimal.NewFromInt(50)},
		{Type: domain.TxnShortage, Amount: decimal.NewFromInt(50)},
	}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, employeeID).Return(employee, nil).Once()
	suite.mockTxnRepo.On("ListTransactionsByEmployee", ctx, employeeID).Return(txns, nil).Once()
	suite.mockCustodyRepo.On("ListCustodiesByEmployee", ctx, employeeID).Return([]domain.Custody{}, nil).Once()

	st, err := suite.service.ComputeStatement(ctx, employeeID)

	suite.Require().NoError(err)
	// 2000 + 300 - 400 - 100 - 50 - 50 = 1700
	suite.True(st.NetSalary.Equal(decimal.NewFromInt(1700)), "net was %s", st.NetSalary)
	suite.True(st.Loans.Equal(decimal.NewFromInt(400)))
	suite.True(st.Bonuses.Equal(decimal.NewFromInt(300)))
	suite.Equal("Ahmed", st.EmployeeName)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *SalaryServiceTestSuite) TestComputeStatement_SalaryPaymentsExcludedFromNet() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	employee := &domain.Employee{
		EmployeeID:  employeeID,
		Name:        "Sara",
		BasicSalary: decimal.NewFromInt(2700),
	}
	txns := []domain.SalaryTransaction{
		{Type: domain.TxnSalaryPayment, Amount: decimal.NewFromInt(2700)},
	}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, employeeID).Return(employee, nil).Once()
	suite.mockTxnRepo.On("ListTransactionsByEmployee", ctx, employeeID).Return(txns, nil).Once()
	suite.mockCustodyRepo.On("ListCustodiesByEmployee", ctx, employeeID).Return([]domain.Custody{}, nil).Once()

	st, err := suite.service.ComputeStatement(ctx, employeeID)

	suite.Require().NoError(err)
	suite.True(st.SalaryPayments.Equal(decimal.NewFromInt(2700)))
	suite.True(st.NetSalary.Equal(decimal.NewFromInt(2700)), "payments must not reduce the net")
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *SalaryServiceTestSuite) TestComputeStatement_CustodyExposureReducesNet() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	employee := &domain.Employee{
		EmployeeID:  employeeID,
		BasicSalary: decimal.NewFromInt(3000),
	}
	custodies := []domain.Custody{
		{Amount: decimal.NewFromInt(800), Status: domain.CustodyActive},
	}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, employeeID).Return(employee, nil).Once()
	suite.mockTxnRepo.On("ListTransactionsByEmployee", ctx, employeeID).Return([]domain.SalaryTransaction{}, nil).Once()
	suite.mockCustodyRepo.On("ListCustodiesByEmployee", ctx, employeeID).Return(custodies, nil).Once()

	st, err := suite.service.ComputeStatement(ctx, employeeID)

	suite.Require().NoError(err)
	suite.True(st.CustodyExposure.Equal(decimal.NewFromInt(800)))
	suite.True(st.NetSalary.Equal(decimal.NewFromInt(2200)))
	suite.mockCustodyRepo.AssertExpectations(suite.T())
}

func (suite *SalaryServiceTestSuite) TestComputeStatement_UnknownEmployee() {
	ctx := context.Background()
	employeeID := uuid.NewString()

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, employeeID).Return(nil, apperrors.ErrNotFound).Once()

	st, err := suite.service.ComputeStatement(ctx, employeeID)

	suite.Require().Error(err)
	suite.Nil(st)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "ListTransactionsByEmployee")
}

func (suite *SalaryServiceTestSuite) TestComputeAllStatements() {
	ctx := context.Background()
	empA := domain.Employee{EmployeeID: uuid.NewString(), BasicSalary: decimal.NewFromInt(2000)}
	empB := domain.Employee{EmployeeID: uuid.NewString(), BasicSalary: decimal.NewFromInt(1500)}

	suite.mockEmployeeRepo.On("ListEmployees", ctx, 1000, 0).Return([]domain.Employee{empA, empB}, nil).Once()
	for _, emp := range []domain.Employee{empA, empB} {
		emp := emp
		suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, emp.EmployeeID).Return(&emp, nil).Once()
		suite.mockTxnRepo.On("ListTransactionsByEmployee", ctx, emp.EmployeeID).Return([]domain.SalaryTransaction{}, nil).Once()
		suite.mockCustodyRepo.On("ListCustodiesByEmployee", ctx, emp.EmployeeID).Return([]domain.Custody{}, nil).Once()
	}

	statements, err := suite.service.ComputeAllStatements(ctx)

	suite.Require().NoError(err)
	suite.Len(statements, 2)
	suite.True(statements[0].NetSalary.Equal(decimal.NewFromInt(2000)))
	suite.True(statements[1].NetSalary.Equal(decimal.NewFromInt(1500)))
	suite.mockEmployeeRepo.AssertExpectations(suite.T())
}

func (suite *SalaryServiceTestSuite) TestDeleteTransaction_NotFound() {
	ctx := context.Background()
	transactionID := uuid.NewString()

	suite.mockTxnRepo.On("FindTransactionByID", ctx, transactionID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteTransaction(ctx, transactionID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "DeleteTransaction")
}

func (suite *SalaryServiceTestSuite) TestDeleteTransaction_Success() {
	ctx := context.Background()
	transactionID := uuid.NewString()
	existing := &domain.SalaryTransaction{TransactionID: transactionID}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, transactionID).Return(existing, nil).Once()
	suite.mockTxnRepo.On("DeleteTransaction", ctx, transactionID).Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, transactionID, uuid.NewString())

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestSalaryService(t *testing.T) {
	suite.Run(t, new(SalaryServiceTestSuite))
}
