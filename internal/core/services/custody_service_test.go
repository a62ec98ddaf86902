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

// --- Mock CustodyRepository ---
type MockCustodyRepository struct {
	mock.Mock
}

func (m *MockCustodyRepository) FindCustodyByID(ctx context.Context, custodyID string) (*domain.Custody, error) {
	args := m.Called(ctx, custodyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Custody), args.Error(1)
}

func (m *MockCustodyRepository) ListCustodiesByEmployee(ctx context.Context, employeeID string) ([]domain.Custody, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Custody), args.Error(1)
}

func (m *MockCustodyRepository) ListCustodies(ctx context.Context) ([]domain.Custody, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Custody), args.Error(1)
}

func (m *MockCustodyRepository) SaveCustody(ctx context.Context, custody domain.Custody) error {
	args := m.Called(ctx, custody)
	return args.Error(0)
}

func (m *MockCustodyRepository) CloseCustody(ctx context.Context, custody domain.Custody) error {
	args := m.Called(ctx, custody)
	return args.Error(0)
}

// --- Test Suite ---
type CustodyServiceTestSuite struct {
	suite.Suite
	mockRepo         *MockCustodyRepository
	mockEmployeeRepo *MockEmployeeRepository
	service          portssvc.CustodySvcFacade
}

func (suite *CustodyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCustodyRepository)
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.service = services.NewCustodyService(suite.mockRepo, suite.mockEmployeeRepo)
}

// --- Test Cases ---

func (suite *CustodyServiceTestSuite) TestOpenCustody_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	employeeID := uuid.NewString()
	req := dto.OpenCustodyRequest{
		EmployeeID: employeeID,
		Amount:     decimal.NewFromInt(1000),
		DateGiven:  "2025-06-10",
		Notes:      "market run",
	}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, employeeID).Return(&domain.Employee{EmployeeID: employeeID}, nil).Once()
	suite.mockRepo.On("SaveCustody", ctx, mock.MatchedBy(func(c domain.Custody) bool {
		return c.EmployeeID == employeeID &&
			c.Amount.Equal(req.Amount) &&
			c.Status == domain.CustodyActive &&
			c.Expenses.IsZero() &&
			c.ReturnAmount.IsZero() &&
			c.DateGiven == req.DateGiven
	})).Return(nil).Once()

	custody, err := suite.service.OpenCustody(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(custody)
	suite.Equal(domain.CustodyActive, custody.Status)
	suite.True(custody.Exposure().Equal(req.Amount))
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockEmployeeRepo.AssertExpectations(suite.T())
}

func (suite *CustodyServiceTestSuite) TestOpenCustody_DefaultsDateToToday() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	req := dto.OpenCustodyRequest{
		EmployeeID: employeeID,
		Amount:     decimal.NewFromInt(500),
	}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, employeeID).Return(&domain.Employee{EmployeeID: employeeID}, nil).Once()
	suite.mockRepo.On("SaveCustody", ctx, mock.MatchedBy(func(c domain.Custody) bool {
		return domain.ValidDate(c.DateGiven)
	})).Return(nil).Once()

	custody, err := suite.service.OpenCustody(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.NotEmpty(custody.DateGiven)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CustodyServiceTestSuite) TestOpenCustody_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.OpenCustodyRequest{
		EmployeeID: uuid.NewString(),
		Amount:     decimal.Zero,
	}

	custody, err := suite.service.OpenCustody(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(custody)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCustody")
}

func (suite *CustodyServiceTestSuite) TestOpenCustody_UnknownEmployee() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	req := dto.OpenCustodyRequest{
		EmployeeID: employeeID,
		Amount:     decimal.NewFromInt(100),
	}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, employeeID).Return(nil, apperrors.ErrNotFound).Once()

	custody, err := suite.service.OpenCustody(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(custody)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCustody")
}

func (suite *CustodyServiceTestSuite) TestCloseCustody_ComputesReturnAmount() {
	ctx := context.Background()
	custodyID := uuid.NewString()
	updaterUserID := uuid.NewString()
	active := &domain.Custody{
		CustodyID: custodyID,
		Amount:    decimal.NewFromInt(1000),
		Status:    domain.CustodyActive,
	}
	req := dto.CloseCustodyRequest{Expenses: decimal.NewFromInt(750)}

	suite.mockRepo.On("FindCustodyByID", ctx, custodyID).Return(active, nil).Once()
	suite.mockRepo.On("CloseCustody", ctx, mock.MatchedBy(func(c domain.Custody) bool {
		return c.Status == domain.CustodyClosed &&
			c.Expenses.Equal(decimal.NewFromInt(750)) &&
			c.ReturnAmount.Equal(decimal.NewFromInt(250)) &&
			c.LastUpdatedBy == updaterUserID
	})).Return(nil).Once()

	custody, err := suite.service.CloseCustody(ctx, custodyID, req, updaterUserID)

	suite.Require().NoError(err)
	suite.True(custody.ReturnAmount.Equal(decimal.NewFromInt(250)))
	suite.True(custody.Exposure().IsZero())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CustodyServiceTestSuite) TestCloseCustody_OverspendRecordsNegativeReturn() {
	ctx := context.Background()
	custodyID := uuid.NewString()
	active := &domain.Custody{
		CustodyID: custodyID,
		Amount:    decimal.NewFromInt(500),
		Status:    domain.CustodyActive,
	}
	req := dto.CloseCustodyRequest{Expenses: decimal.NewFromInt(620)}

	suite.mockRepo.On("FindCustodyByID", ctx, custodyID).Return(active, nil).Once()
	suite.mockRepo.On("CloseCustody", ctx, mock.MatchedBy(func(c domain.Custody) bool {
		return c.ReturnAmount.Equal(decimal.NewFromInt(-120))
	})).Return(nil).Once()

	custody, err := suite.service.CloseCustody(ctx, custodyID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(custody.ReturnAmount.IsNegative())
	suite.True(custody.Exposure().IsZero())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CustodyServiceTestSuite) TestCloseCustody_NotesSemantics() {
	ctx := context.Background()

	// Absent notes keep the ones recorded at open time
	custodyID := uuid.NewString()
	active := &domain.Custody{
		CustodyID: custodyID,
		Amount:    decimal.NewFromInt(100),
		Status:    domain.CustodyActive,
		Notes:     "petty cash for the kitchen",
	}
	suite.mockRepo.On("FindCustodyByID", ctx, custodyID).Return(active, nil).Once()
	suite.mockRepo.On("CloseCustody", ctx, mock.MatchedBy(func(c domain.Custody) bool {
		return c.Notes == "petty cash for the kitchen"
	})).Return(nil).Once()

	custody, err := suite.service.CloseCustody(ctx, custodyID, dto.CloseCustodyRequest{}, uuid.NewString())
	suite.Require().NoError(err)
	suite.Equal("petty cash for the kitchen", custody.Notes)

	// An explicit empty string clears them
	custodyID = uuid.NewString()
	active = &domain.Custody{
		CustodyID: custodyID,
		Amount:    decimal.NewFromInt(100),
		Status:    domain.CustodyActive,
		Notes:     "petty cash for the kitchen",
	}
	empty := ""
	suite.mockRepo.On("FindCustodyByID", ctx, custodyID).Return(active, nil).Once()
	suite.mockRepo.On("CloseCustody", ctx, mock.MatchedBy(func(c domain.Custody) bool {
		return c.CustodyID == custodyID && c.Notes == ""
	})).Return(nil).Once()

	custody, err = suite.service.CloseCustody(ctx, custodyID, dto.CloseCustodyRequest{Notes: &empty}, uuid.NewString())
	suite.Require().NoError(err)
	suite.Empty(custody.Notes)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CustodyServiceTestSuite) TestCloseCustody_AlreadyClosed() {
	ctx := context.Background()
	custodyID := uuid.NewString()
	closed := &domain.Custody{
		CustodyID: custodyID,
		Amount:    decimal.NewFromInt(300),
		Status:    domain.CustodyClosed,
	}

	suite.mockRepo.On("FindCustodyByID", ctx, custodyID).Return(closed, nil).Once()

	custody, err := suite.service.CloseCustody(ctx, custodyID, dto.CloseCustodyRequest{}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(custody)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "CloseCustody")
}

func (suite *CustodyServiceTestSuite) TestCloseCustody_NegativeExpenses() {
	ctx := context.Background()
	req := dto.CloseCustodyRequest{Expenses: decimal.NewFromInt(-5)}

	custody, err := suite.service.CloseCustody(ctx, uuid.NewString(), req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(custody)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindCustodyByID")
}

func (suite *CustodyServiceTestSuite) TestCloseCustody_ConcurrentCloseConflict() {
	ctx := context.Background()
	custodyID := uuid.NewString()
	active := &domain.Custody{
		CustodyID: custodyID,
		Amount:    decimal.NewFromInt(100),
		Status:    domain.CustodyActive,
	}

	suite.mockRepo.On("FindCustodyByID", ctx, custodyID).Return(active, nil).Once()
	suite.mockRepo.On("CloseCustody", ctx, mock.AnythingOfType("domain.Custody")).Return(apperrors.ErrConflict).Once()

	custody, err := suite.service.CloseCustody(ctx, custodyID, dto.CloseCustodyRequest{}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(custody)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CustodyServiceTestSuite) TestExposureForEmployee_SumsActiveAdvances() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	custodies := []domain.Custody{
		{Amount: decimal.NewFromInt(1000), Status: domain.CustodyActive},
		{
			Amount:       decimal.NewFromInt(500),
			Status:       domain.CustodyClosed,
			Expenses:     decimal.NewFromInt(400),
			ReturnAmount: decimal.NewFromInt(100),
		},
	}

	suite.mockRepo.On("ListCustodiesByEmployee", ctx, employeeID).Return(custodies, nil).Once()

	exposure, err := suite.service.ExposureForEmployee(ctx, employeeID)

	suite.Require().NoError(err)
	suite.True(exposure.Equal(decimal.NewFromInt(1000)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CustodyServiceTestSuite) TestListCustodies_AllWhenNoEmployee() {
	ctx := context.Background()
	expected := []domain.Custody{{CustodyID: uuid.NewString()}}

	suite.mockRepo.On("ListCustodies", ctx).Return(expected, nil).Once()

	custodies, err := suite.service.ListCustodies(ctx, "")

	suite.Require().NoError(err)
	suite.Equal(expected, custodies)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListCustodiesByEmployee")
}

// --- Run Suite ---
func TestCustodyService(t *testing.T) {
	suite.Run(t, new(CustodyServiceTestSuite))
}
