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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock EmployeeRepository ---
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) ListEmployees(ctx context.Context, limit int, offset int) ([]domain.Employee, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID string, userID string, now time.Time) error {
	args := m.Called(ctx, employeeID, userID, now)
	return args.Error(0)
}

// --- Test Suite ---
type EmployeeServiceTestSuite struct {
	suite.Suite
	mockRepo *MockEmployeeRepository
	service  portssvc.EmployeeSvcFacade
}

func (suite *EmployeeServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockEmployeeRepository)
	suite.service = services.NewEmployeeService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateEmployeeRequest{
		Code:        "EMP-7",
		Name:        "Ahmed",
		Role:        "cashier",
		Phone:       "0501234567",
		BasicSalary: decimal.NewFromInt(2500),
		JoinDate:    "2024-03-01",
	}

	suite.mockRepo.On("SaveEmployee", ctx, mock.MatchedBy(func(e domain.Employee) bool {
		return e.Name == req.Name && e.BasicSalary.Equal(req.BasicSalary) && e.JoinDate == req.JoinDate && e.CreatedBy == creatorUserID
	})).Return(nil).Once()

	employee, err := suite.service.CreateEmployee(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(employee)
	suite.NotEmpty(employee.EmployeeID)
	suite.Equal(req.Name, employee.Name)
	suite.True(employee.BasicSalary.Equal(req.BasicSalary))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_NegativeSalary() {
	ctx := context.Background()
	req := dto.CreateEmployeeRequest{
		Name:        "Ahmed",
		BasicSalary: decimal.NewFromInt(-100),
	}

	employee, err := suite.service.CreateEmployee(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(employee)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveEmployee")
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_MalformedJoinDate() {
	ctx := context.Background()
	req := dto.CreateEmployeeRequest{
		Name:        "Ahmed",
		BasicSalary: decimal.NewFromInt(2500),
		JoinDate:    "01/03/2024",
	}

	employee, err := suite.service.CreateEmployee(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(employee)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveEmployee")
}

func (suite *EmployeeServiceTestSuite) TestGetEmployeeByID_NotFound() {
	ctx := context.Background()
	employeeID := uuid.NewString()

	suite.mockRepo.On("FindEmployeeByID", ctx, employeeID).Return(nil, apperrors.ErrNotFound).Once()

	employee, err := suite.service.GetEmployeeByID(ctx, employeeID)

	suite.Require().Error(err)
	suite.Nil(employee)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestUpdateEmployee_PartialFields() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	updaterUserID := uuid.NewString()
	existing := &domain.Employee{
		EmployeeID:  employeeID,
		Name:        "Ahmed",
		Role:        "cashier",
		BasicSalary: decimal.NewFromInt(2500),
	}
	newSalary := decimal.NewFromInt(2800)
	req := dto.UpdateEmployeeRequest{BasicSalary: &newSalary}

	suite.mockRepo.On("FindEmployeeByID", ctx, employeeID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateEmployee", ctx, mock.MatchedBy(func(e domain.Employee) bool {
		return e.BasicSalary.Equal(newSalary) && e.Name == "Ahmed" && e.LastUpdatedBy == updaterUserID
	})).Return(nil).Once()

	employee, err := suite.service.UpdateEmployee(ctx, employeeID, req, updaterUserID)

	suite.Require().NoError(err)
	suite.True(employee.BasicSalary.Equal(newSalary))
	suite.Equal("Ahmed", employee.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestUpdateEmployee_NoFields() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	existing := &domain.Employee{EmployeeID: employeeID, Name: "Ahmed"}

	suite.mockRepo.On("FindEmployeeByID", ctx, employeeID).Return(existing, nil).Once()

	employee, err := suite.service.UpdateEmployee(ctx, employeeID, dto.UpdateEmployeeRequest{}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(existing, employee)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateEmployee")
}

func (suite *EmployeeServiceTestSuite) TestUpdateEmployee_NegativeSalary() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	existing := &domain.Employee{EmployeeID: employeeID, BasicSalary: decimal.NewFromInt(2500)}
	negative := decimal.NewFromInt(-1)
	req := dto.UpdateEmployeeRequest{BasicSalary: &negative}

	suite.mockRepo.On("FindEmployeeByID", ctx, employeeID).Return(existing, nil).Once()

	employee, err := suite.service.UpdateEmployee(ctx, employeeID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(employee)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateEmployee")
}

func (suite *EmployeeServiceTestSuite) TestDeleteEmployee_Success() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	deleterUserID := uuid.NewString()
	existing := &domain.Employee{EmployeeID: employeeID}

	suite.mockRepo.On("FindEmployeeByID", ctx, employeeID).Return(existing, nil).Once()
	suite.mockRepo.On("DeleteEmployee", ctx, employeeID, deleterUserID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeleteEmployee(ctx, employeeID, deleterUserID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestDeleteEmployee_NotFound() {
	ctx := context.Background()
	employeeID := uuid.NewString()

	suite.mockRepo.On("FindEmployeeByID", ctx, employeeID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteEmployee(ctx, employeeID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteEmployee")
}

func (suite *EmployeeServiceTestSuite) TestListEmployees_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("ListEmployees", ctx, 20, 0).Return(nil, expectedErr).Once()

	employees, err := suite.service.ListEmployees(ctx, 20, 0)

	suite.Require().Error(err)
	suite.Nil(employees)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestEmployeeService(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}
