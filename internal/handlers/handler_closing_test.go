package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/muhasibpro/muhasib_app/internal/core/domain"
	portssvc "github.com/muhasibpro/muhasib_app/internal/core/ports/services"
	"github.com/muhasibpro/muhasib_app/internal/dto"
	"github.com/muhasibpro/muhasib_app/internal/handlers"
	"github.com/muhasibpro/muhasib_app/internal/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ClosingService ---
type MockClosingService struct {
	mock.Mock
}

func (m *MockClosingService) CreateClosing(ctx context.Context, req dto.CreateClosingRequest, userID string) (*domain.DailyClosing, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyClosing), args.Error(1)
}

func (m *MockClosingService) GetClosingByID(ctx context.Context, closingID string) (*domain.DailyClosing, error) {
	args := m.Called(ctx, closingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyClosing), args.Error(1)
}

func (m *MockClosingService) ListClosings(ctx context.Context, limit int, offset int) ([]domain.DailyClosing, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyClosing), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.ClosingSvcFacade = (*MockClosingService)(nil)

// --- Test Suite ---
type ClosingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockClosingService
}

func (suite *ClosingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.Use(middleware.ActorMiddleware())

	suite.mockService = new(MockClosingService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterClosingRoutes(v1, suite.mockService)
}

// --- Test Cases ---

func (suite *ClosingHandlerTestSuite) TestCreateClosing_Success() {
	reqBody := dto.CreateClosingRequest{
		Date:        "2025-06-15",
		TotalActual: decimal.NewFromInt(5050),
		TotalSystem: decimal.NewFromInt(5000),
	}
	created := &domain.DailyClosing{
		ClosingID:   uuid.NewString(),
		Date:        reqBody.Date,
		TotalActual: reqBody.TotalActual,
		TotalSystem: reqBody.TotalSystem,
		Variance:    decimal.NewFromInt(50),
	}

	suite.mockService.On("CreateClosing", mock.Anything, mock.AnythingOfType("dto.CreateClosingRequest"), "system").
		Return(created, nil).Once()

	body, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/closings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.ClosingResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.ClosingID, resp.ClosingID)
	suite.True(resp.Variance.Equal(decimal.NewFromInt(50)))
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ClosingHandlerTestSuite) TestGetClosing_DetailsReturnedByteIdentical() {
	closingID := uuid.NewString()
	// Key order deliberately not alphabetical; any reprocessing or
	// normalization along the way would reorder it
	details := json.RawMessage(`{"zReportNo":"Z-1042","denominations":{"500":6,"100":2}}`)
	stored := &domain.DailyClosing{
		ClosingID: closingID,
		Date:      "2025-06-15",
		Details:   details,
	}

	suite.mockService.On("GetClosingByID", mock.Anything, closingID).
		Return(stored, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/closings/"+closingID, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"details":`+string(details))

	var resp dto.ClosingResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(string(details), string(resp.Details))
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ClosingHandlerTestSuite) TestListClosings_PassesPagination() {
	closings := []domain.DailyClosing{
		{ClosingID: uuid.NewString(), Date: "2025-06-15"},
	}

	suite.mockService.On("ListClosings", mock.Anything, 5, 10).
		Return(closings, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/closings?limit=5&offset=10", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListClosingsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Closings, 1)
	suite.mockService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestClosingHandler(t *testing.T) {
	suite.Run(t, new(ClosingHandlerTestSuite))
}
