package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/imedlab/inventory-manager/internal/apperrors"
	"github.com/imedlab/inventory-manager/internal/core/domain"
	portssvc "github.com/imedlab/inventory-manager/internal/core/ports/services"
	"github.com/imedlab/inventory-manager/internal/dto"
	"github.com/imedlab/inventory-manager/internal/handlers"
	"github.com/imedlab/inventory-manager/internal/middleware"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) RecordAdjustment(ctx context.Context, itemNo string, direction domain.TransactionType, quantity int64, reason string, userID string) (*domain.ItemTransaction, error) {
	args := m.Called(ctx, itemNo, direction, quantity, reason, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemTransaction), args.Error(1)
}

func (m *MockLedgerService) Quantity(ctx context.Context, itemID string) (int64, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedgerService) ListTransactions(ctx context.Context, itemID string, limit int, nextToken *string) ([]domain.ItemTransaction, *string, error) {
	args := m.Called(ctx, itemID, limit, nextToken)
	var txns []domain.ItemTransaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.ItemTransaction)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return txns, token, args.Error(2)
}

// Ensure mock implements the interface
var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Test Suite ---
type StockHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockLedgerService *MockLedgerService
}

func (suite *StockHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.Use(middleware.OperatorID())

	suite.mockLedgerService = new(MockLedgerService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterStockRoutes(v1, suite.mockLedgerService)
}

func (suite *StockHandlerTestSuite) postAdjustment(body dto.AdjustmentRequest, operatorID string) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/stock/adjustments", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if operatorID != "" {
		req.Header.Set("X-Operator-ID", operatorID)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *StockHandlerTestSuite) TestRecordAdjustment_StockIn() {
	expected := &domain.ItemTransaction{
		TransactionID:   uuid.NewString(),
		ItemID:          uuid.NewString(),
		Timestamp:       time.Now().UTC(),
		Change:          5,
		TransactionType: domain.StockIn,
		Reason:          "restock",
	}

	suite.mockLedgerService.On("RecordAdjustment", mock.Anything, "CATH-100", domain.StockIn, int64(5), "restock", "nurse-42").
		Return(expected, nil).Once()

	w := suite.postAdjustment(dto.AdjustmentRequest{
		ItemNo:    "CATH-100",
		Direction: "in",
		Quantity:  5,
		Reason:    "restock",
	}, "nurse-42")

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expected.TransactionID, resp.TransactionID)
	suite.Equal(int64(5), resp.Change)
	suite.Equal("IN", resp.TransactionType)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *StockHandlerTestSuite) TestRecordAdjustment_StockOutDefaultsOperator() {
	expected := &domain.ItemTransaction{
		TransactionID:   uuid.NewString(),
		Change:          -2,
		TransactionType: domain.StockOut,
	}

	// No X-Operator-ID header: attribution falls back to "system".
	suite.mockLedgerService.On("RecordAdjustment", mock.Anything, "CATH-100", domain.StockOut, int64(2), "", "system").
		Return(expected, nil).Once()

	w := suite.postAdjustment(dto.AdjustmentRequest{
		ItemNo:    "CATH-100",
		Direction: "out",
		Quantity:  2,
	}, "")

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *StockHandlerTestSuite) TestRecordAdjustment_UnknownItem() {
	suite.mockLedgerService.On("RecordAdjustment", mock.Anything, "NOPE-1", domain.StockOut, int64(1), "", "system").
		Return(nil, apperrors.ErrUnknownItem).Once()

	w := suite.postAdjustment(dto.AdjustmentRequest{
		ItemNo:    "NOPE-1",
		Direction: "out",
		Quantity:  1,
	}, "")

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *StockHandlerTestSuite) TestRecordAdjustment_InvalidDirectionRejectedAtBinding() {
	w := suite.postAdjustment(dto.AdjustmentRequest{
		ItemNo:    "CATH-100",
		Direction: "sideways",
		Quantity:  1,
	}, "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "RecordAdjustment",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *StockHandlerTestSuite) TestRecordAdjustment_ZeroQuantityRejectedAtBinding() {
	w := suite.postAdjustment(dto.AdjustmentRequest{
		ItemNo:    "CATH-100",
		Direction: "in",
		Quantity:  0,
	}, "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "RecordAdjustment",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- Run Suite ---
func TestStockHandler(t *testing.T) {
	suite.Run(t, new(StockHandlerTestSuite))
}
