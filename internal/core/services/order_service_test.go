package services_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"

	"github.com/imedlab/inventory-manager/internal/apperrors"
	"github.com/imedlab/inventory-manager/internal/core/domain"
	portssvc "github.com/imedlab/inventory-manager/internal/core/ports/services"
	"github.com/imedlab/inventory-manager/internal/core/services"
)

// --- Mock OrderRepository ---
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) ListOrdersByDateRange(ctx context.Context, from, to time.Time, limit int, nextToken *string) ([]domain.Order, *string, error) {
	args := m.Called(ctx, from, to, limit, nextToken)
	var orders []domain.Order
	if args.Get(0) != nil {
		orders = args.Get(0).([]domain.Order)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return orders, token, args.Error(2)
}

func (m *MockOrderRepository) ListOrdersByItemID(ctx context.Context, itemID string) ([]domain.Order, error) {
	args := m.Called(ctx, itemID)
	var orders []domain.Order
	if args.Get(0) != nil {
		orders = args.Get(0).([]domain.Order)
	}
	return orders, args.Error(1)
}

func (m *MockOrderRepository) EarliestPODate(ctx context.Context) (time.Time, error) {
	args := m.Called(ctx)
	return args.Get(0).(time.Time), args.Error(1)
}

// --- Test Suite ---
type OrderServiceTestSuite struct {
	suite.Suite
	mockRepo *MockOrderRepository
	service  portssvc.OrderSvcFacade
	ctx      context.Context
	from     time.Time
	to       time.Time
}

func (s *OrderServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockOrderRepository)
	s.service = services.NewOrderService(s.mockRepo)
	s.ctx = context.Background()
	s.from = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.to = time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
}

func TestOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}

func (s *OrderServiceTestSuite) sampleOrder(itemNo string) domain.Order {
	price := decimal.NewFromFloat(12.5)
	return domain.Order{
		OrderID:       "order-1",
		ItemID:        "item-1",
		ItemNo:        itemNo,
		Vendor:        "Medline",
		VendorCatalog: "CAT-9",
		ReceivedQty:   3,
		UnitOfMeasure: "BX",
		Price:         &price,
		TotalCost:     decimal.NewFromFloat(37.5),
		CurrencyCode:  "USD",
		PONumber:      "PO-1001",
		PODate:        time.Date(2024, 1, 15, 6, 0, 0, 0, time.UTC),
		VendorCode:    "MED",
		VendorName:    "Medline Industries",
		CostCenter:    "OR Supplies",
		AccountNo:     "4400",
	}
}

func (s *OrderServiceTestSuite) TestListOrdersByDateRange_DefaultsLimit() {
	expected := []domain.Order{s.sampleOrder("A-100")}
	s.mockRepo.On("ListOrdersByDateRange", s.ctx, s.from, s.to, 50, (*string)(nil)).Return(expected, nil, nil).Once()

	orders, token, err := s.service.ListOrdersByDateRange(s.ctx, s.from, s.to, 0, nil)

	s.Require().NoError(err)
	s.Equal(expected, orders)
	s.Nil(token)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *OrderServiceTestSuite) TestListOrdersByDateRange_InvertedRange() {
	orders, token, err := s.service.ListOrdersByDateRange(s.ctx, s.to, s.from, 10, nil)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Nil(orders)
	s.Nil(token)
	s.mockRepo.AssertNotCalled(s.T(), "ListOrdersByDateRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *OrderServiceTestSuite) TestOrdersForItem_Success() {
	expected := []domain.Order{s.sampleOrder("A-100")}
	s.mockRepo.On("ListOrdersByItemID", s.ctx, "item-1").Return(expected, nil).Once()

	orders, err := s.service.OrdersForItem(s.ctx, "item-1")

	s.Require().NoError(err)
	s.Equal(expected, orders)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *OrderServiceTestSuite) TestExportOrders_WritesReimportableWorkbook() {
	order := s.sampleOrder("A-100")
	s.mockRepo.On("ListOrdersByDateRange", s.ctx, s.from, s.to, mock.AnythingOfType("int"), (*string)(nil)).
		Return([]domain.Order{order}, nil, nil).Once()

	data, err := s.service.ExportOrders(s.ctx, s.from, s.to)

	s.Require().NoError(err)
	s.Require().NotEmpty(data)
	s.mockRepo.AssertExpectations(s.T())

	f, err := excelize.OpenReader(bytes.NewReader(data))
	s.Require().NoError(err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	s.Require().NoError(err)
	s.Require().Len(rows, 2)

	s.Equal("ITEM_NO", rows[0][0])
	s.Equal("ACCT_NO", rows[0][12])
	s.Equal("A-100", rows[1][0])
	s.Equal("Medline", rows[1][1])
	s.Equal("3", rows[1][3])
	s.Equal("12.5", rows[1][5])
	s.Equal("PO-1001", rows[1][7])
	s.Equal("01/15/2024 06:00:00", rows[1][8])
	s.Equal("4400", rows[1][12])
}

func (s *OrderServiceTestSuite) TestExportOrders_FollowsPagination() {
	token := "page-2"
	first := s.sampleOrder("A-100")
	second := s.sampleOrder("B-200")
	s.mockRepo.On("ListOrdersByDateRange", s.ctx, s.from, s.to, mock.AnythingOfType("int"), (*string)(nil)).
		Return([]domain.Order{first}, &token, nil).Once()
	s.mockRepo.On("ListOrdersByDateRange", s.ctx, s.from, s.to, mock.AnythingOfType("int"), &token).
		Return([]domain.Order{second}, nil, nil).Once()

	data, err := s.service.ExportOrders(s.ctx, s.from, s.to)

	s.Require().NoError(err)
	s.mockRepo.AssertExpectations(s.T())

	f, err := excelize.OpenReader(bytes.NewReader(data))
	s.Require().NoError(err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	s.Require().NoError(err)
	s.Require().Len(rows, 3)
	s.Equal("A-100", rows[1][0])
	s.Equal("B-200", rows[2][0])
}

func (s *OrderServiceTestSuite) TestExportOrders_InvertedRange() {
	data, err := s.service.ExportOrders(s.ctx, s.to, s.from)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Nil(data)
	s.mockRepo.AssertNotCalled(s.T(), "ListOrdersByDateRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
