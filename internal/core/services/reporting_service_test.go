package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/imedlab/inventory-manager/internal/apperrors"
	"github.com/imedlab/inventory-manager/internal/core/domain"
	portssvc "github.com/imedlab/inventory-manager/internal/core/ports/services"
	"github.com/imedlab/inventory-manager/internal/core/services"
)

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) MonthlyOrderStats(ctx context.Context, from, to time.Time) ([]domain.MonthlyOrderStat, error) {
	args := m.Called(ctx, from, to)
	var stats []domain.MonthlyOrderStat
	if args.Get(0) != nil {
		stats = args.Get(0).([]domain.MonthlyOrderStat)
	}
	return stats, args.Error(1)
}

func (m *MockReportingRepository) VendorBreakdown(ctx context.Context, from, to time.Time) ([]domain.VendorStat, error) {
	args := m.Called(ctx, from, to)
	var vendors []domain.VendorStat
	if args.Get(0) != nil {
		vendors = args.Get(0).([]domain.VendorStat)
	}
	return vendors, args.Error(1)
}

// --- Mock OrderReader ---
type MockOrderReader struct {
	mock.Mock
}

func (m *MockOrderReader) ListOrdersByDateRange(ctx context.Context, from, to time.Time, limit int, nextToken *string) ([]domain.Order, *string, error) {
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

func (m *MockOrderReader) ListOrdersByItemID(ctx context.Context, itemID string) ([]domain.Order, error) {
	args := m.Called(ctx, itemID)
	var orders []domain.Order
	if args.Get(0) != nil {
		orders = args.Get(0).([]domain.Order)
	}
	return orders, args.Error(1)
}

func (m *MockOrderReader) EarliestPODate(ctx context.Context) (time.Time, error) {
	args := m.Called(ctx)
	return args.Get(0).(time.Time), args.Error(1)
}

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	mockOrderReader   *MockOrderReader
	service           portssvc.ReportingSvcFacade
	ctx               context.Context
	from              time.Time
	to                time.Time
}

func (s *ReportingServiceTestSuite) SetupTest() {
	s.mockReportingRepo = new(MockReportingRepository)
	s.mockOrderReader = new(MockOrderReader)
	s.service = services.NewReportingService(s.mockReportingRepo, s.mockOrderReader)
	s.ctx = context.Background()
	s.from = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.to = time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}

func (s *ReportingServiceTestSuite) TestMonthlyOrderStats_Success() {
	expected := []domain.MonthlyOrderStat{
		{Month: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), OrderCount: 4, TotalCost: decimal.NewFromInt(1200)},
		{Month: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), OrderCount: 1, TotalCost: decimal.NewFromInt(89)},
	}
	s.mockReportingRepo.On("MonthlyOrderStats", s.ctx, s.from, s.to).Return(expected, nil).Once()

	stats, err := s.service.MonthlyOrderStats(s.ctx, s.from, s.to)

	s.Require().NoError(err)
	s.Equal(expected, stats)
	s.mockReportingRepo.AssertExpectations(s.T())
}

func (s *ReportingServiceTestSuite) TestMonthlyOrderStats_InvertedRange() {
	stats, err := s.service.MonthlyOrderStats(s.ctx, s.to, s.from)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Nil(stats)
	s.mockReportingRepo.AssertNotCalled(s.T(), "MonthlyOrderStats", mock.Anything, mock.Anything, mock.Anything)
}

func (s *ReportingServiceTestSuite) TestMonthlyOrderStats_RepoError() {
	repoErr := errors.New("db unavailable")
	s.mockReportingRepo.On("MonthlyOrderStats", s.ctx, s.from, s.to).Return(nil, repoErr).Once()

	stats, err := s.service.MonthlyOrderStats(s.ctx, s.from, s.to)

	s.Require().Error(err)
	s.ErrorIs(err, repoErr)
	s.Nil(stats)
	s.mockReportingRepo.AssertExpectations(s.T())
}

func (s *ReportingServiceTestSuite) TestVendorBreakdown_Success() {
	expected := []domain.VendorStat{
		{Vendor: "Medline", OrderCount: 7},
		{Vendor: "McKesson", OrderCount: 2},
	}
	s.mockReportingRepo.On("VendorBreakdown", s.ctx, s.from, s.to).Return(expected, nil).Once()

	vendors, err := s.service.VendorBreakdown(s.ctx, s.from, s.to)

	s.Require().NoError(err)
	s.Equal(expected, vendors)
	s.mockReportingRepo.AssertExpectations(s.T())
}

func (s *ReportingServiceTestSuite) TestVendorBreakdown_InvertedRange() {
	vendors, err := s.service.VendorBreakdown(s.ctx, s.to, s.from)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Nil(vendors)
	s.mockReportingRepo.AssertNotCalled(s.T(), "VendorBreakdown", mock.Anything, mock.Anything, mock.Anything)
}

func (s *ReportingServiceTestSuite) TestEarliestPODate_Success() {
	earliest := time.Date(2019, 6, 12, 0, 0, 0, 0, time.UTC)
	s.mockOrderReader.On("EarliestPODate", s.ctx).Return(earliest, nil).Once()

	got, err := s.service.EarliestPODate(s.ctx)

	s.Require().NoError(err)
	s.Equal(earliest, got)
	s.mockOrderReader.AssertExpectations(s.T())
}

func (s *ReportingServiceTestSuite) TestEarliestPODate_NoOrders() {
	s.mockOrderReader.On("EarliestPODate", s.ctx).Return(time.Time{}, apperrors.ErrNotFound).Once()

	_, err := s.service.EarliestPODate(s.ctx)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.mockOrderReader.AssertExpectations(s.T())
}
