package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/imedlab/inventory-manager/internal/apperrors"
	"github.com/imedlab/inventory-manager/internal/core/domain"
	portssvc "github.com/imedlab/inventory-manager/internal/core/ports/services"
	"github.com/imedlab/inventory-manager/internal/core/services"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.ItemTransaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) ListTransactionsByItemID(ctx context.Context, itemID string, limit int, nextToken *string) ([]domain.ItemTransaction, *string, error) {
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

func (m *MockTransactionRepository) SumChangesByItemID(ctx context.Context, itemID string) (int64, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Test Suite ---
type LedgerServiceTestSuite struct {
	suite.Suite
	mockItemRepo *MockItemRepository
	mockTxnRepo  *MockTransactionRepository
	service      portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockItemRepo = new(MockItemRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.service = services.NewLedgerService(suite.mockItemRepo, suite.mockTxnRepo)
}

// --- Test Cases ---

func (suite *LedgerServiceTestSuite) TestRecordAdjustment_StockInPositiveChange() {
	ctx := context.Background()
	userID := uuid.NewString()
	item := &domain.Item{ItemID: uuid.NewString(), ItemNo: "CATH-100"}

	suite.mockItemRepo.On("FindItemByItemNo", ctx, "CATH-100").Return(item, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.ItemTransaction) bool {
		return t.ItemID == item.ItemID &&
			t.Change == 5 &&
			t.TransactionType == domain.StockIn &&
			t.Reason == "restock" &&
			t.CreatedBy == userID &&
			t.TransactionID != ""
	})).Return(nil).Once()

	txn, err := suite.service.RecordAdjustment(ctx, "CATH-100", domain.StockIn, 5, "restock", userID)

	suite.Require().NoError(err)
	suite.Equal(int64(5), txn.Change)
	suite.mockItemRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecordAdjustment_StockOutNegativeChange() {
	ctx := context.Background()
	item := &domain.Item{ItemID: uuid.NewString(), ItemNo: "CATH-100"}

	suite.mockItemRepo.On("FindItemByItemNo", ctx, "CATH-100").Return(item, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.ItemTransaction) bool {
		return t.Change == -3 && t.TransactionType == domain.StockOut
	})).Return(nil).Once()

	txn, err := suite.service.RecordAdjustment(ctx, "CATH-100", domain.StockOut, 3, "used in procedure", uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(int64(-3), txn.Change)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecordAdjustment_ZeroQuantityRejected() {
	ctx := context.Background()

	txn, err := suite.service.RecordAdjustment(ctx, "CATH-100", domain.StockIn, 0, "", uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(txn)
	suite.mockItemRepo.AssertNotCalled(suite.T(), "FindItemByItemNo", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestRecordAdjustment_UnknownItem() {
	ctx := context.Background()

	suite.mockItemRepo.On("FindItemByItemNo", ctx, "NOPE-1").Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.RecordAdjustment(ctx, "NOPE-1", domain.StockOut, 1, "", uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnknownItem)
	suite.Nil(txn)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestRecordAdjustment_UnknownDirection() {
	ctx := context.Background()
	item := &domain.Item{ItemID: uuid.NewString(), ItemNo: "CATH-100"}

	suite.mockItemRepo.On("FindItemByItemNo", ctx, "CATH-100").Return(item, nil).Once()

	txn, err := suite.service.RecordAdjustment(ctx, "CATH-100", domain.TransactionType("SIDEWAYS"), 1, "", uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(txn)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestQuantity_DerivedFromLedger() {
	ctx := context.Background()
	itemID := uuid.NewString()

	suite.mockTxnRepo.On("SumChangesByItemID", ctx, itemID).Return(int64(6), nil).Once()

	qty, err := suite.service.Quantity(ctx, itemID)

	suite.Require().NoError(err)
	suite.Equal(int64(6), qty)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestQuantity_NoTransactionsIsZero() {
	ctx := context.Background()
	itemID := uuid.NewString()

	suite.mockTxnRepo.On("SumChangesByItemID", ctx, itemID).Return(int64(0), nil).Once()

	qty, err := suite.service.Quantity(ctx, itemID)

	suite.Require().NoError(err)
	suite.Zero(qty)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestListTransactions_Success() {
	ctx := context.Background()
	itemID := uuid.NewString()
	txns := []domain.ItemTransaction{
		{TransactionID: uuid.NewString(), ItemID: itemID, Change: -2, TransactionType: domain.StockOut},
		{TransactionID: uuid.NewString(), ItemID: itemID, Change: 8, TransactionType: domain.StockIn},
	}

	suite.mockItemRepo.On("FindItemByID", ctx, itemID).Return(&domain.Item{ItemID: itemID}, nil).Once()
	suite.mockTxnRepo.On("ListTransactionsByItemID", ctx, itemID, 50, (*string)(nil)).Return(txns, nil, nil).Once()

	got, token, err := suite.service.ListTransactions(ctx, itemID, 0, nil)

	suite.Require().NoError(err)
	suite.Equal(txns, got)
	suite.Nil(token)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestListTransactions_ItemNotFound() {
	ctx := context.Background()
	itemID := uuid.NewString()

	suite.mockItemRepo.On("FindItemByID", ctx, itemID).Return(nil, apperrors.ErrNotFound).Once()

	got, _, err := suite.service.ListTransactions(ctx, itemID, 10, nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(got)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "ListTransactionsByItemID", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- Run Suite ---
func TestLedgerService(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
