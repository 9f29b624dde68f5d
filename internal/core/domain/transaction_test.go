package domain_test

import (
	"testing"

	"github.com/imedlab/inventory-manager/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestItemTransaction_Validate(t *testing.T) {
	tests := []struct {
		name    string
		txn     domain.ItemTransaction
		wantErr bool
	}{
		{
			name:    "stock-in with positive change",
			txn:     domain.ItemTransaction{TransactionType: domain.StockIn, Change: 5},
			wantErr: false,
		},
		{
			name:    "stock-out with negative change",
			txn:     domain.ItemTransaction{TransactionType: domain.StockOut, Change: -3},
			wantErr: false,
		},
		{
			name:    "stock-in with negative change",
			txn:     domain.ItemTransaction{TransactionType: domain.StockIn, Change: -5},
			wantErr: true,
		},
		{
			name:    "stock-in with zero change",
			txn:     domain.ItemTransaction{TransactionType: domain.StockIn, Change: 0},
			wantErr: true,
		},
		{
			name:    "stock-out with positive change",
			txn:     domain.ItemTransaction{TransactionType: domain.StockOut, Change: 3},
			wantErr: true,
		},
		{
			name:    "unknown transaction type",
			txn:     domain.ItemTransaction{TransactionType: "ADJUST", Change: 1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.txn.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSumChanges(t *testing.T) {
	tests := []struct {
		name string
		txns []domain.ItemTransaction
		want int64
	}{
		{
			name: "empty ledger sums to zero",
			txns: nil,
			want: 0,
		},
		{
			name: "two in then one out",
			txns: []domain.ItemTransaction{
				{TransactionType: domain.StockIn, Change: 5},
				{TransactionType: domain.StockIn, Change: 5},
				{TransactionType: domain.StockOut, Change: -3},
			},
			want: 7,
		},
		{
			name: "order independent",
			txns: []domain.ItemTransaction{
				{TransactionType: domain.StockOut, Change: -3},
				{TransactionType: domain.StockIn, Change: 5},
				{TransactionType: domain.StockIn, Change: 5},
			},
			want: 7,
		},
		{
			name: "can go negative",
			txns: []domain.ItemTransaction{
				{TransactionType: domain.StockOut, Change: -4},
			},
			want: -4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.SumChanges(tt.txns))
		})
	}
}

func TestItem_Validate(t *testing.T) {
	item := domain.Item{ItemNo: "08717648200274", Name: "Guidewire", ParLevel: 1}
	assert.NoError(t, item.Validate())

	noNumber := domain.Item{Name: "Guidewire"}
	assert.Error(t, noNumber.Validate())

	negativePar := domain.Item{ItemNo: "X", ParLevel: -1}
	assert.Error(t, negativePar.Validate())
}
