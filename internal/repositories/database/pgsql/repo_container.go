package pgsql

import (
	portsrepo "github.com/imedlab/inventory-manager/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	itemRepo := newPgxItemRepository(dbPool)
	orderRepo := newPgxOrderRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)

	return &portsrepo.RepositoryProvider{
		ItemRepo:        itemRepo,
		OrderRepo:       orderRepo,
		TransactionRepo: transactionRepo,
		ReportingRepo:   reportingRepo,
	}
}
