package repositories

// RepositoryProvider aggregates all repository facades so the service
// container can be wired from a single value.
type RepositoryProvider struct {
	ItemRepo        ItemRepositoryFacade
	OrderRepo       OrderRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
	ReportingRepo   ReportingRepository
}
