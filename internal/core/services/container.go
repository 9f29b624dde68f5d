package services

import (
	"time"

	portsclients "github.com/imedlab/inventory-manager/internal/core/ports/clients"
	portsrepo "github.com/imedlab/inventory-manager/internal/core/ports/repositories"
	portssvc "github.com/imedlab/inventory-manager/internal/core/ports/services"
)

// NewContainer wires every service from the repository provider, the device
// registry client, and the business timezone used for workbook dates.
func NewContainer(repos *portsrepo.RepositoryProvider, registry portsclients.RegistryClient, loc *time.Location) *portssvc.ServiceContainer {
	itemSvc := NewItemService(repos.ItemRepo, registry)
	return &portssvc.ServiceContainer{
		Item:      itemSvc,
		Ledger:    NewLedgerService(repos.ItemRepo, repos.TransactionRepo),
		Ingest:    NewIngestService(itemSvc, repos.OrderRepo, loc),
		Order:     NewOrderService(repos.OrderRepo),
		Reporting: NewReportingService(repos.ReportingRepo, repos.OrderRepo),
	}
}
