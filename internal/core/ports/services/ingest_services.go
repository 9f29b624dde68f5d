package services

import (
	"context"
	"io"

	"github.com/imedlab/inventory-manager/internal/dto"
)

// IngestSvcFacade ingests purchase-order ledger workbooks.
type IngestSvcFacade interface {
	// ImportWorkbook parses an .xlsx upload, resolves or creates items and
	// appends one order per valid row. Rows are processed in source order;
	// a failed row is reported in the summary without aborting the batch.
	ImportWorkbook(ctx context.Context, r io.Reader, userID string) (*dto.ImportSummary, error)
}
