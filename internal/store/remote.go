package store

import (
	"context"

	"editions-app/internal/domain/catalog"
)

// Remote is the hosted-backend collaborator the store persists through.
// Reads are bulk-only (the whole record set fits in one bounded request);
// writes are partial field sets against edition rows plus an append-only
// activity log.
type Remote interface {
	FetchEditions(ctx context.Context) ([]catalog.Edition, error)
	FetchPrints(ctx context.Context) ([]catalog.Print, error)
	FetchDistributors(ctx context.Context) ([]catalog.Distributor, error)

	UpdateEdition(ctx context.Context, id uint, fields map[string]any) error
	UpdateEditions(ctx context.Context, ids []uint, fields map[string]any) error

	CreatePrintWithEditions(ctx context.Context, print *catalog.Print, editions []catalog.Edition) error

	InsertActivity(ctx context.Context, entry *catalog.ActivityEntry) error
}
