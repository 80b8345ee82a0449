package database

import (
	"context"

	"github.com/Rana718/seedgen/internal/model"
	"github.com/Rana718/seedgen/internal/types"
)

// Loader writes generated tables into a live database.
type Loader interface {
	Connect(ctx context.Context, url string) error
	Close() error
	Ping(ctx context.Context) error

	// CreateTables issues CREATE TABLE IF NOT EXISTS for every table of the variant.
	CreateTables(ctx context.Context, variant model.Variant) error
	// Truncate empties the named tables. Callers pass them children first.
	Truncate(ctx context.Context, tables []string) error
	// Load inserts every row of the table and returns the number written.
	Load(ctx context.Context, table *types.Table, batchSize int) (int, error)
}
