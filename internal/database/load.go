package database

import (
	"context"
	"fmt"

	"github.com/Rana718/seedgen/internal/database/common"
	"github.com/Rana718/seedgen/internal/model"
	"github.com/Rana718/seedgen/internal/seeder"
	"github.com/Rana718/seedgen/internal/types"
	"github.com/fatih/color"
)

const DefaultBatchSize = common.DefaultBatchSize

type LoadOptions struct {
	CreateTables bool
	Truncate     bool
	BatchSize    int
	Quiet        bool
}

type LoadResult struct {
	Table string
	Rows  int
}

// LoadDataset optionally prepares the schema, then inserts the tables in the
// order given. Tables must already be ordered parents first.
func LoadDataset(ctx context.Context, loader Loader, variant model.Variant, tables []*types.Table, opts LoadOptions) ([]LoadResult, error) {
	if err := loader.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if opts.CreateTables {
		if err := loader.CreateTables(ctx, variant); err != nil {
			return nil, fmt.Errorf("failed to create tables: %w", err)
		}
		if !opts.Quiet {
			color.Green("  ✅ Schema ready (%d tables)", len(variant.Tables))
		}
	}

	if opts.Truncate {
		order, err := seeder.TruncationOrder(variant)
		if err != nil {
			return nil, err
		}
		if err := loader.Truncate(ctx, order); err != nil {
			return nil, fmt.Errorf("failed to truncate tables: %w", err)
		}
		if !opts.Quiet {
			color.Yellow("  🧹 Truncated %d tables", len(order))
		}
	}

	results := make([]LoadResult, 0, len(tables))
	for _, table := range tables {
		n, err := loader.Load(ctx, table, opts.BatchSize)
		if err != nil {
			return results, err
		}
		results = append(results, LoadResult{Table: table.Name(), Rows: n})
		if !opts.Quiet {
			color.Green("  ✅ %s: %d rows", table.Name(), n)
		}
	}
	return results, nil
}
