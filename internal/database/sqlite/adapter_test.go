package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/Rana718/seedgen/internal/model"
	"github.com/Rana718/seedgen/internal/seeder"
	"github.com/Rana718/seedgen/internal/types"
)

func generate(t *testing.T, variant string) (model.Variant, []*types.Table) {
	t.Helper()
	s, err := seeder.New(seeder.SeedConfig{
		Variant: variant,
		Seed:    7,
		Now:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Counts: seeder.Counts{
			Users:            20,
			AddressesPerUser: 2,
			Items:            30,
			Transactions:     40,
			Reviews:          10,
			MaxRentalDays:    7,
		},
		Quiet: true,
	})
	if err != nil {
		t.Fatalf("seeder.New: %v", err)
	}
	tables, err := s.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return s.Variant(), tables
}

func connect(t *testing.T) *Adapter {
	t.Helper()
	ctx := context.Background()
	a := New()
	if err := a.Connect(ctx, "sqlite://:memory:"); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	t.Cleanup(func() { a.Close() })
	if err := a.Ping(ctx); err != nil {
		t.Fatalf("Ping: %v", err)
	}
	return a
}

func TestLoadHonoursForeignKeys(t *testing.T) {
	for _, name := range []string{model.VariantMarketplace, model.VariantRental} {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			variant, tables := generate(t, name)
			a := connect(t)

			if err := a.CreateTables(ctx, variant); err != nil {
				t.Fatalf("CreateTables: %v", err)
			}
			for _, table := range tables {
				n, err := a.Load(ctx, table, 16)
				if err != nil {
					t.Fatalf("Load %s: %v", table.Name(), err)
				}
				if n != table.Len() {
					t.Errorf("%s: loaded %d rows, want %d", table.Name(), n, table.Len())
				}
				count, err := a.Count(ctx, table.Name())
				if err != nil {
					t.Fatalf("Count: %v", err)
				}
				if count != table.Len() {
					t.Errorf("%s: table holds %d rows, want %d", table.Name(), count, table.Len())
				}
			}
		})
	}
}

func TestTruncateEmptiesTables(t *testing.T) {
	ctx := context.Background()
	variant, tables := generate(t, model.VariantMarketplace)
	a := connect(t)

	if err := a.CreateTables(ctx, variant); err != nil {
		t.Fatalf("CreateTables: %v", err)
	}
	for _, table := range tables {
		if _, err := a.Load(ctx, table, 0); err != nil {
			t.Fatalf("Load %s: %v", table.Name(), err)
		}
	}

	order, err := seeder.TruncationOrder(variant)
	if err != nil {
		t.Fatalf("TruncationOrder: %v", err)
	}
	if err := a.Truncate(ctx, order); err != nil {
		t.Fatalf("Truncate: %v", err)
	}
	for _, name := range order {
		count, err := a.Count(ctx, name)
		if err != nil {
			t.Fatalf("Count: %v", err)
		}
		if count != 0 {
			t.Errorf("%s still holds %d rows", name, count)
		}
	}
}

func TestCreateTablesIsIdempotent(t *testing.T) {
	ctx := context.Background()
	variant, _ := generate(t, model.VariantRental)
	a := connect(t)
	for i := 0; i < 2; i++ {
		if err := a.CreateTables(ctx, variant); err != nil {
			t.Fatalf("CreateTables pass %d: %v", i+1, err)
		}
	}
}
