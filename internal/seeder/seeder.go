package seeder

import (
	"fmt"
	"time"

	"github.com/Rana718/seedgen/internal/model"
	"github.com/Rana718/seedgen/internal/types"
	"github.com/fatih/color"
)

// Seeder runs the generators of one variant in dependency order.
type Seeder struct {
	config  SeedConfig
	variant model.Variant
	source  *Source
}

func New(cfg SeedConfig) (*Seeder, error) {
	variant, err := model.VariantByName(cfg.Variant)
	if err != nil {
		return nil, err
	}
	if cfg.Now.IsZero() {
		return nil, fmt.Errorf("reference time is required")
	}
	if cfg.MaxEmailAttempts <= 0 {
		cfg.MaxEmailAttempts = DefaultMaxEmailAttempts
	}
	cfg.Now = cfg.Now.UTC().Truncate(time.Second)

	if _, err := InsertionOrder(variant); err != nil {
		return nil, fmt.Errorf("invalid %s schema: %w", variant.Name, err)
	}

	return &Seeder{
		config:  cfg,
		variant: variant,
		source:  NewSource(cfg.Seed),
	}, nil
}

func (s *Seeder) Variant() model.Variant {
	return s.variant
}

func (s *Seeder) Config() SeedConfig {
	return s.config
}

// Generate produces every table of the variant, in generation order.
func (s *Seeder) Generate() ([]*types.Table, error) {
	if !s.config.Quiet {
		color.Cyan("🌱 Generating %s dataset (seed %d)...", s.variant.Name, s.config.Seed)
	}

	var (
		tables []*types.Table
		err    error
	)
	switch s.variant.Name {
	case model.VariantRental:
		tables, err = s.generateRental()
	default:
		tables, err = s.generateMarketplace()
	}
	if err != nil {
		return nil, err
	}

	if !s.config.Quiet {
		for _, t := range tables {
			color.Green("  ✅ %s (%d records)", t.Name(), t.Len())
		}
	}
	return tables, nil
}

func (s *Seeder) generateMarketplace() ([]*types.Table, error) {
	c := s.config.Counts
	now := s.config.Now

	users, err := GenerateUsers(s.source.Derive("users"), c.Users, s.config.MaxEmailAttempts)
	if err != nil {
		return nil, err
	}
	addresses, err := GenerateAddresses(s.source.Derive("addresses"), users, c.AddressesPerUser)
	if err != nil {
		return nil, err
	}
	categories := GenerateCategories()
	items, err := GenerateItems(s.source.Derive("items"), categories, c.Items, now)
	if err != nil {
		return nil, err
	}
	transactions, err := GenerateTransactions(s.source.Derive("transactions"), users, items, c.Transactions, now)
	if err != nil {
		return nil, err
	}
	reviews, err := GenerateReviews(s.source.Derive("reviews"), users, c.Reviews)
	if err != nil {
		return nil, err
	}

	return collect(
		build(model.UsersTable, users),
		build(model.AddressesTable, addresses),
		build(model.CategoriesTable, categories),
		build(model.ItemsTable, items),
		build(model.TransactionsTable, transactions),
		build(model.ReviewsTable, reviews),
	)
}

func (s *Seeder) generateRental() ([]*types.Table, error) {
	c := s.config.Counts
	now := s.config.Now

	users, err := GenerateRentalUsers(s.source.Derive("users"), c.Users, s.config.MaxEmailAttempts, now)
	if err != nil {
		return nil, err
	}
	addresses, err := GenerateRentalAddresses(s.source.Derive("addresses"), users, c.AddressesPerUser)
	if err != nil {
		return nil, err
	}
	categories := GenerateCategories()
	items, err := GenerateRentalItems(s.source.Derive("items"), users, categories, c.Items, now)
	if err != nil {
		return nil, err
	}
	rentals, err := GenerateRentals(s.source.Derive("rentals"), users, items, c.Transactions, c.MaxRentalDays, now)
	if err != nil {
		return nil, err
	}
	reviews, err := GenerateRentalReviews(s.source.Derive("reviews"), rentals, c.Reviews, now)
	if err != nil {
		return nil, err
	}

	return collect(
		build(model.RentalUsersTable, users),
		build(model.RentalAddressesTable, addresses),
		build(model.RentalCategoriesTable, categories),
		build(model.RentalItemsTable, items),
		build(model.RentalsTable, rentals),
		build(model.RentalReviewsTable, reviews),
	)
}

type built struct {
	table *types.Table
	err   error
}

func build[R types.Record](schema types.SchemaTable, records []R) built {
	t, err := types.BuildTable(schema, records)
	return built{table: t, err: err}
}

func collect(results ...built) ([]*types.Table, error) {
	tables := make([]*types.Table, 0, len(results))
	for _, r := range results {
		if r.err != nil {
			return nil, r.err
		}
		tables = append(tables, r.table)
	}
	return tables, nil
}
