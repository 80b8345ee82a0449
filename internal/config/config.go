package config

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/Rana718/seedgen/internal/database"
	"github.com/Rana718/seedgen/internal/export"
	"github.com/Rana718/seedgen/internal/model"
	"github.com/Rana718/seedgen/internal/seeder"
	"github.com/spf13/viper"
)

const (
	FileName  = "seedgen.config.json"
	EnvPrefix = "SEEDGEN"

	DefaultOutputDir = "fake_data_csv"

	// DefaultReferenceTime anchors every generated timestamp so reruns are
	// byte-identical. "now" uses the wall clock instead.
	DefaultReferenceTime = "2025-01-01T00:00:00Z"
)

type Config struct {
	Variant          string   `json:"variant" mapstructure:"variant"`
	Seed             uint64   `json:"seed" mapstructure:"seed"`
	OutputDir        string   `json:"output_dir" mapstructure:"output_dir"`
	Format           string   `json:"format" mapstructure:"format"`
	ReferenceTime    string   `json:"reference_time" mapstructure:"reference_time"`
	MaxEmailAttempts int      `json:"max_email_attempts" mapstructure:"max_email_attempts"`
	Counts           Counts   `json:"counts" mapstructure:"counts"`
	Database         Database `json:"database" mapstructure:"database"`
}

type Counts struct {
	Users            int `json:"users" mapstructure:"users"`
	AddressesPerUser int `json:"addresses_per_user" mapstructure:"addresses_per_user"`
	Items            int `json:"items" mapstructure:"items"`
	Transactions     int `json:"transactions" mapstructure:"transactions"`
	Reviews          int `json:"reviews" mapstructure:"reviews"`
	MaxRentalDays    int `json:"max_rental_days" mapstructure:"max_rental_days"`
}

type Database struct {
	Provider  string `json:"provider" mapstructure:"provider"`
	URLEnv    string `json:"url_env" mapstructure:"url_env"`
	BatchSize int    `json:"batch_size" mapstructure:"batch_size"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Variant == "" {
		cfg.Variant = model.VariantMarketplace
	}
	if !viper.IsSet("seed") {
		cfg.Seed = seeder.DefaultSeed
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}
	if cfg.Format == "" {
		cfg.Format = export.FormatCSV
	}
	if cfg.ReferenceTime == "" {
		cfg.ReferenceTime = DefaultReferenceTime
	}

	// Numeric settings fall back only when unset; an explicit 0 is left for
	// Validate to reject.
	defaults := seeder.DefaultCounts()
	intDefaults := []struct {
		key   string
		value *int
		def   int
	}{
		{"max_email_attempts", &cfg.MaxEmailAttempts, seeder.DefaultMaxEmailAttempts},
		{"counts.users", &cfg.Counts.Users, defaults.Users},
		{"counts.addresses_per_user", &cfg.Counts.AddressesPerUser, defaults.AddressesPerUser},
		{"counts.items", &cfg.Counts.Items, defaults.Items},
		{"counts.transactions", &cfg.Counts.Transactions, defaults.Transactions},
		{"counts.reviews", &cfg.Counts.Reviews, defaults.Reviews},
		{"counts.max_rental_days", &cfg.Counts.MaxRentalDays, defaults.MaxRentalDays},
		{"database.batch_size", &cfg.Database.BatchSize, database.DefaultBatchSize},
	}
	for _, d := range intDefaults {
		if !viper.IsSet(d.key) {
			*d.value = d.def
		}
	}

	if cfg.Database.Provider == "" {
		cfg.Database.Provider = "postgresql"
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = "DATABASE_URL"
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if _, err := model.VariantByName(c.Variant); err != nil {
		return err
	}
	if !slices.Contains(export.Formats, c.Format) {
		return fmt.Errorf("unsupported format: %s. Supported formats: %v", c.Format, export.Formats)
	}
	if _, err := database.ProviderName(c.Database.Provider); err != nil {
		return err
	}
	if _, err := c.Now(); err != nil {
		return err
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir cannot be empty")
	}
	if c.MaxEmailAttempts < 1 {
		return fmt.Errorf("max_email_attempts must be at least 1")
	}
	if c.Database.BatchSize < 1 {
		return fmt.Errorf("database.batch_size must be at least 1")
	}

	counts := []struct {
		name  string
		value int
	}{
		{"users", c.Counts.Users},
		{"addresses_per_user", c.Counts.AddressesPerUser},
		{"items", c.Counts.Items},
		{"transactions", c.Counts.Transactions},
		{"reviews", c.Counts.Reviews},
		{"max_rental_days", c.Counts.MaxRentalDays},
	}
	for _, count := range counts {
		if count.value < 1 {
			return fmt.Errorf("counts.%s must be at least 1, got %d", count.name, count.value)
		}
	}
	return nil
}

// Now resolves the reference time that bounds every generated timestamp.
func (c *Config) Now() (time.Time, error) {
	if strings.EqualFold(c.ReferenceTime, "now") {
		return time.Now().UTC().Truncate(time.Second), nil
	}
	t, err := time.Parse(time.RFC3339, c.ReferenceTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid reference_time %q: %w", c.ReferenceTime, err)
	}
	return t.UTC(), nil
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}

func (c *Config) ToSeedConfig(quiet bool) (seeder.SeedConfig, error) {
	now, err := c.Now()
	if err != nil {
		return seeder.SeedConfig{}, err
	}
	return seeder.SeedConfig{
		Variant: c.Variant,
		Seed:    c.Seed,
		Now:     now,
		Counts: seeder.Counts{
			Users:            c.Counts.Users,
			AddressesPerUser: c.Counts.AddressesPerUser,
			Items:            c.Counts.Items,
			Transactions:     c.Counts.Transactions,
			Reviews:          c.Counts.Reviews,
			MaxRentalDays:    c.Counts.MaxRentalDays,
		},
		MaxEmailAttempts: c.MaxEmailAttempts,
		Quiet:            quiet,
	}, nil
}
