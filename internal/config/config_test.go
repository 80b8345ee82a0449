package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Variant != "marketplace" {
		t.Errorf("Expected variant to be 'marketplace', got '%s'", cfg.Variant)
	}
	if cfg.Seed != 42 {
		t.Errorf("Expected seed to be 42, got %d", cfg.Seed)
	}
	if cfg.OutputDir != DefaultOutputDir {
		t.Errorf("Expected output_dir to be '%s', got '%s'", DefaultOutputDir, cfg.OutputDir)
	}
	if cfg.Format != "csv" {
		t.Errorf("Expected format to be 'csv', got '%s'", cfg.Format)
	}
	if cfg.Counts.Users != 500 || cfg.Counts.Items != 1000 || cfg.Counts.Transactions != 2000 || cfg.Counts.Reviews != 1500 {
		t.Errorf("Unexpected default counts %+v", cfg.Counts)
	}
	if cfg.Counts.AddressesPerUser != 2 {
		t.Errorf("Expected addresses_per_user to be 2, got %d", cfg.Counts.AddressesPerUser)
	}
	if cfg.Database.URLEnv != "DATABASE_URL" {
		t.Errorf("Expected database url_env to be 'DATABASE_URL', got '%s'", cfg.Database.URLEnv)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	path := filepath.Join(t.TempDir(), FileName)
	content := `{
  "variant": "rental",
  "seed": 0,
  "format": "json",
  "counts": {"users": 25, "items": 40},
  "database": {"provider": "sqlite", "url_env": "SEED_DB"}
}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Variant != "rental" || cfg.Format != "json" {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Seed != 0 {
		t.Errorf("an explicit seed of 0 must be kept, got %d", cfg.Seed)
	}
	if cfg.Counts.Users != 25 || cfg.Counts.Items != 40 || cfg.Counts.Reviews != 1500 {
		t.Errorf("unexpected counts %+v", cfg.Counts)
	}

	t.Setenv("SEED_DB", "sqlite://seed.db")
	url, err := cfg.GetDatabaseURL()
	if err != nil {
		t.Fatalf("GetDatabaseURL: %v", err)
	}
	if url != "sqlite://seed.db" {
		t.Errorf("unexpected url %q", url)
	}
}

func TestValidateRejects(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"variant", func(c *Config) { c.Variant = "bazaar" }},
		{"format", func(c *Config) { c.Format = "xml" }},
		{"provider", func(c *Config) { c.Database.Provider = "oracle" }},
		{"reference time", func(c *Config) { c.ReferenceTime = "yesterday" }},
		{"users", func(c *Config) { c.Counts.Users = -1 }},
		{"zero users", func(c *Config) { c.Counts.Users = 0 }},
		{"email attempts", func(c *Config) { c.MaxEmailAttempts = -5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestLoadKeepsExplicitZero(t *testing.T) {
	keys := []string{
		"counts.users",
		"counts.addresses_per_user",
		"counts.items",
		"counts.transactions",
		"counts.reviews",
		"counts.max_rental_days",
		"max_email_attempts",
		"database.batch_size",
	}
	for _, key := range keys {
		t.Run(key, func(t *testing.T) {
			viper.Reset()
			defer viper.Reset()

			viper.Set(key, 0)
			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if err := cfg.Validate(); err == nil {
				t.Errorf("expected %s = 0 to be rejected", key)
			}
		})
	}
}

func TestLoadZeroUsersFromFile(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(`{"counts": {"users": 0}}`), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Counts.Users != 0 {
		t.Errorf("users = %d, want the explicit 0", cfg.Counts.Users)
	}
	if cfg.Counts.Items != 1000 {
		t.Errorf("unset items should default to 1000, got %d", cfg.Counts.Items)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("expected zero users to be rejected")
	}
}

func TestToSeedConfig(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	sc, err := cfg.ToSeedConfig(true)
	if err != nil {
		t.Fatalf("ToSeedConfig: %v", err)
	}
	want := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	if !sc.Now.Equal(want) {
		t.Errorf("Now = %v, want %v", sc.Now, want)
	}
	if !sc.Quiet || sc.Seed != 42 || sc.Counts.Users != 500 {
		t.Errorf("unexpected seed config %+v", sc)
	}

	cfg.ReferenceTime = "now"
	sc, err = cfg.ToSeedConfig(false)
	if err != nil {
		t.Fatalf("ToSeedConfig(now): %v", err)
	}
	if time.Since(sc.Now) > time.Minute {
		t.Errorf("expected wall clock time, got %v", sc.Now)
	}
}
