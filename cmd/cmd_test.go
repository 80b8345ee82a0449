package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Rana718/seedgen/internal/export"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func run(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd)
		viper.Reset()
	})
	return rootCmd.Execute()
}

// resetFlags restores defaults since cobra keeps flag values between runs.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func TestGenerateThenVerify(t *testing.T) {
	dir := t.TempDir()
	err := run(t, "generate", "-q", "--verify",
		"--out", dir, "--variant", "rental", "--seed", "5",
		"--users", "12", "--items", "20", "--transactions", "40", "--reviews", "6")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	for _, name := range []string{"users.csv", "addresses.csv", "categories.csv", "items.csv", "rentals.csv", "reviews.csv", export.ManifestFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}

	m, err := export.ReadManifest(dir)
	if err != nil {
		t.Fatalf("ReadManifest: %v", err)
	}
	if m.Variant != "rental" || m.Seed != 5 {
		t.Errorf("unexpected manifest %+v", m)
	}

	if err := run(t, "verify", dir); err != nil {
		t.Errorf("verify: %v", err)
	}
}

func TestVerifyFailsOnTamperedFile(t *testing.T) {
	dir := t.TempDir()
	if err := run(t, "generate", "-q", "--out", dir, "--users", "10", "--items", "10", "--transactions", "10", "--reviews", "5"); err != nil {
		t.Fatalf("generate: %v", err)
	}

	path := filepath.Join(dir, "reviews.csv")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if err := os.WriteFile(path, append(data, []byte("6,x,3,999\n")...), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := run(t, "verify", dir); err == nil {
		t.Error("expected verification to fail")
	}
}

func TestGenerateRejectsZeroUsers(t *testing.T) {
	dir := t.TempDir()
	if err := run(t, "generate", "-q", "--out", dir, "--users", "0"); err == nil {
		t.Fatal("expected --users 0 to fail")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no files, got %d", len(entries))
	}
}

func TestSchemaToFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "schema.sql")
	if err := run(t, "schema", "-q", "--dialect", "sqlite", "-o", out); err != nil {
		t.Fatalf("schema: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(data) == 0 {
		t.Error("schema file is empty")
	}
}

func TestLoadIntoSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "seed.db")
	t.Setenv("SEEDGEN_TEST_DB", "sqlite://"+dbPath)

	cfgPath := filepath.Join(t.TempDir(), "seedgen.config.json")
	if err := os.WriteFile(cfgPath, []byte(`{"database": {"url_env": "SEEDGEN_TEST_DB"}}`), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	err := run(t, "load", "-q", "--force", "--config", cfgPath, "--provider", "sqlite", "--create", "--truncate",
		"--users", "8", "--items", "8", "--transactions", "8", "--reviews", "4")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("expected database file: %v", err)
	}
}
