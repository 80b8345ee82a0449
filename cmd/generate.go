package cmd

import (
	"context"
	"fmt"

	"github.com/Rana718/seedgen/internal/config"
	"github.com/Rana718/seedgen/internal/export"
	"github.com/Rana718/seedgen/internal/seeder"
	"github.com/Rana718/seedgen/internal/types"
	"github.com/Rana718/seedgen/internal/verify"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate the dataset and write it to disk",
	Long: `
Generate every table of the selected variant and write them to the output
directory, together with a manifest.yaml describing the run.
Supported formats: csv (default), json, sqlite

Examples:
  seedgen generate
  seedgen generate --seed 7 --out ./data
  seedgen generate --variant rental --format sqlite
  seedgen generate --users 50 --items 100 --reference-time now`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		quiet := isQuiet(cmd)

		seedCfg, err := cfg.ToSeedConfig(quiet)
		if err != nil {
			return err
		}
		s, tables, err := generateTables(seedCfg)
		if err != nil {
			return err
		}

		if check, _ := cmd.Flags().GetBool("verify"); check {
			report := verify.Tables(s.Variant(), tables)
			if !report.OK() {
				printViolations(report)
				return fmt.Errorf("generated dataset failed verification")
			}
			if !quiet {
				color.Green("  ✅ Integrity checks passed")
			}
		}

		var manifest *export.Manifest
		if noManifest, _ := cmd.Flags().GetBool("no-manifest"); !noManifest {
			manifest = export.NewManifest(s.Variant().Name, seedCfg.Seed, seedCfg.Now, cfg.Format)
		}

		exportPath, err := export.PerformExport(context.Background(), cfg.OutputDir, cfg.Format, s.Variant(), tables, manifest)
		if err != nil {
			return fmt.Errorf("failed to export dataset: %w", err)
		}

		if !quiet {
			fmt.Println()
			color.Green("🎉 Dataset written to %s (%s)", exportPath, cfg.Format)
		}
		return nil
	},
}

func generateTables(seedCfg seeder.SeedConfig) (*seeder.Seeder, []*types.Table, error) {
	s, err := seeder.New(seedCfg)
	if err != nil {
		return nil, nil, err
	}
	tables, err := s.Generate()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate %s dataset: %w", s.Variant().Name, err)
	}
	return s, tables, nil
}

func init() {
	generateCmd.Flags().StringP("out", "o", config.DefaultOutputDir, "output directory")
	generateCmd.Flags().String("format", "csv", "output format: csv, json or sqlite")
	generateCmd.Flags().Bool("no-manifest", false, "skip writing manifest.yaml")
	generateCmd.Flags().Bool("verify", false, "check referential integrity before writing")

	bindFlags(generateCmd, map[string]string{
		"out":    "output_dir",
		"format": "format",
	}, false)
}
