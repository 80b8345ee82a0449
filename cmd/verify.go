package cmd

import (
	"fmt"
	"os"

	"github.com/Rana718/seedgen/internal/export"
	"github.com/Rana718/seedgen/internal/model"
	"github.com/Rana718/seedgen/internal/verify"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const maxPrintedViolations = 20

var verifyCmd = &cobra.Command{
	Use:   "verify [dir]",
	Short: "Check a generated CSV dataset for integrity",
	Long: `
Read the CSV files in a directory and check headers, dense ids, unique
emails, foreign keys and timestamp ordering. When a manifest.yaml is present
its variant is used and the file checksums are compared as well.

Examples:
  seedgen verify
  seedgen verify ./data`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		dir := cfg.OutputDir
		if len(args) == 1 {
			dir = args[0]
		}

		variantName := cfg.Variant
		manifest, err := export.ReadManifest(dir)
		switch {
		case err == nil:
			variantName = manifest.Variant
		case !os.IsNotExist(err):
			return err
		}

		variant, err := model.VariantByName(variantName)
		if err != nil {
			return err
		}

		color.Cyan("🔍 Verifying %s dataset in %s...", variant.Name, dir)

		report, err := verify.Directory(dir, variant)
		if err != nil {
			return err
		}
		for _, table := range variant.Tables {
			fmt.Printf("  %-14s %d rows\n", table.Name, report.Rows[table.Name])
		}

		var mismatches []string
		if manifest != nil {
			mismatches = manifest.Check(dir)
			for _, m := range mismatches {
				color.Red("  ❌ %s", m)
			}
		}

		if !report.OK() {
			printViolations(report)
		}
		if !report.OK() || len(mismatches) > 0 {
			return fmt.Errorf("dataset in %s failed verification", dir)
		}

		color.Green("✅ Dataset is consistent")
		return nil
	},
}

func printViolations(report *verify.Report) {
	color.Red("❌ %d integrity violations", len(report.Violations))
	for i, v := range report.Violations {
		if i == maxPrintedViolations {
			color.Yellow("  ... and %d more", len(report.Violations)-maxPrintedViolations)
			break
		}
		fmt.Printf("  - %s\n", v)
	}
}
