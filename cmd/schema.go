package cmd

import (
	"fmt"
	"os"

	"github.com/Rana718/seedgen/internal/model"
	"github.com/Rana718/seedgen/internal/schema"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the CREATE TABLE script of a variant",
	Long: `
Print the DDL matching the generated files, parents first.
Supported dialects: postgresql (default), mysql, sqlite

Examples:
  seedgen schema
  seedgen schema --variant rental --dialect mysql
  seedgen schema --dialect sqlite -o schema.sql`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		variant, err := model.VariantByName(cfg.Variant)
		if err != nil {
			return err
		}

		dialectName, _ := cmd.Flags().GetString("dialect")
		dialect, err := schema.ParseDialect(dialectName)
		if err != nil {
			return err
		}

		script := schema.Script(variant, dialect)

		outFile, _ := cmd.Flags().GetString("output")
		if outFile == "" {
			fmt.Print(script)
			return nil
		}
		if err := os.WriteFile(outFile, []byte(script), 0644); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
		if !isQuiet(cmd) {
			color.Green("✅ Schema written to %s", outFile)
		}
		return nil
	},
}

func init() {
	schemaCmd.Flags().String("dialect", "postgresql", "SQL dialect: postgresql, mysql or sqlite")
	schemaCmd.Flags().StringP("output", "o", "", "write the script to a file instead of stdout")
}
