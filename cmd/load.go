package cmd

import (
	"context"
	"fmt"

	"github.com/Rana718/seedgen/internal/database"
	"github.com/Rana718/seedgen/internal/utils"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Generate the dataset and insert it into a database",
	Long: `
Generate the dataset in memory and insert it into the database named by the
environment variable in database.url_env (DATABASE_URL by default). Tables are
loaded parents first so foreign keys always resolve.
Supported providers: postgresql, mysql, sqlite, mongodb

Examples:
  seedgen load --create
  seedgen load --truncate --provider mysql
  DATABASE_URL=sqlite://seed.db seedgen load --create --provider sqlite`,
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

		dbURL, err := cfg.GetDatabaseURL()
		if err != nil {
			return err
		}

		loader, err := database.NewLoader(cfg.Database.Provider)
		if err != nil {
			return err
		}

		ctx := context.Background()
		if err := loader.Connect(ctx, dbURL); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer loader.Close()

		create, _ := cmd.Flags().GetBool("create")
		truncate, _ := cmd.Flags().GetBool("truncate")
		if truncate {
			force, _ := cmd.Flags().GetBool("force")
			msg := fmt.Sprintf("Delete all rows from the %s tables before loading?", s.Variant().Name)
			if !utils.NewInputUtils().AskConfirmation(msg, force) {
				color.Yellow("Load cancelled")
				return nil
			}
		}
		if !quiet {
			color.Cyan("🚚 Loading into %s...", cfg.Database.Provider)
		}

		results, err := database.LoadDataset(ctx, loader, s.Variant(), tables, database.LoadOptions{
			CreateTables: create,
			Truncate:     truncate,
			BatchSize:    cfg.Database.BatchSize,
			Quiet:        quiet,
		})
		if err != nil {
			return err
		}

		if !quiet {
			total := 0
			for _, r := range results {
				total += r.Rows
			}
			fmt.Println()
			color.Green("🎉 Loaded %d rows into %d tables", total, len(results))
		}
		return nil
	},
}

func init() {
	loadCmd.Flags().Bool("create", false, "create missing tables first")
	loadCmd.Flags().Bool("truncate", false, "empty the tables before loading")
	loadCmd.Flags().String("provider", "postgresql", "database provider: postgresql, mysql, sqlite or mongodb")
	loadCmd.Flags().Int("batch-size", database.DefaultBatchSize, "rows per INSERT statement")

	bindFlags(loadCmd, map[string]string{
		"provider":   "database.provider",
		"batch-size": "database.batch_size",
	}, false)
}
