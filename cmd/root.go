package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/Rana718/seedgen/internal/config"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.0.0"
)

func showBanner() {
	greenColor := color.New(color.FgGreen, color.Bold)

	banner := []string{
		"╔══════════════════════════════════════════════╗",
		"║   ███████╗███████╗███████╗██████╗            ║",
		"║   ██╔════╝██╔════╝██╔════╝██╔══██╗           ║",
		"║   ███████╗█████╗  █████╗  ██║  ██║  gen      ║",
		"║   ╚════██║██╔══╝  ██╔══╝  ██║  ██║           ║",
		"║   ███████║███████╗███████╗██████╔╝           ║",
		"║   ╚══════╝╚══════╝╚══════╝╚═════╝            ║",
		"║                                              ║",
		"║     🌱 Deterministic relational datasets     ║",
		"╚══════════════════════════════════════════════╝",
	}

	for _, line := range banner {
		greenColor.Println(line)
	}

	fmt.Print("               ")
	color.New(color.FgCyan, color.Bold).Print("Version: ")
	color.New(color.FgYellow, color.Bold).Printf("%s\n", Version)
}

var rootCmd = &cobra.Command{
	Use:   "seedgen",
	Short: "Generate reproducible synthetic marketplace and rental datasets",
	Long: `
seedgen generates a synthetic relational dataset (users, addresses,
categories, items, transactions or rentals, reviews) from a seed and writes
one CSV file per entity. The same seed and reference time always produce
byte-identical files.

Variants:
- marketplace (u_*/a_*/c_*/i_*/t_*/r_* columns)
- rental (rentals with durations, statuses and decimal prices)

Targets:
- CSV (default), JSON or a SQLite file
- PostgreSQL, MySQL, SQLite and MongoDB via 'seedgen load'`,
	SilenceUsage:  true,
	SilenceErrors: true,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("seedgen version %s\n", Version)
			os.Exit(0)
		}

		if len(args) == 0 {
			showBanner()
			fmt.Println()
			cmd.Help()
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./"+config.FileName+")")
	flags.String("variant", "marketplace", "dataset variant: marketplace or rental")
	flags.Uint64("seed", 42, "random seed")
	flags.String("reference-time", config.DefaultReferenceTime, "upper bound for generated timestamps (RFC 3339, or \"now\")")
	flags.Int("users", 500, "number of users")
	flags.Int("addresses-per-user", 2, "maximum addresses per user")
	flags.Int("items", 1000, "number of items")
	flags.Int("transactions", 2000, "number of transactions (rentals in the rental variant)")
	flags.Int("reviews", 1500, "number of reviews")
	flags.Int("max-rental-days", 14, "longest rental in days")
	flags.Int("max-email-attempts", 100, "draws allowed per user to find an unused email")
	flags.BoolP("quiet", "q", false, "suppress progress output")
	flags.BoolP("force", "f", false, "Skip confirmations")

	bindFlags(rootCmd, map[string]string{
		"variant":            "variant",
		"seed":               "seed",
		"reference-time":     "reference_time",
		"users":              "counts.users",
		"addresses-per-user": "counts.addresses_per_user",
		"items":              "counts.items",
		"transactions":       "counts.transactions",
		"reviews":            "counts.reviews",
		"max-rental-days":    "counts.max_rental_days",
		"max-email-attempts": "max_email_attempts",
	}, true)

	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(verifyCmd)
}

type flagBinding struct {
	flags *pflag.FlagSet
	name  string
	key   string
}

var flagBindings []flagBinding

// bindFlags maps flag names to config keys. The bindings are applied on every
// config initialisation; flags only override the config file when given on
// the command line.
func bindFlags(cmd *cobra.Command, keys map[string]string, persistent bool) {
	flags := cmd.Flags()
	if persistent {
		flags = cmd.PersistentFlags()
	}
	for name, key := range keys {
		flagBindings = append(flagBindings, flagBinding{flags: flags, name: name, key: key})
	}
}

func applyBindings() {
	for _, b := range flagBindings {
		if err := viper.BindPFlag(b.key, b.flags.Lookup(b.name)); err != nil {
			color.Yellow("⚠️  Could not bind flag %s: %v", b.name, err)
		}
	}
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName(strings.TrimSuffix(config.FileName, ".json"))
	}

	applyBindings()
	viper.SetEnvPrefix(config.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
		color.Yellow("⚠️  Could not read config file %s: %v", cfgFile, err)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func isQuiet(cmd *cobra.Command) bool {
	quiet, _ := cmd.Flags().GetBool("quiet")
	return quiet
}
