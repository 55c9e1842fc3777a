package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	. "github.com/DrGermanius/LaundryPOS/internal"
)

var cfg *Config

var rootCmd = &cobra.Command{
	Use:   "laundrypos",
	Short: "Laundry shop order intake, prepaid balances and daily closing",
	Long: `laundrypos runs the order and ledger engine of a laundry shop.

Storage is chosen from the configuration: DATABASE_URI selects Postgres,
otherwise GOOGLE_SHEET_URL selects a Google spreadsheet, otherwise the
data lives in memory for the lifetime of the process.`,
	SilenceUsage: true,
}

func main() {
	//decimals at json as numbers
	//https://github.com/shopspring/decimal/issues/21
	decimal.MarshalJSONWithoutQuotes = true

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env file: %v", err)
	}
	cfg = NewConfig()

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfg.DatabaseURI, "database", "d", cfg.DatabaseURI, "postgres connection string")
	pf.StringVar(&cfg.SheetURL, "sheet", cfg.SheetURL, "Google Sheets URL used when no database is configured")
	pf.StringVar(&cfg.CredentialsFile, "credentials", cfg.CredentialsFile, "service account JSON file for Google Sheets")
	pf.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	pf.StringVar(&cfg.Timezone, "tz", cfg.Timezone, "shop time zone, e.g. Asia/Taipei")
	pf.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "secret used to sign operator tokens")

	rootCmd.AddCommand(serveCmd(), migrateCmd(), closingCmd(), tokenCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
