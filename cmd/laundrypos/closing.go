package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	. "github.com/DrGermanius/LaundryPOS/internal"
	"github.com/DrGermanius/LaundryPOS/internal/model"
)

func closingCmd() *cobra.Command {
	var (
		date   string
		remote bool
		token  string
	)
	cmd := &cobra.Command{
		Use:   "closing",
		Short: "Print the end-of-day closing report",
		Example: `  # today's report straight from the store
  laundrypos closing

  # a past day, asked from a running server
  laundrypos closing --date 2024-03-01 --remote --token $TOKEN`,
		RunE: func(cmd *cobra.Command, args []string) error {
			clock, err := newClock()
			if err != nil {
				return err
			}
			day := clock.Now()
			if date != "" {
				day, err = time.ParseInLocation("2006-01-02", date, clock.Location)
				if err != nil {
					return fmt.Errorf("invalid date format, use YYYY-MM-DD: %w", err)
				}
			}

			var report model.ClosingReport
			if remote {
				report, err = NewReportClient(cfg.ServerURL, token).ClosingReport(day)
			} else {
				report, err = localClosing(cmd, clock, day)
			}
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "report date (YYYY-MM-DD, default: today)")
	cmd.Flags().BoolVar(&remote, "remote", false, "ask a running server instead of reading the store")
	cmd.Flags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "server base URL for --remote")
	cmd.Flags().StringVar(&token, "token", os.Getenv("LAUNDRYPOS_TOKEN"), "operator token for --remote")
	return cmd
}

func localClosing(cmd *cobra.Command, clock *Clock, day time.Time) (model.ClosingReport, error) {
	sugaredLogger, err := NewLogger(cfg.LogLevel)
	if err != nil {
		return model.ClosingReport{}, err
	}
	defer sugaredLogger.Sync()

	repository, err := openRepository(cmd.Context(), cfg, sugaredLogger)
	if err != nil {
		return model.ClosingReport{}, err
	}
	ledger := NewLedger(repository, clock, sugaredLogger)
	return NewClosingAggregator(repository, ledger, clock, sugaredLogger).ClosingReport(cmd.Context(), day)
}
