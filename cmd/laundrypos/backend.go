package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	. "github.com/DrGermanius/LaundryPOS/internal"
	"github.com/DrGermanius/LaundryPOS/internal/tabular"
)

// openRepository picks the storage backend: Postgres, then Google Sheets, then memory.
func openRepository(ctx context.Context, cfg *Config, logger *zap.SugaredLogger) (IRepository, error) {
	switch {
	case cfg.DatabaseURI != "":
		logger.Infow("using postgres storage")
		return NewRepository(cfg.DatabaseURI, logger)
	case cfg.SheetURL != "":
		credentials, err := readCredentials(cfg.CredentialsFile)
		if err != nil {
			return nil, err
		}
		store, err := tabular.NewSheets(ctx, cfg.SheetURL, credentials, logger)
		if err != nil {
			return nil, err
		}
		logger.Infow("using google sheets storage", "sheet", cfg.SheetURL)
		return NewTabularRepository(store, logger), nil
	default:
		logger.Warn("no storage configured, data is kept in memory only")
		return NewTabularRepository(tabular.NewMemory(), logger), nil
	}
}

// readCredentials takes the service account JSON from a file or, failing that, inline
// from GOOGLE_CREDENTIALS.
func readCredentials(path string) ([]byte, error) {
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read credentials file: %w", err)
		}
		return b, nil
	}
	if inline := os.Getenv("GOOGLE_CREDENTIALS"); inline != "" {
		return []byte(inline), nil
	}
	return nil, fmt.Errorf("google sheets needs GOOGLE_APPLICATION_CREDENTIALS or GOOGLE_CREDENTIALS")
}

func newClock() (*Clock, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("invalid time zone %q: %w", cfg.Timezone, err)
	}
	return NewClock(loc), nil
}
