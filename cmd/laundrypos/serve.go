package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/cobra"

	. "github.com/DrGermanius/LaundryPOS/internal"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE:  runServe,
	}
	cmd.Flags().StringVarP(&cfg.RunAddress, "address", "a", cfg.RunAddress, "host to listen on")
	cmd.Flags().BoolVar(&cfg.StrictBalance, "strict-balance", cfg.StrictBalance, "reject balance payments the balance does not fully cover")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	sugaredLogger, err := NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer sugaredLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repository, err := openRepository(ctx, cfg, sugaredLogger)
	if err != nil {
		return err
	}
	clock, err := newClock()
	if err != nil {
		return err
	}

	services := NewServices(repository, clock, cfg.StrictBalance, sugaredLogger)
	handlers := NewHandlers(services, NewSessions(cfg.JWTSecret), clock, sugaredLogger)

	app := fiber.New()
	app.Use(logger.New())
	handlers.Mount(app)

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(cfg.RunAddress)
	}()

	select {
	case err = <-errCh:
		return err
	case <-ctx.Done():
	}

	sugaredLogger.Info("Shutting down service...")
	return app.Shutdown()
}
