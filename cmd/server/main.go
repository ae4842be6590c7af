/*
main.go - HTTP server entry point

PURPOSE:
  Starts the payroll reporting API.
  Handles configuration, company loading, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load config from PAYROLL_* environment variables
  2. Apply command-line flag overrides
  3. Load the company (roster file or named scenario)
  4. Configure HTTP router
  5. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -port      HTTP server port (default: PAYROLL_SERVER_PORT or 8080)
  -scenario  Scenario to serve (default: PAYROLL_SCENARIO or "reference")
  -roster    Roster JSON file; takes precedence over -scenario

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (PAYROLL_SERVER_SHUTDOWN_TIMEOUT)
  3. Exit

SEE ALSO:
  - api/server.go: Router configuration
  - config/config.go: Environment variables
*/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/warp/payroll-engine/api"
	"github.com/warp/payroll-engine/config"
	"github.com/warp/payroll-engine/factory"
	"github.com/warp/payroll-engine/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Flags
	port := flag.Int("port", cfg.Server.Port, "HTTP server port")
	scenario := flag.String("scenario", cfg.Payroll.Scenario, "scenario to serve")
	rosterPath := flag.String("roster", cfg.Payroll.RosterPath, "roster JSON file")
	flag.Parse()

	logger := cfg.Logger()

	handler, err := newHandler(*scenario, *rosterPath, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load company")
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      api.NewRouter(handler, api.RouterOptions{AllowedOrigins: cfg.Server.AllowedOrigins}),
		ReadTimeout:  cfg.ReadTimeout(),
		WriteTimeout: cfg.WriteTimeout(),
		IdleTimeout:  cfg.IdleTimeout(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info().Int("port", *port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}
	logger.Info().Msg("server stopped")
}

func newHandler(scenario, rosterPath string, logger zerolog.Logger) (*api.Handler, error) {
	if rosterPath == "" {
		return api.NewScenarioHandler(scenario, logger)
	}

	data, err := os.ReadFile(rosterPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster: %w", err)
	}
	company, err := factory.NewRosterFactory().ParseRoster(data)
	if err != nil {
		return nil, err
	}
	return api.NewHandler(company, payroll.CurrentPeriod(), logger), nil
}
