package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gatherly/server/internal/api"
	"github.com/gatherly/server/internal/bus"
	"github.com/gatherly/server/internal/config"
	"github.com/gatherly/server/internal/domain/events"
	"github.com/gatherly/server/internal/domain/locations"
	"github.com/gatherly/server/internal/domain/participants"
	"github.com/gatherly/server/internal/domain/users"
	"github.com/gatherly/server/internal/graph"
	"github.com/gatherly/server/internal/metrics"
	"github.com/gatherly/server/internal/storage/jsonfile"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	// Server flags (override config/env)
	serverHost string
	serverPort int
	storePath  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the GraphQL HTTP server",
	Long: `Start the HTTP server and begin accepting GraphQL requests.

The server will:
- Load configuration from environment variables (or --config file if provided)
- Open the JSON store, creating it if the file does not exist yet
- Serve queries and mutations on /graphql and subscriptions on /graphql/stream
- Handle graceful shutdown on SIGINT/SIGTERM

Examples:
  # Start with default configuration (from env vars)
  server serve

  # Start on a specific host and port
  server serve --host 127.0.0.1 --port 9090

  # Start with a custom store file
  server serve --store /var/lib/gatherly/data.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host address (default: 0.0.0.0)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (default: 4000)")
	serveCmd.Flags().StringVar(&storePath, "store", "", "JSON store file path (default: data.json)")
}

func runServer() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if serverHost != "" {
		cfg.Server.Host = serverHost
	}
	if serverPort != 0 {
		cfg.Server.Port = serverPort
	}
	if storePath != "" {
		cfg.Store.Path = storePath
	}

	logger := config.NewLogger(cfg.Logging)
	logger.Info().Msg("starting gatherly server")

	metrics.Init(Version, GitCommit, BuildDate)
	logger.Info().Str("version", Version).Msg("metrics initialized")

	store, err := openStore(cfg.Store.Path, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	logger.Info().Str("path", store.Path()).Msg("store ready")

	b := bus.New(logger, bus.WithBufferSize(cfg.Bus.BufferSize))

	resolver := graph.NewResolver(
		users.NewService(store.Users(), b, logger),
		events.NewService(store.Events(), b, logger),
		locations.NewService(store.Locations(), b, logger),
		participants.NewService(store.Participants(), b, logger),
		b,
		logger,
	)

	ready := func() error {
		_, err := os.Stat(store.Path())
		return err
	}

	router, err := api.NewRouter(cfg, resolver, ready, logger)
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	return serveUntilSignal(server, logger)
}

// openStore opens the JSON document, creating a fresh one on first run.
func openStore(path string, logger zerolog.Logger) (*jsonfile.Store, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		logger.Info().Str("path", path).Msg("store file missing, creating")
		return jsonfile.Create(path, logger)
	}
	return jsonfile.Open(path, logger)
}

func serveUntilSignal(server *http.Server, logger zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info().Str("addr", server.Addr).Msg("listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("server error")
		return err
	}
	logger.Info().Msg("server stopped")
	return nil
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}

	// Override logging from flags if provided
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFormat != "" {
		cfg.Logging.Format = logFormat
	}

	return cfg, nil
}
