package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ritual-net/infernet-go/internal/config"
	"github.com/ritual-net/infernet-go/internal/service"
	"github.com/ritual-net/infernet-go/internal/store"
)

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP gateway",
		Long: `Run the HTTP gateway exposing encode, decode, and job endpoints.

Configuration is read from the YAML file given with --config, falling back
to built-in defaults. The server shuts down cleanly on SIGINT or SIGTERM.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(rootOpts, cmd, configPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to YAML config file")

	return cmd
}

func runServe(opts *RootOptions, cmd *cobra.Command, configPath string) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return WrapExitError(ExitCommandError, "load config", err)
		}
		cfg = *loaded
	}

	logger, err := newLogger(cfg.LogLevel, opts.Verbose)
	if err != nil {
		return WrapExitError(ExitCommandError, "init logger", err)
	}
	defer logger.Sync()

	st, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return WrapExitError(ExitCommandError, "open store", err)
	}
	defer st.Close()

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           service.New(cfg, logger, st).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("gateway listening",
			zap.String("addr", cfg.ListenAddr),
			zap.String("database", cfg.DatabasePath))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return WrapExitError(ExitCommandError, "serve", err)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return WrapExitError(ExitCommandError, "shutdown", err)
		}
	}
	return nil
}

// newLogger builds a production zap logger at the configured level.
// Verbose forces debug regardless of the configured level.
func newLogger(level string, verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		level = "debug"
	}
	parsed, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	cfg.Level = parsed
	return cfg.Build()
}
