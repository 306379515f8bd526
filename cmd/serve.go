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

	"github.com/kastheco/orgtheme/config/themestore"
	"github.com/kastheco/orgtheme/internal/metrics"
	"github.com/kastheco/orgtheme/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewServeCmd returns the `orgtheme serve` cobra command.
// It starts an HTTP server backed by a SQLite theme store.
func NewServeCmd(load configLoader) *cobra.Command {
	var (
		port int
		db   string
		bind string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "start the theme HTTP server",
		Long:  "Start an HTTP server that stores organization themes in SQLite and serves their derived colors.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}
			if cmd.Flags().Changed("db") {
				cfg.Server.DB = db
			}
			if cmd.Flags().Changed("bind") {
				cfg.Server.Bind = bind
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			logger, err := log.New(cfg.Log.Level, cfg.Log.Development)
			if err != nil {
				return err
			}
			defer logger.Sync()

			store, err := themestore.NewSQLiteStore(cfg.Server.DB)
			if err != nil {
				return fmt.Errorf("open theme store: %w", err)
			}
			defer store.Close()

			handler := themestore.NewHandler(store,
				themestore.WithLogger(logger),
				themestore.WithMetrics(metrics.New()),
				themestore.WithDefaultTheme(cfg.DefaultTheme()),
			)
			addr := fmt.Sprintf("%s:%d", cfg.Server.Bind, cfg.Server.Port)

			srv := &http.Server{
				Addr:              addr,
				Handler:           handler,
				ReadHeaderTimeout: 10 * time.Second,
			}

			logger.Info("theme server listening",
				zap.String("addr", "http://"+addr),
				zap.String("db", cfg.Server.DB),
				zap.String("default_accent", cfg.Theme.Accent),
			)

			// Graceful shutdown on SIGINT/SIGTERM.
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				logger.Info("shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			}
		},
	}

	cmd.Flags().IntVar(&port, "port", 7433, "port to listen on")
	cmd.Flags().StringVar(&db, "db", "", "path to the SQLite database file (default from config)")
	cmd.Flags().StringVar(&bind, "bind", "0.0.0.0", "address to bind to")

	return cmd
}
