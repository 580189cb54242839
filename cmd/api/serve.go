package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"

	"simplecrm/cmd/internal/domain/sqlite"
	"simplecrm/cmd/internal/utils/uid"
)

const shutdownTimeout = 10 * time.Second

var serveSeed bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&serveSeed, "seed", false, "seed empty tables before serving")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	uid.Init(cfg.NodeID)

	db, err := sqlite.Init(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	defer sqlite.Close(db)

	if serveSeed {
		if err := sqlite.Seed(ctx, db); err != nil {
			return err
		}
	}

	app, err := newApp(ctx, cfg, db)
	if err != nil {
		return err
	}

	stopRefresher := startRefresher(ctx, app)
	defer stopRefresher()

	errCh := make(chan error, 1)
	go func() {
		log.Infof("listening on %s", cfg.HTTPAddr)
		if err := app.echo.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return app.echo.Shutdown(shutdownCtx)
}

// startRefresher runs the status refresher in the background. The returned
// func stops it and waits until a sweep in flight has finished, so it must
// run before the database is closed.
func startRefresher(ctx context.Context, app *app) func() {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		app.refresher.Start(ctx)
	}()

	return func() {
		cancel()
		<-done
	}
}
