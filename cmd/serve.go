package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/vahanlens/vahanlens/internal/contract"
	"github.com/vahanlens/vahanlens/internal/httpapi"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard JSON API over HTTP",
	Long: `Start an HTTP server exposing the analytics engine as JSON endpoints
for dashboard front-ends: summary, YoY and QoQ growth, market share,
trends and available filter values.

Global filter flags set the defaults for every request; query
parameters on each endpoint override them per call.`,
	Example: `  vahanlens serve
  vahanlens serve --addr :9090
  vahanlens serve --store-backend sqlite --addr 127.0.0.1:8080`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		log := httpapi.NewLogger()
		defer func() { _ = log.Sync() }()

		srv := httpapi.NewServer(log, cfg, storeManager.GetRecordStore())

		errCh := make(chan error, 1)
		go func() { errCh <- srv.Start() }()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				contract.LogFatal("serving HTTP", err)
			}
		case sig := <-stop:
			log.Info("shutting down", zap.String("signal", sig.String()))
			ctx, cancel := context.WithTimeout(rootCtx, 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				contract.LogFatal("shutting down HTTP server", err)
			}
		}
	},
}
