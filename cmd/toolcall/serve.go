package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/skosovsky/toolcall/adapters/httpapi"
	"github.com/skosovsky/toolcall/ext/toolcallprom"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve GET /tools, POST /call and /metrics over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			srv, err := a.httpServer(prometheus.NewRegistry())
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.run(ctx, srv)
		},
	}
	cmd.Flags().String("addr", "", "listen address (overrides http.addr)")
	if err := a.v.BindPFlag("http.addr", cmd.Flags().Lookup("addr")); err != nil {
		panic(err)
	}
	return cmd
}

// httpServer wires the tool API and the metrics endpoint for reg.
func (a *app) httpServer(reg *prometheus.Registry) (*http.Server, error) {
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := toolcallprom.New(reg)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}
	h, err := a.handler(metrics.Middleware())
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	mux.Handle("/", httpapi.NewHandler(h, a.logger))
	return &http.Server{
		Addr:              a.cfg.HTTP.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

// run serves until ctx is done, then shuts down gracefully.
func (a *app) run(ctx context.Context, srv *http.Server) error {
	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Info("listening", "addr", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		a.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.logger.Warn("graceful shutdown did not complete", "error", err)
			return srv.Close()
		}
		if err := <-serverErrors; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
