package main

import (
	"catalog/internal/api"
	"catalog/internal/api/handler/v1handler"
	"catalog/internal/authz"
	"catalog/internal/config"
	"catalog/internal/domains"
	"catalog/pkg/logger"
	"catalog/pkg/metrics"
	"catalog/pkg/storage/postgres"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func setupServer(cfg *config.Config, strg *postgres.PgSQL) (*http.Server, *sdkmetric.MeterProvider, error) {
	httpMetrics, err := metrics.NewHTTP(prometheus.DefaultRegisterer)
	if err != nil {
		return nil, nil, err //nolint: wrapcheck
	}
	mp, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
	if err != nil {
		return nil, nil, err //nolint: wrapcheck
	}
	otel.SetMeterProvider(mp)

	domainOpts := domains.NewOptions(cfg)
	domainOpts.MeterProvider = mp
	lister, err := domains.New(strg, authz.New(strg, authz.NewOptions(cfg)), domainOpts)
	if err != nil {
		return nil, nil, fmt.Errorf("could not create domain lister: %w", err)
	}

	server, err := api.NewServer(api.Deps{
		Deps: v1handler.Deps{
			Domains:  lister,
			Resolver: domains.NewBatchResolver(strg),
		},
		Gatherer: prometheus.DefaultGatherer,
		Metrics:  httpMetrics,
	}, api.NewOptions(cfg))
	if err != nil {
		return nil, nil, fmt.Errorf("could not create webserver: %w", err)
	}

	return server, mp, nil
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			server, mp, err := setupServer(cfg, strg)
			if err != nil {
				logger.Fatal(ctx, "could not setup webserver", zap.Error(err))
			}

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("could not start webserver: %w", err)
				}

				return nil
			})
			g.Go(func() error {
				// wait for interrupt or a failed listener
				<-gctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
				defer cancel()

				logger.Info(ctx, "stopping webserver...")
				if err := server.Shutdown(shutdownCtx); err != nil {
					logger.Error(ctx, "could not stop webserver", zap.Error(err))
				}
				if err := mp.Shutdown(shutdownCtx); err != nil {
					logger.Warn(ctx, "could not stop meter provider", zap.Error(err))
				}

				return nil
			})

			if err := g.Wait(); err != nil {
				logger.Error(ctx, "webserver stopped", zap.Error(err))
			}
		},
	}

	return cmd
}
