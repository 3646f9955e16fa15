package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"syscall"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	stdout "go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/dzoniops/room-booking-service/booking"
	"github.com/dzoniops/room-booking-service/config"
	"github.com/dzoniops/room-booking-service/db"
	"github.com/dzoniops/room-booking-service/locks"
	"github.com/dzoniops/room-booking-service/services"
	"github.com/dzoniops/room-booking-service/utils"
)

func main() {
	// Setup logging.
	logger := log.NewLogfmtLogger(os.Stderr)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	cfg, err := config.Load()
	if err != nil {
		level.Error(logger).Log("msg", "failed to load configuration", "err", err)
		os.Exit(1)
	}
	utils.InitValidator()

	gdb, err := db.Open(cfg.Database())
	if err != nil {
		level.Error(logger).Log("err", err)
		os.Exit(1)
	}
	if err := db.Migrate(gdb); err != nil {
		level.Error(logger).Log("err", err)
		os.Exit(1)
	}

	// Set up OTLP tracing (stdout for debug).
	exporter, err := stdout.New(stdout.WithPrettyPrint())
	if err != nil {
		level.Error(logger).Log("err", err)
		os.Exit(1)
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithBatcher(exporter),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		),
	)
	defer func() { _ = tp.Shutdown(context.Background()) }()

	reg := prometheus.NewRegistry()

	var locker booking.Locker = locks.NewKeyed()
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			level.Error(logger).Log("msg", "failed to connect to redis", "addr", cfg.RedisAddr, "err", err)
			os.Exit(1)
		}
		defer rdb.Close()
		locker = locks.NewRedis(rdb, cfg.LockTTL, logger)
		level.Info(logger).Log("msg", "using redis room locks", "addr", cfg.RedisAddr)
	}

	manager := booking.NewManager(booking.Options{
		Store:      db.NewStore(gdb),
		Settings:   db.NewSettingRepository(gdb),
		Roles:      db.NewUserRepository(gdb),
		Locker:     locker,
		Logger:     logger,
		Registerer: reg,
		LockWait:   cfg.LockWait,
	})
	grpcSrv := services.NewGRPCServer(logger, reg, &services.Server{Manager: manager})

	g := &run.Group{}
	g.Add(func() error {
		l, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Port))
		if err != nil {
			return err
		}
		level.Info(logger).Log("msg", "starting gRPC server", "addr", l.Addr().String())
		return grpcSrv.Serve(l)
	}, func(err error) {
		grpcSrv.GracefulStop()
		grpcSrv.Stop()
	})

	httpSrv := &http.Server{Addr: fmt.Sprintf(":%s", cfg.MetricsPort)}
	g.Add(func() error {
		m := http.NewServeMux()
		// Create HTTP handler for Prometheus metrics.
		m.Handle("/metrics", promhttp.HandlerFor(
			reg,
			promhttp.HandlerOpts{
				// Opt into OpenMetrics e.g. to support exemplars.
				EnableOpenMetrics: true,
			},
		))
		httpSrv.Handler = m
		level.Info(logger).Log("msg", "starting HTTP server", "addr", httpSrv.Addr)
		return httpSrv.ListenAndServe()
	}, func(error) {
		if err := httpSrv.Close(); err != nil {
			level.Error(logger).Log("msg", "failed to stop web server", "err", err)
		}
	})

	g.Add(run.SignalHandler(context.Background(), syscall.SIGINT, syscall.SIGTERM))

	if err := g.Run(); err != nil {
		level.Error(logger).Log("err", err)
		os.Exit(1)
	}
}
