package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/ozzus/flight-filters/internal/application/service"
	"github.com/ozzus/flight-filters/internal/config"
	"github.com/ozzus/flight-filters/internal/domain/ports"
	"github.com/ozzus/flight-filters/internal/infrastructures/fixtures"
	"github.com/ozzus/flight-filters/internal/infrastructures/tracing"
	"github.com/ozzus/flight-filters/internal/transport/console"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	os.Exit(run())
}

func run() int {
	_ = godotenv.Load(".env")

	cfg := config.MustLoad()
	log := setupLogger(cfg.Log.Level)
	defer func() {
		_ = log.Sync()
	}()

	tp, err := tracing.InitTracer("flight-filter", cfg.Jaeger)
	if err != nil {
		log.Error("failed to init tracer", zap.Error(err))
		return 1
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Warn("failed to shutdown tracer provider", zap.Error(err))
		}
	}()

	clock, err := setupClock(cfg.Filters)
	if err != nil {
		log.Error("invalid evaluation time", zap.Error(err))
		return 1
	}

	source := setupSource(log, cfg.Fixtures, clock)
	filterService := service.NewFilterService(log, source, clock, cfg.Filters.RuleChain())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := filterService.Run(ctx)
	if err != nil {
		log.Error("filtering failed", zap.Error(err))
		return 1
	}

	console.NewPrinter(os.Stdout, !cfg.NoColor).PrintReport(report)

	if report.Err() != nil {
		return 1
	}
	return 0
}

func setupClock(cfg config.FiltersConfig) (ports.Clock, error) {
	now, pinned, err := cfg.EvaluationTime()
	if err != nil {
		return nil, err
	}
	if pinned {
		return ports.FixedClock(now), nil
	}
	return ports.SystemClock{}, nil
}

func setupSource(log *zap.Logger, cfg config.FixturesConfig, clock ports.Clock) ports.FlightSource {
	path := strings.TrimSpace(cfg.Path)
	if path == "" {
		log.Info("using built-in sample flights")
		return fixtures.NewBuilderSource(clock)
	}
	log.Info("loading flights from file", zap.String("path", path))
	return fixtures.NewFileSource(path)
}

func setupLogger(level string) *zap.Logger {
	zapLevel := parseLogLevel(level)
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	log, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	return log
}

func parseLogLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
