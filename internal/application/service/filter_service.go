package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ozzus/flight-filters/internal/application/pipeline"
	"github.com/ozzus/flight-filters/internal/application/rules"
	"github.com/ozzus/flight-filters/internal/config"
	derr "github.com/ozzus/flight-filters/internal/domain/errors"
	"github.com/ozzus/flight-filters/internal/domain/models"
	"github.com/ozzus/flight-filters/internal/domain/ports"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

// Stage is the outcome of one rule applied on its own to every flight.
type Stage struct {
	Rule    string
	Flights []models.Flight
}

type Report struct {
	EvaluatedAt time.Time
	All         []models.Flight
	Stages      []Stage
	Combined    []models.Flight
	Invalid     []pipeline.Invalid
}

// Err returns the validation failures collected during the run.
func (r Report) Err() error {
	return pipeline.Result{Invalid: r.Invalid}.Err()
}

type FilterService struct {
	log    *zap.Logger
	source ports.FlightSource
	clock  ports.Clock
	rules  []config.RuleConfig
}

func NewFilterService(log *zap.Logger, source ports.FlightSource, clock ports.Clock, ruleConfigs []config.RuleConfig) *FilterService {
	if log == nil {
		log = zap.NewNop()
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if len(ruleConfigs) == 0 {
		ruleConfigs = config.DefaultRules()
	}

	return &FilterService{
		log:    log,
		source: source,
		clock:  clock,
		rules:  ruleConfigs,
	}
}

func (s *FilterService) Run(ctx context.Context) (Report, error) {
	const op = "service.Run"
	tracer := otel.Tracer("flight-filter/service")
	ctx, span := tracer.Start(ctx, op)
	defer span.End()

	now := s.clock.Now()
	logger := s.log.With(
		zap.String("op", op),
		zap.Time("evaluated_at", now),
	)

	chain, err := rules.Build(s.rules, now)
	if err != nil {
		logger.Error("failed to build rules", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "invalid rules")
		return Report{}, fmt.Errorf("%s: %w", op, err)
	}

	flights, err := s.source.GetFlights(ctx)
	if err != nil {
		logger.Error("failed to load flights", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "source failure")
		return Report{}, fmt.Errorf("%s: %w: %w", op, derr.ErrSourceUnavailable, err)
	}
	span.AddEvent("flights.loaded")

	report := Report{
		EvaluatedAt: now,
		All:         flights,
		Stages:      make([]Stage, 0, len(chain)),
	}

	for _, rule := range chain {
		stage := pipeline.New(rule).Evaluate(flights)
		report.Stages = append(report.Stages, Stage{Rule: rule.Name(), Flights: stage.Kept})
		logger.Debug("rule applied",
			zap.String("rule", rule.Name()),
			zap.Int("kept", len(stage.Kept)),
			zap.Int("rejected", len(stage.Rejected)),
		)
	}

	combined := pipeline.New(chain...).Evaluate(flights)
	report.Combined = combined.Kept
	report.Invalid = combined.Invalid

	for _, inv := range combined.Invalid {
		logger.Warn("invalid flight skipped", zap.Int("index", inv.Index), zap.Error(inv.Err))
	}

	span.SetAttributes(
		attribute.Int("flights.total", len(flights)),
		attribute.Int("flights.kept", len(combined.Kept)),
		attribute.Int("flights.rejected", len(combined.Rejected)),
		attribute.Int("flights.invalid", len(combined.Invalid)),
		attribute.StringSlice("filter.rules", pipeline.New(chain...).Rules()),
	)
	if len(combined.Invalid) > 0 {
		span.RecordError(report.Err())
		span.SetStatus(otelcodes.Error, "invalid flights")
	} else {
		span.SetStatus(otelcodes.Ok, "ok")
	}
	logger.Info("flights filtered",
		zap.Int("total", len(flights)),
		zap.Int("kept", len(combined.Kept)),
		zap.Int("invalid", len(combined.Invalid)),
	)
	return report, nil
}
