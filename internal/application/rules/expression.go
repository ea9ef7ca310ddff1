package rules

import (
	"fmt"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	derr "github.com/ozzus/flight-filters/internal/domain/errors"
	"github.com/ozzus/flight-filters/internal/domain/models"
)

// SegmentEnv is the view of a segment exposed to expressions.
type SegmentEnv struct {
	Origin      string        `expr:"origin"`
	Destination string        `expr:"destination"`
	DepartureAt time.Time     `expr:"departure"`
	ArrivalAt   time.Time     `expr:"arrival"`
	Duration    time.Duration `expr:"duration"`
}

// FlightEnv is the environment an expression is compiled and run against.
type FlightEnv struct {
	ID           string        `expr:"id"`
	Segments     []SegmentEnv  `expr:"segments"`
	SegmentCount int           `expr:"segment_count"`
	Departure    time.Time     `expr:"departure"`
	Arrival      time.Time     `expr:"arrival"`
	GroundTime   time.Duration `expr:"ground_time"`
	Origin       string        `expr:"origin"`
	Destination  string        `expr:"destination"`
	Now          time.Time     `expr:"now"`
}

func newFlightEnv(flight models.Flight, now time.Time) FlightEnv {
	segments := make([]SegmentEnv, 0, len(flight.Segments))
	for _, s := range flight.Segments {
		segments = append(segments, SegmentEnv{
			Origin:      s.Origin,
			Destination: s.Destination,
			DepartureAt: s.DepartureAt,
			ArrivalAt:   s.ArrivalAt,
			Duration:    s.Duration(),
		})
	}

	return FlightEnv{
		ID:           flight.ID,
		Segments:     segments,
		SegmentCount: len(segments),
		Departure:    flight.Departure(),
		Arrival:      flight.Arrival(),
		GroundTime:   flight.GroundTime(),
		Origin:       flight.Origin(),
		Destination:  flight.Destination(),
		Now:          now,
	}
}

// ExpressionRule keeps flights for which a boolean expr program returns true.
// Programs that fail at run time reject the flight.
type ExpressionRule struct {
	name    string
	source  string
	now     time.Time
	program *vm.Program
}

func NewExpressionRule(name, source string, now time.Time) (*ExpressionRule, error) {
	const op = "rules.NewExpressionRule"

	source = strings.TrimSpace(source)
	if source == "" {
		return nil, fmt.Errorf("%s: empty expression: %w", op, derr.ErrInvalidRuleConfig)
	}

	program, err := expr.Compile(source, expr.Env(FlightEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%s: compile %q: %v: %w", op, source, err, derr.ErrInvalidRuleConfig)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = "expression"
	}

	return &ExpressionRule{
		name:    name,
		source:  source,
		now:     now,
		program: program,
	}, nil
}

func (r *ExpressionRule) Name() string { return r.name }

func (r *ExpressionRule) Source() string { return r.source }

func (r *ExpressionRule) Evaluate(flight models.Flight) bool {
	out, err := expr.Run(r.program, newFlightEnv(flight, r.now))
	if err != nil {
		return false
	}
	ok, _ := out.(bool)
	return ok
}
