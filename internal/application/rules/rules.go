// Package rules holds the flight filter predicates. Every rule is a pure
// function of the flight it is given plus the parameters fixed at construction.
package rules

import (
	"time"

	"github.com/ozzus/flight-filters/internal/domain/models"
)

// Rule reports whether a flight may stay in the result.
type Rule interface {
	Name() string
	Evaluate(flight models.Flight) bool
}

const (
	DefaultMaxGroundTime = 2 * time.Hour
	DefaultPrecision     = time.Hour
)

// DepartedRule drops flights whose first segment does not depart after Now.
type DepartedRule struct {
	Now time.Time
}

func NewDepartedRule(now time.Time) DepartedRule {
	return DepartedRule{Now: now}
}

func (DepartedRule) Name() string { return "departed" }

func (r DepartedRule) Evaluate(flight models.Flight) bool {
	if len(flight.Segments) == 0 {
		return false
	}
	return flight.Segments[0].DepartureAt.After(r.Now)
}

// ArrivalBeforeDepartureRule drops flights containing a segment that does not
// arrive strictly after it departs.
type ArrivalBeforeDepartureRule struct{}

func NewArrivalBeforeDepartureRule() ArrivalBeforeDepartureRule {
	return ArrivalBeforeDepartureRule{}
}

func (ArrivalBeforeDepartureRule) Name() string { return "arrival_before_departure" }

func (ArrivalBeforeDepartureRule) Evaluate(flight models.Flight) bool {
	for _, s := range flight.Segments {
		if !s.ArrivalAt.After(s.DepartureAt) {
			return false
		}
	}
	return true
}

// GroundTimeRule drops flights that spend more than Limit on the ground
// between segments. Each gap is truncated to Precision before it is added,
// and the flight fails as soon as the running total exceeds Limit.
type GroundTimeRule struct {
	Limit     time.Duration
	Precision time.Duration
}

func NewGroundTimeRule(limit, precision time.Duration) GroundTimeRule {
	if limit <= 0 {
		limit = DefaultMaxGroundTime
	}
	if precision <= 0 {
		precision = DefaultPrecision
	}
	return GroundTimeRule{Limit: limit, Precision: precision}
}

func (GroundTimeRule) Name() string { return "ground_time" }

func (r GroundTimeRule) Evaluate(flight models.Flight) bool {
	segments := flight.Segments
	if len(segments) <= 1 {
		return true
	}

	precision := r.Precision
	if precision <= 0 {
		precision = DefaultPrecision
	}

	var total time.Duration
	for i := 0; i+1 < len(segments); i++ {
		gap := segments[i+1].DepartureAt.Sub(segments[i].ArrivalAt)
		total += gap.Truncate(precision)
		if total > r.Limit {
			return false
		}
	}
	return true
}

// Default returns the standard rule chain evaluated at now.
func Default(now time.Time) []Rule {
	return []Rule{
		NewDepartedRule(now),
		NewArrivalBeforeDepartureRule(),
		NewGroundTimeRule(DefaultMaxGroundTime, DefaultPrecision),
	}
}
