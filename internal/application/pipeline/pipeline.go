// Package pipeline composes flight rules with logical AND over a list of
// flights. Flights are validated one by one before any rule sees them, so a
// malformed flight never affects its neighbours.
package pipeline

import (
	"reflect"

	"github.com/ozzus/flight-filters/internal/application/rules"
	"github.com/ozzus/flight-filters/internal/domain/models"
	"go.uber.org/multierr"
)

type Pipeline struct {
	rules []rules.Rule
}

// Rejection records a valid flight that failed a rule.
type Rejection struct {
	Index  int
	Flight models.Flight
	Rule   string
}

// Invalid records a flight refused by validation.
type Invalid struct {
	Index  int
	Flight models.Flight
	Err    error
}

type Result struct {
	Kept     []models.Flight
	Rejected []Rejection
	Invalid  []Invalid
}

// Err combines the validation failures of the evaluated flights, nil when all were valid.
func (r Result) Err() error {
	var err error
	for _, inv := range r.Invalid {
		err = multierr.Append(err, inv.Err)
	}
	return err
}

// New keeps the given rules in order. Nil rules, including typed nil
// pointers, are skipped.
func New(rs ...rules.Rule) *Pipeline {
	kept := make([]rules.Rule, 0, len(rs))
	for _, r := range rs {
		if !isNilRule(r) {
			kept = append(kept, r)
		}
	}
	return &Pipeline{rules: kept}
}

// Rules returns rule names in evaluation order.
func (p *Pipeline) Rules() []string {
	names := make([]string, 0, len(p.rules))
	for _, r := range p.rules {
		names = append(names, r.Name())
	}
	return names
}

// Filter returns the valid flights that satisfy every rule, in input order.
// Invalid flights are left out and reported through the returned error, which
// holds one *errors.ValidationError per invalid flight.
func (p *Pipeline) Filter(flights []models.Flight) ([]models.Flight, error) {
	res := p.Evaluate(flights)
	return res.Kept, res.Err()
}

func (p *Pipeline) Evaluate(flights []models.Flight) Result {
	res := Result{Kept: make([]models.Flight, 0, len(flights))}

	for i, f := range flights {
		if err := f.Validate(i); err != nil {
			res.Invalid = append(res.Invalid, Invalid{Index: i, Flight: f, Err: err})
			continue
		}

		if failed, ok := p.firstFailure(f); ok {
			res.Rejected = append(res.Rejected, Rejection{Index: i, Flight: f, Rule: failed.Name()})
			continue
		}

		res.Kept = append(res.Kept, f)
	}

	return res
}

func (p *Pipeline) firstFailure(f models.Flight) (rules.Rule, bool) {
	for _, r := range p.rules {
		if !r.Evaluate(f) {
			return r, true
		}
	}
	return nil, false
}

func isNilRule(r rules.Rule) bool {
	if r == nil {
		return true
	}
	v := reflect.ValueOf(r)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func:
		return v.IsNil()
	default:
		return false
	}
}
