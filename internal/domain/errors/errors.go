package errors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFlight      = errors.New("invalid flight")
	ErrNoSegments         = errors.New("flight has no segments")
	ErrZeroTime           = errors.New("segment time is not set")
	ErrUnknownRule        = errors.New("unknown rule type")
	ErrInvalidRuleConfig  = errors.New("invalid rule config")
	ErrSourceUnavailable  = errors.New("flight source unavailable")
	ErrInvalidFixtureTime = errors.New("invalid fixture time")
)

// ValidationError describes why a single flight was refused before rule evaluation.
// Segment is -1 when the failure concerns the flight as a whole.
type ValidationError struct {
	Index    int
	FlightID string
	Segment  int
	Err      error
}

func (e *ValidationError) Error() string {
	subject := fmt.Sprintf("flight[%d]", e.Index)
	if e.FlightID != "" {
		subject = fmt.Sprintf("flight[%d] %q", e.Index, e.FlightID)
	}
	if e.Segment >= 0 {
		return fmt.Sprintf("%s segment[%d]: %v", subject, e.Segment, e.Err)
	}
	return fmt.Sprintf("%s: %v", subject, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidFlight
}
