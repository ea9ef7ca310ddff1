package models

import (
	"fmt"
	"strings"
	"time"

	derr "github.com/ozzus/flight-filters/internal/domain/errors"
)

const timeLayout = "2006-01-02T15:04"

type Segment struct {
	Origin      string
	Destination string
	DepartureAt time.Time
	ArrivalAt   time.Time
}

func NewSegment(origin, destination string, departureAt, arrivalAt time.Time) Segment {
	return Segment{
		Origin:      normalizeIATA(origin),
		Destination: normalizeIATA(destination),
		DepartureAt: departureAt,
		ArrivalAt:   arrivalAt,
	}
}

func (s Segment) Duration() time.Duration {
	return s.ArrivalAt.Sub(s.DepartureAt)
}

func (s Segment) String() string {
	dep := "[" + s.DepartureAt.Format(timeLayout) + "|" + s.ArrivalAt.Format(timeLayout) + "]"
	if s.Origin == "" && s.Destination == "" {
		return dep
	}
	return fmt.Sprintf("%s-%s%s", orDash(s.Origin), orDash(s.Destination), dep)
}

// Flight is an itinerary: one or more segments in travel order.
type Flight struct {
	ID       string
	Segments []Segment
}

func NewFlight(id string, segments ...Segment) Flight {
	cp := make([]Segment, len(segments))
	copy(cp, segments)
	return Flight{ID: strings.TrimSpace(id), Segments: cp}
}

// Departure returns the departure time of the first segment, zero for an empty flight.
func (f Flight) Departure() time.Time {
	if len(f.Segments) == 0 {
		return time.Time{}
	}
	return f.Segments[0].DepartureAt
}

func (f Flight) Arrival() time.Time {
	if len(f.Segments) == 0 {
		return time.Time{}
	}
	return f.Segments[len(f.Segments)-1].ArrivalAt
}

func (f Flight) Origin() string {
	if len(f.Segments) == 0 {
		return ""
	}
	return f.Segments[0].Origin
}

func (f Flight) Destination() string {
	if len(f.Segments) == 0 {
		return ""
	}
	return f.Segments[len(f.Segments)-1].Destination
}

// GroundTime sums the gaps between each arrival and the next departure.
// Overlapping segments contribute negative gaps.
func (f Flight) GroundTime() time.Duration {
	var total time.Duration
	for i := 0; i+1 < len(f.Segments); i++ {
		total += f.Segments[i+1].DepartureAt.Sub(f.Segments[i].ArrivalAt)
	}
	return total
}

// Validate checks that the flight can be evaluated by rules. index is only used
// to label the returned error.
func (f Flight) Validate(index int) error {
	if len(f.Segments) == 0 {
		return &derr.ValidationError{Index: index, FlightID: f.ID, Segment: -1, Err: derr.ErrNoSegments}
	}
	for i, s := range f.Segments {
		if s.DepartureAt.IsZero() || s.ArrivalAt.IsZero() {
			return &derr.ValidationError{Index: index, FlightID: f.ID, Segment: i, Err: derr.ErrZeroTime}
		}
	}
	return nil
}

func (f Flight) String() string {
	parts := make([]string, 0, len(f.Segments))
	for _, s := range f.Segments {
		parts = append(parts, s.String())
	}
	body := strings.Join(parts, " ")
	if f.ID == "" {
		return body
	}
	return f.ID + " " + body
}

func normalizeIATA(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func orDash(v string) string {
	if v == "" {
		return "---"
	}
	return v
}
