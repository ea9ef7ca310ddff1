package models

import (
	"errors"
	"testing"
	"time"

	derr "github.com/ozzus/flight-filters/internal/domain/errors"
)

var base = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func TestFlight_GroundTime(t *testing.T) {
	f := NewFlight("",
		NewSegment("mow", "led", base, base.Add(time.Hour)),
		NewSegment("LED", "KGD", base.Add(3*time.Hour), base.Add(4*time.Hour)),
		NewSegment("KGD", "MOW", base.Add(4*time.Hour+30*time.Minute), base.Add(6*time.Hour)),
	)

	if got := f.GroundTime(); got != 2*time.Hour+30*time.Minute {
		t.Fatalf("unexpected ground time: %s", got)
	}
	if f.Origin() != "MOW" || f.Destination() != "MOW" {
		t.Fatalf("unexpected route %s-%s", f.Origin(), f.Destination())
	}
	if !f.Departure().Equal(base) || !f.Arrival().Equal(base.Add(6*time.Hour)) {
		t.Fatalf("unexpected bounds %s %s", f.Departure(), f.Arrival())
	}
}

func TestFlight_SingleSegmentHasNoGroundTime(t *testing.T) {
	f := NewFlight("", NewSegment("", "", base, base.Add(time.Hour)))
	if got := f.GroundTime(); got != 0 {
		t.Fatalf("expected zero ground time, got %s", got)
	}
}

func TestNewFlight_CopiesSegments(t *testing.T) {
	segments := []Segment{NewSegment("", "", base, base.Add(time.Hour))}
	f := NewFlight("SU100", segments...)
	segments[0].ArrivalAt = base.Add(-time.Hour)

	if !f.Segments[0].ArrivalAt.Equal(base.Add(time.Hour)) {
		t.Fatal("flight must not share the caller's segment slice")
	}
}

func TestFlight_Validate(t *testing.T) {
	tests := []struct {
		name        string
		flight      Flight
		wantErr     error
		wantSegment int
	}{
		{
			name:   "valid",
			flight: NewFlight("", NewSegment("", "", base, base.Add(time.Hour))),
		},
		{
			name:        "no segments",
			flight:      Flight{ID: "empty"},
			wantErr:     derr.ErrNoSegments,
			wantSegment: -1,
		},
		{
			name: "zero arrival",
			flight: NewFlight("",
				NewSegment("", "", base, base.Add(time.Hour)),
				NewSegment("", "", base.Add(2*time.Hour), time.Time{}),
			),
			wantErr:     derr.ErrZeroTime,
			wantSegment: 1,
		},
		{
			name:    "arrival before departure is still valid input",
			flight:  NewFlight("", NewSegment("", "", base, base.Add(-time.Hour))),
			wantErr: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.flight.Validate(7)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("unexpected error: got %v want %v", err, tc.wantErr)
			}
			if !errors.Is(err, derr.ErrInvalidFlight) {
				t.Fatalf("validation error must match ErrInvalidFlight: %v", err)
			}
			var verr *derr.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %T", err)
			}
			if verr.Index != 7 || verr.Segment != tc.wantSegment {
				t.Fatalf("unexpected location: index=%d segment=%d", verr.Index, verr.Segment)
			}
		})
	}
}

func TestFlight_String(t *testing.T) {
	f := NewFlight("SU6", NewSegment("svo", "led", base, base.Add(90*time.Minute)))
	want := "SU6 SVO-LED[2025-01-01T12:00|2025-01-01T13:30]"
	if got := f.String(); got != want {
		t.Fatalf("unexpected string: got %q want %q", got, want)
	}

	anon := NewFlight("", NewSegment("", "", base, base.Add(time.Hour)))
	if got := anon.String(); got != "[2025-01-01T12:00|2025-01-01T13:00]" {
		t.Fatalf("unexpected string: %q", got)
	}
}
