package mappers

import (
	"errors"
	"strings"
	"testing"
	"time"

	derr "github.com/ozzus/flight-filters/internal/domain/errors"
	"github.com/ozzus/flight-filters/internal/infrastructures/fixtures/dto"
)

func TestToDomainFlight_ParsesLayoutsAndNormalizesIATA(t *testing.T) {
	f, err := ToDomainFlight(dto.FlightItem{
		ID: " SU1 ",
		Segments: []dto.SegmentItem{
			{Origin: "svo", Destination: " led ", DepartureAt: "2026-02-27T10:00:00+03:00", ArrivalAt: "2026-02-27T09:30:00Z"},
			{Origin: "LED", Destination: "KGD", DepartureAt: "2026-02-27 11:00:00", ArrivalAt: "2026-02-27T12:45"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.ID != "SU1" {
		t.Fatalf("unexpected id: %q", f.ID)
	}
	if len(f.Segments) != 2 {
		t.Fatalf("unexpected segments count: %d", len(f.Segments))
	}
	first := f.Segments[0]
	if first.Origin != "SVO" || first.Destination != "LED" {
		t.Fatalf("unexpected route: %s-%s", first.Origin, first.Destination)
	}
	if !first.DepartureAt.Equal(time.Date(2026, 2, 27, 7, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected departure: %v", first.DepartureAt)
	}
	if first.DepartureAt.Location() != time.UTC {
		t.Fatalf("expected utc departure, got %v", first.DepartureAt.Location())
	}
	if !f.Segments[1].ArrivalAt.Equal(time.Date(2026, 2, 27, 12, 45, 0, 0, time.UTC)) {
		t.Fatalf("unexpected arrival: %v", f.Segments[1].ArrivalAt)
	}
}

func TestToDomainFlight_EmptyTimeStaysZero(t *testing.T) {
	f, err := ToDomainFlight(dto.FlightItem{
		Segments: []dto.SegmentItem{{DepartureAt: "2026-02-27"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !f.Segments[0].ArrivalAt.IsZero() {
		t.Fatalf("expected zero arrival, got %v", f.Segments[0].ArrivalAt)
	}
	if !errors.Is(f.Validate(0), derr.ErrZeroTime) {
		t.Fatal("zero arrival must fail validation")
	}
}

func TestToDomainFlights_InvalidTime(t *testing.T) {
	_, err := ToDomainFlights([]dto.FlightItem{
		{Segments: []dto.SegmentItem{{DepartureAt: "2026-02-27", ArrivalAt: "2026-02-27"}}},
		{Segments: []dto.SegmentItem{{DepartureAt: "tomorrow", ArrivalAt: "2026-02-27"}}},
	})
	if !errors.Is(err, derr.ErrInvalidFixtureTime) {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(err.Error(), "flights[1]: segments[0].departure_at") {
		t.Fatalf("error must locate the bad field: %v", err)
	}
}
