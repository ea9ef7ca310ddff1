package mappers

import (
	"fmt"
	"strings"
	"time"

	derr "github.com/ozzus/flight-filters/internal/domain/errors"
	"github.com/ozzus/flight-filters/internal/domain/models"
	"github.com/ozzus/flight-filters/internal/infrastructures/fixtures/dto"
)

// ToDomainFlights maps file items to flights. Empty time fields map to the zero
// time so validation can report them; malformed ones are a mapping error.
func ToDomainFlights(items []dto.FlightItem) ([]models.Flight, error) {
	flights := make([]models.Flight, 0, len(items))
	for i, item := range items {
		f, err := ToDomainFlight(item)
		if err != nil {
			return nil, fmt.Errorf("flights[%d]: %w", i, err)
		}
		flights = append(flights, f)
	}
	return flights, nil
}

func ToDomainFlight(item dto.FlightItem) (models.Flight, error) {
	segments := make([]models.Segment, 0, len(item.Segments))
	for i, s := range item.Segments {
		departure, err := parseTime(s.DepartureAt)
		if err != nil {
			return models.Flight{}, fmt.Errorf("segments[%d].departure_at: %w", i, err)
		}
		arrival, err := parseTime(s.ArrivalAt)
		if err != nil {
			return models.Flight{}, fmt.Errorf("segments[%d].arrival_at: %w", i, err)
		}
		segments = append(segments, models.NewSegment(s.Origin, s.Destination, departure, arrival))
	}
	return models.NewFlight(item.ID, segments...), nil
}

func parseTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}

	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("%q: %w", value, derr.ErrInvalidFixtureTime)
}
