package fixtures

import (
	"context"
	"time"

	"github.com/ozzus/flight-filters/internal/domain/models"
	"github.com/ozzus/flight-filters/internal/domain/ports"
)

// CreateFlights returns the reference sample set, anchored three days after now.
func CreateFlights(now time.Time) []models.Flight {
	threeDaysFromNow := now.AddDate(0, 0, 3)

	return []models.Flight{
		// normal flight with two hour duration
		createFlight(threeDaysFromNow, threeDaysFromNow.Add(2*time.Hour)),
		// normal multi segment flight
		createFlight(threeDaysFromNow, threeDaysFromNow.Add(2*time.Hour),
			threeDaysFromNow.Add(3*time.Hour), threeDaysFromNow.Add(5*time.Hour)),
		// flight departing in the past
		createFlight(threeDaysFromNow.AddDate(0, 0, -6), threeDaysFromNow),
		// flight that departs before it arrives
		createFlight(threeDaysFromNow, threeDaysFromNow.Add(-6*time.Hour)),
		// flight with more than two hours ground time
		createFlight(threeDaysFromNow, threeDaysFromNow.Add(2*time.Hour),
			threeDaysFromNow.Add(5*time.Hour), threeDaysFromNow.Add(6*time.Hour)),
		// another flight with more than two hours ground time
		createFlight(threeDaysFromNow, threeDaysFromNow.Add(2*time.Hour),
			threeDaysFromNow.Add(3*time.Hour), threeDaysFromNow.Add(4*time.Hour),
			threeDaysFromNow.Add(6*time.Hour), threeDaysFromNow.Add(7*time.Hour)),
	}
}

func createFlight(dates ...time.Time) models.Flight {
	if len(dates)%2 != 0 {
		panic("fixtures: even number of dates required")
	}
	segments := make([]models.Segment, 0, len(dates)/2)
	for i := 0; i+1 < len(dates); i += 2 {
		segments = append(segments, models.NewSegment("", "", dates[i], dates[i+1]))
	}
	return models.NewFlight("", segments...)
}

// BuilderSource serves the sample set relative to the clock's current time.
type BuilderSource struct {
	clock ports.Clock
}

func NewBuilderSource(clock ports.Clock) *BuilderSource {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	return &BuilderSource{clock: clock}
}

func (s *BuilderSource) GetFlights(ctx context.Context) ([]models.Flight, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return CreateFlights(s.clock.Now()), nil
}
