package ports

import (
	"context"
	"time"

	"github.com/ozzus/flight-filters/internal/domain/models"
)

type FlightSource interface {
	GetFlights(ctx context.Context) ([]models.Flight, error)
}

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time {
	return time.Time(c)
}
