package fixtures

import (
	"context"
	"fmt"
	"os"

	"github.com/ozzus/flight-filters/internal/domain/models"
	"github.com/ozzus/flight-filters/internal/infrastructures/fixtures/dto"
	"github.com/ozzus/flight-filters/internal/infrastructures/fixtures/mappers"
	"gopkg.in/yaml.v3"
)

// FileSource reads flights from a YAML document on every call.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) GetFlights(ctx context.Context) ([]models.Flight, error) {
	const op = "fixtures.FileSource.GetFlights"

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var payload dto.FlightsFile
	if err := yaml.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%s: decode %s: %w", op, s.path, err)
	}

	flights, err := mappers.ToDomainFlights(payload.Flights)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return flights, nil
}
