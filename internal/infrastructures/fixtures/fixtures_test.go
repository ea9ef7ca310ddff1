package fixtures

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ozzus/flight-filters/internal/application/pipeline"
	"github.com/ozzus/flight-filters/internal/application/rules"
	derr "github.com/ozzus/flight-filters/internal/domain/errors"
	"github.com/ozzus/flight-filters/internal/domain/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func TestCreateFlights_SampleSet(t *testing.T) {
	flights := CreateFlights(now)
	require.Len(t, flights, 6)

	for i, f := range flights {
		require.NoError(t, f.Validate(i))
	}

	p := pipeline.New(rules.Default(now)...)
	res := p.Evaluate(flights)

	require.Len(t, res.Kept, 2)
	assert.Equal(t, flights[0], res.Kept[0])
	assert.Equal(t, flights[1], res.Kept[1])

	failed := make([]string, 0, len(res.Rejected))
	for _, r := range res.Rejected {
		failed = append(failed, r.Rule)
	}
	assert.Equal(t, []string{"departed", "arrival_before_departure", "ground_time", "ground_time"}, failed)
}

func TestBuilderSource_UsesClock(t *testing.T) {
	src := NewBuilderSource(ports.FixedClock(now))
	flights, err := src.GetFlights(context.Background())
	require.NoError(t, err)
	assert.Equal(t, CreateFlights(now), flights)
}

func TestBuilderSource_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewBuilderSource(nil).GetFlights(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileSource_GetFlights(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flights.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
flights:
  - id: SU100
    segments:
      - origin: svo
        destination: led
        departure_at: "2025-01-02T08:00:00Z"
        arrival_at: "2025-01-02T09:30:00Z"
  - id: empty
`), 0o600))

	flights, err := NewFileSource(path).GetFlights(context.Background())
	require.NoError(t, err)
	require.Len(t, flights, 2)

	assert.Equal(t, "SU100", flights[0].ID)
	assert.Equal(t, "SVO", flights[0].Origin())
	assert.Equal(t, 90*time.Minute, flights[0].Segments[0].Duration())
	assert.ErrorIs(t, flights[1].Validate(1), derr.ErrNoSegments)
}

func TestFileSource_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := NewFileSource(filepath.Join(dir, "missing.yaml")).GetFlights(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("flights: [\n"), 0o600))
	_, err = NewFileSource(bad).GetFlights(context.Background())
	assert.Error(t, err)

	badTime := filepath.Join(dir, "bad_time.yaml")
	require.NoError(t, os.WriteFile(badTime, []byte(`
flights:
  - segments:
      - departure_at: soon
        arrival_at: "2025-01-02"
`), 0o600))
	_, err = NewFileSource(badTime).GetFlights(context.Background())
	assert.ErrorIs(t, err, derr.ErrInvalidFixtureTime)
}
