package dto

type SegmentItem struct {
	Origin      string `yaml:"origin"`
	Destination string `yaml:"destination"`
	DepartureAt string `yaml:"departure_at"`
	ArrivalAt   string `yaml:"arrival_at"`
}

type FlightItem struct {
	ID       string        `yaml:"id"`
	Segments []SegmentItem `yaml:"segments"`
}

type FlightsFile struct {
	Flights []FlightItem `yaml:"flights"`
}
