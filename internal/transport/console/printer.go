package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/ozzus/flight-filters/internal/application/service"
	"github.com/ozzus/flight-filters/internal/domain/models"
)

var stageTitles = map[string]string{
	"departed":                 "Flights after removing departed flights",
	"arrival_before_departure": "Flights after removing incorrect segments",
	"ground_time":              "Flights with acceptable ground time",
}

type Printer struct {
	w       io.Writer
	title   *color.Color
	flight  *color.Color
	empty   *color.Color
	warning *color.Color
}

func NewPrinter(w io.Writer, colored bool) *Printer {
	p := &Printer{
		w:       w,
		title:   color.New(color.FgCyan, color.Bold),
		flight:  color.New(color.FgWhite),
		empty:   color.New(color.FgHiBlack),
		warning: color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{p.title, p.flight, p.empty, p.warning} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *Printer) PrintFlights(title string, flights []models.Flight) {
	_, _ = p.title.Fprintf(p.w, "\n=== %s ===\n", title)
	if len(flights) == 0 {
		_, _ = p.empty.Fprintln(p.w, "No flights match the criteria.")
		return
	}
	for i, f := range flights {
		_, _ = p.flight.Fprintf(p.w, "Flight %d: %s\n", i+1, f)
	}
}

func (p *Printer) PrintReport(report service.Report) {
	p.PrintFlights("All flights", report.All)
	for _, st := range report.Stages {
		p.PrintFlights(stageTitle(st.Rule), st.Flights)
	}
	p.PrintFlights("Flights passing all filters", report.Combined)

	if len(report.Invalid) == 0 {
		return
	}
	_, _ = p.warning.Fprintf(p.w, "\n=== Invalid flights ===\n")
	for _, inv := range report.Invalid {
		_, _ = p.warning.Fprintf(p.w, "%s\n", inv.Err)
	}
}

func stageTitle(rule string) string {
	if t, ok := stageTitles[rule]; ok {
		return t
	}
	return fmt.Sprintf("Flights after rule %s", strings.TrimSpace(rule))
}
