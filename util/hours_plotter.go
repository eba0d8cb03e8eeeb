package util

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"vs-server/models/schedule"
	"vs-server/models/venue"
)

// PlotWeeklyHours renders a venue's weekly opening hours as a bar
// chart (hours open per weekday, overnight spans counted in full) to
// an HTML file. Debugging aid for eyeballing catalog hours data.
func PlotWeeklyHours(v venue.Venue, outPath string) error {
	days := make([]string, 0, 7)
	bars := make([]opts.BarData, 0, 7)
	for wd := schedule.Sunday; wd <= schedule.Saturday; wd++ {
		days = append(days, wd.Code())

		hours := 0.0
		for _, slot := range v.TimeSlots {
			if slot.Weekday == wd && slot.Duration().Hours() > hours {
				hours = slot.Duration().Hours()
			}
		}
		bars = append(bars, opts.BarData{Value: hours})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Weekly Hours",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%s - hours open per day", v.VenueName),
		}),
	)
	bar.SetXAxis(days).AddSeries("Hours open", bars)

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create chart file %q: %w", outPath, err)
	}
	defer f.Close()

	if err := bar.Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
