package util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vs-server/models/schedule"
	"vs-server/models/venue"
)

func TestPlotWeeklyHours(t *testing.T) {
	v := venue.Venue{
		VenueID:   "ven_01",
		VenueName: "The Copper Still",
	}
	for _, h := range []string{"mon/17:0/1:0", "fri/17:0/2:0", "sat/14:0/2:0"} {
		slot, ok := schedule.ParseTimeSlot(h)
		if !ok {
			t.Fatalf("bad test slot %q", h)
		}
		v.TimeSlots = append(v.TimeSlots, slot)
	}

	outPath := filepath.Join(t.TempDir(), "hours.html")
	if err := PlotWeeklyHours(v, outPath); err != nil {
		t.Fatalf("PlotWeeklyHours failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("Failed to read chart output: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Expected non-empty chart output")
	}
	if !strings.Contains(string(data), "The Copper Still") {
		t.Error("Expected chart output to mention the venue name")
	}
}
