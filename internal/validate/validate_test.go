package validate

import (
	"testing"

	"github.com/nguyentantai21042004/prosody-flow/internal/markup"
)

func TestPlan(t *testing.T) {
	tests := []struct {
		name     string
		segments []markup.Segment
		wantErrs int
	}{
		{
			name: "sound plan",
			segments: []markup.Segment{
				markup.Prosody{Start: 0, End: markup.ClosedAt(2), Speed: 1.0},
				markup.Prosody{Start: 2, End: markup.OpenEnd(), Pitch: 2, Speed: 0.9},
				markup.Silence{Start: 2, Duration: 0.5},
			},
			wantErrs: 0,
		},
		{
			name:     "empty plan",
			segments: nil,
			wantErrs: 0,
		},
		{
			name: "negative start",
			segments: []markup.Segment{
				markup.Prosody{Start: -1, End: markup.ClosedAt(2), Speed: 1.0},
			},
			wantErrs: 1,
		},
		{
			name: "inverted range",
			segments: []markup.Segment{
				markup.Prosody{Start: 3, End: markup.ClosedAt(1), Speed: 1.0},
			},
			wantErrs: 1,
		},
		{
			name: "open end never inverted",
			segments: []markup.Segment{
				markup.Prosody{Start: 100, End: markup.OpenEnd(), Speed: 1.0},
			},
			wantErrs: 0,
		},
		{
			name: "zero speed",
			segments: []markup.Segment{
				markup.Prosody{Start: 0, End: markup.ClosedAt(1), Speed: 0},
			},
			wantErrs: 1,
		},
		{
			name: "bad silence",
			segments: []markup.Segment{
				markup.Silence{Start: -2, Duration: 0},
			},
			wantErrs: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Plan(tt.segments)
			if len(errs) != tt.wantErrs {
				t.Errorf("Plan() = %d errors (%v), want %d", len(errs), errs, tt.wantErrs)
			}
		})
	}
}
