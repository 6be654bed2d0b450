package markup

import (
	"reflect"
	"testing"
)

func TestSegmentsEmpty(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty string", ""},
		{"plain text", "hola mundo sin anotaciones"},
		{"markers without tags", "(1.0) hola (2.5) mundo"},
		{"malformed tag", "<pitch dos> hola"},
		{"malformed marker", "(abc) hola"},
		{"unclosed tag", "<pitch 2 hola"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Segments(tt.text); len(got) != 0 {
				t.Errorf("Segments(%q) = %v, want empty", tt.text, got)
			}
		})
	}
}

func TestSegmentsPreMarkerProsody(t *testing.T) {
	got := Segments("<pitch 2> hola mundo (2.0) adiós")

	want := []Segment{
		Prosody{Start: 0, End: ClosedAt(2.0), Pitch: 2, Volume: 0, Speed: 1.0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segments() = %v, want %v", got, want)
	}
}

func TestSegmentsPreMarkerWithoutMarkers(t *testing.T) {
	got := Segments("<volume -3> todo el texto")

	want := []Segment{
		Prosody{Start: 0, End: OpenEnd(), Pitch: 0, Volume: -3, Speed: 1.0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segments() = %v, want %v", got, want)
	}
}

// A tagged span past the running cursor is preceded by a neutral gap span, so
// the prosody spans partition the timeline from zero.
func TestSegmentsNeutralGapFill(t *testing.T) {
	got := Segments("(1.0) hello (3.0) <pitch 2> world")

	want := []Segment{
		Prosody{Start: 0, End: ClosedAt(3.0), Speed: 1.0},
		Prosody{Start: 3.0, End: OpenEnd(), Pitch: 2, Speed: 1.0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segments() = %v, want %v", got, want)
	}
}

func TestSegmentsContiguousSpans(t *testing.T) {
	got := Segments("(0.0) <pitch 1> a (2.0) <volume -2> b (4.0) <velocity 1.5> c")

	want := []Segment{
		Prosody{Start: 0, End: ClosedAt(2.0), Pitch: 1, Speed: 1.0},
		Prosody{Start: 2.0, End: ClosedAt(4.0), Volume: -2, Speed: 1.0},
		Prosody{Start: 4.0, End: OpenEnd(), Speed: 1.5},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segments() = %v, want %v", got, want)
	}
}

func TestSegmentsLastTagWins(t *testing.T) {
	got := Segments("<pitch 1> hola <PITCH 3> mundo <Volume 2>")

	want := []Segment{
		Prosody{Start: 0, End: OpenEnd(), Pitch: 3, Volume: 2, Speed: 1.0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segments() = %v, want %v", got, want)
	}
}

func TestSegmentsSilence(t *testing.T) {
	got := Segments("(1.0) <silencio 0.5> hola <silencio 9> (2.0) <silencio 0.25> mundo")

	// First silencio in a span wins; each insertion advances the cursor.
	want := []Segment{
		Silence{Start: 0, Duration: 0.5},
		Silence{Start: 0.5, Duration: 0.25},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segments() = %v, want %v", got, want)
	}
}

// A span may emit both a full prosody span and a silence insertion; the
// checks are independent, prosody first.
func TestSegmentsProsodyAndSilenceSameSpan(t *testing.T) {
	got := Segments("(1.0) <pitch 2> <silencio 0.5> hola")

	want := []Segment{
		Prosody{Start: 0, End: ClosedAt(1.0), Speed: 1.0},
		Prosody{Start: 1.0, End: OpenEnd(), Pitch: 2, Speed: 1.0},
		Silence{Start: 1.0, Duration: 0.5},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segments() = %v, want %v", got, want)
	}
}

func TestSegmentsIdempotent(t *testing.T) {
	text := "(0.5) <pitch -1> hola (2.0) <silencio 1> mundo (3.0) <velocity 0.8> adiós"

	first := Segments(text)
	second := Segments(text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Segments() not deterministic: %v vs %v", first, second)
	}
}

func TestScanMarkers(t *testing.T) {
	got := ScanMarkers("a (1.5) b (0.25) c")

	want := []Marker{
		{Time: 1.5, Offset: 2},
		{Time: 0.25, Offset: 10},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ScanMarkers() = %v, want %v", got, want)
	}
}
