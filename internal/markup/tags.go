package markup

import (
	"regexp"
	"strconv"
)

// Tag parsing is deliberately permissive: anything that does not match the
// recognized shapes is treated as plain text and skipped, never an error.
var (
	markerRe   = regexp.MustCompile(`\((\d+(?:\.\d+)?)\)`)
	pitchRe    = regexp.MustCompile(`(?i)<pitch\s+(-?\d+(?:\.\d+)?)\s*>`)
	volumeRe   = regexp.MustCompile(`(?i)<volume\s+(-?\d+(?:\.\d+)?)\s*>`)
	velocityRe = regexp.MustCompile(`(?i)<velocity\s+(-?\d+(?:\.\d+)?)\s*>`)
	silenceRe  = regexp.MustCompile(`(?i)<silencio\s+(-?\d+(?:\.\d+)?)\s*>`)
)

// TagSet holds the prosody values extracted from one text region.
type TagSet struct {
	Pitch  float64
	Volume float64
	Speed  float64
}

// prosodyRules pairs each tag pattern with its TagSet field. Matches are
// applied in textual order, so within a tag type the last occurrence wins.
var prosodyRules = []struct {
	re  *regexp.Regexp
	set func(*TagSet, float64)
}{
	{pitchRe, func(t *TagSet, v float64) { t.Pitch = v }},
	{volumeRe, func(t *TagSet, v float64) { t.Volume = v }},
	{velocityRe, func(t *TagSet, v float64) { t.Speed = v }},
}

// ScanMarkers returns every timestamp marker in the text, in textual order.
// The design does not require marker times to be increasing.
func ScanMarkers(text string) []Marker {
	var markers []Marker
	for _, loc := range markerRe.FindAllStringSubmatchIndex(text, -1) {
		t, err := strconv.ParseFloat(text[loc[2]:loc[3]], 64)
		if err != nil {
			continue
		}
		markers = append(markers, Marker{Time: t, Offset: loc[0]})
	}
	return markers
}

func hasProsodyTag(span string) bool {
	return pitchRe.MatchString(span) || volumeRe.MatchString(span) || velocityRe.MatchString(span)
}

// extractProsody reads the prosody tags in span. Absent tag types keep their
// neutral value.
func extractProsody(span string) TagSet {
	tags := TagSet{Pitch: NeutralPitch, Volume: NeutralVolume, Speed: NeutralSpeed}
	for _, rule := range prosodyRules {
		for _, m := range rule.re.FindAllStringSubmatch(span, -1) {
			v, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				continue
			}
			rule.set(&tags, v)
		}
	}
	return tags
}

// extractSilence returns the first <silencio N> duration in span, if any.
func extractSilence(span string) (float64, bool) {
	m := silenceRe.FindStringSubmatch(span)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
