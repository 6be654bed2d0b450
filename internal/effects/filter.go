package effects

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/nguyentantai21042004/prosody-flow/internal/markup"
)

// piece is one chunk of the output audio: either a trimmed range of the
// source with optional effects, or generated silence.
type piece struct {
	start, end float64 // source range, seconds
	pitch      float64 // semitones
	volume     float64 // dB
	speed      float64 // multiplier
	silence    bool
	duration   float64 // silence only
}

// BuildFilterGraph turns a modification plan into an ffmpeg filter_complex
// expression producing [out]. Open-ended spans are resolved against duration.
// Unmodified ranges between spans are passed through untouched, so the output
// always covers the whole source. Returns "" when the plan renders nothing.
func BuildFilterGraph(plan []markup.Segment, duration float64, sampleRate int) string {
	if len(plan) == 0 || duration <= 0 {
		return ""
	}

	var spans []markup.Prosody
	var pauses []markup.Silence
	for _, seg := range plan {
		switch s := seg.(type) {
		case markup.Prosody:
			spans = append(spans, s)
		case markup.Silence:
			pauses = append(pauses, s)
		}
	}

	pieces := coverSource(spans, duration)
	sort.SliceStable(pauses, func(i, j int) bool { return pauses[i].Start < pauses[j].Start })
	for _, p := range pauses {
		if p.Duration <= 0 {
			continue
		}
		pieces = insertSilence(pieces, clamp(p.Start, 0, duration), p.Duration)
	}
	if len(pieces) == 0 {
		return ""
	}

	var b strings.Builder
	labels := make([]string, 0, len(pieces))
	for i, p := range pieces {
		label := fmt.Sprintf("[c%d]", i)
		labels = append(labels, label)

		if p.silence {
			fmt.Fprintf(&b, "anullsrc=r=%d:cl=mono,atrim=duration=%.6f,asetpts=PTS-STARTPTS%s;",
				sampleRate, p.duration, label)
			continue
		}

		fmt.Fprintf(&b, "[0:a]atrim=start=%.6f:end=%.6f,asetpts=PTS-STARTPTS", p.start, p.end)
		if p.volume != markup.NeutralVolume {
			fmt.Fprintf(&b, ",volume=%.6fdB", p.volume)
		}
		switch {
		case p.pitch != markup.NeutralPitch:
			// rubberband keeps duration while shifting pitch and handles the
			// tempo change in the same pass.
			fmt.Fprintf(&b, ",rubberband=pitch=%.6f:tempo=%.6f", math.Pow(2, p.pitch/12), p.speed)
		case p.speed != markup.NeutralSpeed:
			fmt.Fprintf(&b, ",atempo=%.6f", p.speed)
		}
		b.WriteString(label)
		b.WriteString(";")
	}

	fmt.Fprintf(&b, "%sconcat=n=%d:v=0:a=1[out]", strings.Join(labels, ""), len(pieces))
	return b.String()
}

// coverSource maps the prosody spans onto a contiguous sequence of source
// pieces from 0 to duration, passing un-annotated ranges through untouched.
func coverSource(spans []markup.Prosody, duration float64) []piece {
	sort.SliceStable(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })

	var pieces []piece
	cursor := 0.0
	for _, s := range spans {
		start := clamp(s.Start, 0, duration)
		end := duration
		if !s.End.Open {
			end = clamp(s.End.Seconds, 0, duration)
		}
		if end <= start || start < cursor {
			continue
		}
		if start > cursor {
			pieces = append(pieces, piece{start: cursor, end: start, speed: markup.NeutralSpeed})
		}
		pieces = append(pieces, piece{start: start, end: end, pitch: s.Pitch, volume: s.Volume, speed: s.Speed})
		cursor = end
	}
	if cursor < duration {
		pieces = append(pieces, piece{start: cursor, end: duration, speed: markup.NeutralSpeed})
	}
	return pieces
}

// insertSilence places a generated pause at the given source position,
// splitting the covering piece when the position falls inside it.
func insertSilence(pieces []piece, at, dur float64) []piece {
	sil := piece{silence: true, duration: dur}

	for i, p := range pieces {
		if p.silence || at >= p.end {
			continue
		}

		out := make([]piece, 0, len(pieces)+2)
		out = append(out, pieces[:i]...)
		if at <= p.start {
			out = append(out, sil, p)
		} else {
			left, right := p, p
			left.end = at
			right.start = at
			out = append(out, left, sil, right)
		}
		return append(out, pieces[i+1:]...)
	}

	return append(pieces, sil)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
