package markup

// Neutral prosody values. A segment carrying all three leaves the audio as
// recorded; it exists only so the emitted spans partition the timeline.
const (
	NeutralPitch  = 0.0
	NeutralVolume = 0.0
	NeutralSpeed  = 1.0
)

// EndTime closes a prosody span. When Open is true the span runs to the end of
// the audio and Seconds carries no meaning; the effects layer resolves it
// against the real duration.
type EndTime struct {
	Seconds float64
	Open    bool
}

// ClosedAt returns an end bound at the given second.
func ClosedAt(seconds float64) EndTime { return EndTime{Seconds: seconds} }

// OpenEnd returns the to-the-end-of-the-audio sentinel.
func OpenEnd() EndTime { return EndTime{Open: true} }

// Segment is one audio-modification instruction. The concrete types are
// Prosody and Silence.
type Segment interface {
	StartSeconds() float64
}

// Prosody adjusts pitch, volume and speed over a time span.
type Prosody struct {
	Start  float64
	End    EndTime
	Pitch  float64 // semitones
	Volume float64 // dB
	Speed  float64 // multiplier
}

func (p Prosody) StartSeconds() float64 { return p.Start }

// Neutral reports whether the span applies no effect.
func (p Prosody) Neutral() bool {
	return p.Pitch == NeutralPitch && p.Volume == NeutralVolume && p.Speed == NeutralSpeed
}

// Silence inserts a pause at a point in time. It does not span existing audio.
type Silence struct {
	Start    float64
	Duration float64
}

func (s Silence) StartSeconds() float64 { return s.Start }

// Marker is a (seconds) anchor found in annotated text. Offset is the byte
// position of the opening paren, so a UI can map markers back to the source.
type Marker struct {
	Time   float64
	Offset int
}
