package transcriber

import "context"

// Transcriber runs speech recognition on an audio file and returns the
// recognized words with timestamps.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (*Result, error)
}
