package effects

import (
	"context"

	"github.com/nguyentantai21042004/prosody-flow/internal/markup"
)

// Applier renders a modification plan onto an audio file. It is the
// collaborator side of the segmenter: the plan says what to do, the applier
// turns it into actual signal processing (via ffmpeg, never in-process).
type Applier interface {
	Apply(ctx context.Context, audioPath string, plan []markup.Segment, outputPath string) error
}
