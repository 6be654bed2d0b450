package transcriber

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/prosody-flow/internal/align"
)

// Result is the analyzer's JSON output: the full recognized text plus
// utterance segments carrying word-level timestamps.
type Result struct {
	Text     string    `json:"text"`
	Segments []Segment `json:"segments"`
}

// Segment is one recognized utterance.
type Segment struct {
	ID    int                    `json:"id"`
	Start float64                `json:"start"`
	End   float64                `json:"end"`
	Text  string                 `json:"text"`
	Words []align.RecognizedWord `json:"words"`
}

// Words flattens the segment-grouped words into one ordered candidate list
// for the aligner.
func (r *Result) Words() []align.RecognizedWord {
	groups := make([][]align.RecognizedWord, len(r.Segments))
	for i, s := range r.Segments {
		groups[i] = s.Words
	}
	return align.Flatten(groups...)
}

// Transcribe runs the analyzer binary with word timestamps enabled and parses
// the JSON it prints to stdout.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath string) (*Result, error) {
	t.logger.Info(ctx, "Transcribing with %d threads: %s", t.cfg.Analyzer.Threads, audioPath)

	args := []string{
		"-m", t.cfg.Analyzer.ModelPath,
		"-f", audioPath,
		"-l", t.cfg.Analyzer.Language,
		"-t", strconv.Itoa(t.cfg.Analyzer.Threads),
		"--word-timestamps",
		"--output-json",
	}

	out, err := t.executor.Execute(ctx, t.cfg.Analyzer.BinaryPath, args...)
	if err != nil {
		return nil, fmt.Errorf("analyzer: %w", err)
	}

	res, err := Parse(out)
	if err != nil {
		return nil, err
	}

	t.logger.Info(ctx, "Transcription done: %d segments, %d words", len(res.Segments), len(res.Words()))
	return res, nil
}

// Parse decodes the analyzer's JSON output.
func Parse(data string) (*Result, error) {
	var res Result
	if err := json.Unmarshal([]byte(strings.TrimSpace(data)), &res); err != nil {
		return nil, fmt.Errorf("decode analyzer output: %w", err)
	}
	return &res, nil
}
