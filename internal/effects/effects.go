package effects

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/prosody-flow/internal/markup"
)

// Apply renders the plan onto audioPath and writes the result to outputPath.
// An empty plan degenerates to a plain stream copy.
func (a *implApplier) Apply(ctx context.Context, audioPath string, plan []markup.Segment, outputPath string) error {
	duration, err := a.probeDuration(ctx, audioPath)
	if err != nil {
		return fmt.Errorf("probe duration: %w", err)
	}

	graph := BuildFilterGraph(plan, duration, a.cfg.FFmpeg.SampleRate)
	if graph == "" {
		a.logger.Debug(ctx, "Empty modification plan, copying audio: %s", audioPath)
		if _, err := a.executor.Execute(ctx, a.cfg.FFmpeg.BinaryPath,
			"-y", "-i", audioPath, "-c:a", "copy", outputPath); err != nil {
			return fmt.Errorf("ffmpeg copy: %w", err)
		}
		return nil
	}

	a.logger.Info(ctx, "Applying %d modification segments to %s", len(plan), audioPath)
	a.logger.Debug(ctx, "Filter graph: %s", graph)

	args := []string{
		"-y",
		"-i", audioPath,
		"-filter_complex", graph,
		"-map", "[out]",
		outputPath,
	}
	if _, err := a.executor.Execute(ctx, a.cfg.FFmpeg.BinaryPath, args...); err != nil {
		return fmt.Errorf("ffmpeg apply: %w", err)
	}

	a.logger.Info(ctx, "Modified audio written: %s", outputPath)
	return nil
}

// probeDuration asks ffprobe for the audio duration in seconds.
func (a *implApplier) probeDuration(ctx context.Context, audioPath string) (float64, error) {
	out, err := a.executor.Execute(ctx, a.cfg.FFmpeg.ProbePath,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "csv=p=0",
		audioPath,
	)
	if err != nil {
		return 0, err
	}

	d, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		return 0, fmt.Errorf("parse ffprobe output %q: %w", strings.TrimSpace(out), err)
	}
	return d, nil
}
