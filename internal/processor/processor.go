package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/prosody-flow/internal/align"
	"github.com/nguyentantai21042004/prosody-flow/internal/markup"
	"github.com/nguyentantai21042004/prosody-flow/internal/report"
	"github.com/nguyentantai21042004/prosody-flow/internal/validate"
)

// Process runs the whole annotation job: transcribe the audio sibling, align
// the annotation's plain text against the recognized words, compute the
// modification plan, apply it and write the review document.
func (p *implProcessor) Process(ctx context.Context, annotationPath string) error {
	startTime := time.Now()
	base := strings.TrimSuffix(filepath.Base(annotationPath), filepath.Ext(annotationPath))

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing annotation: %s", annotationPath)

	raw, err := os.ReadFile(annotationPath)
	if err != nil {
		return fmt.Errorf("read annotation: %w", err)
	}
	text := string(raw)

	audioPath, err := p.findAudioSibling(annotationPath)
	if err != nil {
		return err
	}
	p.logger.Info(ctx, "Audio sibling: %s", audioPath)

	// Speech recognition, then alignment of the stripped annotation text.
	result, err := p.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return fmt.Errorf("transcribe: %w", err)
	}

	candidates := result.Words()
	if limit := p.cfg.Align.MaxCandidates; limit > 0 && len(candidates) > limit {
		p.logger.Warn(ctx, "Capping candidate list: %d -> %d words", len(candidates), limit)
		candidates = candidates[:limit]
	}
	aligned := align.Align(markup.Strip(text), candidates)
	p.logger.Info(ctx, "Aligned %d tokens against %d recognized words", len(aligned), len(candidates))

	// Modification plan from the markup.
	plan := markup.Segments(text)
	for _, verr := range validate.Plan(plan) {
		p.logger.Warn(ctx, "Plan check: %v", verr)
	}

	if len(plan) == 0 && !strings.Contains(text, "<") {
		p.suggestMarkup(ctx, base, result.Text)
	}

	if err := os.MkdirAll(p.cfg.Paths.Output, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	modifiedPath := filepath.Join(p.cfg.Paths.Output, base+"_modificado.wav")
	if err := p.effects.Apply(ctx, audioPath, plan, modifiedPath); err != nil {
		return fmt.Errorf("apply effects: %w", err)
	}

	reportPath := filepath.Join(p.cfg.Paths.Output, base+".docx")
	if err := report.Write(base, markup.ParseStyles(text), aligned, reportPath); err != nil {
		p.logger.Warn(ctx, "Failed to write report: %v", err)
	}

	if err := p.archive(ctx, annotationPath, audioPath); err != nil {
		p.logger.Warn(ctx, "Failed to archive inputs: %v", err)
	}

	p.logger.Info(ctx, "Job done in %s: %d segments, output %s", time.Since(startTime), len(plan), modifiedPath)
	p.logger.Info(ctx, "========================================")
	return nil
}

// suggestMarkup writes a Gemini-drafted annotation next to the outputs when
// the operator submitted a bare text.
func (p *implProcessor) suggestMarkup(ctx context.Context, base, transcript string) {
	draft, err := p.assistant.SuggestMarkup(ctx, transcript)
	if err != nil {
		p.logger.Debug(ctx, "No markup suggestion: %v", err)
		return
	}

	path := filepath.Join(p.cfg.Paths.Output, base+"_sugerido.txt")
	if err := os.WriteFile(path, []byte(draft), 0644); err != nil {
		p.logger.Warn(ctx, "Failed to write suggestion: %v", err)
		return
	}
	p.logger.Info(ctx, "Markup suggestion written: %s", path)
}

// findAudioSibling locates the audio file the annotation refers to: same
// basename, one of the supported extensions.
func (p *implProcessor) findAudioSibling(annotationPath string) (string, error) {
	prefix := strings.TrimSuffix(annotationPath, filepath.Ext(annotationPath))

	for _, ext := range []string{".wav", ".mp3", ".ogg", ".m4a"} {
		candidate := prefix + ext
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("no audio sibling for %s", annotationPath)
}
