package renderer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/docucast/internal/dialogue"
	"github.com/nguyentantai21042004/docucast/internal/tts"
)

const scratchMaxAge = 24 * time.Hour

func (r *implRenderer) Render(ctx context.Context, dlg *dialogue.Dialogue) (*Result, error) {
	if dlg == nil || len(dlg.Lines) == 0 {
		return nil, fmt.Errorf("dialogue has no lines to render")
	}

	// Lines whose text is blank are never sent to synthesis.
	lines := make([]dialogue.Line, 0, len(dlg.Lines))
	for _, line := range dlg.Lines {
		if strings.TrimSpace(line.Text) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("dialogue has no lines to render")
	}

	chunks := make([][]byte, len(lines))
	failures := make([]error, len(lines))

	sem := make(chan struct{}, r.opts.MaxConcurrent)
	var wg sync.WaitGroup

	for i, line := range lines {
		wg.Add(1)
		go func(i int, line dialogue.Line) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			audio, err := r.synth.Synthesize(ctx, tts.SpeakRequest{
				Text:         line.Text,
				Voice:        r.voiceFor(line.Speaker),
				Instructions: r.instructionsFor(line.Speaker),
			})
			if err != nil {
				failures[i] = err
				return
			}
			chunks[i] = audio
		}(i, line)
	}
	wg.Wait()

	// Fan-in strictly by line position. Failed lines stay in the
	// transcript but contribute no audio.
	var audio []byte
	var transcript strings.Builder
	rendered := 0
	characters := 0

	for i, line := range lines {
		transcript.WriteString(line.Speaker + ": " + line.Text + "\n\n")

		if failures[i] != nil {
			r.logger.Error(ctx, "Line %d synthesis failed, omitting from audio: %v", i, failures[i])
			continue
		}
		audio = append(audio, chunks[i]...)
		rendered++
		characters += len(line.Text)
	}

	if rendered == 0 {
		return nil, fmt.Errorf("all %d lines failed to synthesize", len(lines))
	}

	r.logger.Info(ctx, "Synthesized %d/%d lines, %d characters", rendered, len(lines), characters)

	audioPath, err := r.writeScratch(ctx, audio)
	if err != nil {
		return nil, err
	}

	if r.opts.Remux {
		if remuxed, err := r.remux(ctx, audioPath); err != nil {
			r.logger.Warn(ctx, "Remux failed, keeping concatenated audio: %v", err)
		} else {
			audioPath = remuxed
		}
	}

	return &Result{
		AudioPath:  audioPath,
		Transcript: transcript.String(),
		Characters: characters,
	}, nil
}

func (r *implRenderer) voiceFor(speaker string) string {
	if speaker == dialogue.Speaker1 {
		return r.opts.Speaker1Voice
	}
	return r.opts.Speaker2Voice
}

func (r *implRenderer) instructionsFor(speaker string) string {
	if speaker == dialogue.Speaker1 {
		return r.opts.Speaker1Instructions
	}
	return r.opts.Speaker2Instructions
}

// writeScratch stores the concatenated audio under a unique name and
// sweeps stale scratch files from previous runs.
func (r *implRenderer) writeScratch(ctx context.Context, audio []byte) (string, error) {
	if err := os.MkdirAll(r.opts.ScratchDir, 0755); err != nil {
		return "", fmt.Errorf("create scratch dir: %w", err)
	}

	path := filepath.Join(r.opts.ScratchDir, "podcast_"+uuid.NewString()+".mp3")
	if err := os.WriteFile(path, audio, 0644); err != nil {
		return "", fmt.Errorf("write audio: %w", err)
	}

	r.sweepScratch(ctx, path)
	return path, nil
}

// sweepScratch removes mp3 files older than scratchMaxAge, keeping the
// file just written.
func (r *implRenderer) sweepScratch(ctx context.Context, keep string) {
	matches, err := filepath.Glob(filepath.Join(r.opts.ScratchDir, "*.mp3"))
	if err != nil {
		return
	}
	for _, m := range matches {
		if m == keep {
			continue
		}
		info, err := os.Stat(m)
		if err != nil || info.IsDir() {
			continue
		}
		if time.Since(info.ModTime()) > scratchMaxAge {
			if err := os.Remove(m); err != nil {
				r.logger.Warn(ctx, "Failed to remove stale scratch file %s: %v", m, err)
			}
		}
	}
}

// remux re-encodes the concatenated mp3 into a single clean stream.
func (r *implRenderer) remux(ctx context.Context, in string) (string, error) {
	out := strings.TrimSuffix(in, ".mp3") + "_final.mp3"

	if _, err := r.exec.Execute(ctx, "ffmpeg", "-y", "-i", in, "-codec:a", "libmp3lame", "-q:a", "2", out); err != nil {
		return "", err
	}

	if err := os.Remove(in); err != nil {
		r.logger.Warn(ctx, "Failed to remove pre-remux audio %s: %v", in, err)
	}
	return out, nil
}
