package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/nguyentantai21042004/docucast/internal/batch"
	"github.com/nguyentantai21042004/docucast/internal/config"
	"github.com/nguyentantai21042004/docucast/internal/dialogue"
	"github.com/nguyentantai21042004/docucast/internal/extractor"
	"github.com/nguyentantai21042004/docucast/internal/llm"
	"github.com/nguyentantai21042004/docucast/internal/logger"
	"github.com/nguyentantai21042004/docucast/internal/ocr"
	"github.com/nguyentantai21042004/docucast/internal/renderer"
	"github.com/nguyentantai21042004/docucast/internal/session"
	"github.com/nguyentantai21042004/docucast/internal/source"
	"github.com/nguyentantai21042004/docucast/internal/template"
	"github.com/nguyentantai21042004/docucast/internal/transcript"
	"github.com/nguyentantai21042004/docucast/internal/tts"
	"github.com/nguyentantai21042004/docucast/internal/watcher"
	"github.com/nguyentantai21042004/docucast/pkg/executor"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML configuration file")
	useOCR := flag.Bool("ocr", false, "extract PDFs through the OCR service instead of the text layer")
	watchMode := flag.Bool("watch", false, "watch the inbox directory for new reference lists and documents")
	generate := flag.Bool("generate", false, "generate narrated audio from the references instead of markdown artifacts")
	templateName := flag.String("template", template.Default, "instruction template for generation")
	feedback := flag.String("feedback", "", "feedback for an improvement pass after the initial generation")
	editedPath := flag.String("edited", "", "path to an edited transcript fed into the improvement pass")
	flag.Parse()

	ctx := context.Background()

	// .env is optional; real environments export the keys directly.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "docucast: documents to narrated audio")
	log.Info(ctx, "========================================")

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	transcripts := transcript.New(log)
	ocrSvc := ocr.New(os.Getenv("MISTRAL_API_KEY"), cfg.OCR.Model, cfg.OCR.APIBase, log)
	registry := extractor.New(transcripts, ocrSvc, transcriptLanguages(cfg), log)
	proc := batch.New(registry, cfg.Paths.Output, log)

	switch {
	case *watchMode:
		err = runWatch(ctx, cfg, proc, log, *useOCR)
	case *generate:
		err = runGenerate(ctx, cfg, registry, log, flag.Args(), *useOCR, *templateName, *feedback, *editedPath)
	default:
		err = runBatch(ctx, proc, flag.Args(), *useOCR)
	}

	if err != nil {
		log.Error(ctx, "%v", err)
		os.Exit(1)
	}
}

// runBatch extracts every reference into markdown and JSON artifacts.
func runBatch(ctx context.Context, proc batch.Processor, refs []string, useOCR bool) error {
	if len(refs) == 0 {
		return fmt.Errorf("no references given; pass URLs, file paths, or a .csv reference list")
	}

	if len(refs) == 1 && strings.HasSuffix(strings.ToLower(refs[0]), ".csv") && !source.IsHTTP(refs[0]) {
		return proc.ProcessFile(ctx, refs[0], useOCR)
	}
	return proc.ProcessRefs(ctx, refs, useOCR)
}

// runWatch processes files as they arrive in the inbox until interrupted.
func runWatch(ctx context.Context, cfg *config.Config, proc batch.Processor, log logger.Logger, useOCR bool) error {
	handler := func(ctx context.Context, filePath string) error {
		if strings.HasSuffix(strings.ToLower(filePath), ".csv") {
			return proc.ProcessFile(ctx, filePath, useOCR)
		}
		return proc.ProcessRefs(ctx, []string{filePath}, useOCR)
	}

	w, err := watcher.New(cfg.Paths.Inbox, handler, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Monitoring: %s", cfg.Paths.Inbox)
	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		return err
	}

	cancel()
	return nil
}

// runGenerate combines the reference texts into one input, generates a
// dialogue and renders it to audio plus transcript exports.
func runGenerate(ctx context.Context, cfg *config.Config, registry *extractor.Registry, log logger.Logger, refs []string, useOCR bool, templateName, feedback, editedPath string) error {
	if len(refs) == 0 {
		return fmt.Errorf("no references given; pass URLs or file paths")
	}

	tpl, err := template.Get(templateName)
	if err != nil {
		return err
	}

	completer, err := llm.New(llm.Options{
		Provider:        cfg.LLM.Provider,
		Model:           cfg.LLM.Model,
		APIBase:         cfg.LLM.APIBase,
		APIKey:          os.Getenv("OPENAI_API_KEY"),
		APIKeys:         geminiKeys(),
		ReasoningEffort: cfg.LLM.ReasoningEffort,
		WebSearch:       cfg.LLM.WebSearch,
	}, log)
	if err != nil {
		return err
	}

	synth, err := tts.New(os.Getenv("OPENAI_API_KEY"), cfg.TTS.Model, cfg.TTS.APIBase, log)
	if err != nil {
		return err
	}

	gen := dialogue.New(completer, cfg.LLM.MaxRetries, log)
	rend := renderer.New(synth, executor.New(), renderer.Options{
		ScratchDir:           cfg.Paths.Scratch,
		MaxConcurrent:        cfg.Performance.MaxConcurrent,
		Remux:                cfg.Render.Remux,
		Speaker1Voice:        cfg.TTS.Speaker1Voice,
		Speaker2Voice:        cfg.TTS.Speaker2Voice,
		Speaker1Instructions: cfg.TTS.Speaker1Instructions,
		Speaker2Instructions: cfg.TTS.Speaker2Instructions,
	}, log)

	title, text, err := combineReferences(ctx, registry, log, refs, useOCR)
	if err != nil {
		return err
	}

	s := session.New(gen, rend, log)

	log.Info(ctx, "Generating dialogue (%s template) from %d reference(s)", templateName, len(refs))
	res, err := s.Generate(ctx, text, tpl, cfg.Batch.Language)
	if err != nil {
		return err
	}

	if feedback != "" || editedPath != "" {
		if editedPath != "" {
			edited, err := os.ReadFile(editedPath)
			if err != nil {
				return fmt.Errorf("read edited transcript: %w", err)
			}
			lines, err := parseTranscript(string(edited))
			if err != nil {
				return err
			}
			if err := s.ApplyEdits(lines); err != nil {
				return err
			}
		}

		log.Info(ctx, "Running improvement pass")
		res, err = s.Regenerate(ctx, feedback, editedPath != "")
		if err != nil {
			return err
		}
	}

	return writeOutputs(ctx, cfg, log, s, res, title)
}

// combineReferences extracts every reference and joins the texts.
func combineReferences(ctx context.Context, registry *extractor.Registry, log logger.Logger, refs []string, useOCR bool) (string, string, error) {
	title := ""
	var parts []string

	for _, ref := range refs {
		log.Info(ctx, "Extracting: %s", ref)

		doc, err := extractOne(ctx, registry, ref, useOCR)
		if err != nil {
			return "", "", fmt.Errorf("extract %s: %w", ref, err)
		}
		if title == "" && doc.Title != "" {
			title = doc.Title
		}
		parts = append(parts, doc.Text)
	}

	if title == "" {
		title = "podcast"
	}
	return title, strings.Join(parts, "\n\n"), nil
}

func extractOne(ctx context.Context, registry *extractor.Registry, ref string, useOCR bool) (*extractor.Document, error) {
	kind := source.Classify(ref, useOCR)
	ext, err := registry.Get(kind)
	if err != nil {
		return nil, err
	}
	return ext.Extract(ctx, ref)
}

// writeOutputs copies the rendered audio into the output directory and
// writes the transcript in markdown and docx form next to it.
func writeOutputs(ctx context.Context, cfg *config.Config, log logger.Logger, s *session.Session, res *renderer.Result, title string) error {
	name := batch.SanitizeTitle(title)

	audioPath := filepath.Join(cfg.Paths.Output, name+".mp3")
	audio, err := os.ReadFile(res.AudioPath)
	if err != nil {
		return fmt.Errorf("read rendered audio: %w", err)
	}
	if err := os.WriteFile(audioPath, audio, 0644); err != nil {
		return fmt.Errorf("write audio: %w", err)
	}
	log.Info(ctx, "Audio: %s", audioPath)

	md, err := s.TranscriptMarkdown()
	if err != nil {
		return err
	}
	mdPath := filepath.Join(cfg.Paths.Output, name+"_transcript.md")
	if err := os.WriteFile(mdPath, []byte(md), 0644); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}
	log.Info(ctx, "Transcript: %s", mdPath)

	docxPath := filepath.Join(cfg.Paths.Output, name+".docx")
	if err := s.ExportDocx(title, docxPath); err != nil {
		log.Warn(ctx, "Failed to export docx: %v", err)
	} else {
		log.Info(ctx, "Docx: %s", docxPath)
	}

	log.Info(ctx, "Done: %s (%d characters of speech)", title, res.Characters)
	return nil
}

// parseTranscript turns "speaker: text" blocks back into dialogue lines.
func parseTranscript(raw string) ([]dialogue.Line, error) {
	var lines []dialogue.Line
	for _, block := range strings.Split(raw, "\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		speaker, text, found := strings.Cut(block, ":")
		speaker = strings.TrimSpace(speaker)
		if !found || (speaker != dialogue.Speaker1 && speaker != dialogue.Speaker2) {
			return nil, fmt.Errorf("transcript line %q is not in \"speaker-1: text\" form", block)
		}
		lines = append(lines, dialogue.Line{Speaker: speaker, Text: strings.TrimSpace(text)})
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("edited transcript has no lines")
	}
	return lines, nil
}

func geminiKeys() []string {
	raw := os.Getenv("GEMINI_API_KEYS")
	if raw == "" {
		raw = os.Getenv("GEMINI_API_KEY")
	}

	var keys []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

// transcriptLanguages returns the caption language preference order.
func transcriptLanguages(cfg *config.Config) []string {
	if cfg.Batch.Language == "" || cfg.Batch.Language == "en" {
		return []string{"en"}
	}
	return []string{cfg.Batch.Language, "en"}
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Output,
		cfg.Paths.Scratch,
	}
	if cfg.Paths.Inbox != "" {
		dirs = append(dirs, cfg.Paths.Inbox)
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
