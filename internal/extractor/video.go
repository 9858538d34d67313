package extractor

import (
	"context"
	"errors"
	"strings"

	"github.com/nguyentantai21042004/docucast/internal/logger"
	"github.com/nguyentantai21042004/docucast/internal/transcript"
)

type videoExtractor struct {
	transcripts transcript.Service
	languages   []string
	logger      logger.Logger
}

// Extract resolves the video id, looks up the title (best-effort) and
// fetches the transcript in the first available preferred language.
func (e *videoExtractor) Extract(ctx context.Context, ref string) (*Document, error) {
	videoID := parseVideoID(ref)
	if videoID == "" {
		return nil, ErrNoContent
	}

	title := e.transcripts.Title(ctx, videoID)

	tracks, err := e.transcripts.List(ctx, videoID)
	if err != nil {
		if errors.Is(err, transcript.ErrDisabled) {
			e.logger.Warn(ctx, "Transcripts disabled for video %s", videoID)
			return nil, ErrNoContent
		}
		return nil, err
	}

	lang := pickLanguage(tracks, e.languages)
	if lang == "" {
		e.logger.Warn(ctx, "No transcript in %v for video %s", e.languages, videoID)
		return nil, ErrNoContent
	}

	segments, err := e.transcripts.Fetch(ctx, videoID, lang)
	if err != nil {
		if errors.Is(err, transcript.ErrNoTranscript) {
			return nil, ErrNoContent
		}
		return nil, err
	}

	texts := make([]string, 0, len(segments))
	for _, seg := range segments {
		texts = append(texts, seg.Text)
	}

	return &Document{Title: title, Text: strings.Join(texts, " ")}, nil
}

// parseVideoID extracts the platform video id from a watch or short URL.
func parseVideoID(ref string) string {
	if i := strings.Index(ref, "v="); i >= 0 {
		id := ref[i+2:]
		if j := strings.IndexByte(id, '&'); j >= 0 {
			id = id[:j]
		}
		return id
	}
	if i := strings.Index(ref, "youtu.be/"); i >= 0 {
		id := ref[i+len("youtu.be/"):]
		if j := strings.IndexByte(id, '?'); j >= 0 {
			id = id[:j]
		}
		return id
	}
	return ""
}

// pickLanguage returns the first preferred language with an available track.
func pickLanguage(tracks []transcript.Track, preferred []string) string {
	for _, lang := range preferred {
		for _, t := range tracks {
			if t.LangCode == lang {
				return lang
			}
		}
	}
	return ""
}
