package transcript

import (
	"context"
	"errors"
)

// ErrNoTranscript is returned when a video has no track in any of the
// requested languages.
var ErrNoTranscript = errors.New("no transcript found")

// ErrDisabled is returned when the video has transcripts disabled entirely.
var ErrDisabled = errors.New("transcripts disabled for video")

// Segment is one timed caption entry.
type Segment struct {
	Text  string
	Start float64
	Dur   float64
}

// Track describes an available caption track.
type Track struct {
	LangCode string
	Name     string
}

// Service lists and fetches video caption tracks and resolves video titles.
type Service interface {
	// Title resolves the video title, best-effort. Never fails: returns
	// the placeholder "video" when the lookup does not succeed.
	Title(ctx context.Context, videoID string) string

	// List returns the available caption tracks for a video.
	// Returns ErrDisabled when the video exposes no track catalog.
	List(ctx context.Context, videoID string) ([]Track, error)

	// Fetch downloads the caption track for one language.
	Fetch(ctx context.Context, videoID, langCode string) ([]Segment, error)
}
