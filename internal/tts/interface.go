package tts

import "context"

// SpeakRequest is one line of speech to synthesize.
type SpeakRequest struct {
	Text         string
	Voice        string
	Instructions string
}

// Synthesizer converts a text line into audio bytes (mp3).
type Synthesizer interface {
	Synthesize(ctx context.Context, req SpeakRequest) ([]byte, error)
}
