package tts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/docucast/internal/logger"
)

func TestSynthesize(t *testing.T) {
	var got speechRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/audio/speech", r.URL.Path)
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte("mp3-bytes"))
	}))
	defer srv.Close()

	s, err := New("key", "tts-1", srv.URL, logger.New("error"))
	require.NoError(t, err)

	audio, err := s.Synthesize(context.Background(), SpeakRequest{
		Text:         "Hello world",
		Voice:        "alloy",
		Instructions: "Speak in an emotive and friendly tone.",
	})
	require.NoError(t, err)
	assert.Equal(t, []byte("mp3-bytes"), audio)

	assert.Equal(t, "tts-1", got.Model)
	assert.Equal(t, "Hello world", got.Input)
	assert.Equal(t, "alloy", got.Voice)
	assert.Equal(t, "Speak in an emotive and friendly tone.", got.Instructions)
}

func TestSynthesizeHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	s, err := New("key", "tts-1", srv.URL, logger.New("error"))
	require.NoError(t, err)

	_, err = s.Synthesize(context.Background(), SpeakRequest{Text: "x", Voice: "alloy"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestNewRequiresKey(t *testing.T) {
	_, err := New("", "tts-1", "", logger.New("error"))
	assert.Error(t, err)
}
