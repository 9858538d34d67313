package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/docucast/internal/logger"
)

func newTestOpenAI(t *testing.T, model, effort string, webSearch bool, handler http.HandlerFunc) *implOpenAI {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &implOpenAI{
		client:          &http.Client{Timeout: 5 * time.Second},
		baseURL:         srv.URL,
		apiKey:          "test-key",
		model:           model,
		reasoningEffort: effort,
		webSearch:       webSearch,
		logger:          logger.New("error"),
	}
}

func chatReply(content string) string {
	resp := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	}
	b, _ := json.Marshal(resp)
	return string(b)
}

func TestOpenAICompleteSendsSchema(t *testing.T) {
	var got map[string]any
	c := newTestOpenAI(t, "o4-mini", "high", false, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		io.WriteString(w, chatReply(`{"ok":true}`))
	})

	out, err := c.Complete(context.Background(), Request{
		Prompt:     "hello",
		SchemaName: "dialogue",
		Schema:     json.RawMessage(`{"type":"object"}`),
	})
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, out)

	assert.Equal(t, "o4-mini", got["model"])
	assert.Equal(t, "high", got["reasoning_effort"])
	assert.NotContains(t, got, "web_search_options")

	rf, ok := got["response_format"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "json_schema", rf["type"])
	js := rf["json_schema"].(map[string]any)
	assert.Equal(t, "dialogue", js["name"])
	assert.Equal(t, true, js["strict"])
}

func TestOpenAICompleteOmitsEffortForChatModels(t *testing.T) {
	var got map[string]any
	c := newTestOpenAI(t, "gpt-4o", "high", true, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		io.WriteString(w, chatReply("ok"))
	})

	_, err := c.Complete(context.Background(), Request{Prompt: "hello"})
	require.NoError(t, err)

	assert.NotContains(t, got, "reasoning_effort")
	assert.Contains(t, got, "web_search_options")
	assert.NotContains(t, got, "response_format")
}

func TestOpenAICompleteHTTPError(t *testing.T) {
	c := newTestOpenAI(t, "o4-mini", "N/A", false, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"bad key"}}`, http.StatusUnauthorized)
	})

	_, err := c.Complete(context.Background(), Request{Prompt: "hello"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestSupportsReasoningEffort(t *testing.T) {
	cases := []struct {
		model string
		want  bool
	}{
		{"o4-mini", true},
		{"o1-preview", true},
		{"o3", true},
		{"gpt-5", true},
		{"gpt-4o", false},
		{"tts-1", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, supportsReasoningEffort(tc.model), tc.model)
	}
}

func TestNewUnknownProvider(t *testing.T) {
	_, err := New(Options{Provider: "anthropic"}, logger.New("error"))
	assert.Error(t, err)
}

func TestNewRequiresKeys(t *testing.T) {
	_, err := New(Options{Provider: "openai"}, logger.New("error"))
	assert.Error(t, err)

	_, err = New(Options{Provider: "gemini"}, logger.New("error"))
	assert.Error(t, err)
}
