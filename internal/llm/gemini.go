package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/docucast/internal/logger"
)

type implGemini struct {
	apiKeys    []string
	currentKey int
	model      string
	logger     logger.Logger
}

// Complete sends the prompt to Gemini in JSON mode. Rotates API keys on
// 429 / quota errors; other errors fail immediately.
func (g *implGemini) Complete(ctx context.Context, req Request) (string, error) {
	prompt := req.Prompt
	if len(req.Schema) > 0 {
		prompt += "\n\nRespond with a single JSON object matching this JSON schema:\n" + string(req.Schema)
	}

	attempts := len(g.apiKeys)
	var lastErr error

	for range attempts {
		key := g.apiKeys[g.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			g.rotateKey()
			continue
		}

		cfg := &genai.GenerateContentConfig{ResponseMIMEType: "application/json"}

		result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				g.logger.Warn(ctx, "Key %d rate limited, rotating...", g.currentKey+1)
				g.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return text, nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (g *implGemini) rotateKey() {
	g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
}
