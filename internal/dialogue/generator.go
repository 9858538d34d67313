package dialogue

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/docucast/internal/llm"
)

const instructionImprove = "Based on the original text, please generate an improved version of the dialogue by incorporating the edits, comments and feedback."

// dialogueSchema constrains model output to the Dialogue shape.
var dialogueSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "scratchpad": {"type": "string"},
    "dialogue": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "speaker": {"type": "string", "enum": ["speaker-1", "speaker-2"]},
          "text": {"type": "string"}
        },
        "required": ["speaker", "text"],
        "additionalProperties": false
      }
    }
  },
  "required": ["scratchpad", "dialogue"],
  "additionalProperties": false
}`)

func (g *implGenerator) Generate(ctx context.Context, req GenerateRequest) (*Dialogue, error) {
	prompt := buildPrompt(req)

	var lastErr error
	for attempt := 1; attempt <= g.maxRetries; attempt++ {
		raw, err := g.completer.Complete(ctx, llm.Request{
			Prompt:     prompt,
			SchemaName: "dialogue",
			Schema:     dialogueSchema,
		})
		if err != nil {
			return nil, err
		}

		var dlg Dialogue
		if err := json.Unmarshal([]byte(raw), &dlg); err != nil {
			g.logger.Warn(ctx, "Attempt %d: model output is not valid JSON: %v", attempt, err)
			lastErr = err
			continue
		}
		if err := dlg.Validate(); err != nil {
			g.logger.Warn(ctx, "Attempt %d: invalid dialogue: %v", attempt, err)
			lastErr = err
			continue
		}

		return &dlg, nil
	}

	return nil, fmt.Errorf("no valid dialogue after %d attempts: %w", g.maxRetries, lastErr)
}

// buildPrompt assembles the template sections around the input text. The
// edited transcript and feedback blocks appear only when supplied.
func buildPrompt(req GenerateRequest) string {
	text := req.Text
	if label := languageLabel(req.Language); label != "" {
		text = "Langue : " + label + "\n\n" + text
	}

	editedBlock := ""
	if req.EditedTranscript != "" {
		editedBlock = "\nPreviously generated edited transcript, with specific edits and comments that I want you to carefully address:\n" +
			"<edited_transcript>\n" + req.EditedTranscript + "</edited_transcript>"
	}

	feedbackBlock := ""
	if req.Feedback != "" {
		feedbackBlock = "\nOverall user feedback:\n\n" + req.Feedback
	}

	if strings.TrimSpace(editedBlock) != "" || strings.TrimSpace(feedbackBlock) != "" {
		feedbackBlock = "<requested_improvements>" + feedbackBlock + "\n\n" + instructionImprove + "</requested_improvements>"
	}

	tpl := req.Template
	return tpl.Intro + "\n\n" +
		"Here is the original input text:\n\n" +
		"<input_text>\n" + text + "\n</input_text>\n\n" +
		tpl.TextInstructions + "\n\n" +
		"<scratchpad>\n" + tpl.ScratchPad + "\n</scratchpad>\n\n" +
		tpl.Prelude + "\n\n" +
		"<podcast_dialogue>\n" + tpl.Dialog + "\n</podcast_dialogue>\n" +
		editedBlock + feedbackBlock
}

// languageLabel maps a config language code to the prompt prefix label.
func languageLabel(lang string) string {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case "fr":
		return "Français"
	case "en":
		return "English"
	case "":
		return ""
	default:
		return lang
	}
}
