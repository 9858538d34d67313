package session

import (
	"errors"
	"sync"

	"github.com/nguyentantai21042004/docucast/internal/dialogue"
	"github.com/nguyentantai21042004/docucast/internal/logger"
	"github.com/nguyentantai21042004/docucast/internal/renderer"
	"github.com/nguyentantai21042004/docucast/internal/template"
)

// ErrNoDialogue is returned by operations that need a stored dialogue
// when none has been generated yet.
var ErrNoDialogue = errors.New("session has no dialogue")

// State tracks where a session is in the generate / edit / render loop.
type State string

const (
	StateEmpty     State = "empty"
	StateGenerated State = "generated"
	StateEdited    State = "edited"
	StateRendered  State = "rendered"
)

// Session holds one document's dialogue across generate, edit, re-render
// and regenerate operations. A failed operation leaves the stored state
// untouched.
type Session struct {
	generator dialogue.Generator
	renderer  renderer.Renderer
	logger    logger.Logger

	mu       sync.Mutex
	state    State
	text     string
	tpl      template.Template
	language string
	dlg      *dialogue.Dialogue
	result   *renderer.Result
}

// New creates an empty Session.
func New(gen dialogue.Generator, rend renderer.Renderer, log logger.Logger) *Session {
	return &Session{
		generator: gen,
		renderer:  rend,
		logger:    log,
		state:     StateEmpty,
	}
}
