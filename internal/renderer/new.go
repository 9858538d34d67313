package renderer

import (
	"github.com/nguyentantai21042004/docucast/internal/logger"
	"github.com/nguyentantai21042004/docucast/internal/tts"
	"github.com/nguyentantai21042004/docucast/pkg/executor"
)

// Options configures rendering: scratch location, concurrency bound,
// per-speaker voices and delivery instructions.
type Options struct {
	ScratchDir           string
	MaxConcurrent        int
	Remux                bool
	Speaker1Voice        string
	Speaker2Voice        string
	Speaker1Instructions string
	Speaker2Instructions string
}

type implRenderer struct {
	synth  tts.Synthesizer
	exec   executor.Executor
	opts   Options
	logger logger.Logger
}

// New creates a Renderer bounded to opts.MaxConcurrent parallel
// synthesis calls.
func New(synth tts.Synthesizer, exec executor.Executor, opts Options, log logger.Logger) Renderer {
	if opts.MaxConcurrent < 1 {
		opts.MaxConcurrent = 1
	}
	return &implRenderer{
		synth:  synth,
		exec:   exec,
		opts:   opts,
		logger: log,
	}
}
