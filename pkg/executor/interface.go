package executor

import "context"

// Executor runs external commands, used for the optional ffmpeg remux.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
}
