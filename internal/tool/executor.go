package tool

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"sync"
)

// ErrEmptyCommand is returned for an empty argv.
var ErrEmptyCommand = errors.New("empty command")

// ExecResult holds the outcome of a single tool invocation.
type ExecResult struct {
	Stderr   string
	ExitCode int // -1 when the process did not start or was killed.
	Err      error
}

// OK reports whether the tool ran and exited with status 0.
func (r ExecResult) OK() bool { return r.Err == nil }

// Executor runs one external command to completion.
type Executor interface {
	Execute(ctx context.Context, argv []string) ExecResult
}

// CommandExecutor runs commands with os/exec. Stderr is always captured for
// classification; when Tee is set, stdout and stderr are also copied to it
// in real time.
type CommandExecutor struct {
	Tee io.Writer
}

// Execute runs argv[0] with argv[1:] and waits for it. There is no timeout;
// only ctx cancellation stops a running tool.
func (e CommandExecutor) Execute(ctx context.Context, argv []string) ExecResult {
	if len(argv) == 0 {
		return ExecResult{ExitCode: -1, Err: ErrEmptyCommand}
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)

	var stderrBuf bytes.Buffer
	if e.Tee != nil {
		// os/exec copies each stream on its own goroutine.
		tee := &lockedWriter{w: e.Tee}
		cmd.Stdout = tee
		cmd.Stderr = io.MultiWriter(&stderrBuf, tee)
	} else {
		cmd.Stderr = &stderrBuf
	}

	err := cmd.Run()
	res := ExecResult{Stderr: stderrBuf.String(), Err: err}
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		res.ExitCode = 0
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
	default:
		res.ExitCode = -1
	}
	return res
}

// lockedWriter serializes writes to w.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
