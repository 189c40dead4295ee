package command

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/m-mizutani/autobump/pkg/domain/interfaces"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

const redacted = "[REDACTED]"

type runner struct {
	secrets []string
}

// Option is a functional option for the command runner
type Option func(*runner)

// WithSecret registers a value that must never appear in logs or errors
func WithSecret(secret string) Option {
	return func(r *runner) {
		if secret != "" {
			r.secrets = append(r.secrets, secret)
		}
	}
}

// NewRunner creates a CommandRunner backed by os/exec
func NewRunner(opts ...Option) interfaces.CommandRunner {
	r := &runner{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes name with args in dir and waits for it to finish
func (r *runner) Run(ctx context.Context, dir, name string, args ...string) (string, error) {
	logger := ctxlog.From(ctx)
	cmdLine := r.redact(strings.Join(append([]string{name}, args...), " "))

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	logger.Debug("Running command", "command", cmdLine, "dir", dir)

	if err := cmd.Run(); err != nil {
		return "", goerr.Wrap(err, "command failed",
			goerr.V("command", cmdLine),
			goerr.V("dir", dir),
			goerr.V("stderr", r.redact(strings.TrimSpace(stderr.String()))),
		)
	}

	logger.Debug("Command finished",
		"command", cmdLine,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return stdout.String(), nil
}

func (r *runner) redact(s string) string {
	for _, secret := range r.secrets {
		s = strings.ReplaceAll(s, secret, redacted)
	}
	return s
}
