// Package shell provides the child-process runner adapter.
package shell

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/tlenv/internal/core/domain"
	"go.trai.ch/tlenv/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.Runner using os/exec.
type Runner struct {
	host   ports.Host
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(host ports.Host, logger ports.Logger) *Runner {
	return &Runner{host: host, logger: logger}
}

// Run executes the command with exactly the given environment, streaming
// stdout and stderr to the logger. The executable is resolved against the
// PATH inside env, not the process's own PATH, so tools launched into the
// overlay are found there. Returns the child's exit code; spawn failure and
// signal death return an error.
func (r *Runner) Run(ctx context.Context, name string, args []string, env []string) (int, error) {
	executable := name
	if !filepath.IsAbs(name) {
		if lp, err := lookPath(name, env, r.host.Traits().CaseInsensitiveEnv); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, args...) //nolint:gosec // Caller provides the command
	if len(cmd.Args) > 0 {
		// Preserve the name as invoked; CommandContext puts the
		// resolved path into Args[0].
		cmd.Args[0] = name
	}
	cmd.Env = env
	cmd.Stdout = &logWriter{logger: r.logger, level: "info"}
	cmd.Stderr = &logWriter{logger: r.logger, level: "error"}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
			return exitErr.ExitCode(), nil
		}
		cmdErr := zerr.Wrap(err, domain.ErrCommandFailed.Error())
		return -1, zerr.With(cmdErr, "command", name)
	}

	return 0, nil
}

type logWriter struct {
	logger ports.Logger
	level  string
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	lines := strings.Split(strings.TrimSuffix(string(p), "\n"), "\n")
	for _, line := range lines {
		if w.level == "info" {
			w.logger.Info(line)
		} else {
			w.logger.Error(zerr.New(line))
		}
	}
	return len(p), nil
}

// lookPath searches for an executable in the directories named by the PATH
// entry of env. foldKeys accepts any casing of the key, matching platforms
// whose environments are case-insensitive.
func lookPath(file string, env []string, foldKeys bool) (string, error) {
	var path string
	for _, e := range env {
		key, value, ok := strings.Cut(e, "=")
		if !ok {
			continue
		}
		if key == "PATH" || (foldKeys && strings.EqualFold(key, "PATH")) {
			path = value
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
