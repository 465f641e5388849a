// Package shell provides the compiler executor adapter.
package shell

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/cbuild/internal/core/domain"
	"go.trai.ch/cbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{logger: logger}
}

// Execute runs the step's command. The environment is os.Environ() with env
// entries applied on top, so target-level variables override inherited ones.
// Compiler output is streamed line by line to the logger.
func (e *Executor) Execute(ctx context.Context, step *domain.CompileStep, env []string) error {
	if len(step.Command) == 0 {
		return zerr.With(zerr.With(domain.ErrCompileFailed, "target", step.Target.String()), "reason", "empty command")
	}

	cmd := exec.CommandContext(ctx, step.Command[0], step.Command[1:]...) //nolint:gosec // Compiler command comes from project config
	cmd.Dir = step.WorkingDir
	cmd.Env = mergeEnvironment(os.Environ(), env)
	cmd.Stdout = &logWriter{logger: e.logger, step: step}
	cmd.Stderr = &logWriter{logger: e.logger, step: step, stderr: true}

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.With(zerr.With(zerr.Wrap(err, "command failed"),
			"target", step.Target.String()),
			"source", step.Source),
			"exit_code", exitCode)
	}

	return nil
}

// logWriter forwards process output to the logger line by line.
type logWriter struct {
	logger ports.Logger
	step   *domain.CompileStep
	stderr bool
}

func (w *logWriter) Write(p []byte) (int, error) {
	lines := strings.Split(strings.TrimSuffix(string(p), "\n"), "\n")
	for _, line := range lines {
		if line == "" {
			continue
		}
		if w.stderr {
			w.logger.Warn(line, "target", w.step.Target.String())
			continue
		}
		w.logger.Info(line, "target", w.step.Target.String())
	}
	return len(p), nil
}

// mergeEnvironment applies overrides on top of the base environment,
// replacing existing entries by variable name.
func mergeEnvironment(base, overrides []string) []string {
	if len(overrides) == 0 {
		return base
	}

	envMap := make(map[string]string, len(base)+len(overrides))
	var order []string
	apply := func(entries []string) {
		for _, entry := range entries {
			k, v, ok := strings.Cut(entry, "=")
			if !ok {
				continue
			}
			if _, seen := envMap[k]; !seen {
				order = append(order, k)
			}
			envMap[k] = v
		}
	}
	apply(base)
	apply(overrides)

	result := make([]string, 0, len(order))
	for _, k := range order {
		result = append(result, k+"="+envMap[k])
	}
	return result
}
