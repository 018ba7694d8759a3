// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package toolchain locates and runs the external programs the export
// pipeline depends on: Inkscape renders one SVG to a PDF and pdfunite
// concatenates PDFs.
package toolchain

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/pdiddy/svgpages/internal/ctxlog"
)

// stderrTail bounds how much of a failing command's stderr is kept in the error.
const stderrTail = 2048

// CommandError reports an external command that failed to start or exited
// with a non-zero status.
type CommandError struct {
	Name   string
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("running %s: %v", e.Name, e.Err)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *CommandError) Unwrap() error { return e.Err }

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(ctx context.Context, name string, args []string, stdout, stderr io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Run(ctx context.Context, name string, args []string, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

var defaultExec executor = &osExecutor{}

// run executes one command to completion, logging its output at info level.
// It returns the captured stdout.
func run(ctx context.Context, ex executor, name string, args ...string) (string, error) {
	log := ctxlog.FromContext(ctx)
	log.Debug("running command", "cmd", name, "args", args)

	var stdout, stderr bytes.Buffer
	err := ex.Run(ctx, name, args, &stdout, &stderr)

	if s := strings.TrimSpace(stdout.String()); s != "" {
		log.Info("command stdout", "cmd", name, "output", s)
	}
	if s := strings.TrimSpace(stderr.String()); s != "" {
		log.Info("command stderr", "cmd", name, "output", s)
	}

	if err != nil {
		return "", &CommandError{Name: name, Args: args, Stderr: tail(stderr.String()), Err: err}
	}
	return stdout.String(), nil
}

func tail(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > stderrTail {
		s = "..." + s[len(s)-stderrTail:]
	}
	return s
}

// lookPath resolves bin on PATH and wraps a failure in a CommandError.
func lookPath(ex executor, bin string) (string, error) {
	path, err := ex.LookPath(bin)
	if err != nil {
		return "", &CommandError{Name: bin, Err: fmt.Errorf("not found on PATH: %w", err)}
	}
	return path, nil
}
