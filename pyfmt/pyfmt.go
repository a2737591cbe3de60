// Package pyfmt integrates external Python code formatters as a
// post-processing step over generated source. A formatter takes text and
// returns reformatted text or fails; its failure is reported to the caller
// and never retried, and generation state is unaffected.
package pyfmt

import (
	"bytes"
	"fmt"
	"os/exec"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/teranos/codecraft/errors"
	"github.com/teranos/codecraft/logger"
)

// DefaultLineLength is the line length passed to the default formatter.
const DefaultLineLength = 88

// Formatter reformats Python source text.
type Formatter interface {
	Format(src string) (string, error)
}

// Exec is a Formatter that pipes source through an external command on
// stdin and reads the result from stdout.
type Exec struct {
	// Command is the full command line, parsed with shell quoting rules.
	Command string
}

// New creates an Exec formatter from a command line string.
func New(command string) *Exec {
	return &Exec{Command: command}
}

// Black returns an Exec formatter invoking black in pipe mode.
func Black(lineLength int) *Exec {
	if lineLength <= 0 {
		lineLength = DefaultLineLength
	}
	return New(fmt.Sprintf("black -q --line-length %d -", lineLength))
}

// Format runs the formatter command over src. On failure the returned error
// wraps errors.ErrFormatterFailed and carries the command's stderr as
// detail.
func (e *Exec) Format(src string) (string, error) {
	argv, err := shellquote.Split(e.Command)
	if err != nil {
		return "", errors.Wrapf(errors.ErrFormatterFailed, "parse command %q: %v", e.Command, err)
	}
	if len(argv) == 0 {
		return "", errors.Wrap(errors.ErrFormatterFailed, "empty formatter command")
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = bytes.NewBufferString(src)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debugw("running formatter", "command", e.Command, "bytes", len(src))
	if err := cmd.Run(); err != nil {
		wrapped := errors.Wrapf(errors.ErrFormatterFailed, "%s: %v", argv[0], err)
		if msg := stderr.String(); msg != "" {
			wrapped = errors.WithDetail(wrapped, msg)
		}
		return "", wrapped
	}
	return stdout.String(), nil
}
