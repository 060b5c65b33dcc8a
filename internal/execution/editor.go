package execution

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
)

// Editor opens a case file for the operator
type Editor interface {
	Open(ctx context.Context, path string) error
}

// CommandEditor runs "<editor> <path>" and waits for it to exit
type CommandEditor struct {
	command string
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

// NewCommandEditor creates an editor launcher attached to the given streams
func NewCommandEditor(command string, stdin io.Reader, stdout, stderr io.Writer) *CommandEditor {
	return &CommandEditor{command: command, stdin: stdin, stdout: stdout, stderr: stderr}
}

// Open runs the editor on path. A non-zero exit is returned as an error.
func (e *CommandEditor) Open(ctx context.Context, path string) error {
	args := strings.Fields(e.command)
	if len(args) == 0 {
		return errors.New("no editor configured (set EDITOR or --editor)")
	}

	cmd := exec.CommandContext(ctx, args[0], append(args[1:], path)...)
	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr
	return cmd.Run()
}
