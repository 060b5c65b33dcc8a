package ui

import (
	"bufio"
	"io"
	"os"

	"golang.org/x/term"
)

// KeyReader reads single keys from the operator
type KeyReader interface {
	ReadKey() (byte, error)
}

// TerminalKeyReader reads one key at a time from a file. When the file is a
// terminal it is switched to raw mode for the duration of each read so the
// key arrives without waiting for Enter. Nothing is read ahead: the editor
// shares the same file.
type TerminalKeyReader struct {
	file *os.File
}

// NewTerminalKeyReader creates a key reader on f (usually os.Stdin)
func NewTerminalKeyReader(f *os.File) *TerminalKeyReader {
	return &TerminalKeyReader{file: f}
}

// ReadKey blocks until a key is available
func (r *TerminalKeyReader) ReadKey() (byte, error) {
	fd := int(r.file.Fd())
	if term.IsTerminal(fd) {
		oldState, err := term.MakeRaw(fd)
		if err == nil {
			defer term.Restore(fd, oldState)
		}
	}

	var buf [1]byte
	for {
		n, err := r.file.Read(buf[:])
		if n == 1 {
			return buf[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}

// StreamKeyReader reads keys from any reader, skipping line breaks
type StreamKeyReader struct {
	reader *bufio.Reader
}

// NewStreamKeyReader creates a key reader over r
func NewStreamKeyReader(r io.Reader) *StreamKeyReader {
	return &StreamKeyReader{reader: bufio.NewReader(r)}
}

// ReadKey returns the next non-newline byte
func (r *StreamKeyReader) ReadKey() (byte, error) {
	for {
		b, err := r.reader.ReadByte()
		if err != nil {
			return 0, err
		}
		if b != '\n' && b != '\r' {
			return b, nil
		}
	}
}
