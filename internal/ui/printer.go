package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Role selects the style of a scope
type Role int

const (
	Plain Role = iota
	Heading
	Success
	Failure
	Error
	Warning
	Source
)

// Printer writes styled text to a console. It degrades to plain text when
// colors are disabled and never touches color.NoColor.
type Printer struct {
	out     io.Writer
	colored bool
	styles  map[Role]*color.Color
}

// NewPrinter creates a Printer writing to out
func NewPrinter(out io.Writer, colored bool) *Printer {
	styles := map[Role]*color.Color{
		Plain:   color.New(color.Reset),
		Heading: color.New(color.Bold),
		Success: color.New(color.FgGreen),
		Failure: color.New(color.FgRed),
		Error:   color.New(color.ReverseVideo, color.FgRed),
		Warning: color.New(color.FgYellow),
		Source:  color.New(color.FgCyan),
	}
	for _, c := range styles {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return &Printer{out: out, colored: colored, styles: styles}
}

// Colored reports whether the printer emits escape sequences
func (p *Printer) Colored() bool {
	return p.colored
}

// Scope starts a styled section. Text written to it is styled as one block
// when the scope is closed.
func (p *Printer) Scope(role Role) *Scope {
	return &Scope{out: p.out, style: p.styles[role]}
}

// Styled writes a formatted string in a single scope
func (p *Printer) Styled(role Role, format string, args ...interface{}) {
	s := p.Scope(role)
	defer s.Close()
	s.Printf(format, args...)
}

// Printf writes unstyled text
func (p *Printer) Printf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}

// Println writes unstyled text followed by a newline
func (p *Printer) Println(args ...interface{}) {
	fmt.Fprintln(p.out, args...)
}

// Flush flushes the underlying writer if it buffers
func (p *Printer) Flush() {
	if f, ok := p.out.(interface{ Flush() error }); ok {
		_ = f.Flush()
	}
}

// Scope collects text for one styled block
type Scope struct {
	out    io.Writer
	style  *color.Color
	buf    strings.Builder
	closed bool
}

func (s *Scope) Write(b []byte) (int, error) {
	return s.buf.Write(b)
}

// Printf appends formatted text to the scope
func (s *Scope) Printf(format string, args ...interface{}) {
	fmt.Fprintf(&s.buf, format, args...)
}

// Close writes the collected text wrapped in the scope's style
func (s *Scope) Close() error {
	if s.closed || s.buf.Len() == 0 {
		s.closed = true
		return nil
	}
	s.closed = true
	_, err := io.WriteString(s.out, s.style.Sprint(s.buf.String()))
	return err
}
