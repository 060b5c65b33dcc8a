package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"syntaxtest/internal/domain"
	"syntaxtest/internal/parser"
	"syntaxtest/internal/ui"
)

// Engine loads and runs test cases
type Engine interface {
	// Load reads the case root/name from disk.
	Load(root, name string) (*domain.TestCase, error)
	// Run executes the case and classifies the result.
	Run(ctx context.Context, tc *domain.TestCase) domain.RunOutcome
	// RawSource returns the case source exactly as stored.
	RawSource(tc *domain.TestCase) string
	// SerializeExpectations renders diagnostics as an expectation block body.
	SerializeExpectations(diags []domain.Diagnostic, colored bool) string
}

// LoadError is returned when a file cannot be interpreted as a test case
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Cases implements the file side of Engine shared by concrete engines
type Cases struct {
	parser *parser.DiagnosticParser
}

// NewCases creates a Cases
func NewCases(p *parser.DiagnosticParser) *Cases {
	return &Cases{parser: p}
}

// Load reads and splits the case file
func (c *Cases) Load(root, name string) (*domain.TestCase, error) {
	path := filepath.Join(root, name)
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	source, expectations, err := c.parser.ParseCase(string(content))
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	return &domain.TestCase{
		Name:         name,
		Path:         path,
		Source:       source,
		Expectations: expectations,
	}, nil
}

// RawSource returns the case source exactly as stored
func (c *Cases) RawSource(tc *domain.TestCase) string {
	return tc.Source
}

// SerializeExpectations renders one "// Kind: message" line per diagnostic.
// The kind is styled when colored is set; the on-disk form is never colored.
func (c *Cases) SerializeExpectations(diags []domain.Diagnostic, colored bool) string {
	var b strings.Builder
	p := ui.NewPrinter(&b, colored)
	for _, d := range diags {
		p.Printf("%s", parser.ExpectationPrefix)
		p.Styled(kindRole(d.Kind), "%s", d.Kind)
		p.Printf(": %s\n", d.Message)
	}
	return b.String()
}

// Report formats the expected and obtained diagnostics of a failing case
func (c *Cases) Report(expected, obtained []domain.Diagnostic, indent string, colored bool) string {
	var b strings.Builder
	p := ui.NewPrinter(&b, colored)
	c.printList(p, "Expected result:", expected, indent)
	c.printList(p, "Obtained result:", obtained, indent)
	return b.String()
}

func (c *Cases) printList(p *ui.Printer, title string, diags []domain.Diagnostic, indent string) {
	p.Printf("%s", indent)
	p.Styled(ui.Heading, "%s", title)
	p.Println()
	if len(diags) == 0 {
		p.Printf("%s%s", indent, indent)
		p.Styled(ui.Success, "Success")
		p.Println()
		return
	}
	for _, d := range diags {
		p.Printf("%s%s", indent, indent)
		p.Styled(kindRole(d.Kind), "%s", d.Kind)
		p.Printf(": %s\n", d.Message)
	}
}

// Equal reports whether two diagnostic lists match in order
func Equal(a, b []domain.Diagnostic) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func kindRole(kind string) ui.Role {
	if strings.Contains(kind, "Warning") {
		return ui.Warning
	}
	return ui.Failure
}
