package parser

import (
	"fmt"
	"regexp"
	"strings"

	"syntaxtest/internal/domain"
)

const (
	// Separator is the line that ends the source part of a case file
	Separator = "// ----"
	// ExpectationPrefix starts every line of the expectation block
	ExpectationPrefix = "// "
)

var diagnosticLine = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*):\s?(.*)$`)

var _ Parser = (*DiagnosticParser)(nil)

// DiagnosticParser parses "Kind: message" lines
type DiagnosticParser struct{}

// NewDiagnosticParser creates a new DiagnosticParser
func NewDiagnosticParser() *DiagnosticParser {
	return &DiagnosticParser{}
}

// ParseDiagnostics parses engine output, one diagnostic per non-blank line
func (p *DiagnosticParser) ParseDiagnostics(output string) ([]domain.Diagnostic, error) {
	var diags []domain.Diagnostic
	for i, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		d, ok := p.parseLine(line)
		if !ok {
			return nil, fmt.Errorf("line %d: not a diagnostic: %q", i+1, line)
		}
		diags = append(diags, d)
	}
	return diags, nil
}

// ParseCase splits case file content into the source and its expectation
// block. The source keeps its bytes verbatim, including the newline before
// the separator. A file without separator has no expectations.
func (p *DiagnosticParser) ParseCase(content string) (string, []domain.Diagnostic, error) {
	source, block, found := splitAtSeparator(content)
	if !found {
		return content, nil, nil
	}

	var diags []domain.Diagnostic
	for i, line := range strings.Split(block, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !strings.HasPrefix(line, ExpectationPrefix) {
			return "", nil, fmt.Errorf("expectation line %d: missing %q prefix: %q", i+1, ExpectationPrefix, line)
		}
		d, ok := p.parseLine(strings.TrimPrefix(line, ExpectationPrefix))
		if !ok {
			return "", nil, fmt.Errorf("expectation line %d: not a diagnostic: %q", i+1, line)
		}
		diags = append(diags, d)
	}
	return source, diags, nil
}

func (p *DiagnosticParser) parseLine(line string) (domain.Diagnostic, bool) {
	m := diagnosticLine.FindStringSubmatch(line)
	if m == nil {
		return domain.Diagnostic{}, false
	}
	return domain.Diagnostic{Kind: m[1], Message: m[2]}, true
}

// splitAtSeparator finds the first line equal to Separator
func splitAtSeparator(content string) (source, block string, found bool) {
	offset := 0
	for offset <= len(content) {
		end := strings.IndexByte(content[offset:], '\n')
		var line string
		next := len(content) + 1
		if end < 0 {
			line = content[offset:]
		} else {
			line = content[offset : offset+end]
			next = offset + end + 1
		}
		if strings.TrimRight(line, "\r") == Separator {
			if next > len(content) {
				return content[:offset], "", true
			}
			return content[:offset], content[next:], true
		}
		offset = next
	}
	return content, "", false
}
