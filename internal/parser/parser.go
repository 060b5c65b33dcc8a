package parser

import "syntaxtest/internal/domain"

// Parser turns engine output into diagnostics
type Parser interface {
	ParseDiagnostics(output string) ([]domain.Diagnostic, error)
}
