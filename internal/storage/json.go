package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"syntaxtest/internal/domain"
)

// Save writes the traversal counters and problems to the configured JSON output file.
func (s *JSONStorage) Save(result *domain.TraversalResult, testPath string) error {
	output := domain.RunOutput{
		Meta: domain.RunMeta{
			TestPath:        testPath,
			CasesRun:        result.Run,
			CasesPassed:     result.Passed,
			CasesFailed:     result.Run - result.Passed,
			Aborted:         !result.Continue,
			Duration:        result.Duration.String(),
			DurationSeconds: result.Duration.Seconds(),
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Details: result.Problems,
	}
	if output.Details == nil {
		output.Details = []domain.CaseProblem{}
	}
	return s.SaveOutput(&output)
}

// Load reads the last run summary from the configured JSON output file.
func (s *JSONStorage) Load() (*domain.RunOutput, error) {
	path := s.cfg.GetOutputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var output domain.RunOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &output, nil
}

// SaveOutput writes the full output to the configured JSON file.
func (s *JSONStorage) SaveOutput(output *domain.RunOutput) error {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}
