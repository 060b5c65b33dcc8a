package storage

import (
	"syntaxtest/internal/config"
	"syntaxtest/internal/domain"
)

// Storage persists and loads the summary of the last run (e.g. for the results viewer).
type Storage interface {
	Save(result *domain.TraversalResult, testPath string) error
	Load() (*domain.RunOutput, error)
	// SaveOutput writes the full output (e.g. after marking problems resolved).
	SaveOutput(output *domain.RunOutput) error
}

// JSONStorage stores results in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
