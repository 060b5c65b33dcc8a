package execution

import (
	"context"

	"syntaxtest/internal/domain"
)

// Executor runs every case below a test path
type Executor interface {
	Execute(ctx context.Context, root, sub string) (*domain.TraversalResult, error)
}
