package interfaces

import (
	"context"

	"github.com/swiss-game/swiss/pkg/domain/model"
)

// RoundRepository defines the interface for Round data access
type RoundRepository interface {
	// Create stores a new round. An empty ID is generated.
	Create(ctx context.Context, round *model.Round) (*model.Round, error)

	// Get retrieves a round by ID
	Get(ctx context.Context, id model.RoundID) (*model.Round, error)

	// List retrieves all rounds in creation order
	List(ctx context.Context) ([]*model.Round, error)

	// Update replaces an existing round
	Update(ctx context.Context, round *model.Round) (*model.Round, error)

	// Delete removes the round record only. Cascading is done by the use case.
	Delete(ctx context.Context, id model.RoundID) error
}
