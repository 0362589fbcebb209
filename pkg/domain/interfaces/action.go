package interfaces

import (
	"context"

	"github.com/swiss-game/swiss/pkg/domain/model"
)

// ActionRepository defines the interface for Action data access.
// Actions live under their round: actions/{roundID}/{actionKey}.
type ActionRepository interface {
	// Set writes the full value of an action, replacing every field
	Set(ctx context.Context, roundID model.RoundID, action *model.Action) error

	// Get retrieves one action
	Get(ctx context.Context, roundID model.RoundID, key model.ActionKey) (*model.Action, error)

	// List takes a point-in-time snapshot of a round's actions in key order
	List(ctx context.Context, roundID model.RoundID) ([]*model.Action, error)

	// UpdateResult patches only the result field. Returns model.ErrNotFound
	// if the action does not exist; it never creates one.
	UpdateResult(ctx context.Context, roundID model.RoundID, key model.ActionKey, result string) error

	// Delete removes one action
	Delete(ctx context.Context, roundID model.RoundID, key model.ActionKey) error

	// DeleteByRound removes every action of the round
	DeleteByRound(ctx context.Context, roundID model.RoundID) error
}
