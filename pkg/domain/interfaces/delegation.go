package interfaces

import (
	"context"

	"github.com/swiss-game/swiss/pkg/domain/model"
)

// DelegationRepository defines the interface for Delegation data access
type DelegationRepository interface {
	Create(ctx context.Context, delegation *model.Delegation) (*model.Delegation, error)
	Get(ctx context.Context, id model.DelegationID) (*model.Delegation, error)
	List(ctx context.Context) ([]*model.Delegation, error)
	Delete(ctx context.Context, id model.DelegationID) error
}

// DelegateRepository defines the interface for Delegate data access
type DelegateRepository interface {
	Create(ctx context.Context, delegate *model.Delegate) (*model.Delegate, error)
	Get(ctx context.Context, id model.DelegateID) (*model.Delegate, error)
	List(ctx context.Context) ([]*model.Delegate, error)
}

// DelegateRoundRepository defines the interface for delegateRounds/{delegate}/{round}
type DelegateRoundRepository interface {
	// Set writes the full linkage value
	Set(ctx context.Context, dr *model.DelegateRound) error

	Get(ctx context.Context, delegateID model.DelegateID, roundID model.RoundID) (*model.DelegateRound, error)

	// ListByRound returns the linkage of every delegate for the round
	ListByRound(ctx context.Context, roundID model.RoundID) ([]*model.DelegateRound, error)

	// SetMarkedAsSent patches only the markedAsSent flag
	SetMarkedAsSent(ctx context.Context, delegateID model.DelegateID, roundID model.RoundID, sent bool) error

	Delete(ctx context.Context, delegateID model.DelegateID, roundID model.RoundID) error
}
