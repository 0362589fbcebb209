package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/swiss-game/swiss/pkg/domain/interfaces"
	"github.com/swiss-game/swiss/pkg/domain/model"
)

type DelegationUseCase struct {
	repo interfaces.Repository
}

func NewDelegationUseCase(repo interfaces.Repository) *DelegationUseCase {
	return &DelegationUseCase{
		repo: repo,
	}
}

func (uc *DelegationUseCase) CreateDelegation(ctx context.Context, delegation *model.Delegation) (*model.Delegation, error) {
	if strings.TrimSpace(delegation.Name) == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "delegation name is required")
	}

	created, err := uc.repo.Delegation().Create(ctx, delegation)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create delegation", goerr.V("name", delegation.Name))
	}
	return created, nil
}

func (uc *DelegationUseCase) ListDelegations(ctx context.Context) ([]*model.Delegation, error) {
	delegations, err := uc.repo.Delegation().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list delegations")
	}
	return delegations, nil
}

func (uc *DelegationUseCase) DeleteDelegation(ctx context.Context, id model.DelegationID) error {
	if err := uc.repo.Delegation().Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return goerr.Wrap(ErrDelegationNotFound, "delegation not found", goerr.V(model.DelegationIDKey, id))
		}
		return goerr.Wrap(err, "failed to delete delegation", goerr.V(model.DelegationIDKey, id))
	}
	return nil
}

// CreateDelegate registers a player of an existing delegation
func (uc *DelegationUseCase) CreateDelegate(ctx context.Context, delegate *model.Delegate) (*model.Delegate, error) {
	if strings.TrimSpace(delegate.Name) == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "delegate name is required")
	}
	if _, err := uc.repo.Delegation().Get(ctx, delegate.Delegation); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, goerr.Wrap(ErrDelegationNotFound, "delegation not found",
				goerr.V(model.DelegationIDKey, delegate.Delegation))
		}
		return nil, goerr.Wrap(err, "failed to get delegation", goerr.V(model.DelegationIDKey, delegate.Delegation))
	}

	created, err := uc.repo.Delegate().Create(ctx, delegate)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create delegate", goerr.V("name", delegate.Name))
	}
	return created, nil
}

func (uc *DelegationUseCase) ListDelegates(ctx context.Context) ([]*model.Delegate, error) {
	delegates, err := uc.repo.Delegate().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list delegates")
	}
	return delegates, nil
}

// JoinRound links a delegate to a round with its main action allowance
func (uc *DelegationUseCase) JoinRound(ctx context.Context, delegateID model.DelegateID, roundID model.RoundID, availableMainActions int) (*model.DelegateRound, error) {
	if availableMainActions < 0 {
		return nil, goerr.Wrap(ErrInvalidInput, "available main actions must not be negative")
	}

	if _, err := uc.repo.Round().Get(ctx, roundID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, goerr.Wrap(ErrRoundNotFound, "round not found", goerr.V(RoundIDKey, roundID))
		}
		return nil, goerr.Wrap(err, "failed to get round", goerr.V(RoundIDKey, roundID))
	}

	delegate, err := uc.repo.Delegate().Get(ctx, delegateID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, goerr.Wrap(ErrDelegateNotFound, "delegate not found", goerr.V(model.DelegateIDKey, delegateID))
		}
		return nil, goerr.Wrap(err, "failed to get delegate", goerr.V(model.DelegateIDKey, delegateID))
	}

	link := &model.DelegateRound{
		DelegateID:           delegateID,
		RoundID:              roundID,
		DelegationID:         delegate.Delegation,
		AvailableMainActions: availableMainActions,
	}
	if err := uc.repo.DelegateRound().Set(ctx, link); err != nil {
		return nil, goerr.Wrap(err, "failed to link delegate to round",
			goerr.V(model.DelegateIDKey, delegateID), goerr.V(RoundIDKey, roundID))
	}
	return link, nil
}

// MarkSent records that the delegate has sent its actions for the round
func (uc *DelegationUseCase) MarkSent(ctx context.Context, delegateID model.DelegateID, roundID model.RoundID) error {
	if err := uc.repo.DelegateRound().SetMarkedAsSent(ctx, delegateID, roundID, true); err != nil {
		return goerr.Wrap(err, "failed to mark sent",
			goerr.V(model.DelegateIDKey, delegateID), goerr.V(RoundIDKey, roundID))
	}
	return nil
}
