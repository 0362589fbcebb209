package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/swiss-game/swiss/pkg/domain/interfaces"
	"github.com/swiss-game/swiss/pkg/domain/model"
	"github.com/swiss-game/swiss/pkg/domain/types"
	"github.com/swiss-game/swiss/pkg/utils/logging"
)

type ActionUseCase struct {
	repo    interfaces.Repository
	lookups *model.Lookups
}

func NewActionUseCase(repo interfaces.Repository, lookups *model.Lookups) *ActionUseCase {
	if lookups == nil {
		lookups = model.DefaultLookups()
	}
	return &ActionUseCase{
		repo:    repo,
		lookups: lookups,
	}
}

// SubmitAction stores a new action in the round under a fresh key. The
// delegation defaults to the delegate's own and visibility to private.
func (uc *ActionUseCase) SubmitAction(ctx context.Context, roundID model.RoundID, action *model.Action) (*model.Action, error) {
	if action.Delegate == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "action delegate is required")
	}
	if !uc.lookups.ActionTypes.Has(string(action.Type)) {
		return nil, goerr.Wrap(ErrInvalidInput, "invalid action type", goerr.V("type", action.Type))
	}
	if action.DF < 0 {
		return nil, goerr.Wrap(ErrInvalidInput, "df must not be negative", goerr.V("df", action.DF))
	}
	if action.Visibility != "" && !uc.lookups.Visibilities.Has(string(action.Visibility)) {
		return nil, goerr.Wrap(ErrInvalidInput, "invalid visibility", goerr.V("visibility", action.Visibility))
	}

	if _, err := uc.repo.Round().Get(ctx, roundID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, goerr.Wrap(ErrRoundNotFound, "round not found", goerr.V(RoundIDKey, roundID))
		}
		return nil, goerr.Wrap(err, "failed to get round", goerr.V(RoundIDKey, roundID))
	}

	submitted := action.Copy()
	submitted.Key = model.NewActionKey()
	submitted.RoundID = roundID
	if submitted.Visibility == "" {
		submitted.Visibility = types.VisibilityPrivate
	}

	if submitted.Delegation == "" {
		delegate, err := uc.repo.Delegate().Get(ctx, submitted.Delegate)
		switch {
		case err == nil:
			submitted.Delegation = delegate.Delegation
		case !errors.Is(err, model.ErrNotFound):
			return nil, goerr.Wrap(err, "failed to get delegate", goerr.V(model.DelegateIDKey, submitted.Delegate))
		}
	}

	if err := uc.repo.Action().Set(ctx, roundID, submitted); err != nil {
		return nil, goerr.Wrap(err, "failed to store action",
			goerr.V(RoundIDKey, roundID), goerr.V(ActionKeyKey, submitted.Key))
	}

	logging.From(ctx).Debug("action submitted",
		"round_id", roundID,
		"action_key", submitted.Key,
		"delegate", submitted.Delegate,
	)
	return submitted, nil
}

func (uc *ActionUseCase) ListActions(ctx context.Context, roundID model.RoundID) ([]*model.Action, error) {
	actions, err := uc.repo.Action().List(ctx, roundID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list actions", goerr.V(RoundIDKey, roundID))
	}
	return actions, nil
}
