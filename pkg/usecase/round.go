package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/swiss-game/swiss/pkg/domain/interfaces"
	"github.com/swiss-game/swiss/pkg/domain/model"
	"github.com/swiss-game/swiss/pkg/domain/types"
	"github.com/swiss-game/swiss/pkg/utils/logging"
)

type RoundUseCase struct {
	repo    interfaces.Repository
	lookups *model.Lookups
}

func NewRoundUseCase(repo interfaces.Repository, lookups *model.Lookups) *RoundUseCase {
	if lookups == nil {
		lookups = model.DefaultLookups()
	}
	return &RoundUseCase{
		repo:    repo,
		lookups: lookups,
	}
}

// RoundUpdate holds the fields to change; nil fields are kept
type RoundUpdate struct {
	Name     *string
	Tense    *types.Tense
	Deadline *string
	Size     *string
}

func (uc *RoundUseCase) validate(round *model.Round) error {
	if strings.TrimSpace(round.Name) == "" {
		return goerr.Wrap(ErrInvalidInput, "round name is required")
	}
	if round.Tense != "" && !round.Tense.IsValid() {
		return goerr.Wrap(ErrInvalidInput, "invalid tense", goerr.V("tense", round.Tense))
	}
	if round.Size != "" && !uc.lookups.Sizes.Has(round.Size) {
		return goerr.Wrap(ErrInvalidInput, "invalid size", goerr.V("size", round.Size))
	}
	return nil
}

func (uc *RoundUseCase) CreateRound(ctx context.Context, round *model.Round) (*model.Round, error) {
	if err := uc.validate(round); err != nil {
		return nil, err
	}

	created, err := uc.repo.Round().Create(ctx, round)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create round", goerr.V("name", round.Name))
	}

	logging.From(ctx).Info("round created", "round_id", created.ID, "name", created.Name)
	return created, nil
}

func (uc *RoundUseCase) GetRound(ctx context.Context, id model.RoundID) (*model.Round, error) {
	round, err := uc.repo.Round().Get(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, goerr.Wrap(ErrRoundNotFound, "round not found", goerr.V(RoundIDKey, id))
		}
		return nil, goerr.Wrap(err, "failed to get round", goerr.V(RoundIDKey, id))
	}
	return round, nil
}

func (uc *RoundUseCase) ListRounds(ctx context.Context) ([]*model.Round, error) {
	rounds, err := uc.repo.Round().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list rounds")
	}
	return rounds, nil
}

func (uc *RoundUseCase) UpdateRound(ctx context.Context, id model.RoundID, update RoundUpdate) (*model.Round, error) {
	round, err := uc.GetRound(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		round.Name = *update.Name
	}
	if update.Tense != nil {
		round.Tense = *update.Tense
	}
	if update.Deadline != nil {
		round.Deadline = *update.Deadline
	}
	if update.Size != nil {
		round.Size = *update.Size
	}

	if err := uc.validate(round); err != nil {
		return nil, err
	}

	updated, err := uc.repo.Round().Update(ctx, round)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update round", goerr.V(RoundIDKey, id))
	}
	return updated, nil
}

// DeleteRound removes every delegate linkage of the round, every action of
// the round and the round itself. All writes are attempted; failures are
// returned together and completed writes stay in place.
func (uc *RoundUseCase) DeleteRound(ctx context.Context, id model.RoundID) error {
	if _, err := uc.GetRound(ctx, id); err != nil {
		return err
	}

	var errs []error

	links, err := uc.repo.DelegateRound().ListByRound(ctx, id)
	if err != nil {
		errs = append(errs, goerr.Wrap(err, "failed to list delegate rounds"))
	}
	for _, link := range links {
		if err := uc.repo.DelegateRound().Delete(ctx, link.DelegateID, id); err != nil && !errors.Is(err, model.ErrNotFound) {
			errs = append(errs, goerr.Wrap(err, "failed to delete delegate round",
				goerr.V(model.DelegateIDKey, link.DelegateID)))
		}
	}

	if err := uc.repo.Action().DeleteByRound(ctx, id); err != nil {
		errs = append(errs, goerr.Wrap(err, "failed to delete actions"))
	}

	if err := uc.repo.Round().Delete(ctx, id); err != nil && !errors.Is(err, model.ErrNotFound) {
		errs = append(errs, goerr.Wrap(err, "failed to delete round record"))
	}

	if len(errs) > 0 {
		return goerr.Wrap(errors.Join(append([]error{ErrPartialFailure}, errs...)...),
			"round deletion incomplete", goerr.V(RoundIDKey, id), goerr.V("failures", len(errs)))
	}

	logging.From(ctx).Info("round deleted", "round_id", id, "delegate_rounds", len(links))
	return nil
}

// ResetActions soft-resets every action of the round and clears the sent
// flag of every existing delegate linkage. All writes are attempted.
func (uc *RoundUseCase) ResetActions(ctx context.Context, id model.RoundID) error {
	if _, err := uc.GetRound(ctx, id); err != nil {
		return err
	}

	var errs []error

	actions, err := uc.repo.Action().List(ctx, id)
	if err != nil {
		errs = append(errs, goerr.Wrap(err, "failed to list actions"))
	}
	for _, action := range actions {
		if err := uc.repo.Action().Set(ctx, id, action.Reset()); err != nil {
			errs = append(errs, goerr.Wrap(err, "failed to reset action",
				goerr.V(ActionKeyKey, action.Key)))
		}
	}

	links, err := uc.repo.DelegateRound().ListByRound(ctx, id)
	if err != nil {
		errs = append(errs, goerr.Wrap(err, "failed to list delegate rounds"))
	}
	for _, link := range links {
		if err := uc.repo.DelegateRound().SetMarkedAsSent(ctx, link.DelegateID, id, false); err != nil {
			errs = append(errs, goerr.Wrap(err, "failed to clear sent flag",
				goerr.V(model.DelegateIDKey, link.DelegateID)))
		}
	}

	if len(errs) > 0 {
		return goerr.Wrap(errors.Join(append([]error{ErrPartialFailure}, errs...)...),
			"action reset incomplete", goerr.V(RoundIDKey, id), goerr.V("failures", len(errs)))
	}

	logging.From(ctx).Info("round actions reset",
		"round_id", id,
		"actions", len(actions),
		"delegate_rounds", len(links),
	)
	return nil
}
