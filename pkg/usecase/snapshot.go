package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/swiss-game/swiss/pkg/domain/interfaces"
	"github.com/swiss-game/swiss/pkg/domain/model"
	"golang.org/x/sync/errgroup"
)

// gameSnapshot is a point-in-time copy of everything the summary and export
// computations read. They never see a partially loaded table.
type gameSnapshot struct {
	projects    []*model.Project
	rounds      []*model.RoundActions
	delegations map[model.DelegationID]*model.Delegation
	delegates   map[model.DelegateID]*model.Delegate
}

// loadRoundActions loads every round in creation order with its actions
func loadRoundActions(ctx context.Context, repo interfaces.Repository) ([]*model.RoundActions, error) {
	rounds, err := repo.Round().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list rounds")
	}

	result := make([]*model.RoundActions, len(rounds))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(8)
	for i, round := range rounds {
		eg.Go(func() error {
			actions, err := repo.Action().List(egCtx, round.ID)
			if err != nil {
				return goerr.Wrap(err, "failed to list actions", goerr.V(RoundIDKey, round.ID))
			}
			result[i] = &model.RoundActions{Round: round, Actions: actions}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

func loadSnapshot(ctx context.Context, repo interfaces.Repository) (*gameSnapshot, error) {
	snap := &gameSnapshot{}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		projects, err := repo.Project().List(egCtx)
		if err != nil {
			return goerr.Wrap(err, "failed to list projects")
		}
		snap.projects = projects
		return nil
	})
	eg.Go(func() error {
		rounds, err := loadRoundActions(egCtx, repo)
		if err != nil {
			return err
		}
		snap.rounds = rounds
		return nil
	})
	eg.Go(func() error {
		delegations, err := repo.Delegation().List(egCtx)
		if err != nil {
			return goerr.Wrap(err, "failed to list delegations")
		}
		snap.delegations = delegationMap(delegations)
		return nil
	})
	eg.Go(func() error {
		delegates, err := repo.Delegate().List(egCtx)
		if err != nil {
			return goerr.Wrap(err, "failed to list delegates")
		}
		snap.delegates = delegateMap(delegates)
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}

func delegationMap(delegations []*model.Delegation) map[model.DelegationID]*model.Delegation {
	m := make(map[model.DelegationID]*model.Delegation, len(delegations))
	for _, d := range delegations {
		m[d.ID] = d
	}
	return m
}

func delegateMap(delegates []*model.Delegate) map[model.DelegateID]*model.Delegate {
	m := make(map[model.DelegateID]*model.Delegate, len(delegates))
	for _, d := range delegates {
		m[d.ID] = d
	}
	return m
}
