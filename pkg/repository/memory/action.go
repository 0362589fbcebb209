package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/swiss-game/swiss/pkg/domain/model"
)

type actionRepository struct {
	mu      sync.RWMutex
	actions map[model.RoundID]map[model.ActionKey]*model.Action
}

func newActionRepository() *actionRepository {
	return &actionRepository{
		actions: make(map[model.RoundID]map[model.ActionKey]*model.Action),
	}
}

func (r *actionRepository) ensureRound(roundID model.RoundID) {
	if _, exists := r.actions[roundID]; !exists {
		r.actions[roundID] = make(map[model.ActionKey]*model.Action)
	}
}

func (r *actionRepository) Set(ctx context.Context, roundID model.RoundID, action *model.Action) error {
	if action.Key == "" {
		return goerr.New("action key is required", goerr.V(model.RoundIDKey, roundID))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.ensureRound(roundID)
	stored := action.Copy()
	stored.RoundID = roundID
	r.actions[roundID][stored.Key] = stored
	return nil
}

func (r *actionRepository) Get(ctx context.Context, roundID model.RoundID, key model.ActionKey) (*model.Action, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	action, exists := r.actions[roundID][key]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "action not found",
			goerr.V(model.RoundIDKey, roundID), goerr.V(model.ActionKeyKey, key))
	}
	return action.Copy(), nil
}

func (r *actionRepository) List(ctx context.Context, roundID model.RoundID) ([]*model.Action, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	round := r.actions[roundID]
	actions := make([]*model.Action, 0, len(round))
	for _, action := range round {
		actions = append(actions, action.Copy())
	}
	sort.Slice(actions, func(i, j int) bool {
		return actions[i].Key < actions[j].Key
	})
	return actions, nil
}

func (r *actionRepository) UpdateResult(ctx context.Context, roundID model.RoundID, key model.ActionKey, result string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	action, exists := r.actions[roundID][key]
	if !exists {
		return goerr.Wrap(ErrNotFound, "action not found",
			goerr.V(model.RoundIDKey, roundID), goerr.V(model.ActionKeyKey, key))
	}
	action.Result = result
	return nil
}

func (r *actionRepository) Delete(ctx context.Context, roundID model.RoundID, key model.ActionKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.actions[roundID][key]; !exists {
		return goerr.Wrap(ErrNotFound, "action not found",
			goerr.V(model.RoundIDKey, roundID), goerr.V(model.ActionKeyKey, key))
	}
	delete(r.actions[roundID], key)
	return nil
}

func (r *actionRepository) DeleteByRound(ctx context.Context, roundID model.RoundID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.actions, roundID)
	return nil
}
