package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/swiss-game/swiss/pkg/domain/model"
)

type delegationRepository struct {
	mu          sync.RWMutex
	delegations map[model.DelegationID]*model.Delegation
	order       []model.DelegationID
}

func newDelegationRepository() *delegationRepository {
	return &delegationRepository{
		delegations: make(map[model.DelegationID]*model.Delegation),
	}
}

func (r *delegationRepository) Create(ctx context.Context, delegation *model.Delegation) (*model.Delegation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := *delegation
	if created.ID == "" {
		created.ID = model.DelegationID(model.NewID())
	}
	if _, exists := r.delegations[created.ID]; !exists {
		r.order = append(r.order, created.ID)
	}
	r.delegations[created.ID] = &created
	out := created
	return &out, nil
}

func (r *delegationRepository) Get(ctx context.Context, id model.DelegationID) (*model.Delegation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, exists := r.delegations[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "delegation not found", goerr.V(model.DelegationIDKey, id))
	}
	out := *d
	return &out, nil
}

func (r *delegationRepository) List(ctx context.Context) ([]*model.Delegation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	delegations := make([]*model.Delegation, 0, len(r.order))
	for _, id := range r.order {
		d := *r.delegations[id]
		delegations = append(delegations, &d)
	}
	return delegations, nil
}

func (r *delegationRepository) Delete(ctx context.Context, id model.DelegationID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.delegations[id]; !exists {
		return goerr.Wrap(ErrNotFound, "delegation not found", goerr.V(model.DelegationIDKey, id))
	}
	delete(r.delegations, id)
	for i, did := range r.order {
		if did == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

type delegateRepository struct {
	mu        sync.RWMutex
	delegates map[model.DelegateID]*model.Delegate
	order     []model.DelegateID
}

func newDelegateRepository() *delegateRepository {
	return &delegateRepository{
		delegates: make(map[model.DelegateID]*model.Delegate),
	}
}

func (r *delegateRepository) Create(ctx context.Context, delegate *model.Delegate) (*model.Delegate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := *delegate
	if created.ID == "" {
		created.ID = model.DelegateID(model.NewID())
	}
	if _, exists := r.delegates[created.ID]; !exists {
		r.order = append(r.order, created.ID)
	}
	r.delegates[created.ID] = &created
	out := created
	return &out, nil
}

func (r *delegateRepository) Get(ctx context.Context, id model.DelegateID) (*model.Delegate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, exists := r.delegates[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "delegate not found", goerr.V(model.DelegateIDKey, id))
	}
	out := *d
	return &out, nil
}

func (r *delegateRepository) List(ctx context.Context) ([]*model.Delegate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	delegates := make([]*model.Delegate, 0, len(r.order))
	for _, id := range r.order {
		d := *r.delegates[id]
		delegates = append(delegates, &d)
	}
	return delegates, nil
}

type delegateRoundRepository struct {
	mu    sync.RWMutex
	links map[model.DelegateID]map[model.RoundID]*model.DelegateRound
}

func newDelegateRoundRepository() *delegateRoundRepository {
	return &delegateRoundRepository{
		links: make(map[model.DelegateID]map[model.RoundID]*model.DelegateRound),
	}
}

func (r *delegateRoundRepository) Set(ctx context.Context, dr *model.DelegateRound) error {
	if dr.DelegateID == "" || dr.RoundID == "" {
		return goerr.New("delegate and round IDs are required",
			goerr.V(model.DelegateIDKey, dr.DelegateID), goerr.V(model.RoundIDKey, dr.RoundID))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.links[dr.DelegateID]; !exists {
		r.links[dr.DelegateID] = make(map[model.RoundID]*model.DelegateRound)
	}
	stored := *dr
	r.links[dr.DelegateID][dr.RoundID] = &stored
	return nil
}

func (r *delegateRoundRepository) Get(ctx context.Context, delegateID model.DelegateID, roundID model.RoundID) (*model.DelegateRound, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dr, exists := r.links[delegateID][roundID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "delegate round not found",
			goerr.V(model.DelegateIDKey, delegateID), goerr.V(model.RoundIDKey, roundID))
	}
	out := *dr
	return &out, nil
}

func (r *delegateRoundRepository) ListByRound(ctx context.Context, roundID model.RoundID) ([]*model.DelegateRound, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.DelegateRound, 0)
	for _, rounds := range r.links {
		if dr, exists := rounds[roundID]; exists {
			out := *dr
			result = append(result, &out)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].DelegateID < result[j].DelegateID
	})
	return result, nil
}

func (r *delegateRoundRepository) SetMarkedAsSent(ctx context.Context, delegateID model.DelegateID, roundID model.RoundID, sent bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	dr, exists := r.links[delegateID][roundID]
	if !exists {
		return goerr.Wrap(ErrNotFound, "delegate round not found",
			goerr.V(model.DelegateIDKey, delegateID), goerr.V(model.RoundIDKey, roundID))
	}
	dr.MarkedAsSent = sent
	return nil
}

func (r *delegateRoundRepository) Delete(ctx context.Context, delegateID model.DelegateID, roundID model.RoundID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.links[delegateID][roundID]; !exists {
		return goerr.Wrap(ErrNotFound, "delegate round not found",
			goerr.V(model.DelegateIDKey, delegateID), goerr.V(model.RoundIDKey, roundID))
	}
	delete(r.links[delegateID], roundID)
	return nil
}
