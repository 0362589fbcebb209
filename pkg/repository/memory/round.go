package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/swiss-game/swiss/pkg/domain/model"
)

type roundRepository struct {
	mu     sync.RWMutex
	rounds map[model.RoundID]*model.Round
	order  []model.RoundID // preserves creation order
}

func newRoundRepository() *roundRepository {
	return &roundRepository{
		rounds: make(map[model.RoundID]*model.Round),
	}
}

func copyRound(r *model.Round) *model.Round {
	c := *r
	return &c
}

func (r *roundRepository) Create(ctx context.Context, round *model.Round) (*model.Round, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyRound(round)
	if created.ID == "" {
		created.ID = model.RoundID(model.NewID())
	}
	if _, exists := r.rounds[created.ID]; exists {
		return nil, goerr.New("round already exists", goerr.V(model.RoundIDKey, created.ID))
	}
	created.CreatedAt = time.Now().UTC()

	r.rounds[created.ID] = created
	r.order = append(r.order, created.ID)
	return copyRound(created), nil
}

func (r *roundRepository) Get(ctx context.Context, id model.RoundID) (*model.Round, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	round, exists := r.rounds[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "round not found", goerr.V(model.RoundIDKey, id))
	}
	return copyRound(round), nil
}

func (r *roundRepository) List(ctx context.Context) ([]*model.Round, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rounds := make([]*model.Round, 0, len(r.order))
	for _, id := range r.order {
		rounds = append(rounds, copyRound(r.rounds[id]))
	}
	return rounds, nil
}

func (r *roundRepository) Update(ctx context.Context, round *model.Round) (*model.Round, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.rounds[round.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "round not found", goerr.V(model.RoundIDKey, round.ID))
	}

	updated := copyRound(round)
	updated.CreatedAt = existing.CreatedAt
	r.rounds[round.ID] = updated
	return copyRound(updated), nil
}

func (r *roundRepository) Delete(ctx context.Context, id model.RoundID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rounds[id]; !exists {
		return goerr.Wrap(ErrNotFound, "round not found", goerr.V(model.RoundIDKey, id))
	}

	delete(r.rounds, id)
	for i, rid := range r.order {
		if rid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
