package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/swiss-game/swiss/pkg/domain/model"
	"github.com/swiss-game/swiss/pkg/domain/types"
	"github.com/swiss-game/swiss/pkg/repository/memory"
)

// fixture is a small game: two delegations with one delegate each
type fixture struct {
	repo   *memory.Memory
	red    *model.Delegation
	blue   *model.Delegation
	alice  *model.Delegate
	bob    *model.Delegate
	round1 *model.Round
	round2 *model.Round
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	repo := memory.New()

	red, err := repo.Delegation().Create(ctx, &model.Delegation{ID: "red", Name: "Red"})
	gt.NoError(t, err).Required()
	blue, err := repo.Delegation().Create(ctx, &model.Delegation{ID: "blue", Name: "Blue"})
	gt.NoError(t, err).Required()

	alice, err := repo.Delegate().Create(ctx, &model.Delegate{ID: "alice", Name: "Alice", Delegation: red.ID})
	gt.NoError(t, err).Required()
	bob, err := repo.Delegate().Create(ctx, &model.Delegate{ID: "bob", Name: "Bob", Delegation: blue.ID})
	gt.NoError(t, err).Required()

	round1, err := repo.Round().Create(ctx, &model.Round{ID: "r1", Name: "Round 1", Tense: types.TensePresent})
	gt.NoError(t, err).Required()
	round2, err := repo.Round().Create(ctx, &model.Round{ID: "r2", Name: "Round 2", Tense: types.TenseFuture})
	gt.NoError(t, err).Required()

	return &fixture{
		repo:   repo,
		red:    red,
		blue:   blue,
		alice:  alice,
		bob:    bob,
		round1: round1,
		round2: round2,
	}
}

func (f *fixture) addAction(t *testing.T, roundID model.RoundID, a *model.Action) *model.Action {
	t.Helper()
	if a.Key == "" {
		a.Key = model.NewActionKey()
	}
	gt.NoError(t, f.repo.Action().Set(context.Background(), roundID, a)).Required()
	return a
}

func (f *fixture) addProject(t *testing.T, p *model.Project) *model.Project {
	t.Helper()
	created, err := f.repo.Project().Create(context.Background(), p)
	gt.NoError(t, err).Required()
	return created
}
