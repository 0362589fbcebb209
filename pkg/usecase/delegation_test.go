package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/swiss-game/swiss/pkg/domain/model"
	"github.com/swiss-game/swiss/pkg/repository/memory"
	"github.com/swiss-game/swiss/pkg/usecase"
)

func TestDelegationUseCase(t *testing.T) {
	t.Run("create and list delegations and delegates", func(t *testing.T) {
		uc := usecase.NewDelegationUseCase(memory.New())
		ctx := context.Background()

		d, err := uc.CreateDelegation(ctx, &model.Delegation{Name: "Red", Flag: "red.png"})
		gt.NoError(t, err).Required()

		p, err := uc.CreateDelegate(ctx, &model.Delegate{Name: "Alice", Delegation: d.ID})
		gt.NoError(t, err).Required()
		gt.Value(t, p.Delegation).Equal(d.ID)

		delegations, err := uc.ListDelegations(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, delegations).Length(1)

		delegates, err := uc.ListDelegates(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, delegates).Length(1)
	})

	t.Run("delegate of unknown delegation fails", func(t *testing.T) {
		uc := usecase.NewDelegationUseCase(memory.New())
		_, err := uc.CreateDelegate(context.Background(), &model.Delegate{Name: "Alice", Delegation: "ghost"})
		gt.Error(t, err).Is(usecase.ErrDelegationNotFound)
	})

	t.Run("empty names fail", func(t *testing.T) {
		uc := usecase.NewDelegationUseCase(memory.New())
		_, err := uc.CreateDelegation(context.Background(), &model.Delegation{})
		gt.Error(t, err).Is(usecase.ErrInvalidInput)
		_, err = uc.CreateDelegate(context.Background(), &model.Delegate{})
		gt.Error(t, err).Is(usecase.ErrInvalidInput)
	})

	t.Run("delete unknown delegation", func(t *testing.T) {
		uc := usecase.NewDelegationUseCase(memory.New())
		gt.Error(t, uc.DeleteDelegation(context.Background(), "ghost")).Is(usecase.ErrDelegationNotFound)
	})
}

func TestDelegationUseCase_JoinRound(t *testing.T) {
	f := newFixture(t)
	uc := usecase.NewDelegationUseCase(f.repo)
	ctx := context.Background()

	link, err := uc.JoinRound(ctx, f.alice.ID, f.round1.ID, 2)
	gt.NoError(t, err).Required()
	gt.Value(t, link.DelegationID).Equal(f.red.ID)
	gt.Bool(t, link.MarkedAsSent).False()

	gt.NoError(t, uc.MarkSent(ctx, f.alice.ID, f.round1.ID)).Required()
	got, err := f.repo.DelegateRound().Get(ctx, f.alice.ID, f.round1.ID)
	gt.NoError(t, err).Required()
	gt.Bool(t, got.MarkedAsSent).True()
	gt.Value(t, got.AvailableMainActions).Equal(2)

	_, err = uc.JoinRound(ctx, "ghost", f.round1.ID, 1)
	gt.Error(t, err).Is(usecase.ErrDelegateNotFound)

	_, err = uc.JoinRound(ctx, f.alice.ID, "missing", 1)
	gt.Error(t, err).Is(usecase.ErrRoundNotFound)

	_, err = uc.JoinRound(ctx, f.alice.ID, f.round1.ID, -1)
	gt.Error(t, err).Is(usecase.ErrInvalidInput)
}
