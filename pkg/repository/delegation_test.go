package repository_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/swiss-game/swiss/pkg/domain/interfaces"
	"github.com/swiss-game/swiss/pkg/domain/model"
)

func TestDelegationRepository(t *testing.T) {
	runAll(t, func(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
		t.Run("Create, List and Delete", func(t *testing.T) {
			repo := newRepo(t)
			ctx := context.Background()

			g, err := repo.Delegation().Create(ctx, &model.Delegation{ID: "g1", Name: "Švýcarsko", Flag: "ch.png"})
			gt.NoError(t, err).Required()
			gt.Value(t, g.ID).Equal(model.DelegationID("g1"))

			list, err := repo.Delegation().List(ctx)
			gt.NoError(t, err).Required()
			gt.Array(t, list).Length(1).Required()
			gt.Value(t, list[0].Name).Equal("Švýcarsko")

			gt.NoError(t, repo.Delegation().Delete(ctx, "g1")).Required()
			_, err = repo.Delegation().Get(ctx, "g1")
			gt.Error(t, err).Is(model.ErrNotFound)
		})
	})
}

func TestDelegateRepository(t *testing.T) {
	runAll(t, func(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
		t.Run("Create and Get", func(t *testing.T) {
			repo := newRepo(t)
			ctx := context.Background()

			d, err := repo.Delegate().Create(ctx, &model.Delegate{Name: "Jan", Delegation: "g1"})
			gt.NoError(t, err).Required()

			got, err := repo.Delegate().Get(ctx, d.ID)
			gt.NoError(t, err).Required()
			gt.Value(t, got).Equal(d)

			list, err := repo.Delegate().List(ctx)
			gt.NoError(t, err).Required()
			gt.Array(t, list).Length(1)
		})
	})
}

func TestDelegateRoundRepository(t *testing.T) {
	runAll(t, func(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
		t.Run("ListByRound returns linkage of every delegate", func(t *testing.T) {
			repo := newRepo(t)
			ctx := context.Background()

			for _, dr := range []*model.DelegateRound{
				{DelegateID: "d1", RoundID: "r1", AvailableMainActions: 2},
				{DelegateID: "d2", RoundID: "r1", AvailableMainActions: 1, MarkedAsSent: true},
				{DelegateID: "d2", RoundID: "r2"},
			} {
				gt.NoError(t, repo.DelegateRound().Set(ctx, dr)).Required()
			}

			list, err := repo.DelegateRound().ListByRound(ctx, "r1")
			gt.NoError(t, err).Required()
			gt.Array(t, list).Length(2).Required()
			gt.Value(t, list[0].DelegateID).Equal(model.DelegateID("d1"))
			gt.Value(t, list[0].AvailableMainActions).Equal(2)
			gt.Value(t, list[1].DelegateID).Equal(model.DelegateID("d2"))
			gt.Bool(t, list[1].MarkedAsSent).True()
		})

		t.Run("SetMarkedAsSent patches flag only", func(t *testing.T) {
			repo := newRepo(t)
			ctx := context.Background()

			gt.NoError(t, repo.DelegateRound().Set(ctx, &model.DelegateRound{
				DelegateID: "d1", RoundID: "r1", AvailableMainActions: 3, MarkedAsSent: true,
			})).Required()

			gt.NoError(t, repo.DelegateRound().SetMarkedAsSent(ctx, "d1", "r1", false)).Required()

			got, err := repo.DelegateRound().Get(ctx, "d1", "r1")
			gt.NoError(t, err).Required()
			gt.Bool(t, got.MarkedAsSent).False()
			gt.Value(t, got.AvailableMainActions).Equal(3)

			err = repo.DelegateRound().SetMarkedAsSent(ctx, "d9", "r1", false)
			gt.Error(t, err).Is(model.ErrNotFound)
		})

		t.Run("Delete removes linkage", func(t *testing.T) {
			repo := newRepo(t)
			ctx := context.Background()

			gt.NoError(t, repo.DelegateRound().Set(ctx, &model.DelegateRound{DelegateID: "d1", RoundID: "r1"})).Required()
			gt.NoError(t, repo.DelegateRound().Delete(ctx, "d1", "r1")).Required()

			list, err := repo.DelegateRound().ListByRound(ctx, "r1")
			gt.NoError(t, err).Required()
			gt.Array(t, list).Length(0)
		})
	})
}
