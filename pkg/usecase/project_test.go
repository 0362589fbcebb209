package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/swiss-game/swiss/pkg/domain/model"
	"github.com/swiss-game/swiss/pkg/domain/types"
	"github.com/swiss-game/swiss/pkg/repository/memory"
	"github.com/swiss-game/swiss/pkg/usecase"
	"golang.org/x/text/language"
)

func roundActions(id model.RoundID, actions ...*model.Action) *model.RoundActions {
	return &model.RoundActions{
		Round:   &model.Round{ID: id, Name: string(id)},
		Actions: actions,
	}
}

func keywords(summaries []*model.ProjectSummary) []string {
	out := make([]string, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, s.Keyword)
	}
	return out
}

func TestComputeProjectSummaries(t *testing.T) {
	delegations := map[model.DelegationID]*model.Delegation{
		"red":  {ID: "red", Name: "Red"},
		"blue": {ID: "blue", Name: "Blue"},
	}

	t.Run("budget and main actions are summed", func(t *testing.T) {
		projects := []*model.Project{
			{Keyword: "K1", Name: "P1", DF: 10, MainActions: 1},
		}
		rounds := []*model.RoundActions{
			roundActions("r1",
				&model.Action{Keyword: "K1", DF: 6, Type: types.ActionTypeMission, Delegation: "red"},
				&model.Action{Keyword: "K1", DF: 6, Type: types.ActionTypeOther, Delegation: "blue"},
			),
		}

		summaries := usecase.ComputeProjectSummaries(projects, rounds, delegations, "r1", language.Czech)
		gt.Array(t, summaries).Length(1).Required()
		gt.Value(t, *summaries[0]).Equal(model.ProjectSummary{
			Keyword:       "K1",
			Name:          "P1",
			Delegations:   "Red, Blue",
			DF:            "12/10",
			DFOk:          true,
			MainActions:   "2/1",
			MainActionsOk: true,
		})
	})

	t.Run("action without keyword never matches", func(t *testing.T) {
		projects := []*model.Project{{Keyword: "K1", DF: 1}}
		rounds := []*model.RoundActions{
			roundActions("r1", &model.Action{DF: 5, Type: types.ActionTypeMission, Delegation: "red"}),
		}

		summaries := usecase.ComputeProjectSummaries(projects, rounds, delegations, "r1", language.Czech)
		gt.Array(t, summaries).Length(0)
	})

	t.Run("project with empty keyword is never used", func(t *testing.T) {
		projects := []*model.Project{{Keyword: "", DF: 1}}
		rounds := []*model.RoundActions{
			roundActions("r1", &model.Action{Type: types.ActionTypeMission}),
		}

		summaries := usecase.ComputeProjectSummaries(projects, rounds, delegations, "r1", language.Czech)
		gt.Array(t, summaries).Length(0)
	})

	t.Run("first project wins for a duplicate keyword", func(t *testing.T) {
		projects := []*model.Project{
			{Keyword: "K2", Name: "Alice's", Delegate: "alice", DF: 1},
			{Keyword: "K2", Name: "Bob's", Delegate: "bob", DF: 1},
		}
		rounds := []*model.RoundActions{
			roundActions("r1", &model.Action{Keyword: "K2", Delegate: "bob", Delegation: "blue", DF: 1}),
		}

		summaries := usecase.ComputeProjectSummaries(projects, rounds, delegations, "r1", language.Czech)
		gt.Array(t, summaries).Length(1).Required()
		gt.Value(t, summaries[0].Name).Equal("Alice's")
	})

	t.Run("used keyword must match exactly", func(t *testing.T) {
		projects := []*model.Project{{Keyword: "Bridge", DF: 1}}
		rounds := []*model.RoundActions{
			roundActions("r1", &model.Action{Keyword: "bridge ", DF: 2}),
		}

		summaries := usecase.ComputeProjectSummaries(projects, rounds, delegations, "r1", language.Czech)
		gt.Array(t, summaries).Length(0)
	})

	t.Run("related actions match case-insensitively once used", func(t *testing.T) {
		projects := []*model.Project{{Keyword: "Bridge", DF: 5}}
		rounds := []*model.RoundActions{
			roundActions("r1",
				&model.Action{Keyword: "Bridge", DF: 2, Delegation: "red"},
				&model.Action{Keyword: " bridge", DF: 3, Delegation: "blue"},
			),
		}

		summaries := usecase.ComputeProjectSummaries(projects, rounds, delegations, "r1", language.Czech)
		gt.Array(t, summaries).Length(1).Required()
		gt.Value(t, summaries[0].DF).Equal("5/5")
		gt.Bool(t, summaries[0].DFOk).True()
		gt.Value(t, summaries[0].Delegations).Equal("Red, Blue")
	})

	t.Run("thresholds are inclusive and secondary actions are not counted", func(t *testing.T) {
		projects := []*model.Project{{Keyword: "K", DF: 2.5, MainActions: 2}}
		rounds := []*model.RoundActions{
			roundActions("r1",
				&model.Action{Keyword: "K", DF: 1.5, Type: types.ActionTypeMission, Delegation: "red"},
				&model.Action{Keyword: "K", DF: 0.5, Type: types.ActionTypeSecondary, Delegation: "red"},
				&model.Action{Keyword: "K", Type: types.ActionTypeIntelligence, Delegation: "red"},
			),
		}

		summaries := usecase.ComputeProjectSummaries(projects, rounds, delegations, "r1", language.Czech)
		gt.Array(t, summaries).Length(1).Required()
		gt.Value(t, summaries[0].DF).Equal("2/2.5")
		gt.Bool(t, summaries[0].DFOk).False()
		gt.Value(t, summaries[0].MainActions).Equal("1/2")
		gt.Bool(t, summaries[0].MainActionsOk).False()

		projects[0].DF = 2
		summaries = usecase.ComputeProjectSummaries(projects, rounds, delegations, "r1", language.Czech)
		gt.Value(t, summaries[0].DF).Equal("2/2")
		gt.Bool(t, summaries[0].DFOk).True()
	})

	t.Run("later rounds are excluded", func(t *testing.T) {
		projects := []*model.Project{
			{Keyword: "Early", DF: 1},
			{Keyword: "Late", DF: 1},
		}
		rounds := []*model.RoundActions{
			roundActions("r1", &model.Action{Keyword: "Early", DF: 1, Delegation: "red"}),
			roundActions("r2", &model.Action{Keyword: "Early", DF: 4, Delegation: "blue"}),
			roundActions("r3", &model.Action{Keyword: "Late", DF: 1, Delegation: "red"}),
		}

		summaries := usecase.ComputeProjectSummaries(projects, rounds, delegations, "r2", language.Czech)
		gt.Array(t, summaries).Length(1).Required()
		gt.Value(t, summaries[0].Keyword).Equal("Early")
		gt.Value(t, summaries[0].DF).Equal("5/1")
		gt.Value(t, summaries[0].Delegations).Equal("Red, Blue")

		summaries = usecase.ComputeProjectSummaries(projects, rounds, delegations, "r1", language.Czech)
		gt.Value(t, summaries[0].DF).Equal("1/1")
	})

	t.Run("unknown target round accumulates every round", func(t *testing.T) {
		projects := []*model.Project{{Keyword: "K", DF: 1}}
		rounds := []*model.RoundActions{
			roundActions("r1", &model.Action{Keyword: "K", DF: 1}),
			roundActions("r2", &model.Action{Keyword: "K", DF: 1}),
		}

		summaries := usecase.ComputeProjectSummaries(projects, rounds, delegations, "missing", language.Czech)
		gt.Array(t, summaries).Length(1).Required()
		gt.Value(t, summaries[0].DF).Equal("2/1")
	})

	t.Run("unknown delegation renders as N/A", func(t *testing.T) {
		projects := []*model.Project{{Keyword: "K"}}
		rounds := []*model.RoundActions{
			roundActions("r1",
				&model.Action{Keyword: "K", Delegation: "ghost"},
				&model.Action{Keyword: "K", Delegation: "red"},
			),
		}

		summaries := usecase.ComputeProjectSummaries(projects, rounds, delegations, "r1", language.Czech)
		gt.Array(t, summaries).Length(1).Required()
		gt.Value(t, summaries[0].Delegations).Equal("N/A, Red")
	})

	t.Run("no projects or no actions yield an empty list", func(t *testing.T) {
		gt.Array(t, usecase.ComputeProjectSummaries(nil, nil, delegations, "r1", language.Czech)).Length(0)
		gt.Array(t, usecase.ComputeProjectSummaries(
			[]*model.Project{{Keyword: "K"}}, []*model.RoundActions{roundActions("r1")}, delegations, "r1", language.Czech,
		)).Length(0)
	})

	t.Run("sorted by keyword with locale collation", func(t *testing.T) {
		projects := []*model.Project{
			{Keyword: "ch"},
			{Keyword: "h"},
			{Keyword: "c"},
			{Keyword: "d"},
		}
		rounds := []*model.RoundActions{
			roundActions("r1",
				&model.Action{Keyword: "ch"},
				&model.Action{Keyword: "h"},
				&model.Action{Keyword: "c"},
				&model.Action{Keyword: "d"},
			),
		}

		cs := usecase.ComputeProjectSummaries(projects, rounds, delegations, "r1", language.Czech)
		gt.Value(t, keywords(cs)).Equal([]string{"c", "d", "h", "ch"})

		en := usecase.ComputeProjectSummaries(projects, rounds, delegations, "r1", language.English)
		gt.Value(t, keywords(en)).Equal([]string{"c", "ch", "d", "h"})
	})
}

func TestProjectUseCase_Summaries(t *testing.T) {
	t.Run("summaries of a stored round", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		f.addProject(t, &model.Project{Keyword: "K1", Name: "P1", DF: 10, MainActions: 1})
		f.addAction(t, f.round1.ID, &model.Action{
			Keyword: "K1", DF: 6, Type: types.ActionTypeMission, Delegate: f.alice.ID, Delegation: f.red.ID,
		})
		f.addAction(t, f.round2.ID, &model.Action{
			Keyword: "K1", DF: 6, Type: types.ActionTypeOther, Delegate: f.bob.ID, Delegation: f.blue.ID,
		})

		uc := usecase.NewProjectUseCase(f.repo, usecase.DefaultLanguage)

		summaries, err := uc.Summaries(ctx, f.round1.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, summaries).Length(1).Required()
		gt.Value(t, summaries[0].DF).Equal("6/10")
		gt.Bool(t, summaries[0].DFOk).False()
		gt.Value(t, summaries[0].Delegations).Equal("Red")

		summaries, err = uc.Summaries(ctx, f.round2.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, summaries).Length(1).Required()
		gt.Value(t, summaries[0].DF).Equal("12/10")
		gt.Bool(t, summaries[0].DFOk).True()
		gt.Value(t, summaries[0].MainActions).Equal("2/1")
		gt.Value(t, summaries[0].Delegations).Equal("Red, Blue")
	})

	t.Run("unknown round fails", func(t *testing.T) {
		uc := usecase.NewProjectUseCase(memory.New(), usecase.DefaultLanguage)

		_, err := uc.Summaries(context.Background(), "missing")
		gt.Error(t, err).Is(usecase.ErrRoundNotFound)
	})
}

func TestProjectUseCase_CreateProject(t *testing.T) {
	uc := usecase.NewProjectUseCase(memory.New(), usecase.DefaultLanguage)
	ctx := context.Background()

	t.Run("valid project", func(t *testing.T) {
		created, err := uc.CreateProject(ctx, &model.Project{Keyword: "Bridge", Name: "Bridge", DF: 3, MainActions: 1})
		gt.NoError(t, err).Required()
		gt.String(t, string(created.ID)).NotEqual("")

		projects, err := uc.ListProjects(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, projects).Length(1)
	})

	t.Run("empty keyword fails", func(t *testing.T) {
		_, err := uc.CreateProject(ctx, &model.Project{Keyword: "  ", Name: "x"})
		gt.Error(t, err).Is(usecase.ErrInvalidInput)
	})

	t.Run("negative threshold fails", func(t *testing.T) {
		_, err := uc.CreateProject(ctx, &model.Project{Keyword: "K", DF: -1})
		gt.Error(t, err).Is(usecase.ErrInvalidInput)
	})
}
