package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/swiss-game/swiss/pkg/domain/interfaces"
	"github.com/swiss-game/swiss/pkg/domain/model"
	"github.com/swiss-game/swiss/pkg/domain/types"
	"github.com/swiss-game/swiss/pkg/repository/memory"
	"github.com/swiss-game/swiss/pkg/usecase"
)

func TestParseImport(t *testing.T) {
	t.Run("comma separated with BOM and blank lines", func(t *testing.T) {
		in := "\ufeffID akce,Hráč,Výsledek\n\nabc,Alice,won\n,,\ndef,Bob,\n"
		parsed, err := usecase.ParseImport(strings.NewReader(in))
		gt.NoError(t, err).Required()

		gt.Array(t, parsed.Patches).Length(2).Required()
		gt.Value(t, parsed.Patches[0].Key).Equal(model.ActionKey("-abc"))
		gt.Value(t, parsed.Patches[0].Result).Equal("won")
		gt.Value(t, parsed.Patches[1].Key).Equal(model.ActionKey("-def"))
		gt.Value(t, parsed.Patches[1].Result).Equal("")
		gt.Array(t, parsed.Skipped).Length(0)
	})

	t.Run("semicolon separated", func(t *testing.T) {
		in := "Výsledek;ID akce\r\n\"ok; really\";abc\r\n"
		parsed, err := usecase.ParseImport(strings.NewReader(in))
		gt.NoError(t, err).Required()

		gt.Array(t, parsed.Patches).Length(1).Required()
		gt.Value(t, parsed.Patches[0].Key).Equal(model.ActionKey("-abc"))
		gt.Value(t, parsed.Patches[0].Result).Equal("ok; really")
	})

	t.Run("multi-line result", func(t *testing.T) {
		in := "ID akce,Výsledek\nabc,\"first\nsecond\"\n"
		parsed, err := usecase.ParseImport(strings.NewReader(in))
		gt.NoError(t, err).Required()

		gt.Array(t, parsed.Patches).Length(1).Required()
		gt.Value(t, parsed.Patches[0].Result).Equal("first\nsecond")
	})

	t.Run("row without id is skipped with its line", func(t *testing.T) {
		in := "ID akce,Výsledek\nabc,x\n,orphan\n"
		parsed, err := usecase.ParseImport(strings.NewReader(in))
		gt.NoError(t, err).Required()

		gt.Array(t, parsed.Patches).Length(1)
		gt.Value(t, parsed.Skipped).Equal([]int{3})
	})

	t.Run("short row has empty result", func(t *testing.T) {
		in := "ID akce,Hráč,Výsledek\nabc\n"
		parsed, err := usecase.ParseImport(strings.NewReader(in))
		gt.NoError(t, err).Required()

		gt.Array(t, parsed.Patches).Length(1).Required()
		gt.Value(t, parsed.Patches[0].Result).Equal("")
	})

	t.Run("missing columns", func(t *testing.T) {
		for _, in := range []string{
			"",
			"Hráč,Výsledek\nAlice,x\n",
			"ID akce,Hráč\nabc,Alice\n",
		} {
			_, err := usecase.ParseImport(strings.NewReader(in))
			gt.Error(t, err).Is(usecase.ErrInvalidImport)
		}
	})
}

func TestDetectDelimiter(t *testing.T) {
	gt.Value(t, usecase.DetectDelimiter([]byte("ID akce,Výsledek\n"))).Equal(',')
	gt.Value(t, usecase.DetectDelimiter([]byte("\n\nID akce;Výsledek\n"))).Equal(';')
	gt.Value(t, usecase.DetectDelimiter([]byte(""))).Equal(',')
}

func TestImportUseCase_Import(t *testing.T) {
	t.Run("results are patched without touching other fields", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		a := f.addAction(t, f.round1.ID, &model.Action{
			Delegate: f.alice.ID, Delegation: f.red.ID, Title: "Build", DF: 2, Type: types.ActionTypeMission, Result: "old",
		})

		in := "ID akce,Výsledek\n" + a.Key.External() + ",new\n"
		report, err := usecase.NewImportUseCase(f.repo).Import(ctx, f.round1.ID, strings.NewReader(in))
		gt.NoError(t, err).Required()
		gt.Value(t, report.Updated).Equal([]string{a.Key.External()})
		gt.Array(t, report.Missing).Length(0)
		gt.Array(t, report.Failed).Length(0)

		got, err := f.repo.Action().Get(ctx, f.round1.ID, a.Key)
		gt.NoError(t, err).Required()
		gt.Value(t, got.Result).Equal("new")
		gt.Value(t, got.Title).Equal("Build")
		gt.Value(t, got.DF).Equal(2.0)
		gt.Value(t, got.Type).Equal(types.ActionTypeMission)
	})

	t.Run("result differing only in line endings is not written", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		a := f.addAction(t, f.round1.ID, &model.Action{Delegate: f.alice.ID, Result: "first\r\nsecond"})
		b := f.addAction(t, f.round1.ID, &model.Action{Delegate: f.bob.ID, Result: "first\r\nsecond"})

		in := "ID akce,Výsledek\n" +
			a.Key.External() + ",\"first\r\nsecond\"\n" +
			b.Key.External() + ",\"first\r\nthird\"\n"
		report, err := usecase.NewImportUseCase(f.repo).Import(ctx, f.round1.ID, strings.NewReader(in))
		gt.NoError(t, err).Required()
		gt.Value(t, report.Unchanged).Equal([]string{a.Key.External()})
		gt.Value(t, report.Updated).Equal([]string{b.Key.External()})

		got, err := f.repo.Action().Get(ctx, f.round1.ID, a.Key)
		gt.NoError(t, err).Required()
		gt.Value(t, got.Result).Equal("first\r\nsecond")

		got, err = f.repo.Action().Get(ctx, f.round1.ID, b.Key)
		gt.NoError(t, err).Required()
		gt.Value(t, got.Result).Equal("first\nthird")
	})

	t.Run("missing action is reported and not created", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()

		in := "ID akce,Výsledek\nnope,x\n,y\n"
		report, err := usecase.NewImportUseCase(f.repo).Import(ctx, f.round1.ID, strings.NewReader(in))
		gt.NoError(t, err).Required()
		gt.Value(t, report.Missing).Equal([]string{"nope"})
		gt.Value(t, report.Skipped).Equal([]int{3})
		gt.Array(t, report.Updated).Length(0)

		_, err = f.repo.Action().Get(ctx, f.round1.ID, "-nope")
		gt.Error(t, err).Is(model.ErrNotFound)
	})

	t.Run("action of another round is missing", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		a := f.addAction(t, f.round2.ID, &model.Action{Delegate: f.bob.ID, Result: "keep"})

		in := "ID akce,Výsledek\n" + a.Key.External() + ",changed\n"
		report, err := usecase.NewImportUseCase(f.repo).Import(ctx, f.round1.ID, strings.NewReader(in))
		gt.NoError(t, err).Required()
		gt.Array(t, report.Missing).Length(1)

		got, err := f.repo.Action().Get(ctx, f.round2.ID, a.Key)
		gt.NoError(t, err).Required()
		gt.Value(t, got.Result).Equal("keep")
	})

	t.Run("failed row does not stop others", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		a := f.addAction(t, f.round1.ID, &model.Action{Delegate: f.alice.ID})
		b := f.addAction(t, f.round1.ID, &model.Action{Delegate: f.bob.ID})

		repo := &failingResultRepo{Memory: f.repo, failKey: a.Key}
		in := "ID akce,Výsledek\n" + a.Key.External() + ",x\n" + b.Key.External() + ",y\n"
		report, err := usecase.NewImportUseCase(repo).Import(ctx, f.round1.ID, strings.NewReader(in))
		gt.NoError(t, err).Required()

		gt.Array(t, report.Failed).Length(1).Required()
		gt.Value(t, report.Failed[0].ID).Equal(a.Key.External())
		gt.Value(t, report.Failed[0].Line).Equal(2)
		gt.Value(t, report.Updated).Equal([]string{b.Key.External()})

		got, err := f.repo.Action().Get(ctx, f.round1.ID, b.Key)
		gt.NoError(t, err).Required()
		gt.Value(t, got.Result).Equal("y")
	})

	t.Run("invalid file", func(t *testing.T) {
		f := newFixture(t)
		_, err := usecase.NewImportUseCase(f.repo).Import(context.Background(), f.round1.ID, strings.NewReader("a,b\n1,2\n"))
		gt.Error(t, err).Is(usecase.ErrInvalidImport)
	})

	t.Run("unknown round", func(t *testing.T) {
		_, err := usecase.NewImportUseCase(memory.New()).Import(context.Background(), "missing", strings.NewReader(""))
		gt.Error(t, err).Is(usecase.ErrRoundNotFound)
	})
}

func TestExportImportRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addProject(t, &model.Project{Keyword: "K", Name: "Plan", Delegate: f.alice.ID, Condition: "c", Benefit: "b"})

	results := []string{
		"", "plain", "with, comma", "with; semicolon", "quoted \"word\"", "multi\nline", " padded ",
		"a\r\nb", "lone\rcr", "\ttab", "trail\n", "\"", "x;y;z;w,",
	}
	var actions []*model.Action
	for i, result := range results {
		delegate := f.alice
		if i%2 == 1 {
			delegate = f.bob
		}
		actions = append(actions, f.addAction(t, f.round1.ID, &model.Action{
			Delegate:   delegate.ID,
			Delegation: delegate.Delegation,
			Keyword:    "K",
			Type:       types.ActionTypeMission,
			Result:     result,
		}))
	}

	var buf bytes.Buffer
	_, err := usecase.NewExportUseCase(f.repo, nil).Export(ctx, f.round1.ID, &buf)
	gt.NoError(t, err).Required()

	report, err := usecase.NewImportUseCase(f.repo).Import(ctx, f.round1.ID, &buf)
	gt.NoError(t, err).Required()
	gt.Array(t, report.Updated).Length(0)
	gt.Array(t, report.Unchanged).Length(len(results))
	gt.Array(t, report.Missing).Length(0)
	gt.Array(t, report.Failed).Length(0)

	for _, a := range actions {
		got, err := f.repo.Action().Get(ctx, f.round1.ID, a.Key)
		gt.NoError(t, err).Required()
		gt.Value(t, got.Result).Equal(a.Result)
	}
}

// failingResultRepo fails UpdateResult for one key
type failingResultRepo struct {
	*memory.Memory
	failKey model.ActionKey
}

func (r *failingResultRepo) Action() interfaces.ActionRepository {
	return &failingActionRepo{ActionRepository: r.Memory.Action(), failKey: r.failKey}
}

type failingActionRepo struct {
	interfaces.ActionRepository
	failKey model.ActionKey
}

func (r *failingActionRepo) UpdateResult(ctx context.Context, roundID model.RoundID, key model.ActionKey, result string) error {
	if key == r.failKey {
		return errors.New("write rejected")
	}
	return r.ActionRepository.UpdateResult(ctx, roundID, key, result)
}
