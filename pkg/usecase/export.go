package usecase

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/swiss-game/swiss/pkg/domain/interfaces"
	"github.com/swiss-game/swiss/pkg/domain/model"
	"github.com/swiss-game/swiss/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

// Column labels of the action spreadsheet
const (
	ColumnActionID     = "ID akce"
	ColumnDelegate     = "Hráč"
	ColumnDelegation   = "Frakce"
	ColumnTitle        = "Titulek"
	ColumnDescription  = "Popis akce"
	ColumnCountry      = "Lokace"
	ColumnDF           = "BV"
	ColumnKeyword      = "Klíčové slovo"
	ColumnActionType   = "Typ akce"
	ColumnMission      = "Popis mise"
	ColumnInstructions = "Instrukce"
	ColumnResult       = "Výsledek"
)

// ExportHeaders is the fixed header row of an export
var ExportHeaders = []string{
	ColumnActionID,
	ColumnDelegate,
	ColumnDelegation,
	ColumnTitle,
	ColumnDescription,
	ColumnCountry,
	ColumnDF,
	ColumnKeyword,
	ColumnActionType,
	ColumnMission,
	ColumnInstructions,
	ColumnResult,
}

// utf8BOM makes spreadsheet tools detect the encoding
const utf8BOM = "\ufeff"

// ExportInput is everything a round export reads
type ExportInput struct {
	Actions     []*model.Action
	Delegates   map[model.DelegateID]*model.Delegate
	Delegations map[model.DelegationID]*model.Delegation
	Projects    []*model.Project
	Lookups     *model.Lookups
}

// ExportActions renders one 12 column row per action, in input order.
// Unresolvable ids and codes degrade to model.NotAvailable; it never fails.
func ExportActions(in ExportInput) [][]string {
	lookups := in.Lookups
	if lookups == nil {
		lookups = model.DefaultLookups()
	}

	rows := make([][]string, 0, len(in.Actions))
	for _, a := range in.Actions {
		project := findProject(in.Projects, a)

		rows = append(rows, []string{
			a.Key.External(),
			delegateName(in.Delegates, a.Delegate),
			delegationName(in.Delegations, a.Delegation),
			a.Title,
			a.Description,
			lookups.Countries.FindValueName(a.TargetCountry),
			formatDF(a.DF),
			a.Keyword,
			lookups.ActionTypes.FindValueName(string(a.Type)),
			missionDescription(project),
			instructions(project),
			a.Result,
		})
	}
	return rows
}

// WriteExportCSV writes the header and rows as UTF-8 CSV with a BOM
func WriteExportCSV(w io.Writer, rows [][]string) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return goerr.Wrap(err, "failed to write BOM")
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(ExportHeaders); err != nil {
		return goerr.Wrap(err, "failed to write header")
	}
	if err := cw.WriteAll(rows); err != nil {
		return goerr.Wrap(err, "failed to write rows")
	}
	return nil
}

// ExportFileName returns the download name of a round export
func ExportFileName(roundName string) string {
	return "Export akcí " + roundName + ".csv"
}

// findProject returns the project of the action's keyword owned by the
// action's delegate, or nil.
func findProject(projects []*model.Project, a *model.Action) *model.Project {
	if !a.HasKeyword() {
		return nil
	}
	for _, p := range projects {
		if p.MatchesKeyword(a.Keyword) && p.Delegate == a.Delegate {
			return p
		}
	}
	return nil
}

func missionDescription(p *model.Project) string {
	switch {
	case p == nil:
		return ""
	case p.Condition != "":
		return p.Name + "\nPodmínka: " + p.Condition + "\n\n" + p.Benefit
	case p.Benefit != "":
		return p.Name + "\n\n" + p.Benefit
	default:
		return ""
	}
}

func instructions(p *model.Project) string {
	if p == nil {
		return ""
	}
	return p.Instructions
}

func delegateName(delegates map[model.DelegateID]*model.Delegate, id model.DelegateID) string {
	if d, ok := delegates[id]; ok && d != nil {
		return d.Name
	}
	return model.NotAvailable
}

// formatDF leaves the cell blank when no budget was spent
func formatDF(df float64) string {
	if df == 0 {
		return ""
	}
	return strconv.FormatFloat(df, 'f', -1, 64)
}

type ExportUseCase struct {
	repo    interfaces.Repository
	lookups *model.Lookups
}

func NewExportUseCase(repo interfaces.Repository, lookups *model.Lookups) *ExportUseCase {
	if lookups == nil {
		lookups = model.DefaultLookups()
	}
	return &ExportUseCase{
		repo:    repo,
		lookups: lookups,
	}
}

// Export writes the action spreadsheet of a round to w and returns the round
func (uc *ExportUseCase) Export(ctx context.Context, roundID model.RoundID, w io.Writer) (*model.Round, error) {
	round, err := uc.repo.Round().Get(ctx, roundID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, goerr.Wrap(ErrRoundNotFound, "round not found", goerr.V(RoundIDKey, roundID))
		}
		return nil, goerr.Wrap(err, "failed to get round", goerr.V(RoundIDKey, roundID))
	}

	in := ExportInput{Lookups: uc.lookups}
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		actions, err := uc.repo.Action().List(egCtx, roundID)
		if err != nil {
			return goerr.Wrap(err, "failed to list actions", goerr.V(RoundIDKey, roundID))
		}
		in.Actions = actions
		return nil
	})
	eg.Go(func() error {
		delegates, err := uc.repo.Delegate().List(egCtx)
		if err != nil {
			return goerr.Wrap(err, "failed to list delegates")
		}
		in.Delegates = delegateMap(delegates)
		return nil
	})
	eg.Go(func() error {
		delegations, err := uc.repo.Delegation().List(egCtx)
		if err != nil {
			return goerr.Wrap(err, "failed to list delegations")
		}
		in.Delegations = delegationMap(delegations)
		return nil
	})
	eg.Go(func() error {
		projects, err := uc.repo.Project().List(egCtx)
		if err != nil {
			return goerr.Wrap(err, "failed to list projects")
		}
		in.Projects = projects
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	if err := WriteExportCSV(w, ExportActions(in)); err != nil {
		return nil, goerr.Wrap(err, "failed to write export", goerr.V(RoundIDKey, roundID))
	}

	logging.From(ctx).Info("round exported",
		"round_id", roundID,
		"actions", len(in.Actions),
	)
	return round, nil
}
