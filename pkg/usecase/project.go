package usecase

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/swiss-game/swiss/pkg/domain/interfaces"
	"github.com/swiss-game/swiss/pkg/domain/model"
	"github.com/swiss-game/swiss/pkg/utils/logging"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultLanguage is the collation language of the game's keywords
var DefaultLanguage = language.Czech

type ProjectUseCase struct {
	repo     interfaces.Repository
	language language.Tag
}

func NewProjectUseCase(repo interfaces.Repository, lang language.Tag) *ProjectUseCase {
	return &ProjectUseCase{
		repo:     repo,
		language: lang,
	}
}

func (uc *ProjectUseCase) CreateProject(ctx context.Context, project *model.Project) (*model.Project, error) {
	if strings.TrimSpace(project.Keyword) == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "project keyword is required")
	}
	if project.DF < 0 || project.MainActions < 0 {
		return nil, goerr.Wrap(ErrInvalidInput, "project thresholds must not be negative",
			goerr.V("df", project.DF), goerr.V("main_actions", project.MainActions))
	}

	created, err := uc.repo.Project().Create(ctx, project)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create project", goerr.V("keyword", project.Keyword))
	}
	return created, nil
}

func (uc *ProjectUseCase) ListProjects(ctx context.Context) ([]*model.Project, error) {
	projects, err := uc.repo.Project().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list projects")
	}
	return projects, nil
}

// Summaries computes the project summary of a round from a point-in-time
// snapshot of the store.
func (uc *ProjectUseCase) Summaries(ctx context.Context, roundID model.RoundID) ([]*model.ProjectSummary, error) {
	if _, err := uc.repo.Round().Get(ctx, roundID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, goerr.Wrap(ErrRoundNotFound, "round not found", goerr.V(RoundIDKey, roundID))
		}
		return nil, goerr.Wrap(err, "failed to get round", goerr.V(RoundIDKey, roundID))
	}

	snap, err := loadSnapshot(ctx, uc.repo)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load snapshot", goerr.V(RoundIDKey, roundID))
	}

	summaries := ComputeProjectSummaries(snap.projects, snap.rounds, snap.delegations, roundID, uc.language)
	logging.From(ctx).Debug("project summaries computed",
		"round_id", roundID,
		"projects", len(snap.projects),
		"summaries", len(summaries),
	)
	return summaries, nil
}

// ComputeProjectSummaries summarises every project whose keyword is used by
// an action in the target round or an earlier one.
//
// Rounds are walked in the given order and accumulation stops after the
// target round. A project qualifies when its keyword equals a used keyword
// exactly; only the first project per keyword is kept. Related actions are
// then matched on the trimmed, lower-cased keyword. An unknown delegation
// renders as model.NotAvailable. The result is sorted by keyword using the
// collation rules of lang.
func ComputeProjectSummaries(
	projects []*model.Project,
	rounds []*model.RoundActions,
	delegations map[model.DelegationID]*model.Delegation,
	targetRoundID model.RoundID,
	lang language.Tag,
) []*model.ProjectSummary {
	actions := actionsUpTo(rounds, targetRoundID)

	usedKeywords := make(map[string]struct{})
	for _, a := range actions {
		if a.HasKeyword() {
			usedKeywords[a.Keyword] = struct{}{}
		}
	}

	seen := make(map[string]struct{})
	summaries := make([]*model.ProjectSummary, 0)
	for _, p := range projects {
		if _, used := usedKeywords[p.Keyword]; !used {
			continue
		}
		if _, dup := seen[p.Keyword]; dup {
			continue
		}
		seen[p.Keyword] = struct{}{}

		summaries = append(summaries, summarizeProject(p, actions, delegations))
	}

	c := collate.New(lang)
	sort.SliceStable(summaries, func(i, j int) bool {
		return c.CompareString(summaries[i].Keyword, summaries[j].Keyword) < 0
	})

	return summaries
}

// actionsUpTo flattens actions of every round up to and including target.
// If target is not among rounds, every action is returned.
func actionsUpTo(rounds []*model.RoundActions, target model.RoundID) []*model.Action {
	var actions []*model.Action
	for _, r := range rounds {
		actions = append(actions, r.Actions...)
		if r.Round != nil && r.Round.ID == target {
			break
		}
	}
	return actions
}

func summarizeProject(p *model.Project, actions []*model.Action, delegations map[model.DelegationID]*model.Delegation) *model.ProjectSummary {
	var (
		names            []string
		spentDF          float64
		spentMainActions int
	)

	for _, a := range actions {
		if !a.MatchesKeyword(p.Keyword) {
			continue
		}
		names = append(names, delegationName(delegations, a.Delegation))
		spentDF += a.DF
		if a.IsMain() {
			spentMainActions++
		}
	}

	return &model.ProjectSummary{
		Keyword:       p.Keyword,
		Name:          p.Name,
		Delegations:   strings.Join(names, ", "),
		DF:            formatNumber(spentDF) + "/" + formatNumber(p.DF),
		DFOk:          spentDF >= p.DF,
		MainActions:   strconv.Itoa(spentMainActions) + "/" + strconv.Itoa(p.MainActions),
		MainActionsOk: spentMainActions >= p.MainActions,
	}
}

func delegationName(delegations map[model.DelegationID]*model.Delegation, id model.DelegationID) string {
	if d, ok := delegations[id]; ok && d != nil {
		return d.Name
	}
	return model.NotAvailable
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
