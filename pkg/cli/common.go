package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/swiss-game/swiss/pkg/cli/config"
	"github.com/swiss-game/swiss/pkg/domain/interfaces"
	"github.com/swiss-game/swiss/pkg/domain/model"
	"github.com/swiss-game/swiss/pkg/usecase"
	"github.com/swiss-game/swiss/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

// gameConfig is the configuration shared by commands working on the store
type gameConfig struct {
	repo    config.Repository
	lookups config.Lookups
}

func (g *gameConfig) Flags() []cli.Flag {
	flags := g.repo.Flags()
	return append(flags, g.lookups.Flags()...)
}

// Configure opens the repository and builds the use cases. The returned
// function closes the repository.
func (g *gameConfig) Configure(ctx context.Context) (*usecase.UseCases, func(), error) {
	lookups, err := g.lookups.Configure()
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to load lookups")
	}
	lang, err := g.lookups.Language()
	if err != nil {
		return nil, nil, err
	}

	repo, err := g.repo.Configure(ctx)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to initialize repository")
	}

	uc := usecase.New(repo,
		usecase.WithLookups(lookups),
		usecase.WithLanguage(lang),
	)
	return uc, closeRepository(ctx, repo), nil
}

func closeRepository(ctx context.Context, repo interfaces.Repository) func() {
	return func() {
		safe.Close(ctx, repo)
	}
}

func roundFlag(dst *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "round",
		Aliases:     []string{"r"},
		Usage:       "Round ID",
		Required:    true,
		Sources:     cli.EnvVars("SWISS_ROUND"),
		Destination: dst,
	}
}

func roundID(s string) model.RoundID {
	return model.RoundID(s)
}
