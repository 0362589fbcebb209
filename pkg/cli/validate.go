package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/swiss-game/swiss/pkg/cli/config"
	"github.com/swiss-game/swiss/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdValidate() *cli.Command {
	var lookupCfg config.Lookups

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate the lookup configuration",
		Flags:   lookupCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			lookups, err := lookupCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "lookup validation failed")
			}
			if _, err := lookupCfg.Language(); err != nil {
				return err
			}

			logger.Info("Lookup validation passed",
				"config", lookupCfg,
				"action_types", len(lookups.ActionTypes),
				"countries", len(lookups.Countries),
				"visibilities", len(lookups.Visibilities),
				"tenses", len(lookups.Tenses),
				"sizes", len(lookups.Sizes),
			)
			return nil
		},
	}
}
