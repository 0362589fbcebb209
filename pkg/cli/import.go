package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/swiss-game/swiss/pkg/cli/config"
	"github.com/swiss-game/swiss/pkg/usecase"
	"github.com/swiss-game/swiss/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdImport() *cli.Command {
	var round string
	var input string
	var gameCfg gameConfig

	flags := []cli.Flag{
		roundFlag(&round),
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "Edited export: file path, - for stdin, or gs://bucket/object",
			Required:    true,
			Destination: &input,
		},
	}
	flags = append(flags, gameCfg.Flags()...)

	return &cli.Command{
		Name:    "import",
		Aliases: []string{"i"},
		Usage:   "Import action results from an edited export",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, closer, err := gameCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer closer()

			r, err := config.OpenInput(ctx, input)
			if err != nil {
				return err
			}
			defer safe.Close(ctx, r)

			report, err := uc.Import.Import(ctx, roundID(round), r)
			if err != nil {
				return goerr.Wrap(err, "failed to import results")
			}

			w := c.Root().Writer
			fmt.Fprintf(w, "updated: %d, unchanged: %d\n", len(report.Updated), len(report.Unchanged))
			for _, id := range report.Missing {
				fmt.Fprintf(w, "missing action: %s\n", id)
			}
			for _, line := range report.Skipped {
				fmt.Fprintf(w, "skipped line %d: no action id\n", line)
			}
			for _, f := range report.Failed {
				fmt.Fprintf(w, "failed line %d (%s): %s\n", f.Line, f.ID, f.Error)
			}

			if len(report.Failed) > 0 {
				return goerr.Wrap(usecase.ErrPartialFailure, "some results were not written",
					goerr.V("failed", len(report.Failed)))
			}
			return nil
		},
	}
}
