package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/swiss-game/swiss/pkg/cli/config"
	"github.com/swiss-game/swiss/pkg/usecase"
	"github.com/swiss-game/swiss/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdExport() *cli.Command {
	var round string
	var output string
	var gameCfg gameConfig

	flags := []cli.Flag{
		roundFlag(&round),
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Output file, directory (ending with /) or gs://bucket/object",
			Sources:     cli.EnvVars("SWISS_EXPORT_OUTPUT"),
			Destination: &output,
		},
	}
	flags = append(flags, gameCfg.Flags()...)

	return &cli.Command{
		Name:    "export",
		Aliases: []string{"e"},
		Usage:   "Export the actions of a round as a spreadsheet",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, closer, err := gameCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer closer()

			r, err := uc.Round.GetRound(ctx, roundID(round))
			if err != nil {
				return err
			}

			w, location, err := config.OpenOutput(ctx, output, usecase.ExportFileName(r.Name))
			if err != nil {
				return err
			}

			if _, err := uc.Export.Export(ctx, r.ID, w); err != nil {
				if abortErr := w.Abort(); abortErr != nil {
					logging.Default().Warn("failed to discard output", "output", location, "error", abortErr)
				}
				return goerr.Wrap(err, "failed to export round")
			}
			if err := w.Close(); err != nil {
				return goerr.Wrap(err, "failed to finish export", goerr.V(config.OutputKey, location))
			}

			logging.Default().Info("Export written", "round_id", r.ID, "output", location)
			return nil
		},
	}
}
