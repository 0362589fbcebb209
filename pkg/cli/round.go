package cli

import (
	"context"

	"github.com/swiss-game/swiss/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdRound() *cli.Command {
	return &cli.Command{
		Name:  "round",
		Usage: "Round maintenance",
		Commands: []*cli.Command{
			cmdRoundDelete(),
			cmdRoundReset(),
		},
	}
}

func cmdRoundDelete() *cli.Command {
	var round string
	var gameCfg gameConfig

	return &cli.Command{
		Name:  "delete",
		Usage: "Delete a round with its actions and delegate links",
		Flags: append([]cli.Flag{roundFlag(&round)}, gameCfg.Flags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, closer, err := gameCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer closer()

			if err := uc.Round.DeleteRound(ctx, roundID(round)); err != nil {
				return err
			}
			logging.Default().Info("Round deleted", "round_id", round)
			return nil
		},
	}
}

func cmdRoundReset() *cli.Command {
	var round string
	var gameCfg gameConfig

	return &cli.Command{
		Name:  "reset",
		Usage: "Clear every action of a round and the delegates' sent flags",
		Flags: append([]cli.Flag{roundFlag(&round)}, gameCfg.Flags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, closer, err := gameCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer closer()

			if err := uc.Round.ResetActions(ctx, roundID(round)); err != nil {
				return err
			}
			logging.Default().Info("Round actions reset", "round_id", round)
			return nil
		},
	}
}
