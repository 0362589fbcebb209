package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/swiss-game/swiss/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

func cmdProjects() *cli.Command {
	var round string
	var asJSON bool
	var gameCfg gameConfig

	flags := []cli.Flag{
		roundFlag(&round),
		&cli.BoolFlag{
			Name:        "json",
			Usage:       "Print summaries as JSON",
			Destination: &asJSON,
		},
	}
	flags = append(flags, gameCfg.Flags()...)

	return &cli.Command{
		Name:    "projects",
		Aliases: []string{"p"},
		Usage:   "Show the project summary of a round",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, closer, err := gameCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer closer()

			summaries, err := uc.Project.Summaries(ctx, roundID(round))
			if err != nil {
				return goerr.Wrap(err, "failed to compute project summaries")
			}

			if asJSON {
				enc := json.NewEncoder(c.Root().Writer)
				enc.SetIndent("", "  ")
				if err := enc.Encode(summaries); err != nil {
					return goerr.Wrap(err, "failed to encode summaries")
				}
				return nil
			}

			return printSummaries(c.Root().Writer, summaries)
		},
	}
}

var (
	okColor     = color.New(color.FgGreen)
	shortColor  = color.New(color.FgRed, color.Bold)
	headerColor = color.New(color.Bold)
)

// printSummaries renders summaries as an aligned table. Thresholds that are
// met are green, missed ones red.
func printSummaries(w io.Writer, summaries []*model.ProjectSummary) error {
	headers := []string{"KEYWORD", "NAME", "DELEGATIONS", "DF", "MAIN ACTIONS"}
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{s.Keyword, s.Name, s.Delegations, s.DF, s.MainActions})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], utf8.RuneCountInString(cell))
		}
	}

	pad := func(s string, width int) string {
		return s + strings.Repeat(" ", width-utf8.RuneCountInString(s))
	}

	cells := make([]string, len(headers))
	for i, h := range headers {
		cells[i] = headerColor.Sprint(pad(h, widths[i]))
	}
	if _, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, "  "), " ")); err != nil {
		return goerr.Wrap(err, "failed to write table")
	}

	for i, row := range rows {
		oks := []bool{summaries[i].DFOk, summaries[i].MainActionsOk}
		for j, cell := range row {
			text := pad(cell, widths[j])
			if j >= 3 {
				if oks[j-3] {
					text = okColor.Sprint(text)
				} else {
					text = shortColor.Sprint(text)
				}
			}
			cells[j] = text
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, "  "), " ")); err != nil {
			return goerr.Wrap(err, "failed to write table")
		}
	}

	return nil
}
