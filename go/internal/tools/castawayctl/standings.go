package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newStandingsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "standings <league-id>",
		Short: "Print a league's leaderboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			leagueID, err := parseID("league id", args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			rt, err := openRuntime(ctx, opts.cfg)
			if err != nil {
				return err
			}
			defer rt.Close()

			ranked, err := rt.standings.GetStandings(ctx, leagueID)
			if err != nil {
				return err
			}
			return printResult(cmd, opts, ranked, func() {
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "RANK\tPLAYER\tTOTAL\tBEST EPISODE")
				for _, e := range ranked {
					fmt.Fprintf(w, "%d\t%s\t%d\t%d\n", e.Rank, e.DisplayName, e.Total, e.BestEpisode)
				}
				_ = w.Flush()
			})
		},
	}
}
