package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newScoreCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Record and finalize episode scores",
	}
	cmd.AddCommand(newScoreRecordCommand(opts))
	cmd.AddCommand(newScoreFinalizeCommand(opts))
	return cmd
}

func newScoreRecordCommand(opts *rootOptions) *cobra.Command {
	var quantity int

	cmd := &cobra.Command{
		Use:   "record <episode-id> <castaway-id> <rule-id>",
		Short: "Set how many times a castaway triggered a rule in an episode",
		Long: `Set the quantity of one scoring rule for a castaway in an episode.

Recording the same values twice changes nothing. A different quantity replaces the old
one and --quantity 0 removes the row.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			episodeID, err := parseID("episode id", args[0])
			if err != nil {
				return err
			}
			castawayID, err := parseID("castaway id", args[1])
			if err != nil {
				return err
			}
			ruleID, err := parseID("rule id", args[2])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			rt, err := openRuntime(ctx, opts.cfg)
			if err != nil {
				return err
			}
			defer rt.Close()

			res, err := rt.scoring.RecordEpisodeScore(ctx, episodeID, castawayID, ruleID, quantity)
			if err != nil {
				return err
			}
			return printResult(cmd, opts, res, func() {
				if res.Deleted || res.Score == nil {
					fmt.Fprintln(cmd.OutOrStdout(), "score removed")
					return
				}
				fmt.Fprintf(cmd.OutOrStdout(), "recorded quantity %d = %d points\n", res.Score.Quantity, res.Score.Points)
			})
		},
	}

	cmd.Flags().IntVarP(&quantity, "quantity", "q", 1, "number of occurrences (0 removes)")
	return cmd
}

func newScoreFinalizeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "finalize <episode-id>",
		Short: "Lock an episode's scores",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			episodeID, err := parseID("episode id", args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			rt, err := openRuntime(ctx, opts.cfg)
			if err != nil {
				return err
			}
			defer rt.Close()

			ep, err := rt.scoring.FinalizeEpisode(ctx, episodeID)
			if err != nil {
				return err
			}
			return printResult(cmd, opts, ep, func() {
				fmt.Fprintf(cmd.OutOrStdout(), "week %d finalized at %s\n", ep.Week, ep.FinalizedAt.Format("2006-01-02 15:04"))
			})
		},
	}
}
