package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newDraftCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Run or reset a league draft",
	}
	cmd.AddCommand(newDraftRunCommand(opts))
	cmd.AddCommand(newDraftResetCommand(opts))
	return cmd
}

func newDraftRunCommand(opts *rootOptions) *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "run <league-id>",
		Short: "Run the snake draft for a league",
		Long: `Run the snake draft for a league in one transaction.

Pass --seed to replay a previous draft: the same seed over the same members, pool and
rankings produces the same picks.`,
		Args: cobra.ExactArgs(1),
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

			var seedArg *int64
			if cmd.Flags().Changed("seed") {
				seedArg = &seed
			}
			res, err := rt.draft.RunDraft(ctx, leagueID, seedArg)
			if err != nil {
				return err
			}
			return printResult(cmd, opts, res, func() {
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "league %s drafted: %d picks (seed %d)\n", res.LeagueID, res.TotalPicks, res.Seed)
				rounds := make([]int, 0, len(res.PicksByRound))
				for r := range res.PicksByRound {
					rounds = append(rounds, r)
				}
				sort.Ints(rounds)
				for _, r := range rounds {
					fmt.Fprintf(out, "  round %d: %d picks\n", r, res.PicksByRound[r])
				}
			})
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed to replay")
	return cmd
}

func newDraftResetCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset <league-id>",
		Short: "Delete a league's picks and reopen its draft",
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

			res, err := rt.draft.ResetDraft(ctx, leagueID)
			if err != nil {
				return err
			}
			return printResult(cmd, opts, res, func() {
				fmt.Fprintf(cmd.OutOrStdout(), "league %s reset: %d picks deleted\n", res.LeagueID, res.DeletedPicks)
			})
		},
	}
}
