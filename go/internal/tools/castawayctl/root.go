package main

import (
	"fmt"
	"slices"

	"github.com/mcdev12/castaway/go/internal/config"
	"github.com/spf13/cobra"
)

// rootOptions holds global flags for all commands.
type rootOptions struct {
	Format string // "json" | "text"
	cfg    config.Config
}

var validFormats = []string{"text", "json"}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "castawayctl",
		Short:         "Castaway league administration",
		Long:          "Run migrations, seed seasons and scoring rules, run drafts, record scores and print standings.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(validFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, validFormats)
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			config.SetupLogging(cfg.Env.LogLevel, cfg.Env.LogFormat)
			opts.cfg = cfg
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(newMigrateCommand(opts))
	cmd.AddCommand(newSeedCommand(opts))
	cmd.AddCommand(newDraftCommand(opts))
	cmd.AddCommand(newScoreCommand(opts))
	cmd.AddCommand(newStandingsCommand(opts))

	return cmd
}
