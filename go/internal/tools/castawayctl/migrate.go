package main

import (
	"fmt"

	"github.com/mcdev12/castaway/go/internal/db"
	"github.com/mcdev12/castaway/go/internal/db/migrations"
	"github.com/spf13/cobra"
)

func newMigrateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			rt, err := openRuntime(ctx, opts.cfg)
			if err != nil {
				return err
			}
			defer rt.Close()

			applied, err := db.ApplyMigrations(ctx, rt.pool, migrations.FS, ".")
			if err != nil {
				return err
			}
			return printResult(cmd, opts, map[string][]string{"applied": applied}, func() {
				if len(applied) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
					return
				}
				for _, name := range applied {
					fmt.Fprintln(cmd.OutOrStdout(), "applied", name)
				}
			})
		},
	}
}
