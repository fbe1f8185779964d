package main

import (
	"fmt"

	"walt/cmd"
	"walt/internal/adapters/out/postgres"

	"github.com/spf13/cobra"
)

func newMigrateCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the postgres tables",
		RunE: func(command *cobra.Command, _ []string) error {
			config, err := cmd.LoadConfig(c.envFile)
			if err != nil {
				return err
			}

			db, err := cmd.OpenPostgres(config)
			if err != nil {
				return err
			}

			if err = postgres.Migrate(db); err != nil {
				return err
			}

			fmt.Fprintln(command.OutOrStdout(), "Schema is up to date")
			return nil
		},
	}
}
