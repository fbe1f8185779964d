// Command walt places food orders and prints driver reports from the terminal.
//
// It works against the storage configured by STORAGE. With memory storage
// nothing outlives the process, so pass --seed to load the reference
// directory first and refer to customers and restaurants by name.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"walt/cmd"
	"walt/internal/seed"

	"github.com/spf13/cobra"
)

// cli holds the state shared by the subcommands of one invocation.
type cli struct {
	envFile  string
	withSeed bool

	app       cmd.CompositionRoot
	directory seed.Directory
}

// newRootCmd builds the command tree with fresh flag state.
func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:           "walt",
		Short:         "Assign food deliveries to drivers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&c.envFile, "env", ".env", "Path to the environment file")
	rootCmd.PersistentFlags().BoolVar(&c.withSeed, "seed", false, "Load the reference directory before running")

	rootCmd.AddCommand(newSeedCmd(c))
	rootCmd.AddCommand(newAssignCmd(c))
	rootCmd.AddCommand(newReportCmd(c))
	rootCmd.AddCommand(newMigrateCmd(c))

	return rootCmd
}

// setup builds the composition root for commands that use the application.
func (c *cli) setup(command *cobra.Command, _ []string) error {
	configs, err := cmd.LoadConfig(c.envFile)
	if err != nil {
		return err
	}

	uowFactory, err := cmd.OpenUnitOfWorkFactory(configs)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(command.ErrOrStderr(), nil))
	c.app, err = cmd.NewCompositionRoot(configs, uowFactory, logger)
	if err != nil {
		return err
	}

	if c.withSeed {
		c.directory, err = seed.Load(command.Context(), c.app.CreateSeedHandlers())
		if err != nil {
			return err
		}
	}

	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
