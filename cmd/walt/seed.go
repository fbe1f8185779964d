package main

import (
	"fmt"
	"io"
	"slices"

	"walt/internal/seed"

	"github.com/spf13/cobra"
)

func newSeedCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "seed",
		Short:   "Load the reference cities, drivers, customers and restaurants",
		PreRunE: c.setup,
		RunE:    c.runSeed,
	}
}

func (c *cli) runSeed(command *cobra.Command, _ []string) error {
	dir := c.directory
	if !c.withSeed {
		var err error
		dir, err = seed.Load(command.Context(), c.app.CreateSeedHandlers())
		if err != nil {
			return err
		}
	}

	out := command.OutOrStdout()
	printIDs(out, "City", dir.Cities)
	printIDs(out, "Driver", dir.Drivers)
	printIDs(out, "Customer", dir.Customers)
	printIDs(out, "Restaurant", dir.Restaurants)
	return nil
}

func printIDs[V fmt.Stringer](out io.Writer, kind string, ids map[string]V) {
	names := make([]string, 0, len(ids))
	for name := range ids {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		fmt.Fprintf(out, "%-10s %-14s %s\n", kind, name, ids[name])
	}
}
