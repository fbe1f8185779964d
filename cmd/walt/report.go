package main

import (
	"fmt"
	"text/tabwriter"

	"walt/internal/core/application/usecases/queries"

	"github.com/spf13/cobra"
)

func newReportCmd(c *cli) *cobra.Command {
	var city string

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Print drivers ranked by total delivery distance",
		Long: `Prints every driver ranked by total distance, longest first. With --city only
drivers of that city with at least one delivery are listed.`,
		PreRunE: c.setup,
		RunE: func(command *cobra.Command, _ []string) error {
			return c.runReport(command, city)
		},
	}

	reportCmd.Flags().StringVar(&city, "city", "", "City id, or seeded name, to restrict the report to")

	return reportCmd
}

func (c *cli) runReport(command *cobra.Command, city string) error {
	query := queries.NewGetDriverRankReportQuery()
	if city != "" {
		cityID, err := resolveID(city, c.directory.Cities)
		if err != nil {
			return fmt.Errorf("city: %w", err)
		}
		if query, err = queries.NewGetDriverRankReportByCityQuery(cityID); err != nil {
			return err
		}
	}

	rows, err := c.app.CreateGetDriverRankReportQueryHandler().Handle(command.Context(), query)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(command.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tDRIVER\tTOTAL KM")
	for i, row := range rows {
		fmt.Fprintf(w, "%d\t%s\t%d\n", i+1, row.DriverName, row.TotalDistance)
	}
	return w.Flush()
}
