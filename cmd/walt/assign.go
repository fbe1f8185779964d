package main

import (
	"errors"
	"fmt"
	"time"

	"walt/internal/core/application/usecases/commands"
	"walt/internal/core/domain/model/kernel"

	"github.com/spf13/cobra"
)

type assignOptions struct {
	customer   string
	restaurant string
	at         string
}

func newAssignCmd(c *cli) *cobra.Command {
	opts := &assignOptions{}

	assignCmd := &cobra.Command{
		Use:   "assign",
		Short: "Place an order and assign it to a driver",
		Long: `Places an order of a customer at a restaurant for a delivery time and prints
the assigned driver. Customers and restaurants are given by id, or by name
together with --seed.`,
		Example: `  walt assign --customer 0190f7a4-5d2b-7c3e-8a61-2f4b9c0d1e23 --restaurant 0190f7a4-6e11-7a02-9b3c-44d1e2f3a4b5 --at 2024-03-01T13:00:00Z
  STORAGE=memory walt --seed assign --customer Beethoven --restaurant vegan --at 2024-03-01T13:00:00Z`,
		PreRunE: c.setup,
		RunE: func(command *cobra.Command, _ []string) error {
			return c.runAssign(command, opts)
		},
	}

	assignCmd.Flags().StringVar(&opts.customer, "customer", "", "Customer id or seeded name")
	assignCmd.Flags().StringVar(&opts.restaurant, "restaurant", "", "Restaurant id or seeded name")
	assignCmd.Flags().StringVar(&opts.at, "at", "", "Delivery time in RFC 3339, e.g. 2024-03-01T13:00:00Z")
	_ = assignCmd.MarkFlagRequired("customer")
	_ = assignCmd.MarkFlagRequired("restaurant")
	_ = assignCmd.MarkFlagRequired("at")

	return assignCmd
}

func (c *cli) runAssign(command *cobra.Command, opts *assignOptions) error {
	customerID, err := resolveID(opts.customer, c.directory.Customers)
	if err != nil {
		return fmt.Errorf("customer: %w", err)
	}

	restaurantID, err := resolveID(opts.restaurant, c.directory.Restaurants)
	if err != nil {
		return fmt.Errorf("restaurant: %w", err)
	}

	at, err := time.Parse(time.RFC3339, opts.at)
	if err != nil {
		return fmt.Errorf("invalid --at: %w", err)
	}

	cmd, err := commands.NewCreateOrderAndAssignDriverCommand(customerID, restaurantID, at)
	if err != nil {
		return err
	}

	handler := c.app.CreateCreateOrderAndAssignDriverCommandHandler()
	d, err := handler.Handle(command.Context(), cmd)
	if errors.Is(err, commands.ErrCityMismatch) || errors.Is(err, commands.ErrNoAvailableDrivers) {
		fmt.Fprintln(command.OutOrStdout(), "Order rejected:", err)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(command.OutOrStdout(), "Delivery %s assigned to driver %s, %.2f km, at %s\n",
		d.ID(), d.DriverID(), d.Distance().Kilometres(), d.DeliveryTime().Format(time.RFC3339))
	return nil
}

// resolveID accepts an id, or a name from the seeded directory.
func resolveID(value string, byName map[string]kernel.UUID) (kernel.UUID, error) {
	if id, ok := byName[value]; ok {
		return id, nil
	}
	return kernel.UUIDFromString(value)
}
