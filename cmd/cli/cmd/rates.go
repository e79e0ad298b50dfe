// Package cmd - rates command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ride-pricing/internal/bootstrap"
)

// ratesCmd prints the resolved vehicle class table and demand range
var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Print the resolved rate table",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, pricing, err := bootstrap.Rates(cfg)
		if err != nil {
			return err
		}

		fmt.Printf("Base fare:        %s RUB\n", pricing.BaseFare.StringFixed(2))
		fmt.Printf("Price per km:     %s RUB\n", pricing.PricePerKm.StringFixed(2))
		fmt.Printf("Price per minute: %s RUB\n", pricing.PricePerMinute.StringFixed(2))
		fmt.Printf("Demand range:     [%v, %v]\n", pricing.DemandMin, pricing.DemandMax)
		fmt.Println()
		fmt.Println("Vehicle classes:")
		for _, name := range table.Classes() {
			multiplier, err := table.Resolve(name)
			if err != nil {
				return err
			}
			fmt.Printf("  %-10s x%s\n", name, multiplier.String())
		}
		return nil
	},
}
