package main

import (
	"fmt"

	"pix_checkout/internal/adapter/http/client"

	"github.com/spf13/cobra"
)

func plansCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plans",
		Short: "List the plans and order bumps offered by the API",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			catalog, err := client.NewCheckoutAPIClient(s.APIURL, s.Timeout).Plans(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Plans:")
			for _, p := range catalog.Plans {
				fmt.Fprintf(out, "  %-12s %-20s R$ %s\n", p.ID, p.Label, p.Price.StringFixed(2))
			}
			if len(catalog.Bumps) > 0 {
				fmt.Fprintln(out, "\nBumps:")
				for _, b := range catalog.Bumps {
					fmt.Fprintf(out, "  %-12s %-20s R$ %s\n", b.ID, b.Label, b.Price.StringFixed(2))
				}
			}
			return nil
		},
	}
}
