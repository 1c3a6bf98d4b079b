package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mingle-app/mingle/internal/plan"
)

func newPlansCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plans",
		Short: "List plans and their daily limits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			header := []string{"PLAN"}
			for _, k := range plan.LimitKinds {
				header = append(header, strings.ToUpper(k.Label()))
			}
			header = append(header, "PRICE")
			_, _ = fmt.Fprintln(w, strings.Join(header, "\t"))

			for _, p := range plan.All {
				d := p.Details()
				row := []string{d.Name}
				for _, k := range plan.LimitKinds {
					row = append(row, d.Quota(k).String())
				}
				price := d.Price
				if price == "" {
					price = "—"
				}
				row = append(row, price)
				_, _ = fmt.Fprintln(w, strings.Join(row, "\t"))
			}
			return w.Flush()
		},
	}
}
