package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newDemoCommand(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "List the built-in demo patients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			patients := a.service.DemoPatients()
			if asJSON {
				return printJSON(cmd, patients)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tFACTORS")
			for _, p := range patients {
				fmt.Fprintf(tw, "%s\t%s\t%d\n", p.ID(), p.Name(), p.Len())
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print full profiles as JSON")
	return cmd
}
