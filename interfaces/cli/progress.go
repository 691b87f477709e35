package cli

import (
	"github.com/spf13/cobra"

	"github.com/Anirach/ncd-health-plus/domain/services"
)

func newProgressCommand(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Analyze risk trends across lab visits",
		Long: `Reads a JSON array of visits, each {"date": "YYYY-MM-DD", "profile": {...}},
and reports the risk trend, overall improvement and milestones.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var visits []services.LabVisit
			if err := readJSON(cmd, file, &visits); err != nil {
				return err
			}
			report, err := a.service.AnalyzeProgress(cmd.Context(), visits)
			if err != nil {
				return err
			}
			return printJSON(cmd, report)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "JSON visits file, - for stdin")
	return cmd
}
