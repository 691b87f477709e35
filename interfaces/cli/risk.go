package cli

import (
	"github.com/spf13/cobra"
)

func newRiskCommand(a *app) *cobra.Command {
	var (
		src    profileSource
		withCI bool
	)
	cmd := &cobra.Command{
		Use:   "risk",
		Short: "Score a patient profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := src.load(cmd, a)
			if err != nil {
				return err
			}
			assessment, err := a.service.AssessRisk(cmd.Context(), p, withCI)
			if err != nil {
				return err
			}
			return printJSON(cmd, assessment)
		},
	}
	src.register(cmd)
	cmd.Flags().BoolVar(&withCI, "ci", false, "include 95% confidence bands")
	return cmd
}
