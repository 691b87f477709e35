package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	vo "github.com/Anirach/ncd-health-plus/domain/core/valueobjects"
	"github.com/Anirach/ncd-health-plus/domain/services"
	pkgerrors "github.com/Anirach/ncd-health-plus/pkg/errors"
)

func newSimulateCommand(a *app) *cobra.Command {
	var (
		src      profileSource
		sets     []string
		plan     services.InterventionPlan
		smoking  float64
		exercise float64
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate interventions on a patient profile",
		Long: `Simulate direct node interventions (--set) and/or a plan built from the
medication and lifestyle flags. Direct interventions win over the plan.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := src.load(cmd, a)
			if err != nil {
				return err
			}
			iv, err := parseSets(sets)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("smoking") {
				plan.Smoking = &smoking
			}
			if cmd.Flags().Changed("exercise") {
				plan.Exercise = &exercise
			}

			switch {
			case plan.IsEmpty() && len(iv) == 0:
				return pkgerrors.NewValidationError("nothing to simulate: pass --set or a plan flag")
			case plan.IsEmpty():
				sim, err := a.service.Simulate(cmd.Context(), p, iv)
				if err != nil {
					return err
				}
				return printJSON(cmd, sim)
			default:
				sim, err := a.service.SimulateCombined(cmd.Context(), p, plan, iv)
				if err != nil {
					return err
				}
				return printJSON(cmd, sim)
			}
		},
	}
	src.register(cmd)

	f := cmd.Flags()
	f.StringArrayVar(&sets, "set", nil, "direct intervention node=value, repeatable")
	f.BoolVar(&plan.StartStatin, "statin", false, "start a statin")
	f.BoolVar(&plan.StartHTNMed, "htn-med", false, "start antihypertensive medication")
	f.BoolVar(&plan.StartSGLT2i, "sglt2i", false, "start an SGLT2 inhibitor")
	f.BoolVar(&plan.StartMetformin, "metformin", false, "start metformin")
	f.BoolVar(&plan.StartAspirin, "aspirin", false, "start aspirin")
	f.BoolVar(&plan.StartACEARB, "ace-arb", false, "start an ACE inhibitor or ARB")
	f.Float64Var(&smoking, "smoking", 0, "smoking status, 0 or 1")
	f.Float64Var(&exercise, "exercise", 0, "exercise days per week")
	f.Float64Var(&plan.SBPReduction, "sbp-reduction", 0, "systolic reduction in mmHg")
	f.Float64Var(&plan.WeightLossKg, "weight-loss", 0, "weight loss in kg")
	return cmd
}

// parseSets reads node=value pairs
func parseSets(sets []string) (services.Interventions, error) {
	iv := make(services.Interventions, len(sets))
	verrs := pkgerrors.NewValidationErrors()
	for _, s := range sets {
		key, value, ok := strings.Cut(s, "=")
		if !ok {
			verrs.Add("set", fmt.Sprintf("%q is not node=value", s))
			continue
		}
		id, err := vo.ParseNodeID(strings.TrimSpace(key))
		if err != nil {
			verrs.Add("set", err.Error())
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			verrs.Add("set", fmt.Sprintf("%s: %q is not a number", id, value))
			continue
		}
		iv[id] = v
	}
	if verrs.HasErrors() {
		return nil, verrs
	}
	return iv, nil
}
