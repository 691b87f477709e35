package services

import (
	"math"

	vo "github.com/Anirach/ncd-health-plus/domain/core/valueobjects"
)

// Plan limits
const (
	MinTargetBMI    = 18.5
	KgPerBMIUnit    = 2.5
	MaxExerciseDays = 7.0
)

// InterventionPlan describes user-level changes, as offered on a what-if
// screen, that are translated into direct node interventions
type InterventionPlan struct {
	StartStatin    bool `json:"start_statin"`
	StartHTNMed    bool `json:"start_htn_med"`
	StartSGLT2i    bool `json:"start_sglt2i"`
	StartMetformin bool `json:"start_metformin"`
	StartAspirin   bool `json:"start_aspirin"`
	StartACEARB    bool `json:"start_ace_arb"`

	// Smoking and Exercise are left unchanged when nil
	Smoking  *float64 `json:"smoking,omitempty" validate:"omitempty,gte=0,lte=1"`
	Exercise *float64 `json:"exercise,omitempty" validate:"omitempty,gte=0,lte=7"`

	// SBPReduction lowers systolic pressure by this many mmHg
	SBPReduction float64 `json:"sbp_reduction" validate:"gte=0,lte=100"`

	// WeightLossKg lowers BMI by kg / 2.5, never below 18.5
	WeightLossKg float64 `json:"weight_loss_kg" validate:"gte=0,lte=100"`
}

// IsEmpty reports whether the plan requests no change at all
func (p InterventionPlan) IsEmpty() bool {
	return p == InterventionPlan{}
}

// Interventions translates the plan for one patient. Medications already
// taken are not restarted.
func (p InterventionPlan) Interventions(profile vo.PatientProfile) Interventions {
	iv := make(Interventions)
	meds := []struct {
		start bool
		id    vo.NodeID
	}{
		{p.StartStatin, vo.Statin},
		{p.StartHTNMed, vo.HTNMed},
		{p.StartSGLT2i, vo.SGLT2i},
		{p.StartMetformin, vo.Metformin},
		{p.StartAspirin, vo.Aspirin},
		{p.StartACEARB, vo.ACEARB},
	}
	for _, m := range meds {
		if m.start && profile.Value(m.id) == 0 {
			iv[m.id] = 1
		}
	}
	if p.Smoking != nil {
		iv[vo.Smoking] = *p.Smoking
	}
	if p.Exercise != nil {
		iv[vo.Exercise] = math.Min(*p.Exercise, MaxExerciseDays)
	}
	if p.SBPReduction > 0 {
		iv[vo.SBP] = profile.Value(vo.SBP) - p.SBPReduction
	}
	if p.WeightLossKg > 0 {
		iv[vo.BMI] = math.Max(MinTargetBMI, profile.Value(vo.BMI)-p.WeightLossKg/KgPerBMIUnit)
	}
	return iv
}
