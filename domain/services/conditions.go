package services

import vo "github.com/Anirach/ncd-health-plus/domain/core/valueobjects"

// Diagnostic thresholds for the derived conditions
const (
	DiabetesHbA1c    = 6.5
	DiabetesFPG      = 126.0
	PrediabetesHbA1c = 5.7
	PrediabetesFPG   = 100.0
	HypertensionSBP  = 140.0
	HypertensionDBP  = 90.0
	ElevatedBPSBP    = 130.0
	ElevatedBPDBP    = 85.0
)

// Graded condition values
const (
	ConditionPresent    = 1.0
	ConditionBorderline = 0.5
	ConditionAbsent     = 0.0
)

// DeriveConditions returns a copy of the profile with diabetes and
// hypertension recomputed from the biomarkers. Supplied values for the
// derived fields are always overwritten.
func DeriveConditions(p vo.PatientProfile) vo.PatientProfile {
	return p.With(map[vo.NodeID]float64{
		vo.Diabetes:     DiabetesStatus(p.Value(vo.HbA1c), p.Value(vo.FPG)),
		vo.Hypertension: HypertensionStatus(p.Value(vo.SBP), p.Value(vo.DBP)),
	})
}

// DiabetesStatus grades glycaemic markers as 1, 0.5 or 0
func DiabetesStatus(hba1c, fpg float64) float64 {
	switch {
	case hba1c >= DiabetesHbA1c || fpg >= DiabetesFPG:
		return ConditionPresent
	case hba1c >= PrediabetesHbA1c || fpg >= PrediabetesFPG:
		return ConditionBorderline
	}
	return ConditionAbsent
}

// HypertensionStatus grades blood pressure as 1, 0.5 or 0
func HypertensionStatus(sbp, dbp float64) float64 {
	switch {
	case sbp >= HypertensionSBP || dbp >= HypertensionDBP:
		return ConditionPresent
	case sbp >= ElevatedBPSBP || dbp >= ElevatedBPDBP:
		return ConditionBorderline
	}
	return ConditionAbsent
}
