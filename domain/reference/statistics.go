package reference

import vo "github.com/Anirach/ncd-health-plus/domain/core/valueobjects"

// referenceStats are population means and standard deviations used to
// standardize raw values. Endpoints carry no statistic.
var referenceStats = map[vo.NodeID]vo.ReferenceStatistic{
	vo.Age: {Mean: 55, Std: 12},
	vo.Sex: {Mean: 0.5, Std: 0.5},

	vo.SBP: {Mean: 130, Std: 18},
	vo.DBP: {Mean: 82, Std: 10},

	vo.LDL: {Mean: 130, Std: 35},
	vo.HDL: {Mean: 50, Std: 14},
	vo.TC:  {Mean: 210, Std: 40},
	vo.TG:  {Mean: 150, Std: 70},

	vo.HbA1c: {Mean: 5.8, Std: 0.9},
	vo.FPG:   {Mean: 105, Std: 25},

	vo.BMI:  {Mean: 26, Std: 4.5},
	vo.EGFR: {Mean: 85, Std: 22},

	vo.Smoking:  {Mean: 0.25, Std: 0.4},
	vo.Exercise: {Mean: 2.5, Std: 2.0},
	vo.Alcohol:  {Mean: 0.2, Std: 0.3},
	vo.Diet:     {Mean: 0.5, Std: 0.25},

	vo.Statin:    {Mean: 0.2, Std: 0.4},
	vo.HTNMed:    {Mean: 0.3, Std: 0.45},
	vo.SGLT2i:    {Mean: 0.05, Std: 0.22},
	vo.Metformin: {Mean: 0.15, Std: 0.35},
	vo.Aspirin:   {Mean: 0.15, Std: 0.35},
	vo.ACEARB:    {Mean: 0.2, Std: 0.4},

	vo.Diabetes:     {Mean: 0.15, Std: 0.35},
	vo.Hypertension: {Mean: 0.35, Std: 0.48},
}

// diseaseIntercepts are the baseline logits per endpoint
var diseaseIntercepts = map[vo.NodeID]float64{
	vo.CAD:    -2.5,
	vo.Stroke: -3.0,
	vo.HF:     -3.2,
	vo.PAD:    -3.5,
	vo.T2DM:   -2.8,
	vo.CKD:    -2.6,
	vo.NAFLD:  -2.0,
}

// cascadeOrder processes medications, then lifestyle, demographics,
// biomarkers, derived conditions and finally endpoints.
var cascadeOrder = []vo.NodeID{
	vo.Statin, vo.HTNMed, vo.SGLT2i, vo.Metformin, vo.Aspirin, vo.ACEARB,
	vo.Exercise, vo.Diet, vo.Smoking, vo.Alcohol,
	vo.Age, vo.Sex,
	vo.BMI, vo.LDL, vo.HDL, vo.TC, vo.TG, vo.SBP, vo.DBP, vo.HbA1c, vo.FPG, vo.EGFR,
	vo.Diabetes, vo.Hypertension,
	vo.CAD, vo.Stroke, vo.HF, vo.PAD, vo.T2DM, vo.CKD, vo.NAFLD,
}
