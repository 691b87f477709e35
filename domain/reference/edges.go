package reference

import (
	"github.com/Anirach/ncd-health-plus/domain/core/entities"
	vo "github.com/Anirach/ncd-health-plus/domain/core/valueobjects"
)

// edgeSpecs lists the 107 causal edges in declaration order
var edgeSpecs = []entities.EdgeSpec{
	{ID: "e1", Source: vo.LDL, Target: vo.CAD, Weight: 0.28, CI: vo.ConfidenceInterval{Low: 0.22, High: 0.34}, Grade: vo.GradeA, Domain: vo.DomainCVD, Description: "LDL-C increases CAD risk"},
	{ID: "e2", Source: vo.LDL, Target: vo.Stroke, Weight: 0.14, CI: vo.ConfidenceInterval{Low: 0.08, High: 0.20}, Grade: vo.GradeA, Domain: vo.DomainCVD, Description: "LDL-C increases stroke risk"},
	{ID: "e3", Source: vo.LDL, Target: vo.PAD, Weight: 0.22, CI: vo.ConfidenceInterval{Low: 0.15, High: 0.29}, Grade: vo.GradeB, Domain: vo.DomainCVD, Description: "LDL-C increases PAD risk"},
	{ID: "e4", Source: vo.LDL, Target: vo.NAFLD, Weight: 0.12, CI: vo.ConfidenceInterval{Low: 0.06, High: 0.18}, Grade: vo.GradeB, Domain: vo.DomainShared, Description: "LDL-C increases NAFLD risk"},

	{ID: "e5", Source: vo.HDL, Target: vo.CAD, Weight: -0.18, CI: vo.ConfidenceInterval{Low: -0.24, High: -0.12}, Grade: vo.GradeA, Domain: vo.DomainCVD, Description: "HDL-C is protective against CAD"},
	{ID: "e6", Source: vo.HDL, Target: vo.Stroke, Weight: -0.10, CI: vo.ConfidenceInterval{Low: -0.16, High: -0.04}, Grade: vo.GradeB, Domain: vo.DomainCVD, Description: "HDL-C is protective against stroke"},
	{ID: "e7", Source: vo.HDL, Target: vo.PAD, Weight: -0.14, CI: vo.ConfidenceInterval{Low: -0.20, High: -0.08}, Grade: vo.GradeB, Domain: vo.DomainCVD, Description: "HDL-C is protective against PAD"},

	{ID: "e8", Source: vo.TC, Target: vo.CAD, Weight: 0.20, CI: vo.ConfidenceInterval{Low: 0.14, High: 0.26}, Grade: vo.GradeA, Domain: vo.DomainCVD, Description: "Total cholesterol increases CAD risk"},
	{ID: "e9", Source: vo.TC, Target: vo.Stroke, Weight: 0.10, CI: vo.ConfidenceInterval{Low: 0.04, High: 0.16}, Grade: vo.GradeB, Domain: vo.DomainCVD, Description: "Total cholesterol increases stroke risk"},

	{ID: "e10", Source: vo.TG, Target: vo.CAD, Weight: 0.15, CI: vo.ConfidenceInterval{Low: 0.09, High: 0.21}, Grade: vo.GradeB, Domain: vo.DomainCVD, Description: "Triglycerides increase CAD risk"},
	{ID: "e11", Source: vo.TG, Target: vo.NAFLD, Weight: 0.25, CI: vo.ConfidenceInterval{Low: 0.18, High: 0.32}, Grade: vo.GradeA, Domain: vo.DomainShared, Description: "Triglycerides increase NAFLD risk"},
	{ID: "e12", Source: vo.TG, Target: vo.T2DM, Weight: 0.12, CI: vo.ConfidenceInterval{Low: 0.06, High: 0.18}, Grade: vo.GradeB, Domain: vo.DomainT2DM, Description: "Triglycerides increase T2DM risk"},

	{ID: "e13", Source: vo.SBP, Target: vo.CAD, Weight: 0.35, CI: vo.ConfidenceInterval{Low: 0.28, High: 0.42}, Grade: vo.GradeA, Domain: vo.DomainCVD, Description: "SBP increases CAD risk"},
	{ID: "e14", Source: vo.SBP, Target: vo.Stroke, Weight: 0.42, CI: vo.ConfidenceInterval{Low: 0.35, High: 0.49}, Grade: vo.GradeA, Domain: vo.DomainCVD, Description: "SBP increases stroke risk (strongest BP-stroke link)"},
	{ID: "e15", Source: vo.SBP, Target: vo.HF, Weight: 0.25, CI: vo.ConfidenceInterval{Low: 0.18, High: 0.32}, Grade: vo.GradeA, Domain: vo.DomainCVD, Description: "SBP increases heart failure risk"},
	{ID: "e16", Source: vo.SBP, Target: vo.CKD, Weight: 0.18, CI: vo.ConfidenceInterval{Low: 0.12, High: 0.24}, Grade: vo.GradeA, Domain: vo.DomainCKD, Description: "SBP increases CKD risk"},
	{ID: "e17", Source: vo.SBP, Target: vo.PAD, Weight: 0.20, CI: vo.ConfidenceInterval{Low: 0.13, High: 0.27}, Grade: vo.GradeB, Domain: vo.DomainCVD, Description: "SBP increases PAD risk"},

	{ID: "e18", Source: vo.DBP, Target: vo.CAD, Weight: 0.20, CI: vo.ConfidenceInterval{Low: 0.14, High: 0.26}, Grade: vo.GradeA, Domain: vo.DomainCVD, Description: "DBP increases CAD risk"},
	{ID: "e19", Source: vo.DBP, Target: vo.Stroke, Weight: 0.25, CI: vo.ConfidenceInterval{Low: 0.18, High: 0.32}, Grade: vo.GradeA, Domain: vo.DomainCVD, Description: "DBP increases stroke risk"},
	{ID: "e20", Source: vo.DBP, Target: vo.HF, Weight: 0.15, CI: vo.ConfidenceInterval{Low: 0.09, High: 0.21}, Grade: vo.GradeB, Domain: vo.DomainCVD, Description: "DBP increases heart failure risk"},

	{ID: "e21", Source: vo.Smoking, Target: vo.CAD, Weight: 0.45, CI: vo.ConfidenceInterval{Low: 0.38, High: 0.52}, Grade: vo.GradeA, Domain: vo.DomainCVD, Description: "Smoking strongly increases CAD risk"},
	{ID: "e22", Source: vo.Smoking, Target: vo.Stroke, Weight: 0.32, CI: vo.ConfidenceInterval{Low: 0.25, High: 0.39}, Grade: vo.GradeA, Domain: vo.DomainCVD, Description: "Smoking increases stroke risk"},
	{ID: "e23", Source: vo.Smoking, Target: vo.PAD, Weight: 0.50, CI: vo.ConfidenceInterval{Low: 0.42, High: 0.58}, Grade: vo.GradeA, Domain: vo.DomainCVD, Description: "Smoking strongly increases PAD risk"},
	{ID: "e24", Source: vo.Smoking, Target: vo.CKD, Weight: 0.15, CI: vo.ConfidenceInterval{Low: 0.08, High: 0.22}, Grade: vo.GradeB, Domain: vo.DomainCKD, Description: "Smoking increases CKD risk"},
	{ID: "e25", Source: vo.Smoking, Target: vo.HF, Weight: 0.20, CI: vo.ConfidenceInterval{Low: 0.13, High: 0.27}, Grade: vo.GradeB, Domain: vo.DomainCVD, Description: "Smoking increases heart failure risk"},

	{ID: "e26", Source: vo.Age, Target: vo.CAD, Weight: 0.50, CI: vo.ConfidenceInterval{Low: 0.44, High: 0.56}, Grade: vo.GradeA, Domain: vo.DomainCVD, Description: "Age is the strongest CAD risk factor"},
	{ID: "e27", Source: vo.Age, Target: vo.Stroke, Weight: 0.48, CI: vo.ConfidenceInterval{Low: 0.42, High: 0.54}, Grade: vo.GradeA, Domain: vo.DomainCVD, Description: "Age strongly increases stroke risk"},
	{ID: "e28", Source: vo.Age, Target: vo.HF, Weight: 0.45, CI: vo.ConfidenceInterval{Low: 0.38, High: 0.52}, Grade: vo.GradeA, Domain: vo.DomainCVD, Description: "Age increases heart failure risk"},
	{ID: "e29", Source: vo.Age, Target: vo.T2DM, Weight: 0.30, CI: vo.ConfidenceInterval{Low: 0.24, High: 0.36}, Grade: vo.GradeA, Domain: vo.DomainT2DM, Description: "Age increases T2DM risk"},
	{ID: "e30", Source: vo.Age, Target: vo.CKD, Weight: 0.40, CI: vo.ConfidenceInterval{Low: 0.33, High: 0.47}, Grade: vo.GradeA, Domain: vo.DomainCKD, Description: "Age increases CKD risk"},
	{ID: "e31", Source: vo.Age, Target: vo.PAD, Weight: 0.38, CI: vo.ConfidenceInterval{Low: 0.31, High: 0.45}, Grade: vo.GradeA, Domain: vo.DomainCVD, Description: "Age increases PAD risk"},
	{ID: "e32", Source: vo.Age, Target: vo.NAFLD, Weight: 0.15, CI: vo.ConfidenceInterval{Low: 0.08, High: 0.22}, Grade: vo.GradeB, Domain: vo.DomainShared, Description: "Age increases NAFLD risk"},

	{ID: "e33", Source: vo.Sex, Target: vo.CAD, Weight: 0.25, CI: vo.ConfidenceInterval{Low: 0.18, High: 0.32}, Grade: vo.GradeA, Domain: vo.DomainCVD, Description: "Male sex increases CAD risk"},
	{ID: "e34", Source: vo.Sex, Target: vo.Stroke, Weight: 0.12, CI: vo.ConfidenceInterval{Low: 0.06, High: 0.18}, Grade: vo.GradeB, Domain: vo.DomainCVD, Description: "Male sex slightly increases stroke risk"},
	{ID: "e35", Source: vo.Sex, Target: vo.PAD, Weight: 0.18, CI: vo.ConfidenceInterval{Low: 0.11, High: 0.25}, Grade: vo.GradeB, Domain: vo.DomainCVD, Description: "Male sex increases PAD risk"},
	{ID: "e36", Source: vo.Sex, Target: vo.HF, Weight: 0.15, CI: vo.ConfidenceInterval{Low: 0.08, High: 0.22}, Grade: vo.GradeB, Domain: vo.DomainCVD, Description: "Male sex increases heart failure risk"},

	{ID: "e37", Source: vo.BMI, Target: vo.CAD, Weight: 0.15, CI: vo.ConfidenceInterval{Low: 0.09, High: 0.21}, Grade: vo.GradeA, Domain: vo.DomainCVD, Description: "BMI increases CAD risk"},
	{ID: "e38", Source: vo.BMI, Target: vo.HF, Weight: 0.22, CI: vo.ConfidenceInterval{Low: 0.15, High: 0.29}, Grade: vo.GradeA, Domain: vo.DomainCVD, Description: "BMI increases heart failure risk"},
	{ID: "e39", Source: vo.BMI, Target: vo.T2DM, Weight: 0.38, CI: vo.ConfidenceInterval{Low: 0.31, High: 0.45}, Grade: vo.GradeA, Domain: vo.DomainT2DM, Description: "BMI strongly increases T2DM risk"},
	{ID: "e40", Source: vo.BMI, Target: vo.NAFLD, Weight: 0.35, CI: vo.ConfidenceInterval{Low: 0.28, High: 0.42}, Grade: vo.GradeA, Domain: vo.DomainShared, Description: "BMI strongly increases NAFLD risk"},
	{ID: "e41", Source: vo.BMI, Target: vo.CKD, Weight: 0.12, CI: vo.ConfidenceInterval{Low: 0.06, High: 0.18}, Grade: vo.GradeB, Domain: vo.DomainCKD, Description: "BMI increases CKD risk"},
	{ID: "e42", Source: vo.BMI, Target: vo.Stroke, Weight: 0.10, CI: vo.ConfidenceInterval{Low: 0.04, High: 0.16}, Grade: vo.GradeB, Domain: vo.DomainCVD, Description: "BMI increases stroke risk"},
	{ID: "e43", Source: vo.BMI, Target: vo.SBP, Weight: 0.22, CI: vo.ConfidenceInterval{Low: 0.16, High: 0.28}, Grade: vo.GradeA, Domain: vo.DomainCVD, Description: "BMI raises blood pressure"},
	{ID: "e44", Source: vo.BMI, Target: vo.TG, Weight: 0.20, CI: vo.ConfidenceInterval{Low: 0.14, High: 0.26}, Grade: vo.GradeA, Domain: vo.DomainCVD, Description: "BMI raises triglycerides"},
	{ID: "e45", Source: vo.BMI, Target: vo.HbA1c, Weight: 0.18, CI: vo.ConfidenceInterval{Low: 0.12, High: 0.24}, Grade: vo.GradeA, Domain: vo.DomainT2DM, Description: "BMI raises HbA1c"},
	{ID: "e46", Source: vo.BMI, Target: vo.HDL, Weight: -0.15, CI: vo.ConfidenceInterval{Low: -0.21, High: -0.09}, Grade: vo.GradeA, Domain: vo.DomainCVD, Description: "BMI lowers HDL-C"},

	{ID: "e47", Source: vo.Exercise, Target: vo.CAD, Weight: -0.20, CI: vo.ConfidenceInterval{Low: -0.27, High: -0.13}, Grade: vo.GradeA, Domain: vo.DomainCVD, Description: "Exercise reduces CAD risk"},
	{ID: "e48", Source: vo.Exercise, Target: vo.BMI, Weight: -0.12, CI: vo.ConfidenceInterval{Low: -0.18, High: -0.06}, Grade: vo.GradeA, Domain: vo.DomainShared, Description: "Exercise reduces BMI"},
	{ID: "e49", Source: vo.Exercise, Target: vo.SBP, Weight: -0.10, CI: vo.ConfidenceInterval{Low: -0.16, High: -0.04}, Grade: vo.GradeA, Domain: vo.DomainCVD, Description: "Exercise reduces SBP"},
	{ID: "e50", Source: vo.Exercise, Target: vo.HbA1c, Weight: -0.08, CI: vo.ConfidenceInterval{Low: -0.14, High: -0.02}, Grade: vo.GradeB, Domain: vo.DomainT2DM, Description: "Exercise reduces HbA1c"},
	{ID: "e51", Source: vo.Exercise, Target: vo.HDL, Weight: 0.10, CI: vo.ConfidenceInterval{Low: 0.04, High: 0.16}, Grade: vo.GradeA, Domain: vo.DomainCVD, Description: "Exercise raises HDL-C"},
	{ID: "e52", Source: vo.Exercise, Target: vo.TG, Weight: -0.08, CI: vo.ConfidenceInterval{Low: -0.14, High: -0.02}, Grade: vo.GradeB, Domain: vo.DomainCVD, Description: "Exercise reduces triglycerides"},
	{ID: "e53", Source: vo.Exercise, Target: vo.T2DM, Weight: -0.15, CI: vo.ConfidenceInterval{Low: -0.22, High: -0.08}, Grade: vo.GradeA, Domain: vo.DomainT2DM, Description: "Exercise reduces T2DM risk"},
	{ID: "e54", Source: vo.Exercise, Target: vo.Stroke, Weight: -0.12, CI: vo.ConfidenceInterval{Low: -0.18, High: -0.06}, Grade: vo.GradeB, Domain: vo.DomainCVD, Description: "Exercise reduces stroke risk"},
	{ID: "e55", Source: vo.Exercise, Target: vo.HF, Weight: -0.14, CI: vo.ConfidenceInterval{Low: -0.20, High: -0.08}, Grade: vo.GradeB, Domain: vo.DomainCVD, Description: "Exercise reduces heart failure risk"},

	{ID: "e56", Source: vo.Alcohol, Target: vo.CAD, Weight: 0.10, CI: vo.ConfidenceInterval{Low: 0.03, High: 0.17}, Grade: vo.GradeC, Domain: vo.DomainCVD, Description: "Heavy alcohol increases CAD risk"},
	{ID: "e57", Source: vo.Alcohol, Target: vo.NAFLD, Weight: 0.30, CI: vo.ConfidenceInterval{Low: 0.23, High: 0.37}, Grade: vo.GradeA, Domain: vo.DomainShared, Description: "Alcohol increases NAFLD risk"},
	{ID: "e58", Source: vo.Alcohol, Target: vo.Stroke, Weight: 0.15, CI: vo.ConfidenceInterval{Low: 0.08, High: 0.22}, Grade: vo.GradeB, Domain: vo.DomainCVD, Description: "Alcohol increases stroke risk"},
	{ID: "e59", Source: vo.Alcohol, Target: vo.SBP, Weight: 0.12, CI: vo.ConfidenceInterval{Low: 0.06, High: 0.18}, Grade: vo.GradeB, Domain: vo.DomainCVD, Description: "Alcohol raises blood pressure"},

	{ID: "e60", Source: vo.Diet, Target: vo.BMI, Weight: -0.15, CI: vo.ConfidenceInterval{Low: -0.22, High: -0.08}, Grade: vo.GradeB, Domain: vo.DomainShared, Description: "Good diet reduces BMI"},
	{ID: "e61", Source: vo.Diet, Target: vo.LDL, Weight: -0.12, CI: vo.ConfidenceInterval{Low: -0.18, High: -0.06}, Grade: vo.GradeB, Domain: vo.DomainCVD, Description: "Good diet reduces LDL-C"},
	{ID: "e62", Source: vo.Diet, Target: vo.SBP, Weight: -0.08, CI: vo.ConfidenceInterval{Low: -0.14, High: -0.02}, Grade: vo.GradeB, Domain: vo.DomainCVD, Description: "Good diet reduces SBP"},
	{ID: "e63", Source: vo.Diet, Target: vo.FPG, Weight: -0.10, CI: vo.ConfidenceInterval{Low: -0.16, High: -0.04}, Grade: vo.GradeB, Domain: vo.DomainT2DM, Description: "Good diet reduces FPG"},
	{ID: "e64", Source: vo.Diet, Target: vo.TG, Weight: -0.10, CI: vo.ConfidenceInterval{Low: -0.16, High: -0.04}, Grade: vo.GradeB, Domain: vo.DomainCVD, Description: "Good diet reduces triglycerides"},

	{ID: "e65", Source: vo.HbA1c, Target: vo.T2DM, Weight: 0.68, CI: vo.ConfidenceInterval{Low: 0.60, High: 0.76}, Grade: vo.GradeA, Domain: vo.DomainT2DM, Description: "HbA1c is the primary T2DM predictor"},

	{ID: "e66", Source: vo.FPG, Target: vo.T2DM, Weight: 0.55, CI: vo.ConfidenceInterval{Low: 0.48, High: 0.62}, Grade: vo.GradeA, Domain: vo.DomainT2DM, Description: "FPG is a strong T2DM predictor"},

	{ID: "e67", Source: vo.HbA1c, Target: vo.CAD, Weight: 0.18, CI: vo.ConfidenceInterval{Low: 0.12, High: 0.24}, Grade: vo.GradeA, Domain: vo.DomainCVD, Description: "HbA1c increases CAD risk (glycemic burden)"},
	{ID: "e68", Source: vo.HbA1c, Target: vo.CKD, Weight: 0.22, CI: vo.ConfidenceInterval{Low: 0.15, High: 0.29}, Grade: vo.GradeA, Domain: vo.DomainCKD, Description: "HbA1c increases CKD risk"},
	{ID: "e69", Source: vo.HbA1c, Target: vo.Stroke, Weight: 0.15, CI: vo.ConfidenceInterval{Low: 0.09, High: 0.21}, Grade: vo.GradeB, Domain: vo.DomainCVD, Description: "HbA1c increases stroke risk"},

	{ID: "e70", Source: vo.FPG, Target: vo.CAD, Weight: 0.12, CI: vo.ConfidenceInterval{Low: 0.06, High: 0.18}, Grade: vo.GradeB, Domain: vo.DomainCVD, Description: "FPG increases CAD risk"},

	{ID: "e71", Source: vo.Diabetes, Target: vo.CKD, Weight: 0.35, CI: vo.ConfidenceInterval{Low: 0.28, High: 0.42}, Grade: vo.GradeA, Domain: vo.DomainCKD, Description: "Diabetes is a major CKD risk factor"},
	{ID: "e72", Source: vo.Diabetes, Target: vo.CAD, Weight: 0.30, CI: vo.ConfidenceInterval{Low: 0.23, High: 0.37}, Grade: vo.GradeA, Domain: vo.DomainCVD, Description: "Diabetes increases CAD risk"},
	{ID: "e73", Source: vo.Diabetes, Target: vo.Stroke, Weight: 0.25, CI: vo.ConfidenceInterval{Low: 0.18, High: 0.32}, Grade: vo.GradeA, Domain: vo.DomainCVD, Description: "Diabetes increases stroke risk"},
	{ID: "e74", Source: vo.Diabetes, Target: vo.HF, Weight: 0.28, CI: vo.ConfidenceInterval{Low: 0.21, High: 0.35}, Grade: vo.GradeA, Domain: vo.DomainCVD, Description: "Diabetes increases heart failure risk"},
	{ID: "e75", Source: vo.Diabetes, Target: vo.PAD, Weight: 0.32, CI: vo.ConfidenceInterval{Low: 0.25, High: 0.39}, Grade: vo.GradeA, Domain: vo.DomainCVD, Description: "Diabetes increases PAD risk"},

	{ID: "e76", Source: vo.EGFR, Target: vo.CKD, Weight: -0.45, CI: vo.ConfidenceInterval{Low: -0.52, High: -0.38}, Grade: vo.GradeA, Domain: vo.DomainCKD, Description: "Low eGFR strongly indicates CKD"},
	{ID: "e77", Source: vo.EGFR, Target: vo.HF, Weight: -0.15, CI: vo.ConfidenceInterval{Low: -0.22, High: -0.08}, Grade: vo.GradeB, Domain: vo.DomainCVD, Description: "Low eGFR increases heart failure risk"},
	{ID: "e78", Source: vo.EGFR, Target: vo.CAD, Weight: -0.12, CI: vo.ConfidenceInterval{Low: -0.18, High: -0.06}, Grade: vo.GradeB, Domain: vo.DomainCVD, Description: "Low eGFR increases CAD risk"},

	{ID: "e79", Source: vo.Hypertension, Target: vo.CAD, Weight: 0.32, CI: vo.ConfidenceInterval{Low: 0.25, High: 0.39}, Grade: vo.GradeA, Domain: vo.DomainCVD, Description: "Hypertension increases CAD risk"},
	{ID: "e80", Source: vo.Hypertension, Target: vo.Stroke, Weight: 0.40, CI: vo.ConfidenceInterval{Low: 0.33, High: 0.47}, Grade: vo.GradeA, Domain: vo.DomainCVD, Description: "Hypertension is the top stroke risk factor"},
	{ID: "e81", Source: vo.Hypertension, Target: vo.HF, Weight: 0.30, CI: vo.ConfidenceInterval{Low: 0.23, High: 0.37}, Grade: vo.GradeA, Domain: vo.DomainCVD, Description: "Hypertension increases HF risk"},
	{ID: "e82", Source: vo.Hypertension, Target: vo.CKD, Weight: 0.25, CI: vo.ConfidenceInterval{Low: 0.18, High: 0.32}, Grade: vo.GradeA, Domain: vo.DomainCKD, Description: "Hypertension increases CKD risk"},

	{ID: "e83", Source: vo.Statin, Target: vo.LDL, Weight: -0.35, CI: vo.ConfidenceInterval{Low: -0.42, High: -0.28}, Grade: vo.GradeA, Domain: vo.DomainIntervention, Description: "Statins reduce LDL-C significantly"},
	{ID: "e84", Source: vo.Statin, Target: vo.CAD, Weight: -0.22, CI: vo.ConfidenceInterval{Low: -0.29, High: -0.15}, Grade: vo.GradeA, Domain: vo.DomainIntervention, Description: "Statins directly reduce CAD risk"},
	{ID: "e85", Source: vo.Statin, Target: vo.Stroke, Weight: -0.12, CI: vo.ConfidenceInterval{Low: -0.18, High: -0.06}, Grade: vo.GradeA, Domain: vo.DomainIntervention, Description: "Statins reduce stroke risk"},
	{ID: "e86", Source: vo.Statin, Target: vo.TC, Weight: -0.30, CI: vo.ConfidenceInterval{Low: -0.37, High: -0.23}, Grade: vo.GradeA, Domain: vo.DomainIntervention, Description: "Statins reduce total cholesterol"},
	{ID: "e87", Source: vo.Statin, Target: vo.TG, Weight: -0.10, CI: vo.ConfidenceInterval{Low: -0.16, High: -0.04}, Grade: vo.GradeB, Domain: vo.DomainIntervention, Description: "Statins slightly reduce triglycerides"},

	{ID: "e88", Source: vo.HTNMed, Target: vo.SBP, Weight: -0.30, CI: vo.ConfidenceInterval{Low: -0.37, High: -0.23}, Grade: vo.GradeA, Domain: vo.DomainIntervention, Description: "HTN meds reduce SBP significantly"},
	{ID: "e89", Source: vo.HTNMed, Target: vo.DBP, Weight: -0.25, CI: vo.ConfidenceInterval{Low: -0.32, High: -0.18}, Grade: vo.GradeA, Domain: vo.DomainIntervention, Description: "HTN meds reduce DBP"},
	{ID: "e90", Source: vo.HTNMed, Target: vo.Stroke, Weight: -0.18, CI: vo.ConfidenceInterval{Low: -0.25, High: -0.11}, Grade: vo.GradeA, Domain: vo.DomainIntervention, Description: "HTN meds reduce stroke risk directly"},
	{ID: "e91", Source: vo.HTNMed, Target: vo.HF, Weight: -0.15, CI: vo.ConfidenceInterval{Low: -0.22, High: -0.08}, Grade: vo.GradeA, Domain: vo.DomainIntervention, Description: "HTN meds reduce heart failure risk"},

	{ID: "e92", Source: vo.SGLT2i, Target: vo.HbA1c, Weight: -0.15, CI: vo.ConfidenceInterval{Low: -0.22, High: -0.08}, Grade: vo.GradeA, Domain: vo.DomainIntervention, Description: "SGLT2i reduces HbA1c"},
	{ID: "e93", Source: vo.SGLT2i, Target: vo.HF, Weight: -0.25, CI: vo.ConfidenceInterval{Low: -0.32, High: -0.18}, Grade: vo.GradeA, Domain: vo.DomainIntervention, Description: "SGLT2i significantly reduces HF risk"},
	{ID: "e94", Source: vo.SGLT2i, Target: vo.CKD, Weight: -0.28, CI: vo.ConfidenceInterval{Low: -0.35, High: -0.21}, Grade: vo.GradeA, Domain: vo.DomainIntervention, Description: "SGLT2i significantly reduces CKD progression"},
	{ID: "e95", Source: vo.SGLT2i, Target: vo.EGFR, Weight: 0.12, CI: vo.ConfidenceInterval{Low: 0.06, High: 0.18}, Grade: vo.GradeA, Domain: vo.DomainIntervention, Description: "SGLT2i preserves eGFR"},
	{ID: "e96", Source: vo.SGLT2i, Target: vo.BMI, Weight: -0.08, CI: vo.ConfidenceInterval{Low: -0.14, High: -0.02}, Grade: vo.GradeB, Domain: vo.DomainIntervention, Description: "SGLT2i causes modest weight loss"},
	{ID: "e97", Source: vo.SGLT2i, Target: vo.SBP, Weight: -0.06, CI: vo.ConfidenceInterval{Low: -0.12, High: 0.00}, Grade: vo.GradeB, Domain: vo.DomainIntervention, Description: "SGLT2i slightly reduces SBP"},

	{ID: "e98", Source: vo.Metformin, Target: vo.HbA1c, Weight: -0.20, CI: vo.ConfidenceInterval{Low: -0.27, High: -0.13}, Grade: vo.GradeA, Domain: vo.DomainIntervention, Description: "Metformin reduces HbA1c"},
	{ID: "e99", Source: vo.Metformin, Target: vo.FPG, Weight: -0.22, CI: vo.ConfidenceInterval{Low: -0.29, High: -0.15}, Grade: vo.GradeA, Domain: vo.DomainIntervention, Description: "Metformin reduces FPG"},
	{ID: "e100", Source: vo.Metformin, Target: vo.T2DM, Weight: -0.18, CI: vo.ConfidenceInterval{Low: -0.25, High: -0.11}, Grade: vo.GradeA, Domain: vo.DomainIntervention, Description: "Metformin reduces T2DM risk/progression"},
	{ID: "e101", Source: vo.Metformin, Target: vo.BMI, Weight: -0.05, CI: vo.ConfidenceInterval{Low: -0.11, High: 0.01}, Grade: vo.GradeC, Domain: vo.DomainIntervention, Description: "Metformin has modest weight effect"},
	{ID: "e102", Source: vo.Metformin, Target: vo.CAD, Weight: -0.08, CI: vo.ConfidenceInterval{Low: -0.15, High: -0.01}, Grade: vo.GradeB, Domain: vo.DomainIntervention, Description: "Metformin may reduce CAD risk"},

	{ID: "e103", Source: vo.Aspirin, Target: vo.CAD, Weight: -0.15, CI: vo.ConfidenceInterval{Low: -0.22, High: -0.08}, Grade: vo.GradeA, Domain: vo.DomainIntervention, Description: "Aspirin reduces CAD risk"},
	{ID: "e104", Source: vo.Aspirin, Target: vo.Stroke, Weight: -0.10, CI: vo.ConfidenceInterval{Low: -0.17, High: -0.03}, Grade: vo.GradeB, Domain: vo.DomainIntervention, Description: "Aspirin reduces stroke risk"},

	{ID: "e105", Source: vo.ACEARB, Target: vo.CKD, Weight: -0.22, CI: vo.ConfidenceInterval{Low: -0.29, High: -0.15}, Grade: vo.GradeA, Domain: vo.DomainIntervention, Description: "ACEi/ARB slows CKD progression"},
	{ID: "e106", Source: vo.ACEARB, Target: vo.HF, Weight: -0.20, CI: vo.ConfidenceInterval{Low: -0.27, High: -0.13}, Grade: vo.GradeA, Domain: vo.DomainIntervention, Description: "ACEi/ARB reduces heart failure risk"},
	{ID: "e107", Source: vo.ACEARB, Target: vo.SBP, Weight: -0.25, CI: vo.ConfidenceInterval{Low: -0.32, High: -0.18}, Grade: vo.GradeA, Domain: vo.DomainIntervention, Description: "ACEi/ARB reduces blood pressure"},
}
