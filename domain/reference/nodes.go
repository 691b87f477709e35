package reference

import (
	"github.com/Anirach/ncd-health-plus/domain/core/entities"
	vo "github.com/Anirach/ncd-health-plus/domain/core/valueobjects"
)

// nodeSpecs lists the 31 health factors in declaration order
var nodeSpecs = []entities.NodeSpec{
	// demographic
	{ID: vo.Age, Label: "Age", Domain: vo.DomainShared, Type: vo.TypeDemographic, Unit: "years", Description: "Patient age in years"},
	{ID: vo.Sex, Label: "Sex", Domain: vo.DomainShared, Type: vo.TypeDemographic, Description: "Biological sex (0=Female, 1=Male)"},

	// lipid panel
	{ID: vo.LDL, Label: "LDL-C", Domain: vo.DomainCVD, Type: vo.TypeBiomarker, Unit: "mg/dL", NormalRange: &vo.Range{Min: 0, Max: 100}, Description: "Low-density lipoprotein cholesterol"},
	{ID: vo.HDL, Label: "HDL-C", Domain: vo.DomainCVD, Type: vo.TypeBiomarker, Unit: "mg/dL", NormalRange: &vo.Range{Min: 40, Max: 60}, Description: "High-density lipoprotein cholesterol"},
	{ID: vo.TC, Label: "Total-C", Domain: vo.DomainCVD, Type: vo.TypeBiomarker, Unit: "mg/dL", NormalRange: &vo.Range{Min: 0, Max: 200}, Description: "Total cholesterol"},
	{ID: vo.TG, Label: "TG", Domain: vo.DomainCVD, Type: vo.TypeBiomarker, Unit: "mg/dL", NormalRange: &vo.Range{Min: 0, Max: 150}, Description: "Triglycerides"},

	// blood pressure
	{ID: vo.SBP, Label: "SBP", Domain: vo.DomainCVD, Type: vo.TypeBiomarker, Unit: "mmHg", NormalRange: &vo.Range{Min: 90, Max: 120}, Description: "Systolic blood pressure"},
	{ID: vo.DBP, Label: "DBP", Domain: vo.DomainCVD, Type: vo.TypeBiomarker, Unit: "mmHg", NormalRange: &vo.Range{Min: 60, Max: 80}, Description: "Diastolic blood pressure"},

	// glycaemic control
	{ID: vo.HbA1c, Label: "HbA1c", Domain: vo.DomainT2DM, Type: vo.TypeBiomarker, Unit: "%", NormalRange: &vo.Range{Min: 4, Max: 5.7}, Description: "Glycated hemoglobin"},
	{ID: vo.FPG, Label: "FPG", Domain: vo.DomainT2DM, Type: vo.TypeBiomarker, Unit: "mg/dL", NormalRange: &vo.Range{Min: 70, Max: 100}, Description: "Fasting plasma glucose"},

	// kidney function
	{ID: vo.EGFR, Label: "eGFR", Domain: vo.DomainCKD, Type: vo.TypeBiomarker, Unit: "mL/min/1.73m²", NormalRange: &vo.Range{Min: 90, Max: 120}, Description: "Estimated glomerular filtration rate"},

	// body composition
	{ID: vo.BMI, Label: "BMI", Domain: vo.DomainShared, Type: vo.TypeBiomarker, Unit: "kg/m²", NormalRange: &vo.Range{Min: 18.5, Max: 25}, Description: "Body mass index"},

	// lifestyle scores
	{ID: vo.Smoking, Label: "Smoking", Domain: vo.DomainShared, Type: vo.TypeLifestyle, Description: "Smoking status (0=Never, 0.5=Former, 1=Current)"},
	{ID: vo.Exercise, Label: "Exercise", Domain: vo.DomainShared, Type: vo.TypeLifestyle, Unit: "days/week", Description: "Exercise frequency (0-7 days per week)"},
	{ID: vo.Alcohol, Label: "Alcohol", Domain: vo.DomainShared, Type: vo.TypeLifestyle, Description: "Alcohol intake (0=None, 0.5=Moderate, 1=Heavy)"},
	{ID: vo.Diet, Label: "Diet Quality", Domain: vo.DomainShared, Type: vo.TypeLifestyle, Description: "Diet quality score (0-1, higher=healthier)"},

	// medication flags
	{ID: vo.Statin, Label: "Statin", Domain: vo.DomainIntervention, Type: vo.TypeMedication, Description: "Statin therapy (0=No, 1=Yes)"},
	{ID: vo.HTNMed, Label: "HTN-med", Domain: vo.DomainIntervention, Type: vo.TypeMedication, Description: "Antihypertensive medication (0=No, 1=Yes)"},
	{ID: vo.SGLT2i, Label: "SGLT2i", Domain: vo.DomainIntervention, Type: vo.TypeMedication, Description: "SGLT2 inhibitor (0=No, 1=Yes)"},
	{ID: vo.Metformin, Label: "Metformin", Domain: vo.DomainIntervention, Type: vo.TypeMedication, Description: "Metformin therapy (0=No, 1=Yes)"},
	{ID: vo.Aspirin, Label: "Aspirin", Domain: vo.DomainIntervention, Type: vo.TypeMedication, Description: "Aspirin therapy (0=No, 1=Yes)"},
	{ID: vo.ACEARB, Label: "ACEi/ARB", Domain: vo.DomainIntervention, Type: vo.TypeMedication, Description: "ACE inhibitor or ARB (0=No, 1=Yes)"},

	// derived from biomarkers
	{ID: vo.Diabetes, Label: "Diabetes", Domain: vo.DomainT2DM, Type: vo.TypeBiomarker, Description: "Diabetes status (derived from HbA1c/FPG)"},
	{ID: vo.Hypertension, Label: "Hypertension", Domain: vo.DomainCVD, Type: vo.TypeBiomarker, Description: "Hypertension status (derived from SBP/DBP)"},

	// scored endpoints
	{ID: vo.CAD, Label: "CAD", Domain: vo.DomainCVD, Type: vo.TypeDisease, Description: "Coronary artery disease"},
	{ID: vo.Stroke, Label: "Stroke", Domain: vo.DomainCVD, Type: vo.TypeDisease, Description: "Cerebrovascular accident"},
	{ID: vo.HF, Label: "Heart Failure", Domain: vo.DomainCVD, Type: vo.TypeDisease, Description: "Heart failure"},
	{ID: vo.PAD, Label: "PAD", Domain: vo.DomainCVD, Type: vo.TypeDisease, Description: "Peripheral artery disease"},
	{ID: vo.T2DM, Label: "T2DM", Domain: vo.DomainT2DM, Type: vo.TypeDisease, Description: "Type 2 diabetes mellitus"},
	{ID: vo.CKD, Label: "CKD", Domain: vo.DomainCKD, Type: vo.TypeDisease, Description: "Chronic kidney disease"},
	{ID: vo.NAFLD, Label: "NAFLD", Domain: vo.DomainShared, Type: vo.TypeDisease, Description: "Non-alcoholic fatty liver disease"},
}
