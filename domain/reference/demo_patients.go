package reference

import vo "github.com/Anirach/ncd-health-plus/domain/core/valueobjects"

// Demo patient identifiers
const (
	DemoLowID      = "demo-low"
	DemoModerateID = "demo-moderate"
	DemoHighID     = "demo-high"
)

func untreated(values map[vo.NodeID]float64) map[vo.NodeID]float64 {
	for _, med := range []vo.NodeID{vo.Statin, vo.HTNMed, vo.SGLT2i, vo.Metformin, vo.Aspirin, vo.ACEARB} {
		values[med] = 0
	}
	return values
}

// DemoPatients returns the three example patients, low to high risk
func DemoPatients() []vo.PatientProfile {
	return []vo.PatientProfile{
		vo.NewPatientProfile(DemoLowID, "Sarah Chen", untreated(map[vo.NodeID]float64{
			vo.Age: 40, vo.Sex: 0,
			vo.SBP: 115, vo.DBP: 72,
			vo.LDL: 95, vo.HDL: 62, vo.TC: 185, vo.TG: 90,
			vo.HbA1c: 5.2, vo.FPG: 88,
			vo.BMI: 22.5, vo.EGFR: 105,
			vo.Smoking: 0, vo.Exercise: 5, vo.Alcohol: 0, vo.Diet: 0.8,
		})),
		vo.NewPatientProfile(DemoModerateID, "James Wilson", untreated(map[vo.NodeID]float64{
			vo.Age: 55, vo.Sex: 1,
			vo.SBP: 148, vo.DBP: 92,
			vo.LDL: 162, vo.HDL: 38, vo.TC: 245, vo.TG: 210,
			vo.HbA1c: 6.1, vo.FPG: 112,
			vo.BMI: 29.5, vo.EGFR: 78,
			vo.Smoking: 0, vo.Exercise: 1, vo.Alcohol: 0.5, vo.Diet: 0.4,
		})),
		vo.NewPatientProfile(DemoHighID, "Robert Martinez", untreated(map[vo.NodeID]float64{
			vo.Age: 65, vo.Sex: 1,
			vo.SBP: 168, vo.DBP: 98,
			vo.LDL: 185, vo.HDL: 32, vo.TC: 280, vo.TG: 290,
			vo.HbA1c: 8.2, vo.FPG: 165,
			vo.BMI: 33.5, vo.EGFR: 52,
			vo.Smoking: 1, vo.Exercise: 0, vo.Alcohol: 0.5, vo.Diet: 0.2,
		})),
	}
}

// DemoPatient looks up a demo patient by id
func DemoPatient(id string) (vo.PatientProfile, bool) {
	for _, p := range DemoPatients() {
		if p.ID() == id {
			return p, true
		}
	}
	return vo.PatientProfile{}, false
}
