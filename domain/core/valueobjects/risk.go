package valueobjects

// RiskWithCI is a probability with its confidence band
type RiskWithCI struct {
	Value  float64 `json:"value"`
	CILow  float64 `json:"ci_low"`
	CIHigh float64 `json:"ci_high"`
}

// RiskResult holds point risks for every endpoint and both composites
type RiskResult struct {
	CAD          float64 `json:"cad"`
	Stroke       float64 `json:"stroke"`
	HF           float64 `json:"hf"`
	PAD          float64 `json:"pad"`
	T2DM         float64 `json:"t2dm"`
	CKD          float64 `json:"ckd"`
	NAFLD        float64 `json:"nafld"`
	CVDComposite float64 `json:"cvd_composite"`
	NCDComposite float64 `json:"ncd_composite"`
}

// Disease returns the point risk for an endpoint id, false when the id is not an endpoint
func (r RiskResult) Disease(id NodeID) (float64, bool) {
	switch id {
	case CAD:
		return r.CAD, true
	case Stroke:
		return r.Stroke, true
	case HF:
		return r.HF, true
	case PAD:
		return r.PAD, true
	case T2DM:
		return r.T2DM, true
	case CKD:
		return r.CKD, true
	case NAFLD:
		return r.NAFLD, true
	}
	return 0, false
}

// FullRiskResult holds risks with confidence bands
type FullRiskResult struct {
	CAD          RiskWithCI `json:"cad"`
	Stroke       RiskWithCI `json:"stroke"`
	HF           RiskWithCI `json:"hf"`
	PAD          RiskWithCI `json:"pad"`
	T2DM         RiskWithCI `json:"t2dm"`
	CKD          RiskWithCI `json:"ckd"`
	NAFLD        RiskWithCI `json:"nafld"`
	CVDComposite RiskWithCI `json:"cvd_composite"`
	NCDComposite RiskWithCI `json:"ncd_composite"`
}

// Point drops the bands
func (r FullRiskResult) Point() RiskResult {
	return RiskResult{
		CAD:          r.CAD.Value,
		Stroke:       r.Stroke.Value,
		HF:           r.HF.Value,
		PAD:          r.PAD.Value,
		T2DM:         r.T2DM.Value,
		CKD:          r.CKD.Value,
		NAFLD:        r.NAFLD.Value,
		CVDComposite: r.CVDComposite.Value,
		NCDComposite: r.NCDComposite.Value,
	}
}

// All returns every band keyed by its JSON name
func (r FullRiskResult) All() map[string]RiskWithCI {
	return map[string]RiskWithCI{
		"cad":           r.CAD,
		"stroke":        r.Stroke,
		"hf":            r.HF,
		"pad":           r.PAD,
		"t2dm":          r.T2DM,
		"ckd":           r.CKD,
		"nafld":         r.NAFLD,
		"cvd_composite": r.CVDComposite,
		"ncd_composite": r.NCDComposite,
	}
}

// RiskLevel is a coarse display category for a probability
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
	RiskVeryHigh RiskLevel = "Very High"
)

// ClassifyRisk buckets a probability
func ClassifyRisk(p float64) RiskLevel {
	switch {
	case p < 0.10:
		return RiskLow
	case p < 0.20:
		return RiskModerate
	case p < 0.30:
		return RiskHigh
	}
	return RiskVeryHigh
}

// Color returns the display colour for the level
func (l RiskLevel) Color() string {
	switch l {
	case RiskLow:
		return "#22C55E"
	case RiskModerate:
		return "#EAB308"
	case RiskHigh:
		return "#F97316"
	}
	return "#EF4444"
}
