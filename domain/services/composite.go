package services

import (
	"math"

	"gonum.org/v1/gonum/floats"

	vo "github.com/Anirach/ncd-health-plus/domain/core/valueobjects"
)

// Union returns 1 - prod(1 - p), the probability that at least one of
// several independent events occurs
func Union(ps ...float64) float64 {
	if len(ps) == 0 {
		return 0
	}
	complements := make([]float64, len(ps))
	for i, p := range ps {
		complements[i] = 1 - p
	}
	u := 1 - floats.Prod(complements)
	// rounding can leave the union a few ulps below its largest term
	u = math.Max(u, floats.Max(ps))
	return math.Min(math.Max(u, 0), 1)
}

// CVDComposite combines the four cardiovascular endpoints
func CVDComposite(cad, stroke, hf, pad float64) float64 {
	return Union(cad, stroke, hf, pad)
}

// NCDComposite combines the cardiovascular composite with diabetes and kidney disease
func NCDComposite(cvd, t2dm, ckd float64) float64 {
	return Union(cvd, t2dm, ckd)
}

// CombineWithCI applies the composite formulas to point values and to each
// bound separately, returning the CVD and NCD bands
func CombineWithCI(cad, stroke, hf, pad, t2dm, ckd vo.RiskWithCI) (cvd, ncd vo.RiskWithCI) {
	cvd = vo.RiskWithCI{
		Value:  CVDComposite(cad.Value, stroke.Value, hf.Value, pad.Value),
		CILow:  CVDComposite(cad.CILow, stroke.CILow, hf.CILow, pad.CILow),
		CIHigh: CVDComposite(cad.CIHigh, stroke.CIHigh, hf.CIHigh, pad.CIHigh),
	}
	ncd = vo.RiskWithCI{
		Value:  NCDComposite(cvd.Value, t2dm.Value, ckd.Value),
		CILow:  NCDComposite(cvd.CILow, t2dm.CILow, ckd.CILow),
		CIHigh: NCDComposite(cvd.CIHigh, t2dm.CIHigh, ckd.CIHigh),
	}
	return cvd, ncd
}
