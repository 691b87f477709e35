package services

import (
	"math"

	"github.com/Anirach/ncd-health-plus/domain/config"
	"github.com/Anirach/ncd-health-plus/domain/core/aggregates"
	vo "github.com/Anirach/ncd-health-plus/domain/core/valueobjects"
)

// RiskScorer computes disease probabilities with a logistic link over the
// edges pointing into each disease. Weights are fixed; there is no fitting.
type RiskScorer struct {
	model        *aggregates.Model
	standardizer *Standardizer
	cfg          *config.EngineConfig
}

// NewRiskScorer creates a scorer for the model
func NewRiskScorer(model *aggregates.Model, cfg *config.EngineConfig) *RiskScorer {
	if cfg == nil {
		cfg = config.DefaultEngineConfig()
	}
	return &RiskScorer{
		model:        model,
		standardizer: NewStandardizer(model),
		cfg:          cfg,
	}
}

// DiseaseRisk returns sigmoid(intercept + sum of weight x z) for one disease.
// Unknown diseases use the default intercept.
func (s *RiskScorer) DiseaseRisk(p vo.PatientProfile, disease vo.NodeID) float64 {
	return s.pointRisk(DeriveConditions(p), disease)
}

// DiseaseRiskWithCI returns the point risk and a band obtained by swapping
// in the weight interval bounds. Negative z-scores swap the bounds so that
// low never exceeds high.
func (s *RiskScorer) DiseaseRiskWithCI(p vo.PatientProfile, disease vo.NodeID) vo.RiskWithCI {
	return s.bandedRisk(DeriveConditions(p), disease)
}

// AllRisks scores every endpoint and combines the composites
func (s *RiskScorer) AllRisks(p vo.PatientProfile) vo.RiskResult {
	d := DeriveConditions(p)
	r := vo.RiskResult{
		CAD:    s.pointRisk(d, vo.CAD),
		Stroke: s.pointRisk(d, vo.Stroke),
		HF:     s.pointRisk(d, vo.HF),
		PAD:    s.pointRisk(d, vo.PAD),
		T2DM:   s.pointRisk(d, vo.T2DM),
		CKD:    s.pointRisk(d, vo.CKD),
		NAFLD:  s.pointRisk(d, vo.NAFLD),
	}
	r.CVDComposite = CVDComposite(r.CAD, r.Stroke, r.HF, r.PAD)
	r.NCDComposite = NCDComposite(r.CVDComposite, r.T2DM, r.CKD)
	return r
}

// AllRisksWithCI scores every endpoint with bands and combines the composites
func (s *RiskScorer) AllRisksWithCI(p vo.PatientProfile) vo.FullRiskResult {
	d := DeriveConditions(p)
	r := vo.FullRiskResult{
		CAD:    s.bandedRisk(d, vo.CAD),
		Stroke: s.bandedRisk(d, vo.Stroke),
		HF:     s.bandedRisk(d, vo.HF),
		PAD:    s.bandedRisk(d, vo.PAD),
		T2DM:   s.bandedRisk(d, vo.T2DM),
		CKD:    s.bandedRisk(d, vo.CKD),
		NAFLD:  s.bandedRisk(d, vo.NAFLD),
	}
	r.CVDComposite, r.NCDComposite = CombineWithCI(r.CAD, r.Stroke, r.HF, r.PAD, r.T2DM, r.CKD)
	return r
}

func (s *RiskScorer) intercept(disease vo.NodeID) float64 {
	if b0, ok := s.model.Intercept(disease); ok {
		return b0
	}
	return s.cfg.DefaultIntercept
}

// pointRisk expects conditions to be derived already
func (s *RiskScorer) pointRisk(p vo.PatientProfile, disease vo.NodeID) float64 {
	logit := s.intercept(disease)
	for _, e := range s.model.Graph().EdgesInto(disease) {
		z := s.standardizer.Standardize(e.Source(), p.Value(e.Source()))
		logit += e.Weight() * z
	}
	return Sigmoid(logit)
}

func (s *RiskScorer) bandedRisk(p vo.PatientProfile, disease vo.NodeID) vo.RiskWithCI {
	b0 := s.intercept(disease)
	logit, low, high := b0, b0, b0
	for _, e := range s.model.Graph().EdgesInto(disease) {
		z := s.standardizer.Standardize(e.Source(), p.Value(e.Source()))
		ci := e.CI()
		logit += e.Weight() * z
		if z >= 0 {
			low += ci.Low * z
			high += ci.High * z
		} else {
			low += ci.High * z
			high += ci.Low * z
		}
	}
	return vo.RiskWithCI{
		Value:  Sigmoid(logit),
		CILow:  Sigmoid(low),
		CIHigh: Sigmoid(high),
	}
}

// Sigmoid is the logistic function
func Sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
