package services

import (
	"fmt"
	"math"
	"sort"
	"time"

	vo "github.com/Anirach/ncd-health-plus/domain/core/valueobjects"
	pkgerrors "github.com/Anirach/ncd-health-plus/pkg/errors"
)

// VisitDateLayout is the accepted visit date format
const VisitDateLayout = "2006-01-02"

// Milestone thresholds, in percent
const (
	NCDMilestonePercent  = 20.0
	CVDLowRangePercent   = 10.0
	NCDImprovementPoints = 2.0
)

// LabVisit is one dated set of measurements supplied by the caller
type LabVisit struct {
	Date    string            `json:"date" validate:"required"`
	Profile vo.PatientProfile `json:"profile"`
}

// TrendPoint summarizes one visit. Risks are percentages rounded to one decimal.
type TrendPoint struct {
	Date  string  `json:"date"`
	CVD   float64 `json:"cvd"`
	T2DM  float64 `json:"t2dm"`
	CKD   float64 `json:"ckd"`
	NCD   float64 `json:"ncd"`
	SBP   float64 `json:"sbp"`
	LDL   float64 `json:"ldl"`
	HbA1c float64 `json:"hba1c"`
	BMI   float64 `json:"bmi"`
}

// Improvement is the relative change from the first to the last visit, in percent.
// Positive values mean the risk went down.
type Improvement struct {
	CVD  float64 `json:"cvd"`
	T2DM float64 `json:"t2dm"`
	CKD  float64 `json:"ckd"`
	NCD  float64 `json:"ncd"`
}

// MilestoneKind classifies a milestone
type MilestoneKind string

const (
	MilestoneNCDBelow20  MilestoneKind = "ncd_below_20"
	MilestoneCVDLowRange MilestoneKind = "cvd_low_range"
	MilestoneNCDImproved MilestoneKind = "ncd_improved"
)

// Milestone marks a visit where risk crossed a notable threshold
type Milestone struct {
	Date string        `json:"date"`
	Kind MilestoneKind `json:"kind"`
	Text string        `json:"text"`
}

// ProgressReport is the trend analysis across visits
type ProgressReport struct {
	Trend       []TrendPoint `json:"trend"`
	Improvement *Improvement `json:"improvement,omitempty"`
	Milestones  []Milestone  `json:"milestones"`
}

// ProgressAnalyzer computes risk trends over a visit history
type ProgressAnalyzer struct {
	scorer *RiskScorer
}

// NewProgressAnalyzer creates an analyzer using the scorer
func NewProgressAnalyzer(scorer *RiskScorer) *ProgressAnalyzer {
	return &ProgressAnalyzer{scorer: scorer}
}

// Analyze sorts visits by date and reports per-visit risks, overall
// improvement and milestones. Visits are not modified.
func (a *ProgressAnalyzer) Analyze(visits []LabVisit) (ProgressReport, error) {
	type dated struct {
		at    time.Time
		visit LabVisit
	}
	sorted := make([]dated, 0, len(visits))
	for i, v := range visits {
		at, err := time.Parse(VisitDateLayout, v.Date)
		if err != nil {
			return ProgressReport{}, pkgerrors.NewValidationError(
				fmt.Sprintf("visit %d: date %q must use YYYY-MM-DD", i, v.Date))
		}
		sorted = append(sorted, dated{at: at, visit: v})
	}
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].at.Before(sorted[j].at) })

	report := ProgressReport{
		Trend:      make([]TrendPoint, 0, len(sorted)),
		Milestones: []Milestone{},
	}
	for _, d := range sorted {
		r := a.scorer.AllRisks(d.visit.Profile)
		p := d.visit.Profile
		report.Trend = append(report.Trend, TrendPoint{
			Date:  d.visit.Date,
			CVD:   percent(r.CVDComposite),
			T2DM:  percent(r.T2DM),
			CKD:   percent(r.CKD),
			NCD:   percent(r.NCDComposite),
			SBP:   p.Value(vo.SBP),
			LDL:   p.Value(vo.LDL),
			HbA1c: p.Value(vo.HbA1c),
			BMI:   p.Value(vo.BMI),
		})
	}

	if n := len(report.Trend); n >= 2 {
		first, last := report.Trend[0], report.Trend[n-1]
		report.Improvement = &Improvement{
			CVD:  relativeDrop(first.CVD, last.CVD),
			T2DM: relativeDrop(first.T2DM, last.T2DM),
			CKD:  relativeDrop(first.CKD, last.CKD),
			NCD:  relativeDrop(first.NCD, last.NCD),
		}
	}

	for i := 1; i < len(report.Trend); i++ {
		prev, curr := report.Trend[i-1], report.Trend[i]
		if prev.NCD >= NCDMilestonePercent && curr.NCD < NCDMilestonePercent {
			report.Milestones = append(report.Milestones, Milestone{
				Date: curr.Date, Kind: MilestoneNCDBelow20, Text: "NCD risk dropped below 20%",
			})
		}
		if prev.CVD >= CVDLowRangePercent && curr.CVD < CVDLowRangePercent {
			report.Milestones = append(report.Milestones, Milestone{
				Date: curr.Date, Kind: MilestoneCVDLowRange, Text: "CVD risk now in low range",
			})
		}
		if prev.NCD > curr.NCD+NCDImprovementPoints {
			report.Milestones = append(report.Milestones, Milestone{
				Date: curr.Date,
				Kind: MilestoneNCDImproved,
				Text: fmt.Sprintf("NCD risk improved by %.1f%%", prev.NCD-curr.NCD),
			})
		}
	}

	return report, nil
}

func percent(p float64) float64 {
	return math.Round(p*1000) / 10
}

func relativeDrop(first, last float64) float64 {
	if first == 0 {
		return 0
	}
	return (first - last) / first * 100
}
