package valueobjects

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ConfidenceInterval bounds an edge weight
type ConfidenceInterval struct {
	Low  float64
	High float64
}

// Contains reports whether v lies inside the closed interval
func (ci ConfidenceInterval) Contains(v float64) bool {
	return ci.Low <= v && v <= ci.High
}

// MarshalJSON encodes the interval as a [low, high] pair
func (ci ConfidenceInterval) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("[%g,%g]", ci.Low, ci.High)), nil
}

// UnmarshalJSON decodes a [low, high] pair
func (ci *ConfidenceInterval) UnmarshalJSON(data []byte) error {
	var pair [2]float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("confidence interval must be a [low, high] pair: %w", err)
	}
	ci.Low, ci.High = pair[0], pair[1]
	return nil
}

// Range is a normal reference range for a biomarker
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// ReferenceStatistic holds the population mean and standard deviation used
// to standardize a node value
type ReferenceStatistic struct {
	Mean float64 `json:"mean" yaml:"mean"`
	Std  float64 `json:"std" yaml:"std"`
}

// Validate checks the statistic can be used as a divisor
func (s ReferenceStatistic) Validate() error {
	if s.Std <= 0 {
		return errors.New("standard deviation must be positive")
	}
	return nil
}

// ZScore standardizes a raw value
func (s ReferenceStatistic) ZScore(raw float64) float64 {
	return (raw - s.Mean) / s.Std
}
