package config

import (
	"errors"
	"fmt"
)

// DeltaScaling selects the units of cascaded deltas
type DeltaScaling string

const (
	// DeltaScalingTargetStd multiplies each cascaded contribution by the
	// target's reference standard deviation, so a weight of -0.35 on a node
	// with std 35 moves it by about -12 raw units per unit parent change.
	DeltaScalingTargetStd DeltaScaling = "target_std"

	// DeltaScalingRaw applies weight x parent delta x attenuation directly,
	// with no std factor. Use it to reproduce the unscaled propagation
	// edge.weight * parentDelta * attenuation in raw units.
	DeltaScalingRaw DeltaScaling = "raw"
)

// EngineConfig holds the tunable constants of the risk engine
type EngineConfig struct {
	// Attenuation per hop applied to cascaded effects
	Gamma float64

	// Maximum hop count an intervention effect may travel
	MaxHops int

	// Tolerance below which a delta is treated as zero
	Epsilon float64

	// Baseline logit for diseases without a registered intercept
	DefaultIntercept float64

	DeltaScaling DeltaScaling
}

// DefaultEngineConfig returns the reference constants
func DefaultEngineConfig() *EngineConfig {
	return &EngineConfig{
		Gamma:            0.7,
		MaxHops:          3,
		Epsilon:          0.001,
		DefaultIntercept: -2.5,
		DeltaScaling:     DeltaScalingTargetStd,
	}
}

// Validate checks the configuration for consistency
func (c *EngineConfig) Validate() error {
	if c.Gamma <= 0 || c.Gamma > 1 {
		return fmt.Errorf("gamma must be in (0, 1], got %v", c.Gamma)
	}
	if c.MaxHops < 1 {
		return fmt.Errorf("max hops must be at least 1, got %d", c.MaxHops)
	}
	if c.Epsilon <= 0 {
		return errors.New("epsilon must be positive")
	}
	switch c.DeltaScaling {
	case DeltaScalingTargetStd, DeltaScalingRaw:
	default:
		return fmt.Errorf("unknown delta scaling %q", c.DeltaScaling)
	}
	return nil
}
