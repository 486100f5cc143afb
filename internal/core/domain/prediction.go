package domain

import "math"

// RangeScaleKm is the driving range shown as a full progress bar.
const RangeScaleKm = 600.0

type Prediction struct {
	ID              string
	RangeKm         float64
	ProgressPercent int
	ModelName       string
	ModelVersion    string
}

// ProgressPercent maps a predicted range onto the 0-100 progress scale.
func ProgressPercent(rangeKm float64) int {
	pct := math.Round(rangeKm / RangeScaleKm * 100)
	if math.IsNaN(pct) || pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return int(pct)
}

// ModelInfo describes the loaded regressor.
type ModelInfo struct {
	Name         string
	Version      string
	Kind         string
	Path         string
	FeatureCount int
}
