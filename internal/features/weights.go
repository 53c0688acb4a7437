package features

import "math"

const (
	// FullWeightYears: rows within this many years of the newest season
	// (inclusive) get full weight.
	FullWeightYears = 3
	// DecayRate is the geometric decay per year beyond the threshold.
	DecayRate = 0.8
	// WeightFloor: no row is weighted below this regardless of age.
	WeightFloor = 0.1
)

// RecencyWeight returns the training sample weight for a row from year
// relative to the maximum year present in the dataset.
func RecencyWeight(year, maxYear int) float64 {
	if year >= maxYear-FullWeightYears {
		return 1.0
	}
	decay := math.Pow(DecayRate, float64(maxYear-FullWeightYears-year))
	return math.Max(decay, WeightFloor)
}
