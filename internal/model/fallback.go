package model

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

const (
	fallbackSeed    = 42
	fallbackSamples = 1000
)

// FeatureNames is the canonical order of the 13-element feature vector.
var FeatureNames = []string{
	"Metal", "Process_Type", "End_of_Life",
	"Transport_km", "Cost_per_kg", "Product_Life_Extension_years", "Waste_kg_per_kg_metal",
	"Energy_per_km", "Energy_per_cost", "Emission_per_energy",
	"Waste_ratio", "Cost_efficiency", "Transport_efficiency",
}

// syntheticTrainingData generates the fixed-seed demonstration dataset:
// fallbackSamples rows of uniform features and six derived target columns.
func syntheticTrainingData(seed int64) (*mat.Dense, *mat.Dense) {
	rng := rand.New(rand.NewSource(seed))

	X := mat.NewDense(fallbackSamples, FeatureCount, nil)
	for i := 0; i < fallbackSamples; i++ {
		for j := 0; j < FeatureCount; j++ {
			X.Set(i, j, rng.Float64())
		}
	}

	Y := mat.NewDense(fallbackSamples, len(TargetNames), nil)
	for i := 0; i < fallbackSamples; i++ {
		Y.Set(i, 0, X.At(i, 0)*100+rng.NormFloat64()*10) // energy
		Y.Set(i, 1, X.At(i, 1)*20+rng.NormFloat64()*2)   // emissions
		Y.Set(i, 2, X.At(i, 2)*50+rng.NormFloat64()*5)   // water
		Y.Set(i, 3, clip01(X.At(i, 3)))                  // circularity index
		Y.Set(i, 4, X.At(i, 4)*100)                      // recycled content
		Y.Set(i, 5, clip01(X.At(i, 5)))                  // reuse potential
	}
	return X, Y
}

func clip01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// SynthesizeFallback fabricates a minimal working bundle for demonstration
// when no artifact on disk is usable. It has no external dependency and is
// the terminal step of the load chain: it never fails.
func SynthesizeFallback() *ModelBundle {
	X, Y := syntheticTrainingData(fallbackSeed)

	rng := rand.New(rand.NewSource(fallbackSeed))
	est, err := FitForest(X, Y, DefaultForestConfig(), rng)
	if err != nil {
		// Dimensions are fixed constants; a fit error is a programming bug.
		panic(err)
	}

	return &ModelBundle{
		Kind:   KindGeneric,
		Single: est,
		Tables: DefaultLabelTables(),
		Metadata: Metadata{
			ModelVersion: "1.0.0-fallback",
			FeatureCount: FeatureCount,
			TargetNames:  TargetNames,
			FeatureNames: FeatureNames,
		},
		Fallback: true,
	}
}
