package model

import (
	"math"
	"testing"
)

func TestSyntheticTrainingData(t *testing.T) {
	t.Run("fixed seed is fully deterministic", func(t *testing.T) {
		x1, y1 := syntheticTrainingData(fallbackSeed)
		x2, y2 := syntheticTrainingData(fallbackSeed)

		for i := 0; i < fallbackSamples; i++ {
			for j := 0; j < FeatureCount; j++ {
				if x1.At(i, j) != x2.At(i, j) {
					t.Fatalf("X differs at (%d,%d)", i, j)
				}
			}
			for k := 0; k < len(TargetNames); k++ {
				if y1.At(i, k) != y2.At(i, k) {
					t.Fatalf("Y differs at (%d,%d)", i, k)
				}
			}
		}
	})

	t.Run("clipped targets stay in the unit interval", func(t *testing.T) {
		_, y := syntheticTrainingData(fallbackSeed)
		for i := 0; i < fallbackSamples; i++ {
			for _, k := range []int{3, 5} {
				v := y.At(i, k)
				if v < 0 || v > 1 {
					t.Fatalf("target %d row %d = %f, want [0,1]", k, i, v)
				}
			}
		}
	})

	t.Run("recycled content spans the percentage range", func(t *testing.T) {
		_, y := syntheticTrainingData(fallbackSeed)
		min, max := math.Inf(1), math.Inf(-1)
		for i := 0; i < fallbackSamples; i++ {
			v := y.At(i, 4)
			min = math.Min(min, v)
			max = math.Max(max, v)
		}
		if min < 0 || max > 100 {
			t.Errorf("recycled content range [%f, %f] outside [0,100]", min, max)
		}
	})
}

func TestSynthesizeFallback(t *testing.T) {
	bundle := SynthesizeFallback()

	t.Run("bundle shape", func(t *testing.T) {
		if bundle.Kind != KindGeneric {
			t.Errorf("kind = %s, want generic", bundle.Kind)
		}
		if !bundle.Fallback {
			t.Error("fallback flag not set")
		}
		if bundle.Single == nil {
			t.Fatal("no estimator")
		}
		if got := bundle.Single.NumOutputs(); got != len(TargetNames) {
			t.Errorf("outputs = %d, want %d", got, len(TargetNames))
		}
		if len(bundle.Encoders) != 0 {
			t.Errorf("fallback bundle must carry no encoders, has %d", len(bundle.Encoders))
		}
		if err := bundle.Validate(); err != nil {
			t.Errorf("Validate: %v", err)
		}
	})

	t.Run("predictions are deterministic across synthesizations", func(t *testing.T) {
		other := SynthesizeFallback()
		vec := []float64{2, 1, 0, 500, 2.5, 10, 0.5, 0.002, 2.86, 0.5, 0.5, 2.86, 0.02}

		a, err := bundle.Single.Predict(vec)
		if err != nil {
			t.Fatalf("Predict: %v", err)
		}
		b, err := other.Single.Predict(vec)
		if err != nil {
			t.Fatalf("Predict: %v", err)
		}
		for k := range a {
			if a[k] != b[k] {
				t.Errorf("output %d differs: %f vs %f", k, a[k], b[k])
			}
		}
	})

	t.Run("outputs stay inside the training-target ranges", func(t *testing.T) {
		vectors := [][]float64{
			{0, 0, 0, 0, 0, 0, 0, 1, 10, 0.5, 0, 0, 0},
			{2, 1, 0, 500, 2.5, 10, 0.5, 0.002, 2.86, 0.5, 0.5, 2.86, 0.02},
			{11, 4, 3, 10000, 100, 50, 10, 0.0001, 0.1, 0.5, 10, 0.5, 0.005},
		}
		for _, vec := range vectors {
			out, err := bundle.Single.Predict(vec)
			if err != nil {
				t.Fatalf("Predict(%v): %v", vec, err)
			}
			checks := []struct {
				name     string
				value    float64
				min, max float64
			}{
				{"energy", out[0], -40, 140},
				{"emissions", out[1], -8, 28},
				{"water", out[2], -20, 70},
				{"circularity", out[3], 0, 1},
				{"recycled", out[4], 0, 100},
				{"reuse", out[5], 0, 1},
			}
			for _, c := range checks {
				if c.value < c.min || c.value > c.max {
					t.Errorf("%s = %f outside [%f, %f] for %v", c.name, c.value, c.min, c.max, vec)
				}
			}
		}
	})
}
