package predict

import (
	"errors"
	"math"
	"testing"

	"lca-metals/internal/model"
	"lca-metals/pkg/confidence"
	apperrors "lca-metals/pkg/errors"
)

// stubEstimator returns fixed outputs, or a fixed error.
type stubEstimator struct {
	out []float64
	err error
}

func (s *stubEstimator) Predict(features []float64) ([]float64, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.out, nil
}

func (s *stubEstimator) NumOutputs() int { return len(s.out) }

func TestPredictDualTarget(t *testing.T) {
	vec := make([]float64, model.FeatureCount)

	t.Run("maps environmental and circularity outputs to the six fields", func(t *testing.T) {
		bundle := &model.ModelBundle{
			Kind:          model.KindDualTarget,
			Environmental: &stubEstimator{out: []float64{120, 12, 60}},
			Circularity: map[string]model.Estimator{
				"RandomForest": &stubEstimator{out: []float64{0.5, 40, 0.7}},
			},
			BestCircularity: "RandomForest",
		}

		result, err := NewPredictor(bundle).Predict(vec)
		if err != nil {
			t.Fatalf("Predict: %v", err)
		}
		if result.EnergyUseMJPerKg != 120 || result.EmissionKgCO2PerKg != 12 || result.WaterUseLPerKg != 60 {
			t.Errorf("environmental outputs wrong: %+v", result)
		}
		if result.CircularityIndex != 0.5 || result.RecycledContentPct != 40 || result.ReusePotentialScore != 0.7 {
			t.Errorf("circularity outputs wrong: %+v", result)
		}
	})

	t.Run("missing best circularity estimator leaves circularity fields zero", func(t *testing.T) {
		bundle := &model.ModelBundle{
			Kind:            model.KindDualTarget,
			Environmental:   &stubEstimator{out: []float64{120, 12, 60}},
			Circularity:     map[string]model.Estimator{"GradientBoosting": &stubEstimator{out: []float64{1, 1, 1}}},
			BestCircularity: "RandomForest",
		}

		result, err := NewPredictor(bundle).Predict(vec)
		if err != nil {
			t.Fatalf("Predict: %v", err)
		}
		if result.CircularityIndex != 0 || result.RecycledContentPct != 0 || result.ReusePotentialScore != 0 {
			t.Errorf("expected zero circularity outputs, got %+v", result)
		}
		if result.EnergyUseMJPerKg != 120 {
			t.Errorf("environmental output lost: %+v", result)
		}
	})

	t.Run("estimator failure surfaces as a prediction error", func(t *testing.T) {
		bundle := &model.ModelBundle{
			Kind:            model.KindDualTarget,
			Environmental:   &stubEstimator{err: errors.New("boom")},
			Circularity:     map[string]model.Estimator{},
			BestCircularity: "RandomForest",
		}

		_, err := NewPredictor(bundle).Predict(vec)
		var lcaErr *apperrors.LCAError
		if !errors.As(err, &lcaErr) || lcaErr.Code != apperrors.ErrCodePredictionFailed {
			t.Fatalf("expected prediction error, got %v", err)
		}
	})
}

func TestPredictGeneric(t *testing.T) {
	vec := make([]float64, model.FeatureCount)

	t.Run("slices all six outputs positionally", func(t *testing.T) {
		bundle := &model.ModelBundle{
			Kind:   model.KindGeneric,
			Single: &stubEstimator{out: []float64{100, 10, 50, 0.5, 40, 0.7}},
		}

		result, err := NewPredictor(bundle).Predict(vec)
		if err != nil {
			t.Fatalf("Predict: %v", err)
		}
		if result.EnergyUseMJPerKg != 100 || result.ReusePotentialScore != 0.7 {
			t.Errorf("positional mapping wrong: %+v", result)
		}
	})

	t.Run("short output rows default trailing fields to zero", func(t *testing.T) {
		bundle := &model.ModelBundle{
			Kind:   model.KindGeneric,
			Single: &stubEstimator{out: []float64{100, 10}},
		}

		result, err := NewPredictor(bundle).Predict(vec)
		if err != nil {
			t.Fatalf("Predict: %v", err)
		}
		if result.WaterUseLPerKg != 0 || result.CircularityIndex != 0 || result.ReusePotentialScore != 0 {
			t.Errorf("expected zero defaults, got %+v", result)
		}
	})
}

func TestConfidence(t *testing.T) {
	tests := []struct {
		name           string
		fallback       bool
		approximations []string
		want           float64
	}{
		{"real artifact, no approximations", false, nil, confidence.HighConfidence},
		{"fallback, no approximations", true, nil, confidence.LowConfidence},
		{"real artifact, one approximation", false, []string{"a"}, confidence.HighConfidence * 0.9},
		{"fallback, two approximations", true, []string{"a", "b"}, confidence.LowConfidence * 0.9 * 0.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &model.ModelBundle{Fallback: tt.fallback}
			got := Confidence(b, tt.approximations)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Confidence = %f, want %f", got, tt.want)
			}
		})
	}
}
