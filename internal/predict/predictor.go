// Package predict invokes a loaded model bundle on an encoded feature
// vector and packages the six named output scalars.
package predict

import (
	"fmt"

	"lca-metals/internal/model"
	"lca-metals/pkg/api"
	"lca-metals/pkg/confidence"
	apperrors "lca-metals/pkg/errors"
)

// Predictor runs predictions against one loaded bundle. It holds the
// bundle by reference for the lifetime of the session and never mutates it.
type Predictor struct {
	bundle *model.ModelBundle
}

func NewPredictor(b *model.ModelBundle) *Predictor {
	return &Predictor{bundle: b}
}

// Predict is a pure function of (bundle, vector). All six result fields
// are always populated; outputs an estimator does not produce default to
// zero. Estimator failures surface as PredictionError, the only error
// class a single request is allowed to show.
func (p *Predictor) Predict(vec []float64) (api.PredictionResult, error) {
	switch p.bundle.Kind {
	case model.KindDualTarget:
		return p.predictDualTarget(vec)
	default:
		return p.predictGeneric(vec)
	}
}

func (p *Predictor) predictDualTarget(vec []float64) (api.PredictionResult, error) {
	var result api.PredictionResult

	envOut, err := p.bundle.Environmental.Predict(vec)
	if err != nil {
		return result, apperrors.NewPredictionError(fmt.Errorf("environmental model: %w", err))
	}
	result.EnergyUseMJPerKg = at(envOut, 0)
	result.EmissionKgCO2PerKg = at(envOut, 1)
	result.WaterUseLPerKg = at(envOut, 2)

	// The best circularity estimator is designated at training time; a
	// bundle without it leaves the circularity outputs at zero.
	best, ok := p.bundle.Circularity[p.bundle.BestCircularity]
	if !ok {
		return result, nil
	}
	circOut, err := best.Predict(vec)
	if err != nil {
		return result, apperrors.NewPredictionError(fmt.Errorf("circularity model %s: %w", p.bundle.BestCircularity, err))
	}
	result.CircularityIndex = at(circOut, 0)
	result.RecycledContentPct = at(circOut, 1)
	result.ReusePotentialScore = at(circOut, 2)
	return result, nil
}

func (p *Predictor) predictGeneric(vec []float64) (api.PredictionResult, error) {
	var result api.PredictionResult

	out, err := p.bundle.Single.Predict(vec)
	if err != nil {
		return result, apperrors.NewPredictionError(err)
	}

	// Positional slicing against the fixed target order; positions beyond
	// the returned width stay zero.
	result.EnergyUseMJPerKg = at(out, 0)
	result.EmissionKgCO2PerKg = at(out, 1)
	result.WaterUseLPerKg = at(out, 2)
	result.CircularityIndex = at(out, 3)
	result.RecycledContentPct = at(out, 4)
	result.ReusePotentialScore = at(out, 5)
	return result, nil
}

func at(values []float64, i int) float64 {
	if i < len(values) {
		return values[i]
	}
	return 0.0
}

// Confidence scores a prediction: real artifacts start high, the
// synthesized demonstration bundle starts low, and every approximated
// category (defaulted label) decays the score further.
func Confidence(b *model.ModelBundle, approximations []string) float64 {
	base := confidence.HighConfidence
	if b.Fallback {
		base = confidence.LowConfidence
	}
	return confidence.Clamp(confidence.Decay(base, len(approximations)))
}
