// Package features translates UI-facing production parameters into the
// fixed-order numeric feature vector the loaded model was trained on.
package features

import (
	"fmt"

	"lca-metals/internal/model"
	"lca-metals/pkg/api"
	apperrors "lca-metals/pkg/errors"
)

// VectorLen is the trained feature-vector width.
const VectorLen = model.FeatureCount

// emissionPerEnergy is a constant placeholder feature carried over from
// the training pipeline, which had no per-sample emission/energy ratio.
const emissionPerEnergy = 0.5

// Encode assembles the 13-element feature vector for a bundle, in the
// exact order used at training time:
//
//	[metal, process, end_of_life, transport_km, cost_per_kg, life_years,
//	 waste_kg_per_kg, energy_per_km, energy_per_cost, emission_per_energy,
//	 waste_ratio, cost_efficiency, transport_efficiency]
//
// Categorical codes are translated to the bundle's trained label
// vocabulary and then encoded; a code with no table entry is substituted
// with the field's documented default label rather than aborting, and the
// substitution is reported in the returned approximations list. Generic
// bundles carry no encoders and receive the raw codes unchanged.
func Encode(b *model.ModelBundle, req api.PredictRequest) ([]float64, []string, error) {
	var approximations []string

	metal, approx, err := encodeCategory(b, model.FieldMetal, req.Metal, b.Tables.Metal, b.Tables.Defaults.Metal)
	if err != nil {
		return nil, nil, err
	}
	approximations = append(approximations, approx...)

	process, approx, err := encodeCategory(b, model.FieldProcessType, req.ProcessType, b.Tables.Process, b.Tables.Defaults.Process)
	if err != nil {
		return nil, nil, err
	}
	approximations = append(approximations, approx...)

	eol, approx, err := encodeCategory(b, model.FieldEndOfLife, req.EndOfLife, b.Tables.EndOfLife, b.Tables.Defaults.EndOfLife)
	if err != nil {
		return nil, nil, err
	}
	approximations = append(approximations, approx...)

	transportKm := req.TransportKm
	costPerKg := req.CostPerKg
	lifeYears := req.ProductLifeYears
	wastePerKg := req.WasteRatio

	energyPerKm := 1.0 / (transportKm + 1)
	energyPerCost := 10.0 / (costPerKg + 1)
	costEfficiency := lifeYears / (costPerKg + 1)
	transportEfficiency := lifeYears / (transportKm + 1)

	vec := []float64{
		metal, process, eol,
		transportKm, costPerKg, lifeYears, wastePerKg,
		energyPerKm, energyPerCost, emissionPerEnergy,
		wastePerKg, costEfficiency, transportEfficiency,
	}
	return vec, approximations, nil
}

// encodeCategory resolves one categorical code to its trained integer
// encoding. Bundles without a fitted encoder for the field (the generic
// shape) use the raw code directly.
func encodeCategory(b *model.ModelBundle, field string, code int, table map[int]string, defaultLabel string) (float64, []string, error) {
	enc, hasEncoder := b.Encoders[field]
	if !hasEncoder {
		return float64(code), nil, nil
	}

	var approximations []string
	label, ok := table[code]
	if !ok {
		// Availability over correctness: substitute the documented default
		// and surface the substitution to the caller.
		label = defaultLabel
		approximations = append(approximations, fmt.Sprintf("%s-code-%d-defaulted-to-%s", field, code, defaultLabel))
	}

	encoded, ok := enc.Transform(label)
	if !ok {
		// Load-time validation makes this unreachable for table labels; it
		// guards bundles whose tables were swapped after validation.
		return 0, nil, apperrors.NewUnknownCategoryError(field, code)
	}
	return float64(encoded), approximations, nil
}
