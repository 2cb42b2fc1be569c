package features

import (
	"errors"
	"math"
	"strings"
	"testing"

	"lca-metals/internal/model"
	"lca-metals/pkg/api"
	apperrors "lca-metals/pkg/errors"
)

func encodedBundle() *model.ModelBundle {
	return &model.ModelBundle{
		Kind: model.KindDualTarget,
		Encoders: map[string]model.LabelEncoder{
			model.FieldMetal:       {Classes: []string{"Aluminium", "Copper", "Gold", "Lead", "Nickel", "Steel", "Tin", "Zinc"}},
			model.FieldProcessType: {Classes: []string{"Hybrid", "Primary", "Recycled"}},
			model.FieldEndOfLife:   {Classes: []string{"Landfilled", "Recycled", "Reused"}},
		},
		Tables: model.DefaultLabelTables(),
	}
}

func genericBundle() *model.ModelBundle {
	return &model.ModelBundle{
		Kind:   model.KindGeneric,
		Tables: model.DefaultLabelTables(),
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEncode(t *testing.T) {
	req := api.PredictRequest{
		Metal:            2, // Copper
		ProcessType:      1, // Recycled
		EndOfLife:        0, // Recycling
		TransportKm:      500,
		CostPerKg:        2.5,
		ProductLifeYears: 10,
		WasteRatio:       0.5,
	}

	t.Run("vector has the trained width and order", func(t *testing.T) {
		vec, approximations, err := Encode(genericBundle(), req)
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}
		if len(vec) != VectorLen {
			t.Fatalf("vector length = %d, want %d", len(vec), VectorLen)
		}
		if len(approximations) != 0 {
			t.Errorf("unexpected approximations %v", approximations)
		}

		want := []float64{
			2, 1, 0,
			500, 2.5, 10, 0.5,
			1.0 / 501, 10.0 / 3.5, 0.5,
			0.5, 10.0 / 3.5, 10.0 / 501,
		}
		for i := range want {
			if !almostEqual(vec[i], want[i]) {
				t.Errorf("vec[%d] = %v, want %v", i, vec[i], want[i])
			}
		}
	})

	t.Run("encoded bundles translate codes through the label tables", func(t *testing.T) {
		vec, approximations, err := Encode(encodedBundle(), req)
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}
		if len(approximations) != 0 {
			t.Errorf("unexpected approximations %v", approximations)
		}
		// Copper is class 1, Recycled process is class 2, Recycled EOL is
		// class 1 in the sorted vocabularies.
		if vec[0] != 1 || vec[1] != 2 || vec[2] != 1 {
			t.Errorf("categorical prefix = %v, want [1 2 1]", vec[:3])
		}
	})

	t.Run("unmapped code substitutes the default label and reports it", func(t *testing.T) {
		critical := req
		critical.Metal = 9 // Platinum, outside the trained vocabulary
		vec, approximations, err := Encode(encodedBundle(), critical)
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}
		if vec[0] != 0 { // Aluminium, the default metal
			t.Errorf("vec[0] = %v, want Aluminium index 0", vec[0])
		}
		if len(approximations) != 1 {
			t.Fatalf("expected one approximation, got %v", approximations)
		}
		if !strings.Contains(approximations[0], "Metal-code-9") {
			t.Errorf("approximation %q does not name the substituted code", approximations[0])
		}
	})

	t.Run("table label outside the vocabulary is an error", func(t *testing.T) {
		b := encodedBundle()
		b.Tables.Metal[2] = "Unobtainium"
		_, _, err := Encode(b, req)
		var lcaErr *apperrors.LCAError
		if !errors.As(err, &lcaErr) || lcaErr.Code != apperrors.ErrCodeUnknownCategory {
			t.Fatalf("expected unknown-category error, got %v", err)
		}
	})

	t.Run("zero-valued numeric inputs keep the derived features finite", func(t *testing.T) {
		zero := api.PredictRequest{}
		vec, _, err := Encode(genericBundle(), zero)
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}
		for i, v := range vec {
			if math.IsInf(v, 0) || math.IsNaN(v) {
				t.Errorf("vec[%d] = %v", i, v)
			}
		}
	})
}
