// Package model provides robust loading of pre-trained LCA model bundles.
// The load chain tries an ordered list of on-disk artifacts and, when none
// is usable, synthesizes a demonstration model in-process so downstream
// consumers never receive a nil bundle.
package model

import (
	apperrors "lca-metals/pkg/errors"
)

// TargetNames is the fixed, order-significant list of prediction outputs.
var TargetNames = []string{
	"Energy_Use_MJ_per_kg",
	"Emission_kgCO2_per_kg",
	"Water_Use_l_per_kg",
	"Circularity_Index",
	"Recycled_Content_pct",
	"Reuse_Potential_score",
}

// FeatureCount is the trained feature-vector width.
const FeatureCount = 13

// DefaultBestCircularity is assumed when a dual-target artifact does not
// designate its best circularity estimator.
const DefaultBestCircularity = "RandomForest"

// Categorical feature names, matching the fitted encoder keys.
const (
	FieldMetal       = "Metal"
	FieldProcessType = "Process_Type"
	FieldEndOfLife   = "End_of_Life"
)

// Estimator is a fitted multi-output regressor.
type Estimator interface {
	// Predict returns one output row for a single feature row.
	Predict(features []float64) ([]float64, error)
	// NumOutputs reports the width of a prediction row.
	NumOutputs() int
}

// LabelEncoder holds the fitted class vocabulary of one categorical
// feature. Classes are sorted, matching the convention of the training
// pipeline, and transform to their index.
type LabelEncoder struct {
	Classes []string `json:"classes"`
}

// Transform returns the integer code for a label, or false when the label
// is not in the vocabulary.
func (e LabelEncoder) Transform(label string) (int, bool) {
	for i, c := range e.Classes {
		if c == label {
			return i, true
		}
	}
	return 0, false
}

// Contains reports whether label is in the fitted vocabulary.
func (e LabelEncoder) Contains(label string) bool {
	_, ok := e.Transform(label)
	return ok
}

// LabelTables translate UI-facing integer category codes into the string
// vocabulary a deployed model's encoders were trained on. The tables are
// hand-built per model version and are approximations where the UI offers
// categories the model never saw; every table is validated against the
// encoder vocabulary at bundle load time so a bad entry fails the load
// instead of silently predicting against a wrong code.
type LabelTables struct {
	Metal     map[int]string `yaml:"metal" json:"metal"`
	Process   map[int]string `yaml:"process" json:"process"`
	EndOfLife map[int]string `yaml:"end_of_life" json:"end_of_life"`
	Defaults  TableDefaults  `yaml:"defaults" json:"defaults"`
}

// TableDefaults name the label substituted for a code with no table entry.
type TableDefaults struct {
	Metal     string `yaml:"metal" json:"metal"`
	Process   string `yaml:"process" json:"process"`
	EndOfLife string `yaml:"end_of_life" json:"end_of_life"`
}

// DefaultLabelTables returns the translation tables for the currently
// deployed model vocabulary. Codes 6 and 7 map to Tin and Gold because the
// model was never trained on the UI's titanium/magnesium categories; codes
// 8-11 (critical minerals) have no entry at all and fall back to the
// default. These substitutions are known approximations, kept until the
// model is retrained on the full UI vocabulary.
func DefaultLabelTables() LabelTables {
	return LabelTables{
		Metal: map[int]string{
			0: "Aluminium", // UI spells it Aluminum
			1: "Steel",
			2: "Copper",
			3: "Zinc",
			4: "Lead",
			5: "Nickel",
			6: "Tin",
			7: "Gold",
		},
		Process: map[int]string{
			0: "Primary",
			1: "Recycled",
			2: "Hybrid",
			3: "Recycled", // advanced recycling shares the recycled vocabulary
		},
		EndOfLife: map[int]string{
			0: "Recycled",
			1: "Landfilled",
			2: "Landfilled", // incineration shares the landfill vocabulary
			3: "Reused",
		},
		Defaults: TableDefaults{
			Metal:     "Aluminium",
			Process:   "Primary",
			EndOfLife: "Recycled",
		},
	}
}

// Metadata describes a loaded bundle.
type Metadata struct {
	ModelVersion string   `json:"model_version"`
	FeatureCount int      `json:"features_count"`
	TargetNames  []string `json:"target_names"`
	FeatureNames []string `json:"feature_names,omitempty"`
}

// BundleKind distinguishes the two supported artifact shapes.
type BundleKind int

const (
	// KindDualTarget bundles carry a separate environmental estimator and a
	// set of named circularity estimators with a designated best one.
	KindDualTarget BundleKind = iota
	// KindGeneric bundles carry a single estimator producing all six
	// outputs positionally.
	KindGeneric
)

func (k BundleKind) String() string {
	if k == KindDualTarget {
		return "optimized_dual_target"
	}
	return "generic"
}

// ModelBundle is the in-memory model handed to the predictor. It is
// constructed once per process by the Loader and treated as read-only
// afterwards.
type ModelBundle struct {
	Kind BundleKind

	// Dual-target shape
	Environmental   Estimator
	Circularity     map[string]Estimator
	BestCircularity string

	// Generic shape
	Single Estimator

	Encoders map[string]LabelEncoder
	Tables   LabelTables
	Metadata Metadata

	// Fallback marks a synthesized demonstration bundle.
	Fallback   bool
	SourcePath string
}

// Validate checks internal consistency: the estimators required by the
// bundle kind are present, encoders exist for all three categorical
// fields, and every translation-table label is in the corresponding
// encoder vocabulary.
func (b *ModelBundle) Validate() error {
	switch b.Kind {
	case KindDualTarget:
		if b.Environmental == nil {
			return apperrors.NewDeserializationError(b.SourcePath, errMissing("environmental estimator"))
		}
		if len(b.Circularity) == 0 {
			return apperrors.NewDeserializationError(b.SourcePath, errMissing("circularity estimators"))
		}
	case KindGeneric:
		if b.Single == nil {
			return apperrors.NewDeserializationError(b.SourcePath, errMissing("estimator"))
		}
		// Generic bundles predict on raw feature codes; no encoders to check.
		return nil
	}

	for field, table := range map[string]map[int]string{
		FieldMetal:       b.Tables.Metal,
		FieldProcessType: b.Tables.Process,
		FieldEndOfLife:   b.Tables.EndOfLife,
	} {
		enc, ok := b.Encoders[field]
		if !ok {
			return apperrors.NewDeserializationError(b.SourcePath, errMissing("encoder for "+field))
		}
		for _, label := range table {
			if !enc.Contains(label) {
				return apperrors.NewVocabularyMissingError(field, label)
			}
		}
	}

	for field, label := range map[string]string{
		FieldMetal:       b.Tables.Defaults.Metal,
		FieldProcessType: b.Tables.Defaults.Process,
		FieldEndOfLife:   b.Tables.Defaults.EndOfLife,
	} {
		if !b.Encoders[field].Contains(label) {
			return apperrors.NewVocabularyMissingError(field, label)
		}
	}
	return nil
}

type errMissing string

func (e errMissing) Error() string { return "artifact missing " + string(e) }
