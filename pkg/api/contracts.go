// Package api defines the wire contracts shared by the HTTP server, the
// CLI, and the report generator.
package api

// PredictRequest carries the UI-facing production parameters.
// Category fields are integer codes; see the /api/v1/catalog endpoint for
// the code vocabularies.
type PredictRequest struct {
	Metal       int `json:"metal" validate:"min=0,max=11"`
	ProcessType int `json:"process_type" validate:"min=0,max=4"`
	EndOfLife   int `json:"end_of_life" validate:"min=0,max=3"`

	TransportKm      float64 `json:"transport_km" validate:"min=0,max=10000"`
	CostPerKg        float64 `json:"cost_per_kg" validate:"min=0,max=100"`
	ProductLifeYears float64 `json:"product_life_years" validate:"min=0,max=50"`
	WasteRatio       float64 `json:"waste_ratio" validate:"min=0,max=10"`

	// Optional report context, not fed to the model.
	Sector string `json:"sector,omitempty"`
	Route  string `json:"route,omitempty"`
}

// PredictionResult holds the six named output scalars. All six fields are
// always present; unavailable sub-model outputs default to 0.
type PredictionResult struct {
	EnergyUseMJPerKg    float64 `json:"energy_use_mj_per_kg"`
	EmissionKgCO2PerKg  float64 `json:"emission_kgco2_per_kg"`
	WaterUseLPerKg      float64 `json:"water_use_l_per_kg"`
	CircularityIndex    float64 `json:"circularity_index"`
	RecycledContentPct  float64 `json:"recycled_content_pct"`
	ReusePotentialScore float64 `json:"reuse_potential_score"`
}

// PredictResponse is the full prediction payload.
type PredictResponse struct {
	Predictions PredictionResult `json:"predictions"`

	// Quality
	Confidence     float64  `json:"confidence"`
	Approximations []string `json:"approximations,omitempty"`

	// Model provenance
	ModelVersion  string `json:"model_version"`
	FallbackModel bool   `json:"fallback_model"`

	// Context
	CriticalMineral bool `json:"critical_mineral"`

	EnvironmentalRecommendations []string `json:"environmental_recommendations,omitempty"`
	CircularityRecommendations   []string `json:"circularity_recommendations,omitempty"`
}

// PathwayRow is one production pathway in a comparison table.
type PathwayRow struct {
	Pathway     string           `json:"pathway"`
	Predictions PredictionResult `json:"predictions"`
	Confidence  float64          `json:"confidence"`
}

// PathwaysResponse is the pathway comparison payload. Overall is the
// aggregate confidence across the compared pathways.
type PathwaysResponse struct {
	Metal    string       `json:"metal"`
	Pathways []PathwayRow `json:"pathways"`
	Overall  float64      `json:"overall_confidence"`
}
