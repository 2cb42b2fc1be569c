// Package report renders the executive-summary text report and the JSON
// data export. Pure serialization of inputs plus predictions; no model
// calls.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"lca-metals/internal/catalog"
	"lca-metals/internal/recommend"
	"lca-metals/pkg/api"
	"lca-metals/pkg/units"
)

const toolName = "AI-Driven LCA Tool for Metallurgy and Mining"

// Export is the JSON document summarizing one analysis.
type Export struct {
	Metadata      ExportMetadata      `json:"metadata"`
	Inputs        ExportInputs        `json:"input_parameters"`
	Environmental ExportEnvironmental `json:"environmental_results"`
	Circularity   ExportCircularity   `json:"circularity_results"`
}

type ExportMetadata struct {
	ReportID            string  `json:"report_id"`
	AnalysisDate        string  `json:"analysis_date"`
	ToolName            string  `json:"tool_name"`
	IndustrySector      string  `json:"industry_sector,omitempty"`
	MetalType           string  `json:"metal_type"`
	ProcessType         string  `json:"process_type"`
	EndOfLife           string  `json:"end_of_life"`
	CircularRoute       string  `json:"circular_route,omitempty"`
	RouteCircularity    float64 `json:"route_circularity,omitempty"`
	RouteSustainability string  `json:"route_sustainability,omitempty"`
	ModelVersion        string  `json:"model_version"`
	FallbackModel       bool    `json:"fallback_model"`
	Confidence          float64 `json:"confidence"`
}

type ExportInputs struct {
	TransportDistanceKm float64 `json:"transport_distance_km"`
	CostPerKg           float64 `json:"cost_per_kg"`
	ProductLifeYears    float64 `json:"product_life_years"`
	WasteKgPerKgMetal   float64 `json:"waste_kg_per_kg_metal"`
}

type ExportEnvironmental struct {
	EnergyUseMJPerKg   float64 `json:"energy_use_mj_per_kg"`
	EmissionKgCO2PerKg float64 `json:"co2_emission_kg_per_kg"`
	WaterUseLPerKg     float64 `json:"water_use_l_per_kg"`
}

type ExportCircularity struct {
	CircularityIndex    float64 `json:"circularity_index"`
	RecycledContentPct  float64 `json:"recycled_content_pct"`
	ReusePotentialScore float64 `json:"reuse_potential_score"`
}

// Builder assembles reports. The clock and id source are injectable for
// tests.
type Builder struct {
	now   func() time.Time
	newID func() uuid.UUID
}

func NewBuilder() *Builder {
	return &Builder{now: time.Now, newID: uuid.New}
}

// BuildExport assembles the JSON export document.
func (b *Builder) BuildExport(req api.PredictRequest, resp api.PredictResponse) *Export {
	e := &Export{
		Metadata: ExportMetadata{
			ReportID:       b.newID().String(),
			AnalysisDate:   b.now().Format("2006-01-02 15:04:05"),
			ToolName:       toolName,
			IndustrySector: req.Sector,
			MetalType:      catalog.MetalName(req.Metal),
			ProcessType:    catalog.ProcessName(req.ProcessType),
			EndOfLife:      catalog.EndOfLifeName(req.EndOfLife),
			CircularRoute:  req.Route,
			ModelVersion:   resp.ModelVersion,
			FallbackModel:  resp.FallbackModel,
			Confidence:     resp.Confidence,
		},
		Inputs: ExportInputs{
			TransportDistanceKm: req.TransportKm,
			CostPerKg:           req.CostPerKg,
			ProductLifeYears:    req.ProductLifeYears,
			WasteKgPerKgMetal:   req.WasteRatio,
		},
		Environmental: ExportEnvironmental{
			EnergyUseMJPerKg:   resp.Predictions.EnergyUseMJPerKg,
			EmissionKgCO2PerKg: resp.Predictions.EmissionKgCO2PerKg,
			WaterUseLPerKg:     resp.Predictions.WaterUseLPerKg,
		},
		Circularity: ExportCircularity{
			CircularityIndex:    resp.Predictions.CircularityIndex,
			RecycledContentPct:  resp.Predictions.RecycledContentPct,
			ReusePotentialScore: resp.Predictions.ReusePotentialScore,
		},
	}
	if route, ok := catalog.RouteByName(req.Route); ok {
		e.Metadata.RouteCircularity = route.Circularity
		e.Metadata.RouteSustainability = route.Sustainability
	}
	return e
}

// BuildText renders the plain-text executive summary.
func (b *Builder) BuildText(req api.PredictRequest, resp api.PredictResponse) string {
	p := resp.Predictions
	var sb strings.Builder

	sb.WriteString("# AI-Driven LCA Analysis Report\n")
	sb.WriteString("## Comprehensive Sustainability Assessment\n\n")
	fmt.Fprintf(&sb, "Report ID: %s\n", b.newID().String())
	fmt.Fprintf(&sb, "Analysis Date: %s\n", b.now().Format("2006-01-02 15:04:05"))
	if req.Sector != "" {
		fmt.Fprintf(&sb, "Industry Sector: %s\n", req.Sector)
	}
	fmt.Fprintf(&sb, "Metal/Critical Mineral: %s\n", catalog.MetalName(req.Metal))
	fmt.Fprintf(&sb, "Process Type: %s\n", catalog.ProcessName(req.ProcessType))
	if req.Route != "" {
		fmt.Fprintf(&sb, "Circular Economy Route: %s\n", req.Route)
	}
	fmt.Fprintf(&sb, "Production Cost: $%s per kg\n", decimal.NewFromFloat(req.CostPerKg).StringFixed(2))

	sb.WriteString("\n### Environmental Impact Assessment\n")
	fmt.Fprintf(&sb, "- Energy Use: %.2f %s\n", p.EnergyUseMJPerKg, units.UnitMJPerKg)
	fmt.Fprintf(&sb, "- CO2 Emissions: %.2f %s\n", p.EmissionKgCO2PerKg, units.UnitKgCO2PerKg)
	fmt.Fprintf(&sb, "- Water Use: %.2f %s\n", p.WaterUseLPerKg, units.UnitLPerKg)

	sb.WriteString("\n### Circularity & Sustainability Metrics\n")
	fmt.Fprintf(&sb, "- Circularity Index: %.3f\n", p.CircularityIndex)
	fmt.Fprintf(&sb, "- Recycled Content: %.1f%%\n", p.RecycledContentPct)
	fmt.Fprintf(&sb, "- Reuse Potential: %.2f\n", p.ReusePotentialScore)

	sb.WriteString("\n### Recommendations\n")
	if route, ok := catalog.RouteByName(req.Route); ok {
		if route.Circularity > 0.6 {
			sb.WriteString("- Route Optimization: Optimized\n")
		} else {
			sb.WriteString("- Route Optimization: Consider higher circularity routes\n")
		}
		fmt.Fprintf(&sb, "- Sustainability Rating: %s\n", route.Sustainability)
	}
	if catalog.IsCriticalMineral(req.Metal) {
		sb.WriteString("- Critical Mineral Status: Enhanced circularity focus needed\n")
	} else {
		sb.WriteString("- Critical Mineral Status: Standard approach\n")
	}
	fmt.Fprintf(&sb, "- Prediction Confidence: %.2f\n", resp.Confidence)

	if recs := recommend.ProcessSpecific(catalog.MetalName(req.Metal), catalog.ProcessName(req.ProcessType)); len(recs) > 0 {
		sb.WriteString("\n### Process-Specific Guidance\n")
		for _, rec := range recs {
			fmt.Fprintf(&sb, "- %s\n", rec)
		}
	}

	sb.WriteString("\n### Cost Optimization\n")
	for _, rec := range recommend.CostOptimization(req.CostPerKg, p) {
		fmt.Fprintf(&sb, "- %s\n", rec)
	}

	fmt.Fprintf(&sb, "\nModel: %s\n", resp.ModelVersion)
	if resp.FallbackModel {
		sb.WriteString("Note: results produced by a demonstration model; ensure proper model files are available for production use.\n")
	}
	fmt.Fprintf(&sb, "\n---\nGenerated by %s\n", toolName)
	return sb.String()
}

// Filename builds the conventional download filename for a report.
func (b *Builder) Filename(prefix string, metalCode int, ext string) string {
	metal := strings.ReplaceAll(catalog.MetalName(metalCode), " ", "_")
	return fmt.Sprintf("%s_%s_%s.%s", prefix, metal, b.now().Format("20060102_150405"), ext)
}
