// Package units provides canonical unit labels for LCA indicators.
package units

// Unit represents a measurable quantity.
type Unit string

const (
	// Environmental indicator units
	UnitMJPerKg    Unit = "MJ/kg"
	UnitKgCO2PerKg Unit = "kgCO2/kg"
	UnitLPerKg     Unit = "L/kg"

	// Circularity indicator units
	UnitIndex   Unit = "index" // dimensionless [0,1]
	UnitPercent Unit = "%"
	UnitScore   Unit = "score" // dimensionless [0,1]

	// Input units
	UnitKm       Unit = "km"
	UnitUSDPerKg Unit = "$/kg"
	UnitYears    Unit = "years"
	UnitKgPerKg  Unit = "kg/kg"
)

// ForTarget maps a prediction target name to its display unit.
func ForTarget(target string) Unit {
	switch target {
	case "Energy_Use_MJ_per_kg":
		return UnitMJPerKg
	case "Emission_kgCO2_per_kg":
		return UnitKgCO2PerKg
	case "Water_Use_l_per_kg":
		return UnitLPerKg
	case "Circularity_Index":
		return UnitIndex
	case "Recycled_Content_pct":
		return UnitPercent
	case "Reuse_Potential_score":
		return UnitScore
	default:
		return ""
	}
}
