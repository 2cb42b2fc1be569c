// Package catalog holds the static UI vocabularies: metals and critical
// minerals, process types, end-of-life treatments, industry sectors, and
// circular-economy routes.
package catalog

// Option pairs a category code with its display name.
type Option struct {
	Code int    `json:"code"`
	Name string `json:"name"`
}

// Metals lists the selectable metals and critical minerals. Codes are the
// wire values of PredictRequest.Metal.
var Metals = []Option{
	{0, "Aluminum"},
	{1, "Steel"},
	{2, "Copper"},
	{3, "Zinc"},
	{4, "Lead"},
	{5, "Nickel"},
	{6, "Lithium"},
	{7, "Cobalt"},
	{8, "Rare Earth Elements"},
	{9, "Platinum"},
	{10, "Tungsten"},
	{11, "Indium"},
}

// Processes lists the production process types.
var Processes = []Option{
	{0, "Primary Production (Virgin Materials)"},
	{1, "Secondary Production (Recycling)"},
	{2, "Hybrid Process (Mixed Sources)"},
	{3, "Advanced Recycling (High-Tech Recovery)"},
	{4, "Urban Mining (Infrastructure Recovery)"},
}

// EndOfLife lists the end-of-life treatments.
var EndOfLife = []Option{
	{0, "Recycling"},
	{1, "Landfill"},
	{2, "Incineration"},
	{3, "Reuse"},
}

// Sectors lists the industry application contexts carried through to
// reports; sectors are not model inputs.
var Sectors = []string{
	"Energy Storage",
	"Electronics",
	"Automotive",
	"Renewable Energy",
	"Construction",
	"Aerospace",
	"Defense",
	"General Manufacturing",
}

// Route describes a circular-economy sourcing route.
type Route struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Circularity    float64 `json:"circularity"`
	Sustainability string  `json:"sustainability"`
}

// Routes lists the circular-economy routes in ascending circularity of
// the primary/secondary split.
var Routes = []Route{
	{
		Name:           "Primary (Virgin Mining)",
		Description:    "Traditional mining and primary smelting",
		Circularity:    0.1,
		Sustainability: "Low",
	},
	{
		Name:           "Secondary (Recycling)",
		Description:    "Urban mining and scrap recycling",
		Circularity:    0.8,
		Sustainability: "High",
	},
	{
		Name:           "Circular Hybrid",
		Description:    "Optimized primary-secondary mix",
		Circularity:    0.6,
		Sustainability: "Medium-High",
	},
	{
		Name:           "Advanced Recovery",
		Description:    "Cutting-edge extraction from waste",
		Circularity:    0.9,
		Sustainability: "Very High",
	},
}

// criticalMineralCodes flags the metals designated critical minerals.
var criticalMineralCodes = map[int]bool{
	6: true, 7: true, 8: true, 9: true, 10: true, 11: true,
}

// IsCriticalMineral reports whether a metal code is a critical mineral.
func IsCriticalMineral(code int) bool {
	return criticalMineralCodes[code]
}

// MetalName resolves a metal code to its display name, or empty.
func MetalName(code int) string {
	return optionName(Metals, code)
}

// ProcessName resolves a process code to its display name, or empty.
func ProcessName(code int) string {
	return optionName(Processes, code)
}

// EndOfLifeName resolves an end-of-life code to its display name, or empty.
func EndOfLifeName(code int) string {
	return optionName(EndOfLife, code)
}

// RouteByName finds a route by exact name.
func RouteByName(name string) (Route, bool) {
	for _, r := range Routes {
		if r.Name == name {
			return r, true
		}
	}
	return Route{}, false
}

func optionName(options []Option, code int) string {
	for _, o := range options {
		if o.Code == code {
			return o.Name
		}
	}
	return ""
}
