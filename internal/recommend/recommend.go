// Package recommend generates canned improvement recommendations keyed on
// threshold bands of the prediction outputs. Pure lookup, no model calls.
package recommend

import "lca-metals/pkg/api"

// Environmental returns improvement recommendations for the three
// environmental indicators.
func Environmental(p api.PredictionResult) []string {
	var recs []string

	switch {
	case p.EnergyUseMJPerKg > 150:
		recs = append(recs,
			"High energy usage: consider switching to renewable energy sources or optimizing process efficiency",
			"Implement energy recovery systems to capture and reuse waste heat")
	case p.EnergyUseMJPerKg > 100:
		recs = append(recs, "Moderate energy usage: look into energy-efficient equipment upgrades")
	default:
		recs = append(recs, "Good energy performance: current energy usage is within acceptable limits")
	}

	switch {
	case p.EmissionKgCO2PerKg > 15:
		recs = append(recs,
			"High CO2 emissions: urgent need to implement carbon capture technologies",
			"Consider switching to low-carbon production methods or renewable energy")
	case p.EmissionKgCO2PerKg > 10:
		recs = append(recs, "Moderate emissions: implement emission reduction strategies like process optimization")
	default:
		recs = append(recs, "Low emissions: excellent carbon performance, maintain current practices")
	}

	switch {
	case p.WaterUseLPerKg > 80:
		recs = append(recs,
			"High water usage: implement water recycling and closed-loop systems",
			"Consider dry processing methods where technically feasible")
	case p.WaterUseLPerKg > 50:
		recs = append(recs, "Moderate water usage: optimize water efficiency in production processes")
	default:
		recs = append(recs, "Efficient water use: good water management practices in place")
	}

	recs = append(recs,
		"Process optimization: regular maintenance and process tuning can reduce all environmental impacts",
		"Monitoring: implement real-time monitoring systems for continuous improvement")
	return recs
}

// Circularity returns improvement recommendations for the three
// circularity indicators.
func Circularity(p api.PredictionResult) []string {
	var recs []string

	switch {
	case p.CircularityIndex < 0.3:
		recs = append(recs,
			"Low circularity: major improvements needed in circular design principles",
			"Focus on design for disassembly and material recovery",
			"Set targets for increasing material circularity by 25% within 2 years")
	case p.CircularityIndex < 0.6:
		recs = append(recs,
			"Moderate circularity: good foundation, aim for further improvements",
			"Enhance product durability and repairability features")
	default:
		recs = append(recs, "Excellent circularity: leading circular economy practices")
	}

	switch {
	case p.RecycledContentPct < 20:
		recs = append(recs,
			"Low recycled content: increase use of secondary raw materials",
			"Establish partnerships with recycling companies for material supply",
			"Target minimum 30% recycled content in production")
	case p.RecycledContentPct < 50:
		recs = append(recs,
			"Moderate recycling: continue increasing recycled material usage",
			"Identify opportunities to substitute virgin materials with recycled alternatives")
	default:
		recs = append(recs, "High recycled content: excellent use of secondary materials")
	}

	switch {
	case p.ReusePotentialScore < 0.3:
		recs = append(recs,
			"Low reuse potential: design products for multiple life cycles",
			"Develop take-back programs for end-of-life products",
			"Create modular designs that enable component reuse")
	case p.ReusePotentialScore < 0.6:
		recs = append(recs,
			"Moderate reuse: enhance product design for better reusability",
			"Implement product-as-a-service models")
	default:
		recs = append(recs, "High reuse potential: excellent design for reusability")
	}

	recs = append(recs,
		"Supply chain: collaborate with suppliers to improve material traceability",
		"Digital tools: implement digital passports for material tracking",
		"Training: educate staff on circular economy principles and practices")
	return recs
}

// metalAdvice holds advice specific to well-characterized metals.
var metalAdvice = map[string][]string{
	"Aluminum": {
		"Aluminum recycling uses 95% less energy than primary production",
		"Consider using hydroelectric power for smelting operations",
		"Implement advanced sorting technologies for scrap aluminum",
	},
	"Steel": {
		"Electric arc furnaces are more efficient for steel recycling",
		"Implement blast furnace gas recovery systems",
		"Use magnetic separation for improved scrap quality",
	},
	"Copper": {
		"Copper has excellent recycling properties with minimal quality loss",
		"Focus on improving scrap collection and sorting systems",
		"Consider hydrometallurgical processes for complex ores",
	},
}

// processAdvice holds advice specific to production process families.
var processAdvice = map[string][]string{
	"Primary Production (Virgin Materials)": {
		"Transition to renewable energy sources",
		"Optimize extraction and processing efficiency",
		"Implement water recycling systems",
	},
	"Secondary Production (Recycling)": {
		"Excellent choice for environmental sustainability",
		"Focus on improving sorting and contamination removal",
		"Maintain high recycling rates through quality control",
	},
	"Hybrid Process (Mixed Sources)": {
		"Balance virgin and recycled materials for optimal performance",
		"Monitor material quality throughout the process",
		"Gradually increase recycled content percentage",
	},
}

// ProcessSpecific returns advice keyed on the metal and process display
// names. Unknown names contribute nothing.
func ProcessSpecific(metalName, processName string) []string {
	var recs []string
	recs = append(recs, metalAdvice[metalName]...)
	recs = append(recs, processAdvice[processName]...)
	return recs
}

// CostOptimization returns cost-reduction recommendations keyed on the
// production cost band, cross-referenced with the prediction outputs.
func CostOptimization(costPerKg float64, p api.PredictionResult) []string {
	var recs []string

	switch {
	case costPerKg > 10:
		recs = append(recs, "High production cost: focus on cost reduction strategies")
		if p.EnergyUseMJPerKg > 100 {
			recs = append(recs, "Energy costs are likely significant, invest in efficiency improvements")
		}
		if p.RecycledContentPct < 30 {
			recs = append(recs, "Increase recycled content to reduce raw material costs")
		}
	case costPerKg > 5:
		recs = append(recs,
			"Moderate cost: look for incremental cost improvements",
			"Benchmark against industry standards for cost optimization")
	default:
		recs = append(recs, "Cost efficient: maintain current cost-effective practices")
	}

	recs = append(recs,
		"Automation: consider automation for labor-intensive processes",
		"Scale: evaluate opportunities for economies of scale",
		"Supply chain: optimize supply chain logistics and inventory management")
	return recs
}
