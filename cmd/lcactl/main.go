// lcactl - LCA metals prediction CLI
//
// Usage:
//   lcactl predict --metal 0 --process 1 [options]
//   lcactl check-models --models-dir models
//   lcactl serve --port 8501
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"lca-metals/api"
	"lca-metals/internal/catalog"
	"lca-metals/internal/features"
	"lca-metals/internal/model"
	"lca-metals/internal/predict"
	"lca-metals/internal/recommend"
	"lca-metals/internal/report"
	contracts "lca-metals/pkg/api"
	"lca-metals/pkg/platform"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	app := &cli.App{
		Name:    "lcactl",
		Usage:   "Life Cycle Assessment predictions for metallurgy and mining",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "models-dir",
				Value:   model.DefaultModelsDir,
				Usage:   "Directory holding model artifacts",
				EnvVars: []string{"MODELS_DIR"},
			},
		},

		Commands: []*cli.Command{
			predictCommand(),
			reportCommand(),
			checkModelsCommand(),
			serveCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func inputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "metal",
			Value: 0,
			Usage: "Metal code (0=Aluminum .. 11=Indium)",
		},
		&cli.IntFlag{
			Name:  "process",
			Value: 0,
			Usage: "Process type code (0=Primary, 1=Recycled, 2=Hybrid)",
		},
		&cli.IntFlag{
			Name:  "end-of-life",
			Value: 0,
			Usage: "End of life code (0=Recycled, 1=Landfilled, 2=Incinerated, 3=Reused)",
		},
		&cli.Float64Flag{
			Name:  "transport-km",
			Value: 500,
			Usage: "Transport distance in km",
		},
		&cli.Float64Flag{
			Name:  "cost-per-kg",
			Value: 2.5,
			Usage: "Production cost in USD per kg",
		},
		&cli.Float64Flag{
			Name:  "life-years",
			Value: 10,
			Usage: "Expected product life in years",
		},
		&cli.Float64Flag{
			Name:  "waste-ratio",
			Value: 0.5,
			Usage: "Waste generated per kg of metal",
		},
		&cli.StringFlag{
			Name:  "sector",
			Usage: "Industry sector for report context",
		},
		&cli.StringFlag{
			Name:  "route",
			Usage: "Circular economy route for report context",
		},
	}
}

func requestFromFlags(c *cli.Context) contracts.PredictRequest {
	return contracts.PredictRequest{
		Metal:            c.Int("metal"),
		ProcessType:      c.Int("process"),
		EndOfLife:        c.Int("end-of-life"),
		TransportKm:      c.Float64("transport-km"),
		CostPerKg:        c.Float64("cost-per-kg"),
		ProductLifeYears: c.Float64("life-years"),
		WasteRatio:       c.Float64("waste-ratio"),
		Sector:           c.String("sector"),
		Route:            c.String("route"),
	}
}

func runPipeline(c *cli.Context) (contracts.PredictRequest, *contracts.PredictResponse, error) {
	req := requestFromFlags(c)
	log := platform.InitLogger()

	loader := model.NewLoader(c.String("models-dir"), log)
	bundle := loader.Load()

	vec, approximations, err := features.Encode(bundle, req)
	if err != nil {
		return req, nil, fmt.Errorf("failed to encode features: %w", err)
	}

	predictor := predict.NewPredictor(bundle)
	result, err := predictor.Predict(vec)
	if err != nil {
		return req, nil, fmt.Errorf("prediction failed: %w", err)
	}

	return req, &contracts.PredictResponse{
		Predictions:                  result,
		Confidence:                   predict.Confidence(bundle, approximations),
		Approximations:               approximations,
		ModelVersion:                 bundle.Metadata.ModelVersion,
		FallbackModel:                bundle.Fallback,
		CriticalMineral:              catalog.IsCriticalMineral(req.Metal),
		EnvironmentalRecommendations: recommend.Environmental(result),
		CircularityRecommendations:   recommend.Circularity(result),
	}, nil
}

// =============================================================================
// PREDICT COMMAND
// =============================================================================

func predictCommand() *cli.Command {
	return &cli.Command{
		Name:  "predict",
		Usage: "Predict environmental and circularity metrics for one scenario",
		Flags: append(inputFlags(),
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "table",
				Usage:   "Output format (table, json)",
			},
		),
		Action: runPredict,
	}
}

func runPredict(c *cli.Context) error {
	req, resp, err := runPipeline(c)
	if err != nil {
		return err
	}

	switch c.String("format") {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	default:
		return outputTable(req, resp)
	}
}

func outputTable(req contracts.PredictRequest, resp *contracts.PredictResponse) error {
	p := resp.Predictions
	fmt.Println()
	fmt.Printf("LCA Prediction: %s / %s / %s\n",
		catalog.MetalName(req.Metal),
		catalog.ProcessName(req.ProcessType),
		catalog.EndOfLifeName(req.EndOfLife),
	)
	fmt.Println("----------------------------------------------")
	fmt.Printf("  Energy Use:        %10.2f MJ/kg\n", p.EnergyUseMJPerKg)
	fmt.Printf("  CO2 Emissions:     %10.2f kg CO2/kg\n", p.EmissionKgCO2PerKg)
	fmt.Printf("  Water Use:         %10.2f L/kg\n", p.WaterUseLPerKg)
	fmt.Printf("  Circularity Index: %10.3f\n", p.CircularityIndex)
	fmt.Printf("  Recycled Content:  %10.1f %%\n", p.RecycledContentPct)
	fmt.Printf("  Reuse Potential:   %10.2f\n", p.ReusePotentialScore)
	fmt.Println("----------------------------------------------")
	fmt.Printf("  Confidence:        %10.0f %%\n", resp.Confidence*100)
	fmt.Printf("  Model:             %s\n", resp.ModelVersion)
	if resp.FallbackModel {
		fmt.Println("  Note: demonstration model in use")
	}
	for _, a := range resp.Approximations {
		fmt.Printf("  Approximation: %s\n", a)
	}
	if len(resp.EnvironmentalRecommendations) > 0 {
		fmt.Println()
		fmt.Println("Environmental recommendations:")
		for _, rec := range resp.EnvironmentalRecommendations {
			fmt.Printf("  - %s\n", rec)
		}
	}
	if len(resp.CircularityRecommendations) > 0 {
		fmt.Println()
		fmt.Println("Circularity recommendations:")
		for _, rec := range resp.CircularityRecommendations {
			fmt.Printf("  - %s\n", rec)
		}
	}
	return nil
}

// =============================================================================
// REPORT COMMAND
// =============================================================================

func reportCommand() *cli.Command {
	return &cli.Command{
		Name:  "report",
		Usage: "Generate a full analysis report",
		Flags: append(inputFlags(),
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "text",
				Usage:   "Output format (text, json)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write the report to a file instead of stdout",
			},
		),
		Action: runReport,
	}
}

func runReport(c *cli.Context) error {
	req, resp, err := runPipeline(c)
	if err != nil {
		return err
	}

	builder := report.NewBuilder()
	var body []byte
	switch c.String("format") {
	case "json":
		body, err = json.MarshalIndent(builder.BuildExport(req, *resp), "", "  ")
		if err != nil {
			return err
		}
	default:
		body = []byte(builder.BuildText(req, *resp))
	}

	if out := c.String("output"); out != "" {
		return os.WriteFile(out, body, 0o644)
	}
	_, err = os.Stdout.Write(body)
	return err
}

// =============================================================================
// CHECK-MODELS COMMAND
// =============================================================================

func checkModelsCommand() *cli.Command {
	return &cli.Command{
		Name:  "check-models",
		Usage: "Verify model artifacts are real files, not Git LFS pointers",
		Action: func(c *cli.Context) error {
			dir := c.String("models-dir")
			candidates := model.Candidates(dir)

			found := 0
			placeholders := 0
			for _, path := range candidates {
				data, err := os.ReadFile(path)
				if err != nil {
					continue
				}
				found++
				if model.IsPlaceholder(data) {
					placeholders++
					fmt.Printf("PLACEHOLDER  %s (Git LFS pointer, run 'git lfs pull')\n", path)
					continue
				}
				fmt.Printf("OK           %s (%d bytes)\n", path, len(data))
			}

			if found == 0 {
				fmt.Printf("No model artifacts found under %q; the service will use the built-in demonstration model\n", dir)
				return nil
			}
			if placeholders > 0 {
				// Non-zero exit so CI catches un-pulled LFS files.
				return cli.Exit(fmt.Sprintf("%d of %d artifacts are LFS placeholders", placeholders, found), 2)
			}
			fmt.Printf("%d artifacts verified\n", found)
			return nil
		},
	}
}

// =============================================================================
// SERVE COMMAND (API SERVER)
// =============================================================================

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the LCA prediction API server",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Value:   platform.DefaultPort,
				Usage:   "API server port",
				EnvVars: []string{"PORT"},
			},
		},
		Action: runServe,
	}
}

func runServe(c *cli.Context) error {
	log := platform.InitLogger()

	loader := model.NewLoader(c.String("models-dir"), log)
	bundle := loader.Load()
	log.Info().
		Str("model_version", bundle.Metadata.ModelVersion).
		Bool("fallback", bundle.Fallback).
		Msg("Model ready")

	config := api.DefaultConfig()
	config.Port = c.Int("port")

	server := api.NewServer(loader, config, log)
	return server.StartWithGracefulShutdown()
}
