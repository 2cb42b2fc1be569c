// Package main provides the LCA prediction API server.
package main

import (
	"errors"
	"net/http"

	"lca-metals/api"
	"lca-metals/internal/model"
	"lca-metals/pkg/platform"
)

func main() {
	log := platform.InitLogger()

	port, err := platform.ResolvePort()
	if err != nil {
		log.Warn().Err(err).Int("port", port).Msg("Invalid PORT value, using default")
	}

	modelsDir := platform.GetEnv("MODELS_DIR", model.DefaultModelsDir)

	loader := model.NewLoader(modelsDir, log)
	bundle := loader.Load()
	log.Info().
		Str("model_version", bundle.Metadata.ModelVersion).
		Str("kind", bundle.Kind.String()).
		Bool("fallback", bundle.Fallback).
		Str("source", bundle.SourcePath).
		Msg("Model ready")

	config := api.DefaultConfig()
	config.Port = port

	server := api.NewServer(loader, config, log)
	if err := server.StartWithGracefulShutdown(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
