package model

import (
	"sync"

	"github.com/rs/zerolog"
)

// DefaultModelsDir is the conventional artifact directory.
const DefaultModelsDir = "models"

// Loader walks the candidate-path chain and memoizes the first usable
// bundle for the lifetime of the process. Load never returns nil: when
// every candidate is missing, a placeholder, or undecodable, the
// synthesized fallback bundle is returned.
type Loader struct {
	dir string
	log zerolog.Logger

	once   sync.Once
	bundle *ModelBundle
}

// NewLoader creates a loader over a models directory. An empty dir uses
// DefaultModelsDir.
func NewLoader(dir string, log zerolog.Logger) *Loader {
	if dir == "" {
		dir = DefaultModelsDir
	}
	return &Loader{dir: dir, log: log}
}

// Load resolves the bundle once and returns the cached result on every
// later call. The bundle is read-only after construction, so no further
// synchronization is needed.
func (l *Loader) Load() *ModelBundle {
	l.once.Do(func() {
		l.bundle = l.loadChain()
	})
	return l.bundle
}

func (l *Loader) loadChain() *ModelBundle {
	candidates := existing(Candidates(l.dir))
	if len(candidates) == 0 {
		l.log.Warn().Str("dir", l.dir).Msg("No model artifacts found, creating fallback model")
		return SynthesizeFallback()
	}

	for _, path := range candidates {
		l.log.Info().Str("path", path).Msg("Attempting to load model artifact")
		bundle, err := Deserialize(path)
		if err != nil {
			l.log.Warn().Err(err).Str("path", path).Msg("Candidate rejected, trying next")
			continue
		}
		l.log.Info().
			Str("path", path).
			Str("model_type", bundle.Kind.String()).
			Str("version", bundle.Metadata.ModelVersion).
			Int("features", bundle.Metadata.FeatureCount).
			Msg("Model loaded")
		return bundle
	}

	l.log.Warn().Msg("All candidate artifacts failed, creating fallback model")
	return SynthesizeFallback()
}
