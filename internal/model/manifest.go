package model

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ArtifactFormat tags the serialization of an artifact file.
type ArtifactFormat string

const (
	FormatGob  ArtifactFormat = "gob"
	FormatJSON ArtifactFormat = "json"
)

// Manifest is the small sidecar file ("<artifact>.manifest.yaml") that
// carries an explicit format tag, replacing the brittle filename-substring
// dispatch of earlier deployments.
type Manifest struct {
	Format  ArtifactFormat `yaml:"format"`
	Version string         `yaml:"version,omitempty"`
}

// manifestPath returns the sidecar path for an artifact.
func manifestPath(artifact string) string {
	return artifact + ".manifest.yaml"
}

// loadManifest reads and parses the sidecar manifest for an artifact.
// A missing file returns (nil, nil): callers fall back to the legacy
// filename rule.
func loadManifest(artifact string) (*Manifest, error) {
	data, err := os.ReadFile(manifestPath(artifact))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest for %s: %w", artifact, err)
	}
	switch m.Format {
	case FormatGob, FormatJSON:
		return &m, nil
	default:
		return nil, fmt.Errorf("manifest for %s names unknown format %q", artifact, m.Format)
	}
}

// yamlMarshalManifest serializes a manifest for WriteArtifact.
func yamlMarshalManifest(m Manifest) ([]byte, error) {
	return yaml.Marshal(m)
}

// formatFor resolves the artifact format: manifest tag when present,
// legacy filename convention otherwise (dual-target bundles were written
// with gob, everything else with JSON).
func formatFor(artifact string) (ArtifactFormat, error) {
	if m, err := loadManifest(artifact); err != nil {
		return "", err
	} else if m != nil {
		return m.Format, nil
	}
	if strings.Contains(artifact, "optimized_dual_target") {
		return FormatGob, nil
	}
	return FormatJSON, nil
}
