package model

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	apperrors "lca-metals/pkg/errors"
)

// placeholderMarkers identify Git LFS pointer stubs left in place of the
// real artifact bytes on deployments without LFS content.
var placeholderMarkers = []string{
	"version https://git-lfs.github.com",
	"oid sha256:",
	"size ",
}

// placeholderScanLen bounds how much of the file head is inspected.
const placeholderScanLen = 200

// Artifact is the on-disk representation of a model bundle. Dual-target
// artifacts populate Environmental/Circularity; generic artifacts populate
// Single.
type Artifact struct {
	ModelType string `json:"model_type"`

	Environmental   *LinearParams           `json:"environmental_model,omitempty"`
	Circularity     map[string]LinearParams `json:"circularity_models,omitempty"`
	BestCircularity string                  `json:"circularity_best_model,omitempty"`

	Single *LinearParams `json:"model,omitempty"`

	Encoders map[string][]string `json:"label_encoders,omitempty"`
	Tables   *LabelTables        `json:"label_tables,omitempty"`
	Metadata Metadata            `json:"metadata"`
}

// IsPlaceholder reports whether the file head contains a known pointer
// marker instead of artifact content.
func IsPlaceholder(data []byte) bool {
	head := data
	if len(head) > placeholderScanLen {
		head = head[:placeholderScanLen]
	}
	text := string(head)
	for _, marker := range placeholderMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}

// Deserialize reads an artifact file and assembles a validated bundle.
// Every failure is a recoverable DeserializationError so the caller can
// fall through to the next candidate.
func Deserialize(path string) (*ModelBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewDeserializationError(path, err)
	}
	if IsPlaceholder(data) {
		return nil, apperrors.NewPlaceholderFileError(path)
	}

	format, err := formatFor(path)
	if err != nil {
		return nil, apperrors.NewDeserializationError(path, err)
	}

	var art Artifact
	switch format {
	case FormatGob:
		err = gob.NewDecoder(bytes.NewReader(data)).Decode(&art)
	case FormatJSON:
		err = json.Unmarshal(data, &art)
	}
	if err != nil {
		return nil, apperrors.NewDeserializationError(path, err)
	}

	bundle, err := art.build(path)
	if err != nil {
		return nil, err
	}
	if err := bundle.Validate(); err != nil {
		return nil, err
	}
	return bundle, nil
}

// build converts the serialized artifact into an in-memory bundle.
func (a *Artifact) build(path string) (*ModelBundle, error) {
	bundle := &ModelBundle{
		Metadata:   a.Metadata,
		SourcePath: path,
		Tables:     DefaultLabelTables(),
	}
	if a.Tables != nil {
		bundle.Tables = *a.Tables
	}

	bundle.Encoders = make(map[string]LabelEncoder, len(a.Encoders))
	for field, classes := range a.Encoders {
		bundle.Encoders[field] = LabelEncoder{Classes: classes}
	}

	switch {
	case a.Environmental != nil:
		bundle.Kind = KindDualTarget
		env, err := NewLinearEstimator(*a.Environmental)
		if err != nil {
			return nil, apperrors.NewDeserializationError(path, err)
		}
		bundle.Environmental = env

		bundle.Circularity = make(map[string]Estimator, len(a.Circularity))
		for name, params := range a.Circularity {
			est, err := NewLinearEstimator(params)
			if err != nil {
				return nil, apperrors.NewDeserializationError(path, fmt.Errorf("circularity model %s: %w", name, err))
			}
			bundle.Circularity[name] = est
		}
		bundle.BestCircularity = a.BestCircularity
		if bundle.BestCircularity == "" {
			bundle.BestCircularity = DefaultBestCircularity
		}
	case a.Single != nil:
		bundle.Kind = KindGeneric
		est, err := NewLinearEstimator(*a.Single)
		if err != nil {
			return nil, apperrors.NewDeserializationError(path, err)
		}
		bundle.Single = est
	default:
		return nil, apperrors.NewDeserializationError(path, fmt.Errorf("artifact %q carries no estimator", a.ModelType))
	}

	return bundle, nil
}

// WriteArtifact serializes an artifact to path in the given format and
// writes the sidecar manifest naming that format.
func WriteArtifact(path string, format ArtifactFormat, a *Artifact) error {
	var buf bytes.Buffer
	var err error
	switch format {
	case FormatGob:
		err = gob.NewEncoder(&buf).Encode(a)
	case FormatJSON:
		var data []byte
		data, err = json.MarshalIndent(a, "", "  ")
		if err == nil {
			_, err = buf.Write(data)
		}
	default:
		return fmt.Errorf("unknown artifact format %q", format)
	}
	if err != nil {
		return fmt.Errorf("encoding artifact: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return err
	}

	manifest, err := yamlMarshalManifest(Manifest{Format: format, Version: a.Metadata.ModelVersion})
	if err != nil {
		return err
	}
	return os.WriteFile(manifestPath(path), manifest, 0o644)
}
