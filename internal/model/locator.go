package model

import (
	"os"
	"path/filepath"

	apperrors "lca-metals/pkg/errors"
)

// artifactNames lists the known artifact filenames in priority order. The
// feature-corrected dual-target bundle wins over the clean and full
// optimized variants, with the legacy single-estimator bundles last.
var artifactNames = []string{
	"corrected_optimized_dual_target_model.gob",
	"clean_optimized_dual_target_model.gob",
	"optimized_dual_target_model.gob",
	"final_optimized_lca_model.json",
	"lca_model.json",
}

// Candidates returns the ordered list of candidate artifact paths for a
// models directory. Each filename is tried under the directory itself and
// under its parent-relative twin, tolerating the two working directories
// the service is launched from in practice.
func Candidates(dir string) []string {
	prefixes := []string{dir, filepath.Join("..", dir)}
	paths := make([]string, 0, len(artifactNames)*len(prefixes))
	for _, name := range artifactNames {
		for _, prefix := range prefixes {
			paths = append(paths, filepath.Join(prefix, name))
		}
	}
	return paths
}

// Locate returns the first existing candidate path, or a PathNotFound
// error when none exists. Existence is the only check; readability and
// content validity are the deserializer's concern.
func Locate(dir string) (string, error) {
	for _, path := range Candidates(dir) {
		if fileExists(path) {
			return path, nil
		}
	}
	return "", apperrors.NewPathNotFoundError(dir)
}

// existing filters a candidate list down to paths present on disk,
// preserving priority order.
func existing(paths []string) []string {
	var found []string
	for _, path := range paths {
		if fileExists(path) {
			found = append(found, path)
		}
	}
	return found
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
