package model

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	apperrors "lca-metals/pkg/errors"
)

func TestCandidates(t *testing.T) {
	t.Run("orders dual-target artifacts before legacy ones", func(t *testing.T) {
		paths := Candidates("models")
		if len(paths) != len(artifactNames)*2 {
			t.Fatalf("expected %d candidates, got %d", len(artifactNames)*2, len(paths))
		}
		if paths[0] != filepath.Join("models", "corrected_optimized_dual_target_model.gob") {
			t.Errorf("unexpected first candidate: %s", paths[0])
		}
		last := paths[len(paths)-1]
		if last != filepath.Join("..", "models", "lca_model.json") {
			t.Errorf("unexpected last candidate: %s", last)
		}
	})

	t.Run("includes parent-relative twin for every name", func(t *testing.T) {
		for _, path := range Candidates("models") {
			if filepath.Base(path) == path {
				t.Errorf("candidate %s has no directory prefix", path)
			}
		}
	})
}

func TestLocate(t *testing.T) {
	t.Run("returns first existing candidate", func(t *testing.T) {
		dir := t.TempDir()
		lower := filepath.Join(dir, "optimized_dual_target_model.gob")
		if err := os.WriteFile(lower, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
		higher := filepath.Join(dir, "clean_optimized_dual_target_model.gob")
		if err := os.WriteFile(higher, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}

		got, err := Locate(dir)
		if err != nil {
			t.Fatalf("Locate: %v", err)
		}
		if got != higher {
			t.Errorf("expected priority candidate %s, got %s", higher, got)
		}
	})

	t.Run("empty directory yields PathNotFound", func(t *testing.T) {
		_, err := Locate(t.TempDir())
		var lcaErr *apperrors.LCAError
		if !errors.As(err, &lcaErr) {
			t.Fatalf("expected LCAError, got %v", err)
		}
		if lcaErr.Code != apperrors.ErrCodePathNotFound {
			t.Errorf("expected %s, got %s", apperrors.ErrCodePathNotFound, lcaErr.Code)
		}
	})

	t.Run("directories do not count as artifacts", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.Mkdir(filepath.Join(dir, "lca_model.json"), 0o755); err != nil {
			t.Fatal(err)
		}
		if _, err := Locate(dir); err == nil {
			t.Error("expected error for directory masquerading as artifact")
		}
	})
}
