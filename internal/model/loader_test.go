package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func TestLoader(t *testing.T) {
	t.Run("empty directory yields the fallback bundle", func(t *testing.T) {
		loader := NewLoader(t.TempDir(), zerolog.Nop())
		bundle := loader.Load()
		if bundle == nil {
			t.Fatal("Load returned nil")
		}
		if !bundle.Fallback {
			t.Error("expected fallback bundle")
		}
	})

	t.Run("placeholder-only directory yields the fallback bundle", func(t *testing.T) {
		dir := t.TempDir()
		pointer := "version https://git-lfs.github.com/spec/v1\noid sha256:abc\nsize 99\n"
		path := filepath.Join(dir, "optimized_dual_target_model.gob")
		if err := os.WriteFile(path, []byte(pointer), 0o644); err != nil {
			t.Fatal(err)
		}

		bundle := NewLoader(dir, zerolog.Nop()).Load()
		if !bundle.Fallback {
			t.Error("expected fallback bundle for placeholder artifact")
		}
	})

	t.Run("valid artifact wins over a broken higher-priority one", func(t *testing.T) {
		dir := t.TempDir()
		broken := filepath.Join(dir, "corrected_optimized_dual_target_model.gob")
		if err := os.WriteFile(broken, []byte("garbage"), 0o644); err != nil {
			t.Fatal(err)
		}
		valid := filepath.Join(dir, "optimized_dual_target_model.gob")
		if err := WriteArtifact(valid, FormatGob, dualTargetArtifact()); err != nil {
			t.Fatal(err)
		}

		bundle := NewLoader(dir, zerolog.Nop()).Load()
		if bundle.Fallback {
			t.Fatal("expected a real bundle, got the fallback")
		}
		if bundle.SourcePath != valid {
			t.Errorf("loaded %s, want %s", bundle.SourcePath, valid)
		}
	})

	t.Run("load is memoized", func(t *testing.T) {
		loader := NewLoader(t.TempDir(), zerolog.Nop())
		first := loader.Load()
		second := loader.Load()
		if first != second {
			t.Error("expected the same bundle pointer on repeated loads")
		}
	})

	t.Run("empty dir argument uses the default", func(t *testing.T) {
		loader := NewLoader("", zerolog.Nop())
		if loader.dir != DefaultModelsDir {
			t.Errorf("dir = %s, want %s", loader.dir, DefaultModelsDir)
		}
	})
}
