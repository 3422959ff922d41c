package generator

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// artifactWriter abstracts where generated pages land so dry runs and tests
// can swap the filesystem out.
type artifactWriter interface {
	EnsureDir(ctx context.Context, path string) error
	WriteFile(ctx context.Context, path string, data []byte) error
}

func newArtifactWriter(dryRun bool) artifactWriter {
	if dryRun {
		return noopWriter{}
	}
	return osWriter{}
}

type osWriter struct{}

func (osWriter) EnsureDir(_ context.Context, path string) error {
	if strings.TrimSpace(path) == "" || path == "." {
		return nil
	}
	return os.MkdirAll(path, 0o755)
}

func (osWriter) WriteFile(_ context.Context, path string, data []byte) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("sitegen generator: write requires path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

type noopWriter struct{}

func (noopWriter) EnsureDir(context.Context, string) error { return nil }

func (noopWriter) WriteFile(context.Context, string, []byte) error { return nil }
