package domain

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"zdex.dev/pkg/zdex/internal/adapter"
	m "zdex.dev/pkg/zdex/internal/model"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func collectWarnings(dst *[]m.Warning) WarningHandler {
	return func(w m.Warning) {
		*dst = append(*dst, w)
	}
}

var errPermissionDenied = errors.New("permission denied")

// failingFSAdapter wraps the local adapter and fails reads of one path.
type failingFSAdapter struct {
	*adapter.LocalSourceFSAdapter
	failPath m.Path
}

func (f *failingFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	if path == f.failPath {
		return nil, errPermissionDenied
	}

	return f.LocalSourceFSAdapter.ReadFile(path)
}

func (f *failingFSAdapter) ReadDir(path m.Path) ([]os.DirEntry, error) {
	if path == f.failPath {
		return nil, errPermissionDenied
	}

	return f.LocalSourceFSAdapter.ReadDir(path)
}
