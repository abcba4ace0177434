// Package adapter contains infrastructure adapters for the zdex CLI.
package adapter

import (
	"os"
	"path/filepath"

	m "zdex.dev/pkg/zdex/internal/model"
)

// SourceFSAdapter abstracts the filesystem operations the scanner relies on
// when walking user projects. It hides direct `os` access so the domain logic
// can be tested without touching the disk.
type SourceFSAdapter interface {
	// ReadDir lists a directory. Entries are sorted by filename.
	ReadDir(path m.Path) ([]os.DirEntry, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path, following symlinks.
	FileInfo(path m.Path) (os.FileInfo, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// ReadDir lists the entries of a directory in lexical order.
func (a *LocalSourceFSAdapter) ReadDir(path m.Path) ([]os.DirEntry, error) {
	return os.ReadDir(string(path))
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	// #nosec G304 - path comes from walking the user supplied root
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
