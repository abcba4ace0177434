package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"zdex.dev/pkg/zdex/internal/adapter"
	m "zdex.dev/pkg/zdex/internal/model"
)

// DefaultExtensions are the script and stylesheet extensions scanned for
// z-index declarations.
var DefaultExtensions = []string{".ts", ".tsx", ".js", ".jsx", ".css", ".scss", ".sass"}

// DefaultVariableExtensions are the extensions searched for Sass variable
// definitions.
var DefaultVariableExtensions = []string{".scss", ".sass"}

// lineVisitor is called for every non-comment line of an eligible file.
type lineVisitor func(path m.Path, number int, line string)

// sourceWalker walks a directory tree with an explicit stack.
//
// Within a directory, entries are handled in lexical order: files are read
// as soon as they are met and subdirectories are pushed so that they pop in
// lexical order too. The resulting traversal is deterministic.
type sourceWalker struct {
	fs         adapter.SourceFSAdapter
	extensions map[string]bool
	ignored    []string
}

func newSourceWalker(fs adapter.SourceFSAdapter, extensions []string, ignored []m.Path) *sourceWalker {
	exts := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}

		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}

		exts[ext] = true
	}

	prefixes := make([]string, 0, len(ignored))
	for _, p := range ignored {
		if strings.TrimSpace(string(p)) == "" {
			continue
		}

		prefixes = append(prefixes, filepath.Clean(string(p)))
	}

	return &sourceWalker{
		fs:         fs,
		extensions: exts,
		ignored:    prefixes,
	}
}

// isIgnored reports whether path starts with one of the ignored prefixes.
func (w *sourceWalker) isIgnored(path string) bool {
	for _, prefix := range w.ignored {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}

func (w *sourceWalker) isEligible(path string) bool {
	return w.extensions[strings.ToLower(filepath.Ext(path))]
}

// walk visits every eligible file under root and calls visit for each of its
// non-comment lines. Any listing or read error aborts the walk.
func (w *sourceWalker) walk(ctx context.Context, root m.Path, visit lineVisitor) error {
	stack := []m.Path{m.Path(filepath.Clean(string(root)))}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := w.fs.ReadDir(dir)
		if err != nil {
			return fmt.Errorf("read directory %s: %w", dir, err)
		}

		slog.Debug("Scanning directory", "path", dir, "entries", len(entries))

		var subdirs []m.Path

		for _, entry := range entries {
			path := w.fs.JoinPath(string(dir), entry.Name())

			if w.isIgnored(string(path)) {
				slog.Debug("Skipping ignored path", "path", path)
				continue
			}

			kind, err := w.classify(path, entry)
			if err != nil {
				return err
			}

			if kind == entryDir {
				subdirs = append(subdirs, path)
				continue
			}

			if kind == entrySkip || !w.isEligible(string(path)) {
				continue
			}

			if err := ctx.Err(); err != nil {
				return err
			}

			if err := w.visitFile(path, visit); err != nil {
				return err
			}
		}

		for i := len(subdirs) - 1; i >= 0; i-- {
			stack = append(stack, subdirs[i])
		}
	}

	return nil
}

type entryKind int

const (
	entryFile entryKind = iota
	entryDir
	entrySkip
)

// classify resolves symlinks so that linked files are scanned, but linked
// directories are never descended into.
func (w *sourceWalker) classify(path m.Path, entry os.DirEntry) (entryKind, error) {
	if entry.Type()&os.ModeSymlink == 0 {
		if entry.IsDir() {
			return entryDir, nil
		}

		return entryFile, nil
	}

	info, err := w.fs.FileInfo(path)
	if err != nil {
		return entrySkip, fmt.Errorf("stat %s: %w", path, err)
	}

	if info.IsDir() {
		slog.Debug("Skipping symlinked directory", "path", path)
		return entrySkip, nil
	}

	return entryFile, nil
}

func (w *sourceWalker) visitFile(path m.Path, visit lineVisitor) error {
	content, err := w.fs.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file %s: %w", path, err)
	}

	slog.Debug("Scanning file", "path", path, "bytes", len(content))

	for i, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if isCommentLine(line) {
			continue
		}

		visit(path, i+1, line)
	}

	return nil
}

// isCommentLine reports whether a line starts a line or block comment.
func isCommentLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "/*")
}
