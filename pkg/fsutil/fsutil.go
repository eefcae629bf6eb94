// Package fsutil reads Markdown sources and writes rendered output for the
// gomdkit batch runner. Output files are written atomically and mirror the
// layout of their sources under an output directory.
package fsutil

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultDirMode is the permission mode for created output directories.
const DefaultDirMode os.FileMode = 0o755

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")
)

// ReadFile reads a source file, classifying common failures with the
// package sentinels.
func ReadFile(ctx context.Context, path string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("read file: %w", ctx.Err())
	default:
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, classify(path, err)
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, classify(path, err)
	}
	return content, nil
}

func classify(path string, err error) error {
	switch {
	case os.IsNotExist(err):
		return fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	case os.IsPermission(err):
		return fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
	default:
		return fmt.Errorf("read %s: %w", path, err)
	}
}

// OutputPath maps src, relative to root, to a path under outDir with its
// extension replaced by ext. "docs/a.md" under root "." with outDir
// "site" and ext ".html" becomes "site/docs/a.html".
func OutputPath(root, src, outDir, ext string) (string, error) {
	rel, err := filepath.Rel(root, src)
	if err != nil {
		return "", fmt.Errorf("relative path of %s: %w", src, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		// Sources outside the root keep only their base name.
		rel = filepath.Base(src)
	}

	rel = strings.TrimSuffix(rel, filepath.Ext(rel)) + ext
	return filepath.Join(outDir, rel), nil
}

// WriteOutput writes content to path atomically, creating parent
// directories as needed. It reports whether the file changed.
func WriteOutput(ctx context.Context, path string, content []byte) (bool, error) {
	if err := os.MkdirAll(filepath.Dir(path), DefaultDirMode); err != nil {
		return false, fmt.Errorf("create output directory: %w", err)
	}
	return WriteAtomicIfChanged(ctx, path, content, DefaultFileMode)
}
