// Package fsutil provides file system helpers for dailyreport.
// It handles input reading with categorized errors, output path checks, atomic
// writes, and sidecar backups of outputs that are about to be replaced.
package fsutil

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNotFound indicates the file or directory does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrNotDirectory indicates an output's parent path exists but is not a directory.
	ErrNotDirectory = errors.New("parent is not a directory")
)

// ReadFile reads the whole file at path.
// Missing files, permission problems, and directories are reported with the
// matching sentinel error wrapped alongside the underlying cause.
func ReadFile(ctx context.Context, path string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("read file: %w", ctx.Err())
	default:
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, classify(path, "stat", err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, classify(path, "read", err)
	}

	return content, nil
}

// CheckOutputPath verifies that a file could be created at path: the parent
// directory must exist and path itself must not be a directory.
// It does not create anything.
func CheckOutputPath(path string) error {
	if stat, err := os.Stat(path); err == nil && stat.IsDir() {
		return fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	dir := filepath.Dir(path)
	stat, err := os.Stat(dir)
	if err != nil {
		return classify(dir, "stat output directory", err)
	}
	if !stat.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	return nil
}

// Exists reports whether a regular file or directory exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func classify(path, op string, err error) error {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	case errors.Is(err, os.ErrPermission):
		return fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
	default:
		return fmt.Errorf("%s %s: %w", op, path, err)
	}
}
