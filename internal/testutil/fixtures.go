package testutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/yourusername/rename-fixtures/internal/backend"
)

// ErrInjected is returned by FaultBackend for every operation it refuses.
var ErrInjected = errors.New("injected failure")

// SeedTree creates the given files (relative path to content) below root.
func SeedTree(t *testing.T, root string, files map[string]string) {
	t.Helper()

	for rel, content := range files {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create directory for %s: %v", path, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to create file %s: %v", path, err)
		}
	}
}

// ListFiles returns every non-directory entry below root as a sorted list of
// slash-separated paths relative to root. A missing root yields nil.
func ListFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root && errors.Is(err, fs.ErrNotExist) {
				return fs.SkipAll
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	sort.Strings(files)
	return files, err
}

// CountFiles recursively counts all files in a directory.
func CountFiles(root string) (int, error) {
	files, err := ListFiles(root)
	return len(files), err
}

// Fataler is the part of a test handle that the Require helpers use. Both
// *testing.T and *rapid.T satisfy it, so the helpers work inside properties.
type Fataler interface {
	Helper()
	Fatalf(format string, args ...any)
}

// RequireZeroByteFile fails the test unless path is an existing empty regular file.
func RequireZeroByteFile(t Fataler, path string) {
	t.Helper()

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Expected file %s: %v", path, err)
		return
	}
	if !info.Mode().IsRegular() {
		t.Fatalf("Expected regular file at %s, got mode %v", path, info.Mode())
		return
	}
	if info.Size() != 0 {
		t.Fatalf("Expected zero-byte file at %s, got %d bytes", path, info.Size())
	}
}

// FaultBackend wraps a Backend and fails any operation whose path matches
// FailOn. Calls records every path it was asked to operate on, in order.
type FaultBackend struct {
	Inner  backend.Backend
	FailOn func(op, path string) bool
	Calls  []string
}

// NewFaultBackend fails every operation op whose path contains fragment.
func NewFaultBackend(op, fragment string) *FaultBackend {
	return &FaultBackend{
		Inner: backend.NewGenericBackend(),
		FailOn: func(gotOp, path string) bool {
			return gotOp == op && strings.Contains(path, fragment)
		},
	}
}

func (f *FaultBackend) check(op, path string) error {
	f.Calls = append(f.Calls, op+" "+path)
	if f.FailOn != nil && f.FailOn(op, path) {
		return &fs.PathError{Op: op, Path: path, Err: ErrInjected}
	}
	return nil
}

// CreateDirectory implements backend.Backend.
func (f *FaultBackend) CreateDirectory(path string) error {
	if err := f.check("mkdir", path); err != nil {
		return err
	}
	return f.Inner.CreateDirectory(path)
}

// CreateFile implements backend.Backend.
func (f *FaultBackend) CreateFile(path string) error {
	if err := f.check("create", path); err != nil {
		return err
	}
	return f.Inner.CreateFile(path)
}

// DeleteFile implements backend.Backend.
func (f *FaultBackend) DeleteFile(path string) error {
	if err := f.check("unlink", path); err != nil {
		return err
	}
	return f.Inner.DeleteFile(path)
}

// DeleteDirectory implements backend.Backend.
func (f *FaultBackend) DeleteDirectory(path string) error {
	if err := f.check("rmdir", path); err != nil {
		return err
	}
	return f.Inner.DeleteDirectory(path)
}
