// Package scanner inventories an existing fixture tree. The result lists every
// entry in an order that can be removed one by one: files first, then
// directories deepest first, then the root itself.
package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/yourusername/rename-fixtures/internal/logger"
)

// Scanner walks a single root directory.
type Scanner struct {
	rootPath string
}

// ScanResult contains the inventory of a directory tree.
type ScanResult struct {
	Files          []string // Files, then directories deepest first, then the root (bottom-up order)
	TotalFiles     int      // Number of non-directory entries below the root
	TotalDirs      int      // Number of directories below the root
	TotalSizeBytes int64    // Combined size of all files
	RootExists     bool     // False when the root was absent; Files is then empty
}

// NewScanner creates a Scanner for rootPath.
func NewScanner(rootPath string) *Scanner {
	return &Scanner{rootPath: rootPath}
}

// Scan walks the tree below the root. A missing root is not an error: the
// result is empty and RootExists is false. Unlike a deletion scan, an entry
// that cannot be read aborts the walk, because an incomplete inventory would
// make a reset silently partial.
func (s *Scanner) Scan() (*ScanResult, error) {
	logger.Debug("Scanning fixture tree: %s", s.rootPath)

	result := &ScanResult{Files: make([]string, 0)}
	directories := make([]string, 0)

	err := filepath.WalkDir(s.rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == s.rootPath && errors.Is(err, fs.ErrNotExist) {
				return fs.SkipAll
			}
			return err
		}

		if path == s.rootPath {
			result.RootExists = true
			return nil
		}

		if d.IsDir() {
			result.TotalDirs++
			directories = append(directories, path)
			return nil
		}

		result.TotalFiles++
		result.Files = append(result.Files, path)
		if info, err := d.Info(); err == nil {
			result.TotalSizeBytes += info.Size()
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan directory %s: %w", s.rootPath, err)
	}

	if !result.RootExists {
		logger.Debug("Fixture tree does not exist: %s", s.rootPath)
		return result, nil
	}

	// WalkDir visits parents before children, so reversing gives deepest first.
	for i := len(directories) - 1; i >= 0; i-- {
		result.Files = append(result.Files, directories[i])
	}
	result.Files = append(result.Files, s.rootPath)

	logger.Debug("Scan complete: %d files, %d directories, %d bytes",
		result.TotalFiles, result.TotalDirs, result.TotalSizeBytes)

	return result, nil
}
