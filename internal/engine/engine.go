// Package engine turns enumerated fixture paths into files on disk and tears a
// previously generated tree down again. All work is sequential: one directory
// or file operation at a time, stopping at the first failure.
package engine

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"path/filepath"
	"time"

	"github.com/yourusername/rename-fixtures/internal/backend"
	"github.com/yourusername/rename-fixtures/internal/logger"
	"github.com/yourusername/rename-fixtures/internal/scanner"
)

// ErrUnsafePath is returned for a relative fixture path that is absolute or
// climbs out of its series directory.
var ErrUnsafePath = errors.New("fixture path escapes series directory")

// SeriesPrefix is the name prefix of every top-level series directory.
const SeriesPrefix = "series_"

// Engine writes fixture trees through a Backend.
type Engine struct {
	backend          backend.Backend
	progressCallback func(path string)
}

// Result describes one materialized series.
type Result struct {
	SeriesDir       string  // root joined with the series label
	CreatedCount    int     // Number of files created or truncated
	DurationSeconds float64 // Time spent on the series
}

// ResetResult describes a completed reset.
type ResetResult struct {
	Existed         bool    // False when the root was already absent
	DeletedCount    int     // Files and directories removed, root included
	DurationSeconds float64 // Time spent on the reset
}

// FileError records the filesystem operation that stopped a run.
type FileError struct {
	Op   string // e.g. "create file", "delete directory"
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// NewEngine creates an Engine.
//
// Parameters:
//   - backend: filesystem primitives to use
//   - progressCallback: called with the full path of every created file,
//     after the file exists; may be nil
func NewEngine(backend backend.Backend, progressCallback func(path string)) *Engine {
	return &Engine{
		backend:          backend,
		progressCallback: progressCallback,
	}
}

// SeriesName returns the directory label of the i-th series.
func SeriesName(i int) string {
	return fmt.Sprintf("%s%d", SeriesPrefix, i)
}

// Materialize creates an empty file for every relative path in paths below
// root/series. Missing parent directories are created first and existing
// files are truncated, so a path repeated within or across runs simply
// overwrites. The first failure aborts the series and is returned as a
// *FileError; files created before it stay on disk.
func (e *Engine) Materialize(root, series string, paths iter.Seq[string]) (*Result, error) {
	start := time.Now()
	result := &Result{SeriesDir: filepath.Join(root, series)}

	logger.Info("Generating series %s", result.SeriesDir)

	for rel := range paths {
		if !filepath.IsLocal(rel) {
			return result, &FileError{Op: "create file", Path: rel, Err: ErrUnsafePath}
		}

		full := filepath.Join(result.SeriesDir, rel)
		parent := filepath.Dir(full)

		if err := e.backend.CreateDirectory(parent); err != nil {
			logger.LogFileError("create directory", parent, err)
			return result, &FileError{Op: "create directory", Path: parent, Err: err}
		}
		if err := e.backend.CreateFile(full); err != nil {
			logger.LogFileError("create file", full, err)
			return result, &FileError{Op: "create file", Path: full, Err: err}
		}

		result.CreatedCount++
		if e.progressCallback != nil {
			e.progressCallback(full)
		}
	}

	result.DurationSeconds = time.Since(start).Seconds()
	logger.Debug("Series %s: %d files in %.3f seconds", series, result.CreatedCount, result.DurationSeconds)

	return result, nil
}

// Reset removes root and everything below it. A missing root is not an
// error. Entries that disappear while the reset runs are skipped; any other
// failure aborts and is returned as a *FileError.
func (e *Engine) Reset(root string) (*ResetResult, error) {
	start := time.Now()
	result := &ResetResult{}

	scan, err := scanner.NewScanner(root).Scan()
	if err != nil {
		return result, err
	}
	if !scan.RootExists {
		logger.Info("Nothing to reset: %s does not exist", root)
		return result, nil
	}
	result.Existed = true

	logger.Info("Resetting %s (%d files, %d directories)", root, scan.TotalFiles, scan.TotalDirs)

	for i, path := range scan.Files {
		op, remove := "delete file", e.backend.DeleteFile
		if i >= scan.TotalFiles {
			op, remove = "delete directory", e.backend.DeleteDirectory
		}

		if err := remove(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				logger.LogFileWarning(path, "already removed")
				continue
			}
			logger.LogFileError(op, path, err)
			return result, &FileError{Op: op, Path: path, Err: err}
		}
		result.DeletedCount++
	}

	result.DurationSeconds = time.Since(start).Seconds()
	logger.Info("Reset complete: %d entries removed in %.2f seconds", result.DeletedCount, result.DurationSeconds)

	return result, nil
}
