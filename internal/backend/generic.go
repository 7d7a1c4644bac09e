package backend

import (
	"fmt"
	"os"

	"github.com/yourusername/rename-fixtures/internal/logger"
)

// GenericBackend implements Backend with the os package. It works the same on
// every platform Go supports.
type GenericBackend struct{}

// NewGenericBackend creates a new generic cross-platform backend.
func NewGenericBackend() *GenericBackend {
	return &GenericBackend{}
}

// CreateDirectory creates path with os.MkdirAll.
func (b *GenericBackend) CreateDirectory(path string) error {
	if err := os.MkdirAll(path, DirPerm); err != nil {
		logger.Debug("os.MkdirAll failed for directory: %s (error: %v)", path, err)
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}

// CreateFile opens path with O_CREATE|O_TRUNC and closes it immediately, which
// leaves a zero-byte file whether or not one existed before.
func (b *GenericBackend) CreateFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, FilePerm)
	if err != nil {
		logger.Debug("os.OpenFile failed for file: %s (error: %v)", path, err)
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close file %s: %w", path, err)
	}
	return nil
}

// DeleteFile deletes a single file using os.Remove.
func (b *GenericBackend) DeleteFile(path string) error {
	if err := os.Remove(path); err != nil {
		logger.Debug("os.Remove failed for file: %s (error: %v)", path, err)
		return fmt.Errorf("failed to delete file %s: %w", path, err)
	}
	return nil
}

// DeleteDirectory deletes an empty directory using os.Remove.
func (b *GenericBackend) DeleteDirectory(path string) error {
	if err := os.Remove(path); err != nil {
		logger.Debug("os.Remove failed for directory: %s (error: %v)", path, err)
		return fmt.Errorf("failed to delete directory %s: %w", path, err)
	}
	return nil
}
