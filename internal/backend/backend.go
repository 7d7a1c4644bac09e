// Package backend performs the individual filesystem operations the fixture
// engine is built from. Keeping them behind an interface lets tests inject
// failures at a precise point of a run.
package backend

// Backend defines the filesystem primitives used to build and tear down a
// fixture tree.
type Backend interface {
	// CreateDirectory creates path and any missing parents. An existing
	// directory is not an error.
	CreateDirectory(path string) error

	// CreateFile creates an empty file at path, truncating it if it already
	// exists. The parent directory must exist.
	CreateFile(path string) error

	// DeleteFile deletes a single file at the specified path.
	DeleteFile(path string) error

	// DeleteDirectory deletes an empty directory at the specified path.
	DeleteDirectory(path string) error
}

// Permission bits applied to created fixtures.
const (
	DirPerm  = 0755
	FilePerm = 0644
)

// NewBackend returns the backend used by the command line tool.
func NewBackend() Backend {
	return NewGenericBackend()
}
