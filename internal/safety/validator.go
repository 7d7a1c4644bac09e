// Package safety guards the --reset operation. A reset removes the output
// directory without asking, so obviously wrong targets are refused up front:
// drive roots, system directories, the home directory and anything that
// contains the current working directory.
package safety

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/yourusername/rename-fixtures/internal/logger"
)

// ProtectedPaths contains system-critical paths that must never be reset.
// A target equal to one of them, or containing one of them, is refused.
var ProtectedPaths = []string{
	"C:\\Windows",
	"C:\\Program Files",
	"C:\\Program Files (x86)",
	"C:\\ProgramData",
	"C:\\Users",
	"C:\\System Volume Information",
	"/bin",
	"/sbin",
	"/usr",
	"/lib",
	"/lib64",
	"/etc",
	"/boot",
	"/sys",
	"/proc",
	"/dev",
}

// IsSafeResetTarget reports whether path may be deleted recursively.
// A path that does not exist is safe: the reset is then a no-op.
//
// Returns (isSafe, reason) where reason explains why the path is unsafe.
func IsSafeResetTarget(path string) (bool, string) {
	if strings.TrimSpace(path) == "" {
		return false, "no directory given"
	}

	absPath, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		logger.Warning("Cannot resolve absolute path for: %s (error: %v)", path, err)
		return false, fmt.Sprintf("cannot resolve absolute path: %v", err)
	}

	logger.Debug("Validating reset target: %s", absPath)

	if isDriveRoot(absPath) {
		logger.Warning("Reset target is a drive root: %s", absPath)
		return false, "refusing to reset a drive root"
	}

	for _, protected := range ProtectedPaths {
		// Drive-letter entries are relative paths outside Windows.
		if !filepath.IsAbs(protected) {
			continue
		}
		protectedAbs := filepath.Clean(protected)
		if pathsMatch(absPath, protectedAbs) {
			logger.Warning("Reset target is a protected system directory: %s", absPath)
			return false, fmt.Sprintf("path is protected system directory: %s", protected)
		}
		if isParentOf(absPath, protectedAbs) {
			logger.Warning("Reset target contains protected system directory: %s (contains %s)", absPath, protected)
			return false, fmt.Sprintf("path contains protected system directory: %s", protected)
		}
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		if pathsMatch(absPath, home) || isParentOf(absPath, home) {
			logger.Warning("Reset target contains the home directory: %s", absPath)
			return false, "path is or contains the home directory"
		}
	}

	if wd, err := os.Getwd(); err == nil {
		if pathsMatch(absPath, wd) || isParentOf(absPath, wd) {
			logger.Warning("Reset target contains the working directory: %s", absPath)
			return false, "path is or contains the current working directory"
		}
	}

	info, err := os.Lstat(absPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Debug("Reset target does not exist yet: %s", absPath)
		return true, ""
	case err != nil:
		logger.Warning("Cannot access reset target: %s (error: %v)", absPath, err)
		return false, fmt.Sprintf("cannot access path: %v", err)
	case !info.IsDir():
		logger.Warning("Reset target is not a directory: %s", absPath)
		return false, "path is not a directory"
	}

	logger.Debug("Reset target is safe: %s", absPath)
	return true, ""
}

// isDriveRoot checks if a path is a drive root (e.g. C:\, D:\, /).
func isDriveRoot(path string) bool {
	cleanPath := filepath.Clean(path)

	if runtime.GOOS == "windows" {
		if len(cleanPath) == 3 && cleanPath[1] == ':' && (cleanPath[2] == '\\' || cleanPath[2] == '/') {
			return true
		}
		return len(cleanPath) == 2 && cleanPath[1] == ':'
	}
	return cleanPath == "/"
}

// isParentOf checks if parent is a strict ancestor of child.
// The comparison is case-insensitive on Windows and case-sensitive elsewhere.
func isParentOf(parent, child string) bool {
	parent = filepath.Clean(parent)
	child = filepath.Clean(child)

	if !strings.HasSuffix(parent, string(filepath.Separator)) {
		parent += string(filepath.Separator)
	}

	if runtime.GOOS == "windows" {
		return strings.HasPrefix(strings.ToLower(child), strings.ToLower(parent))
	}
	return strings.HasPrefix(child, parent)
}

// pathsMatch compares two cleaned paths, ignoring case on Windows.
func pathsMatch(path1, path2 string) bool {
	clean1 := filepath.Clean(path1)
	clean2 := filepath.Clean(path2)

	if runtime.GOOS == "windows" {
		return strings.EqualFold(clean1, clean2)
	}
	return clean1 == clean2
}
