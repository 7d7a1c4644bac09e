// Package internal provides integration tests for the fixture generator.
// These tests drive the complete workflow across packages: catalog, path
// enumeration, reset guard, reset, materialization and inventory.
package internal

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/yourusername/rename-fixtures/internal/backend"
	"github.com/yourusername/rename-fixtures/internal/catalog"
	"github.com/yourusername/rename-fixtures/internal/engine"
	"github.com/yourusername/rename-fixtures/internal/generator"
	"github.com/yourusername/rename-fixtures/internal/safety"
	"github.com/yourusername/rename-fixtures/internal/scanner"
	"github.com/yourusername/rename-fixtures/internal/testutil"
)

// generateTree resets root and generates series directories into it, the way
// the CLI does. Returns the full paths reported by the engine.
func generateTree(t *testing.T, root string, cat *catalog.Catalog, seed uint64, series int, opts generator.Options) []string {
	t.Helper()

	if isSafe, reason := safety.IsSafeResetTarget(root); !isSafe {
		t.Fatalf("Reset target rejected: %s", reason)
	}

	var reported []string
	eng := engine.NewEngine(backend.NewBackend(), func(path string) {
		reported = append(reported, path)
	})

	if _, err := eng.Reset(root); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	rng := generator.NewRand(seed)
	for i := range series {
		if _, err := eng.Materialize(root, engine.SeriesName(i), generator.New(rng, cat, opts).Paths()); err != nil {
			t.Fatalf("Materialize %d failed: %v", i, err)
		}
	}
	return reported
}

// Integration Test 1: End-to-End Generation Workflow
func TestEndToEndGenerationWorkflow(t *testing.T) {
	defer testutil.RequireWithinBudget(t, time.Now())

	root := filepath.Join(t.TempDir(), "tests")
	testutil.SeedTree(t, root, map[string]string{
		"series_0/from_last_run.txt": "stale",
		"notes/readme.md":            "stale",
	})

	cat := catalog.Default()
	opts := generator.Options{TotalSamples: 3}
	reported := generateTree(t, root, cat, 2024, 3, opts)

	if want := 3 * generator.Count(cat, opts); len(reported) != want {
		t.Fatalf("Reported %d paths, want %d", len(reported), want)
	}

	// Every reported path is an empty file below its series directory.
	for _, path := range reported {
		testutil.RequireZeroByteFile(t, path)
		rel, err := filepath.Rel(root, path)
		if err != nil || !strings.HasPrefix(rel, engine.SeriesPrefix) {
			t.Errorf("Path %s is not inside a series directory", path)
		}
	}

	scanResult, err := scanner.NewScanner(root).Scan()
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	distinct := map[string]bool{}
	for _, path := range reported {
		distinct[path] = true
	}
	if scanResult.TotalFiles != len(distinct) {
		t.Errorf("Tree holds %d files, want the %d distinct reported paths", scanResult.TotalFiles, len(distinct))
	}
	if scanResult.TotalSizeBytes != 0 {
		t.Errorf("Fixture files must be empty, total size is %d", scanResult.TotalSizeBytes)
	}

	// Each series has exactly series_<i> and series_<i>/Extras as directories.
	if scanResult.TotalDirs != 3*(1+len(cat.WhitelistFolders)) {
		t.Errorf("Expected %d directories, got %d", 3*(1+len(cat.WhitelistFolders)), scanResult.TotalDirs)
	}

	if _, err := os.Stat(filepath.Join(root, "notes")); !errors.Is(err, os.ErrNotExist) {
		t.Error("Reset should have removed files from the previous run")
	}
}

// Integration Test 2: Fixed files per series
func TestFixedFilesPerSeries(t *testing.T) {
	root := filepath.Join(t.TempDir(), "tests")
	cat := catalog.Default()
	generateTree(t, root, cat, 99, 4, generator.Options{TotalSamples: 2})

	for i := range 4 {
		seriesDir := filepath.Join(root, engine.SeriesName(i))

		for _, ext := range cat.BlacklistExtensions {
			testutil.RequireZeroByteFile(t, filepath.Join(seriesDir, generator.BlacklistedBaseName+ext))
		}

		for _, folder := range cat.WhitelistFolders {
			entries, err := os.ReadDir(filepath.Join(seriesDir, folder))
			if err != nil {
				t.Fatalf("Failed to read %s: %v", folder, err)
			}
			if len(entries) != 1 {
				t.Errorf("%s/%s holds %d entries, want 1", engine.SeriesName(i), folder, len(entries))
			}
		}
	}
}

// Integration Test 3: Different catalogs
func TestVariousCatalogs(t *testing.T) {
	zeroPadded := catalog.Default()
	zeroPadded.Templates = []catalog.Template{"{title}{season}{episode:02d}{name}{tags}{ext}"}

	yamlFile := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(yamlFile, []byte(
		"non_blacklist_extensions: [\".mkv\", \".srt\"]\nwhitelist_tags: [DC]\nwhitelist_folders: [Extras, Featurettes]\n",
	), 0644); err != nil {
		t.Fatalf("Failed to write catalog: %v", err)
	}
	fromYAML, err := catalog.Load(yamlFile)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	tests := []struct {
		name string
		cat  *catalog.Catalog
		opts generator.Options
	}{
		{"default", catalog.Default(), generator.Options{TotalSamples: 2}},
		{"extended", catalog.Default(), generator.Options{TotalSamples: 2, Extended: true}},
		{"zero padded", zeroPadded, generator.Options{TotalSamples: 5}},
		{"yaml override", fromYAML, generator.Options{TotalSamples: 1}},
		{"no samples", catalog.Default(), generator.Options{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := filepath.Join(t.TempDir(), "tests")
			reported := generateTree(t, root, tt.cat, 5, 2, tt.opts)

			if want := 2 * generator.Count(tt.cat, tt.opts); len(reported) != want {
				t.Errorf("Reported %d paths, want %d", len(reported), want)
			}
			for _, path := range reported {
				testutil.RequireZeroByteFile(t, path)
			}
			for _, folder := range tt.cat.WhitelistFolders {
				testutil.RequireZeroByteFile(t, filepath.Join(root, "series_1", folder, generator.WhitelistedFileName))
			}
		})
	}
}

// Integration Test 4: Season and episode ranges on disk
func TestSeasonEpisodeRangesOnDisk(t *testing.T) {
	root := filepath.Join(t.TempDir(), "tests")
	cat := catalog.Default()
	cat.Templates = cat.Templates[:1]
	reported := generateTree(t, root, cat, 31337, 2, generator.Options{TotalSamples: 10})

	re := regexp.MustCompile(`^(?:_title_\d+_)?s(\d+)e(\d+)`)
	matched := 0
	for _, path := range reported {
		m := re.FindStringSubmatch(filepath.Base(path))
		if m == nil {
			continue
		}
		matched++
		season, _ := strconv.Atoi(m[1])
		episode, _ := strconv.Atoi(m[2])
		if season > generator.MaxSeason || episode > generator.MaxEpisode {
			t.Errorf("Out of range fields in %s", path)
		}
	}
	if matched == 0 {
		t.Fatal("No episode names were generated")
	}
}

// Integration Test 5: Error scenarios
func TestErrorScenarios(t *testing.T) {
	t.Run("reset target is a file", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "tests")
		if err := os.WriteFile(target, nil, 0644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
		if isSafe, _ := safety.IsSafeResetTarget(target); isSafe {
			t.Error("A regular file must not be accepted as reset target")
		}
	})

	t.Run("failure aborts mid series", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "tests")
		fb := testutil.NewFaultBackend("create", "blacklisted_extension.exe")
		eng := engine.NewEngine(fb, nil)

		cat := catalog.Default()
		result, err := eng.Materialize(root, "series_0", generator.New(generator.NewRand(1), cat, generator.Options{TotalSamples: 1}).Paths())
		if !errors.Is(err, testutil.ErrInjected) {
			t.Fatalf("Expected injected failure, got %v", err)
		}

		// .exe is the last fixed file, so everything before it exists.
		if want := generator.Count(cat, generator.Options{TotalSamples: 1}) - 1; result.CreatedCount != want {
			t.Errorf("Created %d files before failing, want %d", result.CreatedCount, want)
		}
	})

	t.Run("output below a regular file", func(t *testing.T) {
		blocker := filepath.Join(t.TempDir(), "blocker")
		if err := os.WriteFile(blocker, nil, 0644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}

		eng := engine.NewEngine(backend.NewBackend(), nil)
		_, err := eng.Materialize(blocker, "series_0", generator.New(generator.NewRand(1), catalog.Default(), generator.Options{TotalSamples: 1}).Paths())

		var fileErr *engine.FileError
		if !errors.As(err, &fileErr) || fileErr.Op != "create directory" {
			t.Fatalf("Expected a create directory failure, got %v", err)
		}
	})
}
