// Package catalog holds the fixed naming sets the fixture generator draws from:
// episode filename templates, release tags, file extensions, folder names and
// filenames, each split into the side the renamer is expected to recognize and
// the side it is expected to ignore.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// ErrInvalidCatalog is wrapped by every error returned from Validate.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog is the complete set of inputs a fixture tree is built from.
// The yaml tags allow a catalog file to override individual sets.
type Catalog struct {
	// Templates are the valid episode naming conventions.
	Templates []Template `yaml:"templates"`

	// Checked inputs: the renamer is expected to act on these.
	WhitelistFolders    []string `yaml:"whitelist_folders"`
	WhitelistFilenames  []string `yaml:"whitelist_filenames"`
	BlacklistExtensions []string `yaml:"blacklist_extensions"`
	WhitelistTags       []string `yaml:"whitelist_tags"`

	// Unchecked inputs: the renamer is expected to leave these alone.
	NonWhitelistFolders    []string `yaml:"non_whitelist_folders"`
	NonWhitelistFilenames  []string `yaml:"non_whitelist_filenames"`
	NonBlacklistExtensions []string `yaml:"non_blacklist_extensions"`
	NonWhitelistTags       []string `yaml:"non_whitelist_tags"`
}

// Default returns the built-in catalog. Each call returns fresh slices, so
// callers may modify the result freely.
func Default() *Catalog {
	return &Catalog{
		Templates: []Template{
			"{title}s{season}e{episode}{name}{tags}{ext}",
			"{title}Season{season}Episode{episode}{name}{tags}{ext}",
			"{title}{season}x{episode}{name}{tags}{ext}",
			"{title}{season}{episode:02d}{name}{tags}{ext}",
		},
		WhitelistFolders:    []string{"Extras"},
		WhitelistFilenames:  []string{"series.json", "episodes.json"},
		BlacklistExtensions: []string{".nfo", ".exe"},
		WhitelistTags:       []string{"DC", "EXTENDED", "ALT", "ALTERNATE", "UNCUT"},

		NonWhitelistFolders:    []string{"UnknownFolder"},
		NonWhitelistFilenames:  []string{"some_random_text.txt", "a_random_picture.jpg"},
		NonBlacklistExtensions: []string{".txt", "", ".jpg"},
		NonWhitelistTags:       []string{"RES360p", "CODECh634x"},
	}
}

// Load reads a YAML catalog file. Keys present in the file replace the
// corresponding default set; absent keys keep the defaults. The merged
// catalog is validated before it is returned.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	cat := Default()
	if err := yaml.Unmarshal(data, cat); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}

	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return cat, nil
}

// RecognizedTags returns the whitelisted tags in bracketed form, e.g. "[DC][UNCUT]".
func (c *Catalog) RecognizedTags() string {
	return FormatTags(c.WhitelistTags)
}

// UnrecognizedTags returns the non-whitelisted tags in bracketed form.
func (c *Catalog) UnrecognizedTags() string {
	return FormatTags(c.NonWhitelistTags)
}

// FormatTags wraps every tag in square brackets and concatenates them.
func FormatTags(tags []string) string {
	return strings.Join(lo.Map(tags, func(tag string, _ int) string {
		return "[" + tag + "]"
	}), "")
}

// Validate checks that the catalog can produce a well-formed fixture tree.
// Every returned error wraps ErrInvalidCatalog.
func (c *Catalog) Validate() error {
	if len(c.Templates) == 0 {
		return invalid("templates must not be empty")
	}
	for _, tmpl := range c.Templates {
		if err := tmpl.Validate(); err != nil {
			return invalid("%v", err)
		}
	}
	if len(c.NonBlacklistExtensions) == 0 {
		return invalid("non_blacklist_extensions must not be empty")
	}

	lists := []struct {
		key    string
		values []string
		check  func(string) error
	}{
		{"whitelist_folders", c.WhitelistFolders, checkPathElement},
		{"whitelist_filenames", c.WhitelistFilenames, checkPathElement},
		{"blacklist_extensions", c.BlacklistExtensions, checkExtension},
		{"whitelist_tags", c.WhitelistTags, checkTag},
		{"non_whitelist_folders", c.NonWhitelistFolders, checkPathElement},
		{"non_whitelist_filenames", c.NonWhitelistFilenames, checkPathElement},
		{"non_blacklist_extensions", c.NonBlacklistExtensions, checkOptionalExtension},
		{"non_whitelist_tags", c.NonWhitelistTags, checkTag},
	}
	for _, l := range lists {
		if dups := lo.FindDuplicates(l.values); len(dups) > 0 {
			return invalid("%s contains duplicates: %v", l.key, dups)
		}
		for _, v := range l.values {
			if err := l.check(v); err != nil {
				return invalid("%s: %v", l.key, err)
			}
		}
	}

	if both := lo.Intersect(c.WhitelistTags, c.NonWhitelistTags); len(both) > 0 {
		return invalid("tags listed as both recognized and unrecognized: %v", both)
	}
	if both := lo.Intersect(c.BlacklistExtensions, c.NonBlacklistExtensions); len(both) > 0 {
		return invalid("extensions listed as both allowed and disallowed: %v", both)
	}
	if both := lo.Intersect(c.WhitelistFolders, c.NonWhitelistFolders); len(both) > 0 {
		return invalid("folders listed as both whitelisted and not: %v", both)
	}

	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidCatalog, fmt.Sprintf(format, args...))
}

func checkPathElement(s string) error {
	switch {
	case s == "", s == ".", s == "..":
		return fmt.Errorf("%q is not a usable file or folder name", s)
	case strings.ContainsAny(s, `/\`):
		return fmt.Errorf("%q must not contain a path separator", s)
	}
	return nil
}

func checkExtension(s string) error {
	if len(s) < 2 || s[0] != '.' {
		return fmt.Errorf("%q must be a dot followed by a suffix", s)
	}
	return checkPathElement(s)
}

// checkOptionalExtension accepts the empty extension, which stands for a
// file with no suffix at all.
func checkOptionalExtension(s string) error {
	if s == "" {
		return nil
	}
	return checkExtension(s)
}

func checkTag(s string) error {
	if s == "" || strings.ContainsAny(s, `[]/\`) {
		return fmt.Errorf("%q is not a usable tag", s)
	}
	return nil
}
