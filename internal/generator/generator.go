// Package generator enumerates the relative file paths of one fixture series.
// Episode names are rendered from the catalog templates with randomly drawn
// fields; the random source is injected so a seed reproduces a tree exactly.
package generator

import (
	"iter"
	"math/rand/v2"
	"path/filepath"

	"github.com/yourusername/rename-fixtures/internal/catalog"
	"github.com/yourusername/rename-fixtures/internal/logger"
)

// Field ranges are deliberately narrow so that a series contains colliding
// season/episode pairs for the renamer's conflict handling.
const (
	MaxSeason  = 5
	MaxEpisode = 10
)

// Fixed names of the non-episode fixtures.
const (
	WhitelistedFileName    = "whitelisted_file.txt"
	NonWhitelistedFileName = "non_whitelisted_file.txt"
	BlacklistedBaseName    = "blacklisted_extension"
)

// Token prefixes for the optional title and name fields.
const (
	TitlePrefix = "title"
	NamePrefix  = "name"
)

// Options controls the size and content of a series.
type Options struct {
	// TotalSamples is how many times every template/extension pair is
	// rendered. Each repetition yields three names (no tags, recognized
	// tags, unrecognized tags).
	TotalSamples int

	// Extended adds the whitelisted filenames and the non-whitelisted
	// folders and filenames to the series.
	Extended bool
}

// Generator produces the paths of a single series. It is not safe for
// concurrent use.
type Generator struct {
	rng     *rand.Rand
	catalog *catalog.Catalog
	opts    Options
	titles  *TokenGenerator
	names   *TokenGenerator
}

// New creates a Generator drawing from rng. The token counters start at zero.
func New(rng *rand.Rand, cat *catalog.Catalog, opts Options) *Generator {
	return &Generator{
		rng:     rng,
		catalog: cat,
		opts:    opts,
		titles:  NewTokenGenerator(TitlePrefix),
		names:   NewTokenGenerator(NamePrefix),
	}
}

// NewRand returns a PCG-backed source for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Paths returns the relative paths of the series in generation order.
// The sequence is finite but not restartable: ranging over it a second time
// draws new random fields and continues the token counters.
func (g *Generator) Paths() iter.Seq[string] {
	return func(yield func(string) bool) {
		tagVariants := []string{"", g.catalog.RecognizedTags(), g.catalog.UnrecognizedTags()}

		for _, tmpl := range g.catalog.Templates {
			logger.Debug("Rendering template %s", tmpl)
			for range g.opts.TotalSamples {
				for _, ext := range g.catalog.NonBlacklistExtensions {
					for _, tags := range tagVariants {
						fields := g.drawFields()
						fields.Tags = tags
						fields.Ext = ext
						if !yield(tmpl.Render(fields)) {
							return
						}
					}
				}
			}
		}
		logger.Debug("Issued %d title and %d name tokens", g.titles.Issued(), g.names.Issued())

		for _, folder := range g.catalog.WhitelistFolders {
			if !yield(filepath.Join(folder, WhitelistedFileName)) {
				return
			}
		}

		for _, ext := range g.catalog.BlacklistExtensions {
			if !yield(BlacklistedBaseName + ext) {
				return
			}
		}

		if !g.opts.Extended {
			return
		}

		for _, name := range g.catalog.WhitelistFilenames {
			if !yield(name) {
				return
			}
		}
		for _, folder := range g.catalog.NonWhitelistFolders {
			if !yield(filepath.Join(folder, NonWhitelistedFileName)) {
				return
			}
		}
		for _, name := range g.catalog.NonWhitelistFilenames {
			if !yield(name) {
				return
			}
		}
	}
}

// drawFields draws the random parts of one episode name. The draw order is
// title, season, episode, name.
func (g *Generator) drawFields() catalog.Fields {
	var f catalog.Fields
	if g.coinFlip() {
		f.Title = g.titles.Next()
	}
	f.Season = g.rng.IntN(MaxSeason + 1)
	f.Episode = g.rng.IntN(MaxEpisode + 1)
	if g.coinFlip() {
		f.Name = g.names.Next()
	}
	return f
}

func (g *Generator) coinFlip() bool {
	return g.rng.Float64() > 0.5
}

// Count returns the number of paths one series yields for cat and opts.
func Count(cat *catalog.Catalog, opts Options) int {
	n := len(cat.Templates)*opts.TotalSamples*len(cat.NonBlacklistExtensions)*3 +
		len(cat.WhitelistFolders) +
		len(cat.BlacklistExtensions)
	if opts.Extended {
		n += len(cat.WhitelistFilenames) + len(cat.NonWhitelistFolders) + len(cat.NonWhitelistFilenames)
	}
	return n
}
