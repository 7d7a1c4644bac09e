package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// Placeholders understood by Template.Render.
const (
	PlaceholderTitle     = "{title}"
	PlaceholderSeason    = "{season}"
	PlaceholderEpisode   = "{episode}"
	PlaceholderEpisode02 = "{episode:02d}"
	PlaceholderName      = "{name}"
	PlaceholderTags      = "{tags}"
	PlaceholderExt       = "{ext}"
)

// Template is an episode filename pattern, e.g. "{title}s{season}e{episode}{name}{tags}{ext}".
type Template string

// Fields are the values substituted into a Template.
type Fields struct {
	Title   string
	Season  int
	Episode int
	Name    string
	Tags    string
	Ext     string
}

// Render substitutes every placeholder in t. {episode:02d} renders the
// episode number zero-padded to two digits.
func (t Template) Render(f Fields) string {
	r := strings.NewReplacer(
		PlaceholderTitle, f.Title,
		PlaceholderSeason, strconv.Itoa(f.Season),
		PlaceholderEpisode02, fmt.Sprintf("%02d", f.Episode),
		PlaceholderEpisode, strconv.Itoa(f.Episode),
		PlaceholderName, f.Name,
		PlaceholderTags, f.Tags,
		PlaceholderExt, f.Ext,
	)
	return r.Replace(string(t))
}

// Validate reports whether t can render a plain filename.
func (t Template) Validate() error {
	s := string(t)
	if !strings.Contains(s, PlaceholderExt) {
		return fmt.Errorf("template %q has no %s placeholder", s, PlaceholderExt)
	}
	if !strings.Contains(s, PlaceholderSeason) {
		return fmt.Errorf("template %q has no %s placeholder", s, PlaceholderSeason)
	}
	if !strings.Contains(s, PlaceholderEpisode) && !strings.Contains(s, PlaceholderEpisode02) {
		return fmt.Errorf("template %q has no episode placeholder", s)
	}
	if strings.ContainsAny(s, `/\`) {
		return fmt.Errorf("template %q must not contain a path separator", s)
	}
	return nil
}
