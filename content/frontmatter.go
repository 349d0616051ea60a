// Package content loads a tree of Markdown lessons from an fs.FS and renders
// individual pages. Front matter may be TOML delimited by "+++" or YAML
// delimited by "---".
package content

import (
	"fmt"
	"io/fs"
	"regexp"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// FrontMatter holds data scraped from a Markdown page.
type FrontMatter struct {
	Title      string    `toml:"title" yaml:"title"`           // Title of this page
	Date       time.Time `toml:"date" yaml:"date"`             // Date the page appears
	Weight     int       `toml:"weight" yaml:"weight"`         // Sidebar order among siblings
	Template   string    `toml:"template" yaml:"template"`     // The name of the template to use
	Tags       []string  `toml:"tags" yaml:"tags"`             // Tags to assign to this page
	Hidden     bool      `toml:"hidden" yaml:"hidden"`         // Omit the page and its subtree from the sidebar
	Separator  bool      `toml:"separator" yaml:"separator"`   // Render as an inert grouping label
	AlwaysOpen *bool     `toml:"alwaysopen" yaml:"alwaysopen"` // Override the sidebar's default expansion
	Expires    Duration  `toml:"expires" yaml:"expires"`       // Use for pages that need an Expires header
	Redirect   string    `toml:"redirect" yaml:"redirect"`     // Issue a redirect to another location
}

var (
	tomlRegexp = regexp.MustCompile(`(?m)^\s*\+\+\+\s*$`)
	yamlRegexp = regexp.MustCompile(`(?m)^\s*---\s*$`)
)

// extractFrontMatter splits the front matter and Markdown content, reporting
// which format the front matter is in ("toml", "yaml", or "").
func extractFrontMatter(x []byte) (fm []byte, format string, r []byte) {
	for _, d := range []struct {
		re     *regexp.Regexp
		format string
	}{{tomlRegexp, "toml"}, {yamlRegexp, "yaml"}} {
		subs := d.re.Split(string(x), 3)
		if len(subs) != 3 {
			continue
		}
		if s := strings.TrimSpace(subs[0]); len(s) > 0 {
			continue
		}
		return []byte(strings.TrimSpace(subs[1])), d.format, []byte(strings.TrimSpace(subs[2]))
	}
	return nil, "", x
}

// unmarshalFrontMatter decodes fm in the given format.
func unmarshalFrontMatter(fm []byte, format string, out *FrontMatter) error {
	var err error
	switch format {
	case "toml":
		err = toml.Unmarshal(fm, out)
	case "yaml":
		err = yaml.Unmarshal(fm, out)
	}
	if err != nil {
		return fmt.Errorf("unmarshalFrontMatter: %w", err)
	}
	return nil
}

// ReadFrontMatter extracts and unmarshals front matter from the given file.
func ReadFrontMatter(fsys fs.FS, name string, fm *FrontMatter) error {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("ReadFrontMatter: %w", err)
	}
	fmb, format, _ := extractFrontMatter(b)
	if err := unmarshalFrontMatter(fmb, format, fm); err != nil {
		return fmt.Errorf("ReadFrontMatter: %w", err)
	}
	return nil
}
