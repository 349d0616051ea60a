// Package site holds site-wide configuration read from site.toml.
package site

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/pelletier/go-toml/v2"

	"lectern/content"
)

// ConfigFile is the name of the site configuration file at the site root.
const ConfigFile = "site.toml"

// Config contains configuration data from the site.toml file.
type Config struct {
	Title         string            `toml:"title"`         // Site title, used when a page has none
	Description   string            `toml:"description"`   // Short site description
	BaseURL       string            `toml:"baseurl"`       // Absolute URL prefix for the site map
	Placeholder   string            `toml:"placeholder"`   // Sidebar filler text for empty sections
	Expires       content.Duration  `toml:"expires"`       // Expires header for rendered pages
	StaticExpires content.Duration  `toml:"staticexpires"` // Expires header for static assets
	Headers       map[string]string `toml:"headers"`       // Extra response headers
}

// Load reads site.toml from the given file system. A missing file is not an
// error; defaults are returned.
func Load(fsys fs.FS) (*Config, error) {
	cfg := Config{
		Title:       "Lectern",
		Placeholder: "Nothing here yet",
	}
	b, err := fs.ReadFile(fsys, ConfigFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("site.Load: %w", err)
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("site.Load: %w", err)
	}
	return &cfg, nil
}
