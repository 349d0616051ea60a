// Package layout parses the site's HTML templates and defines the data passed
// to them. A template folder at the site root overrides the embedded default.
package layout

import (
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"path"
	"strings"
	"time"

	"lectern/content"
	"lectern/nav"
	"lectern/site"
)

//go:embed default.html
var defaultTemplate string

// PageInfo has information about the current page.
type PageInfo struct {
	Path     string // canonical node path
	Filename string // end portion (file) of the path
}

// Pathname joins the path and filename.
func (p PageInfo) Pathname() string {
	return path.Join(p.Path, p.Filename)
}

// Data is what is passed to page templates.
type Data struct {
	Site        *site.Config        // site-wide settings
	FrontMatter content.FrontMatter // front matter from the Markdown file or defaults
	Page        PageInfo            // information about the current page
	Content     template.HTML       // rendered Markdown
	Sidebar     []nav.Item          // navigation tree for the current page
}

// ErrorData adds a message to the template data for error pages.
type ErrorData struct {
	Data
	Message string
}

// Load parses the HTML templates. Templates come from the "template" folder
// of fsys if present, otherwise from the embedded default. contentFS backs
// the markdown and frontmatter helper functions.
func Load(fsys fs.FS, contentFS fs.FS) (*template.Template, error) {
	funcMap := template.FuncMap{
		"join":       path.Join,
		"ext":        path.Ext,
		"trimsuffix": strings.TrimSuffix,
		"trimprefix": strings.TrimPrefix,
		"trimspace":  strings.TrimSpace,
		"now":        time.Now,
		"markdown": func(filename string) template.HTML {
			_, md, _, err := content.RenderPage(contentFS, filename)
			if err != nil {
				log.Printf("markdown: %s", err)
				return ""
			}
			return md
		},
		"frontmatter": func(filename string) *content.FrontMatter {
			var fm content.FrontMatter
			if err := content.ReadFrontMatter(contentFS, filename, &fm); err != nil {
				log.Printf("frontmatter: %s", err)
				return nil
			}
			return &fm
		},
	}
	fi, err := fs.Stat(fsys, "template")
	if errors.Is(err, fs.ErrNotExist) || (err == nil && !fi.IsDir()) {
		tpl, err := template.New("lectern").Funcs(funcMap).Parse(defaultTemplate)
		if err != nil {
			return nil, fmt.Errorf("layout.Load: %w", err)
		}
		return tpl, nil
	}
	tpl, err := template.New("lectern").Funcs(funcMap).ParseFS(fsys, "template/*.html")
	if err != nil {
		return nil, fmt.Errorf("layout.Load: %w", err)
	}
	return tpl, nil
}
