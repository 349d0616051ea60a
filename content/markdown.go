package content

import (
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/russross/blackfriday/v2"
)

// SourcePath maps a node path like "/python/strings" to the Markdown file
// backing it. Sections are backed by their folder's _index.md.
func SourcePath(nodePath string, section bool) string {
	p := strings.TrimPrefix(path.Clean(nodePath), "/")
	if section {
		return path.Join(p, indexFile)
	}
	return p + ".md"
}

// RenderPage renders the Markdown for the given file and returns its front
// matter and modification time.
func RenderPage(fsys fs.FS, filename string) (*FrontMatter, template.HTML, time.Time, error) {
	var (
		fmData  FrontMatter
		modTime time.Time
	)
	s, err := fs.Stat(fsys, filename)
	if err != nil {
		return nil, "", modTime, fmt.Errorf("RenderPage: %w", err)
	}
	b, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return nil, "", modTime, fmt.Errorf("RenderPage: %w", err)
	}
	fm, format, r := extractFrontMatter(b)
	md := template.HTML(blackfriday.Run(r, blackfriday.WithExtensions(blackfriday.CommonExtensions|blackfriday.Footnotes)))
	if err := unmarshalFrontMatter(fm, format, &fmData); err != nil {
		return nil, "", modTime, fmt.Errorf("RenderPage: %w", err)
	}
	return &fmData, md, s.ModTime(), nil
}
