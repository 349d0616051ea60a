package content

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"lectern/nav"
)

const indexFile = "_index.md"

// reservedNames are top-level entries that never become content nodes.
var reservedNames = []string{"template", "static", "404.md", "500.md"}

func isReserved(name string) bool {
	for _, s := range reservedNames {
		if name == s {
			return true
		}
	}
	return false
}

// Load walks the content file system and builds the navigation tree.
// Directories become sections, Markdown files become pages, and each folder's
// _index.md supplies the section's front matter. Dot-files and reserved names
// are skipped, and future-dated pages are withheld until their date passes.
// The returned tree is fixed; renders only read it.
func Load(fsys fs.FS) (*nav.Node, error) {
	root := &nav.Node{Path: "/", Kind: nav.KindSection}
	var fm FrontMatter
	if err := ReadFrontMatter(fsys, indexFile, &fm); err == nil {
		applyFrontMatter(root, &fm, fsys, indexFile)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("Load: %w", err)
	}
	if err := loadDir(fsys, ".", root); err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	return root, nil
}

func loadDir(fsys fs.FS, dir string, parent *nav.Node) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return err
	}
	// Directory order is the discovery order; equal weights keep it.
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") || (dir == "." && isReserved(name)) {
			continue
		}
		if entry.IsDir() {
			sec := &nav.Node{
				Path:  nodePath(dir, name),
				Title: titleFromSlug(name),
				Kind:  nav.KindSection,
			}
			var fm FrontMatter
			idx := path.Join(dir, name, indexFile)
			if err := ReadFrontMatter(fsys, idx, &fm); err == nil {
				if time.Now().Before(fm.Date) {
					continue
				}
				applyFrontMatter(sec, &fm, fsys, idx)
			} else if !errors.Is(err, fs.ErrNotExist) {
				log.Printf("loadDir: %s", err)
			}
			if err := loadDir(fsys, path.Join(dir, name), sec); err != nil {
				return err
			}
			parent.Children = append(parent.Children, sec)
			continue
		}
		if !strings.HasSuffix(name, ".md") || name == indexFile {
			continue
		}
		slug := strings.TrimSuffix(name, ".md")
		page := &nav.Node{
			Path:  nodePath(dir, slug),
			Title: titleFromSlug(slug),
			Kind:  nav.KindPage,
		}
		var fm FrontMatter
		src := path.Join(dir, name)
		if err := ReadFrontMatter(fsys, src, &fm); err != nil {
			log.Printf("loadDir: %s", err)
		} else {
			if time.Now().Before(fm.Date) {
				continue
			}
			applyFrontMatter(page, &fm, fsys, src)
		}
		parent.Children = append(parent.Children, page)
	}
	return nil
}

// applyFrontMatter copies sidebar-relevant front matter onto the node and
// extracts the page's heading anchors.
func applyFrontMatter(n *nav.Node, fm *FrontMatter, fsys fs.FS, src string) {
	if fm.Title != "" {
		n.Title = fm.Title
	}
	n.Weight = fm.Weight
	n.Hidden = fm.Hidden
	n.AlwaysOpen = fm.AlwaysOpen
	if fm.Separator {
		n.Kind = nav.KindSeparator
	}
	if b, err := fs.ReadFile(fsys, src); err == nil {
		_, _, body := extractFrontMatter(b)
		n.Headings = extractHeadings(body)
	}
}

func nodePath(dir, slug string) string {
	return path.Join("/", dir, slug)
}

// titleFromSlug derives a display title from a file or folder name,
// e.g. "string-formatting" becomes "String Formatting".
func titleFromSlug(slug string) string {
	s := strings.NewReplacer("-", " ", "_", " ").Replace(slug)
	return cases.Title(language.English).String(s)
}
