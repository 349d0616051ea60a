package layout

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"lectern/content"
	"lectern/nav"
	"lectern/site"
)

func TestLoadDefault(t *testing.T) {
	tpl, err := Load(fstest.MapFS{}, fstest.MapFS{})
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"default", "sidebar", "notfound", "error"} {
		if tpl.Lookup(name) == nil {
			t.Errorf("missing template %q", name)
		}
	}
}

func TestLoadCustom(t *testing.T) {
	fsys := fstest.MapFS{
		"template/default.html": {Data: []byte(`{{define "default"}}custom {{.FrontMatter.Title}}{{end}}`)},
	}
	tpl, err := Load(fsys, fstest.MapFS{})
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	d := Data{Site: &site.Config{Title: "T"}, FrontMatter: content.FrontMatter{Title: "Variables"}}
	if err := tpl.ExecuteTemplate(&out, "default", d); err != nil {
		t.Fatal(err)
	}
	if out.String() != "custom Variables" {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestSidebarTemplate(t *testing.T) {
	tpl, err := Load(fstest.MapFS{}, fstest.MapFS{})
	if err != nil {
		t.Fatal(err)
	}
	items := []nav.Item{
		{Kind: nav.ItemSeparator, Title: "Basics"},
		{
			Kind: nav.ItemLink, Title: "Python", Href: "/python", Open: true,
			Children: []nav.Item{
				{Kind: nav.ItemLink, Title: "Strings", Href: "/python/strings", Active: true, Open: true,
					Children: []nav.Item{{Kind: nav.ItemAnchor, Title: "Intro", Href: "#intro"}}},
				{Kind: nav.ItemPlaceholder, Title: "Nothing here yet"},
			},
		},
	}
	var out bytes.Buffer
	if err := tpl.ExecuteTemplate(&out, "sidebar", items); err != nil {
		t.Fatal(err)
	}
	html := out.String()
	for _, want := range []string{
		`<li class="nav-label">Basics</li>`,
		`<a href="/python">Python</a>`,
		`class="nav-item active open"`,
		`<a href="#intro">Intro</a>`,
		`<li class="nav-empty">Nothing here yet</li>`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("output missing %q:\n%s", want, html)
		}
	}
}

func TestMarkdownHelper(t *testing.T) {
	contentFS := fstest.MapFS{
		"python/variables.md": {Data: []byte("+++\ntitle = \"Variables\"\n+++\n# Naming")},
	}
	fsys := fstest.MapFS{
		"template/default.html": {Data: []byte(`{{define "default"}}{{markdown "python/variables.md"}}{{(frontmatter "python/variables.md").Title}}{{end}}`)},
	}
	tpl, err := Load(fsys, contentFS)
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err := tpl.ExecuteTemplate(&out, "default", Data{Site: &site.Config{}}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Naming</h1>") || !strings.Contains(out.String(), "Variables") {
		t.Errorf("unexpected output %q", out.String())
	}
}
