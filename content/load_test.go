package content

import (
	"testing"
	"testing/fstest"

	"lectern/nav"
)

func siteFS() fstest.MapFS {
	return fstest.MapFS{
		"_index.md": {Data: []byte("+++\ntitle = \"Lessons\"\n+++\nWelcome.")},
		"python/_index.md": {Data: []byte(`+++
title = "Python"
weight = 1
alwaysopen = false
+++
# Python
`)},
		"python/variables.md": {Data: []byte(`+++
title = "Variables"
weight = 1
+++
# Naming
## Scope
`)},
		"python/string-formatting.md": {Data: []byte("---\nweight: 2\n---\ntext")},
		"python/draft.md":             {Data: []byte("+++\nhidden = true\n+++\nshh")},
		"go/_index.md":                {Data: []byte("+++\ntitle = \"Go\"\nweight = 2\n+++\n")},
		"go/basics.md":                {Data: []byte("+++\nseparator = true\ntitle = \"The Basics\"\n+++\n")},
		"go/later.md":                 {Data: []byte("+++\ndate = 3000-01-01T00:00:00Z\n+++\nnot yet")},
		"template/default.html":       {Data: []byte("<html></html>")},
		"404.md":                      {Data: []byte("gone")},
		".hidden/secret.md":           {Data: []byte("nope")},
	}
}

func TestLoad(t *testing.T) {
	root, err := Load(siteFS())
	if err != nil {
		t.Fatal(err)
	}
	if root.Path != "/" || root.Title != "Lessons" {
		t.Errorf("unexpected root: %+v", root)
	}
	if len(root.Children) != 2 {
		t.Fatalf("expected 2 top-level nodes, got %d", len(root.Children))
	}

	golang := root.Find("/go")
	if golang == nil || golang.Title != "Go" || golang.Kind != nav.KindSection {
		t.Fatalf("unexpected /go: %+v", golang)
	}
	// The future-dated page is withheld; only the separator remains.
	if len(golang.Children) != 1 {
		t.Fatalf("expected 1 child under /go, got %d", len(golang.Children))
	}
	if sep := golang.Children[0]; sep.Kind != nav.KindSeparator || sep.Title != "The Basics" {
		t.Errorf("expected separator, got %+v", sep)
	}

	python := root.Find("/python")
	if python == nil {
		t.Fatal("missing /python")
	}
	if python.AlwaysOpen == nil || *python.AlwaysOpen {
		t.Error("expected alwaysopen = false on /python")
	}
	if len(python.Children) != 3 {
		t.Fatalf("expected 3 children under /python, got %d", len(python.Children))
	}

	vars := root.Find("/python/variables")
	if vars == nil || vars.Title != "Variables" || vars.Weight != 1 {
		t.Fatalf("unexpected /python/variables: %+v", vars)
	}
	wantHeadings := []nav.Heading{{ID: "naming", Title: "Naming"}, {ID: "scope", Title: "Scope"}}
	if len(vars.Headings) != 2 || vars.Headings[0] != wantHeadings[0] || vars.Headings[1] != wantHeadings[1] {
		t.Errorf("expected headings %+v, got %+v", wantHeadings, vars.Headings)
	}

	// Title falls back to the slug when front matter has none.
	fmtPage := root.Find("/python/string-formatting")
	if fmtPage == nil || fmtPage.Title != "String Formatting" {
		t.Fatalf("unexpected fallback title: %+v", fmtPage)
	}
	if fmtPage.Weight != 2 {
		t.Errorf("expected YAML weight 2, got %d", fmtPage.Weight)
	}

	if draft := root.Find("/python/draft"); draft == nil || !draft.Hidden {
		t.Errorf("expected hidden draft page, got %+v", draft)
	}

	// Reserved and dot entries never become nodes.
	for _, p := range []string{"/template", "/404", "/.hidden", "/.hidden/secret"} {
		if n := root.Find(p); n != nil {
			t.Errorf("unexpected node %q", p)
		}
	}
}

func TestLoadRenderTogether(t *testing.T) {
	root, err := Load(siteFS())
	if err != nil {
		t.Fatal(err)
	}
	items := nav.Render(root, nav.Options{CurrentPath: "/python/variables", IncludeTOC: true, Placeholder: "empty"})
	if len(items) != 2 || items[0].Href != "/python" || items[1].Href != "/go" {
		t.Fatalf("unexpected top level: %+v", items)
	}
	if !items[0].Open {
		t.Error("/python holds the active page and should be open despite alwaysopen = false")
	}
	vars := items[0].Children[0]
	if !vars.Active {
		t.Fatalf("expected /python/variables active, got %+v", vars)
	}
	if len(vars.Children) != 2 || vars.Children[0].Href != "#naming" || vars.Children[1].Href != "#scope" {
		t.Errorf("unexpected TOC: %+v", vars.Children)
	}
}

func TestSourcePath(t *testing.T) {
	tests := []struct {
		path    string
		section bool
		want    string
	}{
		{"/", true, "_index.md"},
		{"/python", true, "python/_index.md"},
		{"/python/variables", false, "python/variables.md"},
	}
	for _, tt := range tests {
		if got := SourcePath(tt.path, tt.section); got != tt.want {
			t.Errorf("SourcePath(%q, %v): expected %q, got %q", tt.path, tt.section, got, tt.want)
		}
	}
}

func TestTitleFromSlug(t *testing.T) {
	tests := map[string]string{
		"string-formatting": "String Formatting",
		"std_library":       "Std Library",
		"python":            "Python",
	}
	for in, want := range tests {
		if got := titleFromSlug(in); got != want {
			t.Errorf("titleFromSlug(%q): expected %q, got %q", in, want, got)
		}
	}
}
