package main

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"os"
	"text/template"
	"time"

	"lectern/nav"
)

var sitemapTpl *template.Template

// loadSitemapTemplate loads the /sitemap.txt template,
// returning true if it exists.
func loadSitemapTemplate() (bool, error) {
	var err error
	sitemapTpl, err = template.New("sitemap").ParseFiles("./sitemap.txt")
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return false, err
		}
		sitemapTpl = nil
		return false, nil
	}
	return true, nil
}

// sitemap is an http.HandlerFunc that renders the site map from the loaded
// navigation tree. A sitemap.txt template at the site root customizes the
// output; without one, each visible page path is listed on its own line.
func sitemap(w http.ResponseWriter, r *http.Request) {
	paths := nav.Paths(tree)
	urls := make([]string, len(paths))
	for i, p := range paths {
		urls[i] = cfg.BaseURL + p
	}
	var out bytes.Buffer
	if sitemapTpl != nil {
		if err := sitemapTpl.ExecuteTemplate(&out, "sitemap.txt", urls); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	} else {
		for _, u := range urls {
			fmt.Fprintln(&out, u)
		}
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	http.ServeContent(w, r, "sitemap.txt", time.Time{}, bytes.NewReader(out.Bytes()))
}
