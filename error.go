package main

import (
	"log"
	"net/http"

	"lectern/layout"
	"lectern/nav"
)

// errorPage renders the templated 404 and 500 pages. It is hooked into the
// middleware chain so plain http.NotFound and http.Error responses from the
// handlers come out styled like the rest of the site.
func errorPage(w http.ResponseWriter, r *http.Request, status int) {
	name := "error"
	if status == http.StatusNotFound {
		name = "notfound"
	}
	t := tpl.Lookup(name)
	if t == nil {
		http.Error(w, http.StatusText(status), status)
		return
	}
	d := layout.ErrorData{
		Data: layout.Data{
			Site:    cfg,
			Sidebar: nav.Render(tree, nav.Options{Placeholder: cfg.Placeholder}),
		},
		Message: http.StatusText(status),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	if err := t.Execute(w, d); err != nil {
		log.Printf("errorPage: %s", err)
	}
}
