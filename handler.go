package main

import (
	"bytes"
	"errors"
	"io/fs"
	"log"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/NYTimes/gziphandler"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"lectern/content"
	"lectern/layout"
	"lectern/nav"
	"lectern/web"
)

var tracer = otel.Tracer("lectern")

// handlerChain wraps a handler with the middleware every page shares:
// configured headers, Expires, gzip, and templated error pages.
func handlerChain(h http.Handler) http.Handler {
	return web.HeaderHandler(
		web.ExpiresHandler(
			gziphandler.GzipHandler(
				web.ErrorHandler(h, errorPage),
			),
			time.Duration(cfg.Expires),
			time.Duration(cfg.StaticExpires),
		),
		cfg.Headers)
}

// contentStatic serves non-Markdown files that live in the content folder,
// such as lesson images.
var contentStatic = http.FileServer(specialFileHidingFileSystem{http.Dir("content")})

// page renders a Markdown lesson page with its sidebar.
func page(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if containsSpecialFile(r.URL.Path) {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	// Non-page files in the content folder are served as-is.
	ext := path.Ext(r.URL.Path)
	if ext != "" && ext != ".md" && ext != ".html" {
		contentStatic.ServeHTTP(w, r)
		return
	}
	nodePath := cleanRequestPath(r.URL.Path)
	node := tree.Find(nodePath)
	if node == nil || node.Kind == nav.KindSeparator {
		mtr.pageRenders.WithLabelValues("notfound").Inc()
		http.NotFound(w, r)
		return
	}

	ctx, span := tracer.Start(r.Context(), "page.render", trace.WithAttributes(
		attribute.String("page.path", node.Path),
	))
	defer span.End()
	start := time.Now()

	src := content.SourcePath(node.Path, node.Kind == nav.KindSection)
	front, body, modTime, err := cachedRenderPage(ctx, src)
	if errors.Is(err, fs.ErrNotExist) && node.Kind == nav.KindSection {
		// A section without an _index.md still renders, with just its sidebar.
		front = &content.FrontMatter{Title: node.Title}
		body = ""
		modTime = time.Time{}
	} else if errors.Is(err, fs.ErrNotExist) {
		mtr.pageRenders.WithLabelValues("notfound").Inc()
		http.NotFound(w, r)
		return
	} else if err != nil {
		log.Printf("page: %s", err)
		span.RecordError(err)
		mtr.pageRenders.WithLabelValues("error").Inc()
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if front.Redirect != "" {
		mtr.pageRenders.WithLabelValues("redirect").Inc()
		http.Redirect(w, r, front.Redirect, http.StatusFound)
		return
	}
	if front.Title == "" {
		front.Title = node.Title
	}

	// prepare template data
	p, bn := path.Split(node.Path)
	data := layout.Data{
		Site:        cfg,
		FrontMatter: *front,
		Page:        layout.PageInfo{Path: p, Filename: bn},
		Content:     body,
		Sidebar: nav.Render(tree, nav.Options{
			CurrentPath: node.Path,
			IncludeTOC:  true,
			Placeholder: cfg.Placeholder,
		}),
	}

	templateName := "default"
	if front.Template != "" {
		templateName = front.Template
	}
	var out bytes.Buffer
	err = tpl.ExecuteTemplate(&out, templateName, data)
	if err != nil {
		log.Printf("page: %s", err)
		span.RecordError(err)
		mtr.pageRenders.WithLabelValues("error").Inc()
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	mtr.pageRenders.WithLabelValues("ok").Inc()
	mtr.renderSeconds.Observe(time.Since(start).Seconds())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if front.Expires != 0 {
		w.Header().Set("Expires", time.Now().Add(time.Duration(front.Expires)).Format(time.RFC1123))
	}
	http.ServeContent(w, r, "", modTime, bytes.NewReader(out.Bytes()))
}

// cleanRequestPath canonicalizes a request path to a node path: cleaned,
// "/"-rooted, no trailing slash except the root, and no .md or .html suffix.
func cleanRequestPath(p string) string {
	p = path.Clean("/" + p)
	p = strings.TrimSuffix(p, ".md")
	p = strings.TrimSuffix(p, ".html")
	if p == "" || p == "/index" {
		return "/"
	}
	return p
}
