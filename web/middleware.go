// Package web has small HTTP middleware used by the lectern server.
package web

import (
	"net/http"
	"path"
	"strings"
	"time"
)

var gmtZone *time.Location

func init() {
	var err error
	gmtZone, err = time.LoadLocation("GMT")
	if err != nil {
		gmtZone = time.UTC
	}
}

// HeaderHandler returns an http.Handler that adds the given headers to the response.
func HeaderHandler(h http.Handler, headers map[string]string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for k, v := range headers {
			w.Header().Set(k, v)
		}
		h.ServeHTTP(w, r)
	})
}

// ExpiresHandler adds the Expires header, choosing expires for rendered pages
// (extensionless paths, folders, and the site map) and staticExpires for
// everything else.
func ExpiresHandler(h http.Handler, expires, staticExpires time.Duration) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		expiry := staticExpires
		if strings.HasSuffix(r.URL.Path, "/") || path.Ext(r.URL.Path) == "" || r.URL.Path == "/sitemap.txt" {
			expiry = expires
		}
		if expiry != 0 {
			w.Header().Set("Expires", time.Now().Add(expiry).In(gmtZone).Format(time.RFC1123))
		}
		h.ServeHTTP(w, r)
	})
}

// ErrorHandler intercepts 404 and 500 responses from the wrapped handler and
// delegates them to errorPage, which renders the site's templated error pages.
func ErrorHandler(h http.Handler, errorPage func(w http.ResponseWriter, r *http.Request, status int)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.ServeHTTP(&responseWriter{ResponseWriter: w, req: r, errorPage: errorPage}, r)
	})
}

type responseWriter struct {
	http.ResponseWriter
	req       *http.Request
	errorPage func(w http.ResponseWriter, r *http.Request, status int)
	noWrite   bool
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if w.noWrite {
		return len(b), nil
	}
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if statusCode == http.StatusNotFound || statusCode == http.StatusInternalServerError {
		// Suppress the wrapped handler's body; the error page owns the response.
		w.noWrite = true
		w.errorPage(w.ResponseWriter, w.req, statusCode)
		return
	}
	w.ResponseWriter.WriteHeader(statusCode)
}
