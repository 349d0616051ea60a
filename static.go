package main

import (
	"net/http"
	"os"
	"path"
	"strings"
)

// containsSpecialFile reports whether name contains a path element starting with a period
// or is another kind of special file. The name is assumed to be delimited by forward
// slashes, as guaranteed by the http.FileSystem interface.
func containsSpecialFile(name string) bool {
	parts := strings.Split(name, "/")
	for _, part := range parts {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	for _, special := range []string{"site.toml", "template"} {
		if strings.TrimPrefix(name, "/") == special || strings.HasPrefix(strings.TrimPrefix(name, "/"), special+"/") {
			return true
		}
	}
	return false
}

// specialFileHidingFileSystem hides dot-files, templates, and the site
// configuration from the file server.
type specialFileHidingFileSystem struct {
	http.FileSystem
}

func (fsys specialFileHidingFileSystem) Open(name string) (http.File, error) {
	if containsSpecialFile(name) {
		return nil, os.ErrNotExist
	}
	return fsys.FileSystem.Open(name)
}

// fixed serves a single file from the site root, such as robots.txt.
func fixed(filename string) http.HandlerFunc {
	return http.FileServer(singleFileSystem(filename)).ServeHTTP
}

type singleFileSystem string

func (sfs singleFileSystem) Open(name string) (http.File, error) {
	_, name = path.Split(name)
	if name != string(sfs) {
		return nil, os.ErrNotExist
	}
	f, err := os.Open(name)
	return http.File(f), err
}
