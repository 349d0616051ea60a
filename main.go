package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/ancientlore/cachefs"
	"github.com/facebookgo/flagenv"
	"github.com/golang/groupcache"

	"lectern/content"
	"lectern/layout"
	"lectern/nav"
	"lectern/site"
)

var (
	cfg       *site.Config
	tree      *nav.Node
	contentFS fs.FS
	tpl       *template.Template
)

// main is where it all begins. 😀
func main() {
	// Setup flags
	var (
		fPort              = flag.Int("port", 8080, "Port to listen on.")
		fReadTimeout       = flag.Duration("readtimeout", 10*time.Second, "HTTP server read timeout.")
		fReadHeaderTimeout = flag.Duration("readheadertimeout", 5*time.Second, "HTTP server read header timeout.")
		fWriteTimeout      = flag.Duration("writetimeout", 30*time.Second, "HTTP server write timeout.")
		fRoot              = flag.String("root", ".", "Root of the site (content, template, and static folders).")
		fCacheSize         = flag.Int64("cachesize", 10*1024*1024, "Size of the render caches in bytes.")
		fCacheDuration     = flag.Duration("cacheduration", 10*time.Second, "Expiry of cached renders.")
	)
	flag.Parse()
	flagenv.Parse()

	// Create HTTP server
	var srv = http.Server{
		Addr:              fmt.Sprintf(":%d", *fPort),
		ReadTimeout:       *fReadTimeout,
		WriteTimeout:      *fWriteTimeout,
		ReadHeaderTimeout: *fReadHeaderTimeout,
	}

	// Switch to site folder
	err := os.Chdir(*fRoot)
	if err != nil {
		log.Printf("Cannot switch to root %q: %s", *fRoot, err)
		os.Exit(1)
	}
	log.Printf("Changed to %q directory", *fRoot)

	// Setup groupcache (no peers) and the cached content file system
	groupcache.RegisterPeerPicker(func() groupcache.PeerPicker { return groupcache.NoPeers{} })
	contentFS = cachefs.New(os.DirFS("content"), &cachefs.Config{
		GroupName:   "content",
		SizeInBytes: *fCacheSize,
		Duration:    *fCacheDuration,
	})
	initPageCache(*fCacheSize, *fCacheDuration)

	// Read site configuration
	cfg, err = site.Load(os.DirFS("."))
	if err != nil {
		log.Printf("Cannot read site config: %s", err)
		os.Exit(2)
	}

	// Build the navigation tree from the content folder
	tree, err = content.Load(contentFS)
	if err != nil {
		log.Printf("Cannot load content tree: %s", err)
		os.Exit(3)
	}
	log.Printf("Loaded %d pages", len(nav.Paths(tree)))

	// Parse templates
	tpl, err = layout.Load(os.DirFS("."), contentFS)
	if err != nil {
		log.Printf("Cannot parse templates: %s", err)
		os.Exit(4)
	}
	log.Printf("Loaded templates: %s", tpl.DefinedTemplates())

	// Parse sitemap template
	ok, err := loadSitemapTemplate()
	if err != nil {
		log.Printf("Unable to load sitemap.txt template: %s", err)
		os.Exit(5)
	}
	if !ok {
		log.Print("No sitemap.txt template found; using a plain list.")
	} else {
		log.Print("Loaded sitemap.txt template.")
	}

	// Setup handlers
	http.Handle("/metrics", metricsHandler())
	http.Handle("/favicon.ico", http.HandlerFunc(favicon))
	http.Handle("/robots.txt", fixed("robots.txt"))
	http.Handle("/sitemap.txt", gziphandler.GzipHandler(http.HandlerFunc(sitemap)))
	http.Handle("/static/", handlerChain(http.FileServer(specialFileHidingFileSystem{http.Dir(".")})))
	http.Handle("/", handlerChain(http.HandlerFunc(page)))
	log.Print("Created handlers")

	// Create signal handler for graceful shutdown
	go func() {
		sigint := make(chan os.Signal, 1)

		// interrupt signal sent from terminal
		signal.Notify(sigint, os.Interrupt)
		// sigterm signal sent from kubernetes
		signal.Notify(sigint, syscall.SIGTERM)

		<-sigint

		// We received an interrupt signal, shut down.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			// Error from closing listeners, or context timeout:
			log.Printf("HTTP server Shutdown: %v", err)
		}
	}()

	// Listen for requests
	log.Print("Listening for requests")
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		log.Printf("HTTP server: %v", err)
	} else {
		log.Print("Goodbye.")
	}
}
