package main

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"lectern/content"
	"lectern/layout"
	"lectern/nav"
	"lectern/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render the content tree into a static site",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuild(genCfg)
	},
}

func runBuild(cfg config) error {
	siteCfg, err := site.Load(os.DirFS("."))
	if err != nil {
		return err
	}
	if cfg.BaseURL != "" {
		siteCfg.BaseURL = cfg.BaseURL
	}
	contentFS := os.DirFS(cfg.ContentDir)
	tree, err := content.Load(contentFS)
	if err != nil {
		return err
	}
	tpl, err := layout.Load(os.DirFS("."), contentFS)
	if err != nil {
		return err
	}

	// Collect every linkable node, hidden ones included; hidden pages don't
	// show in the sidebar but stay reachable by direct link.
	var nodes []*nav.Node
	tree.Walk(func(n *nav.Node) {
		if n.Kind != nav.KindSeparator {
			nodes = append(nodes, n)
		}
	})

	// Renders are independent of each other, so fan out.
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	var g errgroup.Group
	g.SetLimit(cfg.Workers)
	for _, node := range nodes {
		node := node
		g.Go(func() error {
			return renderNode(cfg, siteCfg, tpl, tree, node, contentFS)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if err := copyStatic(cfg); err != nil {
		return err
	}
	if err := writeSitemap(cfg, siteCfg, tree); err != nil {
		return err
	}
	log.Printf("Rendered %d pages to %s", len(nodes), cfg.OutputDir)
	return nil
}

func renderNode(cfg config, siteCfg *site.Config, tpl *template.Template, tree, node *nav.Node, contentFS fs.FS) error {
	src := content.SourcePath(node.Path, node.Kind == nav.KindSection)
	front, body, _, err := content.RenderPage(contentFS, src)
	if errors.Is(err, fs.ErrNotExist) && node.Kind == nav.KindSection {
		front = &content.FrontMatter{Title: node.Title}
		body = ""
	} else if err != nil {
		return fmt.Errorf("render %s: %w", node.Path, err)
	}
	if front.Title == "" {
		front.Title = node.Title
	}

	p, bn := path.Split(node.Path)
	data := layout.Data{
		Site:        siteCfg,
		FrontMatter: *front,
		Page:        layout.PageInfo{Path: p, Filename: bn},
		Content:     body,
		Sidebar: nav.Render(tree, nav.Options{
			CurrentPath: node.Path,
			IncludeTOC:  true,
			Placeholder: siteCfg.Placeholder,
		}),
	}
	templateName := "default"
	if front.Template != "" {
		templateName = front.Template
	}
	var out bytes.Buffer
	if err := tpl.ExecuteTemplate(&out, templateName, data); err != nil {
		return fmt.Errorf("render %s: %w", node.Path, err)
	}
	dest := filepath.Join(cfg.OutputDir, filepath.FromSlash(strings.TrimPrefix(node.Path, "/")), "index.html")
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dest, out.Bytes(), 0o644)
}

func copyStatic(cfg config) error {
	staticFS := os.DirFS(cfg.StaticDir)
	return fs.WalkDir(staticFS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && p == "." {
				return fs.SkipAll // no static folder, nothing to copy
			}
			return err
		}
		if d.IsDir() || strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		b, err := fs.ReadFile(staticFS, p)
		if err != nil {
			return err
		}
		dest := filepath.Join(cfg.OutputDir, "static", filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return err
		}
		return os.WriteFile(dest, b, 0o644)
	})
}

func writeSitemap(cfg config, siteCfg *site.Config, tree *nav.Node) error {
	var out bytes.Buffer
	for _, p := range nav.Paths(tree) {
		fmt.Fprintln(&out, siteCfg.BaseURL+p)
	}
	return os.WriteFile(filepath.Join(cfg.OutputDir, "sitemap.txt"), out.Bytes(), 0o644)
}
