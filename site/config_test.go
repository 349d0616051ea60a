package site

import (
	"testing"
	"testing/fstest"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(fstest.MapFS{})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Title != "Lectern" || cfg.Placeholder == "" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		ConfigFile: {Data: []byte(`title = "Learn Python"
baseurl = "https://example.com"
placeholder = "Coming soon"
expires = "1h"

[headers]
X-Frame-Options = "DENY"
`)},
	}
	cfg, err := Load(fsys)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Title != "Learn Python" || cfg.BaseURL != "https://example.com" || cfg.Placeholder != "Coming soon" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if time.Duration(cfg.Expires) != time.Hour {
		t.Errorf("expected 1h expires, got %s", cfg.Expires)
	}
	if cfg.Headers["X-Frame-Options"] != "DENY" {
		t.Errorf("unexpected headers: %v", cfg.Headers)
	}
}
