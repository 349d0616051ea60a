package main

import (
	"testing"
	"time"
)

func TestCleanRequestPath(t *testing.T) {
	tests := map[string]string{
		"/":                       "/",
		"/index.html":             "/",
		"/python":                 "/python",
		"/python/":                "/python",
		"/python/strings.md":      "/python/strings",
		"/python/strings.html":    "/python/strings",
		"//python/../go/intro":    "/go/intro",
		"/python/strings.md/../.": "/python",
	}
	for in, want := range tests {
		if got := cleanRequestPath(in); got != want {
			t.Errorf("cleanRequestPath(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestContainsSpecialFile(t *testing.T) {
	tests := map[string]bool{
		"/python/strings":    false,
		"/.git/config":       true,
		"/python/.draft.md":  true,
		"/site.toml":         true,
		"/template/foo.html": true,
		"/templates/x":       false,
	}
	for in, want := range tests {
		if got := containsSpecialFile(in); got != want {
			t.Errorf("containsSpecialFile(%q): expected %v, got %v", in, want, got)
		}
	}
}

func TestQuantize(t *testing.T) {
	now := time.Now()
	d := 10 * time.Second
	// Stable within a bucket.
	if quantize(now, d, "a") != quantize(now.Add(time.Nanosecond), d, "a") {
		t.Error("expected equal buckets for adjacent times")
	}
	// Rolls over across a bucket.
	if quantize(now, d, "a") == quantize(now.Add(d+time.Nanosecond), d, "a") {
		t.Error("expected different buckets a full duration apart")
	}
	// Zero duration disables quantization.
	if quantize(now, 0, "a") != 0 {
		t.Error("expected 0 for zero duration")
	}
}
