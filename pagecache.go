package main

import (
	"bytes"
	"context"
	"encoding/gob"
	"fmt"
	"hash/fnv"
	"html/template"
	"net/url"
	"strconv"
	"time"

	"github.com/golang/groupcache"

	"lectern/content"
)

var (
	pageCache         *groupcache.Group
	pageCacheDuration time.Duration
)

// cachedPage holds the data we cache from Markdown rendering.
type cachedPage struct {
	FrontMatter *content.FrontMatter
	Content     template.HTML
	ModTime     time.Time
}

// initPageCache initializes the page render cache with the given size and expiry.
func initPageCache(cacheBytes int64, cacheDuration time.Duration) {
	pageCacheDuration = cacheDuration
	pageCache = groupcache.NewGroup("renderPage", cacheBytes, groupcache.GetterFunc(
		func(ctx context.Context, key string, dest groupcache.Sink) error {
			q, err := url.ParseQuery(key)
			if err != nil {
				return fmt.Errorf("renderPage group: %w", err)
			}
			var (
				d   cachedPage
				buf bytes.Buffer
			)
			d.FrontMatter, d.Content, d.ModTime, err = content.RenderPage(contentFS, q.Get("filename"))
			if err != nil {
				return fmt.Errorf("renderPage group: %w", err)
			}
			enc := gob.NewEncoder(&buf)
			err = enc.Encode(d)
			if err != nil {
				return fmt.Errorf("renderPage group: %w", err)
			}
			dest.SetBytes(buf.Bytes())
			return nil
		}))
}

// cachedRenderPage wraps content.RenderPage and provides caching.
func cachedRenderPage(ctx context.Context, filename string) (*content.FrontMatter, template.HTML, time.Time, error) {
	var (
		data []byte
		q    = make(url.Values, 2)
		d    cachedPage
	)
	q.Set("filename", filename)
	t := quantize(time.Now(), pageCacheDuration, filename)
	q.Set("t", strconv.FormatInt(t, 10))
	err := pageCache.Get(ctx, q.Encode(), groupcache.AllocatingByteSliceSink(&data))
	if err != nil {
		return nil, "", d.ModTime, fmt.Errorf("cachedRenderPage: %w", err)
	}
	dec := gob.NewDecoder(bytes.NewReader(data))
	err = dec.Decode(&d)
	if err != nil {
		return nil, "", d.ModTime, fmt.Errorf("cachedRenderPage: %w", err)
	}
	return d.FrontMatter, d.Content, d.ModTime, nil
}

// quantize buckets a time so cache keys roll over every d. The salt offsets
// the bucket boundary per key, spreading expirations instead of refreshing
// every entry at once.
func quantize(t time.Time, d time.Duration, salt string) int64 {
	if d <= 0 {
		return 0
	}
	h := fnv.New32a()
	h.Write([]byte(salt))
	offset := int64(h.Sum32()) % int64(d)
	return (t.UnixNano() + offset) / int64(d)
}
