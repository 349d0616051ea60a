package content

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"

	"lectern/nav"
)

var (
	atxRegexp   = regexp.MustCompile(`^(#{1,6})\s+(.+?)\s*#*\s*$`)
	fencePrefix = regexp.MustCompile("^(```|~~~)")
)

// extractHeadings scans the Markdown body for ATX headings and returns them in
// document order. Anchor ids use blackfriday's sanitizer with the same
// numeric-suffix rule its HTML renderer applies to duplicates, so sidebar
// anchors land on the rendered headings.
func extractHeadings(md []byte) []nav.Heading {
	var (
		r       []nav.Heading
		inFence bool
		seen    = map[string]bool{}
	)
	for _, line := range strings.Split(string(md), "\n") {
		trimmed := strings.TrimLeft(line, " \t")
		if fencePrefix.MatchString(trimmed) {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		m := atxRegexp.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		title := strings.TrimSpace(m[2])
		r = append(r, nav.Heading{ID: uniqueAnchor(title, seen), Title: title})
	}
	return r
}

// uniqueAnchor sanitizes the heading text and de-duplicates the result.
func uniqueAnchor(title string, seen map[string]bool) string {
	base := blackfriday.SanitizedAnchorName(title)
	id := base
	for i := 1; seen[id]; i++ {
		id = fmt.Sprintf("%s-%d", base, i)
	}
	seen[id] = true
	return id
}
