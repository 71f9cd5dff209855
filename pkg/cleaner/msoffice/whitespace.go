package msoffice

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// emptyRemovableTags are the elements the final cleanup may delete once
// they hold no visible content.
var emptyRemovableTags = map[string]bool{
	"p": true, "div": true, "span": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// stripHeadingSpans unwraps every span nested inside a heading: the heading
// level's own styling supersedes whatever the span carried.
func (c *Cleaner) stripHeadingSpans(doc *goquery.Document, result *Result) {
	body := bodyNode(doc)
	if body == nil {
		return
	}
	for _, h := range collectTag(body, "h1", "h2", "h3", "h4", "h5", "h6") {
		for _, span := range collectTag(h, "span") {
			unwrap(span)
			result.Stats.RecordUnwrap("span")
		}
	}
}

// cleanupWhitespace is the last pass: it unwraps spans that no longer say
// anything, normalizes non-breaking spaces, and removes emptied blocks to a
// fixed point. Blocks holding a line break survive, because Word uses them
// as intentional vertical spacing.
func (c *Cleaner) cleanupWhitespace(doc *goquery.Document, result *Result) {
	body := bodyNode(doc)
	if body == nil {
		return
	}

	for _, span := range collectTag(body, "span") {
		if len(span.Attr) == 0 {
			unwrap(span)
			result.Stats.RecordUnwrap("span")
		}
	}

	for _, span := range collectTag(body, "span") {
		if span.Parent == nil {
			continue
		}
		if strings.TrimSpace(textContent(span)) == "" && !hasDescendant(span, "img", "br") {
			unwrap(span)
			result.Stats.RecordUnwrap("span")
		}
	}

	for _, t := range collect(body, func(n *html.Node) bool {
		return n.Type == html.TextNode
	}) {
		t.Data = strings.ReplaceAll(t.Data, "\u00a0", " ")
	}

	for {
		changed := false
		for _, n := range collect(body, func(n *html.Node) bool {
			return n.Type == html.ElementNode && emptyRemovableTags[n.Data]
		}) {
			if n.Parent == nil {
				continue
			}
			if strings.TrimSpace(textContent(n)) != "" || hasDescendant(n, "img", "br") {
				continue
			}
			detach(n)
			result.Stats.RecordRemoval(n.Data)
			changed = true
		}
		if !changed {
			break
		}
	}
}
