package msoffice

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// visualStyleProps is the set of inline properties that carry visible
// formatting worth keeping after a paste. Everything else on a span is
// vendor residue.
var visualStyleProps = map[string]bool{
	"color":            true,
	"background-color": true,
	"font-size":        true,
	"font-weight":      true,
	"font-style":       true,
	"text-decoration":  true,
	"vertical-align":   true,
}

// removeNoise strips the vendor markup noise both Word variants leave
// behind once the structural passes have run.
func (c *Cleaner) removeNoise(doc *goquery.Document, result *Result) {
	body := bodyNode(doc)
	if body == nil {
		return
	}

	// Comment nodes, including the fragment markers Excel buries in table
	// markup.
	for _, n := range collect(body, func(n *html.Node) bool {
		return n.Type == html.CommentNode
	}) {
		detach(n)
		result.Stats.RecordRemoval("#comment")
	}

	// Office paragraph markers: keep real text, drop the empty ones.
	for _, n := range collectTag(body, "o:p") {
		if strings.TrimSpace(textContent(n)) != "" {
			unwrap(n)
			result.Stats.RecordUnwrap("o:p")
		} else {
			detach(n)
			result.Stats.RecordRemoval("o:p")
		}
	}

	// XML namespace leakage: any remaining prefixed tag unwraps.
	for _, n := range collect(body, func(n *html.Node) bool {
		return n.Type == html.ElementNode && strings.Contains(n.Data, ":")
	}) {
		unwrap(n)
		result.Stats.RecordUnwrap(n.Data)
	}

	// Word Online paragraph-end markers carry no content at all.
	for _, n := range collect(body, isParagraphEndMarker) {
		detach(n)
		result.Stats.RecordRemoval("span")
	}

	// Spans whose style has no visual declaration are structure noise.
	for _, n := range collectTag(body, "span") {
		if hasVisualStyle(n) {
			continue
		}
		unwrap(n)
		result.Stats.RecordUnwrap("span")
	}

	// Paragraphs nested in list entries and table cells unwrap in place;
	// a line break keeps the visual separation for every paragraph after
	// the first.
	for _, cell := range collectTag(body, "li", "td", "th") {
		seen := 0
		var direct []*html.Node
		for child := cell.FirstChild; child != nil; child = child.NextSibling {
			if isElem(child, "p") {
				direct = append(direct, child)
			}
		}
		for _, p := range direct {
			if seen > 0 {
				cell.InsertBefore(elem("br"), p)
			}
			unwrap(p)
			result.Stats.RecordUnwrap("p")
			seen++
		}
	}

	// Images that point inside the source document cannot resolve here.
	for _, img := range collectTag(body, "img") {
		src, _ := getAttr(img, "src")
		if strings.HasPrefix(src, "http://") ||
			strings.HasPrefix(src, "https://") ||
			strings.HasPrefix(src, "data:") {
			continue
		}
		if c.config.KeepLocalImages {
			continue
		}
		detach(img)
		result.Stats.RecordRemoval("img")
	}

	// Line breaks keep nothing of their vendor styling.
	for _, br := range collectTag(body, "br") {
		if style, ok := getAttr(br, "style"); ok && strings.Contains(strings.ToLower(style), "mso-") {
			removeAttr(br, "style")
			result.Stats.AttributesRemoved++
		}
	}
}

// hasVisualStyle reports whether any declaration on n is in the visual
// keep-set.
func hasVisualStyle(n *html.Node) bool {
	for _, d := range nodeStyle(n).Decls() {
		if visualStyleProps[d.Property] {
			return true
		}
	}
	return false
}
