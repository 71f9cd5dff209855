package msoffice

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// flattenStructure unwraps layout-only container elements and coalesces the
// per-item list fragments the online encoding leaves behind.
func (c *Cleaner) flattenStructure(doc *goquery.Document, result *Result) {
	body := bodyNode(doc)
	if body == nil {
		return
	}

	// Containers resolve deepest-first so nested wrappers collapse in one
	// sweep without re-scanning.
	divs := collectTag(body, "div")
	for i := len(divs) - 1; i >= 0; i-- {
		unwrap(divs[i])
		result.Stats.RecordUnwrap("div")
	}

	// Unwrapping may leave several sibling lists of the same kind where the
	// source had one list split across per-item wrappers. Merge to a fixed
	// point; every merge removes a list node, so this terminates.
	for mergeAdjacentLists(body, result) {
	}
}

// mergeAdjacentLists merges the first adjacent same-kind sibling list pair
// it finds, reporting whether anything changed. Whitespace-only text between
// the two lists is serialization noise and goes with the merge.
func mergeAdjacentLists(body *html.Node, result *Result) bool {
	for _, list := range collectTag(body, "ul", "ol") {
		next := list.NextSibling
		var ws []*html.Node
		for next != nil && isWhitespaceText(next) {
			ws = append(ws, next)
			next = next.NextSibling
		}
		if next == nil || next.Type != html.ElementNode || next.Data != list.Data {
			continue
		}

		for next.FirstChild != nil {
			entry := next.FirstChild
			next.RemoveChild(entry)
			list.AppendChild(entry)
		}
		detach(next)
		for _, w := range ws {
			detach(w)
		}
		result.Stats.ListsMerged++
		return true
	}
	return false
}
