package msoffice

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// dedupInheritedStyles drops declarations that repeat the parent's value
// for the same property. Word restates inherited formatting on every level
// of nesting; after normalization those repetitions are pure weight.
// Comparisons run against a snapshot of the original maps so the outcome
// does not depend on traversal order.
func (c *Cleaner) dedupInheritedStyles(doc *goquery.Document, result *Result) {
	body := bodyNode(doc)
	if body == nil {
		return
	}

	styled := collect(body, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		_, ok := getAttr(n, "style")
		return ok
	})

	snapshot := make(map[*html.Node]StyleMap, len(styled))
	for _, n := range styled {
		snapshot[n] = nodeStyle(n)
	}

	for _, n := range styled {
		parent, ok := snapshot[n.Parent]
		if !ok {
			continue
		}
		var kept []Declaration
		for _, d := range snapshot[n].Decls() {
			if pv, has := parent.Get(d.Property); has && strings.EqualFold(strings.TrimSpace(pv), strings.TrimSpace(d.Value)) {
				result.Stats.StylesDropped++
				continue
			}
			kept = append(kept, d)
		}
		if len(kept) == 0 {
			removeAttr(n, "style")
			continue
		}
		if len(kept) != snapshot[n].Len() {
			setAttr(n, "style", newStyleMap(kept...).String())
		}
	}
}
