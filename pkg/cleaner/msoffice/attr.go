package msoffice

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// keptAttrs is the per-tag attribute allow-list. style survives on every
// element (normalizeStyles has already judged it); everything else goes,
// including classes, lang and the data-* markers earlier passes consumed.
var keptAttrs = map[string]map[string]bool{
	"a":   {"href": true, "target": true, "title": true, "rel": true},
	"img": {"src": true, "alt": true, "width": true, "height": true},
	"td":  {"colspan": true, "rowspan": true},
	"th":  {"colspan": true, "rowspan": true, "scope": true},
	"ol":  {"start": true, "type": true},
}

// normalizeAttributes retains only the allow-listed attributes per element
// kind.
func (c *Cleaner) normalizeAttributes(doc *goquery.Document, result *Result) {
	body := bodyNode(doc)
	if body == nil {
		return
	}
	for _, n := range collect(body, func(n *html.Node) bool {
		return n.Type == html.ElementNode && len(n.Attr) > 0
	}) {
		keep := keptAttrs[n.Data]
		var kept []html.Attribute
		for _, a := range n.Attr {
			if a.Key == "style" || (keep != nil && keep[a.Key]) {
				kept = append(kept, a)
				continue
			}
			result.Stats.AttributesRemoved++
		}
		n.Attr = kept
	}
}
