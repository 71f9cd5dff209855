package msoffice

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// keptStyleProps is the visual keep-set plus alignment, which matters on
// blocks but not on the inline spans that removeNoise judges.
var keptStyleProps = map[string]bool{
	"color":            true,
	"background-color": true,
	"font-size":        true,
	"font-weight":      true,
	"font-style":       true,
	"text-decoration":  true,
	"vertical-align":   true,
	"text-align":       true,
}

// defaultStyleValues lists per property the values a browser renders
// identically with no declaration at all. Word writes these out explicitly;
// they carry no information. Comparison is lower-cased with any !important
// qualifier stripped.
var defaultStyleValues = map[string][]string{
	"color":            {"#000000", "black", "windowtext", "inherit", "rgb(0,0,0)", "rgb(0, 0, 0)"},
	"background-color": {"#ffffff", "white", "transparent", "inherit", "rgb(255,255,255)", "rgb(255, 255, 255)"},
	"font-size":        {"12pt"},
	"font-weight":      {"normal", "400"},
	"font-style":       {"normal"},
	"text-decoration":  {"none"},
	"vertical-align":   {"baseline", "top"},
	"text-align":       {"left", "start"},
}

var importantRe = regexp.MustCompile(`(?i)\s*!\s*important\s*$`)

// normalizeStyles re-derives every style attribute from the keep-set,
// discarding default-valued declarations. Attributes left empty are removed
// rather than serialized as style="".
func (c *Cleaner) normalizeStyles(doc *goquery.Document, result *Result) {
	body := bodyNode(doc)
	if body == nil {
		return
	}
	for _, n := range collect(body, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		_, ok := getAttr(n, "style")
		return ok
	}) {
		in := nodeStyle(n)
		var kept []Declaration
		for _, d := range in.Decls() {
			if !keptStyleProps[d.Property] {
				result.Stats.StylesDropped++
				continue
			}
			val := importantRe.ReplaceAllString(d.Value, "")
			if isDefaultStyleValue(d.Property, val) {
				result.Stats.StylesDropped++
				continue
			}
			kept = append(kept, Declaration{Property: d.Property, Value: val})
		}
		if len(kept) == 0 {
			removeAttr(n, "style")
			continue
		}
		setAttr(n, "style", newStyleMap(kept...).String())
	}
}

func isDefaultStyleValue(prop, value string) bool {
	value = strings.ToLower(strings.TrimSpace(value))
	for _, def := range defaultStyleValues[prop] {
		if value == def {
			return true
		}
	}
	return false
}
