package msoffice

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Word marks headings three different, equally unreliable ways depending on
// the client: an ARIA heading role, a paragraph-style marker on a nested
// span (Word Online), or a legacy Mso class (desktop). Font size breaks the
// tie when the explicit markers name a style without a usable level.
var (
	headingStyleRe    = regexp.MustCompile(`(?i)^heading\s*([0-9]+)`)
	msoHeadingClassRe = regexp.MustCompile(`MsoHeading([1-6])\b`)
	fontSizePtRe      = regexp.MustCompile(`(?i)^([0-9]+(?:\.[0-9]+)?)\s*pt$`)
)

// reconstructHeadings replaces heading-marked paragraphs with real heading
// elements. Must run before list reconstruction so that heading-styled
// paragraphs are never captured as list items.
func (c *Cleaner) reconstructHeadings(doc *goquery.Document, result *Result) {
	body := bodyNode(doc)
	if body == nil {
		return
	}
	for _, p := range collectTag(body, "p") {
		level := headingLevel(p)
		if level == 0 {
			continue
		}
		h := elem("h" + strconv.Itoa(level))
		for p.FirstChild != nil {
			child := p.FirstChild
			p.RemoveChild(child)
			h.AppendChild(child)
		}
		p.Parent.InsertBefore(h, p)
		p.Parent.RemoveChild(p)
		result.Stats.HeadingsRebuilt++
	}
}

// headingLevel resolves the target level 1-6 for a paragraph, or 0 when the
// paragraph carries no heading marker at all. Signals are tried in priority
// order; font-size inference only ever resolves a paragraph that some other
// marker already identified as a heading, so ordinary sized text is safe.
func headingLevel(n *html.Node) int {
	role, hasRole := getAttr(n, "role")
	isRoleHeading := hasRole && strings.EqualFold(strings.TrimSpace(role), "heading")

	// 1. Explicit heading role with a numeric level.
	if isRoleHeading {
		if v, ok := getAttr(n, "aria-level"); ok {
			if lv, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && lv >= 1 && lv <= 6 {
				return lv
			}
		}
	}

	// 2. Paragraph-style marker on a nested element (Word Online). Styles
	// numbered past 6 are custom heading styles; their level comes from the
	// font size instead.
	styledHeading := isRoleHeading
	if style, ok := paragraphStyle(n); ok {
		if m := headingStyleRe.FindStringSubmatch(style); m != nil {
			if lv, err := strconv.Atoi(m[1]); err == nil && lv >= 1 && lv <= 6 {
				return lv
			}
			styledHeading = true
		}
	}

	// 3. Font-size inference for heading-marked paragraphs without a level.
	if styledHeading {
		if lv := fontSizeLevel(n); lv != 0 {
			return lv
		}
	}

	// 4. Legacy desktop class marker.
	if class, ok := getAttr(n, "class"); ok {
		if m := msoHeadingClassRe.FindStringSubmatch(class); m != nil {
			lv, _ := strconv.Atoi(m[1])
			return lv
		}
	}

	return 0
}

// paragraphStyle finds the Word Online paragraph-style marker on the
// paragraph or any nested element.
func paragraphStyle(n *html.Node) (string, bool) {
	if v, ok := getAttr(n, "data-ccp-parastyle"); ok {
		return v, true
	}
	for _, d := range collect(n, func(c *html.Node) bool {
		_, ok := getAttr(c, "data-ccp-parastyle")
		return c.Type == html.ElementNode && ok
	}) {
		v, _ := getAttr(d, "data-ccp-parastyle")
		return v, true
	}
	return "", false
}

// fontSizeLevel maps the largest point size declared on the paragraph or
// its descendants to a heading level. The thresholds are empirical: they
// match what Word uses for its built-in heading styles, nothing more.
func fontSizeLevel(n *html.Node) int {
	max := 0.0
	nodes := append([]*html.Node{n}, collect(n, func(c *html.Node) bool {
		return c.Type == html.ElementNode
	})...)
	for _, cur := range nodes {
		v, ok := nodeStyle(cur).Get("font-size")
		if !ok {
			continue
		}
		m := fontSizePtRe.FindStringSubmatch(strings.TrimSpace(v))
		if m == nil {
			continue
		}
		if pt, err := strconv.ParseFloat(m[1], 64); err == nil && pt > max {
			max = pt
		}
	}
	switch {
	case max == 0:
		return 0
	case max >= 20:
		return 1
	case max >= 16:
		return 2
	case max >= 14:
		return 3
	case max >= 12:
		return 4
	default:
		return 5
	}
}
