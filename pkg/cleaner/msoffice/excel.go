package msoffice

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// Excel keeps almost all cell formatting in head stylesheets keyed by
// generated classes (.xl65, .xl66, ...). The stylesheet is discarded with
// the head, so the visual subset gets baked into inline styles first.
var excelKeepProps = map[string]bool{
	"color":            true,
	"background-color": true,
	"font-weight":      true,
	"font-style":       true,
	"text-decoration":  true,
}

// classRuleTable maps a CSS class name to its kept declarations, in
// stylesheet order.
type classRuleTable map[string][]Declaration

// bakeExcelStyles rewrites the raw document so that class-selector rules
// from embedded stylesheets appear as inline declarations on the matching
// elements, then drops column-sizing elements. Runs before body extraction
// because the stylesheets live in the head.
func (c *Cleaner) bakeExcelStyles(raw string, result *Result) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		result.AddWarning("excel", "stylesheet bake-in skipped, document did not parse", err.Error())
		return raw
	}

	table := buildClassRuleTable(doc)
	if len(table) > 0 {
		doc.Find("[class]").Each(func(_ int, s *goquery.Selection) {
			var baked []Declaration
			for _, name := range strings.Fields(s.AttrOr("class", "")) {
				baked = append(baked, table[name]...)
			}
			if len(baked) == 0 {
				return
			}
			// Existing inline declarations go last: serialization order makes
			// inline win on conflicting properties, matching inline > external
			// specificity.
			inline := ParseStyle(s.AttrOr("style", ""))
			merged := newStyleMap(append(baked, inline.Decls()...)...)
			s.SetAttr("style", merged.String())
			result.Stats.ExcelRulesApplied += len(baked)
		})
	}

	// Column sizing carries no rich-text information and its attributes
	// would otherwise leak through attribute normalization.
	doc.Find("col, colgroup").Each(func(_ int, s *goquery.Selection) {
		result.Stats.RecordRemoval(goquery.NodeName(s))
		s.Remove()
	})

	out, err := doc.Html()
	if err != nil {
		result.AddWarning("excel", "stylesheet bake-in skipped, document did not serialize", err.Error())
		return raw
	}
	return out
}

// buildClassRuleTable scans every stylesheet block for class-selector rules.
// Element-type selectors carry Excel's own defaults, not user formatting,
// and are ignored.
func buildClassRuleTable(doc *goquery.Document) classRuleTable {
	table := classRuleTable{}
	doc.Find("style").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		// Excel wraps stylesheet text in HTML comment guards.
		text = strings.TrimPrefix(text, "<!--")
		text = strings.TrimSuffix(text, "-->")

		sheet, err := parser.Parse(text)
		if err != nil {
			return
		}
		for _, rule := range sheet.Rules {
			if rule.Kind != css.QualifiedRule {
				continue
			}
			for _, sel := range rule.Selectors {
				sel = strings.TrimSpace(sel)
				if !strings.HasPrefix(sel, ".") {
					continue
				}
				name := strings.TrimPrefix(sel, ".")
				if name == "" || strings.ContainsAny(name, " .:#>[") {
					continue
				}
				for _, d := range rule.Declarations {
					prop := strings.ToLower(strings.TrimSpace(d.Property))
					if prop == "background" {
						prop = "background-color"
					}
					if !excelKeepProps[prop] {
						continue
					}
					table[name] = append(table[name], Declaration{
						Property: prop,
						Value:    strings.TrimSpace(d.Value),
					})
				}
			}
		}
	})
	return table
}
