package msoffice

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Word encodes lists two unrelated ways. Word Online wraps every single
// item in its own container div holding a one-entry list. Desktop Word
// emits flat sibling paragraphs tagged with an mso-list level and renders
// the bullet/number glyph inline in a marker span. Both reduce to runs of
// (level, ordered, content) items fed through buildNestedList.
var (
	listLevelRe = regexp.MustCompile(`(?i)\blevel([0-9]+)`)

	// Decimal, roman or lettered enumerators followed by "." or ")".
	orderedMarkerRe = regexp.MustCompile(`^\s*(?:[0-9]+|[ivxlcdm]+|[IVXLCDM]+|[a-zA-Z])[.)]`)
)

// rebuildOnlineLists reconstructs Word Online's wrapper-per-item encoding.
func (c *Cleaner) rebuildOnlineLists(doc *goquery.Document, result *Result) {
	body := bodyNode(doc)
	if body == nil {
		return
	}
	c.spliceListRuns(body, isOnlineListWrapper, onlineListItem, result)
}

// rebuildDesktopLists reconstructs desktop Word's flat-paragraph encoding.
func (c *Cleaner) rebuildDesktopLists(doc *goquery.Document, result *Result) {
	body := bodyNode(doc)
	if body == nil {
		return
	}
	c.spliceListRuns(body, isDesktopListParagraph, desktopListItem, result)
}

// spliceListRuns scans every parent's children left to right, collects each
// maximal run of consecutive matching siblings, and splices the nested list
// built from the run in place of the originals. Whitespace-only text nodes
// between matches belong to the run; serialized Word output is full of them.
func (c *Cleaner) spliceListRuns(root *html.Node, match func(*html.Node) bool, extract func(*html.Node) (ListItem, bool), result *Result) {
	parents := append([]*html.Node{root}, collect(root, func(n *html.Node) bool {
		return n.Type == html.ElementNode
	})...)

	for _, parent := range parents {
		child := parent.FirstChild
		for child != nil {
			if !match(child) {
				child = child.NextSibling
				continue
			}

			var run []*html.Node
			n := child
			for n != nil {
				switch {
				case match(n):
					run = append(run, n)
				case isWhitespaceText(n) && n.NextSibling != nil && match(n.NextSibling):
					run = append(run, n)
				default:
					n = nil
					continue
				}
				n = n.NextSibling
			}
			var next *html.Node
			if last := run[len(run)-1]; last != nil {
				next = last.NextSibling
			}

			var items []ListItem
			for _, rn := range run {
				if !match(rn) {
					continue
				}
				if item, ok := extract(rn); ok {
					items = append(items, item)
				}
			}

			if list := buildNestedList(items); list != nil {
				parent.InsertBefore(list, run[0])
				result.Stats.ListsRebuilt++
				result.Stats.ListItems += len(items)
			}
			for _, rn := range run {
				detach(rn)
			}

			child = next
		}
	}
}

// --- Word Online (wrapper-based) encoding ---

func isOnlineListWrapper(n *html.Node) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	class, ok := getAttr(n, "class")
	return ok && strings.Contains(class, "ListContainerWrapper")
}

// onlineListItem extracts the descriptor from a per-item wrapper: the list
// kind from the single-entry list inside it, the level from the item's ARIA
// level, and the content from the item with Word Online's trailing noise
// stripped.
func onlineListItem(wrapper *html.Node) (ListItem, bool) {
	var li, list *html.Node
	for _, d := range collect(wrapper, func(c *html.Node) bool {
		return isElem(c, "li", "ol", "ul")
	}) {
		switch {
		case isElem(d, "li") && li == nil:
			li = d
		case list == nil:
			list = d
		}
	}
	if li == nil {
		return ListItem{}, false
	}

	level := 1
	if v, ok := getAttr(li, "data-aria-level"); ok {
		if lv, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && lv >= 1 {
			level = lv
		}
	}

	clone := cloneTree(li)
	for _, marker := range collect(clone, isParagraphEndMarker) {
		detach(marker)
	}
	for _, p := range collectTag(clone, "p") {
		unwrap(p)
	}
	content := strings.TrimRight(renderChildren(clone), "\u00a0 \t\n")

	return ListItem{
		Level:   level,
		Ordered: isElem(list, "ol"),
		Content: content,
	}, true
}

// isParagraphEndMarker matches the zero-width trailing span Word Online
// appends to every paragraph and list item.
func isParagraphEndMarker(n *html.Node) bool {
	if !isElem(n, "span") {
		return false
	}
	if _, ok := getAttr(n, "data-ccp-props"); ok {
		return true
	}
	return hasClassToken(n, "EOP")
}

// --- Desktop Word (flat paragraph) encoding ---

func isDesktopListParagraph(n *html.Node) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	v, ok := nodeStyle(n).Get("mso-list")
	return ok && !strings.EqualFold(strings.TrimSpace(v), "ignore")
}

// desktopListItem extracts the descriptor from a flat list paragraph. The
// level rides in the mso-list declaration, the glyph Word renders inline
// sits in a marker span that both classifies the list kind and gets
// stripped from the content.
func desktopListItem(p *html.Node) (ListItem, bool) {
	level := 1
	if v, ok := nodeStyle(p).Get("mso-list"); ok {
		if m := listLevelRe.FindStringSubmatch(v); m != nil {
			if lv, err := strconv.Atoi(m[1]); err == nil && lv >= 1 {
				level = lv
			}
		}
	}

	marker := firstListMarker(p)
	ordered := false
	class, _ := getAttr(p, "class")
	switch {
	case strings.Contains(class, "MsoListNumber"):
		ordered = true
	case strings.Contains(class, "MsoListBullet"):
		ordered = false
	case marker != nil:
		ordered = orderedMarkerRe.MatchString(textContent(marker))
	}

	clone := cloneTree(p)
	for _, m := range collect(clone, isListMarker) {
		detach(m)
	}

	return ListItem{
		Level:   level,
		Ordered: ordered,
		Content: renderChildren(clone),
	}, true
}

// isListMarker matches the span carrying the literal bullet/number glyph,
// tagged with the mso-list:Ignore token.
func isListMarker(n *html.Node) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	v, ok := nodeStyle(n).Get("mso-list")
	return ok && strings.EqualFold(strings.TrimSpace(v), "ignore")
}

func firstListMarker(p *html.Node) *html.Node {
	markers := collect(p, isListMarker)
	if len(markers) == 0 {
		return nil
	}
	return markers[0]
}
