package msoffice

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// unwrap replaces n with its own children in the parent's child sequence,
// preserving order. Nodes without a parent are left alone.
func unwrap(n *html.Node) {
	parent := n.Parent
	if parent == nil {
		return
	}
	for n.FirstChild != nil {
		c := n.FirstChild
		n.RemoveChild(c)
		parent.InsertBefore(c, n)
	}
	parent.RemoveChild(n)
}

// detach removes n from its parent. Safe to call on already-detached nodes.
func detach(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// elem creates a new element node for the given (lower-case) tag name.
func elem(tag string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
}

func getAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func removeAttr(n *html.Node, key string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

// isElem reports whether n is an element with one of the given tag names.
func isElem(n *html.Node, tags ...string) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	for _, t := range tags {
		if n.Data == t {
			return true
		}
	}
	return false
}

// collect returns all nodes in the subtree rooted at n (excluding n itself)
// that satisfy pred, in document order. Collecting before mutating keeps the
// traversal safe when the matched nodes are detached or unwrapped afterwards.
func collect(n *html.Node, pred func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var visit func(*html.Node)
	visit = func(cur *html.Node) {
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			if pred(c) {
				out = append(out, c)
			}
			visit(c)
		}
	}
	visit(n)
	return out
}

// collectTag is collect restricted to elements with one of the given names.
func collectTag(n *html.Node, tags ...string) []*html.Node {
	return collect(n, func(c *html.Node) bool { return isElem(c, tags...) })
}

// textContent concatenates all text node payloads under n.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var visit func(*html.Node)
	visit = func(cur *html.Node) {
		if cur.Type == html.TextNode {
			sb.WriteString(cur.Data)
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return sb.String()
}

// hasDescendant reports whether any element with one of the given tag names
// exists under n.
func hasDescendant(n *html.Node, tags ...string) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if isElem(c, tags...) || hasDescendant(c, tags...) {
			return true
		}
	}
	return false
}

// cloneTree deep-copies a node and its subtree. The copy has no parent.
func cloneTree(n *html.Node) *html.Node {
	clone := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
	}
	if len(n.Attr) > 0 {
		clone.Attr = make([]html.Attribute, len(n.Attr))
		copy(clone.Attr, n.Attr)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		clone.AppendChild(cloneTree(c))
	}
	return clone
}

// renderChildren serializes the children of n to an HTML fragment string.
func renderChildren(n *html.Node) string {
	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return ""
		}
	}
	return buf.String()
}

// parseFragment parses an HTML fragment string in a block context and returns
// the top-level nodes. Malformed input yields whatever the parser recovers.
func parseFragment(fragment string) []*html.Node {
	ctx := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), ctx)
	if err != nil {
		return nil
	}
	return nodes
}

// isWhitespaceText reports whether n is a text node holding only whitespace.
// Non-breaking spaces count as whitespace here.
func isWhitespaceText(n *html.Node) bool {
	if n.Type != html.TextNode {
		return false
	}
	return strings.TrimSpace(strings.ReplaceAll(n.Data, "\u00a0", " ")) == ""
}

// nodeStyle parses the style attribute of n. Elements without one yield an
// empty map.
func nodeStyle(n *html.Node) StyleMap {
	style, ok := getAttr(n, "style")
	if !ok {
		return StyleMap{}
	}
	return ParseStyle(style)
}

// classTokens splits a class attribute value into its tokens.
func classTokens(n *html.Node) []string {
	class, ok := getAttr(n, "class")
	if !ok {
		return nil
	}
	return strings.Fields(class)
}

// hasClassToken reports whether the class attribute contains the exact token.
func hasClassToken(n *html.Node, token string) bool {
	for _, t := range classTokens(n) {
		if t == token {
			return true
		}
	}
	return false
}
