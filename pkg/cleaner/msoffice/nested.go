package msoffice

import "golang.org/x/net/html"

// ListItem describes one reconstructed entry before nesting: its indent
// level (1 = top), whether its list is numbered, and its inner markup.
// Instances live only for the duration of a single reconstruction pass.
type ListItem struct {
	Level   int
	Ordered bool
	Content string
}

// buildNestedList turns a flat run of level-tagged items into one properly
// nested list tree. A stack tracks the currently open list per depth:
// deeper items open nested lists inside the last entry, shallower items pop
// back to the ancestor list already open at that level. Ordered-ness is
// decided per depth by the first item that opens it, so bullet and numbered
// nesting can mix freely the way Word permits.
func buildNestedList(items []ListItem) *html.Node {
	if len(items) == 0 {
		return nil
	}

	type openList struct {
		node  *html.Node
		level int
	}

	root := newListNode(items[0].Ordered)
	stack := []openList{{node: root, level: 1}}

	for _, item := range items {
		level := item.Level
		if level < 1 {
			level = 1
		}

		for len(stack) > 1 && stack[len(stack)-1].level > level {
			stack = stack[:len(stack)-1]
		}

		top := stack[len(stack)-1]
		if top.level < level {
			nested := newListNode(item.Ordered)
			if entry := lastEntry(top.node); entry != nil {
				entry.AppendChild(nested)
			} else {
				top.node.AppendChild(nested)
			}
			stack = append(stack, openList{node: nested, level: level})
			top = stack[len(stack)-1]
		}

		li := elem("li")
		for _, child := range parseFragment(item.Content) {
			li.AppendChild(child)
		}
		top.node.AppendChild(li)
	}

	return root
}

func newListNode(ordered bool) *html.Node {
	if ordered {
		return elem("ol")
	}
	return elem("ul")
}

// lastEntry returns the last li child of a list node, if any.
func lastEntry(list *html.Node) *html.Node {
	for c := list.LastChild; c != nil; c = c.PrevSibling {
		if isElem(c, "li") {
			return c
		}
	}
	return nil
}
