package outline

import (
	"io"
	"strings"

	"github.com/treelight/arbor"
	"golang.org/x/net/html"
)

// FromHTML builds a tree from the first list element (<ul> or <ol>) of an
// HTML fragment. Every <li> becomes a node holding the item's own text;
// lists nested inside an item become the item's children. It does no
// interpretation of layout and styling.
//
// The returned root holds rootLabel and the outermost list items as
// children. Fails with ErrNoList if the fragment contains no list.
func FromHTML(input io.Reader, rootLabel string) (*arbor.Node[string], error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	var list *html.Node
	for _, n := range nodes {
		if list = findList(n); list != nil {
			break
		}
	}
	if list == nil {
		return nil, ErrNoList
	}
	root := arbor.Root(rootLabel)
	if err := collectItems(list, root); err != nil {
		return nil, err
	}
	return root, nil
}

func findList(n *html.Node) *html.Node {
	if isList(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if list := findList(c); list != nil {
			return list
		}
	}
	return nil
}

func isList(n *html.Node) bool {
	return n.Type == html.ElementNode && (n.Data == "ul" || n.Data == "ol")
}

func collectItems(list *html.Node, parent *arbor.Node[string]) error {
	for li := list.FirstChild; li != nil; li = li.NextSibling {
		if li.Type != html.ElementNode || li.Data != "li" {
			continue
		}
		node, err := parent.Insert(itemText(li))
		if err != nil {
			return err
		}
		// nested lists below this item become its children
		for c := li.FirstChild; c != nil; c = c.NextSibling {
			if sub := findList(c); sub != nil {
				if err := collectItems(sub, node); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// itemText collects the item's own text, excluding text of nested lists,
// with whitespace normalized.
func itemText(li *html.Node) string {
	var b strings.Builder
	var collect func(n *html.Node)
	collect = func(n *html.Node) {
		if isList(n) {
			return
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	for c := li.FirstChild; c != nil; c = c.NextSibling {
		collect(c)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
