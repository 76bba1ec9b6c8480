package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// Node is one element of a document tree. Implementations are cheap handles
// onto the underlying tree; two Node values obtained for the same element
// compare equal.
type Node interface {
	// Tag returns the lower-cased tag name, e.g. "div" or "form".
	Tag() string
	// Attr returns the value of the named attribute and whether it is set.
	Attr(name string) (string, bool)
	// SetAttr sets the named attribute, replacing any existing value.
	SetAttr(name, value string)
	// Text returns the concatenated text content of the element's subtree.
	Text() string
	// Parent returns the nearest ancestor element, or nil at the root.
	Parent() Node
}

// htmlNode is a handle onto an element of an HTMLDocument. It is a value
// type so that handles for the same element are comparable.
type htmlNode struct {
	doc *HTMLDocument
	n   *html.Node
}

func (hn htmlNode) Tag() string {
	return hn.n.Data
}

func (hn htmlNode) Attr(name string) (string, bool) {
	hn.doc.mu.RLock()
	defer hn.doc.mu.RUnlock()
	return findAttr(hn.n, name)
}

func (hn htmlNode) SetAttr(name, value string) {
	hn.doc.mu.Lock()
	defer hn.doc.mu.Unlock()
	for i, a := range hn.n.Attr {
		if a.Key == name {
			hn.n.Attr[i].Val = value
			return
		}
	}
	hn.n.Attr = append(hn.n.Attr, html.Attribute{Key: name, Val: value})
}

func (hn htmlNode) Text() string {
	hn.doc.mu.RLock()
	defer hn.doc.mu.RUnlock()
	var sb strings.Builder
	collectText(hn.n, &sb)
	return sb.String()
}

func (hn htmlNode) Parent() Node {
	hn.doc.mu.RLock()
	defer hn.doc.mu.RUnlock()
	for p := hn.n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode {
			return htmlNode{doc: hn.doc, n: p}
		}
	}
	return nil
}

func findAttr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}
