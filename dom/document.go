package dom

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/chaosarts/chaosui/errors"
)

// Document is the tree a binder operates on. Query operations are scoped to
// a root element and cover its descendants only, never the root itself;
// passing a nil root yields no matches. Implementations must allow concurrent
// readers and serialize attribute mutation against reads.
type Document interface {
	// Root returns the document's root element.
	Root() Node
	// QuerySelector returns the first descendant of root matching the CSS
	// selector in document order, or nil.
	QuerySelector(root Node, selector string) (Node, error)
	// QuerySelectorAll returns all descendants of root matching the CSS
	// selector in document order.
	QuerySelectorAll(root Node, selector string) ([]Node, error)
	// ElementsByClassName returns all descendants of root carrying the given
	// class token.
	ElementsByClassName(root Node, class string) []Node
	// ElementsByTagName returns all descendants of root with the given tag
	// name. The wildcard "*" matches every element.
	ElementsByTagName(root Node, tag string) []Node
	// ElementsByAttr returns all descendants of root on which the named
	// attribute is set, regardless of value.
	ElementsByAttr(root Node, name string) []Node
	// ElementByAttr returns the first element in the whole document whose
	// named attribute equals value, or nil.
	ElementByAttr(name, value string) Node
}

// HTMLDocument is the Document implementation over an HTML parse tree.
// A single writer mutates attributes under an exclusive lock while queries
// share a read lock, so identity write-back never races a subtree scan.
type HTMLDocument struct {
	mu   sync.RWMutex
	root *html.Node // the <html> element
}

// Parse reads an HTML document from r.
func Parse(r io.Reader) (*HTMLDocument, error) {
	tree, err := html.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "HTMLDocument", "Parse", "parse markup")
	}
	root := firstElement(tree)
	if root == nil {
		return nil, errors.Wrap(errors.ErrNoDocument, "HTMLDocument", "Parse", "locate root element")
	}
	return &HTMLDocument{root: root}, nil
}

// ParseString reads an HTML document from a string.
func ParseString(markup string) (*HTMLDocument, error) {
	return Parse(strings.NewReader(markup))
}

// Root returns the document's root element.
func (d *HTMLDocument) Root() Node {
	return htmlNode{doc: d, n: d.root}
}

// QuerySelector returns the first descendant of root matching the CSS
// selector in document order, or nil.
func (d *HTMLDocument) QuerySelector(root Node, selector string) (Node, error) {
	matches, err := d.QuerySelectorAll(root, selector)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}
	return matches[0], nil
}

// QuerySelectorAll returns all descendants of root matching the CSS selector
// in document order.
func (d *HTMLDocument) QuerySelectorAll(root Node, selector string) ([]Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("selector %q: %w", selector, errors.ErrBadSelector)
	}
	hn, ok := d.unwrap(root)
	if !ok {
		return nil, nil
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []Node
	for _, m := range sel.MatchAll(hn) {
		if m == hn {
			continue
		}
		out = append(out, htmlNode{doc: d, n: m})
	}
	return out, nil
}

// ElementsByClassName returns all descendants of root carrying the given
// class token.
func (d *HTMLDocument) ElementsByClassName(root Node, class string) []Node {
	return d.collect(root, func(n *html.Node) bool {
		v, ok := findAttr(n, "class")
		if !ok {
			return false
		}
		for _, token := range strings.Fields(v) {
			if token == class {
				return true
			}
		}
		return false
	})
}

// ElementsByTagName returns all descendants of root with the given tag name.
func (d *HTMLDocument) ElementsByTagName(root Node, tag string) []Node {
	tag = strings.ToLower(tag)
	return d.collect(root, func(n *html.Node) bool {
		return tag == "*" || n.Data == tag
	})
}

// ElementsByAttr returns all descendants of root on which the named attribute
// is set.
func (d *HTMLDocument) ElementsByAttr(root Node, name string) []Node {
	return d.collect(root, func(n *html.Node) bool {
		_, ok := findAttr(n, name)
		return ok
	})
}

// ElementByAttr returns the first element in the whole document whose named
// attribute equals value, or nil. The root element itself is considered.
func (d *HTMLDocument) ElementByAttr(name, value string) Node {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if v, ok := findAttr(n, name); ok && v == value {
			found = n
			return false
		}
		return true
	})
	if found == nil {
		return nil
	}
	return htmlNode{doc: d, n: found}
}

// collect gathers descendants of root satisfying match, in document order.
func (d *HTMLDocument) collect(root Node, match func(*html.Node) bool) []Node {
	hn, ok := d.unwrap(root)
	if !ok {
		return nil
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []Node
	walk(hn, func(n *html.Node) bool {
		if n != hn && match(n) {
			out = append(out, htmlNode{doc: d, n: n})
		}
		return true
	})
	return out
}

// unwrap recovers the underlying parse node from a handle. Handles from a
// different document are rejected.
func (d *HTMLDocument) unwrap(root Node) (*html.Node, bool) {
	hn, ok := root.(htmlNode)
	if !ok || hn.doc != d {
		return nil, false
	}
	return hn.n, true
}

// walk visits n and its element descendants in document order until visit
// returns false.
func walk(n *html.Node, visit func(*html.Node) bool) bool {
	if n.Type == html.ElementNode {
		if !visit(n) {
			return false
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, visit) {
			return false
		}
	}
	return true
}

// firstElement finds the root element under a parsed document node.
func firstElement(n *html.Node) *html.Node {
	if n.Type == html.ElementNode {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if e := firstElement(c); e != nil {
			return e
		}
	}
	return nil
}
