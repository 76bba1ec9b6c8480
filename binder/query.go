package binder

import (
	"github.com/chaosarts/chaosui/component"
	"github.com/chaosarts/chaosui/dom"
)

// Document returns the document this binder operates on.
func (b *Binder) Document() dom.Document {
	return b.doc
}

// ComponentBySelector resolves the first node under root matching the CSS
// selector. The match is positional: when the first matching node carries
// no marker the result is nil even if a later match would resolve. Bad
// selectors are logged and yield nil.
func (b *Binder) ComponentBySelector(root dom.Node, selector string) component.Component {
	b.observeQuery("querySelector")
	node, err := b.doc.QuerySelector(root, selector)
	if err != nil {
		b.logger.Warn("selector query failed", "selector", selector, "error", err)
		return nil
	}
	return b.ComponentByElement(node)
}

// ComponentsBySelector resolves all nodes under root matching the CSS
// selector, dropping nodes that resolve to no component.
func (b *Binder) ComponentsBySelector(root dom.Node, selector string) []component.Component {
	b.observeQuery("querySelectorAll")
	nodes, err := b.doc.QuerySelectorAll(root, selector)
	if err != nil {
		b.logger.Warn("selector query failed", "selector", selector, "error", err)
		return nil
	}
	return b.ComponentsByElements(nodes)
}

// ComponentsByClassName resolves all nodes under root carrying the given
// class.
func (b *Binder) ComponentsByClassName(root dom.Node, class string) []component.Component {
	b.observeQuery("byClassName")
	return b.ComponentsByElements(b.doc.ElementsByClassName(root, class))
}

// ComponentsByTagName resolves all nodes under root with the given tag.
func (b *Binder) ComponentsByTagName(root dom.Node, tag string) []component.Component {
	b.observeQuery("byTagName")
	return b.ComponentsByElements(b.doc.ElementsByTagName(root, tag))
}

// DescendantComponents resolves every marked node below root. The
// initialization protocol relies on this to find the components an
// instance must await before its own hook runs.
func (b *Binder) DescendantComponents(root dom.Node) []component.Component {
	b.observeQuery("descendants")
	return b.ComponentsByElements(b.doc.ElementsByAttr(root, b.markerAttr))
}

// All resolves every marked node in the document.
func (b *Binder) All() []component.Component {
	b.observeQuery("all")
	return b.ComponentsByElements(b.doc.ElementsByAttr(b.doc.Root(), b.markerAttr))
}
