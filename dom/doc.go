// Package dom adapts an HTML parse tree to the narrow surface the component
// system needs: element handles, attribute access, and scoped queries.
//
// # Overview
//
// The component core never touches golang.org/x/net/html directly. It
// operates on two small interfaces:
//
//   - Node: one element (tag, attributes, text, parent)
//   - Document: the tree (root access plus scoped queries)
//
// HTMLDocument implements Document over an x/net/html parse tree, with CSS
// selector support from github.com/andybalholm/cascadia. Hosts with a
// different markup representation can supply their own Document and keep the
// rest of the library unchanged.
//
// # Query Scoping
//
// Every query takes a root element and matches descendants of that root
// only; the root itself never appears in results. Passing the document's
// Root() makes a query document-wide. ElementByAttr is the one whole-document
// lookup and does include the root.
//
// # Concurrency
//
// HTMLDocument guards the parse tree with a single RWMutex: queries and
// attribute reads share it, SetAttr takes it exclusively. Binding writes a
// generated identity onto a node while other goroutines scan subtrees, and
// the lock keeps those scans consistent. Node handles are plain values and
// may be copied freely; handles for the same element compare equal.
//
// # Usage
//
//	doc, err := dom.ParseString(markup)
//	if err != nil {
//	    return err
//	}
//	forms, err := doc.QuerySelectorAll(doc.Root(), "form.checkout")
package dom
