// Package binder connects registered component constructors to the marked
// nodes of a parsed HTML document.
//
// # Overview
//
// A Binder pairs one component registry with one document. It scans nodes
// for the marker attribute (data-component by default), looks the marker
// value up in the registry, constructs the component, assigns the node a
// durable identity and caches the instance under it. Resolving the same
// node again returns the cached instance; a node never yields two
// components.
//
// # Resolution
//
// ComponentByElement is the single entry point all lookups funnel through.
// For a given node it proceeds in order:
//
//  1. A node whose identity attribute matches a cached instance returns
//     that instance immediately.
//  2. A node without a marker attribute, or with an empty one, resolves to
//     nil. The node is left untouched.
//  3. A marker naming no registered component resolves to nil. The miss is
//     logged once per call and the node's identity stays unset.
//  4. Otherwise the constructor runs, the node receives its identity
//     (keeping an author-supplied one, generating a fresh one else), the
//     instance is cached and its initialization starts in the background.
//
// Resolution never returns an error and never panics; failures degrade to
// a nil result and a log line.
//
// # Identity Generation
//
// Generated identities concatenate the configured prefix and a per-binder
// counter: __data-component_1, __data-component_2 and so on. The counter
// advances only when a node actually consumes an identity. Candidates that
// collide with an identifier already present in the document, or with a
// cached identity, are skipped rather than reused.
//
// # Initialization
//
// Freshly resolved components start the initialization protocol
// asynchronously so resolution callers are never blocked. Callers that
// need the settled outcome use ResolveElement, which additionally returns
// the component.Binding handle, and wait on it:
//
//	comp, bnd := bndr.ResolveElement(node)
//	if bnd != nil {
//	    if err := bnd.Ready(ctx); err != nil {
//	        log.Error("component failed", "error", err)
//	    }
//	}
//
// Init performs the document-wide bootstrap: it resolves every marked node
// and waits until all initialization runs settle. Failures are counted and
// logged, never returned; a broken subtree must not take the host down
// with it. Hosts wanting bounded bootstrap concurrency disable auto-ready
// and set a limit:
//
//	bndr, err := binder.NewBinder(registry, doc,
//	    binder.WithAutoReady(false),
//	    binder.WithMaxConcurrentInit(4),
//	)
//	if err != nil {
//	    return err
//	}
//	if err := bndr.Init(ctx); err != nil {
//	    return err
//	}
//
// # Queries
//
// The scoped query surface (ComponentBySelector, ComponentsBySelector,
// ComponentsByClassName, ComponentsByTagName, DescendantComponents)
// matches nodes below a root and pipes them through resolution, dropping
// nodes that resolve to nothing. Document-wide variants take the
// document's root, or use All to enumerate every marked node. The Binder
// satisfies component.Resolver, so instances inherit the same surface
// scoped to their own subtree.
//
// # Thread Safety
//
// All Binder methods are safe for concurrent use. Constructors run outside
// the binder's lock; when two goroutines race to resolve one node, one
// instance wins the cache and the other is discarded unbound.
package binder
