package binder

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/chaosarts/chaosui/component"
	"github.com/chaosarts/chaosui/dom"
	"github.com/chaosarts/chaosui/errors"
	"github.com/chaosarts/chaosui/metric"
)

// Default attribute names and the synthetic identity prefix.
const (
	DefaultMarkerAttribute   = "data-component"
	DefaultIdentityAttribute = "id"
	DefaultIdentityPrefix    = "__data-component_"
)

// Binder resolves marked nodes of one document into component instances.
// It owns the node-identity cache guaranteeing at most one instance per
// node, generates collision-free identities for nodes that lack one, and
// implements the component.Resolver contract consumed by instances.
//
// A Binder is scoped to exactly one registry and one document. Hosts that
// serve several documents create one Binder per document; nothing is
// process-wide.
type Binder struct {
	registry *component.Registry
	doc      dom.Document
	logger   *slog.Logger
	metrics  *metric.MetricsRegistry

	markerAttr     string
	identityAttr   string
	identityPrefix string
	settings       map[string]map[string]any

	baseCtx           context.Context
	autoReady         bool
	maxConcurrentInit int

	mu      sync.RWMutex
	cache   map[string]*component.Binding // binding by node identity
	counter uint64                        // advanced only when an identity is generated
}

// NewBinder creates a binder resolving against the given registry and
// operating on the given document.
func NewBinder(registry *component.Registry, doc dom.Document, opts ...Option) (*Binder, error) {
	if registry == nil {
		return nil, errors.WrapInvalid(
			fmt.Errorf("registry is nil"), "Binder", "NewBinder", "registry validation")
	}
	if doc == nil {
		return nil, errors.WrapInvalid(
			errors.ErrNoDocument, "Binder", "NewBinder", "document validation")
	}

	b := &Binder{
		registry:       registry,
		doc:            doc,
		logger:         slog.Default(),
		markerAttr:     DefaultMarkerAttribute,
		identityAttr:   DefaultIdentityAttribute,
		identityPrefix: DefaultIdentityPrefix,
		baseCtx:        context.Background(),
		autoReady:      true,
		cache:          make(map[string]*component.Binding),
	}

	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, errors.WrapInvalid(err, "Binder", "NewBinder", "apply option")
		}
	}
	return b, nil
}

// Registry returns the registry this binder resolves against.
func (b *Binder) Registry() *component.Registry {
	return b.registry
}

// ComponentByElement resolves a single node, creating and caching the
// instance on first sight. Nodes without a marker, with an unregistered
// name, or with a failing constructor yield nil; resolution failures are
// logged here and never escape.
func (b *Binder) ComponentByElement(node dom.Node) component.Component {
	comp, _ := b.ResolveElement(node)
	return comp
}

// ResolveElement resolves a node like ComponentByElement and additionally
// returns the instance's binding, the observable handle for initialization
// completion. Callers needing a guarantee wait on the binding instead of
// relying on the background start.
func (b *Binder) ResolveElement(node dom.Node) (component.Component, *component.Binding) {
	if node == nil {
		return nil, nil
	}

	// A cached identity short-circuits before the marker is considered.
	if id, ok := node.Attr(b.identityAttr); ok && id != "" {
		b.mu.RLock()
		cached := b.cache[id]
		b.mu.RUnlock()
		if cached != nil {
			b.observeResolution(cached.Name(), "cached")
			return cached.Component(), cached
		}
	}

	raw, ok := node.Attr(b.markerAttr)
	name := component.NormalizeName(raw)
	if !ok || name == "" {
		b.observeResolution("", "unmarked")
		return nil, nil
	}

	ctor, ok := b.registry.Resolve(name)
	if !ok {
		b.logger.Warn("component resolution failed",
			"error", errors.NewResolutionError(name, node.Tag(), errors.ErrNotRegistered))
		b.observeResolution(name, "miss")
		return nil, nil
	}

	comp, err := ctor(node, b.dependencies(name))
	if err == nil && comp == nil {
		err = errors.ErrConstructorFailed
	}
	if err != nil {
		b.logger.Warn("component resolution failed",
			"error", errors.NewResolutionError(name, node.Tag(), err))
		b.observeResolution(name, "error")
		return nil, nil
	}

	bnd, reused, err := b.bindAndCache(node, name, comp)
	if err != nil {
		b.logger.Warn("component resolution failed",
			"error", errors.NewResolutionError(name, node.Tag(), err))
		b.observeResolution(name, "error")
		return nil, nil
	}
	if reused {
		b.observeResolution(name, "cached")
		return bnd.Component(), bnd
	}

	b.observeResolution(name, "created")
	if b.autoReady {
		go func() { _ = bnd.Ready(b.baseCtx) }()
	}
	return bnd.Component(), bnd
}

// ComponentByID returns the component cached under the given identity,
// resolving the identified element on first sight.
func (b *Binder) ComponentByID(id string) component.Component {
	if id == "" {
		return nil
	}

	b.mu.RLock()
	cached := b.cache[id]
	b.mu.RUnlock()
	if cached != nil {
		return cached.Component()
	}

	return b.ComponentByElement(b.doc.ElementByAttr(b.identityAttr, id))
}

// ComponentsByElements resolves a batch of nodes, dropping the ones that do
// not resolve to a component.
func (b *Binder) ComponentsByElements(nodes []dom.Node) []component.Component {
	components := make([]component.Component, 0, len(nodes))
	for _, node := range nodes {
		if comp := b.ComponentByElement(node); comp != nil {
			components = append(components, comp)
		}
	}
	return components
}

// Release drops the cached instance for a node identity so the next
// resolution of its node creates a fresh one. The node keeps its identity
// attribute. Returns false when the identity is not cached.
func (b *Binder) Release(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.cache[id]; !exists {
		return false
	}
	delete(b.cache, id)
	if b.metrics != nil {
		b.metrics.Metrics.SetInstancesActive(len(b.cache))
	}
	return true
}

// States returns a snapshot of lifecycle states by node identity.
func (b *Binder) States() map[string]component.State {
	b.mu.RLock()
	defer b.mu.RUnlock()

	states := make(map[string]component.State, len(b.cache))
	for id, bnd := range b.cache {
		states[id] = bnd.State()
	}
	return states
}

// Bindings returns a snapshot of all cached bindings.
func (b *Binder) Bindings() []*component.Binding {
	b.mu.RLock()
	defer b.mu.RUnlock()

	bindings := make([]*component.Binding, 0, len(b.cache))
	for _, bnd := range b.cache {
		bindings = append(bindings, bnd)
	}
	return bindings
}

// Len returns the number of cached component instances.
func (b *Binder) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.cache)
}

// bindAndCache claims the node's identity and inserts the binding. When a
// concurrent resolution of the same node won the race, its binding is
// returned instead and the freshly constructed instance is discarded.
func (b *Binder) bindAndCache(
	node dom.Node,
	name string,
	comp component.Component,
) (*component.Binding, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	identity, ok := node.Attr(b.identityAttr)
	if ok && identity != "" {
		// Reread under the lock: the identity may have appeared since the
		// cache check, written by whoever got here first.
		if existing := b.cache[identity]; existing != nil {
			return existing, true, nil
		}
	} else {
		identity = b.nextIdentity()
		node.SetAttr(b.identityAttr, identity)
	}

	bnd, err := component.Bind(comp, component.BindConfig{
		Node:     node,
		Name:     name,
		ID:       identity,
		Resolver: b,
		Logger:   b.logger,
		Metrics:  b.metrics,
	})
	if err != nil {
		return nil, false, err
	}

	b.cache[identity] = bnd
	if b.metrics != nil {
		b.metrics.Metrics.SetInstancesActive(len(b.cache))
	}
	return bnd, false, nil
}

// nextIdentity generates the next synthetic identity. Candidates colliding
// with a cached identity or with an identifier already present in the
// document are skipped; the counter advances for every candidate consumed.
// Callers must hold the write lock.
func (b *Binder) nextIdentity() string {
	for {
		b.counter++
		candidate := fmt.Sprintf("%s%d", b.identityPrefix, b.counter)
		if _, taken := b.cache[candidate]; taken {
			continue
		}
		if b.doc.ElementByAttr(b.identityAttr, candidate) != nil {
			continue
		}
		return candidate
	}
}

// dependencies assembles the injection set handed to the constructor
// resolved under name.
func (b *Binder) dependencies(name string) component.Dependencies {
	return component.Dependencies{
		Resolver:        b,
		MetricsRegistry: b.metrics,
		Logger:          b.logger,
		Settings:        b.settings[name],
	}
}

func (b *Binder) observeResolution(name, outcome string) {
	if b.metrics == nil {
		return
	}
	b.metrics.Metrics.RecordResolution(name, outcome)
}

func (b *Binder) observeQuery(operation string) {
	if b.metrics == nil {
		return
	}
	b.metrics.Metrics.RecordQuery(operation)
}
