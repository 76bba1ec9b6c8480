package component

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/chaosarts/chaosui/dom"
	"github.com/chaosarts/chaosui/errors"
	"github.com/chaosarts/chaosui/metric"
)

// Component is the contract for behavior bound to a document node. Every
// component is bound to exactly one node under exactly one binder, and its
// lifecycle surface reflects the binding it received at resolution time.
//
// Implementations embed *Base, which provides the whole surface except the
// optional capabilities below.
type Component interface {
	// Node returns the element this component is bound to.
	Node() dom.Node
	// Name returns the invocation name the component was resolved under,
	// or the empty string before binding.
	Name() string
	// Ready drives the initialization protocol and returns its outcome.
	// See Binding.Ready for the full semantics.
	Ready(ctx context.Context) error
	// State returns the current lifecycle state.
	State() State
	// Done returns a channel that is closed once initialization has
	// completed, successfully or not.
	Done() <-chan struct{}
	// Err returns the recorded initialization outcome: nil while
	// initialization is pending or succeeded, the failure otherwise.
	Err() error
}

// Initializer is the optional initialization hook. The lifecycle engine
// invokes it after every descendant component has completed its own
// initialization. Components without the capability become ready as soon as
// their descendants are.
type Initializer interface {
	Initialize(ctx context.Context) error
}

// Proxied marks components that stand in for behavior living elsewhere.
// The core exposes the flag but never interprets it.
type Proxied interface {
	Proxied() bool
}

// AsInitializer safely casts a component to Initializer
func AsInitializer(c Component) (Initializer, bool) {
	ini, ok := c.(Initializer)
	return ini, ok
}

// IsProxied reports whether a component declares itself proxied
func IsProxied(c Component) bool {
	if p, ok := c.(Proxied); ok {
		return p.Proxied()
	}
	return false
}

// Constructor builds a component instance for a node. Constructors must be
// cheap and must not reach into the rest of the document; descendant work
// belongs in the Initialize hook.
type Constructor func(node dom.Node, deps Dependencies) (Component, error)

// Resolver turns nodes into component instances. It is implemented by the
// binder and handed to components through Dependencies, so instance methods
// can run scoped queries without a package cycle.
type Resolver interface {
	// Document returns the document the resolver operates on.
	Document() dom.Document
	// ComponentByElement resolves a single node, creating and caching the
	// instance on first sight. It returns nil for nodes that do not resolve
	// to a component.
	ComponentByElement(node dom.Node) Component
	// ComponentsByElements resolves a batch of nodes, dropping the ones
	// that do not resolve.
	ComponentsByElements(nodes []dom.Node) []Component
	// DescendantComponents resolves every marked descendant of root.
	DescendantComponents(root dom.Node) []Component
	// ComponentBySelector resolves the first matching descendant of root.
	ComponentBySelector(root dom.Node, selector string) Component
	// ComponentsBySelector resolves all matching descendants of root.
	ComponentsBySelector(root dom.Node, selector string) []Component
	// ComponentsByClassName resolves descendants of root by class token.
	ComponentsByClassName(root dom.Node, class string) []Component
	// ComponentsByTagName resolves descendants of root by tag name.
	ComponentsByTagName(root dom.Node, tag string) []Component
}

// Dependencies provides all external dependencies needed by components.
// Constructors receive it instead of reaching for globals, which keeps
// components testable in isolation.
type Dependencies struct {
	Resolver        Resolver                // Scoped queries and instance resolution
	MetricsRegistry *metric.MetricsRegistry // Metrics registry for Prometheus (can be nil)
	Logger          *slog.Logger            // Structured logger (can be nil, defaults to slog.Default())
	Settings        map[string]any          // Per-name settings from the host profile (can be nil)
}

// GetLogger returns the configured logger or a default logger if none is provided
func (d *Dependencies) GetLogger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.Default()
}

// GetLoggerWithComponent returns a logger configured with component context
func (d *Dependencies) GetLoggerWithComponent(componentName string) *slog.Logger {
	return d.GetLogger().With("component", componentName)
}

// Base is the embeddable default implementation of Component. It stores the
// bound node and the injected dependencies, forwards the lifecycle surface to
// the binding attached at resolution time, and carries the event emitter.
//
// A Base that has not been bound yet reports StateUninitialized, and Ready
// fails with ErrNotBound.
type Base struct {
	node    dom.Node
	deps    Dependencies
	emitter Emitter
	binding atomic.Pointer[Binding]
}

// NewBase creates the embeddable core of a component.
func NewBase(node dom.Node, deps Dependencies) *Base {
	return &Base{node: node, deps: deps}
}

// Node returns the element this component is bound to.
func (b *Base) Node() dom.Node {
	return b.node
}

// Name returns the invocation name the component was resolved under.
func (b *Base) Name() string {
	if bnd := b.binding.Load(); bnd != nil {
		return bnd.Name()
	}
	return ""
}

// ID returns the node identity the instance is cached under, or the empty
// string before binding.
func (b *Base) ID() string {
	if bnd := b.binding.Load(); bnd != nil {
		return bnd.ID()
	}
	return ""
}

// Ready drives the initialization protocol through the attached binding.
func (b *Base) Ready(ctx context.Context) error {
	bnd := b.binding.Load()
	if bnd == nil {
		return errors.ErrNotBound
	}
	return bnd.Ready(ctx)
}

// State returns the current lifecycle state.
func (b *Base) State() State {
	if bnd := b.binding.Load(); bnd != nil {
		return bnd.State()
	}
	return StateUninitialized
}

// Done returns a channel closed once initialization has completed. Before
// binding it returns nil, which blocks forever.
func (b *Base) Done() <-chan struct{} {
	if bnd := b.binding.Load(); bnd != nil {
		return bnd.Done()
	}
	return nil
}

// Err returns the recorded initialization outcome.
func (b *Base) Err() error {
	if bnd := b.binding.Load(); bnd != nil {
		return bnd.Err()
	}
	return nil
}

// Logger returns the injected logger annotated with the component name.
func (b *Base) Logger() *slog.Logger {
	return b.deps.GetLoggerWithComponent(b.Name())
}

// Settings returns the per-name settings injected at construction, or nil.
func (b *Base) Settings() map[string]any {
	return b.deps.Settings
}

// Document returns the document the component lives in, or nil when no
// resolver was injected.
func (b *Base) Document() dom.Document {
	if b.deps.Resolver == nil {
		return nil
	}
	return b.deps.Resolver.Document()
}

// QuerySelector resolves the first component under this component's node
// matching the CSS selector, or nil.
func (b *Base) QuerySelector(selector string) Component {
	if b.deps.Resolver == nil {
		return nil
	}
	return b.deps.Resolver.ComponentBySelector(b.node, selector)
}

// QuerySelectorAll resolves all components under this component's node
// matching the CSS selector.
func (b *Base) QuerySelectorAll(selector string) []Component {
	if b.deps.Resolver == nil {
		return nil
	}
	return b.deps.Resolver.ComponentsBySelector(b.node, selector)
}

// ComponentsByClassName resolves components under this component's node by
// class token.
func (b *Base) ComponentsByClassName(class string) []Component {
	if b.deps.Resolver == nil {
		return nil
	}
	return b.deps.Resolver.ComponentsByClassName(b.node, class)
}

// ComponentsByTagName resolves components under this component's node by tag
// name.
func (b *Base) ComponentsByTagName(tag string) []Component {
	if b.deps.Resolver == nil {
		return nil
	}
	return b.deps.Resolver.ComponentsByTagName(b.node, tag)
}

// On subscribes a handler to an event type and returns its subscription token.
func (b *Base) On(event string, h Handler) string {
	return b.emitter.On(event, h)
}

// Off removes the subscription identified by token.
func (b *Base) Off(token string) {
	b.emitter.Off(token)
}

// Emit dispatches an event to all handlers subscribed to its type.
func (b *Base) Emit(event string, payload any) {
	b.emitter.Emit(Event{Type: event, Payload: payload})
}

// attach wires the binder-owned binding into the base. The binder calls this
// through Bind exactly once per instance.
func (b *Base) attach(bnd *Binding) error {
	if !b.binding.CompareAndSwap(nil, bnd) {
		return errors.ErrAlreadyBound
	}
	return nil
}
