package component

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/chaosarts/chaosui/dom"
	"github.com/chaosarts/chaosui/errors"
	"github.com/chaosarts/chaosui/metric"
)

// State represents the current lifecycle state of a component
type State int32

const (
	// StateUninitialized indicates initialization has not been requested yet
	StateUninitialized State = iota
	// StateInitializing indicates the initialization protocol is running
	StateInitializing
	// StateReady indicates initialization completed successfully
	StateReady
	// StateFailed indicates initialization failed; the failure is recorded
	// and never re-attempted
	StateFailed
)

// String returns a string representation of the component state
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitializing:
		return "initializing"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// BindConfig carries everything a binding needs from the binder.
type BindConfig struct {
	// Node is the element the component is bound to.
	Node dom.Node
	// Name is the invocation name the component was resolved under.
	Name string
	// ID is the node identity the instance is cached under.
	ID string
	// Resolver discovers descendant components during initialization.
	Resolver Resolver
	// Logger records lifecycle transitions (can be nil, defaults to
	// slog.Default()).
	Logger *slog.Logger
	// Metrics counts initialization outcomes (can be nil).
	Metrics *metric.MetricsRegistry
}

// Binding ties one component instance to its node identity and drives the
// initialization protocol. The binder creates exactly one Binding per cached
// instance; it is the observable handle for initialization completion.
//
// State moves Uninitialized -> Initializing -> Ready | Failed, with the
// first transition claimed by compare-and-swap so concurrent Ready calls
// agree on a single run.
type Binding struct {
	comp     Component
	node     dom.Node
	name     string
	id       string
	resolver Resolver
	logger   *slog.Logger
	metrics  *metric.MetricsRegistry

	state atomic.Int32
	done  chan struct{}
	err   error // written once before done closes
}

// Bind wires a freshly constructed component to its binder-owned binding.
// Components embedding Base get their lifecycle surface attached here;
// attaching twice fails with ErrAlreadyBound.
func Bind(comp Component, cfg BindConfig) (*Binding, error) {
	if comp == nil {
		return nil, errors.WrapInvalid(errors.ErrConstructorFailed, "Binding", "Bind", "component validation")
	}
	if cfg.Node == nil {
		return nil, errors.WrapInvalid(errors.ErrNilNode, "Binding", "Bind", "node validation")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	b := &Binding{
		comp:     comp,
		node:     cfg.Node,
		name:     cfg.Name,
		id:       cfg.ID,
		resolver: cfg.Resolver,
		logger:   cfg.Logger,
		metrics:  cfg.Metrics,
		done:     make(chan struct{}),
	}

	if att, ok := comp.(interface{ attach(*Binding) error }); ok {
		if err := att.attach(b); err != nil {
			return nil, errors.Wrap(err, "Binding", "Bind", "attach lifecycle")
		}
	}
	return b, nil
}

// Component returns the bound instance.
func (b *Binding) Component() Component {
	return b.comp
}

// Node returns the element the instance is bound to.
func (b *Binding) Node() dom.Node {
	return b.node
}

// Name returns the invocation name the instance was resolved under.
func (b *Binding) Name() string {
	return b.name
}

// ID returns the node identity the instance is cached under.
func (b *Binding) ID() string {
	return b.id
}

// State returns the current lifecycle state.
func (b *Binding) State() State {
	return State(b.state.Load())
}

// Done returns a channel that is closed once initialization has completed,
// successfully or not.
func (b *Binding) Done() <-chan struct{} {
	return b.done
}

// Err returns the recorded initialization outcome: nil while initialization
// is pending or succeeded, the InitializationError otherwise.
func (b *Binding) Err() error {
	select {
	case <-b.done:
		return b.err
	default:
		return nil
	}
}

// Ready drives the initialization protocol and returns its outcome.
//
// The first caller claims the run: it resolves every marked descendant of
// the bound node, awaits their initialization concurrently, and then invokes
// the component's Initialize hook if it has one. Descendants therefore
// complete strictly before the hook runs; siblings complete in no particular
// order. Every other caller, concurrent or later, blocks until the run has
// completed and returns the same recorded outcome, so the hook executes at
// most once for the lifetime of the binding.
//
// A failure, whether from a descendant or the hook, is recorded as an
// InitializationError naming this binding's node and moves the state to
// Failed. The error keeps only the message of its cause.
func (b *Binding) Ready(ctx context.Context) error {
	if !b.state.CompareAndSwap(int32(StateUninitialized), int32(StateInitializing)) {
		select {
		case <-b.done:
			return b.err
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	start := time.Now()
	err := b.run(ctx)
	if err != nil {
		b.err = errors.NewInitializationError(b.node.Tag(), b.id, err)
		b.state.Store(int32(StateFailed))
		b.logger.Error("component initialization failed",
			"name", b.name,
			"id", b.id,
			"error", b.err)
	} else {
		b.state.Store(int32(StateReady))
		b.logger.Debug("component ready",
			"name", b.name,
			"id", b.id,
			"duration", time.Since(start))
	}
	b.observe(time.Since(start))
	close(b.done)

	b.emit()
	return b.err
}

// run executes one initialization pass: descendants first, then the hook.
func (b *Binding) run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if b.resolver != nil {
		descendants := b.resolver.DescendantComponents(b.node)
		if len(descendants) > 0 {
			// No shared cancelation: one failing subtree must not abort
			// its siblings.
			var g errgroup.Group
			for _, d := range descendants {
				g.Go(func() error {
					return d.Ready(ctx)
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
		}
	}

	if ini, ok := AsInitializer(b.comp); ok {
		return ini.Initialize(ctx)
	}
	return nil
}

// observe records the initialization outcome with the metrics registry.
func (b *Binding) observe(elapsed time.Duration) {
	if b.metrics == nil {
		return
	}
	outcome := "success"
	if b.err != nil {
		outcome = "failure"
	}
	b.metrics.Metrics.RecordInitialization(b.name, outcome)
	b.metrics.Metrics.ObserveInitializationDuration(b.name, elapsed)
}

// emit publishes the lifecycle outcome on the component's own emitter.
func (b *Binding) emit() {
	em, ok := b.comp.(interface{ Emit(string, any) })
	if !ok {
		return
	}
	if b.err != nil {
		em.Emit(EventError, b.err)
		return
	}
	em.Emit(EventReady, nil)
}
