// Package component provides the core component infrastructure for chaosui,
// covering registration, node binding, the initialization protocol, and the
// event surface shared by all components.
//
// # Overview
//
// A component is a behavioral object bound to exactly one element of a
// document tree. The package defines the Component contract, the embeddable
// Base that implements it, the Registry mapping invocation names to
// constructors, and the Binding that drives the bottom-up initialization
// protocol. Resolution itself, turning marked nodes into cached instances,
// lives in the binder package; this package supplies the pieces the binder
// assembles.
//
// # Component Registration Pattern
//
// chaosui uses EXPLICIT registration rather than init() self-registration.
// This provides:
//   - Testability: Can create isolated registries for testing
//   - Explicitness: Clear picture of which names resolve to which constructors
//   - Control: Main application controls what gets registered
//   - No side effects: No global state modification during package initialization
//
// Registration Flow:
//
//  1. Each component package exports a Register(*Registry) error function
//  2. componentregistry.RegisterAll() orchestrates all registrations
//  3. The host explicitly calls RegisterAll() with a created Registry
//  4. Marked nodes now resolve to instances of the registered components
//
// Example component registration:
//
//	// In components/form/form.go
//	func Register(registry *component.Registry) error {
//		return registry.RegisterWithConfig(component.RegistrationConfig{
//			Constructor: New,
//			Names:       []string{"form", "chaos-form"},
//			Description: "Form component resolving its controlled form element",
//			Version:     "1.0.0",
//		})
//	}
//
//	// In componentregistry/register.go
//	func RegisterAll(registry *component.Registry) error {
//		if err := form.Register(registry); err != nil {
//			return err
//		}
//		// ... more registrations
//		return nil
//	}
//
// Invocation names are normalized on both registration and lookup, with
// surrounding whitespace trimmed and letters lower-cased, so markup authors
// never fight casing. A constructor may be registered under any number of
// names; registering zero names, an empty name, or a nil constructor fails
// with a RegistrationError. Re-registering an existing name overwrites the
// previous entry and logs a warning.
//
// # Core Concepts
//
// Component Interface:
//
// Every component exposes its bound node, its invocation name, and the
// lifecycle surface (Ready, State, Done, Err). Implementations embed *Base,
// which provides all of it:
//
//	type Accordion struct {
//		*component.Base
//	}
//
//	func New(node dom.Node, deps component.Dependencies) (component.Component, error) {
//		return &Accordion{Base: component.NewBase(node, deps)}, nil
//	}
//
// Constructor:
//
// Constructors follow a consistent signature:
//
//	type Constructor func(node dom.Node, deps Dependencies) (Component, error)
//
// Constructors must be cheap and must not reach into the rest of the
// document. Work that touches descendants belongs in the Initialize hook,
// where the protocol guarantees they are ready.
//
// Binding:
//
// The binder creates one Binding per cached instance. The Binding is the
// observable handle for initialization: it exposes State, a Done channel
// that closes on completion, and the recorded outcome via Err. Components
// embedding *Base forward their lifecycle surface to the Binding attached at
// resolution time.
//
// Resolver:
//
// Components query their subtree through the Resolver injected via
// Dependencies. The binder implements it; Base wraps it into node-scoped
// helpers (QuerySelector, ComponentsByClassName, ...), so instance methods
// never see unscoped document access.
//
// # Initialization Protocol
//
// Ready drives initialization bottom-up. The first caller claims the run by
// compare-and-swap on the state, resolves every marked descendant of the
// bound node, awaits their initialization concurrently, and then invokes the
// component's own Initialize hook if it declares one. Every other caller
// blocks until the run completes and observes the same recorded outcome, so
// the hook executes at most once per binding.
//
// State transitions are strictly monotonic:
//
//	Uninitialized -> Initializing -> Ready | Failed
//
// A failure anywhere in the subtree is recorded as an InitializationError
// naming the failed binding's node; each ancestor wraps it again at its own
// level, so the message reads root-to-leaf. The error keeps only the message
// of its cause. A Failed binding never re-runs; later Ready calls return the
// recorded error.
//
// # Capability Interfaces
//
// Optional behavior is declared through small capability interfaces checked
// with explicit assertions:
//
//	if ini, ok := component.AsInitializer(comp); ok {
//		err = ini.Initialize(ctx)
//	}
//
// Initializer is the post-descendant initialization hook. Proxied marks
// components standing in for behavior living elsewhere; the core exposes the
// flag but never interprets it.
//
// # Events
//
// Every Base carries an Emitter. Handlers subscribe by event type and are
// dispatched synchronously outside the emitter lock:
//
//	token := comp.On(component.EventReady, func(ev component.Event) {
//		// component finished initializing
//	})
//	defer comp.Off(token)
//
// The lifecycle engine emits EventReady after a successful run and
// EventError, with the recorded error as payload, after a failed one.
//
// # Dependencies
//
// Dependencies are injected through a structured dependencies object:
//
//	type Dependencies struct {
//		Resolver        Resolver                // Scoped queries and instance resolution
//		MetricsRegistry *metric.MetricsRegistry // Optional: Prometheus metrics
//		Logger          *slog.Logger            // Optional: structured logging
//		Settings        map[string]any          // Optional: per-name settings from the host profile
//	}
//
// Benefits:
//   - Clean dependency injection
//   - Easy testing with stub resolvers
//   - Avoids parameter proliferation in constructors
//
// # Thread Safety
//
// All Registry operations are thread-safe behind a read-write mutex.
// Binding state lives in an atomic and the completion channel closes exactly
// once, so concurrent Ready calls from any number of goroutines agree on a
// single run and a single outcome. The Emitter serializes subscription
// changes and snapshots handlers before dispatch.
//
// # Error Handling
//
// The package reports failures through the errors package taxonomy:
//
//	errors.ErrNoNames         // Registered with no invocation names
//	errors.ErrEmptyName       // Name normalizes to the empty string
//	errors.ErrNilConstructor  // Registered without a constructor
//	errors.ErrNotBound        // Lifecycle call on an unbound component
//	errors.ErrAlreadyBound    // Second Bind on the same instance
//
// Registration failures carry *errors.RegistrationError, initialization
// failures *errors.InitializationError. See the errors package for the
// classification helpers.
//
// # Testing
//
// The explicit registration pattern makes testing straightforward:
//
//	// Create isolated test registry
//	registry := component.NewRegistry()
//
//	// Register only components needed for test
//	if err := form.Register(registry); err != nil {
//		t.Fatal(err)
//	}
//
// Bindings can be driven without a binder by calling Bind directly with a
// stub Resolver, which is how this package tests the protocol itself. See
// lifecycle_test.go for the patterns.
//
// # Architecture Decisions
//
// Explicit Registration vs init() Self-Registration:
//
// Decision: Use explicit Register() functions called by componentregistry
//
// Benefits:
//   - Testability: Can create isolated registries without global state
//   - Explicitness: Clear component dependency graph in componentregistry
//   - Control: Host controls what gets registered and when
//   - Deterministic: Registration order is explicit and controllable
//
// Binding as Concrete Struct vs Interface:
//
// Decision: Expose *Binding directly as the completion handle
//
// Benefits:
//   - One allocation per instance, no interface indirection on hot paths
//   - The full lifecycle surface stays in one place
//   - Base can delegate through an atomic pointer without wrappers
//
// Capability Interfaces vs Fat Component Interface:
//
// Decision: Keep Component minimal and probe optional behavior with
// assertions
//
// Benefits:
//   - Components implement only what they use
//   - New capabilities never break existing components
//   - Call sites make the optionality explicit
package component
