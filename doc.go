// Package chaosui binds behavioral components to marked nodes of an HTML
// document tree.
//
// # Philosophy: Markup Names Behavior
//
// A page declares its behavior in its markup: every node carrying the marker
// attribute (data-component by default) names the component that should run
// on it. The host hands the module a parsed document and a registry of
// constructors; the binder resolves each marked node to exactly one cached
// component instance and drives its initialization, descendants strictly
// before ancestors.
//
// The module stays out of two businesses on purpose:
//   - Rendering: it never generates or mutates markup beyond identity
//     attributes. The document is input, not output.
//   - Transport: components receive a document and settings, never sockets.
//     Hosts that need network data fetch it and re-run their own hooks.
//
// # Architecture
//
//	┌─────────────────────────────────────┐
//	│              Binder                 │  resolution, identity
//	│   (resolve, cache, bootstrap)       │  cache, Init fan-out
//	└─────────────────────────────────────┘
//	    ↓ resolves names via      ↓ wraps instances in
//	┌──────────────────┐    ┌──────────────────────────┐
//	│     Registry     │    │         Binding          │
//	│ (names → ctors)  │    │ (state machine, Done/Err)│
//	└──────────────────┘    └──────────────────────────┘
//	                              ↓ initializes
//	┌─────────────────────────────────────┐
//	│            Components               │  Base embedding,
//	│  (Initialize hook, events, queries) │  settings injection
//	└─────────────────────────────────────┘
//	                ↓ over
//	┌─────────────────────────────────────┐
//	│             Document                │  x/net/html tree,
//	│      (dom adapter + selectors)      │  cascadia matching
//	└─────────────────────────────────────┘
//
// # Initialization Protocol
//
// Every binding moves through four states:
//
//	uninitialized → initializing → ready | failed
//
// The first Ready caller claims the run by compare-and-swap; everyone else
// blocks on the binding's done channel and receives the same recorded
// outcome. A run awaits every marked descendant of the bound node
// concurrently, then invokes the component's Initialize hook if it declares
// one, so the hook executes at most once and only over ready descendants.
//
// Failures stay where they happen:
//   - A failing subtree never aborts its siblings.
//   - A failing descendant fails its ancestors' runs, each recorded as an
//     InitializationError naming the ancestor's own node.
//   - failed is terminal. The hook is never re-attempted; later Ready calls
//     return the recorded error.
//
// # Framework Packages
//
// Core:
//   - component: component contract, Base embedding, registry, lifecycle
//     bindings, event emitter
//   - binder: document-wide resolution, identity assignment, bootstrap
//   - dom: document adapter over x/net/html with cascadia selectors
//
// Built-in components:
//   - components/form: resolves and exposes a controlled form element
//   - components/formcontrol: resolves input/select/textarea controls
//   - componentregistry: registration of the built-ins
//
// Infrastructure:
//   - config: profiles (YAML/TOML files, env overrides) mapped to binder
//     options
//   - health: lifecycle health reporting, monitoring and aggregation
//   - metric: Prometheus metrics
//   - errors: structured error handling with severity classes
//   - testutil: scripted components and canned pages for tests
//
// # Usage Patterns
//
// Basic bootstrap:
//
//	doc, err := dom.ParseString(markup)
//	if err != nil {
//	    return err
//	}
//
//	registry := component.NewRegistry()
//	if err := componentregistry.Register(registry); err != nil {
//	    return err
//	}
//
//	b, err := binder.NewBinder(registry, doc)
//	if err != nil {
//	    return err
//	}
//	if err := b.Init(ctx); err != nil {
//	    return err
//	}
//
// Custom component:
//
//	type Gallery struct {
//	    *component.Base
//	}
//
//	func NewGallery(node dom.Node, deps component.Dependencies) (component.Component, error) {
//	    return &Gallery{Base: component.NewBase(node, deps)}, nil
//	}
//
//	// Initialize runs after every marked descendant of the node is ready.
//	func (g *Gallery) Initialize(ctx context.Context) error {
//	    slides := g.ComponentsByClassName("slide")
//	    g.Logger().Debug("gallery assembled", "slides", len(slides))
//	    return nil
//	}
//
//	registry.Register(NewGallery, "gallery")
//
// Profile-driven setup:
//
//	profile, err := config.Load("profile.yaml")
//	if err != nil {
//	    return err
//	}
//	b, err := binder.NewBinder(registry, doc, profile.Options()...)
//
// Health reporting:
//
//	status := health.Snapshot("page", b)
//	if !status.IsHealthy() {
//	    logger.Warn("page degraded", "status", status.Status, "message", status.Message)
//	}
//
// # Extension Points
//
//  1. Components: embed *component.Base, optionally declare Initialize,
//     register the constructor under one or more invocation names.
//  2. Documents: the binder works against the dom.Document interface, so
//     hosts can wrap tree sources other than parsed HTML strings.
//  3. Settings: profiles carry per-name settings maps handed to
//     constructors through Dependencies, read with the config helpers.
//
// # Design Principles
//
// Resolution Never Panics:
//   - Unregistered names, nil nodes and constructor failures degrade to
//     logged nil results
//   - Initialization failures are recorded, reported and isolated
//
// Explicit State:
//   - The binder owns caches and counters; no package-level registries
//   - One Binding per instance is the single lifecycle authority
//
// Testability:
//   - Constructors receive their dependencies, no globals
//   - Documents are plain values parsed from strings
//   - testutil scripts components and pages for table tests
//
// # Version
//
// Current: v0.1.0
package chaosui
