package component

import (
	"context"
	stderrors "errors"
	"log/slog"
	"testing"

	"github.com/chaosarts/chaosui/dom"
	"github.com/chaosarts/chaosui/errors"
)

// proxiedComponent declares the proxied capability.
type proxiedComponent struct {
	*Base
	proxied bool
}

func (c *proxiedComponent) Proxied() bool { return c.proxied }

// countingResolver journals which query operations the Base forwarded.
type countingResolver struct {
	doc     dom.Document
	results []Component
	ops     []string
	roots   []dom.Node
}

func (r *countingResolver) record(op string, root dom.Node) {
	r.ops = append(r.ops, op)
	r.roots = append(r.roots, root)
}

func (r *countingResolver) Document() dom.Document { return r.doc }

func (r *countingResolver) ComponentByElement(dom.Node) Component { return nil }

func (r *countingResolver) ComponentsByElements([]dom.Node) []Component { return nil }

func (r *countingResolver) DescendantComponents(root dom.Node) []Component {
	r.record("descendants", root)
	return r.results
}

func (r *countingResolver) ComponentBySelector(root dom.Node, _ string) Component {
	r.record("selector", root)
	if len(r.results) == 0 {
		return nil
	}
	return r.results[0]
}

func (r *countingResolver) ComponentsBySelector(root dom.Node, _ string) []Component {
	r.record("selectorAll", root)
	return r.results
}

func (r *countingResolver) ComponentsByClassName(root dom.Node, _ string) []Component {
	r.record("byClassName", root)
	return r.results
}

func (r *countingResolver) ComponentsByTagName(root dom.Node, _ string) []Component {
	r.record("byTagName", root)
	return r.results
}

func TestAsInitializer(t *testing.T) {
	withHook := &recordingComponent{Base: NewBase(nil, Dependencies{})}
	if _, ok := AsInitializer(withHook); !ok {
		t.Error("recordingComponent should expose the Initialize hook")
	}

	withoutHook := &stubComponent{Base: NewBase(nil, Dependencies{})}
	if _, ok := AsInitializer(withoutHook); ok {
		t.Error("stubComponent should not expose the Initialize hook")
	}
}

func TestIsProxied(t *testing.T) {
	plain := &stubComponent{Base: NewBase(nil, Dependencies{})}
	if IsProxied(plain) {
		t.Error("component without the capability reported proxied")
	}

	off := &proxiedComponent{Base: NewBase(nil, Dependencies{}), proxied: false}
	if IsProxied(off) {
		t.Error("component with capability off reported proxied")
	}

	on := &proxiedComponent{Base: NewBase(nil, Dependencies{}), proxied: true}
	if !IsProxied(on) {
		t.Error("proxied component not reported")
	}
}

func TestBaseUnbound(t *testing.T) {
	doc, err := dom.ParseString(`<html><body><div id="a"></div></body></html>`)
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	node := doc.ElementByAttr("id", "a")

	base := NewBase(node, Dependencies{})

	if base.Node() != node {
		t.Error("Node should return the constructor argument")
	}
	if base.Name() != "" {
		t.Errorf("unbound Name should be empty, got %q", base.Name())
	}
	if base.ID() != "" {
		t.Errorf("unbound ID should be empty, got %q", base.ID())
	}
	if base.State() != StateUninitialized {
		t.Errorf("unbound State should be uninitialized, got %v", base.State())
	}
	if base.Err() != nil {
		t.Errorf("unbound Err should be nil, got %v", base.Err())
	}
	if base.Done() != nil {
		t.Error("unbound Done should be nil")
	}

	if err := base.Ready(context.Background()); !stderrors.Is(err, errors.ErrNotBound) {
		t.Errorf("unbound Ready should fail with ErrNotBound, got %v", err)
	}
}

func TestBaseQueriesWithoutResolver(t *testing.T) {
	base := NewBase(nil, Dependencies{})

	if base.Document() != nil {
		t.Error("Document without resolver should be nil")
	}
	if base.QuerySelector("div") != nil {
		t.Error("QuerySelector without resolver should be nil")
	}
	if base.QuerySelectorAll("div") != nil {
		t.Error("QuerySelectorAll without resolver should be nil")
	}
	if base.ComponentsByClassName("card") != nil {
		t.Error("ComponentsByClassName without resolver should be nil")
	}
	if base.ComponentsByTagName("div") != nil {
		t.Error("ComponentsByTagName without resolver should be nil")
	}
}

func TestBaseQueriesDelegate(t *testing.T) {
	doc, err := dom.ParseString(`<html><body><div id="a"><span></span></div></body></html>`)
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	node := doc.ElementByAttr("id", "a")

	inner := &stubComponent{Base: NewBase(nil, Dependencies{})}
	resolver := &countingResolver{doc: doc, results: []Component{inner}}
	base := NewBase(node, Dependencies{Resolver: resolver})

	if base.Document() != dom.Document(doc) {
		t.Error("Document should come from the resolver")
	}

	if got := base.QuerySelector("span"); got != Component(inner) {
		t.Errorf("QuerySelector returned %v", got)
	}
	if got := base.QuerySelectorAll("span"); len(got) != 1 || got[0] != Component(inner) {
		t.Errorf("QuerySelectorAll returned %v", got)
	}
	if got := base.ComponentsByClassName("card"); len(got) != 1 {
		t.Errorf("ComponentsByClassName returned %v", got)
	}
	if got := base.ComponentsByTagName("span"); len(got) != 1 {
		t.Errorf("ComponentsByTagName returned %v", got)
	}

	// Every query is rooted at the component's own node
	wantOps := []string{"selector", "selectorAll", "byClassName", "byTagName"}
	if len(resolver.ops) != len(wantOps) {
		t.Fatalf("expected %d forwarded queries, got %v", len(wantOps), resolver.ops)
	}
	for i, op := range wantOps {
		if resolver.ops[i] != op {
			t.Errorf("query %d: expected op %q, got %q", i, op, resolver.ops[i])
		}
		if resolver.roots[i] != node {
			t.Errorf("query %d: not rooted at the component node", i)
		}
	}
}

func TestBaseEmitter(t *testing.T) {
	base := NewBase(nil, Dependencies{})

	var got []Event
	token := base.On("change", func(ev Event) { got = append(got, ev) })
	if token == "" {
		t.Fatal("On returned empty token")
	}

	base.Emit("change", "payload")
	if len(got) != 1 || got[0].Payload != "payload" {
		t.Fatalf("expected one event with payload, got %v", got)
	}

	base.Off(token)
	base.Emit("change", nil)
	if len(got) != 1 {
		t.Error("handler called after Off")
	}
}

func TestDependenciesGetLogger(t *testing.T) {
	var deps Dependencies
	if deps.GetLogger() == nil {
		t.Error("GetLogger should fall back to the default logger")
	}

	own := slog.Default().With("test", true)
	deps.Logger = own
	if deps.GetLogger() != own {
		t.Error("GetLogger should return the injected logger")
	}

	if deps.GetLoggerWithComponent("widget") == nil {
		t.Error("GetLoggerWithComponent returned nil")
	}
}
