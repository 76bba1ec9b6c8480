// Package form provides the built-in form component. It locates the form
// element it controls and exposes it to collaborators once initialization
// has completed.
package form

import (
	"context"

	"github.com/chaosarts/chaosui/component"
	"github.com/chaosarts/chaosui/dom"
	"github.com/chaosarts/chaosui/errors"
)

// Form binds to a node that either is a form element or contains one. The
// controlled element is resolved during initialization, after every marked
// descendant is ready.
type Form struct {
	*component.Base
	element dom.Node
}

// New creates a form component bound to the given node.
func New(node dom.Node, deps component.Dependencies) (component.Component, error) {
	return &Form{Base: component.NewBase(node, deps)}, nil
}

// Initialize resolves the controlled form element: the bound node itself
// when it is a form, otherwise the first descendant form in document order.
// A node with no form under it fails initialization.
func (f *Form) Initialize(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	node := f.Node()
	if node.Tag() == "form" {
		f.element = node
		return nil
	}

	doc := f.Document()
	if doc == nil {
		return errors.Wrap(errors.ErrNoDocument, "Form", "Initialize", "document lookup")
	}
	element, err := doc.QuerySelector(node, "form")
	if err != nil {
		return errors.Wrap(err, "Form", "Initialize", "form element query")
	}
	if element == nil {
		return errors.Wrap(errors.ErrNoControlledElement, "Form", "Initialize", "form element query")
	}

	f.element = element
	return nil
}

// Element returns the controlled form element. It is nil until
// initialization completes; callers that observed Done() or a successful
// Ready see the resolved element.
func (f *Form) Element() dom.Node {
	return f.element
}

// Register registers the form component with the given registry
func Register(registry *component.Registry) error {
	return registry.RegisterWithConfig(component.RegistrationConfig{
		Constructor: New,
		Names:       []string{"form"},
		Description: "Form component resolving the form element it controls",
		Version:     "1.0.0",
	})
}
