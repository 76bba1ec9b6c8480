// Package formcontrol provides the built-in form control component for
// input, select and textarea elements.
package formcontrol

import (
	"context"

	"github.com/chaosarts/chaosui/component"
	"github.com/chaosarts/chaosui/config"
	"github.com/chaosarts/chaosui/dom"
	"github.com/chaosarts/chaosui/errors"
)

// controlSelector matches the elements a control can drive, in document
// order.
const controlSelector = "input, select, textarea"

// Control binds to a node that either is a form control element or contains
// one. The controlled element is resolved during initialization.
type Control struct {
	*component.Base
	element dom.Node
}

// New creates a form control component bound to the given node.
func New(node dom.Node, deps component.Dependencies) (component.Component, error) {
	return &Control{Base: component.NewBase(node, deps)}, nil
}

// Initialize resolves the controlled element: the bound node itself when it
// is an input, select or textarea, otherwise the first such descendant in
// document order. A node with no control under it fails initialization.
func (c *Control) Initialize(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	node := c.Node()
	switch node.Tag() {
	case "input", "select", "textarea":
		c.element = node
		return nil
	}

	doc := c.Document()
	if doc == nil {
		return errors.Wrap(errors.ErrNoDocument, "Control", "Initialize", "document lookup")
	}
	element, err := doc.QuerySelector(node, controlSelector)
	if err != nil {
		return errors.Wrap(err, "Control", "Initialize", "control element query")
	}
	if element == nil {
		return errors.Wrap(errors.ErrNoControlledElement, "Control", "Initialize", "control element query")
	}

	c.element = element
	return nil
}

// Element returns the controlled element. It is nil until initialization
// completes; callers that observed Done() or a successful Ready see the
// resolved element.
func (c *Control) Element() dom.Node {
	return c.element
}

// ControlName returns the value of the controlled element's name attribute,
// or the empty string.
func (c *Control) ControlName() string {
	if c.element == nil {
		return ""
	}
	name, _ := c.element.Attr("name")
	return name
}

// Value returns the controlled element's current value. The attribute read
// defaults to "value" and can be redirected through the component settings
// key "value_attribute", which custom widgets use to expose their value on
// a data attribute.
func (c *Control) Value() string {
	if c.element == nil {
		return ""
	}
	attr := config.GetString(c.Settings(), "value_attribute", "value")
	value, _ := c.element.Attr(attr)
	return value
}

// OwnerForm walks up from the controlled element to the nearest ancestor
// form element, or nil when the control sits outside any form.
func (c *Control) OwnerForm() dom.Node {
	if c.element == nil {
		return nil
	}
	for node := c.element.Parent(); node != nil; node = node.Parent() {
		if node.Tag() == "form" {
			return node
		}
	}
	return nil
}

// Register registers the form control component with the given registry
// under both its canonical and hyphenated names.
func Register(registry *component.Registry) error {
	return registry.RegisterWithConfig(component.RegistrationConfig{
		Constructor: New,
		Names:       []string{"formcontrol", "form-control"},
		Description: "Form control component resolving the input, select or textarea it controls",
		Version:     "1.0.0",
	})
}
