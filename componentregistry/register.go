// Package componentregistry wires the built-in components into a registry.
// Hosts that only use their own components can skip it and register those
// directly.
package componentregistry

import (
	"errors"

	"github.com/chaosarts/chaosui/component"
	"github.com/chaosarts/chaosui/components/form"
	"github.com/chaosarts/chaosui/components/formcontrol"
	pkgerrors "github.com/chaosarts/chaosui/errors"
)

// Register registers all built-in components with the provided registry:
//
//   - form: resolves the form element it controls
//   - formcontrol (alias form-control): resolves the input, select or
//     textarea it controls
//
// Host-specific components are registered separately, before or after this
// call; name collisions overwrite with a warning, so hosts can shadow a
// built-in deliberately.
func Register(registry *component.Registry) error {
	// CRITICAL: Nil registry is a programming error (fatal), not invalid input
	if registry == nil {
		return pkgerrors.WrapFatal(
			errors.New("registry cannot be nil"),
			"ComponentRegistry", "Register", "registry validation")
	}

	if err := form.Register(registry); err != nil {
		return pkgerrors.WrapInvalid(err, "ComponentRegistry", "Register", "form component registration")
	}

	if err := formcontrol.Register(registry); err != nil {
		return pkgerrors.WrapInvalid(err, "ComponentRegistry", "Register", "form control component registration")
	}

	return nil
}
