package componentregistry

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaosarts/chaosui/binder"
	"github.com/chaosarts/chaosui/component"
	"github.com/chaosarts/chaosui/components/form"
	"github.com/chaosarts/chaosui/components/formcontrol"
	"github.com/chaosarts/chaosui/dom"
	"github.com/chaosarts/chaosui/errors"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRegister(t *testing.T) {
	registry := component.NewRegistry(component.WithLogger(discardLogger()))

	require.NoError(t, Register(registry))

	for _, name := range []string{"form", "formcontrol", "form-control"} {
		ctor, ok := registry.Resolve(name)
		require.True(t, ok, "built-in %q must resolve", name)
		assert.NotNil(t, ctor)
	}
}

func TestRegisterNilRegistry(t *testing.T) {
	err := Register(nil)

	require.Error(t, err)
	assert.True(t, errors.IsFatal(err))
}

func TestRegisterTwiceOverwrites(t *testing.T) {
	registry := component.NewRegistry(component.WithLogger(discardLogger()))

	require.NoError(t, Register(registry))
	require.NoError(t, Register(registry), "re-registration overwrites, it does not fail")
}

// A form hosting marked controls initializes bottom-up: by the time the
// form's own hook runs, every control has resolved its element.
func TestFormTreeInitializesBottomUp(t *testing.T) {
	doc, err := dom.ParseString(`<html><body>
		<div data-component="form" id="signup">
			<form>
				<input data-component="formcontrol" id="email" name="email" value="ada@example.com">
				<select data-component="form-control" id="country" name="country"></select>
			</form>
		</div>
	</body></html>`)
	require.NoError(t, err)

	registry := component.NewRegistry(component.WithLogger(discardLogger()))
	require.NoError(t, Register(registry))

	b, err := binder.NewBinder(registry, doc,
		binder.WithLogger(discardLogger()),
		binder.WithAutoReady(false))
	require.NoError(t, err)

	host := doc.ElementByAttr("id", "signup")
	require.NotNil(t, host)
	comp, bnd := b.ResolveElement(host)
	require.NotNil(t, comp)

	require.NoError(t, bnd.Ready(context.Background()))

	f, ok := comp.(*form.Form)
	require.True(t, ok)
	require.NotNil(t, f.Element())
	assert.Equal(t, "form", f.Element().Tag())

	for _, id := range []string{"email", "country"} {
		node := doc.ElementByAttr("id", id)
		require.NotNil(t, node)

		child := b.ComponentByElement(node)
		require.NotNil(t, child, "control %q must be resolved by the form's initialization", id)

		ctrl, ok := child.(*formcontrol.Control)
		require.True(t, ok)
		assert.Equal(t, component.StateReady, ctrl.State(), "control %q must be ready before the form hook", id)
		require.NotNil(t, ctrl.Element())
		assert.Equal(t, id, ctrl.ControlName())
	}

	assert.Equal(t, "ada@example.com",
		b.ComponentByElement(doc.ElementByAttr("id", "email")).(*formcontrol.Control).Value())
}
