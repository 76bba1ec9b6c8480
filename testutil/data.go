package testutil

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/chaosarts/chaosui/dom"
)

// BasicPage is a flat page with two marked widgets and one unmarked box.
const BasicPage = `<html><body>
	<div class="box">plain</div>
	<div class="box" data-component="widget">first</div>
	<div class="box" data-component="widget">second</div>
</body></html>`

// NestedPage nests marked components three levels deep.
const NestedPage = `<html><body>
	<div data-component="outer">
		<section data-component="inner">
			<span data-component="leaf"></span>
		</section>
	</div>
</body></html>`

// FormPage is a signup form hosting two marked controls.
const FormPage = `<html><body>
	<div data-component="form" id="signup">
		<form>
			<input data-component="formcontrol" name="email" value="ada@example.com">
			<select data-component="formcontrol" name="country"></select>
		</form>
	</div>
</body></html>`

// FailingPage marks one widget to fail its initialization.
const FailingPage = `<html><body>
	<div data-component="widget"></div>
	<div data-component="widget" data-fail="backend unavailable"></div>
</body></html>`

// MustParseDoc parses markup and panics on error. Fixtures are compile-time
// constants, so a parse failure is a programming error.
func MustParseDoc(markup string) *dom.HTMLDocument {
	doc, err := dom.ParseString(markup)
	if err != nil {
		panic(fmt.Sprintf("testutil: parse document: %v", err))
	}
	return doc
}

// MarkedNodes returns every node under the document root carrying the given
// marker attribute, in document order.
func MarkedNodes(doc dom.Document, markerAttr string) []dom.Node {
	return doc.ElementsByAttr(doc.Root(), markerAttr)
}

// DiscardLogger returns a logger that drops everything, for tests that
// exercise warning paths without polluting output.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
