package binder

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const queryMarkup = `<body>
	<section id="left">
		<div id="plain" class="box"></div>
		<div id="w1" class="box" data-component="widget"></div>
	</section>
	<section id="right">
		<div id="w2" class="box" data-component="widget"></div>
		<span id="g" data-component="ghost"></span>
	</section>
</body>`

func TestComponentBySelectorIsPositional(t *testing.T) {
	b, doc, _ := newTestBinder(t, queryMarkup, WithAutoReady(false))

	// The first match decides: an unmarked first hit yields nil even
	// though a later match would resolve.
	assert.Nil(t, b.ComponentBySelector(doc.Root(), "div.box"))

	comp := b.ComponentBySelector(doc.Root(), "div[data-component]")
	require.NotNil(t, comp)
	assert.Equal(t, "widget", comp.Name())
	id, _ := comp.Node().Attr("id")
	assert.Equal(t, "w1", id)
}

func TestComponentsBySelectorStripsUnresolved(t *testing.T) {
	var buf bytes.Buffer
	b, doc, _ := newTestBinder(t, queryMarkup,
		WithAutoReady(false),
		WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))

	components := b.ComponentsBySelector(doc.Root(), ".box")
	require.Len(t, components, 2)
	for _, comp := range components {
		assert.Equal(t, "widget", comp.Name())
	}
}

func TestComponentsBySelectorScoped(t *testing.T) {
	b, doc, _ := newTestBinder(t, queryMarkup, WithAutoReady(false))

	left := doc.ElementByAttr("id", "left")
	require.NotNil(t, left)

	components := b.ComponentsBySelector(left, "div")
	require.Len(t, components, 1)
	id, _ := components[0].Node().Attr("id")
	assert.Equal(t, "w1", id)
}

func TestBadSelector(t *testing.T) {
	var buf bytes.Buffer
	b, doc, _ := newTestBinder(t, queryMarkup,
		WithAutoReady(false),
		WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))

	assert.Nil(t, b.ComponentBySelector(doc.Root(), "div["))
	assert.Nil(t, b.ComponentsBySelector(doc.Root(), "div["))
	assert.Contains(t, buf.String(), "selector query failed")
}

func TestComponentsByClassName(t *testing.T) {
	b, doc, _ := newTestBinder(t, queryMarkup, WithAutoReady(false))

	components := b.ComponentsByClassName(doc.Root(), "box")
	assert.Len(t, components, 2)
	assert.Empty(t, b.ComponentsByClassName(doc.Root(), "missing"))
}

func TestComponentsByTagName(t *testing.T) {
	b, doc, _ := newTestBinder(t, queryMarkup,
		WithAutoReady(false),
		WithLogger(slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), nil))))

	divs := b.ComponentsByTagName(doc.Root(), "div")
	assert.Len(t, divs, 2)

	// The ghost span is marked but unregistered, so it drops out.
	assert.Empty(t, b.ComponentsByTagName(doc.Root(), "span"))
}

func TestDescendantComponentsScoped(t *testing.T) {
	b, doc, _ := newTestBinder(t, queryMarkup,
		WithAutoReady(false),
		WithLogger(slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), nil))))

	left := doc.ElementByAttr("id", "left")
	require.NotNil(t, left)

	components := b.DescendantComponents(left)
	require.Len(t, components, 1)
	id, _ := components[0].Node().Attr("id")
	assert.Equal(t, "w1", id)
}

func TestAll(t *testing.T) {
	b, _, _ := newTestBinder(t, queryMarkup,
		WithAutoReady(false),
		WithLogger(slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), nil))))

	components := b.All()
	require.Len(t, components, 2)
	assert.Equal(t, 2, b.Len())
}

func TestInstanceScopedQueries(t *testing.T) {
	b, doc, _ := newTestBinder(t,
		`<body>
			<section id="p" data-component="panel">
				<div id="w1" data-component="widget"></div>
			</section>
			<div id="w2" data-component="widget"></div>
		</body>`,
		WithAutoReady(false))

	panel := b.ComponentByElement(doc.ElementByAttr("id", "p"))
	require.NotNil(t, panel)

	// Instance queries cover the panel's own subtree only, so the outside
	// widget never shows up.
	inside := panel.(*testComponent).QuerySelectorAll("[data-component]")
	require.Len(t, inside, 1)
	id, _ := inside[0].Node().Attr("id")
	assert.Equal(t, "w1", id)

	assert.Nil(t, panel.(*testComponent).QuerySelector("#w2"))
	byTag := panel.(*testComponent).ComponentsByTagName("div")
	assert.Len(t, byTag, 1)

	var names []string
	for _, c := range b.ComponentsByTagName(doc.Root(), "div") {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"widget", "widget"}, names)
}
