package binder

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Init resolves every marked node in the document and drives the
// initialization protocol on each resolved component, waiting until all
// runs settle. Individual failures are logged by their bindings and
// summarized here, never propagated; the only error Init returns is the
// context's.
//
// With auto-ready disabled the concurrency bound set through
// WithMaxConcurrentInit governs how many initialization runs execute at
// once. With auto-ready on, runs start at resolution time and Init merely
// awaits them.
func (b *Binder) Init(ctx context.Context) error {
	marked := b.doc.ElementsByAttr(b.doc.Root(), b.markerAttr)

	var g errgroup.Group
	if b.maxConcurrentInit > 0 {
		g.SetLimit(b.maxConcurrentInit)
	}

	var failures atomic.Int32
	resolved := 0
	for _, node := range marked {
		comp, bnd := b.ResolveElement(node)
		if comp == nil {
			continue
		}
		resolved++
		g.Go(func() error {
			if err := bnd.Ready(ctx); err != nil {
				failures.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	b.logger.Info("bootstrap completed",
		"marked", len(marked),
		"resolved", resolved,
		"failures", failures.Load())
	return ctx.Err()
}
