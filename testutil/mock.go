// Package testutil provides shared fixtures for component tree tests:
// scripted components, initialization journals and canned documents.
package testutil

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/chaosarts/chaosui/component"
	"github.com/chaosarts/chaosui/dom"
)

// FailAttribute marks a node whose component must fail initialization. The
// attribute's value becomes the failure message.
const FailAttribute = "data-fail"

// Journal records entries in completion order, across goroutines.
type Journal struct {
	mu      sync.Mutex
	entries []string
}

// Record appends an entry.
func (j *Journal) Record(entry string) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.entries = append(j.entries, entry)
}

// Entries returns a copy of the recorded entries.
func (j *Journal) Entries() []string {
	j.mu.Lock()
	defer j.mu.Unlock()

	out := make([]string, len(j.entries))
	copy(out, j.entries)
	return out
}

// IndexOf returns the position of the first matching entry, or -1.
func (j *Journal) IndexOf(entry string) int {
	j.mu.Lock()
	defer j.mu.Unlock()

	for i, e := range j.entries {
		if e == entry {
			return i
		}
	}
	return -1
}

// Gauge tracks how many initializations run at once and the high-water mark.
type Gauge struct {
	mu      sync.Mutex
	current int
	max     int
}

// Enter counts one initialization in.
func (g *Gauge) Enter() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.current++
	if g.current > g.max {
		g.max = g.current
	}
}

// Exit counts one initialization out.
func (g *Gauge) Exit() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.current--
}

// Max returns the highest concurrent count seen.
func (g *Gauge) Max() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.max
}

// RecordingComponent journals its initialization under its node identity and
// optionally delays or fails it. The zero collaborators are all optional.
type RecordingComponent struct {
	*component.Base

	Journal *Journal
	Gauge   *Gauge
	Delay   time.Duration
	InitErr error

	calls atomic.Int32
}

// Initialize runs the scripted hook: enter the gauge, wait out the delay,
// journal the identity, return the scripted error.
func (c *RecordingComponent) Initialize(ctx context.Context) error {
	c.calls.Add(1)

	if c.Gauge != nil {
		c.Gauge.Enter()
		defer c.Gauge.Exit()
	}

	if c.Delay > 0 {
		select {
		case <-time.After(c.Delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if c.Journal != nil {
		c.Journal.Record(c.ID())
	}
	return c.InitErr
}

// InitializeCalls returns how many times the hook ran.
func (c *RecordingComponent) InitializeCalls() int {
	return int(c.calls.Load())
}

// RecordingConstructor returns a constructor whose components share the
// given journal and gauge. A node carrying FailAttribute fails its hook with
// the attribute's text.
func RecordingConstructor(journal *Journal, gauge *Gauge, delay time.Duration) component.Constructor {
	return func(node dom.Node, deps component.Dependencies) (component.Component, error) {
		c := &RecordingComponent{
			Base:    component.NewBase(node, deps),
			Journal: journal,
			Gauge:   gauge,
			Delay:   delay,
		}
		if msg, ok := node.Attr(FailAttribute); ok {
			if msg == "" {
				msg = "initialization failed"
			}
			c.InitErr = errors.New(msg)
		}
		return c, nil
	}
}
