package binder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chaosarts/chaosui/component"
	"github.com/chaosarts/chaosui/metric"
)

// Option is a functional option for configuring the Binder
type Option func(*Binder) error

// WithMarkerAttribute overrides the attribute whose value names the
// component bound to a node, "data-component" by default.
func WithMarkerAttribute(attr string) Option {
	return func(b *Binder) error {
		if attr == "" {
			return fmt.Errorf("marker attribute is empty")
		}
		b.markerAttr = attr
		return nil
	}
}

// WithIdentityAttribute overrides the attribute carrying the node identity
// used as the cache key, "id" by default.
func WithIdentityAttribute(attr string) Option {
	return func(b *Binder) error {
		if attr == "" {
			return fmt.Errorf("identity attribute is empty")
		}
		b.identityAttr = attr
		return nil
	}
}

// WithIdentityPrefix overrides the prefix of generated identities.
func WithIdentityPrefix(prefix string) Option {
	return func(b *Binder) error {
		if prefix == "" {
			return fmt.Errorf("identity prefix is empty")
		}
		b.identityPrefix = prefix
		return nil
	}
}

// WithLogger sets the logger for resolution and lifecycle reporting
func WithLogger(logger *slog.Logger) Option {
	return func(b *Binder) error {
		if logger != nil {
			b.logger = logger
		}
		return nil
	}
}

// WithMetrics attaches a metrics registry recording resolutions, queries
// and initialization outcomes.
func WithMetrics(registry *metric.MetricsRegistry) Option {
	return func(b *Binder) error {
		b.metrics = registry
		return nil
	}
}

// WithComponentSettings provides per-name settings maps handed to
// constructors through Dependencies. Keys are normalized like invocation
// names, so "Widget" and "widget" address the same settings.
func WithComponentSettings(settings map[string]map[string]any) Option {
	return func(b *Binder) error {
		normalized := make(map[string]map[string]any, len(settings))
		for name, s := range settings {
			normalized[component.NormalizeName(name)] = s
		}
		b.settings = normalized
		return nil
	}
}

// WithBaseContext sets the context inherited by initialization runs the
// binder starts in the background. Defaults to context.Background().
func WithBaseContext(ctx context.Context) Option {
	return func(b *Binder) error {
		if ctx == nil {
			return fmt.Errorf("base context is nil")
		}
		b.baseCtx = ctx
		return nil
	}
}

// WithAutoReady controls whether resolution starts the initialization
// protocol in the background. On by default; hosts that drive
// initialization themselves, typically through Init with a concurrency
// bound, turn it off.
func WithAutoReady(enabled bool) Option {
	return func(b *Binder) error {
		b.autoReady = enabled
		return nil
	}
}

// WithMaxConcurrentInit bounds how many initialization runs Init drives at
// once. Zero means unlimited.
func WithMaxConcurrentInit(limit int) Option {
	return func(b *Binder) error {
		if limit < 0 {
			return fmt.Errorf("max concurrent init is negative")
		}
		b.maxConcurrentInit = limit
		return nil
	}
}
