// Package health reports the initialization health of bound components with
// thread-safe status tracking and aggregation.
//
// A bound component moves through a small lifecycle: resolved but not yet
// started, initializing, ready, or failed. This package projects those
// states onto the three health levels operators expect and rolls them up
// into page-wide indicators for dashboards, probes and logs.
//
// # Health States
//
// The package supports three health states:
//   - Healthy: the component reached the ready state
//   - Degraded: initialization has not finished yet (not started or in progress)
//   - Unhealthy: initialization failed
//
// Degraded is a normal, transient condition during bootstrap. A page that
// stays degraded is stuck; a page that turns unhealthy has lost components
// for good, because failed initialization is never re-attempted.
//
// # Snapshots
//
// Snapshot builds a one-shot aggregate over every binding a source holds.
// *binder.Binder satisfies BindingSource, so a page snapshot is one call:
//
//	status := health.Snapshot("page", bnd)
//	if status.IsUnhealthy() {
//	    log.Printf("page unhealthy: %s", status.Message)
//	}
//	for _, sub := range status.SubStatuses {
//	    log.Printf("%s (%s): %s", sub.Component, sub.ID, sub.Message)
//	}
//
// The snapshot's Counts field summarizes the state distribution, which is
// handy for a readiness probe that wants "ready == total" rather than a
// healthy/unhealthy verdict.
//
// # Continuous Monitoring
//
// Monitor keeps statuses between refreshes and mixes two kinds of entries:
// those derived from bindings via Observe, keyed by node identity, and
// manual entries for concerns outside the component tree:
//
//	monitor := health.NewMonitor()
//	monitor.UpdateHealthy("backing-api", "responding")
//
//	go monitor.Watch(ctx, bnd, 10*time.Second)
//
//	system := monitor.AggregateHealth("app")
//
// Observe prunes entries for bindings that have been released since the
// previous refresh; manual entries stay until removed.
//
// # Aggregation
//
// Aggregation uses hierarchical worst-case rules:
//   - Any unhealthy component → system unhealthy
//   - Any degraded component (with no unhealthy) → system degraded
//   - All healthy → system healthy
//
// A single failed widget marks the whole page unhealthy. This conservative
// rollup keeps a sea of green from masking a broken corner of the tree.
//
// # Failure Message Sanitization
//
// Failure messages pass through sanitization before they reach a health
// surface. Component hooks routinely fold endpoints, asset paths and
// settings values into their errors:
//
//	// Original failure
//	"fetch https://api.example.com/v1/items with token=abc123"
//
//	// After sanitization via FromBinding
//	"fetch [URL] with [REDACTED]"
//
// Sanitization patterns:
//   - URLs: http://, https://, ws://, wss:// → [URL]
//   - File paths: /path/to/file, C:\path\to\file → [PATH]
//   - IP addresses: 192.168.1.100 → [IP]
//   - Ports: :8080 → [PORT]
//   - Credentials: password=X, token=X, key=X, secret=X → [REDACTED]
//
// Sanitization always runs; there is no opt-out. Redaction may catch
// harmless fragments that merely look like paths or endpoints.
//
// # Thread Safety
//
// All Monitor operations are safe for concurrent use. Reads take a shared
// lock, so aggregation can run alongside a Watch loop. Status itself is a
// value type; WithCounts and WithSubStatus return copies rather than
// mutating the receiver.
package health
