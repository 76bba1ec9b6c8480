// Package config provides profile management for chaosui hosts.
//
// This package handles loading and validation of binder profiles from
// YAML and TOML files with environment variable overrides.
//
// # Core Components
//
// Profile: the host-facing configuration of a binder, covering the marker
// and identity attributes, identity prefix, bootstrap concurrency, log
// level and per-component settings.
//
// Loader: loads a profile with layer merging (base + overrides) and
// environment variable substitution for flexible deployment scenarios.
//
// Settings accessors: typed getters over the per-component settings maps
// handed to constructors.
//
// # Basic Usage
//
// Loading a profile from a single file:
//
//	profile, err := config.Load("chaosui.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	bndr, err := binder.NewBinder(registry, doc, profile.Options()...)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Loading with layers, later files overriding earlier ones:
//
//	loader := config.NewLoader()
//	loader.AddLayer("config/base.yaml")
//	loader.AddLayer("config/production.toml")
//
//	profile, err := loader.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Profile Files
//
// YAML:
//
//	marker_attribute: data-component
//	identity_attribute: id
//	identity_prefix: __data-component_
//	auto_ready: true
//	max_concurrent_init: 4
//	log_level: info
//	components:
//	  widget:
//	    endpoint: /api/items
//	    limit: 25
//
// TOML:
//
//	marker_attribute = "data-component"
//	log_level = "debug"
//
//	[components.widget]
//	endpoint = "/api/items"
//
// The format is chosen by file extension (.yaml, .yml, .toml); anything
// else fails with ErrUnsupportedFormat.
//
// # Environment Variable Overrides
//
// Profile values can be overridden using environment variables, applied
// after all file layers:
//
//	export CHAOSUI_MARKER_ATTRIBUTE="data-widget"
//	export CHAOSUI_LOG_LEVEL="debug"
//	export CHAOSUI_MAX_CONCURRENT_INIT="8"
//
// # Component Settings
//
// The components section maps invocation names to free-form settings. The
// binder injects the matching map into each constructor through
// Dependencies; the typed accessors keep the reads safe:
//
//	endpoint := config.GetString(deps.Settings, "endpoint", "/api")
//	limit := config.GetInt(deps.Settings, "limit", 10)
//
// # Validation
//
// Validate checks attribute names, the identity prefix, the concurrency
// bound and the log level, and normalizes attribute names to lowercase.
// Loaders validate by default; EnableValidation(false) turns it off for
// tooling that works with partial profiles.
package config
