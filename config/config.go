package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/chaosarts/chaosui/binder"
	"github.com/chaosarts/chaosui/component"
	"github.com/chaosarts/chaosui/errors"
)

// ComponentSettings holds per-component settings maps. The key is the
// invocation name the settings apply to (e.g. "widget"); keys are matched
// case-insensitively against resolved names.
type ComponentSettings map[string]map[string]any

// Profile is the host-facing configuration of a binder. A zero Profile is
// not usable; start from DefaultProfile or a Loader, both of which seed
// the defaults before applying overrides.
type Profile struct {
	// MarkerAttribute is the attribute whose value names the component
	// bound to a node.
	MarkerAttribute string `json:"marker_attribute" yaml:"marker_attribute" toml:"marker_attribute"`
	// IdentityAttribute carries the node identity used as the cache key.
	IdentityAttribute string `json:"identity_attribute" yaml:"identity_attribute" toml:"identity_attribute"`
	// IdentityPrefix prefixes generated node identities.
	IdentityPrefix string `json:"identity_prefix" yaml:"identity_prefix" toml:"identity_prefix"`
	// AutoReady starts initialization in the background at resolution time.
	AutoReady bool `json:"auto_ready" yaml:"auto_ready" toml:"auto_ready"`
	// MaxConcurrentInit bounds bootstrap concurrency; zero means unlimited.
	MaxConcurrentInit int `json:"max_concurrent_init" yaml:"max_concurrent_init" toml:"max_concurrent_init"`
	// LogLevel is the minimum level for binder logging: debug, info, warn
	// or error.
	LogLevel string `json:"log_level" yaml:"log_level" toml:"log_level"`
	// Components maps invocation names to settings handed to their
	// constructors.
	Components ComponentSettings `json:"components,omitempty" yaml:"components,omitempty" toml:"components"`
}

// DefaultProfile returns the profile a binder runs with when the host
// configures nothing.
func DefaultProfile() *Profile {
	return &Profile{
		MarkerAttribute:   binder.DefaultMarkerAttribute,
		IdentityAttribute: binder.DefaultIdentityAttribute,
		IdentityPrefix:    binder.DefaultIdentityPrefix,
		AutoReady:         true,
		LogLevel:          "info",
	}
}

// Validate checks the profile and normalizes attribute names to lowercase.
func (p *Profile) Validate() error {
	if p.MarkerAttribute == "" {
		return fmt.Errorf("marker_attribute is required: %w", errors.ErrMissingConfig)
	}
	p.MarkerAttribute = strings.ToLower(p.MarkerAttribute)
	if !isValidAttributeName(p.MarkerAttribute) {
		return fmt.Errorf("marker_attribute %q is not a valid attribute name: %w",
			p.MarkerAttribute, errors.ErrInvalidConfig)
	}

	if p.IdentityAttribute == "" {
		return fmt.Errorf("identity_attribute is required: %w", errors.ErrMissingConfig)
	}
	p.IdentityAttribute = strings.ToLower(p.IdentityAttribute)
	if !isValidAttributeName(p.IdentityAttribute) {
		return fmt.Errorf("identity_attribute %q is not a valid attribute name: %w",
			p.IdentityAttribute, errors.ErrInvalidConfig)
	}

	if p.IdentityPrefix == "" {
		return fmt.Errorf("identity_prefix is required: %w", errors.ErrMissingConfig)
	}

	if p.MaxConcurrentInit < 0 {
		return fmt.Errorf("max_concurrent_init must not be negative: %w", errors.ErrInvalidConfig)
	}

	if _, err := p.Level(); err != nil {
		return err
	}

	for name := range p.Components {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("component settings key cannot be empty: %w", errors.ErrInvalidConfig)
		}
	}

	return nil
}

// Level parses the configured log level. An empty level defaults to info.
func (p *Profile) Level() (slog.Level, error) {
	if p.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(p.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level %q: %w", p.LogLevel, errors.ErrInvalidConfig)
	}
	return level, nil
}

// Options translates the profile into binder options.
func (p *Profile) Options() []binder.Option {
	opts := []binder.Option{
		binder.WithMarkerAttribute(p.MarkerAttribute),
		binder.WithIdentityAttribute(p.IdentityAttribute),
		binder.WithIdentityPrefix(p.IdentityPrefix),
		binder.WithAutoReady(p.AutoReady),
		binder.WithMaxConcurrentInit(p.MaxConcurrentInit),
	}
	if len(p.Components) > 0 {
		opts = append(opts, binder.WithComponentSettings(p.Components))
	}
	return opts
}

// SettingsFor returns the settings map for an invocation name, matching
// the key case-insensitively. Returns nil when nothing is configured.
func (p *Profile) SettingsFor(name string) map[string]any {
	if p.Components == nil {
		return nil
	}
	if s, ok := p.Components[name]; ok {
		return s
	}
	normalized := component.NormalizeName(name)
	for key, s := range p.Components {
		if component.NormalizeName(key) == normalized {
			return s
		}
	}
	return nil
}

// Clone creates a deep copy of the profile.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return &Profile{}
	}

	data, err := json.Marshal(p)
	if err != nil {
		copied := *p
		return &copied
	}

	var clone Profile
	if err := json.Unmarshal(data, &clone); err != nil {
		copied := *p
		return &copied
	}

	return &clone
}

// String returns a JSON representation of the profile
func (p *Profile) String() string {
	data, _ := json.MarshalIndent(p, "", "  ")
	return string(data)
}

// isValidAttributeName checks if a string can serve as an HTML attribute
// name. Valid characters are lowercase letters, digits, dashes, underscores
// and colons, starting with a letter.
func isValidAttributeName(s string) bool {
	if len(s) == 0 {
		return false
	}

	for i, r := range s {
		if i == 0 && !unicode.IsLower(r) {
			return false
		}
		if !unicode.IsLower(r) && !unicode.IsDigit(r) &&
			r != '-' && r != '_' && r != ':' {
			return false
		}
	}
	return true
}
