package component

import (
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/chaosarts/chaosui/errors"
)

// Info holds metadata about a registered component type
type Info struct {
	Names       []string `json:"names"`       // All invocation names of this registration
	Description string   `json:"description"` // Human-readable description
	Version     string   `json:"version"`     // Component version
}

// Registration holds constructor and metadata for a component type
type Registration struct {
	Names       []string    `json:"names"`       // Normalized invocation names
	Description string      `json:"description"` // Human-readable description
	Version     string      `json:"version"`     // Component version
	Constructor Constructor `json:"-"`           // Constructor function (not serializable)
}

// RegistrationConfig provides a clean API for component registration.
// It maps 1:1 to Registration struct fields.
type RegistrationConfig struct {
	Constructor Constructor // Constructor function to create component instances
	Names       []string    // Invocation names, normalized before insertion
	Description string      // Human-readable description of the component
	Version     string      // Component version (semver recommended)
}

// Registry maps invocation names to component constructors. A constructor
// may be registered under many names; lookups normalize the requested name
// the same way registration does, so "  Widget " and "widget" are the same
// key. Re-registering a name overwrites the previous entry and logs a
// warning.
//
// Registration is explicit. Nothing registers itself from init(), so tests
// can build isolated registries with exactly the constructors they need.
type Registry struct {
	constructors map[string]*Registration // Registration by normalized name
	logger       *slog.Logger
	mu           sync.RWMutex // Protects constructors
}

// RegistryOption customizes a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the logger used for registration warnings.
func WithLogger(logger *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry creates a new empty component registry
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		constructors: make(map[string]*Registration),
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NormalizeName maps an invocation name to its registry key: surrounding
// whitespace trimmed, letters lower-cased. The marker attribute value goes
// through the same mapping at resolution time.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register registers a constructor under one or more invocation names.
// Registering with no names, a name that normalizes to the empty string, or
// a nil constructor fails with a RegistrationError and leaves the registry
// unchanged.
func (r *Registry) Register(ctor Constructor, names ...string) error {
	return r.RegisterWithConfig(RegistrationConfig{
		Constructor: ctor,
		Names:       names,
	})
}

// RegisterWithConfig registers a component using a configuration struct.
//
// Example usage:
//
//	registry.RegisterWithConfig(component.RegistrationConfig{
//	    Constructor: form.New,
//	    Names:       []string{"form", "chaos-form"},
//	    Description: "form component resolving its controlled form element",
//	    Version:     "1.0.0",
//	})
func (r *Registry) RegisterWithConfig(config RegistrationConfig) error {
	if len(config.Names) == 0 {
		return errors.NewRegistrationError("", errors.ErrNoNames)
	}
	if config.Constructor == nil {
		return errors.NewRegistrationError(config.Names[0], errors.ErrNilConstructor)
	}

	// Validate every name before touching the table, so a bad name cannot
	// leave a partial registration behind.
	normalized := make([]string, 0, len(config.Names))
	for _, raw := range config.Names {
		name := NormalizeName(raw)
		if name == "" {
			return errors.NewRegistrationError(raw, errors.ErrEmptyName)
		}
		normalized = append(normalized, name)
	}

	registration := &Registration{
		Names:       normalized,
		Description: config.Description,
		Version:     config.Version,
		Constructor: config.Constructor,
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, name := range normalized {
		if _, exists := r.constructors[name]; exists {
			r.logger.Warn("overwriting registered component",
				"name", name)
		}
		r.constructors[name] = registration
	}
	return nil
}

// Resolve returns the constructor registered under the given invocation
// name. The name is normalized before lookup. Resolve never errors; a miss
// is reported through the second return value.
func (r *Registry) Resolve(name string) (Constructor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	registration, exists := r.constructors[NormalizeName(name)]
	if !exists {
		return nil, false
	}
	return registration.Constructor, true
}

// Lookup returns the full registration for an invocation name.
func (r *Registry) Lookup(name string) (*Registration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	registration, exists := r.constructors[NormalizeName(name)]
	return registration, exists
}

// Names returns all registered invocation names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := slices.Collect(maps.Keys(r.constructors))
	slices.Sort(names)
	return names
}

// Len returns the number of registered invocation names.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.constructors)
}

// ListAvailable returns information about all registered component types,
// keyed by invocation name. Metadata is returned without the constructor.
func (r *Registry) ListAvailable() map[string]Info {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]Info, len(r.constructors))
	for name, registration := range r.constructors {
		result[name] = Info{
			Names:       slices.Clone(registration.Names),
			Description: registration.Description,
			Version:     registration.Version,
		}
	}
	return result
}
