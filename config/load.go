package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/chaosarts/chaosui/errors"
)

// maxProfileSize caps profile files; anything larger is misconfiguration.
const maxProfileSize = 1 << 20

// Loader loads a profile from layered files with environment overrides.
// Layers apply in order, each overriding the fields it sets; environment
// variables with the configured prefix override everything.
type Loader struct {
	layers     []string
	envPrefix  string
	validation bool
}

// NewLoader creates a loader with validation enabled and the CHAOSUI
// environment prefix.
func NewLoader() *Loader {
	return &Loader{
		layers:     []string{},
		envPrefix:  "CHAOSUI",
		validation: true,
	}
}

// AddLayer adds a profile file layer.
func (l *Loader) AddLayer(path string) {
	l.layers = append(l.layers, path)
}

// EnableValidation enables or disables profile validation.
func (l *Loader) EnableValidation(enable bool) {
	l.validation = enable
}

// SetEnvPrefix overrides the environment variable prefix.
func (l *Loader) SetEnvPrefix(prefix string) {
	l.envPrefix = prefix
}

// LoadFile loads a profile from a single file.
func (l *Loader) LoadFile(path string) (*Profile, error) {
	l.layers = []string{path}
	return l.Load()
}

// Load assembles the profile: defaults first, then each layer, then
// environment overrides, then validation.
func (l *Loader) Load() (*Profile, error) {
	profile := DefaultProfile()

	for _, path := range l.layers {
		if err := decodeFile(path, profile); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
	}

	l.applyEnvOverrides(profile)

	if l.validation {
		if err := profile.Validate(); err != nil {
			return nil, err
		}
	}

	return profile, nil
}

// Load loads and validates a profile from a single file, with defaults
// for everything the file leaves out.
func Load(path string) (*Profile, error) {
	return NewLoader().LoadFile(path)
}

// decodeFile decodes one profile file into profile, dispatching on the
// file extension.
func decodeFile(path string, profile *Profile) error {
	data, err := readProfileFile(path)
	if err != nil {
		return err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, profile); err != nil {
			return fmt.Errorf("parse yaml: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, profile); err != nil {
			return fmt.Errorf("parse toml: %w", err)
		}
	default:
		return fmt.Errorf("extension %q: %w", ext, errors.ErrUnsupportedFormat)
	}
	return nil
}

// readProfileFile reads a profile file after size and type checks.
func readProfileFile(path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("empty profile path: %w", errors.ErrMissingConfig)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot stat profile file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("not a regular file: %s", path)
	}
	if info.Size() > maxProfileSize {
		return nil, fmt.Errorf("profile file too large: %d bytes > %d", info.Size(), maxProfileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read profile file: %w", err)
	}
	return data, nil
}

// applyEnvOverrides applies environment variable overrides
func (l *Loader) applyEnvOverrides(p *Profile) {
	if val := os.Getenv(l.envPrefix + "_MARKER_ATTRIBUTE"); val != "" {
		p.MarkerAttribute = val
	}
	if val := os.Getenv(l.envPrefix + "_IDENTITY_ATTRIBUTE"); val != "" {
		p.IdentityAttribute = val
	}
	if val := os.Getenv(l.envPrefix + "_IDENTITY_PREFIX"); val != "" {
		p.IdentityPrefix = val
	}
	if val := os.Getenv(l.envPrefix + "_LOG_LEVEL"); val != "" {
		p.LogLevel = val
	}
	if val := os.Getenv(l.envPrefix + "_MAX_CONCURRENT_INIT"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			p.MaxConcurrentInit = n
		}
	}
	if val := os.Getenv(l.envPrefix + "_AUTO_READY"); val != "" {
		if enabled, err := strconv.ParseBool(val); err == nil {
			p.AutoReady = enabled
		}
	}
}
