package config

// Typed accessors for settings maps. Decoded settings carry whatever the
// source format produced (yaml.v3 yields int, TOML int64, JSON float64),
// so these helpers coerce instead of asserting a single numeric type.

// GetString extracts a string setting, or the default when the key is
// absent or not a string.
func GetString(settings map[string]any, key, defaultVal string) string {
	if val, ok := settings[key]; ok {
		if s, ok := val.(string); ok {
			return s
		}
	}
	return defaultVal
}

// GetInt extracts an integer setting, coercing the numeric types the
// supported formats decode to.
func GetInt(settings map[string]any, key string, defaultVal int) int {
	if val, ok := settings[key]; ok {
		switch v := val.(type) {
		case int:
			return v
		case int64:
			return int(v)
		case float64:
			return int(v)
		}
	}
	return defaultVal
}

// GetFloat64 extracts a float setting, coercing integer values.
func GetFloat64(settings map[string]any, key string, defaultVal float64) float64 {
	if val, ok := settings[key]; ok {
		switch v := val.(type) {
		case float64:
			return v
		case int:
			return float64(v)
		case int64:
			return float64(v)
		}
	}
	return defaultVal
}

// GetBool extracts a boolean setting.
func GetBool(settings map[string]any, key string, defaultVal bool) bool {
	if val, ok := settings[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return defaultVal
}

// GetStringSlice extracts a string list setting. Lists decode as []any;
// a list with any non-string element falls back to the default.
func GetStringSlice(settings map[string]any, key string, defaultVal []string) []string {
	val, ok := settings[key]
	if !ok {
		return defaultVal
	}

	if slice, ok := val.([]string); ok {
		return slice
	}

	items, ok := val.([]any)
	if !ok {
		return defaultVal
	}
	result := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return defaultVal
		}
		result = append(result, s)
	}
	return result
}

// GetNestedString extracts a string from nested settings maps, following
// the key path in order.
func GetNestedString(settings map[string]any, keys []string, defaultVal string) string {
	current := settings
	for i, key := range keys {
		val, ok := current[key]
		if !ok {
			return defaultVal
		}

		if i == len(keys)-1 {
			if s, ok := val.(string); ok {
				return s
			}
			return defaultVal
		}

		nested, ok := val.(map[string]any)
		if !ok {
			return defaultVal
		}
		current = nested
	}
	return defaultVal
}

// HasKey checks if a key exists in the settings map
func HasKey(settings map[string]any, key string) bool {
	_, ok := settings[key]
	return ok
}
