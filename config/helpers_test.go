package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetString(t *testing.T) {
	settings := map[string]any{"endpoint": "/api", "limit": 5}

	assert.Equal(t, "/api", GetString(settings, "endpoint", "fallback"))
	assert.Equal(t, "fallback", GetString(settings, "limit", "fallback"))
	assert.Equal(t, "fallback", GetString(settings, "missing", "fallback"))
	assert.Equal(t, "fallback", GetString(nil, "endpoint", "fallback"))
}

func TestGetInt(t *testing.T) {
	settings := map[string]any{
		"yaml": 25,
		"toml": int64(26),
		"json": float64(27),
		"text": "28",
	}

	assert.Equal(t, 25, GetInt(settings, "yaml", 0))
	assert.Equal(t, 26, GetInt(settings, "toml", 0))
	assert.Equal(t, 27, GetInt(settings, "json", 0))
	assert.Equal(t, 0, GetInt(settings, "text", 0))
	assert.Equal(t, 9, GetInt(settings, "missing", 9))
}

func TestGetFloat64(t *testing.T) {
	settings := map[string]any{
		"ratio": 0.5,
		"count": 3,
		"big":   int64(4),
	}

	assert.Equal(t, 0.5, GetFloat64(settings, "ratio", 0))
	assert.Equal(t, 3.0, GetFloat64(settings, "count", 0))
	assert.Equal(t, 4.0, GetFloat64(settings, "big", 0))
	assert.Equal(t, 1.5, GetFloat64(settings, "missing", 1.5))
}

func TestGetBool(t *testing.T) {
	settings := map[string]any{"enabled": true, "label": "yes"}

	assert.True(t, GetBool(settings, "enabled", false))
	assert.False(t, GetBool(settings, "label", false))
	assert.True(t, GetBool(settings, "missing", true))
}

func TestGetStringSlice(t *testing.T) {
	settings := map[string]any{
		"decoded": []any{"a", "b"},
		"typed":   []string{"c"},
		"mixed":   []any{"a", 1},
		"scalar":  "a",
	}

	assert.Equal(t, []string{"a", "b"}, GetStringSlice(settings, "decoded", nil))
	assert.Equal(t, []string{"c"}, GetStringSlice(settings, "typed", nil))
	assert.Equal(t, []string{"x"}, GetStringSlice(settings, "mixed", []string{"x"}))
	assert.Equal(t, []string{"x"}, GetStringSlice(settings, "scalar", []string{"x"}))
	assert.Nil(t, GetStringSlice(settings, "missing", nil))
}

func TestGetNestedString(t *testing.T) {
	settings := map[string]any{
		"endpoint": map[string]any{
			"auth": map[string]any{"scheme": "bearer"},
			"path": "/api",
		},
		"flat": "x",
	}

	assert.Equal(t, "bearer", GetNestedString(settings, []string{"endpoint", "auth", "scheme"}, ""))
	assert.Equal(t, "/api", GetNestedString(settings, []string{"endpoint", "path"}, ""))
	assert.Equal(t, "d", GetNestedString(settings, []string{"endpoint", "missing"}, "d"))
	assert.Equal(t, "d", GetNestedString(settings, []string{"flat", "deeper"}, "d"))
	assert.Equal(t, "d", GetNestedString(settings, []string{"endpoint", "auth"}, "d"))
}

func TestHasKey(t *testing.T) {
	settings := map[string]any{"present": nil}

	assert.True(t, HasKey(settings, "present"))
	assert.False(t, HasKey(settings, "absent"))
	assert.False(t, HasKey(nil, "present"))
}
