package health

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{
			name: "plain message untouched",
			in:   "missing controlled element",
			want: "missing controlled element",
		},
		{
			name: "initialization error keeps the node and loses the URL",
			in:   "component <div#__data-component_3>: initialization failed: fetch https://api.example.com/v1: connect error",
			want: "component <div#__data-component_3>: initialization failed: fetch [URL] connect error",
		},
		{
			name: "unix path",
			in:   "failed to open /etc/chaosui/profile.yaml",
			want: "failed to open [PATH]",
		},
		{
			name: "every unix path",
			in:   "copy /srv/pages/a.html to /srv/pages/b.html failed",
			want: "copy [PATH] to [PATH] failed",
		},
		{
			name: "windows path",
			in:   "cannot read C:\\Users\\Admin\\profile.yaml",
			want: "cannot read [PATH]",
		},
		{
			name: "websocket url",
			in:   "cannot connect to wss://live.example.com/feed",
			want: "cannot connect to [URL]",
		},
		{
			name: "ip address",
			in:   "timeout connecting to 192.168.1.100",
			want: "timeout connecting to [IP]",
		},
		{
			name: "port",
			in:   "failed to bind to :8080",
			want: "failed to bind to [PORT]",
		},
		{
			name: "credential pair",
			in:   "auth failed with password:secretpass123",
			want: "auth failed with [REDACTED]",
		},
		{
			name: "url and credential combined",
			in:   "failed to connect to https://192.168.1.1:8080/api with token=abc123def",
			want: "failed to connect to [URL] with [REDACTED]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeErrorMessage(tt.in))
		})
	}
}

func TestWithSubStatus_SliceIsolation(t *testing.T) {
	page := NewHealthy("page", "all components ready").
		WithSubStatus(Status{Component: "widget", Status: "healthy"})

	grown := page.WithSubStatus(Status{Component: "panel", Status: "unhealthy"})
	require.Len(t, page.SubStatuses, 1)
	require.Len(t, grown.SubStatuses, 2)

	// Writes through one copy must not show through the other.
	page.SubStatuses[0].Status = "degraded"
	assert.Equal(t, "healthy", grown.SubStatuses[0].Status)
	assert.Equal(t, "panel", grown.SubStatuses[1].Component)
}
