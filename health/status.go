package health

import (
	"regexp"
	"strings"
	"time"

	"github.com/chaosarts/chaosui/component"
)

// Pre-compiled regexes for failure message sanitization (performance optimization)
var (
	httpURLRegex     = regexp.MustCompile(`https?://[^\s]+`)
	wsURLRegex       = regexp.MustCompile(`wss?://[^\s]+`)
	unixPathRegex    = regexp.MustCompile(`/[a-zA-Z0-9/_.-]+`)
	windowsPathRegex = regexp.MustCompile(`[A-Z]:\\[^:\s]+`)
	ipAddrRegex      = regexp.MustCompile(`\b\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}\b`)
	portRegex        = regexp.MustCompile(`:\d{2,5}\b`)
	credentialRegex  = regexp.MustCompile(`(?i)(password|token|key|secret|credential)[^a-zA-Z]*[:=][^,\s}]+`)
)

// Status represents the health state of a bound component, or an aggregate
// over many of them, at a single point in time
type Status struct {
	Component   string       `json:"component"`          // registered name, or a system name for aggregates
	ID          string       `json:"id,omitempty"`       // node identity, empty for aggregates
	Healthy     bool         `json:"healthy"`            // true if status is "healthy"
	Status      string       `json:"status"`             // "healthy", "unhealthy", "degraded"
	Message     string       `json:"message"`
	Timestamp   time.Time    `json:"timestamp"`
	SubStatuses []Status     `json:"sub_statuses,omitempty"`
	Counts      *StateCounts `json:"counts,omitempty"`
}

// StateCounts summarizes the lifecycle state distribution across a set of
// bindings
type StateCounts struct {
	Total         int `json:"total"`
	Uninitialized int `json:"uninitialized"`
	Initializing  int `json:"initializing"`
	Ready         int `json:"ready"`
	Failed        int `json:"failed"`
}

// IsHealthy returns true if the status is healthy
func (s Status) IsHealthy() bool {
	return s.Status == "healthy"
}

// IsDegraded returns true if the status is degraded
func (s Status) IsDegraded() bool {
	return s.Status == "degraded"
}

// IsUnhealthy returns true if the status is unhealthy
func (s Status) IsUnhealthy() bool {
	return s.Status == "unhealthy"
}

// WithCounts returns a copy of the status with state counts attached
func (s Status) WithCounts(counts StateCounts) Status {
	c := counts
	s.Counts = &c
	return s
}

// WithSubStatus adds a sub-status and returns a copy
func (s Status) WithSubStatus(subStatus Status) Status {
	// Create a new slice to avoid sharing the underlying array
	newSubStatuses := make([]Status, len(s.SubStatuses), len(s.SubStatuses)+1)
	copy(newSubStatuses, s.SubStatuses)
	s.SubStatuses = append(newSubStatuses, subStatus)
	return s
}

// sanitizeErrorMessage removes potentially sensitive information from failure
// messages. This function is called automatically by FromBinding to prevent
// accidental exposure of sensitive data in health status messages; component
// hooks routinely fold endpoints and settings values into their errors.
//
// Sanitization patterns:
//   - URLs (http://, https://, ws://, wss://) → [URL]
//   - File paths (Unix: /path/to/file, Windows: C:\path\to\file) → [PATH]
//   - IP addresses (192.168.1.100) → [IP]
//   - Port numbers (:8080) → [PORT]
//   - Credentials (password=X, token=X, key=X, secret=X) → [REDACTED]
func sanitizeErrorMessage(err string) string {
	if err == "" {
		return ""
	}

	sanitized := err

	// Remove URLs first (before paths, as they contain paths)
	sanitized = httpURLRegex.ReplaceAllString(sanitized, "[URL]")
	sanitized = wsURLRegex.ReplaceAllString(sanitized, "[URL]")

	// Remove file paths (Unix and Windows)
	sanitized = unixPathRegex.ReplaceAllString(sanitized, "[PATH]")
	sanitized = windowsPathRegex.ReplaceAllString(sanitized, "[PATH]")

	// Remove IP addresses
	sanitized = ipAddrRegex.ReplaceAllString(sanitized, "[IP]")

	// Remove port numbers
	sanitized = portRegex.ReplaceAllString(sanitized, "[PORT]")

	// Remove potential credentials (basic patterns) - check against lowercase but replace in original case
	lowerSanitized := strings.ToLower(sanitized)
	if strings.Contains(lowerSanitized, "password") || strings.Contains(lowerSanitized, "token") ||
		strings.Contains(lowerSanitized, "key") || strings.Contains(lowerSanitized, "secret") ||
		strings.Contains(lowerSanitized, "credential") {
		sanitized = credentialRegex.ReplaceAllString(sanitized, "[REDACTED]")
	}

	return sanitized
}

// FromBinding converts a live binding into a point-in-time health.Status.
// The lifecycle states map onto the three health levels: Ready is healthy,
// Failed is unhealthy, and a binding whose initialization has not finished
// yet is degraded. Failure messages are sanitized.
func FromBinding(bnd *component.Binding) Status {
	if bnd == nil {
		return Status{
			Status:    "unhealthy",
			Message:   "no binding",
			Timestamp: time.Now(),
		}
	}

	status := Status{
		Component: bnd.Name(),
		ID:        bnd.ID(),
		Timestamp: time.Now(),
	}

	switch bnd.State() {
	case component.StateReady:
		status.Healthy = true
		status.Status = "healthy"
		status.Message = "ready"
	case component.StateFailed:
		status.Status = "unhealthy"
		status.Message = "initialization failed"
		if err := bnd.Err(); err != nil {
			status.Message = sanitizeErrorMessage(err.Error())
		}
	case component.StateInitializing:
		status.Status = "degraded"
		status.Message = "initialization in progress"
	default:
		status.Status = "degraded"
		status.Message = "initialization not started"
	}

	return status
}
