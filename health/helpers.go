package health

import "time"

// newStatus stamps a status with the current time.
func newStatus(component, status, message string, healthy bool) Status {
	return Status{
		Component: component,
		Healthy:   healthy,
		Status:    status,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// NewHealthy reports a component whose initialization completed.
func NewHealthy(component, message string) Status {
	return newStatus(component, "healthy", message, true)
}

// NewDegraded reports a component whose initialization is still in flight.
func NewDegraded(component, message string) Status {
	return newStatus(component, "degraded", message, false)
}

// NewUnhealthy reports a component whose initialization failed.
func NewUnhealthy(component, message string) Status {
	return newStatus(component, "unhealthy", message, false)
}

// Aggregate rolls sub-statuses up into one status for component: any
// unhealthy sub-status makes the rollup unhealthy, otherwise any degraded
// one makes it degraded, otherwise it is healthy. The sub-statuses are
// copied onto the result.
func Aggregate(component string, subStatuses []Status) Status {
	if len(subStatuses) == 0 {
		return NewHealthy(component, "no components bound")
	}

	var unhealthy, degraded int
	for _, sub := range subStatuses {
		switch {
		case sub.IsUnhealthy():
			unhealthy++
		case sub.IsDegraded():
			degraded++
		}
	}

	var status Status
	switch {
	case unhealthy > 0:
		status = NewUnhealthy(component, "one or more components failed to initialize")
	case degraded > 0:
		status = NewDegraded(component, "one or more components are still initializing")
	default:
		status = NewHealthy(component, "all components ready")
	}

	status.SubStatuses = append([]Status(nil), subStatuses...)
	return status
}
