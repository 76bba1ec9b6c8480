// Package errors provides standardized error handling patterns for chaosui.
//
// # Overview
//
// The errors package implements a three-class error classification system for
// component binding and initialization: Transient (temporary, the tree is
// intact), Invalid (bad input or configuration, do not retry), and Fatal
// (terminal for the affected subtree).
//
// On top of the classes sit three typed errors matching the phases a
// component moves through:
//
//   - RegistrationError: a rejected registry mutation (no invocation names,
//     a name that normalizes to nothing, a nil constructor). Returned
//     synchronously from Register and always fatal to the caller.
//   - ResolutionError: a node that could not be turned into a component
//     instance (unregistered invocation name, failing constructor). Never
//     escapes the factory; callers observe nil and the error is logged once.
//   - InitializationError: a failed initialization run. Identifies the owning
//     node by tag name and identity and keeps only the message of the cause.
//
// # Error Wrapping Pattern
//
// All error wrapping follows the standardized format:
//
//	"component.method: action failed: %w"
//
// This format enables consistent log parsing and debugging across the
// library. Three wrapper functions provide classification-aware wrapping:
//
//	errors.WrapTransient(err, "Binder", "Init", "resolve")
//	errors.WrapInvalid(err, "Registry", "Register", "normalize name")
//	errors.WrapFatal(err, "Lifecycle", "Ready", "run hook")
//
// The generic Wrap() function adds context without setting a class:
//
//	errors.Wrap(err, "Binder", "ComponentByElement", "construct")
//
// # Standard Error Variables
//
// Pre-defined error variables cover common conditions, organized by phase:
//
//   - Registration: ErrNoNames, ErrEmptyName, ErrNilConstructor
//   - Resolution: ErrNilNode, ErrNoMarker, ErrNotRegistered
//   - Lifecycle: ErrNotBound, ErrNotInitialized
//   - Document: ErrBadSelector, ErrNoDocument
//   - Configuration: ErrInvalidConfig, ErrMissingConfig, ErrUnsupportedFormat
//
// Use these instead of ad-hoc messages so callers can branch with errors.Is.
//
// # Integration with errors.As/Is
//
// All error types support standard library error inspection:
//
//	var ie *errors.InitializationError
//	if errors.As(err, &ie) {
//	    log.Printf("node <%s#%s> failed: %s", ie.Tag, ie.ID, ie.Reason)
//	}
//
//	if errors.Is(err, errors.ErrNotRegistered) {
//	    // the marker named a component nobody registered
//	}
//
// One deliberate exception: InitializationError does not unwrap to its cause.
// Initialization failures cross goroutine and subtree boundaries, and the
// cause chain of an arbitrary hook is not part of the public contract; only
// its message survives. errors.As still matches the InitializationError
// itself.
//
// # Context Cancellation
//
// Context errors (context.DeadlineExceeded, context.Canceled) classify as
// Transient: the component tree is unchanged, only the interrupted run is
// lost.
//
// # Thread Safety
//
// All classification and wrapping operations are thread-safe. Error variables
// are immutable and safe for concurrent access.
package errors
