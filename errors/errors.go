package errors

import (
	"context"
	"errors"
	"fmt"
)

// ErrorClass represents the classification of errors for handling purposes
type ErrorClass int

const (
	// ErrorTransient represents temporary errors that may resolve on their own
	ErrorTransient ErrorClass = iota
	// ErrorInvalid represents errors due to invalid input or configuration
	ErrorInvalid
	// ErrorFatal represents unrecoverable errors that should stop processing
	ErrorFatal
)

// String returns the string representation of ErrorClass
func (ec ErrorClass) String() string {
	switch ec {
	case ErrorTransient:
		return "transient"
	case ErrorInvalid:
		return "invalid"
	case ErrorFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Standard error variables for common conditions
var (
	// Registration errors
	ErrNoNames        = errors.New("no invocation names given")
	ErrEmptyName      = errors.New("invocation name empty after normalization")
	ErrNilConstructor = errors.New("constructor is nil")
	ErrNotRegistered  = errors.New("component not registered")

	// Resolution errors
	ErrNilNode           = errors.New("node is nil")
	ErrNoMarker          = errors.New("node carries no component marker")
	ErrConstructorFailed = errors.New("constructor returned no component")

	// Lifecycle errors
	ErrNotBound       = errors.New("component not bound to a lifecycle")
	ErrAlreadyBound   = errors.New("component already bound to a lifecycle")
	ErrNotInitialized = errors.New("component not initialized")

	// Document errors
	ErrBadSelector = errors.New("selector does not parse")
	ErrNoDocument  = errors.New("node is not attached to a document")

	// Built-in component errors
	ErrNoControlledElement = errors.New("no controlled element found")

	// Configuration errors
	ErrInvalidConfig     = errors.New("invalid configuration")
	ErrMissingConfig     = errors.New("missing required configuration")
	ErrUnsupportedFormat = errors.New("unsupported configuration format")
)

// ClassifiedError wraps an error with its classification
type ClassifiedError struct {
	Class     ErrorClass
	Err       error
	Message   string
	Component string
	Operation string
}

// Error implements the error interface
func (ce *ClassifiedError) Error() string {
	if ce.Message != "" {
		return ce.Message
	}
	return ce.Err.Error()
}

// Unwrap returns the underlying error
func (ce *ClassifiedError) Unwrap() error {
	return ce.Err
}

// RegistrationError reports a rejected registry mutation: no invocation names,
// a name that normalizes to the empty string, or a nil constructor. These are
// programming errors and always fatal to the caller.
type RegistrationError struct {
	Name string // offending invocation name, empty when none were given
	Err  error
}

// Error implements the error interface
func (re *RegistrationError) Error() string {
	if re.Name == "" {
		return fmt.Sprintf("register: %v", re.Err)
	}
	return fmt.Sprintf("register %q: %v", re.Name, re.Err)
}

// Unwrap returns the underlying error
func (re *RegistrationError) Unwrap() error {
	return re.Err
}

// NewRegistrationError creates a RegistrationError for the given name
func NewRegistrationError(name string, err error) *RegistrationError {
	return &RegistrationError{Name: name, Err: err}
}

// ResolutionError reports a node that could not be resolved to a component
// instance, most commonly because its marker names an unregistered component.
// Resolution errors never escape the factory; callers observe a nil component.
type ResolutionError struct {
	Name string // invocation name read from the marker
	Tag  string // tag of the node under resolution
	Err  error
}

// Error implements the error interface
func (re *ResolutionError) Error() string {
	return fmt.Sprintf("resolve %q on <%s>: %v", re.Name, re.Tag, re.Err)
}

// Unwrap returns the underlying error
func (re *ResolutionError) Unwrap() error {
	return re.Err
}

// NewResolutionError creates a ResolutionError for the given node
func NewResolutionError(name, tag string, err error) *ResolutionError {
	return &ResolutionError{Name: name, Tag: tag, Err: err}
}

// InitializationError reports a failed initialization run. It identifies the
// owning node by tag name and identity and keeps only the message of the
// cause; the cause chain is deliberately not preserved, so errors.Is does not
// see through it.
type InitializationError struct {
	Tag    string
	ID     string
	Reason string
}

// Error implements the error interface
func (ie *InitializationError) Error() string {
	return fmt.Sprintf("component <%s#%s>: initialization failed: %s", ie.Tag, ie.ID, ie.Reason)
}

// NewInitializationError creates an InitializationError for the given node,
// reducing the cause to its message.
func NewInitializationError(tag, id string, cause error) *InitializationError {
	reason := ""
	if cause != nil {
		reason = cause.Error()
	}
	return &InitializationError{Tag: tag, ID: id, Reason: reason}
}

// IsTransient checks if an error is transient
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorTransient
	}

	// Context interruptions leave the tree intact; only this run was
	// abandoned.
	return errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled)
}

// IsFatal checks if an error is fatal for the affected subtree
func IsFatal(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorFatal
	}

	var re *RegistrationError
	var ie *InitializationError
	if errors.As(err, &re) || errors.As(err, &ie) {
		return true
	}

	return errors.Is(err, ErrMissingConfig)
}

// IsInvalid checks if an error is due to invalid input
func IsInvalid(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorInvalid
	}

	var re *ResolutionError
	if errors.As(err, &re) {
		return true
	}

	return errors.Is(err, ErrBadSelector) ||
		errors.Is(err, ErrInvalidConfig) ||
		errors.Is(err, ErrUnsupportedFormat)
}

// Classify returns the error class for an error
func Classify(err error) ErrorClass {
	if err == nil {
		return ErrorTransient // Default for nil
	}

	if IsFatal(err) {
		return ErrorFatal
	}
	if IsInvalid(err) {
		return ErrorInvalid
	}

	return ErrorTransient
}

// newClassified creates a new classified error
// This is an internal helper - use WrapTransient(), WrapFatal(), or WrapInvalid() instead.
func newClassified(class ErrorClass, err error, component, operation, message string) *ClassifiedError {
	return &ClassifiedError{
		Class:     class,
		Err:       err,
		Message:   message,
		Component: component,
		Operation: operation,
	}
}

// Wrap creates a standardized error with context following the pattern:
// "component.method: action failed: %w"
func Wrap(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s failed: %w", component, method, action, err)
}

// WrapTransient wraps an error as transient with context
func WrapTransient(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorTransient, wrappedErr, component, method, wrappedErr.Error())
}

// WrapFatal wraps an error as fatal with context
func WrapFatal(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorFatal, wrappedErr, component, method, wrappedErr.Error())
}

// WrapInvalid wraps an error as invalid with context
func WrapInvalid(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorInvalid, wrappedErr, component, method, wrappedErr.Error())
}
