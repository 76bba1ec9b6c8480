package errors

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorClass_String(t *testing.T) {
	tests := []struct {
		class    ErrorClass
		expected string
	}{
		{ErrorTransient, "transient"},
		{ErrorInvalid, "invalid"},
		{ErrorFatal, "fatal"},
		{ErrorClass(999), "unknown"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			result := test.class.String()
			if result != test.expected {
				t.Errorf("expected %s, got %s", test.expected, result)
			}
		})
	}
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"context deadline exceeded", context.DeadlineExceeded, true},
		{"context canceled", context.Canceled, true},
		{"wrapped context error", fmt.Errorf("run: %w", context.Canceled), true},
		{"registration error", NewRegistrationError("widget", ErrNilConstructor), false},
		{"plain error", fmt.Errorf("boom"), false},
		{"classified transient", &ClassifiedError{Class: ErrorTransient, Err: fmt.Errorf("test")}, true},
		{"classified fatal", &ClassifiedError{Class: ErrorFatal, Err: fmt.Errorf("test")}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsTransient(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestIsFatal(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"registration error", NewRegistrationError("", ErrNoNames), true},
		{"initialization error", NewInitializationError("div", "__data-component_1", fmt.Errorf("boom")), true},
		{"wrapped initialization error", fmt.Errorf("init: %w", NewInitializationError("div", "x", fmt.Errorf("boom"))), true},
		{"missing config", ErrMissingConfig, true},
		{"resolution error", NewResolutionError("widget", "div", ErrNotRegistered), false},
		{"plain error", fmt.Errorf("boom"), false},
		{"classified fatal", &ClassifiedError{Class: ErrorFatal, Err: fmt.Errorf("test")}, true},
		{"classified transient", &ClassifiedError{Class: ErrorTransient, Err: fmt.Errorf("test")}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsFatal(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestIsInvalid(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"resolution error", NewResolutionError("widget", "div", ErrNotRegistered), true},
		{"bad selector", ErrBadSelector, true},
		{"invalid config", ErrInvalidConfig, true},
		{"unsupported format", ErrUnsupportedFormat, true},
		{"registration error", NewRegistrationError("widget", ErrNilConstructor), false},
		{"plain error", fmt.Errorf("boom"), false},
		{"classified invalid", &ClassifiedError{Class: ErrorInvalid, Err: fmt.Errorf("test")}, true},
		{"classified transient", &ClassifiedError{Class: ErrorTransient, Err: fmt.Errorf("test")}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsInvalid(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorClass
	}{
		{"nil error", nil, ErrorTransient},
		{"registration error", NewRegistrationError("widget", ErrNoNames), ErrorFatal},
		{"initialization error", NewInitializationError("form", "checkout", fmt.Errorf("no form")), ErrorFatal},
		{"resolution error", NewResolutionError("widget", "div", ErrNotRegistered), ErrorInvalid},
		{"unknown error", fmt.Errorf("unknown error"), ErrorTransient},
		{"classified error", &ClassifiedError{Class: ErrorFatal, Err: fmt.Errorf("test")}, ErrorFatal},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := Classify(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestClassifiedError(t *testing.T) {
	baseErr := fmt.Errorf("base error")
	ce := newClassified(ErrorTransient, baseErr, "testComponent", "testOperation", "custom message")

	if ce.Class != ErrorTransient {
		t.Errorf("expected ErrorTransient, got %v", ce.Class)
	}

	if ce.Component != "testComponent" {
		t.Errorf("expected testComponent, got %s", ce.Component)
	}

	if ce.Error() != "custom message" {
		t.Errorf("expected 'custom message', got %s", ce.Error())
	}

	if !errors.Is(ce, baseErr) {
		t.Error("classified error should unwrap to base error")
	}
}

func TestRegistrationError(t *testing.T) {
	tests := []struct {
		name     string
		err      *RegistrationError
		expected string
		sentinel error
	}{
		{
			"nil constructor",
			NewRegistrationError("widget", ErrNilConstructor),
			`register "widget": constructor is nil`,
			ErrNilConstructor,
		},
		{
			"no names",
			NewRegistrationError("", ErrNoNames),
			"register: no invocation names given",
			ErrNoNames,
		},
		{
			"empty name",
			NewRegistrationError("   ", ErrEmptyName),
			`register "   ": invocation name empty after normalization`,
			ErrEmptyName,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.err.Error(); got != test.expected {
				t.Errorf("expected %q, got %q", test.expected, got)
			}
			if !errors.Is(test.err, test.sentinel) {
				t.Errorf("expected error to match sentinel %v", test.sentinel)
			}
		})
	}
}

func TestResolutionError(t *testing.T) {
	re := NewResolutionError("carousel", "div", ErrNotRegistered)

	expected := `resolve "carousel" on <div>: component not registered`
	if re.Error() != expected {
		t.Errorf("expected %q, got %q", expected, re.Error())
	}
	if !errors.Is(re, ErrNotRegistered) {
		t.Error("resolution error should unwrap to ErrNotRegistered")
	}

	var target *ResolutionError
	if !errors.As(fmt.Errorf("factory: %w", re), &target) {
		t.Error("errors.As should match ResolutionError through a wrap")
	}
}

func TestInitializationError(t *testing.T) {
	cause := fmt.Errorf("widget: %w", errors.New("no data source"))
	ie := NewInitializationError("div", "__data-component_1", cause)

	expected := "component <div#__data-component_1>: initialization failed: widget: no data source"
	if ie.Error() != expected {
		t.Errorf("expected %q, got %q", expected, ie.Error())
	}

	// Only the message of the cause survives; the chain is cut.
	if errors.Is(ie, cause) {
		t.Error("initialization error must not unwrap to its cause")
	}
	if !strings.Contains(ie.Reason, "no data source") {
		t.Errorf("reason should carry the cause message, got %q", ie.Reason)
	}
}

func TestInitializationError_NilCause(t *testing.T) {
	ie := NewInitializationError("span", "x", nil)
	if ie.Reason != "" {
		t.Errorf("expected empty reason, got %q", ie.Reason)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		component string
		method    string
		action    string
		expected  string
	}{
		{
			"nil error",
			nil,
			"component",
			"method",
			"action",
			"",
		},
		{
			"basic wrap",
			fmt.Errorf("original error"),
			"Binder",
			"ComponentByElement",
			"construct instance",
			"Binder.ComponentByElement: construct instance failed: original error",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := Wrap(test.err, test.component, test.method, test.action)
			if test.expected == "" {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}
			} else {
				if result == nil || result.Error() != test.expected {
					t.Errorf("expected '%s', got '%v'", test.expected, result)
				}
			}
		})
	}
}

func TestWrapClassified(t *testing.T) {
	baseErr := fmt.Errorf("original error")

	tests := []struct {
		name     string
		wrapFunc func(error, string, string, string) error
		class    ErrorClass
	}{
		{"WrapTransient", WrapTransient, ErrorTransient},
		{"WrapFatal", WrapFatal, ErrorFatal},
		{"WrapInvalid", WrapInvalid, ErrorInvalid},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := test.wrapFunc(baseErr, "component", "method", "action")

			var ce *ClassifiedError
			if !errors.As(result, &ce) {
				t.Error("result should be a ClassifiedError")
				return
			}

			if ce.Class != test.class {
				t.Errorf("expected %v, got %v", test.class, ce.Class)
			}

			if !strings.Contains(ce.Error(), "component.method: action failed") {
				t.Errorf("error should contain standard format, got: %s", ce.Error())
			}
		})
	}
}

func TestStandardErrors(t *testing.T) {
	standardErrors := []error{
		ErrNoNames,
		ErrEmptyName,
		ErrNilConstructor,
		ErrNotRegistered,
		ErrNilNode,
		ErrNoMarker,
		ErrConstructorFailed,
		ErrNotBound,
		ErrAlreadyBound,
		ErrNotInitialized,
		ErrBadSelector,
		ErrNoDocument,
		ErrInvalidConfig,
		ErrMissingConfig,
		ErrUnsupportedFormat,
	}

	for i, err := range standardErrors {
		if err == nil {
			t.Errorf("standard error at index %d is nil", i)
		}
		if err.Error() == "" {
			t.Errorf("standard error at index %d has empty message", i)
		}
	}
}

func BenchmarkClassify(b *testing.B) {
	err := NewInitializationError("div", "__data-component_1", fmt.Errorf("boom"))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Classify(err)
	}
}

func BenchmarkWrap(b *testing.B) {
	err := fmt.Errorf("base error")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Wrap(err, "component", "method", "action")
	}
}
