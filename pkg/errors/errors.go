package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a structured error classification.
type ErrorCode string

const (
	// ErrCodeInit indicates the collector module failed to load or instantiate.
	ErrCodeInit ErrorCode = "INIT_FAILED"
	// ErrCodeNotInitialized indicates collection was requested before a successful init.
	ErrCodeNotInitialized ErrorCode = "NOT_INITIALIZED"
	// ErrCodeCollection indicates the collect call or JSON parsing failed.
	ErrCodeCollection ErrorCode = "COLLECTION_FAILED"
	// ErrCodeValidation indicates the collected payload does not match the record schema.
	ErrCodeValidation ErrorCode = "VALIDATION_FAILED"
	// ErrCodeClipboard indicates a clipboard write failed.
	ErrCodeClipboard ErrorCode = "CLIPBOARD_FAILED"
)

// InitFailedMessage is the fixed message shown when the collector cannot be loaded.
const InitFailedMessage = "Failed to load fingerprinting module. Please refresh the page."

// StructuredError provides structured error information for better observability.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a StructuredError with the same code.
// A bare &StructuredError{Code: c} therefore works as a sentinel.
func (e *StructuredError) Is(target error) bool {
	t, ok := target.(*StructuredError)
	if !ok {
		return false
	}
	return t.Code == e.Code && (t.Message == "" || t.Message == e.Message)
}

// New creates a new StructuredError with the given code and message.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a code and message.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapWithContext wraps an error with additional context information.
func WrapWithContext(code ErrorCode, message string, cause error, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// CodeOf returns the code of the outermost StructuredError in err's chain,
// or the empty code when there is none.
func CodeOf(err error) ErrorCode {
	var se *StructuredError
	if stderrors.As(err, &se) {
		return se.Code
	}
	return ""
}

// IsCode reports whether err carries the given code. Validation failures are
// collection failures too.
func IsCode(err error, code ErrorCode) bool {
	got := CodeOf(err)
	if got == code {
		return true
	}
	return code == ErrCodeCollection && got == ErrCodeValidation
}

// UserMessage returns the human-readable part of err for the error panel.
// Init failures always render the fixed init message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var se *StructuredError
	if !stderrors.As(err, &se) {
		return err.Error()
	}
	if se.Code == ErrCodeInit {
		return InitFailedMessage
	}
	if se.Cause != nil {
		return fmt.Sprintf("%s: %v", se.Message, rootCause(se.Cause))
	}
	return se.Message
}

func rootCause(err error) error {
	for {
		next := stderrors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
