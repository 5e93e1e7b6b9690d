package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures menu document validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ContractKind classifies a programming error detected at runtime.
type ContractKind int

const (
	// ContractPrecondition is a caller passing arguments outside the documented domain,
	// such as an out-of-range component index.
	ContractPrecondition ContractKind = iota
	// ContractInternal is a broken internal invariant that no caller can recover from.
	ContractInternal
)

func (k ContractKind) String() string {
	switch k {
	case ContractPrecondition:
		return "precondition"
	case ContractInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// ContractError reports a violated API contract. These are bugs in the calling code, never
// runtime conditions, and are raised as panics in debug builds.
type ContractError struct {
	Kind    ContractKind
	Op      string
	Message string
}

// NewContractError constructs a ContractError for the named operation.
func NewContractError(kind ContractKind, op, format string, args ...any) error {
	return &ContractError{Kind: kind, Op: op, Message: fmt.Sprintf(format, args...)}
}

func (e *ContractError) Error() string {
	if e == nil {
		return ""
	}
	if e.Op != "" {
		return fmt.Sprintf("contract violation (%s) in %s: %s", e.Kind, e.Op, e.Message)
	}
	return fmt.Sprintf("contract violation (%s): %s", e.Kind, e.Message)
}

// IsPrecondition reports whether the violation was caused by invalid caller input.
func (e *ContractError) IsPrecondition() bool {
	return e != nil && e.Kind == ContractPrecondition
}
