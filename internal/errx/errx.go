// Package errx provides the structured fatal-error type returned to callers
// of the attack-graph engine (spec §7). It is adapted from the teacher
// project's pkg/common error-registry pattern: a closed set of ErrorCode
// values plus a *BuildError carrying the code, a message, and the offending
// identifier, so a caller can branch on Code without string-matching.
package errx

import "fmt"

// Code is a standardized fatal-error code. Unlike the teacher's RPC/storage
// codes, this registry only needs the handful of fatal conditions spec §7
// defines — everything else in that section is non-fatal and goes through
// Diagnostics instead.
type Code string

const (
	// CodeUnknownContainer: a topology or privileged-access entry names a
	// container that never appears as a topology key (spec §7, kind 2).
	CodeUnknownContainer Code = "ATTACKGRAPH_UNKNOWN_CONTAINER"
	// CodeUnknownPrivilege: a rule's precondition/postcondition names a
	// privilege level outside the five-level lattice (spec §7, kind 3).
	CodeUnknownPrivilege Code = "ATTACKGRAPH_UNKNOWN_PRIVILEGE"
	// CodeInvalidRule: a rule is malformed in a way that is a configuration
	// defect rather than noisy input (a postcondition rule with no
	// vocabulary).
	CodeInvalidRule Code = "ATTACKGRAPH_INVALID_RULE"
)

// BuildError is the structured error returned for every fatal condition in
// spec §7. It implements error and Unwrap so callers can use errors.Is/As
// against Code or the wrapped cause.
type BuildError struct {
	Code    Code
	Message string
	// Identifier is the offending value — a container name, a privilege
	// name, a rule name — included verbatim so the caller can report it
	// without re-deriving which input triggered the failure.
	Identifier string
	Cause      error
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	if e.Identifier != "" {
		return fmt.Sprintf("[%s] %s: %q", e.Code, e.Message, e.Identifier)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *BuildError) Unwrap() error {
	return e.Cause
}

// New constructs a *BuildError with no wrapped cause.
func New(code Code, message, identifier string) *BuildError {
	return &BuildError{Code: code, Message: message, Identifier: identifier}
}

// Wrap constructs a *BuildError around an existing error.
func Wrap(code Code, message, identifier string, cause error) *BuildError {
	return &BuildError{Code: code, Message: message, Identifier: identifier, Cause: cause}
}
