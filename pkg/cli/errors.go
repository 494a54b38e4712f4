package cli

import (
	"fmt"
	"strings"
)

// Exit codes shared by both tools
const (
	// ExitClean indicates every row satisfied the active rule
	ExitClean = 0
	// ExitOffenders indicates at least one offending row was found
	ExitOffenders = 1
	// ExitError indicates a usage, input, detection, or write failure
	ExitError = 2
)

// Kind classifies a failed invocation
type Kind int

const (
	// KindUsage covers bad, missing, or conflicting arguments
	KindUsage Kind = iota
	// KindInput covers a missing or unreadable input file
	KindInput
	// KindDetection covers an absent or ambiguous column-count sample
	KindDetection
	// KindWrite covers a cleaned destination that cannot be produced
	KindWrite
)

// String returns a string representation of the error kind
func (k Kind) String() string {
	switch k {
	case KindUsage:
		return "Usage"
	case KindInput:
		return "Input"
	case KindDetection:
		return "Detection"
	case KindWrite:
		return "Write"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// Error couples a failure kind with its underlying cause.
// Every Error is fatal to the invocation; there is no retry anywhere.
type Error struct {
	Kind Kind
	Err  error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e == nil || e.Err == nil {
		return ""
	}
	return fmt.Sprintf("%s error: %s", strings.ToLower(e.Kind.String()), e.Err.Error())
}

// Unwrap exposes the underlying cause
func (e *Error) Unwrap() error {
	return e.Err
}
