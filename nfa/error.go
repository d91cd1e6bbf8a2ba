// Package nfa provides a Thompson NFA (Non-deterministic Finite Automaton)
// over runes, together with a PikeVM execution engine.
//
// The NFA is compiled from the postfix stream produced by the syntax package.
// States live in a single arena and refer to each other by StateID, so the
// cycles introduced by * and + need no ownership bookkeeping. Every NFA has
// exactly one Match state and one EarlyMatch state; reaching EarlyMatch
// accepts the rest of the input unconditionally.
package nfa

import (
	"errors"
	"fmt"
)

// ErrInternal indicates an inconsistency inside the automaton builder.
// It is never caused by a malformed pattern; those are reported by the
// syntax package.
var ErrInternal = errors.New("internal NFA construction fault")

// CompileError wraps compilation errors with additional context
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface
func (e *CompileError) Error() string {
	if e.Pattern != "" {
		return fmt.Sprintf("NFA compilation failed for pattern %q: %v", e.Pattern, e.Err)
	}
	return fmt.Sprintf("NFA compilation failed: %v", e.Err)
}

// Unwrap returns the underlying error
func (e *CompileError) Unwrap() error {
	return e.Err
}

// BuildError represents an error during NFA construction via the Builder API
type BuildError struct {
	Message string
	StateID StateID
}

// Error implements the error interface
func (e *BuildError) Error() string {
	if e.StateID != InvalidState {
		return fmt.Sprintf("NFA build error at state %d: %s", e.StateID, e.Message)
	}
	return fmt.Sprintf("NFA build error: %s", e.Message)
}

// Unwrap returns ErrInternal
func (e *BuildError) Unwrap() error {
	return ErrInternal
}
