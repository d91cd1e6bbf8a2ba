// Package syntax turns a pattern string into a postfix token stream.
//
// The rewriter is a single left-to-right pass driven by a paren stack; it
// never builds a parse tree. Concatenation becomes an explicit operator, and
// two marker tokens tell the automaton builder where the whole-pattern match
// state and the early-match state belong.
//
// Supported syntax:
//
//	x        literal rune
//	.        any rune (class '.')
//	\d \D    digit / non-digit
//	\s \S    whitespace / non-whitespace
//	\w \W    word rune (letter, number, '_') / non-word
//	\c       literal c, for c in \ * + ? ( ) | .
//	xy       concatenation
//	x|y      alternation; an empty side accepts any remaining input
//	x* x+ x? repetition; stacking (x**, x+?) is an error
//	(x)      grouping; () is an empty alternative and accepts any rest
package syntax

import (
	"errors"
	"fmt"
)

// ErrSyntax is the single user-facing error kind. Every *Error unwraps to it.
var ErrSyntax = errors.New("bad regular expression")

// ErrorCode describes why a pattern was rejected.
type ErrorCode string

const (
	// ErrMissingParen reports a '(' left open at the end of the pattern.
	ErrMissingParen ErrorCode = "missing closing )"
	// ErrUnexpectedParen reports a ')' with no open group.
	ErrUnexpectedParen ErrorCode = "unexpected )"
	// ErrMissingRepeatArgument reports '*', '+' or '?' with nothing to repeat.
	ErrMissingRepeatArgument ErrorCode = "missing argument to repetition operator"
	// ErrRepeatedRepeat reports a repetition operator applied to another one.
	ErrRepeatedRepeat ErrorCode = "invalid nested repetition operator"
	// ErrTrailingBackslash reports a pattern that ends in a lone '\'.
	ErrTrailingBackslash ErrorCode = "trailing backslash at end of expression"
	// ErrInvalidEscape reports '\' followed by a rune that is not escapable.
	ErrInvalidEscape ErrorCode = "invalid escape sequence"
)

func (e ErrorCode) String() string {
	return string(e)
}

// Error describes a pattern that cannot be compiled.
//
// Callers should test for it with errors.Is(err, ErrSyntax); Code and Pos are
// for diagnostics only.
type Error struct {
	Code    ErrorCode
	Pattern string
	Pos     int // byte offset of the offending item
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("%v: %s at position %d in %q", ErrSyntax, e.Code, e.Pos, e.Pattern)
}

// Unwrap returns ErrSyntax
func (e *Error) Unwrap() error {
	return ErrSyntax
}
