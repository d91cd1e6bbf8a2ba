package nfa

import (
	"fmt"

	"github.com/matpuk/rex/syntax"
)

// StateID uniquely identifies an NFA state.
// This is a 32-bit unsigned integer for compact representation.
type StateID uint32

// InvalidState represents an invalid/uninitialized state ID
const InvalidState StateID = 0xFFFFFFFF

// StateKind identifies the type of NFA state and determines which transitions are valid.
type StateKind uint8

const (
	// StateMatch represents the accepting state reached after consuming the whole input
	StateMatch StateKind = iota

	// StateEarlyMatch accepts regardless of the remaining input.
	// It is the target of empty alternatives such as the right side of "a|".
	StateEarlyMatch

	// StateRune consumes exactly one rune equal to the state's literal
	StateRune

	// StateClass consumes one rune accepted by a character-class predicate
	StateClass

	// StateSplit represents an epsilon transition to 2 states
	// Used for alternation (a|b) and repetition (a*, a+, a?)
	StateSplit
)

// String returns a human-readable representation of the StateKind
func (k StateKind) String() string {
	switch k {
	case StateMatch:
		return "Match"
	case StateEarlyMatch:
		return "EarlyMatch"
	case StateRune:
		return "Rune"
	case StateClass:
		return "Class"
	case StateSplit:
		return "Split"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// State represents a single NFA state with its transitions.
// The state's kind determines which fields are valid.
type State struct {
	id   StateID
	kind StateKind

	// For Rune: the literal. For Class: the class letter.
	r rune

	// For Class: the predicate resolved from the class table
	class syntax.Class

	// target state for Rune/Class
	next StateID

	// For Split: epsilon transitions to two states
	left, right StateID
}

// ID returns the state's unique identifier
func (s *State) ID() StateID {
	return s.id
}

// Kind returns the state's type
func (s *State) Kind() StateKind {
	return s.kind
}

// IsMatch returns true if this is the whole-input match state
func (s *State) IsMatch() bool {
	return s.kind == StateMatch
}

// IsEarlyMatch returns true if this is the early-match state
func (s *State) IsEarlyMatch() bool {
	return s.kind == StateEarlyMatch
}

// Rune returns the literal and target for Rune states.
// Returns (0, InvalidState) for other states.
func (s *State) Rune() (r rune, next StateID) {
	if s.kind == StateRune {
		return s.r, s.next
	}
	return 0, InvalidState
}

// Class returns the class letter and target for Class states.
// Returns (0, InvalidState) for other states.
func (s *State) Class() (letter rune, next StateID) {
	if s.kind == StateClass {
		return s.r, s.next
	}
	return 0, InvalidState
}

// Split returns the two target states for Split states.
// Returns (InvalidState, InvalidState) for non-Split states.
func (s *State) Split() (left, right StateID) {
	if s.kind == StateSplit {
		return s.left, s.right
	}
	return InvalidState, InvalidState
}

// Accepts reports whether a Rune or Class state consumes r.
// Always false for states that do not consume input.
func (s *State) Accepts(r rune) bool {
	switch s.kind {
	case StateRune:
		return s.r == r
	case StateClass:
		return s.class(r)
	default:
		return false
	}
}

// String returns a human-readable representation of the state
func (s *State) String() string {
	switch s.kind {
	case StateMatch:
		return fmt.Sprintf("State(%d, Match)", s.id)
	case StateEarlyMatch:
		return fmt.Sprintf("State(%d, EarlyMatch)", s.id)
	case StateRune:
		return fmt.Sprintf("State(%d, Rune %q -> %d)", s.id, s.r, s.next)
	case StateClass:
		return fmt.Sprintf("State(%d, Class \\%c -> %d)", s.id, s.r, s.next)
	case StateSplit:
		return fmt.Sprintf("State(%d, Split -> [%d, %d])", s.id, s.left, s.right)
	default:
		return fmt.Sprintf("State(%d, Unknown)", s.id)
	}
}

// NFA represents a compiled Thompson NFA.
// It is immutable once built and may be shared between goroutines.
type NFA struct {
	// states contains all NFA states indexed by StateID
	states []State

	start      StateID
	match      StateID
	earlyMatch StateID

	// pattern is the source text, if known (diagnostics only)
	pattern string
}

// Start returns the entry state ID of the NFA
func (n *NFA) Start() StateID {
	return n.start
}

// MatchState returns the ID of the single whole-input match state
func (n *NFA) MatchState() StateID {
	return n.match
}

// EarlyMatchState returns the ID of the single early-match state
func (n *NFA) EarlyMatchState() StateID {
	return n.earlyMatch
}

// State returns the state with the given ID.
// Returns nil if the ID is invalid.
func (n *NFA) State(id StateID) *State {
	if id == InvalidState || int(id) >= len(n.states) {
		return nil
	}
	return &n.states[id]
}

// IsMatch returns true if the given state is the match state
func (n *NFA) IsMatch(id StateID) bool {
	if s := n.State(id); s != nil {
		return s.IsMatch()
	}
	return false
}

// States returns the total number of states in the NFA
func (n *NFA) States() int {
	return len(n.states)
}

// MatchesEverything reports whether the entry state is the match state,
// which is the case for the empty pattern.
func (n *NFA) MatchesEverything() bool {
	return n.start == n.match
}

// Pattern returns the source pattern recorded with WithPattern, if any
func (n *NFA) Pattern() string {
	return n.pattern
}

// String returns a human-readable representation of the NFA
func (n *NFA) String() string {
	return fmt.Sprintf("NFA{states: %d, start: %d, match: %d, earlyMatch: %d}",
		len(n.states), n.start, n.match, n.earlyMatch)
}
