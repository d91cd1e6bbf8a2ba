package nfa

import (
	"fmt"

	"github.com/matpuk/rex/internal/conv"
	"github.com/matpuk/rex/syntax"
)

// Builder constructs NFAs incrementally using a low-level API.
// This provides full control over NFA construction and is used by the Compiler.
type Builder struct {
	states     []State
	start      StateID
	match      StateID
	earlyMatch StateID
}

// NewBuilder creates a new NFA builder with default capacity
func NewBuilder() *Builder {
	return NewBuilderWithCapacity(16)
}

// NewBuilderWithCapacity creates a new NFA builder with specified initial capacity
func NewBuilderWithCapacity(capacity int) *Builder {
	return &Builder{
		states:     make([]State, 0, capacity),
		start:      InvalidState,
		match:      InvalidState,
		earlyMatch: InvalidState,
	}
}

func (b *Builder) add(s State) StateID {
	id := StateID(conv.IntToUint32(len(b.states)))
	s.id = id
	b.states = append(b.states, s)
	return id
}

// AddMatch adds the match (accepting) state and returns its ID.
// An NFA has exactly one; Validate rejects a second one.
func (b *Builder) AddMatch() StateID {
	id := b.add(State{kind: StateMatch})
	if b.match == InvalidState {
		b.match = id
	}
	return id
}

// AddEarlyMatch adds the early-match state and returns its ID.
// An NFA has exactly one; Validate rejects a second one.
func (b *Builder) AddEarlyMatch() StateID {
	id := b.add(State{kind: StateEarlyMatch})
	if b.earlyMatch == InvalidState {
		b.earlyMatch = id
	}
	return id
}

// AddRune adds a state that consumes the rune r and transitions to next.
func (b *Builder) AddRune(r rune, next StateID) StateID {
	return b.add(State{kind: StateRune, r: r, next: next})
}

// AddClass adds a state that consumes one rune accepted by class.
// letter is kept for diagnostics.
func (b *Builder) AddClass(letter rune, class syntax.Class, next StateID) StateID {
	return b.add(State{kind: StateClass, r: letter, class: class, next: next})
}

// AddSplit adds a state with epsilon transitions to two states (alternation).
func (b *Builder) AddSplit(left, right StateID) StateID {
	return b.add(State{kind: StateSplit, left: left, right: right})
}

// Patch updates a state's target. This is used during compilation to handle
// forward references (e.g., loops, alternations).
// This only works for states with a single 'next' target (Rune, Class).
func (b *Builder) Patch(stateID, target StateID) error {
	if int(stateID) >= len(b.states) {
		return &BuildError{
			Message: "state ID out of bounds",
			StateID: stateID,
		}
	}

	s := &b.states[stateID]
	switch s.kind {
	case StateRune, StateClass:
		s.next = target
		return nil
	default:
		return &BuildError{
			Message: fmt.Sprintf("cannot patch state of kind %s", s.kind),
			StateID: stateID,
		}
	}
}

// PatchSplit updates the left and right targets of a Split state
func (b *Builder) PatchSplit(stateID StateID, left, right StateID) error {
	if int(stateID) >= len(b.states) {
		return &BuildError{
			Message: "state ID out of bounds",
			StateID: stateID,
		}
	}

	s := &b.states[stateID]
	if s.kind != StateSplit {
		return &BuildError{
			Message: fmt.Sprintf("expected Split state, got %s", s.kind),
			StateID: stateID,
		}
	}

	s.left = left
	s.right = right
	return nil
}

// SetStart sets the entry state for the NFA
func (b *Builder) SetStart(start StateID) {
	b.start = start
}

// States returns the current number of states
func (b *Builder) States() int {
	return len(b.states)
}

// Validate checks that the NFA is well-formed:
// - Start state is valid
// - Exactly one Match and one EarlyMatch state exist
// - Every transition points to an existing state
func (b *Builder) Validate() error {
	if b.start == InvalidState {
		return &BuildError{Message: "start state not set", StateID: InvalidState}
	}
	if int(b.start) >= len(b.states) {
		return &BuildError{
			Message: "start state out of bounds",
			StateID: b.start,
		}
	}

	var matches, earlies int
	for i := range b.states {
		s := &b.states[i]
		switch s.kind {
		case StateMatch:
			matches++
		case StateEarlyMatch:
			earlies++
		case StateRune, StateClass:
			if err := b.checkTarget(s.id, "next", s.next); err != nil {
				return err
			}
			if s.kind == StateClass && s.class == nil {
				return &BuildError{Message: "class state without predicate", StateID: s.id}
			}
		case StateSplit:
			if err := b.checkTarget(s.id, "left", s.left); err != nil {
				return err
			}
			if err := b.checkTarget(s.id, "right", s.right); err != nil {
				return err
			}
		default:
			return &BuildError{
				Message: fmt.Sprintf("unknown state kind %s", s.kind),
				StateID: s.id,
			}
		}
	}

	if matches != 1 {
		return &BuildError{
			Message: fmt.Sprintf("expected exactly one match state, found %d", matches),
			StateID: InvalidState,
		}
	}
	if earlies != 1 {
		return &BuildError{
			Message: fmt.Sprintf("expected exactly one early-match state, found %d", earlies),
			StateID: InvalidState,
		}
	}
	return nil
}

func (b *Builder) checkTarget(id StateID, field string, target StateID) error {
	if target == InvalidState {
		return &BuildError{
			Message: fmt.Sprintf("dangling %s transition", field),
			StateID: id,
		}
	}
	if int(target) >= len(b.states) {
		return &BuildError{
			Message: fmt.Sprintf("invalid %s state %d", field, target),
			StateID: id,
		}
	}
	return nil
}

// Build finalizes and returns the constructed NFA.
// The builder must not be used afterwards.
func (b *Builder) Build(opts ...BuildOption) (*NFA, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	nfa := &NFA{
		states:     b.states,
		start:      b.start,
		match:      b.match,
		earlyMatch: b.earlyMatch,
	}

	for _, opt := range opts {
		opt(nfa)
	}

	return nfa, nil
}

// BuildOption is a functional option for configuring the built NFA
type BuildOption func(*NFA)

// WithPattern records the source pattern on the NFA for diagnostics
func WithPattern(pattern string) BuildOption {
	return func(n *NFA) {
		n.pattern = pattern
	}
}
