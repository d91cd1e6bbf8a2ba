package nfa

import (
	"github.com/matpuk/rex/simd"
)

// PikeVM implements the Pike VM algorithm for NFA execution.
// It simulates the NFA by maintaining a set of active states and
// advancing all of them in lock step, one rune at a time. Work is bounded
// by O(len(text) * states); there is no backtracking and no recursion.
//
// Matching is anchored at both ends: the whole text must be consumed unless
// an EarlyMatch state is reached first.
//
// Thread safety: PikeVM configuration (nfa) is immutable after creation.
// For thread-safe concurrent usage, use IsMatchWithState with an external
// PikeVMState per goroutine. IsMatch uses internal state and is NOT thread-safe.
type PikeVM struct {
	nfa *NFA

	// internalState is used by IsMatch.
	internalState PikeVMState
}

// PikeVMState holds mutable per-search state for PikeVM.
// This struct should be pooled (via sync.Pool) for concurrent usage.
// Each goroutine must use its own PikeVMState instance.
type PikeVMState struct {
	// State sets for the current and next input position
	queue     []StateID
	nextQueue []StateID

	// stamps[id] == generation means id is already in nextQueue (or was
	// expanded through) during the current closure round
	stamps     []uint32
	generation uint32

	// epsilonStack holds pending Split right branches during closure
	epsilonStack []StateID
}

// NewPikeVM creates a new PikeVM for executing the given NFA
func NewPikeVM(nfa *NFA) *PikeVM {
	p := &PikeVM{nfa: nfa}
	p.InitState(&p.internalState)
	return p
}

// NewPikeVMState creates a new mutable state for use with PikeVM.
// It is sized lazily on first use; InitState sizes it up front.
// This should be pooled via sync.Pool for concurrent usage.
func NewPikeVMState() *PikeVMState {
	return &PikeVMState{}
}

// InitState sizes state for this PikeVM's NFA.
// Calling it is optional; IsMatchWithState grows an undersized state.
func (p *PikeVM) InitState(state *PikeVMState) {
	n := p.nfa.States()
	if len(state.stamps) < n {
		state.stamps = make([]uint32, n)
		state.generation = 0
	}
	if cap(state.queue) < n {
		state.queue = make([]StateID, 0, n)
		state.nextQueue = make([]StateID, 0, n)
	}
	if cap(state.epsilonStack) < n {
		state.epsilonStack = make([]StateID, 0, n)
	}
}

// NumStates returns the number of NFA states (for state allocation).
func (p *PikeVM) NumStates() int {
	return p.nfa.States()
}

// NFA returns the automaton this PikeVM executes
func (p *PikeVM) NFA() *NFA {
	return p.nfa
}

// Generation returns the number of closure rounds started with this state
// since it was created or last wrapped around. It only ever grows between
// wrap-arounds.
func (s *PikeVMState) Generation() uint32 {
	return s.generation
}

// nextGeneration starts a new closure round. On wrap-around the stamp table
// is cleared, since stale stamps could otherwise equal the new generation.
func (s *PikeVMState) nextGeneration() {
	s.generation++
	if s.generation == 0 {
		clear(s.stamps)
		s.generation = 1
	}
}

// IsMatch reports whether the NFA accepts the whole of text.
//
// This method uses internal state and is NOT thread-safe.
// For concurrent usage, use IsMatchWithState.
func (p *PikeVM) IsMatch(text string) bool {
	return p.IsMatchWithState(text, &p.internalState)
}

// IsMatchWithState reports whether the NFA accepts the whole of text, using
// state for all mutable data. It is safe to call concurrently as long as
// each goroutine passes its own state.
func (p *PikeVM) IsMatchWithState(text string, state *PikeVMState) bool {
	// Empty pattern: entry is the match state
	if p.nfa.MatchesEverything() {
		return true
	}

	p.InitState(state)

	state.nextGeneration()
	state.nextQueue = state.nextQueue[:0]
	if p.closure(p.nfa.start, state) {
		return true
	}
	state.queue, state.nextQueue = state.nextQueue, state.queue

	// ASCII prefix: every byte is a rune, skip UTF-8 decoding
	ascii := len(text)
	if !simd.IsASCIIString(text) {
		ascii = simd.FirstNonASCII(text)
	}
	for i := 0; i < ascii; i++ {
		if len(state.queue) == 0 {
			return false
		}
		if p.step(rune(text[i]), state) {
			return true
		}
	}

	// range decodes invalid bytes as utf8.RuneError
	for _, r := range text[ascii:] {
		if len(state.queue) == 0 {
			return false
		}
		if p.step(r, state) {
			return true
		}
	}

	for _, id := range state.queue {
		if id == p.nfa.match {
			return true
		}
	}
	return false
}

// step advances every consuming state in queue over r into nextQueue and
// swaps the two. Returns true if an EarlyMatch state was reached.
func (p *PikeVM) step(r rune, state *PikeVMState) bool {
	state.nextGeneration()
	state.nextQueue = state.nextQueue[:0]

	for _, id := range state.queue {
		s := &p.nfa.states[id]
		if s.Accepts(r) && p.closure(s.next, state) {
			return true
		}
	}

	state.queue, state.nextQueue = state.nextQueue, state.queue
	return false
}

// closure adds the epsilon closure of id to nextQueue.
// Loop-based with an explicit stack: Split pushes right and continues
// with left. Returns true as soon as an EarlyMatch state is reachable.
func (p *PikeVM) closure(id StateID, state *PikeVMState) bool {
	early := p.nfa.earlyMatch
	stack := append(state.epsilonStack[:0], id)

	for len(stack) > 0 {
		sid := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

	follow:
		for state.stamps[sid] != state.generation {
			state.stamps[sid] = state.generation

			s := &p.nfa.states[sid]
			switch s.kind {
			case StateEarlyMatch:
				state.epsilonStack = stack
				return true

			case StateSplit:
				if s.left == early || s.right == early {
					state.epsilonStack = stack
					return true
				}
				stack = append(stack, s.right)
				sid = s.left

			default:
				// Rune, Class and Match wait in the queue
				state.nextQueue = append(state.nextQueue, sid)
				break follow
			}
		}
	}

	state.epsilonStack = stack
	return false
}
