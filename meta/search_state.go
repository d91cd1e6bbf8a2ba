package meta

import (
	"sync"

	"github.com/matpuk/rex/nfa"
)

// SearchState holds per-search mutable state for thread-safe concurrent searches.
// This struct is obtained from a sync.Pool to enable safe concurrent usage
// of the same compiled Engine from multiple goroutines.
//
// Usage pattern:
//
//	state := engine.getSearchState()
//	defer engine.putSearchState(state)
//	// use state for search operations
//
// Thread safety: Each goroutine must use its own SearchState instance.
type SearchState struct {
	// pikevm holds the queues, visit stamps and generation counter.
	// The generation keeps growing across reuse, so stamps left by a
	// previous search never look current.
	pikevm *nfa.PikeVMState
}

// newSearchState creates a new SearchState sized for vm.
func newSearchState(vm *nfa.PikeVM) *SearchState {
	state := &SearchState{pikevm: nfa.NewPikeVMState()}
	vm.InitState(state.pikevm)
	return state
}

// searchStatePool manages a pool of SearchState instances for thread-safe reuse.
// This follows the stdlib regexp pattern of using sync.Pool for concurrent safety.
type searchStatePool struct {
	pool sync.Pool
	vm   *nfa.PikeVM
}

// newSearchStatePool creates a pool of states for vm.
func newSearchStatePool(vm *nfa.PikeVM) *searchStatePool {
	p := &searchStatePool{vm: vm}
	p.pool = sync.Pool{
		New: func() any {
			return newSearchState(p.vm)
		},
	}
	return p
}

// get retrieves a SearchState from the pool, creating one if necessary.
func (p *searchStatePool) get() *SearchState {
	return p.pool.Get().(*SearchState)
}

// put returns a SearchState to the pool for reuse.
func (p *searchStatePool) put(state *SearchState) {
	if state == nil {
		return
	}
	p.pool.Put(state)
}
