package meta

import (
	"sync/atomic"
	"unicode/utf8"

	"github.com/matpuk/rex/nfa"
	"github.com/matpuk/rex/prefilter"
	"github.com/matpuk/rex/simd"
	"github.com/matpuk/rex/syntax"
)

// Engine is the meta-engine that orchestrates prefilter and PikeVM.
//
// Thread safety: The Engine uses a sync.Pool internally to provide thread-safe
// concurrent access. Multiple goroutines can safely call IsMatch on the same
// Engine instance concurrently.
//
// Example:
//
//	engine, err := meta.Compile("abc(d|e)+f?g*")
//	if err != nil {
//	    return err
//	}
//	engine.IsMatch("abcdeg") // true
type Engine struct {
	pattern   string
	postfix   syntax.Postfix
	nfa       *nfa.NFA
	pikevm    *nfa.PikeVM
	prefilter prefilter.Prefilter
	strategy  Strategy
	config    Config

	// statePool provides thread-safe pooling of per-search mutable state.
	statePool *searchStatePool

	stats stats
}

// Stats tracks execution statistics for performance analysis.
type Stats struct {
	// Matches counts IsMatch calls that returned true
	Matches uint64

	// NFASearches counts PikeVM runs
	NFASearches uint64

	// PrefilterRejects counts texts rejected by the prefilter without a PikeVM run
	PrefilterRejects uint64

	// LiteralMatches counts texts decided by the exact literal set alone
	LiteralMatches uint64
}

// stats holds the live counters; Stats is a snapshot of it
type stats struct {
	matches          atomic.Uint64
	nfaSearches      atomic.Uint64
	prefilterRejects atomic.Uint64
	literalMatches   atomic.Uint64
}

// Compile compiles a pattern with the default configuration.
//
// Example:
//
//	engine, err := meta.Compile(`\w+@\w+`)
func Compile(pattern string) (*Engine, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig compiles a pattern with custom configuration.
//
// Pattern errors are *syntax.Error values and satisfy
// errors.Is(err, syntax.ErrSyntax). An invalid config yields a *ConfigError.
func CompileWithConfig(pattern string, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	classes := config.classes()
	postfix, err := syntax.RewriteWithClasses(pattern, classes)
	if err != nil {
		return nil, err
	}

	compiler := nfa.NewCompiler(nfa.CompilerConfig{Classes: classes})
	nfaEngine, err := compiler.Compile(postfix, nfa.WithPattern(pattern))
	if err != nil {
		return nil, &nfa.CompileError{Pattern: pattern, Err: err}
	}

	strategy, pf := selectStrategy(nfaEngine, postfix, config)
	vm := nfa.NewPikeVM(nfaEngine)

	return &Engine{
		pattern:   pattern,
		postfix:   postfix,
		nfa:       nfaEngine,
		pikevm:    vm,
		prefilter: pf,
		strategy:  strategy,
		config:    config,
		statePool: newSearchStatePool(vm),
	}, nil
}

// IsMatch reports whether the pattern accepts the whole of text.
//
// Safe for concurrent use.
func (e *Engine) IsMatch(text string) bool {
	var matched bool

	switch {
	case e.strategy == UseMatchAll:
		matched = true

	case e.prefilter != nil && !validUTF8(text):
		// Prefilters compare bytes, the PikeVM reads each invalid byte
		// as U+FFFD. Only the PikeVM answer is right here.
		matched = e.isMatchNFA(text)

	case e.strategy == UseLiteral:
		e.stats.literalMatches.Add(1)
		matched = e.prefilter.IsMatch(text)

	case e.strategy == UsePrefilter:
		if !e.prefilter.IsMatch(text) {
			e.stats.prefilterRejects.Add(1)
			return false
		}
		matched = e.isMatchNFA(text)

	default:
		matched = e.isMatchNFA(text)
	}

	if matched {
		e.stats.matches.Add(1)
	}
	return matched
}

func validUTF8(text string) bool {
	return simd.IsASCIIString(text) || utf8.ValidString(text)
}

func (e *Engine) isMatchNFA(text string) bool {
	e.stats.nfaSearches.Add(1)

	state := e.getSearchState()
	defer e.putSearchState(state)

	return e.pikevm.IsMatchWithState(text, state.pikevm)
}

// getSearchState retrieves a SearchState from the pool.
func (e *Engine) getSearchState() *SearchState {
	return e.statePool.get()
}

// putSearchState returns a SearchState to the pool.
func (e *Engine) putSearchState(state *SearchState) {
	e.statePool.put(state)
}

// Strategy returns the execution strategy selected for this engine.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// NFA returns the compiled automaton.
func (e *Engine) NFA() *nfa.NFA {
	return e.nfa
}

// Postfix returns the rewritten token stream the automaton was built from.
func (e *Engine) Postfix() syntax.Postfix {
	return e.postfix
}

// Prefilter returns the prefilter in use, or nil.
func (e *Engine) Prefilter() prefilter.Prefilter {
	return e.prefilter
}

// Pattern returns the source pattern.
func (e *Engine) Pattern() string {
	return e.pattern
}

// Config returns the configuration the engine was compiled with.
func (e *Engine) Config() Config {
	return e.config
}

// Stats returns a snapshot of the execution statistics.
func (e *Engine) Stats() Stats {
	return Stats{
		Matches:          e.stats.matches.Load(),
		NFASearches:      e.stats.nfaSearches.Load(),
		PrefilterRejects: e.stats.prefilterRejects.Load(),
		LiteralMatches:   e.stats.literalMatches.Load(),
	}
}

// ResetStats resets execution statistics to zero.
func (e *Engine) ResetStats() {
	e.stats.matches.Store(0)
	e.stats.nfaSearches.Store(0)
	e.stats.prefilterRejects.Store(0)
	e.stats.literalMatches.Store(0)
}
