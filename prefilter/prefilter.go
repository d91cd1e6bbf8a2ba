// Package prefilter provides cheap necessary conditions for a full-string
// match, built from literal sequences.
//
// A prefilter is checked before the automaton runs. If it rejects a text,
// the pattern cannot accept that text. A complete prefilter is also
// sufficient: its answer is the match result and the automaton is skipped.
//
// The package selects a prefilter strategy based on the extracted literals:
//   - Complete literal set → Exact (set membership)
//   - Single required substring → Memmem
//   - Several required substrings sharing a long prefix or suffix → Memmem
//     on the shared part
//   - Several required substrings → AhoCorasick (multi-literal automaton)
//
// Example usage:
//
//	p, _ := syntax.Rewrite(`\d+(hello|world)\d+`)
//	seq := literal.New(literal.DefaultConfig()).ExtractRequired(p)
//	pf := prefilter.New(seq)
//	pf.IsMatch("12hello34") // true: the automaton still has to confirm
//	pf.IsMatch("1234")      // false: no accepted text lacks both literals
package prefilter

import (
	"github.com/matpuk/rex/literal"
	"github.com/matpuk/rex/simd"
)

// Prefilter is a necessary condition for a pattern to accept a text.
type Prefilter interface {
	// IsMatch returns false only if the pattern cannot accept text.
	// When IsComplete() is true, the result is exact.
	// text must be valid UTF-8: literals are compared as bytes, so an
	// invalid byte never equals the U+FFFD the automaton reads for it.
	IsMatch(text string) bool

	// IsComplete returns true if IsMatch decides the match on its own.
	IsComplete() bool

	// Len returns the number of literals the prefilter checks for.
	Len() int

	// HeapBytes returns the number of bytes of heap memory used by this prefilter.
	HeapBytes() int
}

// minSharedLen is the shortest common prefix/suffix worth a single
// substring search in place of a multi-literal automaton.
const minSharedLen = 3

// New builds the best prefilter for seq, or returns nil when seq gives
// no usable condition (nil or empty sequence, or an automaton build failure).
//
// seq is not modified.
func New(seq *literal.Seq) Prefilter {
	if seq.IsEmpty() {
		return nil
	}

	if seq.AllComplete() {
		return newExact(seq)
	}

	lits := seq.Clone()
	lits.Minimize()

	if lits.Len() == 1 {
		return newMemmem(lits.Get(0).Bytes)
	}

	prefix := lits.LongestCommonPrefix()
	suffix := lits.LongestCommonSuffix()
	if len(suffix) > len(prefix) {
		prefix = suffix
	}
	if len(prefix) >= minSharedLen {
		return newMemmem(prefix)
	}

	pf, err := newAhoCorasick(lits)
	if err != nil {
		return nil
	}
	return pf
}

// Exact accepts a text iff it is one of a finite set of strings.
type Exact struct {
	set   map[string]struct{}
	bytes int
}

func newExact(seq *literal.Seq) *Exact {
	p := &Exact{set: make(map[string]struct{}, seq.Len())}
	for i := 0; i < seq.Len(); i++ {
		s := string(seq.Get(i).Bytes)
		if _, ok := p.set[s]; !ok {
			p.set[s] = struct{}{}
			p.bytes += len(s)
		}
	}
	return p
}

// IsMatch implements Prefilter.IsMatch.
func (p *Exact) IsMatch(text string) bool {
	_, ok := p.set[text]
	return ok
}

// IsComplete implements Prefilter.IsComplete. Always true.
func (p *Exact) IsComplete() bool {
	return true
}

// Len implements Prefilter.Len.
func (p *Exact) Len() int {
	return len(p.set)
}

// HeapBytes implements Prefilter.HeapBytes.
func (p *Exact) HeapBytes() int {
	// rough per-entry overhead for the map bucket and string header
	return p.bytes + len(p.set)*24
}

// Memmem requires a single substring, found with a rare-byte scan.
type Memmem struct {
	finder *simd.Finder
}

func newMemmem(needle []byte) *Memmem {
	return &Memmem{finder: simd.NewFinder(string(needle))}
}

// Needle returns the substring this prefilter searches for.
func (p *Memmem) Needle() string {
	return p.finder.Needle()
}

// IsMatch implements Prefilter.IsMatch.
func (p *Memmem) IsMatch(text string) bool {
	return p.finder.Index(text) >= 0
}

// IsComplete implements Prefilter.IsComplete. Always false.
func (p *Memmem) IsComplete() bool {
	return false
}

// Len implements Prefilter.Len.
func (p *Memmem) Len() int {
	return 1
}

// HeapBytes implements Prefilter.HeapBytes.
func (p *Memmem) HeapBytes() int {
	return len(p.finder.Needle())
}
