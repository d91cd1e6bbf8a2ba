package prefilter

import (
	"github.com/coregx/ahocorasick"

	"github.com/matpuk/rex/literal"
)

// AhoCorasick requires at least one of several substrings.
// It scans the text once regardless of how many literals there are.
type AhoCorasick struct {
	automaton *ahocorasick.Automaton
	count     int
	bytes     int
}

func newAhoCorasick(seq *literal.Seq) (*AhoCorasick, error) {
	builder := ahocorasick.NewBuilder()
	total := 0
	for i := 0; i < seq.Len(); i++ {
		lit := seq.Get(i)
		builder.AddPattern(lit.Bytes)
		total += lit.Len()
	}

	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}

	return &AhoCorasick{
		automaton: auto,
		count:     seq.Len(),
		bytes:     total,
	}, nil
}

// IsMatch implements Prefilter.IsMatch.
func (p *AhoCorasick) IsMatch(text string) bool {
	return p.automaton.IsMatch([]byte(text))
}

// Find returns the byte offsets of the literal occurrence the automaton
// reports first, or (-1, -1) if none occurs.
func (p *AhoCorasick) Find(text string) (start, end int) {
	m := p.automaton.Find([]byte(text), 0)
	if m == nil {
		return -1, -1
	}
	return m.Start, m.End
}

// IsComplete implements Prefilter.IsComplete. Always false.
func (p *AhoCorasick) IsComplete() bool {
	return false
}

// Len implements Prefilter.Len.
func (p *AhoCorasick) Len() int {
	return p.count
}

// HeapBytes implements Prefilter.HeapBytes.
// Counts pattern bytes only; the automaton's tables are not visible.
func (p *AhoCorasick) HeapBytes() int {
	return p.bytes
}
