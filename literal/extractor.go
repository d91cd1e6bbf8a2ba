package literal

import (
	"sort"

	"github.com/matpuk/rex/syntax"
)

// ExtractorConfig configures literal extraction limits.
//
// These limits prevent excessive extraction from complex patterns:
//   - MaxLiterals: prevents memory bloat from alternations like (a|b|c|d|...)
//     and cross products like (a|b)(c|d)(e|f)
//   - MaxLiteralLen: prevents extracting very long literals
type ExtractorConfig struct {
	// MaxLiterals limits the number of literals in any extracted set.
	// Default: 64.
	MaxLiterals int

	// MaxLiteralLen limits the length in bytes of each exact literal.
	// Default: 64.
	MaxLiteralLen int
}

// DefaultConfig returns the default extractor configuration.
func DefaultConfig() ExtractorConfig {
	return ExtractorConfig{
		MaxLiterals:   64,
		MaxLiteralLen: 64,
	}
}

// Extractor computes literal facts about a postfix pattern stream.
//
// The stream is evaluated bottom-up with a stack, one fact per fragment:
//   - exact: the finite set of strings the fragment accepts, if it is a pure
//     literal language within the configured limits
//   - required: literals such that every string the fragment accepts
//     contains at least one of them
//   - prefix / suffix: literals every accepted string starts / ends with,
//     so that a required literal can span a concatenation boundary
//   - early: whether the fragment contains an early-match branch, after
//     which the rest of the input is unconstrained
//
// Example:
//
//	p, _ := syntax.Rewrite("(foo|bar)baz*")
//	seq := literal.New(literal.DefaultConfig()).ExtractRequired(p)
//	// seq = ["barba", "fooba"], incomplete
type Extractor struct {
	config ExtractorConfig
}

// New creates a new Extractor with the given configuration.
// Non-positive limits are replaced by the defaults.
func New(config ExtractorConfig) *Extractor {
	def := DefaultConfig()
	if config.MaxLiterals <= 0 {
		config.MaxLiterals = def.MaxLiterals
	}
	if config.MaxLiteralLen <= 0 {
		config.MaxLiteralLen = def.MaxLiteralLen
	}
	return &Extractor{config: config}
}

// fact is what the extractor knows about one fragment. A nil set means
// "no finite literal description"; sets are sorted and duplicate-free.
// prefix and suffix may contain "", the trivial guarantee; required never does.
type fact struct {
	exact    []string
	required []string
	prefix   []string // every accepted string starts with one of these
	suffix   []string // every accepted string ends with one of these
	early    bool
}

// exactFact describes a fragment that accepts exactly set
func exactFact(set []string) fact {
	f := fact{exact: set, prefix: set, suffix: set}
	if !hasEmpty(set) {
		f.required = set
	}
	return f
}

// ExtractRequired returns a set of literals at least one of which occurs in
// every string the pattern accepts.
//
// When the pattern accepts exactly a finite set of literal strings, that set
// is returned with every literal Complete. Otherwise the literals are
// incomplete required substrings. Returns nil when nothing is guaranteed
// (e.g. "a*", `\d+`, "a|") or when postfix is malformed.
func (e *Extractor) ExtractRequired(postfix syntax.Postfix) *Seq {
	f, ok := e.analyze(postfix)
	if !ok {
		return nil
	}
	if f.exact != nil {
		return toSeq(f.exact, true)
	}
	if f.required != nil {
		return toSeq(f.required, false)
	}
	return nil
}

// ExtractExact returns the finite set of strings the pattern accepts, as
// Complete literals, or nil if the pattern is not a pure literal language.
//
// Examples:
//
//	"abc"      → ["abc"]
//	"ab(c|d)"  → ["abc", "abd"]
//	"ab?"      → ["a", "ab"]
//	"ab*"      → nil
func (e *Extractor) ExtractExact(postfix syntax.Postfix) *Seq {
	f, ok := e.analyze(postfix)
	if !ok || f.exact == nil {
		return nil
	}
	return toSeq(f.exact, true)
}

func (e *Extractor) analyze(postfix syntax.Postfix) (fact, bool) {
	stack := make([]fact, 0, len(postfix))

	pop := func() fact {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return f
	}

	for _, tok := range postfix {
		switch tok.Op {
		case syntax.OpLiteral:
			stack = append(stack, exactFact([]string{string(tok.Rune)}))

		case syntax.OpClass, syntax.OpMatch:
			stack = append(stack, fact{})

		case syntax.OpEarlyMatch:
			stack = append(stack, fact{early: true})

		case syntax.OpConcat:
			if len(stack) < 2 {
				return fact{}, false
			}
			b, a := pop(), pop()
			stack = append(stack, e.concat(a, b))

		case syntax.OpAlternate:
			if len(stack) < 2 {
				return fact{}, false
			}
			b, a := pop(), pop()
			if exact := e.union(a.exact, b.exact); exact != nil {
				stack = append(stack, exactFact(exact))
				break
			}
			f := fact{
				required: e.union(a.required, b.required),
				prefix:   e.union(a.prefix, b.prefix),
				early:    a.early || b.early,
			}
			if !f.early {
				f.suffix = e.union(a.suffix, b.suffix)
			}
			stack = append(stack, f)

		case syntax.OpQuest:
			if len(stack) < 1 {
				return fact{}, false
			}
			a := pop()
			if exact := e.union(a.exact, []string{""}); exact != nil {
				stack = append(stack, exactFact(exact))
				break
			}
			stack = append(stack, fact{early: a.early})

		case syntax.OpStar:
			if len(stack) < 1 {
				return fact{}, false
			}
			a := pop()
			stack = append(stack, fact{early: a.early})

		case syntax.OpPlus:
			if len(stack) < 1 {
				return fact{}, false
			}
			a := pop()
			stack = append(stack, fact{
				required: a.required,
				prefix:   a.prefix,
				suffix:   a.suffix,
				early:    a.early,
			})

		default:
			return fact{}, false
		}
	}

	if len(stack) != 1 {
		return fact{}, false
	}
	return stack[0], true
}

func (e *Extractor) concat(a, b fact) fact {
	if a.exact != nil && b.exact != nil {
		if exact := e.product(a.exact, b.exact); exact != nil {
			return exactFact(exact)
		}
	}

	out := fact{early: a.early || b.early}

	out.prefix = a.prefix
	if a.exact != nil && b.prefix != nil {
		if p := e.product(a.exact, b.prefix); p != nil {
			out.prefix = p
		}
	}

	if !out.early {
		out.suffix = b.suffix
		if b.exact != nil && a.suffix != nil {
			if s := e.product(a.suffix, b.exact); s != nil {
				out.suffix = s
			}
		}
	}

	// Once a can early-accept, b may never be reached
	if a.early {
		out.required = a.required
		return out
	}

	out.required = better(a.required, b.required)
	if a.suffix != nil && b.prefix != nil {
		if across := e.product(a.suffix, b.prefix); across != nil && !hasEmpty(across) {
			out.required = better(out.required, across)
		}
	}
	return out
}

// union merges two sets; nil if either side is nil or the result is too big
func (e *Extractor) union(a, b []string) []string {
	if a == nil || b == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, set := range [][]string{a, b} {
		for _, s := range set {
			if _, ok := seen[s]; !ok {
				seen[s] = struct{}{}
				out = append(out, s)
			}
		}
	}
	if len(out) > e.config.MaxLiterals {
		return nil
	}
	sort.Strings(out)
	return out
}

// product is the cross product of two exact sets within the limits
func (e *Extractor) product(a, b []string) []string {
	if len(a)*len(b) > e.config.MaxLiterals {
		return nil
	}
	seen := make(map[string]struct{}, len(a)*len(b))
	out := make([]string, 0, len(a)*len(b))
	for _, x := range a {
		for _, y := range b {
			s := x + y
			if len(s) > e.config.MaxLiteralLen {
				return nil
			}
			if _, ok := seen[s]; !ok {
				seen[s] = struct{}{}
				out = append(out, s)
			}
		}
	}
	sort.Strings(out)
	return out
}

// better picks the more selective of two required sets: the one whose
// shortest literal is longer, then the one with fewer literals.
func better(a, b []string) []string {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	ma, mb := minLen(a), minLen(b)
	if ma != mb {
		if ma > mb {
			return a
		}
		return b
	}
	if len(b) < len(a) {
		return b
	}
	return a
}

func minLen(set []string) int {
	n := len(set[0])
	for _, s := range set[1:] {
		n = min(n, len(s))
	}
	return n
}

func hasEmpty(set []string) bool {
	for _, s := range set {
		if s == "" {
			return true
		}
	}
	return false
}

func toSeq(set []string, complete bool) *Seq {
	lits := make([]Literal, len(set))
	for i, s := range set {
		lits[i] = NewLiteral([]byte(s), complete)
	}
	return NewSeq(lits...)
}
