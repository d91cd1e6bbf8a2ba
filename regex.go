// Package rex provides a small full-string regular expression matcher.
//
// A pattern is rewritten to postfix form, compiled with Thompson's
// construction and simulated with a Pike VM, so matching time is bounded by
// O(len(text) * states) with no backtracking. Patterns with literal
// structure are routed through prefilters that reject most texts without
// running the automaton.
//
// Matching is anchored at both ends: a pattern matches a text only if it
// accepts the whole text. An empty alternative ("a|", "(|b)") accepts
// everything that reaches it, whatever follows.
//
// Supported syntax:
//
//	c        a literal rune
//	\c       c literally, for c in \ * + ? ( ) | .
//	\d \w \s digit, word, space (and \D \W \S for their complements)
//	.        any rune
//	xy       concatenation
//	x|y      alternation
//	x* x+ x? repetition
//	(x)      grouping; () is an empty alternative
//
// Basic usage:
//
//	re, err := rex.Compile(`abc(d|e)+f?g*`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re.MatchString("abcdedeg") // true
//
//	ok, err := rex.Match(`\d+`, "123") // true, nil
//
// Syntax errors satisfy errors.Is(err, rex.ErrSyntax).
package rex

import (
	"reflect"

	"github.com/matpuk/rex/meta"
	"github.com/matpuk/rex/syntax"
)

// ErrSyntax is reported (wrapped) for every malformed pattern.
var ErrSyntax = syntax.ErrSyntax

// Regex represents a compiled regular expression.
//
// A Regex is safe to use concurrently from multiple goroutines, except for
// ResetStats.
//
// Example:
//
//	re := rex.MustCompile(`gg(ac|bd)`)
//	if re.MatchString("ggbd") {
//	    println("matched!")
//	}
type Regex struct {
	engine  *meta.Engine
	pattern string
}

// Source is anything Prepare and Match accept as a pattern: pattern text
// or an already compiled Regex.
type Source interface {
	~string | *Regex
}

// Compile compiles a regular expression pattern.
//
// Returns an error wrapping ErrSyntax if the pattern is invalid.
//
// Example:
//
//	re, err := rex.Compile(`\w+@\w+`)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, meta.DefaultConfig())
}

// MustCompile compiles a regular expression pattern and panics if it fails.
//
// This is useful for patterns known to be valid at compile time.
//
// Example:
//
//	var hexRegex = rex.MustCompile(`0x(\d|a|b|c|d|e|f)+`)
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("rex: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles a pattern with custom configuration.
//
// Example:
//
//	config := rex.DefaultConfig()
//	config.EnablePrefilter = false // Always run the automaton
//	re, err := rex.CompileWithConfig(`(a|b)*c`, config)
func CompileWithConfig(pattern string, config meta.Config) (*Regex, error) {
	engine, err := meta.CompileWithConfig(pattern, config)
	if err != nil {
		return nil, err
	}

	return &Regex{
		engine:  engine,
		pattern: pattern,
	}, nil
}

// DefaultConfig returns the default configuration for compilation.
//
// Users can customize this and pass to CompileWithConfig.
func DefaultConfig() meta.Config {
	return meta.DefaultConfig()
}

// Prepare returns a compiled Regex for s.
//
// Pattern text is compiled with the default configuration. A *Regex is
// returned unchanged, so Prepare is idempotent: Prepare(re) returns re
// itself.
func Prepare[S Source](s S) (*Regex, error) {
	switch v := any(s).(type) {
	case *Regex:
		return v, nil
	case string:
		return Compile(v)
	default:
		// a named string type
		return Compile(reflect.ValueOf(v).String())
	}
}

// Match reports whether pattern accepts the whole of text.
//
// pattern may be pattern text or a compiled *Regex. The only error is a
// syntax error from compiling pattern text.
//
// Example:
//
//	ok, err := rex.Match("a(b|c)*", "abcbc") // true, nil
func Match[S Source](pattern S, text string) (bool, error) {
	re, err := Prepare(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(text), nil
}

// QuoteMeta returns a string that escapes all metacharacters inside the
// argument text; the returned string is a pattern matching exactly the
// literal text.
//
// Example:
//
//	escaped := rex.QuoteMeta("1+1")
//	// escaped = `1\+1`
//	re := rex.MustCompile(escaped)
//	re.MatchString("1+1") // true
func QuoteMeta(s string) string {
	const special = `\*+?()|.`

	n := 0
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i], special) {
			n++
		}
	}

	if n == 0 {
		return s
	}

	// Metacharacters are ASCII, so escaping bytewise keeps UTF-8 intact
	buf := make([]byte, len(s)+n)
	j := 0
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i], special) {
			buf[j] = '\\'
			j++
		}
		buf[j] = s[i]
		j++
	}
	return string(buf)
}

// isSpecial returns true if c is in the special characters string.
func isSpecial(c byte, special string) bool {
	for i := 0; i < len(special); i++ {
		if c == special[i] {
			return true
		}
	}
	return false
}

// Match reports whether the pattern accepts the whole of b.
//
// Invalid UTF-8 is read as U+FFFD, one per invalid byte.
func (r *Regex) Match(b []byte) bool {
	return r.engine.IsMatch(string(b))
}

// MatchString reports whether the pattern accepts the whole of s.
//
// Example:
//
//	re := rex.MustCompile(`\d+`)
//	re.MatchString("123") // true
//	re.MatchString("12a") // false
func (r *Regex) MatchString(s string) bool {
	return r.engine.IsMatch(s)
}

// String returns the source text used to compile the regular expression.
func (r *Regex) String() string {
	return r.pattern
}

// Strategy returns the execution strategy selected for this pattern.
func (r *Regex) Strategy() meta.Strategy {
	return r.engine.Strategy()
}

// Stats returns a snapshot of execution statistics.
func (r *Regex) Stats() meta.Stats {
	return r.engine.Stats()
}

// ResetStats resets execution statistics to zero.
//
// Not safe to call concurrently with matching if exact counts matter.
func (r *Regex) ResetStats() {
	r.engine.ResetStats()
}
