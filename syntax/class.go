package syntax

import (
	"sort"
	"unicode"
)

// Class is a predicate over a single rune.
type Class func(r rune) bool

// ClassTable maps a class letter (the rune after '\', or '.') to its predicate.
//
// The set of letters is configurable: callers may pass a reduced or extended
// table to RewriteWithClasses. A nil table recognizes nothing.
type ClassTable map[rune]Class

var defaultClasses = ClassTable{
	'.': isAny,
	'd': isDigit,
	'D': not(isDigit),
	's': isSpace,
	'S': not(isSpace),
	'w': isWord,
	'W': not(isWord),
}

// DefaultClasses returns a fresh copy of the built-in table:
//
//	.  any rune
//	d  unicode.IsDigit         D  complement
//	s  unicode.IsSpace         S  complement
//	w  letter, number or '_'   W  complement
func DefaultClasses() ClassTable {
	t := make(ClassTable, len(defaultClasses))
	for k, v := range defaultClasses {
		t[k] = v
	}
	return t
}

// Lookup returns the predicate registered for letter.
func (t ClassTable) Lookup(letter rune) (Class, bool) {
	c, ok := t[letter]
	return c, ok && c != nil
}

// Letters returns the registered letters in ascending order.
func (t ClassTable) Letters() []rune {
	out := make([]rune, 0, len(t))
	for k := range t {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func isAny(rune) bool { return true }

func isDigit(r rune) bool { return unicode.IsDigit(r) }

func isSpace(r rune) bool { return unicode.IsSpace(r) }

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

func not(c Class) Class {
	return func(r rune) bool { return !c(r) }
}
