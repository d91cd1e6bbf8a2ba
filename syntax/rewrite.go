package syntax

import (
	"strings"
	"unicode/utf8"
)

// paren saves the counters of an enclosing nesting level.
type paren struct {
	nalt  int // alternatives seen, each awaiting an OpAlternate
	natom int // atoms seen, awaiting OpConcat
}

// Rewrite converts pattern to postfix form using the default class table.
//
// Example:
//
//	p, err := syntax.Rewrite("gg(ac|bd)")
//	// p.String() == "gg·ac·bd·|·"
func Rewrite(pattern string) (Postfix, error) {
	return RewriteWithClasses(pattern, defaultClasses)
}

// RewriteWithClasses converts pattern to postfix form, resolving class
// letters against classes. Escaping a letter absent from classes is an error.
//
// The empty pattern rewrites to a single OpMatch token.
func RewriteWithClasses(pattern string, classes ClassTable) (Postfix, error) {
	if pattern == "" {
		return Postfix{{Op: OpMatch}}, nil
	}

	rw := rewriter{
		pattern: pattern,
		classes: classes,
		dst:     make(Postfix, 0, 2*len(pattern)),
	}
	if err := rw.run(); err != nil {
		return nil, err
	}
	return rw.dst, nil
}

type rewriter struct {
	pattern string
	classes ClassTable

	dst    Postfix
	parens []paren
	nalt   int
	natom  int

	// prevRepeat is true when the previous input item was an unescaped
	// repetition operator
	prevRepeat bool
}

func (rw *rewriter) run() error {
	for pos := 0; pos < len(rw.pattern); {
		c, size := utf8.DecodeRuneInString(rw.pattern[pos:])
		repeat := false

		switch c {
		case '(':
			if rw.natom > 1 {
				rw.emit(OpConcat)
				rw.natom--
			}
			rw.parens = append(rw.parens, paren{nalt: rw.nalt, natom: rw.natom})
			rw.nalt = 0
			rw.natom = 0

		case '|':
			if rw.natom == 0 {
				rw.emit(OpEarlyMatch)
				rw.natom = 1
			}
			rw.flushConcat()
			rw.nalt++

		case ')':
			if len(rw.parens) == 0 {
				return rw.error(ErrUnexpectedParen, pos)
			}
			if rw.natom == 0 {
				rw.emit(OpEarlyMatch)
				rw.natom = 1
			}
			rw.flushConcat()
			rw.flushAlternate()

			p := rw.parens[len(rw.parens)-1]
			rw.parens = rw.parens[:len(rw.parens)-1]
			rw.nalt = p.nalt
			rw.natom = p.natom + 1

		case '*', '+', '?':
			if rw.natom == 0 {
				return rw.error(ErrMissingRepeatArgument, pos)
			}
			if rw.prevRepeat {
				return rw.error(ErrRepeatedRepeat, pos)
			}
			rw.emit(repeatOp(c))
			repeat = true

		case '\\':
			if pos+size >= len(rw.pattern) {
				return rw.error(ErrTrailingBackslash, pos)
			}
			e, esize := utf8.DecodeRuneInString(rw.pattern[pos+size:])
			switch {
			case strings.ContainsRune(metaRunes, e):
				rw.atom(Token{Op: OpLiteral, Rune: e})
			case e != '.' && rw.hasClass(e):
				rw.atom(Token{Op: OpClass, Rune: e})
			default:
				return rw.error(ErrInvalidEscape, pos)
			}
			size += esize

		case '.':
			if rw.hasClass('.') {
				rw.atom(Token{Op: OpClass, Rune: '.'})
			} else {
				rw.atom(Token{Op: OpLiteral, Rune: '.'})
			}

		default:
			rw.atom(Token{Op: OpLiteral, Rune: c})
		}

		rw.prevRepeat = repeat
		pos += size
	}

	if len(rw.parens) != 0 {
		return rw.error(ErrMissingParen, len(rw.pattern))
	}

	if rw.natom == 0 && rw.nalt > 0 {
		rw.emit(OpEarlyMatch)
		rw.natom = 1
	}
	rw.flushConcat()
	rw.flushAlternate()
	return nil
}

// atom emits an operand, concatenating it with the pending atom if any.
func (rw *rewriter) atom(t Token) {
	if rw.natom > 1 {
		rw.emit(OpConcat)
		rw.natom--
	}
	rw.dst = append(rw.dst, t)
	rw.natom++
}

// flushConcat reduces the pending atoms of the current level to one.
func (rw *rewriter) flushConcat() {
	for rw.natom--; rw.natom > 0; rw.natom-- {
		rw.emit(OpConcat)
	}
}

// flushAlternate emits one OpAlternate per pending alternative.
func (rw *rewriter) flushAlternate() {
	for ; rw.nalt > 0; rw.nalt-- {
		rw.emit(OpAlternate)
	}
}

func (rw *rewriter) emit(op Op) {
	rw.dst = append(rw.dst, Token{Op: op})
}

func (rw *rewriter) hasClass(letter rune) bool {
	_, ok := rw.classes.Lookup(letter)
	return ok
}

func (rw *rewriter) error(code ErrorCode, pos int) error {
	return &Error{Code: code, Pattern: rw.pattern, Pos: pos}
}

func repeatOp(c rune) Op {
	switch c {
	case '*':
		return OpStar
	case '+':
		return OpPlus
	default:
		return OpQuest
	}
}
