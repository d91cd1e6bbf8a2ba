package syntax

import (
	"fmt"
	"strings"
)

// Op identifies a postfix token.
type Op uint8

const (
	// OpLiteral matches Token.Rune exactly
	OpLiteral Op = iota

	// OpClass matches any rune accepted by the class named by Token.Rune
	OpClass

	// OpConcat joins the two fragments below it on the stack
	OpConcat

	// OpAlternate offers the two fragments below it as alternatives
	OpAlternate

	// OpStar, OpPlus and OpQuest repeat the fragment below them
	OpStar
	OpPlus
	OpQuest

	// OpMatch is the whole-pattern match marker (empty pattern)
	OpMatch

	// OpEarlyMatch marks an empty alternative: reaching it accepts any
	// remaining input
	OpEarlyMatch
)

// String returns a human-readable representation of the Op
func (op Op) String() string {
	switch op {
	case OpLiteral:
		return "Literal"
	case OpClass:
		return "Class"
	case OpConcat:
		return "Concat"
	case OpAlternate:
		return "Alternate"
	case OpStar:
		return "Star"
	case OpPlus:
		return "Plus"
	case OpQuest:
		return "Quest"
	case OpMatch:
		return "Match"
	case OpEarlyMatch:
		return "EarlyMatch"
	default:
		return fmt.Sprintf("Unknown(%d)", op)
	}
}

// IsOperand reports whether the token pushes a new fragment
// (as opposed to combining existing ones).
func (op Op) IsOperand() bool {
	switch op {
	case OpLiteral, OpClass, OpMatch, OpEarlyMatch:
		return true
	}
	return false
}

// Token is one element of a postfix stream.
// Rune is the literal for OpLiteral and the class letter for OpClass.
type Token struct {
	Op   Op
	Rune rune
}

// Glyphs used by Postfix.String.
const (
	concatGlyph     = '·'
	matchGlyph      = '$'
	earlyMatchGlyph = '^'
)

// metaRunes can be escaped with '\' in a pattern.
const metaRunes = `\*+?()|.`

// String renders the token the way Postfix.String does.
func (t Token) String() string {
	var sb strings.Builder
	t.write(&sb)
	return sb.String()
}

func (t Token) write(sb *strings.Builder) {
	switch t.Op {
	case OpLiteral:
		if strings.ContainsRune(metaRunes, t.Rune) || isGlyph(t.Rune) {
			sb.WriteByte('\\')
		}
		sb.WriteRune(t.Rune)
	case OpClass:
		if t.Rune != '.' {
			sb.WriteByte('\\')
		}
		sb.WriteRune(t.Rune)
	case OpConcat:
		sb.WriteRune(concatGlyph)
	case OpAlternate:
		sb.WriteByte('|')
	case OpStar:
		sb.WriteByte('*')
	case OpPlus:
		sb.WriteByte('+')
	case OpQuest:
		sb.WriteByte('?')
	case OpMatch:
		sb.WriteRune(matchGlyph)
	case OpEarlyMatch:
		sb.WriteRune(earlyMatchGlyph)
	default:
		fmt.Fprintf(sb, "<%v>", t.Op)
	}
}

func isGlyph(r rune) bool {
	return r == concatGlyph || r == matchGlyph || r == earlyMatchGlyph
}

// Postfix is a rewritten pattern in postfix (reverse Polish) order.
type Postfix []Token

// String renders the stream: literals as themselves (meta runes and marker
// glyphs escaped), classes as \d or '.', concatenation as '·', the match
// marker as '$' and the early-match marker as '^'.
//
// Example:
//
//	p, _ := syntax.Rewrite("a(b|c)*")
//	p.String() // "abc|*·"
func (p Postfix) String() string {
	var sb strings.Builder
	for _, t := range p {
		t.write(&sb)
	}
	return sb.String()
}

// Operands returns the number of operand tokens in the stream.
func (p Postfix) Operands() int {
	n := 0
	for _, t := range p {
		if t.Op.IsOperand() {
			n++
		}
	}
	return n
}
