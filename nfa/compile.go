package nfa

import (
	"fmt"

	"github.com/matpuk/rex/syntax"
)

// CompilerConfig configures NFA compilation behavior
type CompilerConfig struct {
	// Classes resolves class letters of OpClass tokens.
	// nil selects syntax.DefaultClasses().
	Classes syntax.ClassTable
}

// DefaultCompilerConfig returns a compiler configuration with sensible defaults
func DefaultCompilerConfig() CompilerConfig {
	return CompilerConfig{
		Classes: syntax.DefaultClasses(),
	}
}

// Compiler turns a postfix token stream into a Thompson NFA
type Compiler struct {
	config  CompilerConfig
	builder *Builder
	stack   []frag
}

// slot is a dangling transition waiting to be patched: the next field of a
// Rune/Class state, or the right branch of a Split.
type slot struct {
	id    StateID
	right bool
}

// frag is a partially built automaton with one entry and a patch list
type frag struct {
	start StateID
	out   []slot
}

// NewCompiler creates a new NFA compiler with the given configuration
func NewCompiler(config CompilerConfig) *Compiler {
	if config.Classes == nil {
		config.Classes = syntax.DefaultClasses()
	}
	return &Compiler{config: config}
}

// NewDefaultCompiler creates a new NFA compiler with default configuration
func NewDefaultCompiler() *Compiler {
	return NewCompiler(DefaultCompilerConfig())
}

// CompileString rewrites pattern with classes and compiles the result.
// A nil classes table selects the defaults. Pattern errors are returned as
// *syntax.Error; construction faults as *CompileError wrapping a *BuildError.
func CompileString(pattern string, classes syntax.ClassTable) (*NFA, error) {
	if classes == nil {
		classes = syntax.DefaultClasses()
	}
	postfix, err := syntax.RewriteWithClasses(pattern, classes)
	if err != nil {
		return nil, err
	}
	nfa, err := NewCompiler(CompilerConfig{Classes: classes}).Compile(postfix, WithPattern(pattern))
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}
	return nfa, nil
}

// Compile applies Thompson's construction to postfix.
//
// The Match and EarlyMatch states are created first, so they always have
// IDs 0 and 1. Each operand pushes a fragment, each operator pops its
// operands and pushes the combination; exactly one fragment must remain.
// The stream is expected to come from the syntax package: malformed input
// yields a *BuildError, not a syntax error.
func (c *Compiler) Compile(postfix syntax.Postfix, opts ...BuildOption) (*NFA, error) {
	c.builder = NewBuilderWithCapacity(len(postfix) + 2)
	c.stack = c.stack[:0]

	match := c.builder.AddMatch()
	early := c.builder.AddEarlyMatch()

	for i, tok := range postfix {
		if err := c.compileToken(i, tok, match, early); err != nil {
			return nil, err
		}
	}

	if len(c.stack) != 1 {
		return nil, &BuildError{
			Message: fmt.Sprintf("fragment stack holds %d fragments at end of stream, want 1", len(c.stack)),
			StateID: InvalidState,
		}
	}

	f := c.stack[0]
	if err := c.patch(f.out, match); err != nil {
		return nil, err
	}
	c.builder.SetStart(f.start)

	return c.builder.Build(opts...)
}

func (c *Compiler) compileToken(i int, tok syntax.Token, match, early StateID) error {
	b := c.builder

	switch tok.Op {
	case syntax.OpLiteral:
		id := b.AddRune(tok.Rune, InvalidState)
		c.push(frag{start: id, out: []slot{{id: id}}})

	case syntax.OpClass:
		class, ok := c.config.Classes.Lookup(tok.Rune)
		if !ok {
			return &BuildError{
				Message: fmt.Sprintf("token %d: unknown class %q", i, tok.Rune),
				StateID: InvalidState,
			}
		}
		id := b.AddClass(tok.Rune, class, InvalidState)
		c.push(frag{start: id, out: []slot{{id: id}}})

	case syntax.OpMatch:
		c.push(frag{start: match})

	case syntax.OpEarlyMatch:
		c.push(frag{start: early})

	case syntax.OpConcat:
		f2, f1, err := c.pop2(i, tok)
		if err != nil {
			return err
		}
		if err := c.patch(f1.out, f2.start); err != nil {
			return err
		}
		c.push(frag{start: f1.start, out: f2.out})

	case syntax.OpAlternate:
		f2, f1, err := c.pop2(i, tok)
		if err != nil {
			return err
		}
		s := b.AddSplit(f1.start, f2.start)
		c.push(frag{start: s, out: append(f1.out, f2.out...)})

	case syntax.OpQuest:
		f, err := c.pop(i, tok)
		if err != nil {
			return err
		}
		s := b.AddSplit(f.start, InvalidState)
		c.push(frag{start: s, out: append(f.out, slot{id: s, right: true})})

	case syntax.OpStar:
		f, err := c.pop(i, tok)
		if err != nil {
			return err
		}
		s := b.AddSplit(f.start, InvalidState)
		if err := c.patch(f.out, s); err != nil {
			return err
		}
		c.push(frag{start: s, out: []slot{{id: s, right: true}}})

	case syntax.OpPlus:
		f, err := c.pop(i, tok)
		if err != nil {
			return err
		}
		s := b.AddSplit(f.start, InvalidState)
		if err := c.patch(f.out, s); err != nil {
			return err
		}
		c.push(frag{start: f.start, out: []slot{{id: s, right: true}}})

	default:
		return &BuildError{
			Message: fmt.Sprintf("token %d: unknown op %v", i, tok.Op),
			StateID: InvalidState,
		}
	}
	return nil
}

// patch points every slot in out at target
func (c *Compiler) patch(out []slot, target StateID) error {
	for _, s := range out {
		if s.right {
			left := c.builder.states[s.id].left
			if err := c.builder.PatchSplit(s.id, left, target); err != nil {
				return err
			}
			continue
		}
		if err := c.builder.Patch(s.id, target); err != nil {
			return err
		}
	}
	return nil
}

func (c *Compiler) push(f frag) {
	c.stack = append(c.stack, f)
}

func (c *Compiler) pop(i int, tok syntax.Token) (frag, error) {
	n := len(c.stack)
	if n == 0 {
		return frag{}, underflow(i, tok)
	}
	f := c.stack[n-1]
	c.stack = c.stack[:n-1]
	return f, nil
}

// pop2 pops the top two fragments, topmost first
func (c *Compiler) pop2(i int, tok syntax.Token) (top, below frag, err error) {
	if len(c.stack) < 2 {
		return frag{}, frag{}, underflow(i, tok)
	}
	top, _ = c.pop(i, tok)
	below, _ = c.pop(i, tok)
	return top, below, nil
}

func underflow(i int, tok syntax.Token) error {
	return &BuildError{
		Message: fmt.Sprintf("token %d (%v): fragment stack underflow", i, tok.Op),
		StateID: InvalidState,
	}
}
