package syntax

import (
	"errors"
	"testing"
)

func TestRewrite(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		// basic symbols
		{"a", "a"},
		{"aa", "aa·"},
		{"aba", "ab·a·"},

		// repetition
		{"a+", "a+"},
		{"aa+", "aa+·"},
		{"aa+a", "aa+·a·"},
		{"a?", "a?"},
		{"a?a", "a?a·"},
		{"a?ab", "a?a·b·"},
		{"a?ab?", "a?a·b?·"},
		{"a*", "a*"},
		{"a*a", "a*a·"},
		{"a*ab", "a*a·b·"},
		{"a*ab*", "a*a·b*·"},

		// alternation
		{"a|b", "ab|"},
		{"a|b|c", "abc||"},
		{"aa|bb|cc", "aa·bb·cc·||"},
		{"aa|bbb|cc", "aa·bb·b·cc·||"},

		// grouping
		{"(a)", "a"},
		{"(ab)", "ab·"},
		{"(a|b)", "ab|"},
		{"(a|(b|c))", "abc||"},
		{"(ac|bd)", "ac·bd·|"},
		{"gg(ac|bd)", "gg·ac·bd·|·"},

		// complex
		{"a(b|c)*", "abc|*·"},
		{"a|(b?)+", "ab?+|"},
		{"abc(d|e)+f?g*", "ab·c·de|+·f?·g*·"},

		// empty pattern and empty alternatives
		{"", "$"},
		{"|", "^^|"},
		{"|a", "^a|"},
		{"a|", "a^|"},
		{"ab|", "ab·^|"},
		{"a(|b)", "a^b|·"},
		{"a(b|)", "ab^|·"},
		{"a||b", "a^b||"},
		{"(|)", "^^|"},

		// an empty group is an empty alternative
		{"()", "^"},
		{"a()b", "a^·b·"},
		{"a()", "a^·"},
		{"(())", "^"},
		{"()*", "^*"},

		// unicode
		{"п|у|л", "пул||"},
		{"п*пф*", "п*п·ф*·"},

		// escaping
		{`\+`, `\+`},
		{`a\+`, `a\+·`},
		{`\\`, `\\`},
		{`\*\?\+\(\|\)`, `\*\?·\+·\(·\|·\)·`},
		{`\**`, `\**`},
		{`\.`, `\.`},

		// marker glyphs used as literals are escaped in the rendering
		{"a$", `a\$·`},
		{"^·", `\^\··`},

		// classes
		{".", "."},
		{`\d+`, `\d+`},
		{`\w\W\s\S\d\D`, `\w\W·\s·\S·\d·\D·`},
		{`a.b`, "a.·b·"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got, err := Rewrite(tt.pattern)
			if err != nil {
				t.Fatalf("Rewrite(%q) error: %v", tt.pattern, err)
			}
			if got.String() != tt.want {
				t.Errorf("Rewrite(%q) = %q, want %q", tt.pattern, got.String(), tt.want)
			}
		})
	}
}

func TestRewrite_Errors(t *testing.T) {
	tests := []struct {
		pattern string
		code    ErrorCode
		pos     int
	}{
		{"*", ErrMissingRepeatArgument, 0},
		{"+", ErrMissingRepeatArgument, 0},
		{"?", ErrMissingRepeatArgument, 0},
		{")", ErrUnexpectedParen, 0},
		{"(", ErrMissingParen, 1},
		{"aa(", ErrMissingParen, 3},
		{"(a", ErrMissingParen, 2},
		{"a|+", ErrMissingRepeatArgument, 2},
		{"a|*", ErrMissingRepeatArgument, 2},
		{"a|?", ErrMissingRepeatArgument, 2},
		{"(*)", ErrMissingRepeatArgument, 1},
		{"(aaa|b", ErrMissingParen, 6},
		{"(a|b(c)", ErrMissingParen, 7},
		{"a+++", ErrRepeatedRepeat, 2},
		{"a+?*", ErrRepeatedRepeat, 2},
		{"a**?", ErrRepeatedRepeat, 2},
		{"a**", ErrRepeatedRepeat, 2},
		{"a??", ErrRepeatedRepeat, 2},
		{`\a`, ErrInvalidEscape, 0},
		{`ab\j`, ErrInvalidEscape, 2},
		{`\(a)`, ErrUnexpectedParen, 3},
		{`\\\`, ErrTrailingBackslash, 2},
		{`abd\`, ErrTrailingBackslash, 3},
		{`\`, ErrTrailingBackslash, 0},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			_, err := Rewrite(tt.pattern)
			if err == nil {
				t.Fatalf("Rewrite(%q): expected error", tt.pattern)
			}
			if !errors.Is(err, ErrSyntax) {
				t.Errorf("error %v does not wrap ErrSyntax", err)
			}
			var se *Error
			if !errors.As(err, &se) {
				t.Fatalf("error %T is not *Error", err)
			}
			if se.Code != tt.code {
				t.Errorf("Code = %q, want %q", se.Code, tt.code)
			}
			if se.Pos != tt.pos {
				t.Errorf("Pos = %d, want %d", se.Pos, tt.pos)
			}
			if se.Pattern != tt.pattern {
				t.Errorf("Pattern = %q, want %q", se.Pattern, tt.pattern)
			}
		})
	}
}

func TestRewriteWithClasses(t *testing.T) {
	custom := ClassTable{
		'x': func(r rune) bool { return r == 'x' || r == 'X' },
	}

	tests := []struct {
		name    string
		pattern string
		classes ClassTable
		want    string
		wantErr bool
	}{
		{"custom letter", `\x+`, custom, `\x+`, false},
		{"default letter unknown", `\d`, custom, "", true},
		{"dot without table entry is literal", "a.", custom, `a\.·`, false},
		{"nil table", `a.`, nil, `a\.·`, false},
		{"nil table rejects escapes", `\w`, nil, "", true},
		{"escaped dot is always literal", `\.`, DefaultClasses(), `\.`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RewriteWithClasses(tt.pattern, tt.classes)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("got %q, want %q", got.String(), tt.want)
			}
		})
	}
}

func TestRewrite_Tokens(t *testing.T) {
	got, err := Rewrite(`a\d|`)
	if err != nil {
		t.Fatal(err)
	}
	want := Postfix{
		{Op: OpLiteral, Rune: 'a'},
		{Op: OpClass, Rune: 'd'},
		{Op: OpConcat},
		{Op: OpEarlyMatch},
		{Op: OpAlternate},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if got.Operands() != 3 {
		t.Errorf("Operands() = %d, want 3", got.Operands())
	}
}

func TestError_Message(t *testing.T) {
	_, err := Rewrite("a**")
	want := `bad regular expression: invalid nested repetition operator at position 2 in "a**"`
	if err == nil || err.Error() != want {
		t.Errorf("got %v, want %s", err, want)
	}
}

func TestOp_String(t *testing.T) {
	if OpEarlyMatch.String() != "EarlyMatch" {
		t.Errorf("OpEarlyMatch.String() = %q", OpEarlyMatch.String())
	}
	if Op(200).String() != "Unknown(200)" {
		t.Errorf("Op(200).String() = %q", Op(200).String())
	}
}
