package literal

import (
	"reflect"
	"strings"
	"testing"

	"github.com/matpuk/rex/internal/matchtest"
	"github.com/matpuk/rex/syntax"
)

func rewrite(t *testing.T, pattern string) syntax.Postfix {
	t.Helper()
	p, err := syntax.Rewrite(pattern)
	if err != nil {
		t.Fatalf("Rewrite(%q): %v", pattern, err)
	}
	return p
}

func TestExtractRequired(t *testing.T) {
	tests := []struct {
		pattern  string
		want     []string // nil = no guarantee
		complete bool
	}{
		// exact languages
		{"abc", []string{"abc"}, true},
		{"a|b", []string{"a", "b"}, true},
		{"ab(c|d)", []string{"abc", "abd"}, true},
		{"ab?", []string{"a", "ab"}, true},
		{"a?", []string{"", "a"}, true},
		{"(foo|bar)(x|y)", []string{"barx", "bary", "foox", "fooy"}, true},

		// required substrings
		{"(foo|bar)baz*", []string{"barba", "fooba"}, false},
		{"hello.*", []string{"hello"}, false},
		{`\d+hello\d+`, []string{"hello"}, false},
		{"x*foo", []string{"foo"}, false},
		{"(abc)+", []string{"abc"}, false},
		{"ab(c|d)*", []string{"ab"}, false},
		{"a(b|c)*", []string{"a"}, false},
		{"abc(d|e)+f?g*", []string{"abcd", "abce"}, false},
		{"a()b", []string{"a"}, false}, // () accepts any rest
		{"()", nil, false},
		{"gg(ac|bd)", []string{"ggac", "ggbd"}, true},
		{"foo(|x)bar", []string{"foo"}, false},
		{"ab|cd.", []string{"ab", "cd"}, false},
		{`\d+hello\d+x`, []string{"hello"}, false},
		{`\w(ab|cd)e\w`, []string{"abe", "cde"}, false},
		{"a.bcd.e", []string{"bcd"}, false},

		// nothing guaranteed
		{"", nil, false},
		{"a*", nil, false},
		{`\d+`, nil, false},
		{"a|", nil, false},
		{"|a", nil, false},
		{"a||b", nil, false},
		{"a|.", nil, false},
		{"(a|)b", nil, false},
	}

	e := New(DefaultConfig())
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			seq := e.ExtractRequired(rewrite(t, tt.pattern))
			got := seq.Strings()
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ExtractRequired(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
			if seq != nil && seq.AllComplete() != tt.complete {
				t.Errorf("AllComplete() = %v, want %v", seq.AllComplete(), tt.complete)
			}
		})
	}
}

func TestExtractExact(t *testing.T) {
	tests := []struct {
		pattern string
		want    []string
	}{
		{"abc", []string{"abc"}},
		{"ab(c|d)", []string{"abc", "abd"}},
		{"a|a", []string{"a"}},
		{"ab*", nil},
		{"a.", nil},
		{"a|", nil},
	}

	e := New(DefaultConfig())
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got := e.ExtractExact(rewrite(t, tt.pattern)).Strings()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractExact(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestExtractor_Limits(t *testing.T) {
	small := New(ExtractorConfig{MaxLiterals: 4, MaxLiteralLen: 4})

	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		// 2*2*2 = 8 > 4: exact set dropped, best required side kept
		{"product too large", "(a|b)(c|d)(e|f)", []string{"ac", "ad", "bc", "bd"}},
		{"alternation too wide", "a|b|c|d|e", nil},
		{"literal too long", "abcdef", []string{"abcd"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := small.ExtractRequired(rewrite(t, tt.pattern)).Strings()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractor_Malformed(t *testing.T) {
	e := New(DefaultConfig())
	bad := []syntax.Postfix{
		{},
		{{Op: syntax.OpConcat}},
		{{Op: syntax.OpLiteral, Rune: 'a'}, {Op: syntax.OpAlternate}},
		{{Op: syntax.OpStar}},
		{{Op: syntax.OpLiteral, Rune: 'a'}, {Op: syntax.OpLiteral, Rune: 'b'}},
		{{Op: syntax.Op(77)}},
	}
	for i, p := range bad {
		if seq := e.ExtractRequired(p); seq != nil {
			t.Errorf("case %d: expected nil, got %v", i, seq.Strings())
		}
	}
}

func TestNew_Defaults(t *testing.T) {
	e := New(ExtractorConfig{})
	if e.config != DefaultConfig() {
		t.Errorf("config = %+v, want defaults", e.config)
	}
}

// Every accepted text must contain a required literal; an exact set must
// decide the match on its own.
func TestExtractRequired_Sound(t *testing.T) {
	e := New(DefaultConfig())
	for _, tc := range matchtest.Cases {
		seq := e.ExtractRequired(rewrite(t, tc.Pattern))
		if seq == nil {
			continue
		}

		if seq.AllComplete() {
			in := false
			for _, s := range seq.Strings() {
				if s == tc.Text {
					in = true
				}
			}
			if in != tc.Want {
				t.Errorf("%q on %q: exact set %q says %v, want %v", tc.Pattern, tc.Text, seq.Strings(), in, tc.Want)
			}
			continue
		}

		if !tc.Want {
			continue
		}
		found := false
		for _, s := range seq.Strings() {
			if strings.Contains(tc.Text, s) {
				found = true
			}
		}
		if !found {
			t.Errorf("%q accepts %q but required set %q misses it", tc.Pattern, tc.Text, seq.Strings())
		}
	}
}
