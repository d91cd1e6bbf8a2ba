package literal

import (
	"bytes"
	"reflect"
	"testing"
)

func TestLiteralBasic(t *testing.T) {
	tests := []struct {
		name     string
		bytes    []byte
		complete bool
		wantLen  int
		wantStr  string
	}{
		{"simple complete literal", []byte("hello"), true, 5, "literal{hello, complete=true}"},
		{"incomplete literal", []byte("test"), false, 4, "literal{test, complete=false}"},
		{"empty literal", []byte{}, true, 0, "literal{, complete=true}"},
		{"multibyte", []byte("пул"), false, 6, "literal{пул, complete=false}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lit := NewLiteral(tt.bytes, tt.complete)
			if got := lit.Len(); got != tt.wantLen {
				t.Errorf("Len() = %d, want %d", got, tt.wantLen)
			}
			if got := lit.String(); got != tt.wantStr {
				t.Errorf("String() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func seqOf(complete bool, ss ...string) *Seq {
	lits := make([]Literal, len(ss))
	for i, s := range ss {
		lits[i] = NewLiteral([]byte(s), complete)
	}
	return NewSeq(lits...)
}

func TestSeq_NilSafe(t *testing.T) {
	var s *Seq
	if s.Len() != 0 || !s.IsEmpty() || s.AllComplete() || s.MinLen() != 0 {
		t.Error("nil Seq should behave as empty")
	}
	if s.Strings() != nil || s.Clone() != nil {
		t.Error("nil Seq should yield nil")
	}
	s.Minimize()
}

func TestSeq_AllComplete(t *testing.T) {
	mixed := NewSeq(NewLiteral([]byte("a"), true), NewLiteral([]byte("b"), false))
	tests := []struct {
		name string
		seq  *Seq
		want bool
	}{
		{"empty", NewSeq(), false},
		{"complete", seqOf(true, "a", "b"), true},
		{"incomplete", seqOf(false, "a"), false},
		{"mixed", mixed, false},
	}
	for _, tt := range tests {
		if got := tt.seq.AllComplete(); got != tt.want {
			t.Errorf("%s: AllComplete() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSeq_MinLen(t *testing.T) {
	if got := seqOf(false, "abc", "d", "ef").MinLen(); got != 1 {
		t.Errorf("MinLen() = %d, want 1", got)
	}
}

func TestSeq_Minimize(t *testing.T) {
	tests := []struct {
		name string
		seq  *Seq
		want []string
	}{
		{"substring redundancy", seqOf(false, "xfoox", "foo", "bar"), []string{"bar", "foo"}},
		{"duplicates", seqOf(false, "ab", "ab"), []string{"ab"}},
		{"chain", seqOf(false, "abc", "ab", "b"), []string{"b"}},
		{"exact keeps superstrings", seqOf(true, "abc", "ab", "ab"), []string{"ab", "abc"}},
		{"no redundancy", seqOf(false, "hello", "world"), []string{"hello", "world"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.seq.Minimize()
			if got := tt.seq.Strings(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Minimize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSeq_Clone(t *testing.T) {
	original := seqOf(true, "test")
	clone := original.Clone()
	clone.Get(0).Bytes[0] = 'X'
	if string(original.Get(0).Bytes) != "test" {
		t.Error("Clone shares byte slices with the original")
	}
	if !clone.Get(0).Complete {
		t.Error("Clone lost the Complete flag")
	}
}

func TestSeq_LongestCommonPrefix(t *testing.T) {
	tests := []struct {
		seq  *Seq
		want string
	}{
		{seqOf(false, "hello", "help", "hero"), "he"},
		{seqOf(false, "abc", "def"), ""},
		{seqOf(false, "same"), "same"},
		{seqOf(false, "ab", "abc"), "ab"},
		{NewSeq(), ""},
	}
	for _, tt := range tests {
		if got := tt.seq.LongestCommonPrefix(); !bytes.Equal(got, []byte(tt.want)) {
			t.Errorf("LongestCommonPrefix(%q) = %q, want %q", tt.seq.Strings(), got, tt.want)
		}
	}
}

func TestSeq_LongestCommonSuffix(t *testing.T) {
	tests := []struct {
		seq  *Seq
		want string
	}{
		{seqOf(false, "cat", "bat", "rat"), "at"},
		{seqOf(false, "abc", "def"), ""},
		{seqOf(false, "xbc", "bc"), "bc"},
		{seqOf(false, "foo1.log", "bar2.log"), ".log"},
		{NewSeq(), ""},
	}
	for _, tt := range tests {
		if got := tt.seq.LongestCommonSuffix(); !bytes.Equal(got, []byte(tt.want)) {
			t.Errorf("LongestCommonSuffix(%q) = %q, want %q", tt.seq.Strings(), got, tt.want)
		}
	}
}
