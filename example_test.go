package rex_test

import (
	"errors"
	"fmt"

	"github.com/matpuk/rex"
)

// ExampleCompile demonstrates basic pattern compilation and matching.
func ExampleCompile() {
	re, err := rex.Compile(`abc(d|e)+f?g*`)
	if err != nil {
		panic(err)
	}

	fmt.Println(re.MatchString("abcdedeg"))
	fmt.Println(re.MatchString("abcfg"))
	// Output:
	// true
	// false
}

// ExampleCompile_syntaxError shows how to detect a malformed pattern.
func ExampleCompile_syntaxError() {
	_, err := rex.Compile("a+++")
	fmt.Println(errors.Is(err, rex.ErrSyntax))
	fmt.Println(err)
	// Output:
	// true
	// bad regular expression: invalid nested repetition operator at position 2 in "a+++"
}

// ExampleMatch matches whole strings without keeping a compiled Regex.
func ExampleMatch() {
	for _, text := range []string{"123", "12a", ""} {
		ok, err := rex.Match(`\d+`, text)
		fmt.Printf("%q %v %v\n", text, ok, err)
	}
	// Output:
	// "123" true <nil>
	// "12a" false <nil>
	// "" false <nil>
}

// ExamplePrepare shows that preparing a compiled Regex is free.
func ExamplePrepare() {
	re := rex.MustCompile("gg(ac|bd)")
	again, _ := rex.Prepare(re)
	fmt.Println(again == re, again.Strategy())
	// Output: true Literal
}

// ExampleRegex_MatchString shows that an empty alternative accepts any rest.
func ExampleRegex_MatchString() {
	re := rex.MustCompile("ab|")
	fmt.Println(re.MatchString("ab"))
	fmt.Println(re.MatchString("xyz"))
	// Output:
	// true
	// true
}

// ExampleQuoteMeta escapes metacharacters so they match literally.
func ExampleQuoteMeta() {
	pattern := rex.QuoteMeta("(1+1)*2")
	fmt.Println(pattern)
	fmt.Println(rex.MustCompile(pattern).MatchString("(1+1)*2"))
	// Output:
	// \(1\+1\)\*2
	// true
}
