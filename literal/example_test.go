package literal_test

import (
	"fmt"

	"github.com/matpuk/rex/literal"
	"github.com/matpuk/rex/syntax"
)

func ExampleExtractor_ExtractRequired() {
	e := literal.New(literal.DefaultConfig())

	for _, pattern := range []string{"gg(ac|bd)", `\d+(foo|bar)\d+`, "a*"} {
		p, _ := syntax.Rewrite(pattern)
		seq := e.ExtractRequired(p)
		fmt.Printf("%-16s %q complete=%v\n", pattern, seq.Strings(), seq.AllComplete())
	}

	// Output:
	// gg(ac|bd)        ["ggac" "ggbd"] complete=true
	// \d+(foo|bar)\d+  ["bar" "foo"] complete=false
	// a*               [] complete=false
}

func ExampleSeq_Minimize() {
	seq := literal.NewSeq(
		literal.NewLiteral([]byte("xfoox"), false),
		literal.NewLiteral([]byte("foo"), false),
	)
	seq.Minimize()
	fmt.Println(seq.Strings())

	// Output:
	// [foo]
}
