// Package matchtest holds the shared acceptance table for full-string
// matching. Every engine layer (nfa, meta, rex) runs it.
package matchtest

// Case is one pattern/text pair and whether the pattern accepts the
// whole text.
type Case struct {
	Pattern string
	Text    string
	Want    bool
}

// Cases is the acceptance table.
var Cases = []Case{
	// basic symbols
	{"a", "a", true},
	{"a", "b", false},
	{"aa", "aa", true},
	{"aa", "ab", false},
	{"aba", "aba", true},
	{"aba", "a", false},
	{"aba", "abab", false},
	// '+' metacharacter
	{"a+", "a", true},
	{"a+", "aa", true},
	{"a+", "aaa", true},
	{"a+", "ab", false},
	{"a+", "aab", false},
	{"a+", "aba", false},
	{"aa+", "aa", true},
	{"aa+", "aaa", true},
	{"aa+", "aaab", false},
	{"aa+", "a", false},
	{"aa+a", "aaa", true},
	{"aa+a", "aaaa", true},
	{"aa+a", "a", false},
	{"aa+a", "aa", false},
	{"aa+a", "aab", false},
	// '?' metacharacter
	{"a?", "", true},
	{"a?", "a", true},
	{"a?", "aa", false},
	{"a?", "ab", false},
	{"a?a", "a", true},
	{"a?a", "aa", true},
	{"a?a", "", false},
	{"a?a", "aaa", false},
	{"a?a", "ab", false},
	{"a?a", "aba", false},
	{"a?ab", "ab", true},
	{"a?ab", "aab", true},
	{"a?ab", "", false},
	{"a?ab", "abb", false},
	{"a?ab", "aabb", false},
	{"a?ab", "dfgh", false},
	{"a?ab?", "a", true},
	{"a?ab?", "ab", true},
	{"a?ab?", "aa", true},
	{"a?ab?", "aab", true},
	{"a?ab?", "", false},
	{"a?ab?", "abb", false},
	{"a?ab?", "dfgh", false},
	// '*' metacharacter
	{"a*", "", true},
	{"a*", "a", true},
	{"a*", "aaaaa", true},
	{"a*", "b", false},
	{"a*a", "a", true},
	{"a*a", "aa", true},
	{"a*a", "aaaaa", true},
	{"a*a", "", false},
	{"a*a", "b", false},
	{"a*a", "*", false},
	{"a*ab", "ab", true},
	{"a*ab", "aaaaaab", true},
	{"a*ab", "b", false},
	{"a*ab", "aaaa", false},
	{"a*ab*", "a", true},
	{"a*ab*", "aaa", true},
	{"a*ab*", "ab", true},
	{"a*ab*", "abb", true},
	{"a*ab*", "aaaabb", true},
	{"a*ab*", "", false},
	{"a*ab*", "b", false},
	{"a*ab*", "bbb", false},
	{"a*ab*", "ca", false},
	// '|' metacharacter
	{"a|b", "a", true},
	{"a|b", "b", true},
	{"a|b", "", false},
	{"a|b", "aaa", false},
	{"a|b", "bbb", false},
	{"a|b", "ab", false},
	{"a|b|c", "a", true},
	{"a|b|c", "b", true},
	{"a|b|c", "c", true},
	{"a|b|c", "", false},
	{"a|b|c", "ab", false},
	{"a|b|c", "bc", false},
	{"a|b|c", "ac", false},
	{"a|b|c", "aaa", false},
	{"a|b|c", "bbb", false},
	{"a|b|c", "ccc", false},
	{"aa|bbb|cc", "aa", true},
	{"aa|bbb|cc", "bbb", true},
	{"aa|bbb|cc", "cc", true},
	{"aa|bbb|cc", "", false},
	{"aa|bbb|cc", "a", false},
	{"aa|bbb|cc", "b", false},
	{"aa|bbb|cc", "c", false},
	{"aa|bbb|cc", "bb", false},
	{"aa|bbb|cc", "abc", false},
	{"aa|bbb|cc", "efgh", false},
	// '()' metacharacters
	{"(a)", "a", true},
	{"(a)", "", false},
	{"(a)", "aa", false},
	{"(a)", "bcde", false},
	{"(ab)", "ab", true},
	{"(ab)", "", false},
	{"(ab)", "abab", false},
	{"(ab)", "abb", false},
	{"(ab)", "aab", false},
	{"(ab)", "cdef", false},
	// '()|' metacharacters
	{"(a|b)", "a", true},
	{"(a|b)", "b", true},
	{"(a|b)", "", false},
	{"(a|b)", "ab", false},
	{"(a|b)", "ba", false},
	{"(a|b)", "cdef", false},
	{"(a|(b|c))", "a", true},
	{"(a|(b|c))", "b", true},
	{"(a|(b|c))", "c", true},
	{"(a|(b|c))", "", false},
	{"(a|(b|c))", "ab", false},
	{"(a|(b|c))", "bc", false},
	{"(a|(b|c))", "abc", false},
	{"(ac|bd)", "ac", true},
	{"(ac|bd)", "bd", true},
	{"(ac|bd)", "a", false},
	{"(ac|bd)", "ab", false},
	{"(ac|bd)", "cd", false},
	{"(ac|bd)", "aaaa", false},
	{"gg(ac|bd)", "ggac", true},
	{"gg(ac|bd)", "ggbd", true},
	{"gg(ac|bd)", "gg", false},
	{"gg(ac|bd)", "gga", false},
	{"gg(ac|bd)", "ggc", false},
	{"gg(ac|bd)", "ggb", false},
	{"gg(ac|bd)", "ac", false},
	// complex regular expressions
	{"a(b|c)*", "a", true},
	{"a(b|c)*", "ab", true},
	{"a(b|c)*", "ac", true},
	{"a(b|c)*", "abbbb", true},
	{"a(b|c)*", "acbcb", true},
	{"a(b|c)*", "abbcc", true},
	{"a(b|c)*", "", false},
	{"a(b|c)*", "aa", false},
	{"a(b|c)*", "abcf", false},
	{"a|(b?)+", "", true},
	{"a|(b?)+", "a", true},
	{"a|(b?)+", "b", true},
	{"a|(b?)+", "bbb", true},
	{"a|(b?)+", "d", false},
	{"a|(b?)+", "db", false},
	{"a|(b?)+", "ba", false},
	{"abc(d|e)+f?g*", "abcd", true},
	{"abc(d|e)+f?g*", "abcdd", true},
	{"abc(d|e)+f?g*", "abce", true},
	{"abc(d|e)+f?g*", "abceee", true},
	{"abc(d|e)+f?g*", "abcdf", true},
	{"abc(d|e)+f?g*", "abcdfg", true},
	{"abc(d|e)+f?g*", "abcdfggg", true},
	{"abc(d|e)+f?g*", "abcef", true},
	{"abc(d|e)+f?g*", "abcefg", true},
	{"abc(d|e)+f?g*", "abcefggg", true},
	{"abc(d|e)+f?g*", "abcdg", true},
	{"abc(d|e)+f?g*", "abceg", true},
	{"abc(d|e)+f?g*", "abcdedeg", true},
	{"abc(d|e)+f?g*", "abceedeg", true},
	{"abc(d|e)+f?g*", "abcdddeg", true},
	{"abc(d|e)+f?g*", "", false},
	{"abc(d|e)+f?g*", "ab", false},
	{"abc(d|e)+f?g*", "abc", false},
	{"abc(d|e)+f?g*", "abcj", false},
	{"abc(d|e)+f?g*", "abcfg", false},
	{"abc(d|e)+f?g*", "abcdeb", false},
	{"abc(d|e)+f?g*", "bnbmn", false},
	{"abc(d|e)+f?g*", "abcdeff", false},
	{"abc(d|e)+f?g*", "abcdeffg", false},
	{"abc(d|e)+f?g*", "abcdeffgg", false},
	// '' - empty regular expression or empty regular symbol around '|'
	{"", "", true},
	{"", "abcd", true},
	{"|", "", true},
	{"|", "abcd", true},
	{"|a", "", true},
	{"|a", "a", true},
	{"|a", "abcd", true},
	{"a|", "", true},
	{"a|", "a", true},
	{"a|", "abcd", true},
	{"ab|", "", true},
	{"ab|", "ab", true},
	{"ab|", "abcd", true},
	{"a(|b)", "a", true},
	{"a(|b)", "ab", true},
	{"a(|b)", "aba", true},
	{"a(|b)", "adfg", true},
	{"a(|b)", "", false},
	{"a(|b)", "b", false},
	{"a(b|)", "a", true},
	{"a(b|)", "abbb", true},
	{"a(b|)", "", false},
	{"a(b|)", "b", false},
	{"a||b", "", true},
	{"a||b", "a", true},
	{"a||b", "b", true},
	{"a||b", "dfg", true},
	{"a||b", "aaa", true},
	{"a||b", "bbb", true},
	// Unicode support
	{"аaАA", "аaАA", true}, // mix of russian and english 'a'
	{"аaАA", "aaAA", false}, // match against english 'a'
	{"аaАA", "ааАА", false}, // match against russian 'a'
	{"п|у|л", "п", true},
	{"п|у|л", "у", true},
	{"п|у|л", "л", true},
	{"п|у|л", "", false},
	{"п|у|л", "пул", false},
	{"п|у|л", "pool", false},
	{"п|у|л", "пп", false},
	{"п|у|л", "ул", false},
	{"п*пф*", "п", true},
	{"п*пф*", "пп", true},
	{"п*пф*", "ппп", true},
	{"п*пф*", "пф", true},
	{"п*пф*", "ппф", true},
	{"п*пф*", "пппфффф", true},
	{"п*пф*", "", false},
	{"п*пф*", "пgф", false},
	{"п*пф*", "fпфгг", false},
	{"п*пф*", "фффф", false},
	// Case sensitiveness
	{"AbCd", "AbCd", true},
	{"AbCd", "abCd", false},
	{"AbCd", "abcd", false},
	{"AbCd", "AbCdEf", false},
	{"ГмФф", "ГмФф", true},
	{"ГмФф", "гмфФ", false},
	// escapes
	{`\*`, "*", true},
	{`\*`, "", false},
	{`a\*`, "a*", true},
	{`a\*`, "aaa", false},
	{`\\`, `\`, true},
	{`\(a\)`, "(a)", true},
	{`\(a\)`, "a", false},
	{`a\|b`, "a|b", true},
	{`a\|b`, "a", false},
	{`\.`, ".", true},
	{`\.`, "x", false},
	{`\+\?`, "+?", true},
	// classes
	{".", "x", true},
	{".", "ж", true},
	{".", "", false},
	{".*", "anything at all", true},
	{"a.c", "abc", true},
	{"a.c", "ac", false},
	{`\d+`, "123", true},
	{`\d+`, "12a", false},
	{`\d+`, "", false},
	{`\D`, "a", true},
	{`\D`, "1", false},
	{`\w+`, "a_1", true},
	{`\w+`, "дом", true},
	{`\w+`, "a b", false},
	{`\W`, " ", true},
	{`\W`, "a", false},
	{`\s*x`, " \t\nx", true},
	{`\S+`, "no-spaces", true},
	{`\S+`, "two words", false},
	{`(\d\d)+`, "1234", true},
	{`(\d\d)+`, "123", false},
	// an empty group is an empty alternative: reaching it accepts any rest
	{"()", "", true},
	{"()", "a", true},
	{"a()", "ab", true},
	{"a()", "a", true},
	{"a()", "", false},
	{"a()", "b", false},
	{"a()b", "ab", true},
	{"a()b", "ax", true},
	{"a()b", "", false},
	{"(()|a)", "a", true},
	{"(()|a)", "zzz", true},
	{"()*", "", true},
	{"()*", "x", true},
	// nested repetition through groups
	{"(a*)*", "", true},
	{"(a*)*", "aaaa", true},
	{"(a*)*", "b", false},
	{"(a|b)*c", "ababc", true},
	{"(a|b)*c", "ababa", false},
	{"((ab)+c)+", "ababcabc", true},
	{"((ab)+c)+", "ababcab", false},
}
