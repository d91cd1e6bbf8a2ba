package simd

// byteRanks orders bytes by how common they are in text and code; a lower
// rank is a rarer byte and a better candidate to scan for. Bytes not listed
// (controls, most punctuation, non-ASCII) rank 0.
var byteRanks = func() [256]byte {
	const byFrequency = "ZQXJKVBPYGFWMUCLDRHSNIOATE" +
		"zqjxkvbpygfwmucd" + "0123456789" + ".,_lhnrsoaite "
	var t [256]byte
	for i := 0; i < len(byFrequency); i++ {
		t[byFrequency[i]] = byte(i + 1)
	}
	return t
}()

// Finder searches for one fixed needle.
//
// Candidates are located with IndexByte on the needle's rarest byte and then
// verified in full, so the common case touches each haystack byte once.
//
// Example:
//
//	f := simd.NewFinder("hello")
//	f.Index("say hello") // 4
type Finder struct {
	needle  string
	rare    byte
	rareIdx int
}

// NewFinder prepares a search for needle.
func NewFinder(needle string) *Finder {
	f := &Finder{needle: needle}
	for i := 0; i < len(needle); i++ {
		if i == 0 || byteRanks[needle[i]] < byteRanks[f.rare] {
			f.rare, f.rareIdx = needle[i], i
		}
	}
	return f
}

// Needle returns the searched bytes.
func (f *Finder) Needle() string {
	return f.needle
}

// Index returns the index of the first instance of the needle in haystack,
// or -1. An empty needle matches at 0.
func (f *Finder) Index(haystack string) int {
	m := len(f.needle)
	switch {
	case m == 0:
		return 0
	case m > len(haystack):
		return -1
	case m == 1:
		return IndexByte(haystack, f.needle[0])
	}

	// The rare byte of a match at p sits at p+rareIdx, so only
	// [rareIdx, len-m+rareIdx] can hold a useful candidate.
	last := len(haystack) - m + f.rareIdx
	for from := f.rareIdx; from <= last; {
		c := IndexByte(haystack[from:last+1], f.rare)
		if c < 0 {
			return -1
		}
		p := from + c - f.rareIdx
		if haystack[p:p+m] == f.needle {
			return p
		}
		from += c + 1
	}
	return -1
}

// Memmem returns the index of the first instance of needle in haystack,
// or -1. It is equivalent to strings.Index.
//
// Use a Finder when the same needle is searched repeatedly.
func Memmem(haystack, needle string) int {
	return NewFinder(needle).Index(haystack)
}
