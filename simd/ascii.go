package simd

// hi8 has the high bit of every byte set.
const hi8 = uint64(0x8080808080808080)

// IsASCII reports whether every byte of data is below 0x80.
//
// Example:
//
//	simd.IsASCII([]byte("hello")) // true
//	simd.IsASCII([]byte("héllo")) // false
func IsASCII(data []byte) bool {
	return IsASCIIString(string(data))
}

// IsASCIIString reports whether every byte of s is below 0x80.
//
// The matcher uses it to decide whether input can be fed one byte per rune,
// skipping UTF-8 decoding entirely.
func IsASCIIString(s string) bool {
	n := len(s)
	if n < 8 {
		for i := 0; i < n; i++ {
			if s[i] >= 0x80 {
				return false
			}
		}
		return true
	}

	i := 0
	if hasWideLoads && n >= wideThreshold {
		for ; i+32 <= n; i += 32 {
			w := load64(s, i) | load64(s, i+8) | load64(s, i+16) | load64(s, i+24)
			if w&hi8 != 0 {
				return false
			}
		}
	}
	for ; i+8 <= n; i += 8 {
		if load64(s, i)&hi8 != 0 {
			return false
		}
	}
	for ; i < n; i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// FirstNonASCII returns the index of the first byte >= 0x80 in s, or -1.
func FirstNonASCII(s string) int {
	i := 0
	for ; i+8 <= len(s); i += 8 {
		if load64(s, i)&hi8 != 0 {
			break
		}
	}
	for ; i < len(s); i++ {
		if s[i] >= 0x80 {
			return i
		}
	}
	return -1
}

// load64 reads 8 bytes of s starting at i as a little-endian word.
func load64(s string, i int) uint64 {
	_ = s[i+7] // bounds check hint
	return uint64(s[i]) | uint64(s[i+1])<<8 | uint64(s[i+2])<<16 | uint64(s[i+3])<<24 |
		uint64(s[i+4])<<32 | uint64(s[i+5])<<40 | uint64(s[i+6])<<48 | uint64(s[i+7])<<56
}
