package simd

import "math/bits"

// lo8 has the low bit of every byte set.
const lo8 = uint64(0x0101010101010101)

// IndexByte returns the index of the first instance of c in s, or -1.
//
// Eight bytes are tested per word: XOR with c broadcast to every byte turns
// matches into zero bytes, and the zero-byte test (v - lo8) & ^v & hi8 marks
// them. On wide cores four words are combined per iteration before the
// exact position is located.
func IndexByte(s string, c byte) int {
	n := len(s)
	if n < 8 {
		for i := 0; i < n; i++ {
			if s[i] == c {
				return i
			}
		}
		return -1
	}

	mask := uint64(c) * lo8

	i := 0
	if hasWideLoads && n >= wideThreshold {
		for ; i+32 <= n; i += 32 {
			if zeroBytes(load64(s, i)^mask)|zeroBytes(load64(s, i+8)^mask)|
				zeroBytes(load64(s, i+16)^mask)|zeroBytes(load64(s, i+24)^mask) != 0 {
				break
			}
		}
	}
	for ; i+8 <= n; i += 8 {
		if z := zeroBytes(load64(s, i) ^ mask); z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
	}
	for ; i < n; i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}

// zeroBytes sets the high bit of every byte of v that is zero. Bits above
// the first zero byte may be spurious, so only the lowest set bit is exact.
func zeroBytes(v uint64) uint64 {
	return (v - lo8) & ^v & hi8
}
