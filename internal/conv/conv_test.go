package conv

import (
	"math"
	"testing"
)

func TestIntToUint32(t *testing.T) {
	tests := []struct {
		in   int
		want uint32
	}{
		{0, 0},
		{1, 1},
		{1 << 20, 1 << 20},
	}
	for _, tt := range tests {
		if got := IntToUint32(tt.in); got != tt.want {
			t.Errorf("IntToUint32(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestIntToUint32_Panics(t *testing.T) {
	cases := []int{-1}
	if math.MaxInt > math.MaxUint32 {
		cases = append(cases, math.MaxInt)
	}
	for _, n := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("IntToUint32(%d) did not panic", n)
				}
			}()
			IntToUint32(n)
		}()
	}
}
