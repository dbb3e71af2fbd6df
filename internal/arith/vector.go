// This file provides the vector forms of the word primitives. All of them
// operate on little-endian word slices (index 0 least significant) and,
// like math/big's internal routines, require len(x) and len(y) >= len(z).

package arith

// AddVV computes z = x + y element-wise and returns the carry.
func AddVV[W Word](z, x, y []W) (c W) {
	for i := range z {
		z[i], c = AddWW(x[i], y[i], c)
	}
	return c
}

// SubVV computes z = x - y element-wise and returns the borrow.
func SubVV[W Word](z, x, y []W) (c W) {
	for i := range z {
		z[i], c = SubWW(x[i], y[i], c)
	}
	return c
}

// AddVW computes z = x + y where y is a single word, and returns the carry.
func AddVW[W Word](z, x []W, y W) (c W) {
	c = y
	for i := range z {
		z[i], c = AddWW(x[i], c, 0)
	}
	return c
}

// SubVW computes z = x - y where y is a single word, and returns the borrow.
func SubVW[W Word](z, x []W, y W) (c W) {
	c = y
	for i := range z {
		z[i], c = SubWW(x[i], c, 0)
	}
	return c
}

// ShlVU computes z = x << s for 0 <= s < Bits[W] and returns the bits
// shifted out of the top word.
func ShlVU[W Word](z, x []W, s uint) (c W) {
	n := len(z)
	if n == 0 {
		return 0
	}
	if s == 0 {
		copy(z, x[:n])
		return 0
	}
	ŝ := Bits[W]() - s
	w1 := x[n-1]
	c = w1 >> ŝ
	for i := n - 1; i > 0; i-- {
		w := w1
		w1 = x[i-1]
		z[i] = w<<s | w1>>ŝ
	}
	z[0] = w1 << s
	return c
}

// ShrVU computes z = x >> s for 0 <= s < Bits[W] and returns the bits
// shifted out of the bottom word, left-aligned.
func ShrVU[W Word](z, x []W, s uint) (c W) {
	n := len(z)
	if n == 0 {
		return 0
	}
	if s == 0 {
		copy(z, x[:n])
		return 0
	}
	ŝ := Bits[W]() - s
	w1 := x[0]
	c = w1 << ŝ
	for i := 0; i < n-1; i++ {
		w := w1
		w1 = x[i+1]
		z[i] = w>>s | w1<<ŝ
	}
	z[n-1] = w1 >> s
	return c
}

// MulAddVWW computes z = x*y + r and returns the carry word.
func MulAddVWW[W Word](z, x []W, y, r W) (c W) {
	c = r
	for i := range z {
		c, z[i] = MulAddWWW(x[i], y, c)
	}
	return c
}

// AddMulVVW computes z += x*y and returns the carry word.
func AddMulVVW[W Word](z, x []W, y W) (c W) {
	for i := range z {
		z1, z0 := MulAddWWW(x[i], y, z[i])
		var cc W
		z[i], cc = AddWW(z0, c, 0)
		c = z1 + cc
	}
	return c
}

// DivWVW computes z = (xn<<Bits | x) / y and returns the remainder.
// xn must be less than y.
func DivWVW[W Word](z []W, xn W, x []W, y W) (r W) {
	r = xn
	for i := len(z) - 1; i >= 0; i-- {
		z[i], r = DivWW(r, x[i], y)
	}
	return r
}

// Normalized returns the number of words in x once high zero words are
// dropped.
func Normalized[W Word](x []W) int {
	n := len(x)
	for n > 0 && x[n-1] == 0 {
		n--
	}
	return n
}
