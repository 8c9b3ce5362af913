// Package gf implements arithmetic over GF(2^8), the finite field of 256
// elements used by the AES diffusion step. Elements are bytes interpreted
// as polynomials over GF(2); all arithmetic is reduced modulo the AES
// polynomial x^8 + x^4 + x^3 + x + 1.
package gf

// The AES reduction polynomial without its x^8 term.
const poly = 0x1b

// Add adds two field elements. Addition in GF(2^8) is XOR and is its
// own inverse.
func Add(a, b byte) byte {
	return a ^ b
}

// Mul multiplies two field elements modulo the AES polynomial using
// russian-peasant multiplication: for each of the 8 bit positions of b,
// conditionally accumulate a, then double a in the field, reducing by
// the polynomial whenever the high bit overflows.
func Mul(a, b byte) byte {
	var product byte
	for i := 0; i < 8; i++ {
		if b&1 == 1 {
			product ^= a
		}
		highBit := a & 0x80
		a <<= 1
		if highBit != 0 {
			a ^= poly
		}
		b >>= 1
	}
	return product
}
