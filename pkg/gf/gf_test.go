package gf

import "testing"

// powx[i] = x^i in the field. Built the same way the tables in FIPS-197
// are derived, so Mul can be cross-checked bit by bit against it.
func buildPowx() [16]byte {
	var powx [16]byte
	p := 1
	for i := range powx {
		powx[i] = byte(p)
		p <<= 1
		if p&0x100 != 0 {
			p ^= 0x11b
		}
	}
	return powx
}

// Test all Mul inputs against a bit-by-bit n^2 algorithm.
func TestMulAgainstBitwise(t *testing.T) {
	powx := buildPowx()
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			var want byte
			for k := uint(0); k < 8; k++ {
				for l := uint(0); l < 8; l++ {
					if a&(1<<k) != 0 && b&(1<<l) != 0 {
						want ^= powx[k+l]
					}
				}
			}
			if got := Mul(byte(a), byte(b)); got != want {
				t.Fatalf("Mul(%#x, %#x) = %#x, want %#x", a, b, got, want)
			}
		}
	}
}

func TestMulIdentityAndZero(t *testing.T) {
	for a := 0; a < 256; a++ {
		if got := Mul(byte(a), 1); got != byte(a) {
			t.Errorf("Mul(%#x, 1) = %#x, want %#x", a, got, a)
		}
		if got := Mul(byte(a), 0); got != 0 {
			t.Errorf("Mul(%#x, 0) = %#x, want 0", a, got)
		}
	}
}

func TestMulCommutative(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := a; b < 256; b++ {
			ab := Mul(byte(a), byte(b))
			ba := Mul(byte(b), byte(a))
			if ab != ba {
				t.Fatalf("Mul(%#x, %#x) = %#x, Mul(%#x, %#x) = %#x", a, b, ab, b, a, ba)
			}
		}
	}
}

// Multiplication must distribute over field addition (XOR).
func TestMulDistributive(t *testing.T) {
	cs := []byte{0x01, 0x02, 0x03, 0x09, 0x0b, 0x0d, 0x0e, 0x1b, 0x80, 0xff}
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			for _, c := range cs {
				left := Mul(c, Add(byte(a), byte(b)))
				right := Add(Mul(c, byte(a)), Mul(c, byte(b)))
				if left != right {
					t.Fatalf("%#x*(%#x+%#x) = %#x, %#x*%#x + %#x*%#x = %#x",
						c, a, b, left, c, a, c, b, right)
				}
			}
		}
	}
}
