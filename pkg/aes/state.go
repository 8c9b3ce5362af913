package aes

import "github.com/akhertabeel/kryptos/pkg/gf"

// state is the 4x4 byte matrix a block occupies during round processing.
// The mapping from block bytes is column-major: state[row][col] holds
// data[col*4+row].
type state [4][4]byte

func bytesToState(data []byte) state {
	var s state
	for i := 0; i < BlockSize; i++ {
		s[i%4][i/4] = data[i]
	}
	return s
}

func (s *state) bytes() []byte {
	out := make([]byte, BlockSize)
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			out[col*4+row] = s[row][col]
		}
	}
	return out
}

// subBytes replaces each byte with its S-box image.
func (s *state) subBytes() {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			s[row][col] = sbox[s[row][col]]
		}
	}
}

func (s *state) invSubBytes() {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			s[row][col] = invSbox[s[row][col]]
		}
	}
}

// shiftRows rotates row r left by r positions. Row 0 is never shifted.
// Each row is read in full before being overwritten.
func (s *state) shiftRows() {
	for row := 1; row < 4; row++ {
		var shifted [4]byte
		for col := 0; col < 4; col++ {
			shifted[col] = s[row][(col+row)%4]
		}
		s[row] = shifted
	}
}

func (s *state) invShiftRows() {
	for row := 1; row < 4; row++ {
		var shifted [4]byte
		for col := 0; col < 4; col++ {
			shifted[col] = s[row][(col-row+4)%4]
		}
		s[row] = shifted
	}
}

// mixColumns multiplies each column by the fixed MDS matrix
// [02 03 01 01; 01 02 03 01; 01 01 02 03; 03 01 01 02] over GF(2^8).
// The column is copied before any cell is overwritten.
func (s *state) mixColumns() {
	for col := 0; col < 4; col++ {
		a := [4]byte{s[0][col], s[1][col], s[2][col], s[3][col]}
		s[0][col] = gf.Mul(0x02, a[0]) ^ gf.Mul(0x03, a[1]) ^ a[2] ^ a[3]
		s[1][col] = a[0] ^ gf.Mul(0x02, a[1]) ^ gf.Mul(0x03, a[2]) ^ a[3]
		s[2][col] = a[0] ^ a[1] ^ gf.Mul(0x02, a[2]) ^ gf.Mul(0x03, a[3])
		s[3][col] = gf.Mul(0x03, a[0]) ^ a[1] ^ a[2] ^ gf.Mul(0x02, a[3])
	}
}

// invMixColumns applies the inverse MDS matrix
// [0e 0b 0d 09; 09 0e 0b 0d; 0d 09 0e 0b; 0b 0d 09 0e].
func (s *state) invMixColumns() {
	for col := 0; col < 4; col++ {
		a := [4]byte{s[0][col], s[1][col], s[2][col], s[3][col]}
		s[0][col] = gf.Mul(0x0e, a[0]) ^ gf.Mul(0x0b, a[1]) ^ gf.Mul(0x0d, a[2]) ^ gf.Mul(0x09, a[3])
		s[1][col] = gf.Mul(0x09, a[0]) ^ gf.Mul(0x0e, a[1]) ^ gf.Mul(0x0b, a[2]) ^ gf.Mul(0x0d, a[3])
		s[2][col] = gf.Mul(0x0d, a[0]) ^ gf.Mul(0x09, a[1]) ^ gf.Mul(0x0e, a[2]) ^ gf.Mul(0x0b, a[3])
		s[3][col] = gf.Mul(0x0b, a[0]) ^ gf.Mul(0x0d, a[1]) ^ gf.Mul(0x09, a[2]) ^ gf.Mul(0x0e, a[3])
	}
}

// addRoundKey XORs the round key into the state, reading the key bytes
// through the same column-major layout as the block itself.
func (s *state) addRoundKey(rk roundKey) {
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			s[row][col] ^= rk[col*4+row]
		}
	}
}
