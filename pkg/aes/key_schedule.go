package aes

import "fmt"

// roundKey is one 16-byte key consumed by a single round.
type roundKey [BlockSize]byte

// expandKey derives the 11 round keys from a 16-byte cipher key. The
// schedule works on 44 four-byte words: words 0-3 are the raw key, and
// word i for i >= 4 is word[i-4] XOR temp, where temp is word[i-1],
// additionally passed through RotWord, SubWord and a round-constant XOR
// whenever i is a multiple of 4. Grouping four consecutive words yields
// one round key.
func expandKey(key []byte) ([]roundKey, error) {
	if k := len(key); k != KeySize {
		return nil, KeySizeError(k)
	}

	var w [4 * (Rounds + 1)][4]byte
	for i := 0; i < 4; i++ {
		copy(w[i][:], key[i*4:(i+1)*4])
	}

	for i := 4; i < len(w); i++ {
		temp := w[i-1]
		if i%4 == 0 {
			temp = subWord(rotWord(temp))
			rc, err := roundConstant(i / 4)
			if err != nil {
				return nil, err
			}
			temp[0] ^= rc
		}
		for j := 0; j < 4; j++ {
			w[i][j] = w[i-4][j] ^ temp[j]
		}
	}

	keys := make([]roundKey, Rounds+1)
	for round := 0; round <= Rounds; round++ {
		for word := 0; word < 4; word++ {
			copy(keys[round][word*4:], w[round*4+word][:])
		}
	}
	return keys, nil
}

// rotWord cyclically rotates the four bytes of a word left by one.
func rotWord(w [4]byte) [4]byte {
	return [4]byte{w[1], w[2], w[3], w[0]}
}

// subWord applies the S-box to each byte of a word.
func subWord(w [4]byte) [4]byte {
	for i := range w {
		w[i] = sbox[w[i]]
	}
	return w
}

// roundConstant returns rcon for round i. Indices outside 1-10 cannot be
// produced by expandKey; the guard keeps the invariant checkable.
func roundConstant(i int) (byte, error) {
	if i < 1 || i > len(rcon) {
		return 0, fmt.Errorf("aes: round constant index %d outside [1,%d]", i, len(rcon))
	}
	return rcon[i-1], nil
}
