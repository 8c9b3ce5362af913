// Package classical implements the single-purpose text ciphers that
// ship alongside the block-cipher engine: the additive (Caesar) cipher
// and the Vigenère cipher. Both operate on uppercase A-Z only; every
// other rune passes through unchanged.
package classical

import "fmt"

// Additive shifts each uppercase letter forward by key positions in
// the alphabet. The key must lie in [0,25].
func Additive(text string, key int) (string, error) {
	return additive(text, key, false)
}

// AdditiveDecrypt shifts each uppercase letter backward by key
// positions.
func AdditiveDecrypt(text string, key int) (string, error) {
	return additive(text, key, true)
}

func additive(text string, key int, decrypt bool) (string, error) {
	if key < 0 || key > 25 {
		return "", fmt.Errorf("classical: additive key %d outside [0,25]", key)
	}
	shift := key
	if decrypt {
		shift = 26 - key
	}

	out := make([]rune, 0, len(text))
	for _, r := range text {
		if r >= 'A' && r <= 'Z' {
			r = 'A' + (r-'A'+rune(shift))%26
		}
		out = append(out, r)
	}
	return string(out), nil
}
