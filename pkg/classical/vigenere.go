package classical

import "fmt"

// Vigenere shifts each uppercase letter by the next key letter's
// alphabet position. The key consists of letters A-Z only and only
// advances on letters, so punctuation keeps the key stream aligned.
func Vigenere(text, key string) (string, error) {
	return vigenere(text, key, false)
}

// VigenereDecrypt reverses the per-letter shifts.
func VigenereDecrypt(text, key string) (string, error) {
	return vigenere(text, key, true)
}

func vigenere(text, key string, decrypt bool) (string, error) {
	if err := validateVigenereKey(key); err != nil {
		return "", err
	}

	out := make([]rune, 0, len(text))
	i := 0
	for _, r := range text {
		if r >= 'A' && r <= 'Z' {
			shift := int(key[i%len(key)] - 'A')
			if decrypt {
				shift = 26 - shift
			}
			r = 'A' + (r-'A'+rune(shift))%26
			i++
		}
		out = append(out, r)
	}
	return string(out), nil
}

func validateVigenereKey(key string) error {
	if key == "" {
		return fmt.Errorf("classical: vigenère key is empty")
	}
	for _, r := range key {
		if r < 'A' || r > 'Z' {
			return fmt.Errorf("classical: vigenère key must contain only A-Z, found %q", r)
		}
	}
	return nil
}
