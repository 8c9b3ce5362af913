// Package spn implements a 16-bit toy substitution-permutation network:
// four rounds of key XOR, 4-bit S-box substitution and a bit
// permutation (skipped in the last round), followed by a final key XOR.
// The same 16-bit key is used in every round. It exists to make SPN
// structure observable, not to protect anything.
package spn

import (
	"fmt"
	"strconv"
	"strings"
)

const rounds = 4

// 4-bit S-box and its inverse.
var sbox = [16]uint16{
	0xE, 0x4, 0xD, 0x1, 0x2, 0xF, 0xB, 0x8,
	0x3, 0xA, 0x6, 0xC, 0x5, 0x9, 0x0, 0x7,
}

var invSbox = func() [16]uint16 {
	var inv [16]uint16
	for i, v := range sbox {
		inv[v] = uint16(i)
	}
	return inv
}()

// Bit i moves to position permutation[i]. The permutation transposes
// the 4x4 bit grid.
var permutation = [16]int{0, 4, 8, 12, 1, 5, 9, 13, 2, 6, 10, 14, 3, 7, 11, 15}

var invPermutation = func() [16]int {
	var inv [16]int
	for i, p := range permutation {
		inv[p] = i
	}
	return inv
}()

// Encrypt encrypts one 16-bit block.
func Encrypt(block, key uint16) uint16 {
	state := block
	for round := 0; round < rounds; round++ {
		state ^= key
		state = substitute(state, sbox)
		if round < rounds-1 {
			state = permute(state, permutation)
		}
	}
	return state ^ key
}

// Decrypt decrypts one 16-bit block.
func Decrypt(block, key uint16) uint16 {
	state := block ^ key
	for round := rounds - 1; round >= 0; round-- {
		if round < rounds-1 {
			state = permute(state, invPermutation)
		}
		state = substitute(state, invSbox)
		state ^= key
	}
	return state
}

// substitute applies the 4-bit box to each of the four nibbles.
func substitute(data uint16, box [16]uint16) uint16 {
	var out uint16
	for i := 0; i < 4; i++ {
		nibble := (data >> (i * 4)) & 0xF
		out |= box[nibble] << (i * 4)
	}
	return out
}

// permute moves bit i to position perm[i].
func permute(data uint16, perm [16]int) uint16 {
	var out uint16
	for i := 0; i < 16; i++ {
		if data&(1<<i) != 0 {
			out |= 1 << perm[i]
		}
	}
	return out
}

// EncryptHex encrypts a hex string block by block in ECB fashion, one
// 16-bit block per four hex digits. Short input is right-padded with
// zero digits.
func EncryptHex(text string, key uint16) (string, error) {
	blocks, err := parseBlocks(text, true)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, block := range blocks {
		fmt.Fprintf(&b, "%04X", Encrypt(block, key))
	}
	return b.String(), nil
}

// DecryptHex decrypts a hex string produced by EncryptHex. The input
// length must be a multiple of four hex digits.
func DecryptHex(text string, key uint16) (string, error) {
	blocks, err := parseBlocks(text, false)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, block := range blocks {
		fmt.Fprintf(&b, "%04X", Decrypt(block, key))
	}
	return b.String(), nil
}

func parseBlocks(text string, pad bool) ([]uint16, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, text)

	if len(cleaned)%4 != 0 {
		if !pad {
			return nil, fmt.Errorf("spn: input length %d is not a multiple of 4 hex digits", len(cleaned))
		}
		cleaned += strings.Repeat("0", 4-len(cleaned)%4)
	}

	blocks := make([]uint16, 0, len(cleaned)/4)
	for i := 0; i < len(cleaned); i += 4 {
		block, err := strconv.ParseUint(cleaned[i:i+4], 16, 16)
		if err != nil {
			return nil, fmt.Errorf("spn: invalid hex block %q", cleaned[i:i+4])
		}
		blocks = append(blocks, uint16(block))
	}
	return blocks, nil
}
