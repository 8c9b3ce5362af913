// Package aes implements the AES-128 block cipher from scratch: the
// S-box tables, the state transform primitives, the key schedule and the
// 10-round encrypt/decrypt pipeline of FIPS-197. Only the 128-bit key
// size is supported.
package aes

import "strconv"

const (
	// BlockSize is the AES block size in bytes.
	BlockSize = 16
	// KeySize is the AES-128 key size in bytes.
	KeySize = 16
	// Rounds is the number of rounds for a 128-bit key. Rounds+1 round
	// keys are consumed per block operation.
	Rounds = 10
)

type KeySizeError int

func (k KeySizeError) Error() string {
	return "aes: invalid key size " + strconv.Itoa(int(k))
}

type BlockSizeError int

func (b BlockSizeError) Error() string {
	return "aes: invalid block size " + strconv.Itoa(int(b))
}

type RoundKeyError struct {
	Count  int
	Length int
}

func (r RoundKeyError) Error() string {
	if r.Count != Rounds+1 {
		return "aes: invalid round key count " + strconv.Itoa(r.Count)
	}
	return "aes: invalid round key length " + strconv.Itoa(r.Length)
}

// A Cipher is an instance of AES-128 using a particular expanded key.
// It holds no mutable state, so a single Cipher may be used from
// multiple goroutines at once.
type Cipher struct {
	keys []roundKey
}

// NewCipher creates a Cipher from a 16-byte key, running the key
// schedule once up front.
func NewCipher(key []byte) (*Cipher, error) {
	keys, err := expandKey(key)
	if err != nil {
		return nil, err
	}
	return &Cipher{keys: keys}, nil
}

// NewCipherWithRoundKeys creates a Cipher from a pre-expanded round key
// set, exactly 11 keys of 16 bytes each. This mirrors loading an
// expanded key from a file instead of deriving it.
func NewCipherWithRoundKeys(keys [][]byte) (*Cipher, error) {
	if len(keys) != Rounds+1 {
		return nil, RoundKeyError{Count: len(keys)}
	}
	rks := make([]roundKey, Rounds+1)
	for i, k := range keys {
		if len(k) != BlockSize {
			return nil, RoundKeyError{Count: Rounds + 1, Length: len(k)}
		}
		copy(rks[i][:], k)
	}
	return &Cipher{keys: rks}, nil
}

// BlockSize returns the cipher's block size in bytes.
func (c *Cipher) BlockSize() int { return BlockSize }

// Encrypt encrypts one 16-byte block: an initial AddRoundKey, nine
// rounds of SubBytes/ShiftRows/MixColumns/AddRoundKey, and a final
// round that omits MixColumns.
func (c *Cipher) Encrypt(block []byte) ([]byte, error) {
	if len(block) != BlockSize {
		return nil, BlockSizeError(len(block))
	}

	s := bytesToState(block)
	s.addRoundKey(c.keys[0])

	for round := 1; round < Rounds; round++ {
		s.subBytes()
		s.shiftRows()
		s.mixColumns()
		s.addRoundKey(c.keys[round])
	}

	s.subBytes()
	s.shiftRows()
	s.addRoundKey(c.keys[Rounds])

	return s.bytes(), nil
}

// Decrypt decrypts one 16-byte block by running the inverse transforms
// in reverse round order.
func (c *Cipher) Decrypt(block []byte) ([]byte, error) {
	if len(block) != BlockSize {
		return nil, BlockSizeError(len(block))
	}

	s := bytesToState(block)
	s.addRoundKey(c.keys[Rounds])

	for round := Rounds - 1; round > 0; round-- {
		s.invShiftRows()
		s.invSubBytes()
		s.addRoundKey(c.keys[round])
		s.invMixColumns()
	}

	s.invShiftRows()
	s.invSubBytes()
	s.addRoundKey(c.keys[0])

	return s.bytes(), nil
}
