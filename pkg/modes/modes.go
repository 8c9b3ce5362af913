// Package modes implements block-cipher modes of operation (ECB, CBC,
// OFB, CTR) over any fixed-width block primitive. The modes never look
// inside the primitive; they drive it one block at a time through the
// Block interface.
package modes

import "fmt"

// Block is a fixed-width block permutation, normally the AES engine.
// Implementations must be safe for concurrent use so that the parallel
// helpers can share a single instance across workers.
type Block interface {
	// BlockSize returns the width in bytes of a single block.
	BlockSize() int
	// Encrypt applies the forward permutation to one block.
	Encrypt(block []byte) ([]byte, error)
	// Decrypt applies the inverse permutation to one block.
	Decrypt(block []byte) ([]byte, error)
}

// ECBEncrypt encrypts each block independently. The plaintext is
// zero-padded up to a block-size multiple first.
func ECBEncrypt(b Block, plaintext []byte) ([]byte, error) {
	bs := b.BlockSize()
	padded := zeroPad(plaintext, bs)

	out := make([]byte, 0, len(padded))
	for i := 0; i < len(padded); i += bs {
		ct, err := b.Encrypt(padded[i : i+bs])
		if err != nil {
			return nil, err
		}
		out = append(out, ct...)
	}
	return out, nil
}

// ECBDecrypt decrypts each block independently and strips trailing zero
// padding from the result.
func ECBDecrypt(b Block, ciphertext []byte) ([]byte, error) {
	bs := b.BlockSize()
	if len(ciphertext)%bs != 0 {
		return nil, fmt.Errorf("modes: ciphertext length %d is not a multiple of the block size %d", len(ciphertext), bs)
	}

	out := make([]byte, 0, len(ciphertext))
	for i := 0; i < len(ciphertext); i += bs {
		pt, err := b.Decrypt(ciphertext[i : i+bs])
		if err != nil {
			return nil, err
		}
		out = append(out, pt...)
	}
	return stripZeroPadding(out), nil
}

// CBCEncrypt chains blocks by XORing each plaintext block with the
// previous ciphertext block before encryption; the IV seeds the chain.
// The plaintext is zero-padded up to a block-size multiple.
func CBCEncrypt(b Block, plaintext, iv []byte) ([]byte, error) {
	bs := b.BlockSize()
	if len(iv) != bs {
		return nil, fmt.Errorf("modes: IV length %d does not match block size %d", len(iv), bs)
	}
	padded := zeroPad(plaintext, bs)

	out := make([]byte, 0, len(padded))
	prev := iv
	for i := 0; i < len(padded); i += bs {
		ct, err := b.Encrypt(xorBytes(padded[i:i+bs], prev))
		if err != nil {
			return nil, err
		}
		out = append(out, ct...)
		prev = ct
	}
	return out, nil
}

// CBCDecrypt reverses the chain: each decrypted block is XORed with the
// previous ciphertext block (the IV for the first). Trailing zero
// padding is stripped from the result.
func CBCDecrypt(b Block, ciphertext, iv []byte) ([]byte, error) {
	bs := b.BlockSize()
	if len(iv) != bs {
		return nil, fmt.Errorf("modes: IV length %d does not match block size %d", len(iv), bs)
	}
	if len(ciphertext)%bs != 0 {
		return nil, fmt.Errorf("modes: ciphertext length %d is not a multiple of the block size %d", len(ciphertext), bs)
	}

	out := make([]byte, 0, len(ciphertext))
	prev := iv
	for i := 0; i < len(ciphertext); i += bs {
		ct := ciphertext[i : i+bs]
		pt, err := b.Decrypt(ct)
		if err != nil {
			return nil, err
		}
		out = append(out, xorBytes(pt, prev)...)
		prev = ct
	}
	return stripZeroPadding(out), nil
}

// OFB XORs the input with a keystream derived by repeatedly encrypting
// the IV. Encryption and decryption are the same operation, and the
// output has the same length as the input.
func OFB(b Block, data, iv []byte) ([]byte, error) {
	bs := b.BlockSize()
	if len(iv) != bs {
		return nil, fmt.Errorf("modes: IV length %d does not match block size %d", len(iv), bs)
	}

	out := make([]byte, 0, len(data))
	keystream := iv
	for i := 0; i < len(data); i += bs {
		next, err := b.Encrypt(keystream)
		if err != nil {
			return nil, err
		}
		keystream = next

		end := i + bs
		if end > len(data) {
			end = len(data)
		}
		out = append(out, xorBytes(data[i:end], keystream[:end-i])...)
	}
	return out, nil
}

// CTR XORs the input with a keystream of encrypted counter blocks. The
// counter for block i is the nonce zero-extended to the block size,
// read as a big-endian integer, plus i modulo 2^(8*blocksize). The
// whole counter space wraps; no bits are reserved for the nonce.
// Encryption and decryption are the same operation.
func CTR(b Block, data, nonce []byte) ([]byte, error) {
	bs := b.BlockSize()
	if len(nonce) > bs {
		return nil, fmt.Errorf("modes: nonce length %d exceeds block size %d", len(nonce), bs)
	}

	base := make([]byte, bs)
	copy(base, nonce)

	out := make([]byte, 0, len(data))
	for i := 0; i*bs < len(data); i++ {
		keystream, err := b.Encrypt(counterAt(base, uint64(i)))
		if err != nil {
			return nil, err
		}

		start := i * bs
		end := start + bs
		if end > len(data) {
			end = len(data)
		}
		out = append(out, xorBytes(data[start:end], keystream[:end-start])...)
	}
	return out, nil
}

// counterAt returns base + i as a big-endian integer of len(base)
// bytes, wrapping modulo 2^(8*len(base)).
func counterAt(base []byte, i uint64) []byte {
	ctr := make([]byte, len(base))
	copy(ctr, base)
	for pos := len(ctr) - 1; pos >= 0 && i > 0; pos-- {
		sum := uint64(ctr[pos]) + i&0xff
		ctr[pos] = byte(sum)
		i = i>>8 + sum>>8
	}
	return ctr
}

func zeroPad(data []byte, bs int) []byte {
	rem := len(data) % bs
	if rem == 0 {
		return data
	}
	padded := make([]byte, len(data)+bs-rem)
	copy(padded, data)
	return padded
}

func stripZeroPadding(data []byte) []byte {
	end := len(data)
	for end > 0 && data[end-1] == 0 {
		end--
	}
	return data[:end]
}

func xorBytes(a, b []byte) []byte {
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}
