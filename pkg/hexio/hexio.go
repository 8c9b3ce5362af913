// Package hexio reads and writes the hex text files the command-line
// tools exchange: whitespace-separated hex bytes for keys, blocks and
// buffers, and one-key-per-line files for pre-expanded round keys.
// All file access goes through an afero filesystem so callers can run
// against an in-memory filesystem in tests.
package hexio

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// ParseHex decodes a hex string, ignoring spaces, tabs, carriage
// returns and newlines.
func ParseHex(s string) ([]byte, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, s)

	data, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("cannot parse hex input: %v", err)
	}
	return data, nil
}

// FormatHex renders data as space-separated lowercase hex byte pairs.
func FormatHex(data []byte) string {
	pairs := make([]string, len(data))
	for i, b := range data {
		pairs[i] = fmt.Sprintf("%02x", b)
	}
	return strings.Join(pairs, " ")
}

// FormatBlock renders a 16-byte block as a 4x4 hex matrix, four bytes
// per line.
func FormatBlock(data []byte) string {
	var lines []string
	for i := 0; i < len(data); i += 4 {
		end := i + 4
		if end > len(data) {
			end = len(data)
		}
		lines = append(lines, FormatHex(data[i:end]))
	}
	return strings.Join(lines, "\n")
}

// ReadHexFile reads a whole file and decodes its hex content.
func ReadHexFile(fs afero.Fs, path string) ([]byte, error) {
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %v", path, err)
	}
	data, err := ParseHex(string(content))
	if err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	return data, nil
}

// WriteHexFile writes data as hex text, one trailing newline.
func WriteHexFile(fs afero.Fs, path string, data []byte) error {
	if err := afero.WriteFile(fs, path, []byte(FormatHex(data)+"\n"), 0644); err != nil {
		return fmt.Errorf("cannot write %s: %v", path, err)
	}
	return nil
}

// ReadBlock reads a file holding exactly one 16-byte block in hex.
func ReadBlock(fs afero.Fs, path string) ([]byte, error) {
	data, err := ReadHexFile(fs, path)
	if err != nil {
		return nil, err
	}
	if len(data) != 16 {
		return nil, fmt.Errorf("%s: expected 16 bytes, got %d", path, len(data))
	}
	return data, nil
}

// ReadRoundKeys reads a pre-expanded round key file: eleven lines of 16
// hex bytes each, one round key per line.
func ReadRoundKeys(fs afero.Fs, path string) ([][]byte, error) {
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %v", path, err)
	}

	var keys [][]byte
	for i, line := range strings.Split(string(content), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		key, err := ParseHex(line)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %v", path, i+1, err)
		}
		if len(key) != 16 {
			return nil, fmt.Errorf("%s line %d: expected 16 bytes, got %d", path, i+1, len(key))
		}
		keys = append(keys, key)
	}
	if len(keys) != 11 {
		return nil, fmt.Errorf("%s: expected 11 round keys, got %d", path, len(keys))
	}
	return keys, nil
}
