package main

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akhertabeel/kryptos/pkg/aes"
	"github.com/akhertabeel/kryptos/pkg/hexio"
	"github.com/akhertabeel/kryptos/pkg/modes"
)

func withMemFs(t *testing.T) afero.Fs {
	t.Helper()
	orig := appFs
	appFs = afero.NewMemMapFs()
	t.Cleanup(func() { appFs = orig })
	return appFs
}

func runCommand(args ...string) error {
	root := newRootCommand()
	root.SetArgs(args)
	return root.Execute()
}

const testKey = "000102030405060708090a0b0c0d0e0f"

func TestAESCommandECBRoundTrip(t *testing.T) {
	fs := withMemFs(t)

	plaintext := []byte("command level round trip")
	require.NoError(t, hexio.WriteHexFile(fs, "plain.txt", plaintext))

	require.NoError(t, runCommand("aes", "-k", testKey, "-i", "plain.txt", "-o", "cipher.txt"))
	require.NoError(t, runCommand("aes", "-k", testKey, "-i", "cipher.txt", "-o", "out.txt", "-d"))

	got, err := hexio.ReadHexFile(fs, "out.txt")
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)
}

func TestAESCommandCBCMatchesLibrary(t *testing.T) {
	fs := withMemFs(t)

	plaintext := []byte("cbc through the command line!")
	iv := strings.Repeat("ab", 16)
	require.NoError(t, hexio.WriteHexFile(fs, "plain.txt", plaintext))

	require.NoError(t, runCommand("aes", "-k", testKey, "-m", "cbc", "--iv", iv,
		"-i", "plain.txt", "-o", "cipher.txt"))

	key, err := hexio.ParseHex(testKey)
	require.NoError(t, err)
	c, err := aes.NewCipher(key)
	require.NoError(t, err)
	ivBytes, err := hexio.ParseHex(iv)
	require.NoError(t, err)
	want, err := modes.CBCEncrypt(c, plaintext, ivBytes)
	require.NoError(t, err)

	got, err := hexio.ReadHexFile(fs, "cipher.txt")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestAESCommandCTRParallel(t *testing.T) {
	fs := withMemFs(t)

	plaintext := []byte(strings.Repeat("parallel counter mode ", 20))
	require.NoError(t, hexio.WriteHexFile(fs, "plain.txt", plaintext))

	require.NoError(t, runCommand("aes", "-k", testKey, "-m", "ctr", "--nonce", "0011223344556677",
		"--workers", "4", "-i", "plain.txt", "-o", "par.txt"))
	require.NoError(t, runCommand("aes", "-k", testKey, "-m", "ctr", "--nonce", "0011223344556677",
		"-i", "plain.txt", "-o", "seq.txt"))

	par, err := hexio.ReadHexFile(fs, "par.txt")
	require.NoError(t, err)
	seq, err := hexio.ReadHexFile(fs, "seq.txt")
	require.NoError(t, err)
	assert.Equal(t, seq, par)
}

func TestAESCommandRoundKeysFile(t *testing.T) {
	fs := withMemFs(t)

	// A file with 11 identical round keys is structurally valid.
	line := strings.Repeat("ab", 16)
	content := strings.Repeat(line+"\n", 11)
	require.NoError(t, afero.WriteFile(fs, "keys.txt", []byte(content), 0644))
	require.NoError(t, hexio.WriteHexFile(fs, "plain.txt", []byte("using loaded round keys")))

	require.NoError(t, runCommand("aes", "--round-keys", "keys.txt", "-i", "plain.txt", "-o", "cipher.txt"))

	out, err := hexio.ReadHexFile(fs, "cipher.txt")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestAESCommandErrors(t *testing.T) {
	fs := withMemFs(t)
	require.NoError(t, hexio.WriteHexFile(fs, "plain.txt", []byte("data")))

	// 10-byte key.
	assert.Error(t, runCommand("aes", "-k", strings.Repeat("ab", 10), "-i", "plain.txt", "-o", "out.txt"))
	// CBC without an IV.
	assert.Error(t, runCommand("aes", "-k", testKey, "-m", "cbc", "-i", "plain.txt", "-o", "out.txt"))
	// 10-byte IV.
	assert.Error(t, runCommand("aes", "-k", testKey, "-m", "cbc", "--iv", strings.Repeat("ab", 10),
		"-i", "plain.txt", "-o", "out.txt"))
	// Unknown mode.
	assert.Error(t, runCommand("aes", "-k", testKey, "-m", "gcm", "-i", "plain.txt", "-o", "out.txt"))
	// No key at all.
	assert.Error(t, runCommand("aes", "-i", "plain.txt", "-o", "out.txt"))
}

func TestConfigFileDefaults(t *testing.T) {
	fs := withMemFs(t)

	require.NoError(t, afero.WriteFile(fs, "kryptos.toml", []byte("mode = \"ctr\"\nworkers = 2\n"), 0644))
	require.NoError(t, hexio.WriteHexFile(fs, "plain.txt", []byte("config supplies the mode")))

	// No --mode flag: the config's CTR applies, so a nonce is needed.
	require.NoError(t, runCommand("aes", "-k", testKey, "--nonce", "0011",
		"-i", "plain.txt", "-o", "cipher.txt"))

	key, _ := hexio.ParseHex(testKey)
	c, err := aes.NewCipher(key)
	require.NoError(t, err)
	nonce, _ := hexio.ParseHex("0011")
	want, err := modes.CTR(c, []byte("config supplies the mode"), nonce)
	require.NoError(t, err)

	got, err := hexio.ReadHexFile(fs, "cipher.txt")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestConfigFileInvalid(t *testing.T) {
	fs := withMemFs(t)
	require.NoError(t, afero.WriteFile(fs, "bad.toml", []byte("workers = 0\n"), 0644))
	assert.Error(t, runCommand("--config", "bad.toml", "aes", "-k", testKey, "-i", "x", "-o", "y"))
	assert.Error(t, runCommand("--config", "missing.toml", "aes", "-k", testKey, "-i", "x", "-o", "y"))
}

func TestCaesarCommand(t *testing.T) {
	fs := withMemFs(t)
	require.NoError(t, afero.WriteFile(fs, "plain.txt", []byte("HELLO WORLD"), 0644))

	require.NoError(t, runCommand("caesar", "-i", "plain.txt", "-o", "cipher.txt", "-k", "3"))
	ct, err := afero.ReadFile(fs, "cipher.txt")
	require.NoError(t, err)
	assert.Equal(t, "KHOOR ZRUOG", string(ct))

	require.NoError(t, runCommand("caesar", "-i", "cipher.txt", "-o", "out.txt", "-k", "3", "-d"))
	pt, err := afero.ReadFile(fs, "out.txt")
	require.NoError(t, err)
	assert.Equal(t, "HELLO WORLD", string(pt))

	assert.Error(t, runCommand("caesar", "-i", "plain.txt", "-o", "out.txt", "-k", "26"))
}

func TestVigenereCommand(t *testing.T) {
	fs := withMemFs(t)
	require.NoError(t, afero.WriteFile(fs, "plain.txt", []byte("ATTACKATDAWN"), 0644))

	require.NoError(t, runCommand("vigenere", "-i", "plain.txt", "-o", "cipher.txt", "-k", "LEMON"))
	ct, err := afero.ReadFile(fs, "cipher.txt")
	require.NoError(t, err)
	assert.Equal(t, "LXFOPVEFRNHR", string(ct))

	assert.Error(t, runCommand("vigenere", "-i", "plain.txt", "-o", "out.txt", "-k", "lemon"))
}

func TestSPNCommand(t *testing.T) {
	fs := withMemFs(t)
	require.NoError(t, afero.WriteFile(fs, "plain.txt", []byte("1234ABCD"), 0644))

	require.NoError(t, runCommand("spn", "-i", "plain.txt", "-o", "cipher.txt", "-k", "3A94"))
	require.NoError(t, runCommand("spn", "-i", "cipher.txt", "-o", "out.txt", "-k", "3A94", "-d"))

	pt, err := afero.ReadFile(fs, "out.txt")
	require.NoError(t, err)
	assert.Equal(t, "1234ABCD", strings.TrimSpace(string(pt)))

	assert.Error(t, runCommand("spn", "-i", "plain.txt", "-o", "out.txt", "-k", "123"))
}
