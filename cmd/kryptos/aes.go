package main

import (
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/akhertabeel/kryptos/pkg/aes"
	"github.com/akhertabeel/kryptos/pkg/hexio"
	"github.com/akhertabeel/kryptos/pkg/modes"
)

type aesOptions struct {
	key       string
	roundKeys string
	input     string
	output    string
	mode      string
	iv        string
	nonce     string
	decrypt   bool
	workers   int
}

func newAESCommand() *cobra.Command {
	var opts aesOptions

	cmd := &cobra.Command{
		Use:   "aes",
		Short: "encrypt or decrypt a hex file with AES-128 in the chosen mode of operation",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("mode") {
				opts.mode = cfg.Mode
			}
			if !cmd.Flags().Changed("workers") {
				opts.workers = cfg.Workers
			}
			return runAES(&opts)
		},
	}

	cmd.Flags().StringVarP(&opts.key, "key", "k", "", "16-byte cipher key in hex")
	cmd.Flags().StringVar(&opts.roundKeys, "round-keys", "", "file with 11 pre-expanded round keys, one per line")
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "input file with hex data")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file for hex data")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "ecb", "mode of operation: ecb, cbc, ofb or ctr")
	cmd.Flags().StringVar(&opts.iv, "iv", "", "16-byte initialization vector in hex (cbc, ofb)")
	cmd.Flags().StringVar(&opts.nonce, "nonce", "", "nonce in hex, at most 16 bytes (ctr)")
	cmd.Flags().BoolVarP(&opts.decrypt, "decrypt", "d", false, "decrypt instead of encrypt")
	cmd.Flags().IntVar(&opts.workers, "workers", 1, "worker count for the parallel modes (ecb, ctr)")

	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")
	return cmd
}

func runAES(opts *aesOptions) error {
	cipher, err := buildCipher(opts)
	if err != nil {
		return err
	}

	data, err := hexio.ReadHexFile(appFs, opts.input)
	if err != nil {
		return err
	}
	log.Debugf("read %d bytes from %s", len(data), opts.input)

	start := time.Now()
	out, err := dispatchMode(cipher, opts, data)
	if err != nil {
		return err
	}
	log.Infof("%s %s: %d bytes in, %d bytes out (%v)",
		strings.ToUpper(opts.mode), operationName(opts.decrypt), len(data), len(out), time.Since(start))

	return hexio.WriteHexFile(appFs, opts.output, out)
}

func buildCipher(opts *aesOptions) (*aes.Cipher, error) {
	if opts.roundKeys != "" {
		keys, err := hexio.ReadRoundKeys(appFs, opts.roundKeys)
		if err != nil {
			return nil, err
		}
		log.Debugf("loaded %d round keys from %s", len(keys), opts.roundKeys)
		return aes.NewCipherWithRoundKeys(keys)
	}
	if opts.key == "" {
		return nil, fmt.Errorf("either --key or --round-keys is required")
	}
	key, err := hexio.ParseHex(opts.key)
	if err != nil {
		return nil, err
	}
	return aes.NewCipher(key)
}

func dispatchMode(cipher *aes.Cipher, opts *aesOptions, data []byte) ([]byte, error) {
	switch strings.ToLower(opts.mode) {
	case "ecb":
		if opts.decrypt {
			if opts.workers > 1 {
				return modes.ParallelECBDecrypt(cipher, data, opts.workers)
			}
			return modes.ECBDecrypt(cipher, data)
		}
		if opts.workers > 1 {
			return modes.ParallelECBEncrypt(cipher, data, opts.workers)
		}
		return modes.ECBEncrypt(cipher, data)

	case "cbc":
		iv, err := requireHexFlag(opts.iv, "--iv")
		if err != nil {
			return nil, err
		}
		if opts.decrypt {
			return modes.CBCDecrypt(cipher, data, iv)
		}
		return modes.CBCEncrypt(cipher, data, iv)

	case "ofb":
		iv, err := requireHexFlag(opts.iv, "--iv")
		if err != nil {
			return nil, err
		}
		return modes.OFB(cipher, data, iv)

	case "ctr":
		nonce, err := requireHexFlag(opts.nonce, "--nonce")
		if err != nil {
			return nil, err
		}
		if opts.workers > 1 {
			return modes.ParallelCTR(cipher, data, nonce, opts.workers)
		}
		return modes.CTR(cipher, data, nonce)
	}
	return nil, fmt.Errorf("unknown mode %q (want ecb, cbc, ofb or ctr)", opts.mode)
}

func requireHexFlag(value, name string) ([]byte, error) {
	if value == "" {
		return nil, fmt.Errorf("%s is required for this mode", name)
	}
	return hexio.ParseHex(value)
}

func operationName(decrypt bool) string {
	if decrypt {
		return "decrypt"
	}
	return "encrypt"
}
