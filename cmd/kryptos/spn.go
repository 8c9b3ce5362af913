package main

import (
	"encoding/binary"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/akhertabeel/kryptos/pkg/hexio"
	"github.com/akhertabeel/kryptos/pkg/spn"
)

func newSPNCommand() *cobra.Command {
	var (
		input   string
		output  string
		key     string
		decrypt bool
	)

	cmd := &cobra.Command{
		Use:   "spn",
		Short: "encrypt or decrypt a hex file with the 16-bit toy SPN cipher",
		RunE: func(cmd *cobra.Command, args []string) error {
			keyBytes, err := hexio.ParseHex(key)
			if err != nil {
				return err
			}
			if len(keyBytes) != 2 {
				return fmt.Errorf("spn key must be exactly 4 hex digits")
			}
			spnKey := binary.BigEndian.Uint16(keyBytes)

			text, err := afero.ReadFile(appFs, input)
			if err != nil {
				return err
			}

			var out string
			if decrypt {
				out, err = spn.DecryptHex(string(text), spnKey)
			} else {
				out, err = spn.EncryptHex(string(text), spnKey)
			}
			if err != nil {
				return err
			}

			log.Infof("spn %s: %d blocks", operationName(decrypt), len(out)/4)
			return afero.WriteFile(appFs, output, []byte(out+"\n"), 0644)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input file with hex digits")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file for hex digits")
	cmd.Flags().StringVarP(&key, "key", "k", "", "16-bit key as 4 hex digits")
	cmd.Flags().BoolVarP(&decrypt, "decrypt", "d", false, "decrypt instead of encrypt")

	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")
	cmd.MarkFlagRequired("key")
	return cmd
}
