package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/akhertabeel/kryptos/pkg/classical"
)

func newVigenereCommand() *cobra.Command {
	var (
		input   string
		output  string
		key     string
		decrypt bool
	)

	cmd := &cobra.Command{
		Use:   "vigenere",
		Short: "encrypt or decrypt a text file with the Vigenère cipher (A-Z keyword)",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := afero.ReadFile(appFs, input)
			if err != nil {
				return err
			}

			var out string
			if decrypt {
				out, err = classical.VigenereDecrypt(string(text), key)
			} else {
				out, err = classical.Vigenere(string(text), key)
			}
			if err != nil {
				return err
			}

			log.Infof("vigenere %s: %d characters", operationName(decrypt), len(text))
			return afero.WriteFile(appFs, output, []byte(out), 0644)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input text file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output text file")
	cmd.Flags().StringVarP(&key, "key", "k", "", "keyword, uppercase A-Z only")
	cmd.Flags().BoolVarP(&decrypt, "decrypt", "d", false, "decrypt instead of encrypt")

	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")
	cmd.MarkFlagRequired("key")
	return cmd
}
