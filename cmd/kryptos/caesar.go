package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/akhertabeel/kryptos/pkg/classical"
)

func newCaesarCommand() *cobra.Command {
	var (
		input   string
		output  string
		key     int
		decrypt bool
	)

	cmd := &cobra.Command{
		Use:   "caesar",
		Short: "shift uppercase letters of a text file by a fixed key (additive cipher)",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := afero.ReadFile(appFs, input)
			if err != nil {
				return err
			}

			var out string
			if decrypt {
				out, err = classical.AdditiveDecrypt(string(text), key)
			} else {
				out, err = classical.Additive(string(text), key)
			}
			if err != nil {
				return err
			}

			log.Infof("caesar %s: %d characters", operationName(decrypt), len(text))
			return afero.WriteFile(appFs, output, []byte(out), 0644)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input text file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output text file")
	cmd.Flags().IntVarP(&key, "key", "k", 0, "shift value (0-25)")
	cmd.Flags().BoolVarP(&decrypt, "decrypt", "d", false, "decrypt instead of encrypt")

	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")
	cmd.MarkFlagRequired("key")
	return cmd
}
