package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// appFs is the filesystem all commands read and write through. Tests
// swap in an in-memory filesystem.
var appFs afero.Fs = afero.NewOsFs()

// cfg holds the effective configuration after the config file and
// persistent flags are merged. Flags win.
var cfg *Config

func newRootCommand() *cobra.Command {
	var cfgPath string
	var logLevel string

	root := &cobra.Command{
		Use:           "kryptos",
		Short:         "from-scratch cipher toolkit: AES-128 with ECB/CBC/OFB/CTR modes, plus classical ciphers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = loadConfig(appFs, cfgPath, cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			level, err := log.ParseLevel(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %v", cfg.LogLevel, err)
			}
			log.SetLevel(level)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", defaultConfigPath, "path to the TOML config file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(newAESCommand())
	root.AddCommand(newCaesarCommand())
	root.AddCommand(newVigenereCommand())
	root.AddCommand(newSPNCommand())
	return root
}
