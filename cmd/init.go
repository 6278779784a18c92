package cmd

import (
	"github.com/spf13/cobra"

	"github.com/imnaval/webnotes/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize webnotes configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the notes site and writes the config file (.webnotes.yml by default).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
