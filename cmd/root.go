package cmd

import (
	"github.com/spf13/cobra"

	"github.com/imnaval/webnotes/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "webnotes",
	Short: "Bilingual learning-notes documentation site",
	Long: `webnotes serves a documentation site of markdown notes with a topic sidebar.
Each note exists in an english and a hinglish copy; the sidebar discovers
subtopics from the notes' headings and the language toggle switches between
the two copies.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
