package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"lyrictranslator/pkg/logger"
)

var version = "0.1.0"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "lyrictranslator",
	Short: "Lyric file translator",
	Long: `Translates lyric text files with the GLM-4-Flash chat model or a local
offline stub.

Give one file to translate it to stdout, or several to run a batch that
saves each translation beside its source file.

Use "lyrictranslator translate --help" for translation options.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func newLogger() *logger.Logger {
	log := logger.New(200)
	if verbose {
		log.SetLevel(logger.TRACE)
	}
	return log
}
