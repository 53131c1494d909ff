package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"lyrictranslator/pkg/engine"
)

var enginesCmd = &cobra.Command{
	Use:   "engines",
	Short: "List the available translation engines",
	Run: func(cmd *cobra.Command, args []string) {
		for _, id := range engine.IDs() {
			fmt.Println(id)
		}
	},
}

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the supported target languages",
	Run: func(cmd *cobra.Command, args []string) {
		for _, lang := range engine.Languages() {
			fmt.Println(lang)
		}
	},
}

func init() {
	rootCmd.AddCommand(enginesCmd)
	rootCmd.AddCommand(languagesCmd)
}
