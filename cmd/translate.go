package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"lyrictranslator/pkg/batch"
	"lyrictranslator/pkg/config"
	"lyrictranslator/pkg/engine"
	"lyrictranslator/pkg/lyrics"
	"lyrictranslator/pkg/runner"
)

var (
	engineID   string
	language   string
	outputFile string
)

var translateCmd = &cobra.Command{
	Use:   "translate <file> [files...]",
	Short: "Translate one or more lyric files",
	Long: `Translate lyric files into the target language.

With a single file the translation is printed to stdout and nothing is
written to disk unless --output is given. With two or more files a batch
runs: each file is translated in order and saved beside its source as
<stem>_<Language>_<timestamp>.lrc. A file that fails does not stop the
batch; its error is reported and the run continues.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		id := engineID
		if id == "" {
			id = cfg.Translate.Engine
		}
		langName := language
		if langName == "" {
			langName = cfg.Translate.Language
		}
		lang, ok := engine.CanonicalLanguage(langName)
		if !ok {
			return fmt.Errorf("unsupported language %q (choose one of: %s)",
				langName, strings.Join(engine.Languages(), ", "))
		}

		log := newLogger()
		eng, closeEngine, err := runner.BuildEngine(cfg, id, log)
		if err != nil {
			return err
		}
		defer closeEngine()

		bus := batch.NewBus(0)
		total := len(args)
		callbacks := batch.Callbacks{
			OnStatus: func(i int, item batch.Item) {
				if item.Status == batch.StatusTranslating {
					fmt.Fprintf(os.Stderr, "[%d/%d] %s: translating...\n", i+1, total, item.DisplayName)
				}
			},
			OnTranslated: func(i int, item batch.Item, _ string) {
				if item.SavedPath != "" {
					fmt.Fprintf(os.Stderr, "[%d/%d] %s: translated -> %s\n", i+1, total, item.DisplayName, item.SavedPath)
				} else {
					fmt.Fprintf(os.Stderr, "[%d/%d] %s: translated (result not saved)\n", i+1, total, item.DisplayName)
				}
			},
			OnError: func(i int, item batch.Item, err error) {
				fmt.Fprintf(os.Stderr, "[%d/%d] %s: error: %v\n", i+1, total, item.DisplayName, err)
			},
			OnSaveError: func(i int, item batch.Item, err error) {
				fmt.Fprintf(os.Stderr, "[%d/%d] %s: failed to save translation: %v\n", i+1, total, item.DisplayName, err)
			},
		}

		outcome, err := runner.Run(cmd.Context(), runner.Options{
			Engine:    eng,
			Language:  lang,
			Callbacks: callbacks,
			Bus:       bus,
			Logger:    log,
		}, args)
		if err != nil {
			return err
		}

		if outcome.Single != nil {
			if outputFile != "" {
				if err := lyrics.WriteFile(outputFile, outcome.Single.Text); err != nil {
					return err
				}
				fmt.Fprintf(os.Stderr, "saved translation to %s\n", outputFile)
				return nil
			}
			fmt.Println(outcome.Single.Text)
			return nil
		}

		printBatchSummary(outcome.Batch, bus)
		return nil
	},
}

// printBatchSummary renders the terminal per-file status listing from the
// event history.
func printBatchSummary(b *batch.Batch, bus *batch.Bus) {
	translated, failed := 0, 0
	for _, item := range b.Items {
		if item.Status == batch.StatusTranslated {
			translated++
		} else {
			failed++
		}
	}

	fmt.Fprintf(os.Stderr, "\nBatch translation completed: %d translated, %d failed\n", translated, failed)
	for _, ev := range bus.All() {
		if ev.Final || ev.Status == batch.StatusTranslating {
			continue
		}
		line := fmt.Sprintf("  %s - %s", ev.File, ev.Status)
		if ev.Status == batch.StatusError && ev.Message != "" {
			line += ": " + ev.Message
		}
		fmt.Fprintln(os.Stderr, line)
	}
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&engineID, "engine", "e", "", "Translation engine (default from config)")
	translateCmd.Flags().StringVarP(&language, "lang", "l", "", "Target language (default from config)")
	translateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Save the translation here (single-file mode only)")
}
