// cmd/legaldoc/main.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"legal-workers/internal/common/logger"
	"legal-workers/internal/legal/locale"
)

var (
	// Global flags
	lang    string
	verbose bool
	plain   bool

	log *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "legaldoc",
	Short: "Legal document assistant for Cameroon",
	Long: `legaldoc renders complaints, wills and employment contracts, suggests
legal references for a description, computes case timelines and forwards
questions to the legal Q&A backend.

Every command accepts --lang en|fr.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := "warn"
		if verbose {
			level = "debug"
		}
		log = logger.NewWithOutput(level, "console", "stderr")
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

func language() locale.Language {
	return locale.Parse(lang)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&lang, "lang", "l", "en", "Interface and document language (en or fr)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "Print markdown without terminal styling")

	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(fieldsCmd)
	rootCmd.AddCommand(referencesCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(timelineCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(activitiesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
