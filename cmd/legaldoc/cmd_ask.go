// cmd/legaldoc/cmd_ask.go
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"legal-workers/internal/common/logger"
	"legal-workers/internal/legal/ask"
)

var (
	askBaseURL string
	askTimeout time.Duration
	askRetries int
)

var askCmd = &cobra.Command{
	Use:   "ask [question...]",
	Short: "Ask the legal Q&A backend a question",
	Long: `Posts the question to {base-url}/ask and prints the answer with its
source. When the backend cannot be reached the localized fallback message is
printed and the command exits non-zero.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVar(&askBaseURL, "base-url", os.Getenv("ASK_BASE_URL"), "Q&A backend base URL (or set ASK_BASE_URL)")
	askCmd.Flags().DurationVar(&askTimeout, "timeout", 30*time.Second, "Request timeout")
	askCmd.Flags().IntVar(&askRetries, "retries", 0, "Retries on transport errors and 5xx answers")
}

func runAsk(cmd *cobra.Command, args []string) error {
	if askBaseURL == "" {
		return fmt.Errorf("--base-url or ASK_BASE_URL is required")
	}

	client := ask.NewClient(&ask.Config{
		BaseURL:    askBaseURL,
		Timeout:    askTimeout,
		MaxRetries: askRetries,
	}, nil, logger.NewZapAdapter(log))

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithTimeout(parent, askTimeout*time.Duration(askRetries+1))
	defer cancel()

	answer, askErr := client.Ask(ctx, strings.Join(args, " "), language())
	md := fmt.Sprintf("%s\n\n*Source: %s*\n", answer.Text, answer.Source.Label)
	if err := printMarkdown(cmd.OutOrStdout(), md); err != nil {
		return err
	}
	return askErr
}
