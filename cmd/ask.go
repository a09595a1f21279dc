package cmd

import (
	"fmt"
	"os"
	"strings"

	"finchat/internal/chat"
	"finchat/internal/cli"
	"finchat/internal/config"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a single question and print the answer",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	question := strings.TrimSpace(strings.Join(args, " "))
	if question == "" {
		return fmt.Errorf("question must not be empty")
	}

	req, err := buildRequest(cfg, question)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr, "  Generating response — this may take a few seconds.")

	res, err := chat.Run(cmd.Context(), cfg, req)
	if err != nil {
		return err
	}

	fmt.Println(cli.RenderAnswer(answerTitle(req.Backend), res.Answer))
	if res.BudgetSummary != "" {
		fmt.Println(cli.RenderBudget(res.BudgetSummary))
	}

	recordExchange(req, res)
	return nil
}

// answerTitle names the panel after the backend that produced the reply.
func answerTitle(backendName string) string {
	if backendName == "watson" {
		return "Watson Assistant response"
	}
	return "Granite (Hugging Face) response"
}
