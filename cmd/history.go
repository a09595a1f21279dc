package cmd

import (
	"fmt"

	"finchat/internal/cli"
	"finchat/internal/config"
	"finchat/internal/store"

	"github.com/spf13/cobra"
)

var flagLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent question/answer exchanges",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of exchanges to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	h, err := store.Open(store.DefaultPath(config.Dir()))
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	defer h.Close()

	exchanges, err := h.Recent(flagLimit)
	if err != nil {
		return fmt.Errorf("reading history: %w", err)
	}

	if len(exchanges) == 0 {
		fmt.Println("  No exchanges recorded yet.")
		return nil
	}

	for _, e := range exchanges {
		header := fmt.Sprintf("%s  %s/%s", e.AskedAt.Local().Format("2006-01-02 15:04"), e.Backend, e.Persona)
		fmt.Println(cli.RenderHint(header))
		fmt.Printf("  Q: %s\n", e.Question)
		fmt.Printf("  A: %s\n", e.Answer)
		if e.Income > 0 {
			fmt.Printf("  Income: %s\n", cli.FormatMoney(e.Income))
		}
		fmt.Println()
	}
	return nil
}
