package cmd

import (
	"fmt"

	"finchat/internal/budget"
	"finchat/internal/cli"
	"finchat/internal/config"

	"github.com/spf13/cobra"
)

var (
	flagEssentials float64
	flagSavings    float64
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Split a monthly income into essentials, savings, and discretionary",
	RunE:  runBudget,
}

func init() {
	budgetCmd.Flags().Float64Var(&flagEssentials, "essentials", budget.DefaultEssentialsPct, "Essentials fraction of income")
	budgetCmd.Flags().Float64Var(&flagSavings, "savings", budget.DefaultSavingsPct, "Savings fraction of income")
	rootCmd.AddCommand(budgetCmd)
}

func runBudget(_ *cobra.Command, _ []string) error {
	if flagIncome <= 0 {
		return fmt.Errorf("provide a positive income with --income")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	summary := budget.Summary(flagIncome, flagEssentials, flagSavings, cfg.Display.Currency)
	fmt.Println(cli.RenderBudget(summary))
	return nil
}
