// Package budget splits a monthly income into fixed-percentage buckets.
package budget

import (
	"fmt"

	"finchat/internal/cli"
)

// Default allocation fractions (50/20 rule; the rest is discretionary).
const (
	DefaultEssentialsPct = 0.50
	DefaultSavingsPct    = 0.20
)

// Breakdown holds the three derived amounts for one income figure.
type Breakdown struct {
	Income        float64
	EssentialsPct float64
	SavingsPct    float64
	Essentials    float64
	Savings       float64
	Discretionary float64
}

// Split computes the breakdown for the given income and fractions.
// Discretionary is the remainder and may go negative when the fractions sum
// past 1.0; it is reported as-is, not clamped.
func Split(income, essentialsPct, savingsPct float64) Breakdown {
	essentials := income * essentialsPct
	savings := income * savingsPct
	return Breakdown{
		Income:        income,
		EssentialsPct: essentialsPct,
		SavingsPct:    savingsPct,
		Essentials:    essentials,
		Savings:       savings,
		Discretionary: income - essentials - savings,
	}
}

// Summary renders the breakdown as a multi-line report using the given
// currency symbol. The same income always yields the same string, so the
// copy embedded in a prompt matches the copy shown to the user.
func Summary(income, essentialsPct, savingsPct float64, currency string) string {
	b := Split(income, essentialsPct, savingsPct)
	return fmt.Sprintf(
		"Monthly Budget Summary:\n"+
			"Total income: %s%s\n"+
			"Essentials (%s): %s%s\n"+
			"Savings (%s): %s%s\n"+
			"Discretionary: %s%s\n",
		currency, cli.FormatMoney(b.Income),
		cli.FormatPercent(b.EssentialsPct), currency, cli.FormatMoney(b.Essentials),
		cli.FormatPercent(b.SavingsPct), currency, cli.FormatMoney(b.Savings),
		currency, cli.FormatMoney(b.Discretionary),
	)
}

// DefaultSummary renders the breakdown with the default fractions.
func DefaultSummary(income float64, currency string) string {
	return Summary(income, DefaultEssentialsPct, DefaultSavingsPct, currency)
}
