package renderer

import (
	"fmt"
	"strings"

	"github.com/davoli/bilancio"
)

// CashflowMarkdown renders the yearly cashflow decomposition.
func CashflowMarkdown(r *bilancio.CashflowReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Cashflow %d (%s)\n\n", r.Year, r.Currency)

	fmt.Fprintln(&b, "| Month | Income | Fixed | Variable | Saved |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|")
	for _, m := range r.Months {
		if m.Income.IsZero() && m.Fixed.IsZero() && m.Variable.IsZero() {
			continue
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			m.Month, m.Income, m.Fixed, m.Variable, m.Saved.SignedString())
	}
	fmt.Fprintf(&b, "| **Total** | **%s** | **%s** | **%s** | **%s** |\n\n",
		r.Income, r.Fixed, r.Variable, r.Saved.SignedString())

	fmt.Fprintf(&b, "Savings rate: %s\n\n", r.SavingsRate)

	fmt.Fprint(&b, "## Liquidity\n\n")
	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Initial liquidity | %s |\n", r.InitialLiquidity)
	fmt.Fprintf(&b, "| Saved | %s |\n", r.Saved.SignedString())
	fmt.Fprintf(&b, "| To investments | %s |\n", r.FlowToInvest)
	fmt.Fprintf(&b, "| To pension | %s |\n", r.FlowToPension)
	fmt.Fprintf(&b, "| **Final liquidity** | **%s** |\n", r.FinalLiquidity)

	return b.String()
}
