package renderer

import (
	"fmt"
	"strings"

	"github.com/davoli/bilancio"
)

// WealthMarkdown renders the year-end snapshot and the year-over-year
// evolution side by side.
func WealthMarkdown(snapshot *bilancio.WealthReport, evolution *bilancio.EvolutionReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Wealth at end of %d (%s)\n\n", snapshot.Year, snapshot.Currency)

	fmt.Fprintln(&b, "| Account | Kind | Balance | Value |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|")
	for _, aw := range snapshot.Accounts {
		if aw.Balance.IsZero() {
			continue
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			aw.Account.Name, aw.Account.Kind, aw.Balance, aw.Value)
	}
	fmt.Fprintf(&b, "| **Liquidity** | | | **%s** |\n", snapshot.Liquidity)
	fmt.Fprintf(&b, "| **Wealth** | | | **%s** |\n", snapshot.Wealth)
	fmt.Fprintf(&b, "| **Total** | | | **%s** |\n", snapshot.Total)

	fmt.Fprintf(&b, "\n## Evolution %d → %d\n\n", evolution.Year-1, evolution.Year)
	fmt.Fprintln(&b, "| Account | Start | End | Delta |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")
	for _, ae := range evolution.Accounts {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			ae.Account.Name, ae.Start, ae.End, ae.Delta.SignedString())
	}
	fmt.Fprintf(&b, "| **Total** | **%s** | **%s** | **%s** |\n",
		evolution.Start, evolution.End, evolution.Delta.SignedString())

	degradedNotice(&b, snapshot.Degraded)
	return b.String()
}
