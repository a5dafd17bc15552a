package renderer

import (
	"fmt"
	"strings"

	"github.com/davoli/bilancio"
)

// InvestMarkdown renders the investment overview with its group roll-ups.
func InvestMarkdown(r *bilancio.InvestmentReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Investments (%s)\n\n", r.Currency)

	fmt.Fprintln(&b, "| Investment | As of | Value | Invested | Net gain | ROI |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|")
	for _, s := range r.Investments {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			s.Investment.Name, s.AsOf, s.Value, s.Invested,
			s.NetGain.SignedString(), s.ROI.SignedString())
	}

	fmt.Fprint(&b, "\n## Groups\n\n")
	fmt.Fprintln(&b, "| Group | Value | Invested | Net gain | ROI |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|")
	for _, g := range []bilancio.InvestmentGroup{r.Personal, r.Retirement, r.Total} {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			g.Name, g.Value, g.Invested, g.NetGain.SignedString(), g.ROI.SignedString())
	}

	degradedNotice(&b, r.Degraded)
	return b.String()
}

// TrendMarkdown renders the full performance series of one investment.
func TrendMarkdown(s bilancio.InvestmentSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s (%s)\n\n", s.Investment.Name, s.Investment.Currency)

	fmt.Fprintln(&b, "| Date | Value | Cash flow | Invested | Net gain | ROI | Period gain | Period % |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|---:|---:|")
	for _, p := range s.Series {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
			p.Date, p.Value, p.CashFlow, p.TotalInvested,
			p.NetGain, p.TotalROI.SignedString(),
			p.PeriodGain, p.PeriodGainPercent.SignedString())
	}
	return b.String()
}
