package renderer

import (
	"fmt"
	"strings"

	"github.com/davoli/bilancio"
)

// RecurringMarkdown renders the reconciliation of one month's obligations.
func RecurringMarkdown(r *bilancio.RecurrenceReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Recurring obligations %s %d\n\n", r.Month, r.Year)

	if len(r.Instances) == 0 {
		fmt.Fprintln(&b, "Nothing expected this month.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Obligation | Due | Amount | Status | Readiness |")
	fmt.Fprintln(&b, "|:---|:---|---:|:---|:---|")
	for _, in := range r.Instances {
		readiness := string(in.Readiness)
		if readiness == "" {
			readiness = "-"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			in.Obligation.Name, in.Obligation.Due, in.Amount, in.Status, readiness)
	}
	return b.String()
}
