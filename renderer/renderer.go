// Package renderer turns the engine's reports into markdown documents.
// It holds no computation: every number it prints comes from a report
// struct produced by the bilancio package.
package renderer

import (
	"fmt"
	"io"
	"strings"
)

// degradedNotice appends the partial-precision warning when some currency
// pairs were valued at the identity rate.
func degradedNotice(w io.Writer, pairs []string) {
	if len(pairs) == 0 {
		return
	}
	fmt.Fprintf(w, "\n> Partial precision: no exchange rate resolved for %s; an identity rate of 1 was used.\n",
		strings.Join(pairs, ", "))
}
