package bilancio

import "fmt"

// Percent is a ratio expressed in percentage points (5.0 means 5%).
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// ratio returns num/den*100 as a Percent, defined as 0 when den is 0.
// ROI, savings rate and period-gain percentages all rely on this convention
// so that results stay finite for empty denominators.
func ratio(num, den float64) Percent {
	if den == 0 {
		return 0
	}
	return Percent(num / den * 100)
}
