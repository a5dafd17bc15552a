package bilancio

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Investment is a held portfolio or fund, valued through periodic
// InvestmentTrend snapshots rather than per-trade postings.
type Investment struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Currency string `json:"currency"`
	// Retirement marks pension-oriented holdings, rolled up separately
	// from personal portfolios.
	Retirement bool   `json:"retirement,omitempty"`
	Note       string `json:"note,omitempty"`
}

// NewInvestment creates an investment with a fresh identifier.
func NewInvestment(name, currency string, retirement bool) Investment {
	return Investment{
		ID:         uuid.NewString(),
		Name:       name,
		Currency:   currency,
		Retirement: retirement,
	}
}

// InvestmentTrend is one observed valuation of an investment: the total
// market value as of a date, and the signed cash flow (contributions
// positive, withdrawals negative) attributed to the period ending at that
// date. The first trend of a series carries its own value as cash flow, a
// simplification for the inception period.
type InvestmentTrend struct {
	ID           string          `json:"id"`
	InvestmentID string          `json:"investment"`
	Date         Date            `json:"date"`
	Value        decimal.Decimal `json:"value"`
	CashFlow     decimal.Decimal `json:"cashFlow"`
}

// TrendPoint is one point of the computed performance series of an
// investment.
type TrendPoint struct {
	Date     Date
	Value    decimal.Decimal
	CashFlow decimal.Decimal
	// TotalInvested is the running sum of cash flows up to this point.
	TotalInvested decimal.Decimal
	// NetGain is Value minus TotalInvested.
	NetGain decimal.Decimal
	// TotalROI is NetGain over TotalInvested, 0 when nothing is invested.
	TotalROI Percent
	// PeriodGain is the portion of the value change since the previous
	// point not explained by new contributions or withdrawals.
	PeriodGain        decimal.Decimal
	PeriodGainPercent Percent
}

// TrendSeries computes the performance series from the chronological
// valuation trends of one investment. It is a pure function of its input.
func TrendSeries(trends []InvestmentTrend) []TrendPoint {
	points := make([]TrendPoint, 0, len(trends))
	var invested decimal.Decimal
	for i, tr := range trends {
		invested = invested.Add(tr.CashFlow)
		netGain := tr.Value.Sub(invested)

		var periodGain, base decimal.Decimal
		if i == 0 {
			periodGain = tr.Value.Sub(tr.CashFlow)
			base = tr.CashFlow
		} else {
			prev := trends[i-1].Value
			periodGain = tr.Value.Sub(prev.Add(tr.CashFlow))
			if prev.IsPositive() {
				base = prev
			} else {
				base = tr.CashFlow
			}
		}

		points = append(points, TrendPoint{
			Date:              tr.Date,
			Value:             tr.Value,
			CashFlow:          tr.CashFlow,
			TotalInvested:     invested,
			NetGain:           netGain,
			TotalROI:          ratio(netGain.InexactFloat64(), invested.InexactFloat64()),
			PeriodGain:        periodGain,
			PeriodGainPercent: ratio(periodGain.InexactFloat64(), base.InexactFloat64()),
		})
	}
	return points
}

// InvestmentSummary is the latest state of one investment, in its native
// currency.
type InvestmentSummary struct {
	Investment Investment
	AsOf       Date
	Value      Money
	Invested   Money
	NetGain    Money
	ROI        Percent
	Series     []TrendPoint
}

// InvestmentGroup is the roll-up of several investments in the reporting
// currency. Value, Invested and NetGain are summed after conversion; the
// group ROI is recomputed from the summed totals, never averaged from the
// individual ROIs.
type InvestmentGroup struct {
	Name     string
	Currency string
	Value    Money
	Invested Money
	NetGain  Money
	ROI      Percent
}

// InvestmentReport is the portfolio-wide investment overview.
type InvestmentReport struct {
	Currency    string
	Investments []InvestmentSummary
	Personal    InvestmentGroup
	Retirement  InvestmentGroup
	Total       InvestmentGroup
	// Degraded lists the currency pairs valued at the identity rate
	// because no exchange rate could be resolved.
	Degraded []string
}

// InvestmentOverview computes the per-investment performance series and the
// group roll-ups, expressed in the reporting base currency.
func (l *Ledger) InvestmentOverview(ctx context.Context, base string, valuator *Valuator) *InvestmentReport {
	report := &InvestmentReport{
		Currency:   base,
		Personal:   InvestmentGroup{Name: "personal", Currency: base},
		Retirement: InvestmentGroup{Name: "retirement", Currency: base},
		Total:      InvestmentGroup{Name: "total", Currency: base},
	}
	zero := M(0, base)
	for _, g := range []*InvestmentGroup{&report.Personal, &report.Retirement, &report.Total} {
		g.Value, g.Invested, g.NetGain = zero, zero, zero
	}

	for inv := range l.Investments() {
		series := TrendSeries(l.Trends(inv.ID))
		if len(series) == 0 {
			continue
		}
		last := series[len(series)-1]
		summary := InvestmentSummary{
			Investment: inv,
			AsOf:       last.Date,
			Value:      M(last.Value, inv.Currency),
			Invested:   M(last.TotalInvested, inv.Currency),
			NetGain:    M(last.NetGain, inv.Currency),
			ROI:        last.TotalROI,
			Series:     series,
		}
		report.Investments = append(report.Investments, summary)

		// Convert to the reporting currency at the latest valuation date
		// before summing into the groups.
		value := valuator.Convert(ctx, summary.Value, base, last.Date)
		invested := valuator.Convert(ctx, summary.Invested, base, last.Date)
		netGain := value.Sub(invested)

		groups := []*InvestmentGroup{&report.Total}
		if inv.Retirement {
			groups = append(groups, &report.Retirement)
		} else {
			groups = append(groups, &report.Personal)
		}
		for _, g := range groups {
			g.Value = g.Value.Add(value)
			g.Invested = g.Invested.Add(invested)
			g.NetGain = g.NetGain.Add(netGain)
		}
	}

	for _, g := range []*InvestmentGroup{&report.Personal, &report.Retirement, &report.Total} {
		g.ROI = ratio(g.NetGain.AsFloat(), g.Invested.AsFloat())
	}
	report.Degraded = valuator.Degraded()
	return report
}
