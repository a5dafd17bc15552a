package bilancio

import (
	"context"

	"github.com/shopspring/decimal"
)

// AccountWealth is the year-end valuation of one account: the running
// balance through December 31 in the account's native currency, and its
// value in the reporting currency at the year-end exchange rate.
type AccountWealth struct {
	Account Account
	Balance Money // native currency
	Value   Money // reporting currency, at the year-end rate
}

// WealthReport is the point-in-time wealth snapshot of one year. Unlike
// cashflow totals, which convert each transaction at its posting date, the
// snapshot converts whole balances at the December 31 rate of the year.
type WealthReport struct {
	Year      int
	Currency  string
	Accounts  []AccountWealth
	Liquidity Money
	Wealth    Money
	Total     Money
	// Degraded lists the currency pairs valued at the identity rate
	// because no exchange rate could be resolved.
	Degraded []string
}

// WealthSnapshot values every visible account at the end of the given
// year, bucketing the totals into the liquidity and wealth groups.
func (l *Ledger) WealthSnapshot(ctx context.Context, year int, base string, valuator *Valuator) *WealthReport {
	cutoff := YearEnd(year)
	report := &WealthReport{
		Year:      year,
		Currency:  base,
		Liquidity: M(0, base),
		Wealth:    M(0, base),
	}

	for account := range l.Accounts() {
		if account.Hidden {
			continue
		}
		balance := l.RunningBalance(account.ID, cutoff)
		value := valuator.Convert(ctx, M(balance, account.Currency), base, cutoff)
		report.Accounts = append(report.Accounts, AccountWealth{
			Account: account,
			Balance: M(balance, account.Currency),
			Value:   value,
		})
		if Liquidity.Contains(account.Kind) {
			report.Liquidity = report.Liquidity.Add(value)
		} else {
			report.Wealth = report.Wealth.Add(value)
		}
	}
	report.Total = report.Liquidity.Add(report.Wealth)
	report.Degraded = valuator.Degraded()
	return report
}

// AccountEvolution is the year-over-year change of one account, in the
// reporting currency: the start value at the prior year-end rate, the end
// value at the target year-end rate, and their difference.
type AccountEvolution struct {
	Account Account
	Start   Money
	End     Money
	Delta   Money
}

// EvolutionReport is the year-over-year wealth evolution per account.
type EvolutionReport struct {
	Year     int
	Currency string
	Accounts []AccountEvolution
	Start    Money
	End      Money
	Delta    Money
	Degraded []string
}

// negligible is the absolute balance under which a zero-activity account is
// left out of the evolution, to avoid noise.
var negligible = decimal.NewFromFloat(0.01)

// WealthEvolution computes the per-account year-over-year evolution for
// the given year.
//
// When the ledger has no data before the year, the start value is derived
// from the year's opening-balance postings instead of a prior running
// balance, so ledger seeding is not reported as a gain. The trigger is the
// absence of prior data, not a hardcoded first year.
func (l *Ledger) WealthEvolution(ctx context.Context, year int, base string, valuator *Valuator) *EvolutionReport {
	report := &EvolutionReport{
		Year:     year,
		Currency: base,
		Start:    M(0, base),
		End:      M(0, base),
	}

	priorEnd := YearEnd(year - 1)
	end := YearEnd(year)
	first, hasData := l.earliestTransaction()
	hasPrior := hasData && !first.After(priorEnd)

	for account := range l.Accounts() {
		if account.Hidden {
			continue
		}
		var startBalance decimal.Decimal
		if hasPrior {
			startBalance = l.RunningBalance(account.ID, priorEnd)
		} else {
			// No prior-year snapshot: fall back to the explicit
			// opening-balance postings of the year.
			for tx := range l.transactionsOfYear(year) {
				if tx.AccountID == account.ID && tx.IsOpeningBalance() {
					startBalance = startBalance.Add(tx.SignedAmount())
				}
			}
		}
		endBalance := l.RunningBalance(account.ID, end)
		if startBalance.Abs().LessThan(negligible) && endBalance.Abs().LessThan(negligible) {
			continue
		}

		startValue := M(valuator.ConvertValue(ctx, startBalance, account.Currency, base, priorEnd), base)
		endValue := M(valuator.ConvertValue(ctx, endBalance, account.Currency, base, end), base)
		report.Accounts = append(report.Accounts, AccountEvolution{
			Account: account,
			Start:   startValue,
			End:     endValue,
			Delta:   endValue.Sub(startValue),
		})
		report.Start = report.Start.Add(startValue)
		report.End = report.End.Add(endValue)
	}
	report.Delta = report.End.Sub(report.Start)
	report.Degraded = valuator.Degraded()
	return report
}
