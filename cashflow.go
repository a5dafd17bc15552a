package bilancio

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MonthCashflow is the income/expense decomposition of one month, in the
// reporting base currency.
type MonthCashflow struct {
	Month time.Month
	// Income is the personal income received on liquidity accounts.
	Income Money
	// Fixed is the total of essential expenses.
	Fixed Money
	// Variable is the total of personal expenses.
	Variable Money
	// Saved is Income - Fixed - Variable.
	Saved Money
}

// CashflowReport is the income/expense/savings decomposition of one year,
// in the reporting base currency.
type CashflowReport struct {
	Year     int
	Currency string
	Months   [12]MonthCashflow

	Income   Money
	Fixed    Money
	Variable Money
	Saved    Money
	// SavingsRate is Saved over Income, 0 when there is no income.
	SavingsRate Percent

	// InitialLiquidity is the liquidity balance carried into the year:
	// the prior-year running balance plus the year's opening-balance
	// postings, which are folded here instead of appearing as income.
	InitialLiquidity Money
	// FlowToInvest and FlowToPension are the amounts moved out of the
	// liquidity accounts into wealth accounts during the year.
	FlowToInvest  Money
	FlowToPension Money
	// FinalLiquidity = InitialLiquidity + Saved - FlowToInvest - FlowToPension.
	FinalLiquidity Money
}

// countsAsIncome reports whether the transaction kind contributes to the
// cashflow income. Work income is excluded entirely: it represents
// reimbursements, not personal cashflow.
func countsAsIncome(kind TxKind) bool {
	return kind.IsIncome() && !kind.IsWork()
}

// Cashflow computes the monthly and annual income/expense/savings
// decomposition of one year over the liquidity accounts, in the reporting
// base currency.
//
// Transfers and work kinds never enter the decomposition, opening-balance
// postings are folded into the initial liquidity, and transactions with a
// dangling account reference are left out of every bucket.
func (l *Ledger) Cashflow(year int, base string) *CashflowReport {
	report := &CashflowReport{Year: year, Currency: base}

	var income, fixed, variable [12]decimal.Decimal
	var opening decimal.Decimal
	var flowInvest, flowPension decimal.Decimal

	for tx := range l.transactionsOfYear(year) {
		account, ok := l.Account(tx.AccountID)
		if !ok || account.Hidden || !Liquidity.Contains(account.Kind) {
			continue
		}
		if tx.IsOpeningBalance() {
			// A ledger-seeding entry is starting capital, not income.
			opening = opening.Add(tx.SignedBaseAmount())
			continue
		}
		if tx.Kind.IsTransfer() {
			// Transfers are internal moves; the ones feeding the wealth
			// accounts are tracked apart from the flow decomposition.
			// Their base amount is always zero, so the native amount is
			// the only usable magnitude.
			outgoing := tx.SignedAmount()
			switch {
			case strings.Contains(string(tx.Kind), "invest"):
				flowInvest = flowInvest.Add(outgoing.Abs())
			case strings.Contains(string(tx.Kind), "pension"):
				flowPension = flowPension.Add(outgoing.Abs())
			}
			continue
		}
		month := tx.Date.Month() - 1
		switch {
		case countsAsIncome(tx.Kind):
			income[month] = income[month].Add(tx.SignedBaseAmount())
		case tx.Kind == ExpenseEssential:
			fixed[month] = fixed[month].Add(tx.SignedBaseAmount().Abs())
		case tx.Kind == ExpensePersonal:
			variable[month] = variable[month].Add(tx.SignedBaseAmount().Abs())
		}
	}

	var yearIncome, yearFixed, yearVariable decimal.Decimal
	for i := range report.Months {
		saved := income[i].Sub(fixed[i]).Sub(variable[i])
		report.Months[i] = MonthCashflow{
			Month:    time.Month(i + 1),
			Income:   M(income[i], base),
			Fixed:    M(fixed[i], base),
			Variable: M(variable[i], base),
			Saved:    M(saved, base),
		}
		yearIncome = yearIncome.Add(income[i])
		yearFixed = yearFixed.Add(fixed[i])
		yearVariable = yearVariable.Add(variable[i])
	}
	yearSaved := yearIncome.Sub(yearFixed).Sub(yearVariable)

	report.Income = M(yearIncome, base)
	report.Fixed = M(yearFixed, base)
	report.Variable = M(yearVariable, base)
	report.Saved = M(yearSaved, base)
	report.SavingsRate = ratio(yearSaved.InexactFloat64(), yearIncome.InexactFloat64())

	// The liquidity carried into the year is the previous year's final
	// liquidity. The recursion bottoms out at the dataset's first year,
	// where only the opening-balance postings seed the constant.
	var initial decimal.Decimal
	if first, ok := l.earliestTransaction(); ok && first.Year() < year {
		initial = l.Cashflow(year-1, base).FinalLiquidity.Amount()
	}
	initial = initial.Add(opening)
	report.InitialLiquidity = M(initial, base)
	report.FlowToInvest = M(flowInvest, base)
	report.FlowToPension = M(flowPension, base)
	report.FinalLiquidity = M(initial.Add(yearSaved).Sub(flowInvest).Sub(flowPension), base)
	return report
}
