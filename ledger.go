package bilancio

import (
	"fmt"
	"iter"
	"slices"

	"github.com/shopspring/decimal"
)

// Ledger holds an immutable snapshot of the finance collections: accounts,
// transactions, recurring obligations, investments and their valuation
// trends.
//
// In a Ledger transactions are always in chronological order, and so are
// the valuation trends of each investment.
type Ledger struct {
	accounts     []Account
	accountIndex map[string]int // position in accounts, by ID
	transactions []Transaction
	obligations  []RecurringObligation
	investments  []Investment
	trends       map[string][]InvestmentTrend // by investment ID
	skipped      int
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		accountIndex: make(map[string]int),
		trends:       make(map[string][]InvestmentTrend),
	}
}

// AddAccount records an account. The kind must belong to the closed set,
// otherwise the account would silently fall outside every group aggregate.
// A second account with the same ID replaces the first.
func (l *Ledger) AddAccount(a Account) error {
	if a.ID == "" {
		return fmt.Errorf("account %q has no id", a.Name)
	}
	if _, err := ParseAccountKind(string(a.Kind)); err != nil {
		return fmt.Errorf("account %q: %w", a.Name, err)
	}
	if i, ok := l.accountIndex[a.ID]; ok {
		l.accounts[i] = a
		return nil
	}
	l.accountIndex[a.ID] = len(l.accounts)
	l.accounts = append(l.accounts, a)
	return nil
}

// AddTransaction appends a transaction, keeping the ledger chronological.
// Records that cannot contribute to any aggregation (zero date, unknown
// kind) are rejected; one bad historical entry must not blank a dashboard,
// so callers are expected to count the rejection and continue.
//
// Transfers net to zero system-wide: the base amount of a transfer kind is
// stored as zero whatever the record carried.
func (l *Ledger) AddTransaction(tx Transaction) error {
	if tx.Date.IsZero() {
		return fmt.Errorf("transaction %q has no date", tx.ID)
	}
	if _, ok := knownKinds[tx.Kind]; !ok {
		return fmt.Errorf("transaction %q has unknown kind %q", tx.ID, tx.Kind)
	}
	if tx.Kind.IsTransfer() {
		tx.BaseAmount = decimal.Decimal{}
	}
	i, _ := slices.BinarySearchFunc(l.transactions, tx, func(a, b Transaction) int {
		switch {
		case a.Date.Before(b.Date):
			return -1
		case a.Date.After(b.Date):
			return 1
		default:
			return 0
		}
	})
	// insert after equal dates to preserve input order within a day
	for i < len(l.transactions) && !l.transactions[i].Date.After(tx.Date) {
		i++
	}
	l.transactions = slices.Insert(l.transactions, i, tx)
	return nil
}

// AddObligation records a recurring obligation definition row.
func (l *Ledger) AddObligation(o RecurringObligation) error {
	if o.Due.IsZero() {
		return fmt.Errorf("obligation %q has no expected date", o.Name)
	}
	l.obligations = append(l.obligations, o)
	return nil
}

// AddInvestment records an investment.
func (l *Ledger) AddInvestment(inv Investment) error {
	if inv.ID == "" {
		return fmt.Errorf("investment %q has no id", inv.Name)
	}
	l.investments = append(l.investments, inv)
	return nil
}

// AddTrend appends a valuation trend, keeping each series chronological.
func (l *Ledger) AddTrend(tr InvestmentTrend) error {
	if tr.Date.IsZero() {
		return fmt.Errorf("trend %q has no date", tr.ID)
	}
	series := l.trends[tr.InvestmentID]
	i, _ := slices.BinarySearchFunc(series, tr, func(a, b InvestmentTrend) int {
		switch {
		case a.Date.Before(b.Date):
			return -1
		case a.Date.After(b.Date):
			return 1
		default:
			return 0
		}
	})
	l.trends[tr.InvestmentID] = slices.Insert(series, i, tr)
	return nil
}

// Skipped returns the number of malformed records dropped while decoding
// the snapshot. Aggregations over the remaining records are best-effort.
func (l *Ledger) Skipped() int { return l.skipped }

// Account returns the account with that ID.
func (l *Ledger) Account(id string) (Account, bool) {
	i, ok := l.accountIndex[id]
	if !ok {
		return Account{}, false
	}
	return l.accounts[i], true
}

// Accounts returns an iterator over all accounts, in declaration order.
func (l *Ledger) Accounts() iter.Seq[Account] {
	return slices.Values(l.accounts)
}

// Transactions returns an iterator over all transactions in chronological order.
func (l *Ledger) Transactions() iter.Seq[Transaction] {
	return slices.Values(l.transactions)
}

// Obligations returns an iterator over all recurring obligation rows.
func (l *Ledger) Obligations() iter.Seq[RecurringObligation] {
	return slices.Values(l.obligations)
}

// Investments returns an iterator over all investments, in declaration order.
func (l *Ledger) Investments() iter.Seq[Investment] {
	return slices.Values(l.investments)
}

// Trends returns the chronological valuation series of one investment.
func (l *Ledger) Trends(investmentID string) []InvestmentTrend {
	return l.trends[investmentID]
}

// RunningBalance computes the balance of one account as of a cutoff date
// (inclusive), in the account's native currency: the sum of sign-normalised
// amounts of every transaction posted on or before the cutoff.
func (l *Ledger) RunningBalance(accountID string, asOf Date) decimal.Decimal {
	var balance decimal.Decimal
	for tx := range l.transactionsUpTo(asOf) {
		if tx.AccountID != accountID {
			continue
		}
		balance = balance.Add(tx.SignedAmount())
	}
	return balance
}

// GroupBaseBalance computes the balance of a whole account group as of a
// cutoff date (inclusive), in the reporting base currency. Hidden accounts
// are excluded from the aggregate, and so are transactions whose account
// reference dangles.
func (l *Ledger) GroupBaseBalance(group AccountGroup, asOf Date) decimal.Decimal {
	var balance decimal.Decimal
	for tx := range l.transactionsUpTo(asOf) {
		account, ok := l.Account(tx.AccountID)
		if !ok || account.Hidden || !group.Contains(account.Kind) {
			continue
		}
		balance = balance.Add(tx.SignedBaseAmount())
	}
	return balance
}

// transactionsUpTo iterates transactions posted on or before the cutoff.
func (l *Ledger) transactionsUpTo(asOf Date) iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.transactions {
			if tx.Date.After(asOf) {
				return
			}
			if !yield(tx) {
				return
			}
		}
	}
}

// transactionsOfYear iterates transactions posted within the given year.
func (l *Ledger) transactionsOfYear(year int) iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.transactions {
			if tx.Date.Year() > year {
				return
			}
			if tx.Date.Year() < year {
				continue
			}
			if !yield(tx) {
				return
			}
		}
	}
}

// earliestTransaction returns the date of the first transaction, if any.
func (l *Ledger) earliestTransaction() (Date, bool) {
	if len(l.transactions) == 0 {
		return Date{}, false
	}
	return l.transactions[0].Date, true
}
