package bilancio

import (
	"testing"

	"github.com/shopspring/decimal"
)

// HELPERS

func d(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

// testAccount adds an account with a fixed ID for deterministic tests.
func testAccount(t *testing.T, l *Ledger, id, name, currency string, kind AccountKind) {
	t.Helper()
	err := l.AddAccount(Account{ID: id, Name: name, Currency: currency, Kind: kind})
	if err != nil {
		t.Fatalf("AddAccount(%q) error = %v", name, err)
	}
}

// post adds a transaction where amount and base amount coincide, the common
// case of an account held in the base currency.
func post(t *testing.T, l *Ledger, account, date string, kind TxKind, amount float64) Transaction {
	t.Helper()
	return postBase(t, l, account, date, kind, amount, amount)
}

func postBase(t *testing.T, l *Ledger, account, date string, kind TxKind, amount, baseAmount float64) Transaction {
	t.Helper()
	tx := NewTransaction(account, MustParse(date), kind, d(amount), d(baseAmount))
	if err := l.AddTransaction(tx); err != nil {
		t.Fatalf("AddTransaction(%s %s %v) error = %v", date, kind, amount, err)
	}
	return tx
}

func trend(t *testing.T, l *Ledger, investment, date string, value, cashFlow float64) {
	t.Helper()
	err := l.AddTrend(InvestmentTrend{
		ID:           investment + "-" + date,
		InvestmentID: investment,
		Date:         MustParse(date),
		Value:        d(value),
		CashFlow:     d(cashFlow),
	})
	if err != nil {
		t.Fatalf("AddTrend(%s %s) error = %v", investment, date, err)
	}
}

// assertAmount compares a Money amount against a float with decimal equality.
func assertAmount(t *testing.T, name string, got Money, want float64) {
	t.Helper()
	if !got.Amount().Equal(d(want)) {
		t.Errorf("%s = %v, want %v", name, got.Amount(), want)
	}
}
