package bilancio

import (
	"testing"
)

func TestRunningBalance(t *testing.T) {
	// A CHF account receiving 1000 and spending 300 holds 700 at month end.
	l := NewLedger()
	testAccount(t, l, "a1", "Checking", "CHF", KindCash)
	post(t, l, "a1", "2024-01-05", IncomePersonal, 1000)
	post(t, l, "a1", "2024-01-20", ExpensePersonal, 300)

	tests := []struct {
		asOf string
		want float64
	}{
		{"2024-01-04", 0},
		{"2024-01-05", 1000},
		{"2024-01-19", 1000},
		{"2024-01-20", 700},
		{"2024-01-31", 700},
		{"2024-12-31", 700},
	}
	for _, tt := range tests {
		if got := l.RunningBalance("a1", MustParse(tt.asOf)); !got.Equal(d(tt.want)) {
			t.Errorf("RunningBalance(a1, %s) = %v, want %v", tt.asOf, got, tt.want)
		}
	}
}

func TestRunningBalanceIgnoresOtherAccounts(t *testing.T) {
	l := NewLedger()
	testAccount(t, l, "a1", "Checking", "CHF", KindCash)
	testAccount(t, l, "a2", "Savings", "CHF", KindCash)
	post(t, l, "a1", "2024-01-05", IncomePersonal, 1000)
	post(t, l, "a2", "2024-01-05", IncomePersonal, 50)

	if got := l.RunningBalance("a1", MustParse("2024-12-31")); !got.Equal(d(1000)) {
		t.Errorf("RunningBalance(a1) = %v, want 1000", got)
	}
	if got := l.RunningBalance("missing", MustParse("2024-12-31")); !got.IsZero() {
		t.Errorf("RunningBalance(missing) = %v, want 0", got)
	}
}

func TestRunningBalanceAccumulation(t *testing.T) {
	// Extending the cutoff by the next transaction moves the balance by
	// exactly that transaction's signed amount.
	l := NewLedger()
	testAccount(t, l, "a1", "Checking", "CHF", KindCash)
	post(t, l, "a1", "2024-01-05", IncomePersonal, 1000)
	post(t, l, "a1", "2024-02-10", ExpenseEssential, 400)
	post(t, l, "a1", "2024-03-15", Adjustment, -12.5)
	post(t, l, "a1", "2024-06-01", IncomeWork, 80)

	prev := l.RunningBalance("a1", MustParse("2024-01-01"))
	for tx := range l.Transactions() {
		got := l.RunningBalance("a1", tx.Date)
		want := prev.Add(tx.SignedAmount())
		if !got.Equal(want) {
			t.Errorf("RunningBalance(a1, %s) = %v, want %v", tx.Date, got, want)
		}
		prev = got
	}
}

func TestAddTransactionKeepsChronologicalOrder(t *testing.T) {
	l := NewLedger()
	testAccount(t, l, "a1", "Checking", "CHF", KindCash)
	post(t, l, "a1", "2024-03-01", IncomePersonal, 3)
	post(t, l, "a1", "2024-01-01", IncomePersonal, 1)
	post(t, l, "a1", "2024-02-01", IncomePersonal, 2)

	var prev Date
	for tx := range l.Transactions() {
		if tx.Date.Before(prev) {
			t.Fatalf("transactions out of order: %v after %v", tx.Date, prev)
		}
		prev = tx.Date
	}
}

func TestAddTransactionRejectsBadRecords(t *testing.T) {
	l := NewLedger()
	testAccount(t, l, "a1", "Checking", "CHF", KindCash)

	if err := l.AddTransaction(Transaction{ID: "t1", AccountID: "a1", Kind: IncomePersonal}); err == nil {
		t.Error("expected an error for a zero date")
	}
	tx := NewTransaction("a1", MustParse("2024-01-01"), "salary", d(1), d(1))
	if err := l.AddTransaction(tx); err == nil {
		t.Error("expected an error for an unknown kind")
	}
	n := 0
	for range l.Transactions() {
		n++
	}
	if n != 0 {
		t.Errorf("got %d transactions, want 0: rejected records must not be stored", n)
	}
}

func TestAddAccountRejectsUnknownKind(t *testing.T) {
	l := NewLedger()
	err := l.AddAccount(Account{ID: "a1", Name: "Checking", Currency: "CHF", Kind: "checking"})
	if err == nil {
		t.Fatal("expected an error for an out-of-set account kind")
	}
	if _, ok := l.Account("a1"); ok {
		t.Error("Account(a1) found, want the record rejected")
	}
}

func TestAddTransactionZeroesTransferBaseAmount(t *testing.T) {
	l := NewLedger()
	testAccount(t, l, "a1", "Checking", "CHF", KindCash)
	testAccount(t, l, "a2", "Broker", "CHF", KindInvest)
	post(t, l, "a1", "2024-01-05", IncomePersonal, 1000)
	// A transfer decoded with a stray base amount must not distort the
	// base-currency aggregates: transfers net to zero system-wide.
	postBase(t, l, "a1", "2024-01-10", TransferInvest, -300, -300)
	postBase(t, l, "a2", "2024-01-10", TransferInvest, 300, 300)

	for tx := range l.Transactions() {
		if tx.Kind.IsTransfer() && !tx.BaseAmount.IsZero() {
			t.Errorf("transfer %s stored with base amount %v, want 0", tx.ID, tx.BaseAmount)
		}
	}
	asOf := MustParse("2024-12-31")
	if got := l.GroupBaseBalance(Liquidity, asOf); !got.Equal(d(1000)) {
		t.Errorf("GroupBaseBalance(Liquidity) = %v, want 1000", got)
	}
	if got := l.GroupBaseBalance(Wealth, asOf); !got.IsZero() {
		t.Errorf("GroupBaseBalance(Wealth) = %v, want 0", got)
	}
}

func TestGroupBaseBalance(t *testing.T) {
	l := NewLedger()
	testAccount(t, l, "a1", "Checking", "CHF", KindCash)
	testAccount(t, l, "a2", "Wallet", "CHF", KindPocket)
	testAccount(t, l, "a3", "Broker", "USD", KindInvest)
	if err := l.AddAccount(Account{ID: "a4", Name: "Old", Currency: "CHF", Kind: KindCash, Hidden: true}); err != nil {
		t.Fatal(err)
	}

	post(t, l, "a1", "2024-01-05", IncomePersonal, 1000)
	post(t, l, "a2", "2024-01-06", ExpensePersonal, 40)
	postBase(t, l, "a3", "2024-01-07", IncomePersonal, 500, 450)
	post(t, l, "a4", "2024-01-08", IncomePersonal, 9999) // hidden, ignored
	post(t, l, "dangling", "2024-01-09", IncomePersonal, 777)

	asOf := MustParse("2024-12-31")
	if got := l.GroupBaseBalance(Liquidity, asOf); !got.Equal(d(960)) {
		t.Errorf("GroupBaseBalance(Liquidity) = %v, want 960", got)
	}
	if got := l.GroupBaseBalance(Wealth, asOf); !got.Equal(d(450)) {
		t.Errorf("GroupBaseBalance(Wealth) = %v, want 450", got)
	}
}

func TestAddAccountReplacesOnSameID(t *testing.T) {
	l := NewLedger()
	testAccount(t, l, "a1", "Checking", "CHF", KindCash)
	testAccount(t, l, "a1", "Renamed", "CHF", KindCash)

	account, ok := l.Account("a1")
	if !ok || account.Name != "Renamed" {
		t.Errorf("Account(a1) = %+v, want the replacing record", account)
	}
	n := 0
	for range l.Accounts() {
		n++
	}
	if n != 1 {
		t.Errorf("got %d accounts, want 1", n)
	}
}
