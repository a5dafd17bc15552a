package bilancio

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSignedAmount(t *testing.T) {
	// Whatever sign the author wrote, expenses decrease and incomes
	// increase; transfers and adjustments are kept as stored.
	tests := []struct {
		kind   TxKind
		amount float64
		want   float64
	}{
		{ExpensePersonal, 50, -50},
		{ExpensePersonal, -50, -50},
		{ExpenseEssential, 1500, -1500},
		{ExpenseWork, 20, -20},
		{IncomePersonal, 3000, 3000},
		{IncomePersonal, -3000, 3000},
		{IncomeEssential, 100, 100},
		{IncomeWork, 20, 20},
		{IncomePension, 400, 400},
		{Transfer, -200, -200},
		{TransferInvest, 500, 500},
		{Adjustment, -3.5, -3.5},
		{Adjustment, 3.5, 3.5},
	}
	for _, tt := range tests {
		tx := Transaction{Kind: tt.kind, Amount: d(tt.amount)}
		if got := tx.SignedAmount(); !got.Equal(d(tt.want)) {
			t.Errorf("SignedAmount(%s, %v) = %v, want %v", tt.kind, tt.amount, got, tt.want)
		}
	}
}

func TestSignedBaseAmount(t *testing.T) {
	tx := Transaction{Kind: ExpenseEssential, Amount: d(100), BaseAmount: d(95)}
	if got := tx.SignedBaseAmount(); !got.Equal(d(-95)) {
		t.Errorf("SignedBaseAmount() = %v, want -95", got)
	}
	if got := tx.SignedAmount(); !got.Equal(d(-100)) {
		t.Errorf("SignedAmount() = %v, want -100", got)
	}
}

func TestKindPredicates(t *testing.T) {
	for kind := range knownKinds {
		n := 0
		if kind.IsExpense() {
			n++
		}
		if kind.IsIncome() {
			n++
		}
		if kind.IsTransfer() {
			n++
		}
		if kind == Adjustment {
			if n != 0 {
				t.Errorf("%s should match no predicate", kind)
			}
			continue
		}
		if n != 1 {
			t.Errorf("%s matches %d predicates, want exactly 1", kind, n)
		}
	}
	if !IncomeWork.IsWork() || !ExpenseWork.IsWork() {
		t.Error("work kinds must report IsWork")
	}
	if IncomePersonal.IsWork() {
		t.Error("income_personal must not report IsWork")
	}
}

func TestIsOpeningBalanceMarker(t *testing.T) {
	tests := []struct {
		description string
		want        bool
	}{
		{"Saldo iniziale", true},
		{"SALDO INIZIALE 2023", true},
		{"apertura conto", true},
		{"Apertura", true},
		{"riapertura pratica", true}, // contains "apertura"
		{"groceries", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsOpeningBalanceMarker(tt.description); got != tt.want {
			t.Errorf("IsOpeningBalanceMarker(%q) = %v, want %v", tt.description, got, tt.want)
		}
	}
}

func TestNewTransaction(t *testing.T) {
	tx := NewTransaction("a1", MustParse("2025-01-05"), IncomePersonal, decimal.NewFromInt(1000), decimal.NewFromInt(1000))
	if tx.ID == "" {
		t.Error("NewTransaction must mint an id")
	}
	other := NewTransaction("a1", MustParse("2025-01-05"), IncomePersonal, decimal.NewFromInt(1000), decimal.NewFromInt(1000))
	if tx.ID == other.ID {
		t.Error("two transactions must not share an id")
	}
}
