package bilancio

import (
	"strings"
	"testing"
)

func TestMoneyString(t *testing.T) {
	// Formatting is delegated to the currency tables; assert the parts
	// under our control rather than the exact locale layout.
	if got := M(1234.56, "USD"); !strings.Contains(got.String(), "1,234.56") {
		t.Errorf("String() = %q, want the grouped amount in it", got.String())
	}
	if got := M(-12.5, "USD"); !strings.Contains(got.String(), "12.50") {
		t.Errorf("String() = %q, want two fraction digits", got.String())
	}
}

func TestMoneySignedString(t *testing.T) {
	if got := M(0, "CHF").SignedString(); got != "-" {
		t.Errorf("SignedString(0) = %q, want %q", got, "-")
	}
	if got := M(5, "CHF").SignedString(); got[0] != '+' {
		t.Errorf("SignedString(5) = %q, want a + prefix", got)
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a, b := M(10.5, "CHF"), M(2.5, "CHF")
	if got := a.Add(b); !got.Equal(M(13, "CHF")) {
		t.Errorf("Add() = %v, want 13 CHF", got)
	}
	if got := a.Sub(b); !got.Equal(M(8, "CHF")) {
		t.Errorf("Sub() = %v, want 8 CHF", got)
	}
	if got := a.Neg(); !got.Equal(M(-10.5, "CHF")) {
		t.Errorf("Neg() = %v, want -10.5 CHF", got)
	}
}

func TestMoneyWeakCurrency(t *testing.T) {
	// The empty currency is weak: it adopts the other operand's currency.
	got := M(5, "").Add(M(10, "CHF"))
	if got.Currency() != "CHF" || !got.Amount().Equal(d(15)) {
		t.Errorf("Add() = %v, want 15 CHF", got)
	}
}

func TestMoneyMismatchedCurrencyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("adding CHF and EUR must panic")
		}
	}()
	M(1, "CHF").Add(M(1, "EUR"))
}
