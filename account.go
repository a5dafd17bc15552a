package bilancio

import (
	"fmt"

	"github.com/google/uuid"
)

// AccountKind is the closed set of account categories.
type AccountKind string

const (
	KindCash    AccountKind = "cash"
	KindPocket  AccountKind = "pocket"
	KindInvest  AccountKind = "invest"
	KindPension AccountKind = "pension"
)

// ParseAccountKind parses a string into an AccountKind.
func ParseAccountKind(s string) (AccountKind, error) {
	switch AccountKind(s) {
	case KindCash, KindPocket, KindInvest, KindPension:
		return AccountKind(s), nil
	default:
		return "", fmt.Errorf("unknown account kind: %q", s)
	}
}

// AccountGroup partitions accounts for aggregate computations.
type AccountGroup int

const (
	// Liquidity groups the accounts of kind cash or pocket.
	Liquidity AccountGroup = iota
	// Wealth groups the accounts of kind invest or pension.
	Wealth
)

func (g AccountGroup) String() string {
	switch g {
	case Liquidity:
		return "liquidity"
	case Wealth:
		return "wealth"
	default:
		return "unknown"
	}
}

// Contains reports whether the account kind belongs to the group.
func (g AccountGroup) Contains(kind AccountKind) bool {
	switch g {
	case Liquidity:
		return kind == KindCash || kind == KindPocket
	case Wealth:
		return kind == KindInvest || kind == KindPension
	default:
		return false
	}
}

// Account is a user-held account. Its currency is immutable once
// transactions exist against it; that rule is assumed, not enforced here.
type Account struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Currency string      `json:"currency"`
	Kind     AccountKind `json:"kind"`
	Inactive bool        `json:"inactive,omitempty"`
	// Hidden excludes the account from aggregate overviews.
	Hidden bool `json:"hidden,omitempty"`
}

// NewAccount creates an account with a fresh identifier.
func NewAccount(name, currency string, kind AccountKind) Account {
	return Account{
		ID:       uuid.NewString(),
		Name:     name,
		Currency: currency,
		Kind:     kind,
	}
}
