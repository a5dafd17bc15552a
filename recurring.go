package bilancio

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ObligationKind mirrors transaction semantics for planned lines.
type ObligationKind string

const (
	// ObligationEssential is a planned essential expense.
	ObligationEssential ObligationKind = "essential"
	// ObligationTransfer is a planned internal move.
	ObligationTransfer ObligationKind = "transfer"
)

// RecurringObligation is one expected occurrence of a recurring line item.
// The same name is reused across months and years to represent the same
// line; each (name, month, year) has its own definition row, and actual
// postings link back to that row by ID.
type RecurringObligation struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// Due places the obligation in its (year, month) bucket and decides
	// overdue status; it is not a payment deadline to the day.
	Due        Date            `json:"due"`
	Kind       ObligationKind  `json:"kind"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	CategoryID string          `json:"category,omitempty"`
	// FundsSetAside records the first step of the essential-expense
	// workflow: money reserved, payment still to come.
	FundsSetAside bool `json:"fundsSetAside,omitempty"`
}

// NewObligation creates an obligation row with a fresh identifier.
func NewObligation(name string, due Date, kind ObligationKind, amount decimal.Decimal, currency string) RecurringObligation {
	return RecurringObligation{
		ID:       uuid.NewString(),
		Name:     name,
		Due:      due,
		Kind:     kind,
		Amount:   amount,
		Currency: currency,
	}
}

// ObligationStatus is the payment status of an obligation instance.
type ObligationStatus string

const (
	StatusPaid    ObligationStatus = "paid"
	StatusPending ObligationStatus = "pending"
	StatusOverdue ObligationStatus = "overdue"
)

// Readiness is the tri-state of the essential-expense workflow: set funds
// aside, then pay. Transfers skip this workflow and carry no readiness.
type Readiness string

const (
	AwaitingFunds Readiness = "awaiting-funds"
	Ready         Readiness = "ready"
	Paid          Readiness = "paid"
)

// ObligationInstance is one reconciled obligation row: its definition, the
// matched posting if any, and the derived status.
type ObligationInstance struct {
	Obligation RecurringObligation
	Status     ObligationStatus
	// Readiness is empty for transfer obligations.
	Readiness Readiness
	// Matched is the posting that settles the obligation, if any.
	Matched *Transaction
	// Amount is the actual posted amount when matched, the planned amount
	// otherwise. Plans are estimates; postings are ground truth.
	Amount Money
}

// RecurrenceReport reconciles the recurring obligations of one month
// against the actual postings.
type RecurrenceReport struct {
	Year      int
	Month     time.Month
	Today     Date
	Instances []ObligationInstance
}

// kindBucket collapses transaction kinds for obligation matching: a
// matched payment's kind is not guaranteed to equal the obligation's kind
// exactly, so every expense and income kind folds into "expense" while
// transfers stay distinct.
func kindBucket(kind TxKind) string {
	if kind.IsTransfer() {
		return "transfer"
	}
	return "expense"
}

func obligationBucket(kind ObligationKind) string {
	if kind == ObligationTransfer {
		return "transfer"
	}
	return "expense"
}

// Reconcile matches the recurring obligations expected in (year, month)
// with the actual postings, deriving a status for every instance. The
// reference date decides overdue status and is passed explicitly.
func (l *Ledger) Reconcile(year int, month time.Month, today Date) *RecurrenceReport {
	report := &RecurrenceReport{Year: year, Month: month, Today: today}

	// Obligation rows expected that month, by name: the same recurring
	// name resolves to the specific definition row for this bucket.
	byName := make(map[string]RecurringObligation)
	for o := range l.Obligations() {
		if o.Due.Year() == year && o.Due.Month() == month {
			byName[o.Name] = o
		}
	}

	// Posted transactions by (obligation ID, kind bucket) for O(1) lookup.
	type matchKey struct {
		obligation string
		bucket     string
	}
	posted := make(map[matchKey]Transaction)
	for tx := range l.Transactions() {
		if tx.ObligationID == "" {
			continue
		}
		posted[matchKey{tx.ObligationID, kindBucket(tx.Kind)}] = tx
	}

	for _, o := range byName {
		instance := ObligationInstance{
			Obligation: o,
			Amount:     M(o.Amount, o.Currency),
		}
		if tx, ok := posted[matchKey{o.ID, obligationBucket(o.Kind)}]; ok {
			instance.Status = StatusPaid
			instance.Matched = &tx
			currency := o.Currency
			if account, ok := l.Account(tx.AccountID); ok {
				currency = account.Currency
			}
			instance.Amount = M(tx.Amount, currency)
		} else if o.Due.Before(today) {
			instance.Status = StatusOverdue
		} else {
			instance.Status = StatusPending
		}

		if o.Kind != ObligationTransfer {
			switch {
			case instance.Status == StatusPaid:
				instance.Readiness = Paid
			case o.FundsSetAside:
				instance.Readiness = Ready
			default:
				instance.Readiness = AwaitingFunds
			}
		}
		report.Instances = append(report.Instances, instance)
	}
	slices.SortFunc(report.Instances, func(a, b ObligationInstance) int {
		return strings.Compare(a.Obligation.Name, b.Obligation.Name)
	})
	return report
}
