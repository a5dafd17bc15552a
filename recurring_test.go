package bilancio

import (
	"testing"
	"time"
)

func obligation(t *testing.T, l *Ledger, id, name, due string, kind ObligationKind, amount float64) RecurringObligation {
	t.Helper()
	o := RecurringObligation{
		ID:       id,
		Name:     name,
		Due:      MustParse(due),
		Kind:     kind,
		Amount:   d(amount),
		Currency: "CHF",
	}
	if err := l.AddObligation(o); err != nil {
		t.Fatalf("AddObligation(%q) error = %v", name, err)
	}
	return o
}

func TestReconcileStatuses(t *testing.T) {
	// On September 10, an unpaid Rent due on the 1st is overdue, insurance
	// due on the 25th is still pending, and the paid internet bill is paid.
	l := NewLedger()
	testAccount(t, l, "a1", "Checking", "CHF", KindCash)
	obligation(t, l, "o1", "Rent", "2025-09-01", ObligationEssential, 1500)
	obligation(t, l, "o2", "Insurance", "2025-09-25", ObligationEssential, 120)
	obligation(t, l, "o3", "Internet", "2025-09-05", ObligationEssential, 60)

	payment := NewTransaction("a1", MustParse("2025-09-04"), ExpenseEssential, d(59.9), d(59.9))
	payment.ObligationID = "o3"
	if err := l.AddTransaction(payment); err != nil {
		t.Fatal(err)
	}

	report := l.Reconcile(2025, time.September, MustParse("2025-09-10"))
	if len(report.Instances) != 3 {
		t.Fatalf("got %d instances, want 3", len(report.Instances))
	}

	byName := make(map[string]ObligationInstance)
	for _, in := range report.Instances {
		byName[in.Obligation.Name] = in
	}

	if got := byName["Rent"].Status; got != StatusOverdue {
		t.Errorf("Rent status = %q, want overdue", got)
	}
	if got := byName["Insurance"].Status; got != StatusPending {
		t.Errorf("Insurance status = %q, want pending", got)
	}
	internet := byName["Internet"]
	if internet.Status != StatusPaid {
		t.Errorf("Internet status = %q, want paid", internet.Status)
	}
	// The actual posted amount wins over the planned one.
	assertAmount(t, "Internet amount", internet.Amount, 59.9)
	if internet.Matched == nil || internet.Matched.ID != payment.ID {
		t.Error("Internet must carry the matching posting")
	}
}

func TestReconcileCompleteness(t *testing.T) {
	// Every instance has exactly one of the three statuses, and the
	// readiness of non-transfer instances is never empty.
	l := NewLedger()
	testAccount(t, l, "a1", "Checking", "CHF", KindCash)
	obligation(t, l, "o1", "Rent", "2025-09-01", ObligationEssential, 1500)
	funded := RecurringObligation{
		ID: "o2", Name: "Insurance", Due: MustParse("2025-09-25"),
		Kind: ObligationEssential, Amount: d(120), Currency: "CHF",
		FundsSetAside: true,
	}
	if err := l.AddObligation(funded); err != nil {
		t.Fatal(err)
	}
	obligation(t, l, "o3", "Savings", "2025-09-28", ObligationTransfer, 500)

	report := l.Reconcile(2025, time.September, MustParse("2025-09-10"))
	for _, in := range report.Instances {
		switch in.Status {
		case StatusPaid, StatusPending, StatusOverdue:
		default:
			t.Errorf("%s: status %q outside the closed set", in.Obligation.Name, in.Status)
		}
		if in.Obligation.Kind == ObligationTransfer {
			if in.Readiness != "" {
				t.Errorf("%s: transfer obligations carry no readiness, got %q", in.Obligation.Name, in.Readiness)
			}
			continue
		}
		switch in.Readiness {
		case AwaitingFunds, Ready, Paid:
		default:
			t.Errorf("%s: readiness %q outside the closed set", in.Obligation.Name, in.Readiness)
		}
	}

	byName := make(map[string]ObligationInstance)
	for _, in := range report.Instances {
		byName[in.Obligation.Name] = in
	}
	if got := byName["Rent"].Readiness; got != AwaitingFunds {
		t.Errorf("Rent readiness = %q, want awaiting-funds", got)
	}
	if got := byName["Insurance"].Readiness; got != Ready {
		t.Errorf("Insurance readiness = %q, want ready", got)
	}
}

func TestReconcileKindBuckets(t *testing.T) {
	// A transfer posting must not settle an expense obligation sharing the
	// same id, and vice versa.
	l := NewLedger()
	testAccount(t, l, "a1", "Checking", "CHF", KindCash)
	obligation(t, l, "o1", "Rent", "2025-09-01", ObligationEssential, 1500)

	wrong := NewTransaction("a1", MustParse("2025-09-01"), TransferInvest, d(1500), d(0))
	wrong.ObligationID = "o1"
	if err := l.AddTransaction(wrong); err != nil {
		t.Fatal(err)
	}

	report := l.Reconcile(2025, time.September, MustParse("2025-09-10"))
	if got := report.Instances[0].Status; got != StatusOverdue {
		t.Errorf("status = %q, want overdue: a transfer cannot settle an expense bill", got)
	}
}

func TestReconcileSelectsMonth(t *testing.T) {
	l := NewLedger()
	obligation(t, l, "o1", "Rent", "2025-08-01", ObligationEssential, 1500)
	obligation(t, l, "o2", "Rent", "2025-09-01", ObligationEssential, 1500)

	report := l.Reconcile(2025, time.September, MustParse("2025-09-10"))
	if len(report.Instances) != 1 {
		t.Fatalf("got %d instances, want only September's", len(report.Instances))
	}
	if got := report.Instances[0].Obligation.ID; got != "o2" {
		t.Errorf("reconciled obligation = %q, want o2", got)
	}
}

func TestReconcileDueTodayIsNotOverdue(t *testing.T) {
	l := NewLedger()
	obligation(t, l, "o1", "Rent", "2025-09-10", ObligationEssential, 1500)

	report := l.Reconcile(2025, time.September, MustParse("2025-09-10"))
	if got := report.Instances[0].Status; got != StatusPending {
		t.Errorf("status = %q, want pending on the due date itself", got)
	}
}
