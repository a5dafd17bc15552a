package bilancio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// RecordType discriminates the JSONL lines of a snapshot file.
type RecordType string

const (
	RecAccount    RecordType = "account"
	RecTx         RecordType = "transaction"
	RecObligation RecordType = "obligation"
	RecInvestment RecordType = "investment"
	RecTrend      RecordType = "trend"
)

// DecodeLedger decodes a snapshot from a stream of JSONL data: one JSON
// object per line, discriminated by its "record" field, in any order.
//
// A malformed line or an invalid record is skipped with a warning rather
// than aborting the decode; the returned ledger is the best-effort snapshot
// of the remaining records, and Ledger.Skipped reports how many were
// dropped. Only an unreadable stream is an error.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Record RecordType `json:"record"`
		}
		if err := json.Unmarshal(line, &identifier); err != nil {
			ledger.skipped++
			log.Warn().Int("line", lineNo).Err(err).Msg("skipping unreadable snapshot line")
			continue
		}

		var err error
		switch identifier.Record {
		case RecAccount:
			var a Account
			if err = json.Unmarshal(line, &a); err == nil {
				err = ledger.AddAccount(a)
			}
		case RecTx:
			var tx Transaction
			if err = json.Unmarshal(line, &tx); err == nil {
				err = ledger.AddTransaction(tx)
			}
		case RecObligation:
			var o RecurringObligation
			if err = json.Unmarshal(line, &o); err == nil {
				err = ledger.AddObligation(o)
			}
		case RecInvestment:
			var inv Investment
			if err = json.Unmarshal(line, &inv); err == nil {
				err = ledger.AddInvestment(inv)
			}
		case RecTrend:
			var tr InvestmentTrend
			if err = json.Unmarshal(line, &tr); err == nil {
				err = ledger.AddTrend(tr)
			}
		default:
			err = fmt.Errorf("unknown record type %q", identifier.Record)
		}
		if err != nil {
			ledger.skipped++
			log.Warn().Int("line", lineNo).Err(err).Msg("skipping invalid snapshot record")
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read snapshot: %w", err)
	}
	return ledger, nil
}

// EncodeLedger writes the snapshot in canonical JSONL form: accounts
// first, then chronological transactions, obligations, investments and
// trends, with a stable field order on every line.
func (l *Ledger) EncodeLedger(w io.Writer) error {
	write := func(record RecordType, build func(*jsonObjectWriter)) error {
		var jw jsonObjectWriter
		jw.Append("record", record)
		build(&jw)
		b, err := jw.MarshalJSON()
		if err != nil {
			return err
		}
		if _, err := w.Write(append(b, '\n')); err != nil {
			return err
		}
		return nil
	}

	for a := range l.Accounts() {
		err := write(RecAccount, func(jw *jsonObjectWriter) {
			jw.Append("id", a.ID)
			jw.Append("name", a.Name)
			jw.Append("currency", a.Currency)
			jw.Append("kind", a.Kind)
			jw.Optional("inactive", a.Inactive)
			jw.Optional("hidden", a.Hidden)
		})
		if err != nil {
			return fmt.Errorf("could not encode account %q: %w", a.Name, err)
		}
	}
	for tx := range l.Transactions() {
		err := write(RecTx, func(jw *jsonObjectWriter) {
			jw.Append("id", tx.ID)
			jw.Append("account", tx.AccountID)
			jw.Append("date", tx.Date)
			jw.Append("kind", tx.Kind)
			jw.Append("amount", tx.Amount)
			jw.Append("baseAmount", tx.BaseAmount)
			jw.Optional("category", tx.CategoryID)
			jw.Optional("description", tx.Description)
			jw.Optional("obligation", tx.ObligationID)
		})
		if err != nil {
			return fmt.Errorf("could not encode transaction %q: %w", tx.ID, err)
		}
	}
	for o := range l.Obligations() {
		err := write(RecObligation, func(jw *jsonObjectWriter) {
			jw.Append("id", o.ID)
			jw.Append("name", o.Name)
			jw.Append("due", o.Due)
			jw.Append("kind", o.Kind)
			jw.Append("amount", o.Amount)
			jw.Append("currency", o.Currency)
			jw.Optional("category", o.CategoryID)
			jw.Optional("fundsSetAside", o.FundsSetAside)
		})
		if err != nil {
			return fmt.Errorf("could not encode obligation %q: %w", o.Name, err)
		}
	}
	for inv := range l.Investments() {
		err := write(RecInvestment, func(jw *jsonObjectWriter) {
			jw.Append("id", inv.ID)
			jw.Append("name", inv.Name)
			jw.Append("currency", inv.Currency)
			jw.Optional("retirement", inv.Retirement)
			jw.Optional("note", inv.Note)
		})
		if err != nil {
			return fmt.Errorf("could not encode investment %q: %w", inv.Name, err)
		}
		for _, tr := range l.Trends(inv.ID) {
			err := write(RecTrend, func(jw *jsonObjectWriter) {
				jw.Append("id", tr.ID)
				jw.Append("investment", tr.InvestmentID)
				jw.Append("date", tr.Date)
				jw.Append("value", tr.Value)
				jw.Append("cashFlow", tr.CashFlow)
			})
			if err != nil {
				return fmt.Errorf("could not encode trend %q: %w", tr.ID, err)
			}
		}
	}
	return nil
}
