package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/cleared-dev/mps7/internal/currency"
	"github.com/cleared-dev/mps7/internal/ledger"
)

// Summary is the JSON form of a parsed log.
type Summary struct {
	Version      byte              `json:"version"`
	Entries      []SummaryEntry    `json:"entries,omitempty"`
	TotalDebit   currency.Currency `json:"total_debit"`
	TotalCredit  currency.Currency `json:"total_credit"`
	AutopayStart uint64            `json:"autopay_started"`
	AutopayEnd   uint64            `json:"autopay_ended"`
	Balances     []SummaryBalance  `json:"balances,omitempty"`
}

// SummaryEntry is one record in a Summary.
type SummaryEntry struct {
	Offset    int                `json:"offset"`
	Kind      string             `json:"kind"`
	Timestamp time.Time          `json:"timestamp"`
	UserID    string             `json:"user_id"` // string: ids exceed 2^53
	Amount    *currency.Currency `json:"amount,omitempty"`
}

// SummaryBalance is one requested user balance.
type SummaryBalance struct {
	UserID  string            `json:"user_id"`
	Found   bool              `json:"found"`
	Credit  currency.Currency `json:"credit"`
	Debit   currency.Currency `json:"debit"`
	Balance currency.Currency `json:"balance"`
}

// NewSummary builds the JSON document for res.
func NewSummary(res *ledger.Result, opts Options) Summary {
	s := res.State
	sum := Summary{
		Version:      res.Header.Version,
		TotalDebit:   s.Totals.Debit,
		TotalCredit:  s.Totals.Credit,
		AutopayStart: s.Autopay.Start,
		AutopayEnd:   s.Autopay.End,
	}

	if opts.ShowEntries {
		sum.Entries = make([]SummaryEntry, len(res.Entries))
		for i, e := range res.Entries {
			ej := SummaryEntry{
				Offset:    e.Offset,
				Kind:      e.Kind.String(),
				Timestamp: e.Time().In(opts.location()),
				UserID:    strconv.FormatUint(e.UserID, 10),
			}
			if e.HasAmount {
				amt := e.Amount
				ej.Amount = &amt
			}
			sum.Entries[i] = ej
		}
	}

	for _, id := range opts.BalanceUsers {
		bj := SummaryBalance{UserID: strconv.FormatUint(id, 10)}
		if u, ok := s.User(id); ok {
			bj.Found = true
			bj.Credit = u.CreditSum
			bj.Debit = u.DebitSum
			bj.Balance = u.Balance()
		}
		sum.Balances = append(sum.Balances, bj)
	}
	return sum
}

// WriteJSON writes an indented Summary.
func WriteJSON(w io.Writer, res *ledger.Result, opts Options) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewSummary(res, opts)); err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}
	return nil
}
