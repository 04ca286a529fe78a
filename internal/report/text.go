package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cleared-dev/mps7/internal/ledger"
	"github.com/cleared-dev/mps7/internal/mps7"
)

const (
	rule       = "---------------------------------------------------------------------------"
	tableHead  = "byte  | kind          | timestamp           | user_id              | amt"
	timeLayout = "2006-01-02 15:04:05"
)

// WriteText renders the entry table, the totals block and the requested
// balances.
func WriteText(w io.Writer, res *ledger.Result, opts Options) error {
	var b strings.Builder

	if opts.ShowEntries {
		b.WriteString(rule + "\n" + tableHead + "\n" + rule + "\n")
		for _, e := range res.Entries {
			b.WriteString(formatRow(e, opts))
			b.WriteByte('\n')
		}
	}

	s := res.State
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "   Total debit amount | $%s\n", s.Totals.Debit)
	fmt.Fprintf(&b, "  Total credit amount | $%s\n", s.Totals.Credit)
	fmt.Fprintf(&b, "Total autopay started | %d\n", s.Autopay.Start)
	fmt.Fprintf(&b, "  Total autopay ended | %d\n", s.Autopay.End)
	b.WriteString(rule + "\n")

	for _, id := range opts.BalanceUsers {
		b.WriteString(FormatBalance(s, id))
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// FormatBalance describes one user's balance, or says the user is unknown.
func FormatBalance(s *ledger.State, id uint64) string {
	bal, ok := s.Balance(id)
	if !ok {
		return fmt.Sprintf("User %d not found", id)
	}
	return fmt.Sprintf("Balance for User %d is $%s", id, bal)
}

func formatRow(e mps7.LogEntry, opts Options) string {
	amount := ""
	if e.HasAmount {
		amount = e.Amount.String()
	}
	return fmt.Sprintf("%5d | %-13s | %s | %-20s | %6s",
		e.Offset,
		e.Kind,
		e.Time().In(opts.location()).Format(timeLayout),
		strconv.FormatUint(e.UserID, 10),
		amount,
	)
}
