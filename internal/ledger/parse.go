package ledger

import (
	"fmt"

	"github.com/cleared-dev/mps7/internal/mps7"
)

// Result is everything decoded from one log.
type Result struct {
	Header  mps7.Header
	Entries []mps7.LogEntry
	State   *State
}

// Parse validates buf, decodes every record and aggregates them in one
// pass. On error no partial result is returned.
func Parse(buf []byte) (*Result, error) {
	w, err := mps7.NewWalker(buf)
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	res := &Result{Header: w.Header(), State: NewState()}
	for w.Next() {
		e := w.Entry()
		res.State.Apply(e)
		res.Entries = append(res.Entries, e)
	}
	if err := w.Err(); err != nil {
		return nil, fmt.Errorf("decoding log: %w", err)
	}
	return res, nil
}
