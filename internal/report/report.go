// Package report renders parsed MPS7 logs as text, CSV or JSON.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/cleared-dev/mps7/internal/config"
	"github.com/cleared-dev/mps7/internal/ledger"
)

// Options controls what a report contains.
type Options struct {
	Location     *time.Location // timestamps are shown in this zone; nil means UTC
	ShowEntries  bool
	BalanceUsers []uint64
}

func (o Options) location() *time.Location {
	if o.Location == nil {
		return time.UTC
	}
	return o.Location
}

// Write renders res in the given format.
func Write(w io.Writer, format string, res *ledger.Result, opts Options) error {
	switch format {
	case config.FormatText:
		return WriteText(w, res, opts)
	case config.FormatCSV:
		return WriteCSV(w, res.Entries, opts.location())
	case config.FormatJSON:
		return WriteJSON(w, res, opts)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}
