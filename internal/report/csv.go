package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/cleared-dev/mps7/internal/mps7"
)

// CSVHeader is the header row written by WriteCSV.
const CSVHeader = "offset,kind,timestamp,unix,user_id,amount"

const (
	numFields    = 6
	colOffset    = 0
	colKind      = 1
	colTimestamp = 2
	colUnix      = 3
	colUserID    = 4
	colAmount    = 5
)

// WriteCSV writes one row per entry, with header. Autopay rows have an
// empty amount.
func WriteCSV(w io.Writer, entries []mps7.LogEntry, loc *time.Location) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(CSVHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e, loc)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalEntry converts an entry to a CSV row.
func MarshalEntry(e mps7.LogEntry, loc *time.Location) []string {
	if loc == nil {
		loc = time.UTC
	}
	row := make([]string, numFields)
	row[colOffset] = strconv.Itoa(e.Offset)
	row[colKind] = e.Kind.String()
	row[colTimestamp] = e.Time().In(loc).Format(time.RFC3339)
	row[colUnix] = strconv.FormatUint(uint64(e.Timestamp), 10)
	row[colUserID] = strconv.FormatUint(e.UserID, 10)
	if e.HasAmount {
		row[colAmount] = e.Amount.String()
	}
	return row
}
