package mps7

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/cleared-dev/mps7/internal/currency"
)

// Kind is the record type selected by the tag byte.
type Kind int8

const (
	KindDebit        Kind = 0
	KindCredit       Kind = 1
	KindStartAutopay Kind = 2
	KindEndAutopay   Kind = 3
)

// Field widths in bytes.
const (
	tagSize       = 1
	timestampSize = 4
	userIDSize    = 8
	amountSize    = 8

	// MinRecordSize is the size of an autopay record, the shortest kind.
	MinRecordSize = tagSize + timestampSize + userIDSize
	// MaxRecordSize is the size of a debit or credit record.
	MaxRecordSize = MinRecordSize + amountSize
)

// DecodeKind interprets a tag byte as a signed 8-bit kind.
func DecodeKind(tag byte) (Kind, error) {
	switch k := Kind(int8(tag)); k {
	case KindDebit, KindCredit, KindStartAutopay, KindEndAutopay:
		return k, nil
	default:
		return 0, &UnknownKindError{Tag: int8(tag)}
	}
}

// String returns the kind's name as used in reports.
func (k Kind) String() string {
	switch k {
	case KindDebit:
		return "Debit"
	case KindCredit:
		return "Credit"
	case KindStartAutopay:
		return "StartAutopay"
	case KindEndAutopay:
		return "EndAutopay"
	default:
		return fmt.Sprintf("Kind(%d)", int8(k))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// HasAmount reports whether records of this kind carry an amount field.
func (k Kind) HasAmount() bool {
	switch k {
	case KindDebit, KindCredit:
		return true
	default:
		return false
	}
}

// Size is the total encoded length of a record of this kind. It is the only
// thing the walker uses to find the next record.
func (k Kind) Size() int {
	if k.HasAmount() {
		return MaxRecordSize
	}
	return MinRecordSize
}

// LogEntry is one decoded record.
type LogEntry struct {
	Offset    int // byte position of the tag
	Kind      Kind
	Timestamp uint32 // seconds since the Unix epoch
	UserID    uint64
	Amount    currency.Currency // only meaningful when HasAmount
	HasAmount bool
}

// Time returns the timestamp as a UTC time.
func (e LogEntry) Time() time.Time {
	return time.Unix(int64(e.Timestamp), 0).UTC()
}

// Size is the encoded length of the entry.
func (e LogEntry) Size() int {
	return e.Kind.Size()
}

// Decode builds a LogEntry from its raw fields. amount is ignored for
// autopay kinds and may be nil.
func Decode(offset int, tag, timestamp, userID, amount []byte) (LogEntry, error) {
	kind, err := DecodeKind(tag[0])
	if err != nil {
		return LogEntry{}, err
	}

	e := LogEntry{
		Offset:    offset,
		Kind:      kind,
		Timestamp: binary.BigEndian.Uint32(timestamp),
		UserID:    binary.BigEndian.Uint64(userID),
	}

	if kind.HasAmount() {
		f := math.Float64frombits(binary.BigEndian.Uint64(amount))
		amt, err := currency.FromFloat64(f)
		if err != nil {
			return LogEntry{}, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
		}
		e.Amount = amt
		e.HasAmount = true
	}
	return e, nil
}
