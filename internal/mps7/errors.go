package mps7

import (
	"errors"
	"fmt"
)

var (
	// ErrBadMagic means the buffer does not start with "MPS7".
	ErrBadMagic = errors.New("not an MPS7 log: bad magic")
	// ErrTruncated means the buffer ends inside the header.
	ErrTruncated = errors.New("truncated header")
	// ErrTruncatedRecord means the buffer ends inside a record.
	ErrTruncatedRecord = errors.New("truncated record")
	// ErrUnknownKind is matched by every *UnknownKindError.
	ErrUnknownKind = errors.New("unknown record kind")
	// ErrInvalidAmount means a debit or credit amount is NaN or infinite.
	ErrInvalidAmount = errors.New("invalid amount")
)

// UnknownKindError reports a tag byte outside 0..3.
type UnknownKindError struct {
	Tag int8
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown record kind %d", e.Tag)
}

// Is makes errors.Is(err, ErrUnknownKind) true.
func (e *UnknownKindError) Is(target error) bool {
	return target == ErrUnknownKind
}

// RecordError ties a decoding failure to the offset of the record.
type RecordError struct {
	Offset int
	Err    error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record at byte %d: %v", e.Offset, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
