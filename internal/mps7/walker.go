package mps7

import "iter"

// Walker decodes the records of one buffer in order. It is not restartable
// and not safe for concurrent use.
type Walker struct {
	buf    []byte
	pos    int
	header Header
	entry  LogEntry
	err    error
	done   bool
}

// NewWalker validates the header of buf and returns a Walker positioned at
// the first record. buf must not be modified while the Walker is in use.
func NewWalker(buf []byte) (*Walker, error) {
	h, err := ParseHeader(buf)
	if err != nil {
		return nil, err
	}
	return &Walker{buf: buf, pos: HeaderSize, header: h}, nil
}

// Header returns the decoded header.
func (w *Walker) Header() Header {
	return w.header
}

// Offset is the byte position of the next record.
func (w *Walker) Offset() int {
	return w.pos
}

// Next decodes the next record. It returns false at the end of the buffer or
// on a fatal error; Err tells the two apart.
func (w *Walker) Next() bool {
	if w.done {
		return false
	}

	// Fewer bytes than the shortest record is a clean end.
	fields, ok := ReadFields(w.buf, w.pos, tagSize, timestampSize, userIDSize)
	if !ok {
		w.done = true
		return false
	}

	kind, err := DecodeKind(fields[0][0])
	if err != nil {
		return w.fail(err)
	}

	var amount []byte
	if kind.HasAmount() {
		f, ok := ReadFields(w.buf, w.pos+MinRecordSize, amountSize)
		if !ok {
			return w.fail(ErrTruncatedRecord)
		}
		amount = f[0]
	}

	e, err := Decode(w.pos, fields[0], fields[1], fields[2], amount)
	if err != nil {
		return w.fail(err)
	}

	w.entry = e
	w.pos += kind.Size()
	return true
}

func (w *Walker) fail(err error) bool {
	w.err = &RecordError{Offset: w.pos, Err: err}
	w.done = true
	return false
}

// Entry returns the record decoded by the last successful Next.
func (w *Walker) Entry() LogEntry {
	return w.entry
}

// Err returns the error that stopped the walk, or nil after a clean end.
func (w *Walker) Err() error {
	return w.err
}

// All returns the remaining records as a sequence. A fatal error is yielded
// once, with a zero LogEntry, as the last element.
func (w *Walker) All() iter.Seq2[LogEntry, error] {
	return func(yield func(LogEntry, error) bool) {
		for w.Next() {
			if !yield(w.entry, nil) {
				return
			}
		}
		if w.err != nil {
			yield(LogEntry{}, w.err)
		}
	}
}

// Walk decodes every record of buf.
func Walk(buf []byte) ([]LogEntry, error) {
	w, err := NewWalker(buf)
	if err != nil {
		return nil, err
	}
	var entries []LogEntry
	for w.Next() {
		entries = append(entries, w.Entry())
	}
	if err := w.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
