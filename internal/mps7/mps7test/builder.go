// Package mps7test builds MPS7 logs for tests.
package mps7test

import (
	"encoding/binary"
	"math"
)

// Builder appends records to an in-memory MPS7 log.
type Builder struct {
	buf []byte
}

// New starts a log with a valid header.
func New(version byte) *Builder {
	b := &Builder{buf: make([]byte, 0, 64)}
	b.buf = append(b.buf, "MPS7"...)
	b.buf = append(b.buf, version)
	b.buf = binary.BigEndian.AppendUint32(b.buf, 0)
	return b
}

// Debit appends a debit record.
func (b *Builder) Debit(ts uint32, userID uint64, amount float64) *Builder {
	return b.Raw(0, ts, userID).Float(amount)
}

// Credit appends a credit record.
func (b *Builder) Credit(ts uint32, userID uint64, amount float64) *Builder {
	return b.Raw(1, ts, userID).Float(amount)
}

// StartAutopay appends a StartAutopay record.
func (b *Builder) StartAutopay(ts uint32, userID uint64) *Builder {
	return b.Raw(2, ts, userID)
}

// EndAutopay appends an EndAutopay record.
func (b *Builder) EndAutopay(ts uint32, userID uint64) *Builder {
	return b.Raw(3, ts, userID)
}

// Raw appends a tag, timestamp and user id with no amount.
func (b *Builder) Raw(tag byte, ts uint32, userID uint64) *Builder {
	b.buf = append(b.buf, tag)
	b.buf = binary.BigEndian.AppendUint32(b.buf, ts)
	b.buf = binary.BigEndian.AppendUint64(b.buf, userID)
	return b
}

// Float appends a big-endian float64.
func (b *Builder) Float(f float64) *Builder {
	b.buf = binary.BigEndian.AppendUint64(b.buf, math.Float64bits(f))
	return b
}

// Count sets the reserved record count field.
func (b *Builder) Count(n uint32) *Builder {
	binary.BigEndian.PutUint32(b.buf[5:9], n)
	return b
}

// Bytes returns a copy of the log.
func (b *Builder) Bytes() []byte {
	out := make([]byte, len(b.buf))
	copy(out, b.buf)
	return out
}
