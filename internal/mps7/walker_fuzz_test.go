package mps7

import (
	"errors"
	"testing"

	"github.com/cleared-dev/mps7/internal/mps7/mps7test"
)

func FuzzWalk(f *testing.F) {
	f.Add(mps7test.New(1).Bytes())
	f.Add(mps7test.New(1).Credit(1, 2, 3.5).StartAutopay(4, 5).Bytes())
	f.Add([]byte("MPS7\x01\x00\x00\x00\x00\x00\x00\x00\x00\x01"))
	f.Add([]byte("XPS7"))

	f.Fuzz(func(t *testing.T, data []byte) {
		entries, err := Walk(data)
		if err != nil {
			if entries != nil {
				t.Fatalf("partial entries returned with error %v", err)
			}
			if !errors.Is(err, ErrBadMagic) && !errors.Is(err, ErrTruncated) &&
				!errors.Is(err, ErrTruncatedRecord) && !errors.Is(err, ErrUnknownKind) &&
				!errors.Is(err, ErrInvalidAmount) {
				t.Fatalf("unexpected error: %v", err)
			}
			return
		}
		next := HeaderSize
		for _, e := range entries {
			if e.Offset != next {
				t.Fatalf("entry at %d, want %d", e.Offset, next)
			}
			next += e.Size()
		}
		if next > len(data) || len(data)-next >= MinRecordSize {
			t.Fatalf("walk stopped at %d of %d", next, len(data))
		}
	})
}
