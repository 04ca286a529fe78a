package mps7

import (
	"encoding/binary"
	"fmt"
)

const (
	// Magic is the 4-byte signature at the start of every log.
	Magic = "MPS7"
	// HeaderSize is the offset of the first record.
	HeaderSize = 9
)

// Header is the fixed preamble of a log. Version and RecordCount are read
// but never checked.
type Header struct {
	Version     byte
	RecordCount uint32
}

// ValidateHeader checks the magic and that the whole header is present.
func ValidateHeader(buf []byte) error {
	if len(buf) >= len(Magic) && string(buf[:len(Magic)]) != Magic {
		return fmt.Errorf("%w: got %q", ErrBadMagic, buf[:len(Magic)])
	}
	if len(buf) < HeaderSize {
		return fmt.Errorf("%w: %d of %d bytes", ErrTruncated, len(buf), HeaderSize)
	}
	return nil
}

// ParseHeader validates buf and decodes its header.
func ParseHeader(buf []byte) (Header, error) {
	if err := ValidateHeader(buf); err != nil {
		return Header{}, err
	}
	return Header{
		Version:     buf[4],
		RecordCount: binary.BigEndian.Uint32(buf[5:9]),
	}, nil
}
