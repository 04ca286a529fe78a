// Package mps7 decodes MPS7 binary transaction logs.
//
// A log is a 9-byte header followed by back-to-back records:
//
//	offset 0..4  magic "MPS7"
//	offset 4     version byte
//	offset 5..9  reserved uint32 record count
//	offset 9..   records
//
// Each record is tag(1) | timestamp(4, uint32) | user_id(8, uint64), followed
// by amount(8, float64) for debits and credits. All values are big-endian.
package mps7
