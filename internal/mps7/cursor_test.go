package mps7

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFields(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5, 6, 7}

	fields, ok := ReadFields(buf, 1, 1, 2, 3)
	require.True(t, ok)
	assert.Equal(t, [][]byte{{2}, {3, 4}, {5, 6, 7}}, fields)

	// Fields alias the buffer.
	buf[1] = 9
	assert.Equal(t, byte(9), fields[0][0])
}

func TestReadFields_PastEnd(t *testing.T) {
	buf := make([]byte, 10)
	tests := []struct {
		name  string
		start int
		sizes []int
		ok    bool
	}{
		{"exact fit", 0, []int{4, 6}, true},
		{"one byte over", 0, []int{4, 7}, false},
		{"start at end", 10, []int{1}, false},
		{"start at end no fields", 10, nil, true},
		{"start past end", 11, []int{1}, false},
		{"negative start", -1, []int{1}, false},
		{"negative size", 0, []int{-1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ReadFields(buf, tt.start, tt.sizes...)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestReadFields_CapLimited(t *testing.T) {
	buf := []byte{1, 2, 3, 4}
	fields, ok := ReadFields(buf, 0, 2)
	require.True(t, ok)
	assert.Equal(t, 2, cap(fields[0]))
}
