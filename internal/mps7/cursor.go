package mps7

// ReadFields slices len(sizes) consecutive fields out of buf starting at
// start. The fields alias buf. It reports false if any field would run past
// the end of buf, which callers treat as end of stream.
func ReadFields(buf []byte, start int, sizes ...int) ([][]byte, bool) {
	if start < 0 {
		return nil, false
	}
	fields := make([][]byte, len(sizes))
	pos := start
	for i, n := range sizes {
		if n < 0 || n > len(buf)-pos {
			return nil, false
		}
		fields[i] = buf[pos : pos+n : pos+n]
		pos += n
	}
	return fields, true
}
