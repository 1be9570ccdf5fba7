package csr

// Mask returns a word with the low width bits set.
func Mask(width uint) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << width) - 1
}

// Extract returns the width bits of raw starting at bit offset, LSB first.
func Extract(raw uint64, offset, width uint) uint64 {
	return (raw >> offset) & Mask(width)
}

// Insert replaces the width bits of raw starting at bit offset with value.
// Bits of value above width are dropped; bits of raw outside the span are
// returned unchanged.
func Insert(raw uint64, offset, width uint, value uint64) uint64 {
	span := Mask(width) << offset
	return (raw &^ span) | ((value << offset) & span)
}

// InsertBool sets or clears the single bit at offset.
func InsertBool(raw uint64, offset uint, on bool) uint64 {
	var bit uint64
	if on {
		bit = 1
	}
	return Insert(raw, offset, 1, bit)
}
