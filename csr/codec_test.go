package csr

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMask(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		width uint
		mask  uint64
	}{
		{0, 0},
		{1, 0x1},
		{6, 0x3f},
		{14, 0x3fff},
		{44, 0xfff_ffff_ffff},
		{63, 0x7fff_ffff_ffff_ffff},
		{64, 0xffff_ffff_ffff_ffff},
		{65, 0xffff_ffff_ffff_ffff},
	}

	for _, entry := range table {
		assert.Equal(entry.mask, Mask(entry.width), fmt.Sprintf("width %d", entry.width))
	}
}

func TestExtract(t *testing.T) {
	assert := assert.New(t)

	raw := uint64(0x8000_1000_0000_1000)
	assert.Equal(uint64(0x8), Extract(raw, 60, 4))
	assert.Equal(uint64(0x1), Extract(raw, 44, 14))
	assert.Equal(uint64(0x1000), Extract(raw, 0, 44))
	assert.Equal(raw, Extract(raw, 0, 64))
	assert.Equal(uint64(1), Extract(raw, 63, 1))
}

func TestInsert(t *testing.T) {
	assert := assert.New(t)

	// Clear-then-set leaves the neighbours alone.
	raw := Insert(^uint64(0), 12, 6, 0)
	assert.Equal(^uint64(0x3f<<12), raw)

	raw = Insert(raw, 12, 6, 0x15)
	assert.Equal(^uint64(0x2a<<12), raw)

	// Values wider than the field keep only the low bits.
	assert.Equal(uint64(0x3f<<12), Insert(0, 12, 6, 0xffff))
	assert.Equal(uint64(0x1<<12), Insert(0, 12, 6, 0x41))

	// Whole word.
	assert.Equal(uint64(0x1234), Insert(^uint64(0), 0, 64, 0x1234))

	// Top bit.
	assert.Equal(uint64(1)<<63, Insert(0, 63, 1, 3))
}

func TestInsertBool(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint64(1<<22), InsertBool(0, 22, true))
	assert.Equal(uint64(0), InsertBool(1<<22, 22, false))
	assert.Equal(^uint64(1<<7), InsertBool(^uint64(0), 7, false))
}

func TestInsertExtract_Random(t *testing.T) {
	assert := assert.New(t)

	rng := rand.New(rand.NewSource(1))

	for range 1000 {
		raw := rng.Uint64()
		value := rng.Uint64()
		width := uint(rng.Intn(64) + 1)
		offset := uint(rng.Intn(int(64-width) + 1))

		out := Insert(raw, offset, width, value)
		assert.Equal(value&Mask(width), Extract(out, offset, width))

		span := Mask(width) << offset
		assert.Equal(raw&^span, out&^span, "bits outside the field must not change")
	}
}
