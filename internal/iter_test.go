package internal

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func collect(seq func(func(string, int) bool)) (keys []string, vals []int) {
	for key, val := range seq {
		keys = append(keys, key)
		vals = append(vals, val)
	}
	return
}

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	a := map[string]int{"a": 1}
	b := map[string]int{"b": 2}

	keys, vals := collect(IterSeq2Concat(maps.All(a), maps.All(b)))
	assert.Equal([]string{"a", "b"}, keys)
	assert.Equal([]int{1, 2}, vals)

	keys, _ = collect(IterSeq2Concat[string, int]())
	assert.Empty(keys)
}

func TestIterSeq2Concat_Stop(t *testing.T) {
	assert := assert.New(t)

	a := map[string]int{"a": 1}
	b := map[string]int{"b": 2}

	var seen []string
	for key := range IterSeq2Concat(maps.All(a), maps.All(b)) {
		seen = append(seen, key)
		break
	}
	assert.Equal([]string{"a"}, seen)
}

func TestIterSeq2Sorted(t *testing.T) {
	assert := assert.New(t)

	in := map[string]int{"zeta": 26, "alpha": 1, "mu": 12}

	keys, vals := collect(IterSeq2Sorted(maps.All(in)))
	assert.Equal([]string{"alpha", "mu", "zeta"}, keys)
	assert.Equal([]int{1, 12, 26}, vals)
}
