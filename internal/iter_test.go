package internal

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	first := slices.All([]string{"a", "b"})
	second := slices.All([]string{"c"})

	var keys []int
	var values []string
	for key, value := range IterSeq2Concat(first, second) {
		keys = append(keys, key)
		values = append(values, value)
	}
	assert.Equal([]int{0, 1, 0}, keys)
	assert.Equal([]string{"a", "b", "c"}, values)

	merged := maps.Collect(IterSeq2Concat(maps.All(map[string]int{"x": 1}), maps.All(map[string]int{"y": 2})))
	assert.Equal(map[string]int{"x": 1, "y": 2}, merged)

	assert.Equal(0, len(maps.Collect(IterSeq2Concat[string, int]())))
}

func TestIterSeq2ConcatStop(t *testing.T) {
	assert := assert.New(t)

	seq := IterSeq2Concat(slices.All([]int{1, 2, 3}), slices.All([]int{4, 5}))

	var seen []int
	for _, value := range seq {
		seen = append(seen, value)
		if value == 4 {
			break
		}
	}
	assert.Equal([]int{1, 2, 3, 4}, seen)
}
