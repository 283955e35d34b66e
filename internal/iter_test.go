package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	a := &OrderedMap[int]{}
	a.Set("x", 1)
	a.Set("y", 2)

	b := &OrderedMap[int]{}
	b.Set("z", 3)

	var keys []string
	var values []int
	for key, value := range Seq2Concat(a.All(), b.All()) {
		keys = append(keys, key)
		values = append(values, value)
	}

	assert.Equal([]string{"x", "y", "z"}, keys)
	assert.Equal([]int{1, 2, 3}, values)

	// Early exit stops the whole chain.
	var count int
	for range Seq2Concat(a.All(), b.All()) {
		count++
		break
	}
	assert.Equal(1, count)
}
