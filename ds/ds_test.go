package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNearestDivisibleByM(t *testing.T) {
	assert.Equal(t, 0, NearestDivisibleByM(0, 4))
	assert.Equal(t, 4, NearestDivisibleByM(3, 4))
	assert.Equal(t, 4, NearestDivisibleByM(4, 4))
	assert.Equal(t, 8, NearestDivisibleByM(5, 4))
	assert.Equal(t, 16, NearestDivisibleByM(15, 4))
}

func TestMakeChunks(t *testing.T) {
	assert.Equal(
		t,
		[][]int{{1, 2}, {3, 4}, {5}},
		MakeChunks([]int{1, 2, 3, 4, 5}, 2),
	)
	assert.Equal(
		t,
		[][]byte{{1, 2, 3}, {4, 5, 6}},
		MakeChunks([]byte{1, 2, 3, 4, 5, 6}, 3),
	)
}

func TestRepeat(t *testing.T) {
	assert.Equal(t, []int{7, 7, 7}, Repeat(3, 7))
	assert.Empty(t, Repeat(0, 7))
}

func TestMakeRange(t *testing.T) {
	assert.Equal(t, []int{1, 3, 5}, MakeRange(1, 6, 2))
	assert.Empty(t, MakeRange(4, 4, 1))
}
