package domain_util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopKByWeight(t *testing.T) {
	items := []WeightedKey{
		{Key: "romance", Weight: 0.35, Count: 2},
		{Key: "ficcao", Weight: 0.80, Count: 3},
		{Key: "poesia", Weight: 0.05, Count: 1},
		{Key: "historia", Weight: 0.30, Count: 1},
	}

	top := TopKByWeight(items, 2)

	assert.Len(t, top, 2)
	assert.Equal(t, "ficcao", top[0].Key)
	assert.Equal(t, "romance", top[1].Key)
}

func TestTopKByWeight_KLargerThanInput(t *testing.T) {
	items := []WeightedKey{
		{Key: "a", Weight: 0.1},
		{Key: "b", Weight: 0.2},
	}

	top := TopKByWeight(items, 10)

	assert.Len(t, top, 2)
	assert.Equal(t, "b", top[0].Key)
}

func TestTopKByWeight_TieBreaksByKey(t *testing.T) {
	items := []WeightedKey{
		{Key: "b", Weight: 0.5},
		{Key: "a", Weight: 0.5},
		{Key: "c", Weight: 0.5},
	}

	top := TopKByWeight(items, 3)

	assert.Equal(t, "a", top[0].Key)
	assert.Equal(t, "b", top[1].Key)
	assert.Equal(t, "c", top[2].Key)
}

func TestTopKByWeight_Empty(t *testing.T) {
	assert.Nil(t, TopKByWeight(nil, 5))
	assert.Nil(t, TopKByWeight([]WeightedKey{{Key: "a", Weight: 1}}, 0))
}
