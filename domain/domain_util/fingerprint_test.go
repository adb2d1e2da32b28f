package domain_util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShelfFingerprint_OrderIndependent(t *testing.T) {
	a := []ShelfStatePair{
		{BookID: "b1", ShelfType: "favorites"},
		{BookID: "b2", ShelfType: "read"},
	}
	b := []ShelfStatePair{
		{BookID: "b2", ShelfType: "read"},
		{BookID: "b1", ShelfType: "favorites"},
	}

	assert.Equal(t, ShelfFingerprint(a), ShelfFingerprint(b))
}

func TestShelfFingerprint_SensitiveToChanges(t *testing.T) {
	base := []ShelfStatePair{
		{BookID: "b1", ShelfType: "favorites"},
		{BookID: "b2", ShelfType: "read"},
	}
	fp := ShelfFingerprint(base)

	// 新增一本书
	added := append([]ShelfStatePair{}, base...)
	added = append(added, ShelfStatePair{BookID: "b3", ShelfType: "to_read"})
	assert.NotEqual(t, fp, ShelfFingerprint(added))

	// 移除一本书
	assert.NotEqual(t, fp, ShelfFingerprint(base[:1]))

	// 同一本书换书架
	moved := []ShelfStatePair{
		{BookID: "b1", ShelfType: "abandoned"},
		{BookID: "b2", ShelfType: "read"},
	}
	assert.NotEqual(t, fp, ShelfFingerprint(moved))
}

func TestShelfFingerprint_Empty(t *testing.T) {
	assert.NotEmpty(t, ShelfFingerprint(nil))
	assert.Equal(t, ShelfFingerprint(nil), ShelfFingerprint([]ShelfStatePair{}))
}
