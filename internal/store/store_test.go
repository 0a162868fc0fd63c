package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kopbox/kopbox-pos/internal/model"
)

func TestIDsAreMonotonic(t *testing.T) {
	s := New()

	assert.Equal(t, 1, s.NextCategoryID())
	assert.Equal(t, 2, s.NextCategoryID())
	assert.Equal(t, 1, s.NextItemID())
	assert.Equal(t, 2, s.NextItemID())
	// Counters are independent per table.
	assert.Equal(t, 3, s.NextCategoryID())
}

func TestItemByCodeCaseInsensitive(t *testing.T) {
	s := New()
	it := &model.Item{ID: 1, DisplayCode: "MA001"}
	s.Items = append(s.Items, it)
	s.IndexItem(it)

	assert.Same(t, it, s.ItemByCode("MA001"))
	assert.Same(t, it, s.ItemByCode("ma001"))
	assert.Nil(t, s.ItemByCode("MA002"))
}

func TestRebuildCodeIndex(t *testing.T) {
	s := New()
	it := &model.Item{ID: 1, DisplayCode: "MA002"}
	s.Items = append(s.Items, it)
	s.IndexItem(it)

	// Simulate a reindex pass changing the code in place.
	it.DisplayCode = "MA001"
	s.RebuildCodeIndex()

	assert.Same(t, it, s.ItemByCode("MA001"))
	assert.Nil(t, s.ItemByCode("MA002"), "stale codes drop out on rebuild")
}
