// Package store holds the single mutable in-memory state of the POS: the
// category, item and sales tables plus the global item code index. One
// Store instance is created at startup and injected into every repository,
// so independent instances (for tests) can coexist. The process is
// single-threaded and single-session, so the store carries no locking.
package store

import (
	"strings"

	"github.com/kopbox/kopbox-pos/internal/model"
)

type Store struct {
	Categories []*model.Category
	Items      []*model.Item
	Sales      []*model.SaleLine

	nextCategoryID int
	nextItemID     int

	// codeIndex maps upper-cased display codes to items. It is a cache
	// rebuilt alongside catalog mutations, never authoritative storage.
	codeIndex map[string]*model.Item
}

func New() *Store {
	return &Store{
		nextCategoryID: 1,
		nextItemID:     1,
		codeIndex:      make(map[string]*model.Item),
	}
}

// NextCategoryID returns a fresh category id. Ids are monotonic and never
// reused, even after deletions.
func (s *Store) NextCategoryID() int {
	id := s.nextCategoryID
	s.nextCategoryID++
	return id
}

// NextItemID returns a fresh global item id, monotonic and never reused.
func (s *Store) NextItemID() int {
	id := s.nextItemID
	s.nextItemID++
	return id
}

// ItemByCode resolves a display code case-insensitively across all
// categories. Returns nil on a miss.
func (s *Store) ItemByCode(code string) *model.Item {
	return s.codeIndex[strings.ToUpper(code)]
}

// IndexItem registers an item under its current display code.
func (s *Store) IndexItem(it *model.Item) {
	s.codeIndex[strings.ToUpper(it.DisplayCode)] = it
}

// RebuildCodeIndex drops and rebuilds the code index from the item table.
// Called after bulk code changes such as a reindex pass or a category
// prefix edit.
func (s *Store) RebuildCodeIndex() {
	s.codeIndex = make(map[string]*model.Item, len(s.Items))
	for _, it := range s.Items {
		s.codeIndex[strings.ToUpper(it.DisplayCode)] = it
	}
}
