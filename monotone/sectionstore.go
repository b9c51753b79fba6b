// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package monotone

import (
	"fmt"
	"sort"

	"github.com/2dChan/gotriangle/geom"
	"github.com/google/btree"
)

// sortedThreshold is the input-size boundary below which the
// cache-friendly sorted-slice backing is used; above it,
// NewSectionStore switches to the B-tree backing.
const sortedThreshold = 4096

// SectionStore is a dynamic ordered set of sections keyed by
// VSegment, with a stable integer handle per inserted section.
// Sections are kept in ascending Compare order, lowest first.
// Exactly one of the two implementations below backs any given
// triangulation, chosen once by NewSectionStore from the input
// vertex count.
type SectionStore interface {
	Insert(sec Section) int
	DeleteByIndex(idx int)
	Get(idx int) *Section

	// FindSection returns the handle of the highest section for
	// which cmp reports Less or Equal, i.e. the section whose open
	// region contains (or is bounded by) the query vertex. cmp must
	// be monotone over the store's vertical order: Less for
	// sections under the vertex, Greater for sections above it.
	FindSection(cmp func(VSegment) geom.Sign) (int, bool)

	NeighborAbove(idx int) (int, bool)
	NeighborBelow(idx int) (int, bool)
	Len() int
}

// NewSectionStore picks the sorted-slice or B-tree backing based on
// expectedSize, the number of chain vertices the sweep will process.
func NewSectionStore(expectedSize int) SectionStore {
	if expectedSize <= sortedThreshold {
		return newSortedSectionStore()
	}
	return newBalancedSectionStore()
}

// --- sortedSectionStore -----------------------------------------------

// sortedSectionStore keeps handles in a slice sorted by Key, giving
// good cache behavior for the small section counts (<= ~12 live
// sections is typical mid-sweep) that dominate real inputs under the
// sortedThreshold.
type sortedSectionStore struct {
	order    []int // handle, sorted by sections[handle].Key, lowest first
	sections map[int]Section
	nextID   int
}

func newSortedSectionStore() *sortedSectionStore {
	return &sortedSectionStore{sections: make(map[int]Section)}
}

func (s *sortedSectionStore) posOf(idx int) int {
	sec, ok := s.sections[idx]
	if !ok {
		panic(fmt.Sprintf("monotone: SectionStore: unknown index %d", idx))
	}
	pos := sort.Search(len(s.order), func(i int) bool {
		return s.sections[s.order[i]].Key.Compare(sec.Key) != geom.Less
	})
	for pos < len(s.order) && s.order[pos] != idx {
		pos++
	}
	return pos
}

func (s *sortedSectionStore) Insert(sec Section) int {
	idx := s.nextID
	s.nextID++
	s.sections[idx] = sec
	pos := sort.Search(len(s.order), func(i int) bool {
		return s.sections[s.order[i]].Key.Compare(sec.Key) == geom.Greater
	})
	s.order = append(s.order, 0)
	copy(s.order[pos+1:], s.order[pos:])
	s.order[pos] = idx
	return idx
}

func (s *sortedSectionStore) DeleteByIndex(idx int) {
	pos := s.posOf(idx)
	s.order = append(s.order[:pos], s.order[pos+1:]...)
	delete(s.sections, idx)
}

func (s *sortedSectionStore) Get(idx int) *Section {
	sec, ok := s.sections[idx]
	if !ok {
		panic(fmt.Sprintf("monotone: SectionStore: unknown index %d", idx))
	}
	out := sec
	return &out
}

func (s *sortedSectionStore) FindSection(cmp func(VSegment) geom.Sign) (int, bool) {
	// Sections above the vertex report Greater; everything under or
	// touching it reports Less or Equal. The match is the one just
	// before the first Greater.
	pos := sort.Search(len(s.order), func(i int) bool {
		return cmp(s.sections[s.order[i]].Key) == geom.Greater
	})
	if pos == 0 {
		return 0, false
	}
	return s.order[pos-1], true
}

func (s *sortedSectionStore) NeighborAbove(idx int) (int, bool) {
	pos := s.posOf(idx)
	if pos+1 >= len(s.order) {
		return 0, false
	}
	return s.order[pos+1], true
}

func (s *sortedSectionStore) NeighborBelow(idx int) (int, bool) {
	pos := s.posOf(idx)
	if pos == 0 {
		return 0, false
	}
	return s.order[pos-1], true
}

func (s *sortedSectionStore) Len() int {
	return len(s.order)
}

// --- balancedSectionStore ----------------------------------------------

// btreeItem is the btree.BTreeG element: a handle ordered by its
// section's Key, with the handle itself breaking exact key ties so
// distinct sections never collapse into one tree node.
type btreeItem struct {
	idx int
	key VSegment
}

func lessItem(a, b btreeItem) bool {
	switch a.key.Compare(b.key) {
	case geom.Less:
		return true
	case geom.Greater:
		return false
	default:
		return a.idx < b.idx
	}
}

// balancedSectionStore backs large sweeps (more than sortedThreshold
// vertices) with google/btree, giving O(log n) insert, delete and
// neighbor queries instead of the sorted slice's O(n) shift.
type balancedSectionStore struct {
	tree     *btree.BTreeG[btreeItem]
	sections map[int]Section
	nextID   int
}

func newBalancedSectionStore() *balancedSectionStore {
	return &balancedSectionStore{
		tree:     btree.NewG(32, lessItem),
		sections: make(map[int]Section),
	}
}

func (s *balancedSectionStore) Insert(sec Section) int {
	idx := s.nextID
	s.nextID++
	s.sections[idx] = sec
	s.tree.ReplaceOrInsert(btreeItem{idx: idx, key: sec.Key})
	return idx
}

func (s *balancedSectionStore) DeleteByIndex(idx int) {
	sec, ok := s.sections[idx]
	if !ok {
		panic(fmt.Sprintf("monotone: SectionStore: unknown index %d", idx))
	}
	s.tree.Delete(btreeItem{idx: idx, key: sec.Key})
	delete(s.sections, idx)
}

func (s *balancedSectionStore) Get(idx int) *Section {
	sec, ok := s.sections[idx]
	if !ok {
		panic(fmt.Sprintf("monotone: SectionStore: unknown index %d", idx))
	}
	out := sec
	return &out
}

func (s *balancedSectionStore) FindSection(cmp func(VSegment) geom.Sign) (int, bool) {
	found := -1
	s.tree.Descend(func(it btreeItem) bool {
		if cmp(it.key) == geom.Greater {
			return true
		}
		found = it.idx
		return false
	})
	if found < 0 {
		return 0, false
	}
	return found, true
}

func (s *balancedSectionStore) NeighborAbove(idx int) (int, bool) {
	sec, ok := s.sections[idx]
	if !ok {
		panic(fmt.Sprintf("monotone: SectionStore: unknown index %d", idx))
	}
	found := -1
	pivot := btreeItem{idx: idx, key: sec.Key}
	s.tree.AscendGreaterOrEqual(pivot, func(it btreeItem) bool {
		if it.idx == idx {
			return true
		}
		found = it.idx
		return false
	})
	if found < 0 {
		return 0, false
	}
	return found, true
}

func (s *balancedSectionStore) NeighborBelow(idx int) (int, bool) {
	sec, ok := s.sections[idx]
	if !ok {
		panic(fmt.Sprintf("monotone: SectionStore: unknown index %d", idx))
	}
	found := -1
	pivot := btreeItem{idx: idx, key: sec.Key}
	s.tree.DescendLessOrEqual(pivot, func(it btreeItem) bool {
		if it.idx == idx {
			return true
		}
		found = it.idx
		return false
	})
	if found < 0 {
		return 0, false
	}
	return found, true
}

func (s *balancedSectionStore) Len() int {
	return s.tree.Len()
}
