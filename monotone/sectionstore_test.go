// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package monotone

import (
	"testing"

	"github.com/2dChan/gotriangle/geom"
)

func newStores() map[string]SectionStore {
	return map[string]SectionStore{
		"sorted":   newSortedSectionStore(),
		"balanced": newBalancedSectionStore(),
	}
}

func sectionAt(y int32) Section {
	return Section{Key: NewVSegment(pt(0, y), pt(10, y))}
}

func findAt(store SectionStore, p geom.Point) (int, bool) {
	return store.FindSection(func(key VSegment) geom.Sign {
		return key.CompareToPoint(p)
	})
}

// TestSectionStoreFindSection pins the search contract: the result is
// the highest section not strictly above the query point, and a point
// exactly on a section's segment matches that section.
func TestSectionStoreFindSection(t *testing.T) {
	for name, store := range newStores() {
		t.Run(name, func(t *testing.T) {
			s9 := store.Insert(sectionAt(9))
			s6 := store.Insert(sectionAt(6))
			s3 := store.Insert(sectionAt(3))
			s1 := store.Insert(sectionAt(1))

			tests := []struct {
				name string
				p    geom.Point
				want int
				ok   bool
			}{
				{"above everything", pt(5, 15), s9, true},
				{"between 9 and 6", pt(5, 7), s6, true},
				{"between 6 and 3", pt(5, 4), s3, true},
				{"exactly on 3", pt(5, 3), s3, true},
				{"between 3 and 1", pt(5, 2), s1, true},
				{"below everything", pt(5, 0), 0, false},
			}
			for _, tc := range tests {
				idx, ok := findAt(store, tc.p)
				if ok != tc.ok || (ok && idx != tc.want) {
					t.Errorf("%s: FindSection = (%d, %v), want (%d, %v)", tc.name, idx, ok, tc.want, tc.ok)
				}
			}
		})
	}
}

func TestSectionStoreNeighbors(t *testing.T) {
	for name, store := range newStores() {
		t.Run(name, func(t *testing.T) {
			low := store.Insert(sectionAt(0))
			mid := store.Insert(sectionAt(5))
			high := store.Insert(sectionAt(10))

			if above, ok := store.NeighborAbove(low); !ok || above != mid {
				t.Fatalf("NeighborAbove(low) = (%d, %v), want (%d, true)", above, ok, mid)
			}
			if below, ok := store.NeighborBelow(high); !ok || below != mid {
				t.Fatalf("NeighborBelow(high) = (%d, %v), want (%d, true)", below, ok, mid)
			}
			if _, ok := store.NeighborAbove(high); ok {
				t.Fatal("NeighborAbove(high) should have no neighbor")
			}
			if _, ok := store.NeighborBelow(low); ok {
				t.Fatal("NeighborBelow(low) should have no neighbor")
			}
		})
	}
}

func TestSectionStoreDeleteByIndex(t *testing.T) {
	for name, store := range newStores() {
		t.Run(name, func(t *testing.T) {
			low := store.Insert(sectionAt(0))
			high := store.Insert(sectionAt(10))
			store.DeleteByIndex(low)

			if store.Len() != 1 {
				t.Fatalf("Len() = %d, want 1", store.Len())
			}
			idx, ok := findAt(store, pt(5, 20))
			if !ok || idx != high {
				t.Fatalf("FindSection after delete = (%d, %v), want (%d, true)", idx, ok, high)
			}
		})
	}
}

func TestSectionStoreGetUnknownIndexPanics(t *testing.T) {
	for name, store := range newStores() {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("Get(unknown) should panic")
				}
			}()
			store.Get(42)
		})
	}
}

func TestNewSectionStorePicksBackingBySize(t *testing.T) {
	if _, ok := NewSectionStore(10).(*sortedSectionStore); !ok {
		t.Error("NewSectionStore(10) should pick sortedSectionStore")
	}
	if _, ok := NewSectionStore(sortedThreshold + 1).(*balancedSectionStore); !ok {
		t.Error("NewSectionStore(sortedThreshold+1) should pick balancedSectionStore")
	}
}
