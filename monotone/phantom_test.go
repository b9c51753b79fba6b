// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package monotone

import "testing"

func TestPhantomEdgePoolRegisterConsume(t *testing.T) {
	p := NewPhantomEdgePool()
	slot := p.Alloc()

	if _, _, ok := p.Consume(slot); ok {
		t.Fatal("Consume on an empty slot should report no handler")
	}

	p.Register(slot, 7, 2)
	if !p.HasLiveHandlers() {
		t.Fatal("HasLiveHandlers() = false with a registered handler")
	}

	tri, vs, ok := p.Consume(slot)
	if !ok || tri != 7 || vs != 2 {
		t.Fatalf("Consume = (%d, %d, %v), want (7, 2, true)", tri, vs, ok)
	}
	if p.HasLiveHandlers() {
		t.Fatal("HasLiveHandlers() = true after the slot was consumed")
	}
}

func TestPhantomEdgePoolRecyclesSlots(t *testing.T) {
	p := NewPhantomEdgePool()
	slot := p.Alloc()
	p.Register(slot, 1, 0)
	p.Consume(slot)

	seen := map[int]bool{}
	for i := 0; i < 2*blockSize; i++ {
		s := p.Alloc()
		if seen[s] {
			t.Fatalf("Alloc returned live slot %d twice", s)
		}
		seen[s] = true
	}
	if !seen[slot] {
		t.Fatalf("consumed slot %d was never recycled", slot)
	}
}
