// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package monotone

const blockSize = 64

// phantomHandler is the (triangle, vertex slot) pair waiting for its
// other side: when a second fan triangle crosses the same phantom
// edge, both sides are wired into each other's N[vertexSlot].
type phantomHandler struct {
	triangle   int
	vertexSlot int
}

// emptySlot marks a pool slot with no pending handler.
const emptySlot = -1

// PhantomEdgePool is an index-recycling pool of deferred adjacency
// links introduced by Split/Merge/Steiner vertices. A
// split that creates a top-half edge (a, b, Phantom(p)) and a
// bottom-half edge (b, a, Phantom(p)) relies on the first fan
// triangle to cross either edge registering a handler, and the
// second consuming it to wire the two triangles together.
type PhantomEdgePool struct {
	slots []phantomHandler
	free  []int
}

// NewPhantomEdgePool returns an empty pool.
func NewPhantomEdgePool() *PhantomEdgePool {
	return &PhantomEdgePool{}
}

// Alloc returns a free slot, growing the pool in blocks when empty.
func (p *PhantomEdgePool) Alloc() int {
	if len(p.free) == 0 {
		base := len(p.slots)
		grown := make([]phantomHandler, base+blockSize)
		for i := range grown {
			grown[i].triangle = emptySlot
		}
		copy(grown, p.slots)
		p.slots = grown
		for i := base + blockSize - 1; i >= base; i-- {
			p.free = append(p.free, i)
		}
	}
	n := len(p.free) - 1
	slot := p.free[n]
	p.free = p.free[:n]
	return slot
}

// Register stores a handler at a previously empty slot, waiting for
// the matching side.
func (p *PhantomEdgePool) Register(slot, triangle, vertexSlot int) {
	p.slots[slot] = phantomHandler{triangle: triangle, vertexSlot: vertexSlot}
}

// Consume returns the stored handler (if any) and marks the slot
// empty, returning the handler and true if one was pending.
func (p *PhantomEdgePool) Consume(slot int) (triangle, vertexSlot int, ok bool) {
	h := p.slots[slot]
	if h.triangle == emptySlot {
		return 0, 0, false
	}
	p.slots[slot] = phantomHandler{triangle: emptySlot}
	p.free = append(p.free, slot)
	return h.triangle, h.vertexSlot, true
}

// HasLiveHandlers reports whether any slot still holds a pending
// handler. At the end of a triangulation this must be false; a true
// result indicates an unmatched phantom edge,
// i.e. a bug in the sweep.
func (p *PhantomEdgePool) HasLiveHandlers() bool {
	for _, s := range p.slots {
		if s.triangle != emptySlot {
			return true
		}
	}
	return false
}
