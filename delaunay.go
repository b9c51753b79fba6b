// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package triangle

import (
	"github.com/2dChan/gotriangle/bitset"
	"github.com/2dChan/gotriangle/geom"
)

// IntoDelaunay flips edges of m in place until the local Delaunay
// condition holds everywhere, using the exact integer predicate in
// geom.IsFlipNotRequired. m must already carry full adjacency, as the
// meshes of Triangulate's monotone sweep do. A mesh from the earcut
// fast path records no neighbors, so the pass leaves it unchanged.
func IntoDelaunay(m *Mesh) {
	unchecked := bitset.New(len(m.Triangles))
	var buf []int

	for t := range m.Triangles {
		fixTriangle(m, t, unchecked)
	}

	for {
		buf = unchecked.Drain(buf[:0])
		if len(buf) == 0 {
			return
		}
		for _, t := range buf {
			fixTriangle(m, t, unchecked)
		}
	}
}

// fixTriangle flips every edge of t that violates the Delaunay
// condition. Each successful flip rewrites t, so both t and its old
// far-side partner are queued for a later recheck; the loop over the
// three slots continues against the rewritten triangle.
func fixTriangle(m *Mesh, t int, unchecked *bitset.Set) {
	for k := 0; k < 3; k++ {
		u := m.Triangles[t].N[k]
		if u == NIL {
			continue
		}
		if swapTriangles(m, t, k) {
			unchecked.Add(t)
			unchecked.Add(int(u))
		}
	}
}

// swapTriangles attempts to flip the edge opposite slot abcSlot in
// triangle tABC against its neighbor tPCB. It returns false (no
// flip) when the local Delaunay condition already holds.
func swapTriangles(m *Mesh, tABC, abcSlot int) bool {
	abc := &m.Triangles[tABC]
	tPCB := int(abc.N[abcSlot])
	pcb := &m.Triangles[tPCB]

	a := abc.V[abcSlot]
	b, c := abc.EdgeVertices(abcSlot)
	pcbSlot := pcb.SlotOf(b, c)
	p := pcb.V[pcbSlot]

	pt := m.Points
	if geom.IsFlipNotRequired(pt[p], pt[a], pt[b], pt[c]) {
		return false
	}

	// Neighbors outside the flipped pair, captured before the two
	// triangles are overwritten.
	nAB := abc.N[abc.SlotOf(a, b)]
	nAC := abc.N[abc.SlotOf(a, c)]
	nPB := pcb.N[pcb.SlotOf(p, b)]
	nPC := pcb.N[pcb.SlotOf(p, c)]

	// tABC becomes (a, b, p), reusing index tABC; tPCB becomes
	// (p, c, a), reusing index tPCB. Both keep their orientation.
	// The new shared diagonal is edge (a, p): in (a,b,p) that is
	// opposite b (slot 1); in (p,c,a) that is opposite c (slot 1).
	*abc = Triangle{
		V: [3]uint32{a, b, p},
		N: [3]int32{nPB, int32(tPCB), nAB},
	}
	*pcb = Triangle{
		V: [3]uint32{p, c, a},
		N: [3]int32{nAC, int32(tABC), nPC},
	}

	// Edge (a,b) and (p,c) still border the same outer triangle at the
	// same reused index, so their back-references are untouched. Edge
	// (c,a) now belongs to tPCB instead of tABC, and edge (b,p) now
	// belongs to tABC instead of tPCB: update those two back-references.
	rewireBack(m, nAC, tABC, tPCB)
	rewireBack(m, nPB, tPCB, tABC)

	return true
}

// rewireBack updates outer's back-reference from oldNeighbor to
// newNeighbor, after oldNeighbor's shared-edge triangle was replaced
// by newNeighbor across a flip. outer may be NIL (boundary edge), in
// which case there is nothing to update.
func rewireBack(m *Mesh, outer int32, oldNeighbor, newNeighbor int) {
	if outer == NIL {
		return
	}
	n := &m.Triangles[outer]
	for k := 0; k < 3; k++ {
		if n.N[k] == int32(oldNeighbor) {
			n.N[k] = int32(newNeighbor)
			return
		}
	}
}
