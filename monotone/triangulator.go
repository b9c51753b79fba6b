// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package monotone

import (
	"fmt"

	"github.com/2dChan/gotriangle/geom"
	"github.com/2dChan/gotriangle/mesh"
)

// sweep carries the state owned exclusively by one Triangulate call:
// the active section store, the phantom pool and the growing mesh.
// None of it is shared across calls or goroutines.
type sweep struct {
	store SectionStore
	pool  *PhantomEdgePool
	out   *mesh.Mesh
}

// Triangulate runs the monotone sweep over a chain-vertex sequence
// already sorted and indexed by BuildChainVertices, producing a mesh
// with full adjacency. pointCount is the number of distinct indices
// in vertices (1 + the last vertex's Index), used to size the output
// point vector.
//
// At termination the section store must be empty and the phantom pool
// must hold no pending handler; either condition failing means the
// input violated the winding or simplicity preconditions, and an
// error is returned instead of a malformed mesh.
func Triangulate(vertices []ChainVertex, pointCount int) (*mesh.Mesh, error) {
	sw := &sweep{
		store: NewSectionStore(len(vertices)),
		pool:  NewPhantomEdgePool(),
		out:   &mesh.Mesh{Points: make([]geom.Point, pointCount)},
	}

	for _, v := range vertices {
		sw.out.Points[v.Index] = v.This
		switch Classify(v) {
		case Start:
			sw.dispatchStart(v)
		case End:
			sw.dispatchEnd(v)
		case Split:
			sw.dispatchSplit(v)
		case Merge:
			sw.dispatchMerge(v)
		case Join:
			sw.dispatchJoin(v)
		case Steiner:
			sw.dispatchSteiner(v)
		}
	}

	if sw.store.Len() != 0 {
		return nil, fmt.Errorf("monotone: section store not empty at termination (%d live)", sw.store.Len())
	}
	if sw.pool.HasLiveHandlers() {
		return nil, fmt.Errorf("monotone: phantom pool has live handlers at termination")
	}
	return sw.out, nil
}

// findSection locates the section whose open region the vertex
// continues, closes or splits: the highest section not strictly above
// v. Ties (v exactly on a section's segment, common when the segment
// terminates at v) resolve by the chain continuation: a section whose
// left endpoint is v's Prev is v's own region; otherwise the angular
// position of v's Next against the segment decides the side.
func (sw *sweep) findSection(v ChainVertex) (int, bool) {
	return sw.store.FindSection(func(key VSegment) geom.Sign {
		ord := key.CompareToPoint(v.This)
		if ord != geom.Equal {
			return ord
		}
		if !v.HasEdges || v.Prev == key.A {
			return geom.Equal
		}
		return geom.ClockOrder(key.A, v.Next, key.B)
	})
}

// emit appends the fan triangle (v, e.A, e.B) to the mesh, reordering
// vertices as needed so the stored triangle keeps a non-positive
// double area, wires its far side per e.Kind, and returns its index.
func (sw *sweep) emit(vIdx uint32, vPt geom.Point, e TriangleEdge) int {
	V := [3]uint32{vIdx, e.AIdx, e.BIdx}
	if geom.AreaTwo(vPt, e.A, e.B) > 0 {
		V[1], V[2] = V[2], V[1]
	}
	sw.out.Triangles = append(sw.out.Triangles, mesh.Triangle{V: V, N: [3]int32{mesh.NIL, mesh.NIL, mesh.NIL}})
	idx := len(sw.out.Triangles) - 1
	sw.wireFar(idx, e)
	return idx
}

// wireFar links the newly emitted triangle idx across the consumed
// horizon edge e: to the already-emitted triangle behind a Regular
// edge, through the phantom pool for a Phantom edge, or not at all
// for a Border edge.
func (sw *sweep) wireFar(idx int, e TriangleEdge) {
	tri := &sw.out.Triangles[idx]
	farSlot := tri.SlotOf(e.AIdx, e.BIdx)
	switch e.Kind {
	case Border:
	case Regular:
		tri.N[farSlot] = int32(e.Triangle)
		other := &sw.out.Triangles[e.Triangle]
		otherSlot := other.SlotOf(e.AIdx, e.BIdx)
		other.N[otherSlot] = int32(idx)
	case Phantom:
		if t, vs, ok := sw.pool.Consume(e.Slot); ok {
			tri.N[farSlot] = int32(t)
			sw.out.Triangles[t].N[vs] = int32(idx)
		} else {
			sw.pool.Register(e.Slot, idx, farSlot)
		}
	}
}

// wireConsecutive links each pair of triangles emitted by one fan:
// tris[k] and tris[k+1] share the edge from the fan apex to
// sharedIdx[k].
func (sw *sweep) wireConsecutive(tris []int, sharedIdx []uint32, vIdx uint32) {
	for k := 0; k+1 < len(tris); k++ {
		a := &sw.out.Triangles[tris[k]]
		b := &sw.out.Triangles[tris[k+1]]
		a.N[a.SlotOf(vIdx, sharedIdx[k])] = int32(tris[k+1])
		b.N[b.SlotOf(vIdx, sharedIdx[k])] = int32(tris[k])
	}
}

func (sw *sweep) dispatchStart(v ChainVertex) {
	sw.store.Insert(Section{
		Key:     VSegment{A: v.This, B: v.Next},
		Content: pointContent(v.This, v.Index),
	})
}

func (sw *sweep) dispatchEnd(v ChainVertex) {
	idx, ok := sw.findSection(v)
	if !ok {
		return
	}
	sec := sw.store.Get(idx)
	sw.addAsLast(sec, v)
	sw.store.DeleteByIndex(idx)
}

// addAsLast closes a region: the vertex sees the whole remaining
// horizon, so every edge becomes one fan triangle.
func (sw *sweep) addAsLast(sec *Section, v ChainVertex) {
	edges := sec.Content.Edges
	tris := make([]int, 0, len(edges))
	shared := make([]uint32, 0, len(edges))
	for _, e := range edges {
		tris = append(tris, sw.emit(v.Index, v.This, e))
		shared = append(shared, e.BIdx)
	}
	sw.wireConsecutive(tris, shared, v.Index)
}

func (sw *sweep) dispatchJoin(v ChainVertex) {
	idx, ok := sw.findSection(v)
	if !ok {
		sw.dispatchStart(v)
		return
	}
	sec := sw.store.Get(idx)
	if sec.Key.B == v.This {
		// The bottom chain continues through v: the region's bottom
		// segment moves forward to the outgoing edge.
		sec.Key = VSegment{A: v.This, B: v.Next}
		sw.addFromEnd(sec, v)
	} else {
		sw.addFromStart(sec, v)
	}
	sw.store.DeleteByIndex(idx)
	sw.store.Insert(*sec)
}

// addFromStart fans the vertex across the horizon's upper end: emit
// triangles while the next edge is visible from v, then cap the
// consumed span with a single new edge from v.
func (sw *sweep) addFromStart(sec *Section, v ChainVertex) {
	if sec.Content.HasPoint {
		sec.Content = edgeContent([]TriangleEdge{
			borderEdge(v.This, sec.Content.Point, v.Index, sec.Content.PointIdx),
		})
		return
	}
	edges := sec.Content.Edges
	e0 := edges[0]
	if geom.AreaTwo(v.This, e0.A, e0.B) <= 0 {
		out := make([]TriangleEdge, 0, len(edges)+1)
		out = append(out, borderEdge(v.This, e0.A, v.Index, e0.AIdx))
		sec.Content = edgeContent(append(out, edges...))
		return
	}

	var tris []int
	var shared []uint32
	i := 0
	for i < len(edges) && geom.AreaTwo(v.This, edges[i].A, edges[i].B) > 0 {
		tris = append(tris, sw.emit(v.Index, v.This, edges[i]))
		shared = append(shared, edges[i].BIdx)
		i++
	}
	sw.wireConsecutive(tris, shared, v.Index)

	last := edges[i-1]
	out := make([]TriangleEdge, 0, len(edges)-i+1)
	out = append(out, regularEdge(v.This, last.B, v.Index, last.BIdx, tris[len(tris)-1]))
	sec.Content = edgeContent(append(out, edges[i:]...))
}

// addFromEnd mirrors addFromStart at the horizon's lower end.
func (sw *sweep) addFromEnd(sec *Section, v ChainVertex) {
	if sec.Content.HasPoint {
		sec.Content = edgeContent([]TriangleEdge{
			borderEdge(sec.Content.Point, v.This, sec.Content.PointIdx, v.Index),
		})
		return
	}
	edges := sec.Content.Edges
	el := edges[len(edges)-1]
	if geom.AreaTwo(v.This, el.A, el.B) <= 0 {
		sec.Content = edgeContent(append(edges, borderEdge(el.B, v.This, el.BIdx, v.Index)))
		return
	}

	var tris []int
	var shared []uint32
	i := len(edges)
	for i > 0 && geom.AreaTwo(v.This, edges[i-1].A, edges[i-1].B) > 0 {
		tris = append(tris, sw.emit(v.Index, v.This, edges[i-1]))
		shared = append(shared, edges[i-1].BIdx)
		i--
	}
	// Collected bottom-up; reverse so wireConsecutive walks the fan
	// in horizon order, pairing tris[k] and tris[k+1] across the edge
	// from v to the k-th consumed edge's far endpoint.
	for l, r := 0, len(tris)-1; l < r; l, r = l+1, r-1 {
		tris[l], tris[r] = tris[r], tris[l]
		shared[l], shared[r] = shared[r], shared[l]
	}
	sw.wireConsecutive(tris, shared, v.Index)

	lastConsumed := edges[i]
	out := append([]TriangleEdge{}, edges[:i]...)
	sec.Content = edgeContent(append(out, regularEdge(lastConsumed.A, v.This, lastConsumed.AIdx, v.Index, tris[0])))
}

func (sw *sweep) dispatchSplit(v ChainVertex) {
	idx, ok := sw.findSection(v)
	if !ok {
		sw.dispatchStart(v)
		return
	}
	sec := sw.store.Get(idx)

	if sec.Content.HasPoint {
		q, qIdx := sec.Content.Point, sec.Content.PointIdx
		slot := sw.pool.Alloc()
		sw.store.DeleteByIndex(idx)
		sw.store.Insert(Section{
			Key:     VSegment{A: v.This, B: v.Next},
			Content: edgeContent([]TriangleEdge{phantomEdge(q, v.This, qIdx, v.Index, slot)}),
		})
		sw.store.Insert(Section{
			Key:     sec.Key,
			Content: edgeContent([]TriangleEdge{phantomEdge(v.This, q, v.Index, qIdx, slot)}),
		})
		return
	}

	top, bottom := sw.divideHorizon(sec.Content.Edges, v)
	sw.store.DeleteByIndex(idx)
	sw.store.Insert(Section{
		Key:     VSegment{A: v.This, B: v.Next},
		Content: edgeContent(top),
	})
	sw.store.Insert(Section{
		Key:     sec.Key,
		Content: edgeContent(bottom),
	})
}

func (sw *sweep) dispatchSteiner(v ChainVertex) {
	idx, ok := sw.findSection(v)
	if !ok {
		return
	}
	sec := sw.store.Get(idx)

	if sec.Content.HasPoint {
		q, qIdx := sec.Content.Point, sec.Content.PointIdx
		slot := sw.pool.Alloc()
		sec.Content = edgeContent([]TriangleEdge{
			phantomEdge(q, v.This, qIdx, v.Index, slot),
			phantomEdge(v.This, q, v.Index, qIdx, slot),
		})
		sw.store.DeleteByIndex(idx)
		sw.store.Insert(*sec)
		return
	}

	top, bottom := sw.divideHorizon(sec.Content.Edges, v)
	sec.Content = edgeContent(append(top, bottom...))
	sw.store.DeleteByIndex(idx)
	sw.store.Insert(*sec)
}

// divideHorizon implements the shared Split/Steiner fan-then-divide:
// fan triangles to v across the first visible run of edges, then cut
// the horizon into an upper path ending at v and a lower path
// starting at v. A Split keeps the halves in two sections; a Steiner
// vertex re-joins them into one. When no edge is visible at all, the
// two halves are bridged through a phantom pair at the edge endpoint
// nearest to v by x-distance.
func (sw *sweep) divideHorizon(edges []TriangleEdge, v ChainVertex) (top, bottom []TriangleEdge) {
	i := 0
	for i < len(edges) && geom.AreaTwo(v.This, edges[i].A, edges[i].B) <= 0 {
		i++
	}

	if i >= len(edges) {
		last := edges[len(edges)-1]
		cut := len(edges)
		minDist := v.This.X - last.B.X
		for ei, e := range edges {
			if d := v.This.X - e.A.X; d < minDist {
				minDist = d
				cut = ei
			}
		}

		slot := sw.pool.Alloc()
		if cut == len(edges) {
			top = append(append(top, edges...), phantomEdge(last.B, v.This, last.BIdx, v.Index, slot))
			bottom = []TriangleEdge{phantomEdge(v.This, last.B, v.Index, last.BIdx, slot)}
			return top, bottom
		}
		at := edges[cut]
		top = append(append(top, edges[:cut]...), phantomEdge(at.A, v.This, at.AIdx, v.Index, slot))
		bottom = append([]TriangleEdge{phantomEdge(v.This, at.A, v.Index, at.AIdx, slot)}, edges[cut:]...)
		return top, bottom
	}

	var tris []int
	var shared []uint32
	j := i
	for j < len(edges) && geom.AreaTwo(v.This, edges[j].A, edges[j].B) > 0 {
		tris = append(tris, sw.emit(v.Index, v.This, edges[j]))
		shared = append(shared, edges[j].BIdx)
		j++
	}
	sw.wireConsecutive(tris, shared, v.Index)

	first, last := edges[i], edges[j-1]
	top = append(append(top, edges[:i]...), regularEdge(first.A, v.This, first.AIdx, v.Index, tris[0]))
	bottom = append([]TriangleEdge{regularEdge(v.This, last.B, v.Index, last.BIdx, tris[len(tris)-1])}, edges[j:]...)
	return top, bottom
}

func (sw *sweep) dispatchMerge(v ChainVertex) {
	upperIdx, ok := sw.findSection(v)
	if !ok {
		return
	}
	lowerIdx, hasLower := sw.store.NeighborBelow(upperIdx)
	if !hasLower {
		return
	}

	lower := sw.store.Get(lowerIdx)
	upper := sw.store.Get(upperIdx)

	sw.addFromStart(lower, v)
	sw.addFromEnd(upper, v)

	merged := append(append([]TriangleEdge{}, upper.Content.Edges...), lower.Content.Edges...)

	sw.store.DeleteByIndex(upperIdx)
	sw.store.DeleteByIndex(lowerIdx)
	sw.store.Insert(Section{Key: lower.Key, Content: edgeContent(merged)})
}
