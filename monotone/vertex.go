// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package monotone implements the sweep-line monotone triangulator:
// the chain-vertex builder, the section store, the phantom-edge pool
// and the sweep state machine itself.
package monotone

import "github.com/2dChan/gotriangle/geom"

// ChainVertex is a polygon vertex paired with its two cyclic
// neighbors' coordinates, or a bare interior point (Steiner) with no
// neighbors. The sweep consumes a sorted sequence of these.
type ChainVertex struct {
	Index uint32
	This  geom.Point
	Next  geom.Point
	Prev  geom.Point
	// HasEdges is false for Steiner points: This has no polygon
	// neighbors and Next/Prev are meaningless.
	HasEdges bool
}

// Kind is one of the six disjoint vertex classifications the sweep
// dispatches on.
type Kind int

const (
	Start Kind = iota
	End
	Split
	Merge
	Join
	Steiner
)

func (k Kind) String() string {
	switch k {
	case Start:
		return "Start"
	case End:
		return "End"
	case Split:
		return "Split"
	case Merge:
		return "Merge"
	case Join:
		return "Join"
	case Steiner:
		return "Steiner"
	default:
		return "Kind(?)"
	}
}

// Classify determines v's Kind from its two neighbor points and the
// clockwise-ness of the triple (prev, this, next).
func Classify(v ChainVertex) Kind {
	if !v.HasEdges {
		return Steiner
	}

	nextLeft := v.Next.Less(v.This)
	prevLeft := v.Prev.Less(v.This)
	cw := geom.IsClockwise(v.Prev, v.This, v.Next)

	switch {
	case !nextLeft && !prevLeft && !cw:
		return Start
	case nextLeft && prevLeft && !cw:
		return End
	case !nextLeft && !prevLeft && cw:
		return Split
	case nextLeft && prevLeft && cw:
		return Merge
	default:
		return Join
	}
}
