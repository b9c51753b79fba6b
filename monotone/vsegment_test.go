// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package monotone

import (
	"testing"

	"github.com/2dChan/gotriangle/geom"
)

func TestNewVSegmentCanonicalizes(t *testing.T) {
	s := NewVSegment(pt(10, 0), pt(0, 0))
	if s.A != pt(0, 0) || s.B != pt(10, 0) {
		t.Fatalf("got A=%v B=%v, want A.X <= B.X", s.A, s.B)
	}
}

func TestVSegmentCompareToPoint(t *testing.T) {
	// A horizontal segment from (0,0) to (10,0).
	s := NewVSegment(pt(0, 0), pt(10, 0))
	tests := []struct {
		name string
		p    geom.Point
		want geom.Sign
	}{
		{"below", pt(5, -5), geom.Greater},
		{"above", pt(5, 5), geom.Less},
		{"on", pt(5, 0), geom.Equal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.CompareToPoint(tt.p); got != tt.want {
				t.Errorf("CompareToPoint(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestVSegmentCompare(t *testing.T) {
	lower := NewVSegment(pt(0, 0), pt(10, 0))
	upper := NewVSegment(pt(0, 5), pt(10, 5))
	if got := lower.Compare(upper); got != geom.Less {
		t.Errorf("lower.Compare(upper) = %v, want Less", got)
	}
	if got := upper.Compare(lower); got != geom.Greater {
		t.Errorf("upper.Compare(lower) = %v, want Greater", got)
	}
	if got := lower.Compare(lower); got != geom.Equal {
		t.Errorf("lower.Compare(lower) = %v, want Equal", got)
	}
}

func TestVSegmentCompareSharedEndpoint(t *testing.T) {
	// Two segments sharing their left endpoint, one tilting up and
	// one flat: the shared endpoint forces the comparison onto the
	// non-shared endpoints.
	flat := NewVSegment(pt(0, 0), pt(10, 0))
	tilted := NewVSegment(pt(0, 0), pt(10, 5))
	if got := flat.Compare(tilted); got != geom.Less {
		t.Errorf("flat.Compare(tilted) = %v, want Less (tilted rises above flat)", got)
	}
}
