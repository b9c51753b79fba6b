// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package triangle

import "testing"

func TestFloatPointAdapterRoundTripOrdering(t *testing.T) {
	adapter, err := NewFloatPointAdapter(0, 0, 100, 100, 1<<20)
	if err != nil {
		t.Fatalf("NewFloatPointAdapter: %v", err)
	}

	a := FloatPoint{X: 10, Y: 20}
	b := FloatPoint{X: 30, Y: 5}

	ia := adapter.ToInt(a)
	ib := adapter.ToInt(b)
	if ia.X >= ib.X {
		t.Fatalf("ordering not preserved on X: ia=%v ib=%v", ia, ib)
	}
	if ia.Y <= ib.Y {
		t.Fatalf("ordering not preserved on Y: ia=%v ib=%v", ia, ib)
	}

	// One grid cell spans 100/(1<<20) float units; the round trip may
	// lose up to that much, but no more.
	cell := 100.0 / (1 << 20)
	fa := adapter.ToFloat(ia)
	if diff := fa.X - a.X; diff > cell || diff < -cell {
		t.Fatalf("round trip X drifted: got %v, want ~%v", fa.X, a.X)
	}
	if diff := fa.Y - a.Y; diff > cell || diff < -cell {
		t.Fatalf("round trip Y drifted: got %v, want ~%v", fa.Y, a.Y)
	}
}

func TestFloatPointAdapterRejectsDegenerateRect(t *testing.T) {
	if _, err := NewFloatPointAdapter(0, 0, 0, 10, 100); err == nil {
		t.Fatal("expected error for zero-width rect")
	}
	if _, err := NewFloatPointAdapter(0, 0, 10, 10, 0); err == nil {
		t.Fatal("expected error for non-positive resolution")
	}
}
