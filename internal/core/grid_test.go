package core

import "testing"

func TestFloatGridIndexing(t *testing.T) {
	g := NewFloatGrid(4, 3)
	g.Values()[g.Index(2, 1)] = 7.5
	if got := g.At(2, 1); got != 7.5 {
		t.Fatalf("At(2,1) = %v, want 7.5", got)
	}
}

func TestFloatGridResizeDiscardsValues(t *testing.T) {
	g := NewFloatGrid(4, 3)
	g.Values()[0] = 1

	g.Resize(5, 2)
	if g.W != 5 || g.H != 2 {
		t.Fatalf("dimensions = %dx%d, want 5x2", g.W, g.H)
	}
	if len(g.Values()) != 10 {
		t.Fatalf("length = %d, want 10", len(g.Values()))
	}
	if g.Values()[0] != 0 {
		t.Fatal("resize kept old values")
	}
}

func TestFloatGridClampsNonPositiveDimensions(t *testing.T) {
	g := NewFloatGrid(0, -2)
	if g.W != 1 || g.H != 1 || len(g.Values()) != 1 {
		t.Fatalf("grid = %dx%d len %d, want 1x1 len 1", g.W, g.H, len(g.Values()))
	}
}
