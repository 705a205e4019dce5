package plan

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestFreeSegmentsNoObstacles(t *testing.T) {
	p := NewParams(4, 3, nil, 0.2)

	free := p.FreeSegments(1.5)
	if len(free) != 1 {
		t.Fatalf("expected 1 segment, got %d (%v)", len(free), free)
	}
	if !approx(free[0].Start, 0) || !approx(free[0].End, 4) {
		t.Errorf("expected [0, 4], got %v", free[0])
	}
}

func TestFreeSegmentsSplitAroundObstacle(t *testing.T) {
	obstacles := []Rect{{X: 1, Y: 1, Width: 1, Height: 1}}
	p := NewParams(4, 3, obstacles, 0.2)

	// The grown obstacle spans x in [0.85, 2.15] and y in [0.85, 2.15].
	free := p.FreeSegments(1.5)
	if len(free) != 2 {
		t.Fatalf("expected 2 segments, got %d (%v)", len(free), free)
	}
	if !approx(free[0].Start, 0) || !approx(free[0].End, 0.85) {
		t.Errorf("left segment: expected [0, 0.85], got %v", free[0])
	}
	if !approx(free[1].Start, 2.15) || !approx(free[1].End, 4) {
		t.Errorf("right segment: expected [2.15, 4], got %v", free[1])
	}
}

func TestFreeSegmentsLineOutsideObstacleSpan(t *testing.T) {
	obstacles := []Rect{{X: 1, Y: 1, Width: 1, Height: 1}}
	p := NewParams(4, 3, obstacles, 0.2)

	free := p.FreeSegments(0.5)
	if len(free) != 1 {
		t.Fatalf("expected 1 segment below the obstacle, got %v", free)
	}
	if !approx(free[0].Start, 0) || !approx(free[0].End, 4) {
		t.Errorf("expected [0, 4], got %v", free[0])
	}
}

func TestFreeSegmentsFullyBlockedLine(t *testing.T) {
	// Obstacle spans the whole wall width: no gap satisfies the minimum
	// width on either side.
	obstacles := []Rect{{X: 0, Y: 1, Width: 4, Height: 1}}
	p := NewParams(4, 3, obstacles, 0.2)

	if free := p.FreeSegments(1.5); len(free) != 0 {
		t.Errorf("expected no segments on fully blocked line, got %v", free)
	}
}

func TestFreeSegmentsNarrowGapDropped(t *testing.T) {
	// The gap left of the grown obstacle is 0.25m, below the minimum gap
	// width of 0.3m, so only the right segment survives.
	obstacles := []Rect{{X: 0.4, Y: 1, Width: 1, Height: 1}}
	p := NewParams(4, 3, obstacles, 0.2)

	free := p.FreeSegments(1.5)
	if len(free) != 1 {
		t.Fatalf("expected 1 segment, got %d (%v)", len(free), free)
	}
	if !approx(free[0].Start, 1.55) || !approx(free[0].End, 4) {
		t.Errorf("expected [1.55, 4], got %v", free[0])
	}
}

func TestFreeSegmentsObstacleAtEdgeClamped(t *testing.T) {
	// Growing an obstacle near the left edge must not push the span below
	// zero; the leftover sliver disappears entirely.
	obstacles := []Rect{{X: 0.1, Y: 1, Width: 1, Height: 1}}
	p := NewParams(4, 3, obstacles, 0.2)

	free := p.FreeSegments(1.5)
	if len(free) != 1 {
		t.Fatalf("expected 1 segment, got %d (%v)", len(free), free)
	}
	if !approx(free[0].Start, 1.3) || !approx(free[0].End, 4) {
		t.Errorf("expected [1.3, 4], got %v", free[0])
	}
}

func TestFreeSegmentsTwoObstacles(t *testing.T) {
	obstacles := []Rect{
		{X: 0.5, Y: 1, Width: 0.5, Height: 1},
		{X: 2.5, Y: 1, Width: 0.5, Height: 1},
	}
	p := NewParams(4, 3, obstacles, 0.2)

	free := p.FreeSegments(1.5)
	if len(free) != 3 {
		t.Fatalf("expected 3 segments, got %d (%v)", len(free), free)
	}
	if !approx(free[1].Start, 1.15) || !approx(free[1].End, 2.35) {
		t.Errorf("middle segment: expected [1.15, 2.35], got %v", free[1])
	}
}
