package plan

import (
	"math"
	"reflect"
	"testing"
)

// TestPlanEmptyWall mirrors the simplest full sweep: a 4x3 wall with no
// obstacles and a 1m tool paints three alternating passes.
func TestPlanEmptyWall(t *testing.T) {
	res := PlanCoverage(4, 3, nil, 1.0)

	want := []Point{
		{0, 0.5}, {4, 0.5},
		{4, 1.5}, {0, 1.5},
		{0, 2.5}, {4, 2.5},
	}
	assertPointsEqual(t, res.Path, want)

	if math.Abs(res.CoverageArea-12.0) > 1e-9 {
		t.Errorf("expected coverage 12.0, got %v", res.CoverageArea)
	}
	if math.Abs(res.Efficiency-1.0) > 1e-9 {
		t.Errorf("expected efficiency 1.0, got %v", res.Efficiency)
	}
	if math.Abs(res.PathLength-14.0) > 1e-9 {
		t.Errorf("expected path length 14.0, got %v", res.PathLength)
	}
	if res.BestEffort {
		t.Error("unexpected best-effort flag on an empty wall")
	}
}

func TestPlanNoObstaclesCoversWall(t *testing.T) {
	res := PlanCoverage(5, 2.5, nil, 0.3)

	wallArea := 5 * 2.5
	// Full coverage within one sweep line's worth of slack (the final
	// overlap line may double-count).
	if res.CoverageArea < wallArea-5*0.3 || res.CoverageArea > wallArea+5*0.3 {
		t.Errorf("coverage %v not within one sweep line of wall area %v", res.CoverageArea, wallArea)
	}
	if res.Efficiency < 0.85 {
		t.Errorf("expected near-full efficiency, got %v", res.Efficiency)
	}
	if res.PathLength <= 0 {
		t.Errorf("expected positive path length, got %v", res.PathLength)
	}
}

// TestPlanAvoidsObstacle checks that no path point lands strictly inside
// the safety-margin-grown obstacle.
func TestPlanAvoidsObstacle(t *testing.T) {
	obstacle := Rect{X: 1, Y: 1, Width: 1, Height: 1}
	p := NewParams(4, 3, []Rect{obstacle}, 0.2)

	res := p.Plan()
	if len(res.Path) == 0 {
		t.Fatal("expected a non-empty path")
	}

	grown := obstacle.expand(p.SafetyMargin)
	for i, pt := range res.Path {
		strictlyInside := pt.X > grown.X+1e-9 && pt.X < grown.X+grown.Width-1e-9 &&
			pt.Y > grown.Y+1e-9 && pt.Y < grown.Y+grown.Height-1e-9
		if strictlyInside {
			t.Errorf("path point %d (%v) lies inside the grown obstacle", i, pt)
		}
	}

	// Sweep lines crossing the obstacle's grown span paint two strips.
	perLine := make(map[float64]int)
	for _, s := range res.Strips {
		perLine[s.Y]++
	}
	for y, n := range perLine {
		if y >= grown.Y && y <= grown.Y+grown.Height && n != 2 {
			t.Errorf("line y=%v: expected 2 strips, got %d", y, n)
		}
	}

	if res.BestEffort {
		t.Error("detours around a routable obstacle must not be best-effort")
	}
}

// TestPlanSkipsFullyBlockedLines runs a wall whose middle band is blocked
// across the full width; the planner must skip those lines and keep going.
func TestPlanSkipsFullyBlockedLines(t *testing.T) {
	obstacles := []Rect{{X: 0, Y: 1, Width: 4, Height: 1}}
	res := PlanCoverage(4, 3, obstacles, 0.2)

	for _, s := range res.Strips {
		if s.Y >= 0.85 && s.Y <= 2.15 {
			t.Errorf("unexpected strip on blocked line y=%v", s.Y)
		}
	}
	if res.CoverageArea <= 0 {
		t.Errorf("expected coverage from the unblocked bands, got %v", res.CoverageArea)
	}
}

func TestPlanBestEffortOnSideStep(t *testing.T) {
	// Obstacle nearly filling the wall height forces a side-step between
	// the left and right segments of every line.
	obstacles := []Rect{{X: 1.5, Y: 0.1, Width: 1, Height: 0.8}}
	res := PlanCoverage(4, 1, obstacles, 0.2)

	if !res.BestEffort {
		t.Error("expected best-effort flag when only side-steps are possible")
	}
}

func TestPlanDeterministic(t *testing.T) {
	obstacles := []Rect{
		{X: 0.5, Y: 0.5, Width: 1, Height: 0.8},
		{X: 2.8, Y: 1.6, Width: 0.6, Height: 0.9},
	}

	a := PlanCoverage(4, 3, obstacles, 0.25)
	b := PlanCoverage(4, 3, obstacles, 0.25)
	if !reflect.DeepEqual(a, b) {
		t.Error("identical inputs produced different plans")
	}
}

func TestPlanPathLengthRoundTrip(t *testing.T) {
	obstacles := []Rect{{X: 1, Y: 1, Width: 1, Height: 1}}
	res := PlanCoverage(4, 3, obstacles, 0.2)

	if math.Abs(PathLength(res.Path)-res.PathLength) > 1e-9 {
		t.Errorf("recomputed length %v != reported %v", PathLength(res.Path), res.PathLength)
	}
}

func TestPlanDegenerateWall(t *testing.T) {
	// Too short for even one sweep line: valid output, not an error.
	res := PlanCoverage(4, 0.05, nil, 0.2)

	if len(res.Path) != 0 {
		t.Errorf("expected empty path, got %v", res.Path)
	}
	if res.CoverageArea != 0 || res.PathLength != 0 {
		t.Errorf("expected zero metrics, got coverage=%v length=%v", res.CoverageArea, res.PathLength)
	}
	if res.Efficiency != 0 {
		t.Errorf("expected zero efficiency, got %v", res.Efficiency)
	}
}

func TestPlanAlternatesDirection(t *testing.T) {
	res := PlanCoverage(4, 3, nil, 0.5)

	if len(res.Path) < 8 {
		t.Fatalf("expected a multi-line path, got %d points", len(res.Path))
	}
	// Pass exits must alternate between the right and left wall edges.
	for i, wantX := range []float64{4, 0, 4, 0} {
		got := res.Path[2*i+1].X
		if !approx(got, wantX) {
			t.Errorf("pass %d: expected exit at x=%v, got %v", i, wantX, got)
		}
	}

	var prevY float64
	for i, s := range res.Strips {
		if i > 0 && s.Y <= prevY {
			t.Errorf("strip %d: height %v not above previous %v", i, s.Y, prevY)
		}
		prevY = s.Y
	}
}
