package plan

import (
	"math"
	"sort"
)

// Strip is a painted horizontal run: the tool covered [XStart, XEnd] at
// height Y in a single pass.
type Strip struct {
	Y      float64 `json:"y"`
	XStart float64 `json:"xStart"`
	XEnd   float64 `json:"xEnd"`
}

// Result is the complete output of one planning run. The path is the
// tool-center trajectory; consecutive points are straight-line moves.
type Result struct {
	Path         []Point `json:"path"`
	Strips       []Strip `json:"strips"`
	CoverageArea float64 `json:"coverageArea"`
	PathLength   float64 `json:"pathLength"`
	Efficiency   float64 `json:"efficiency"`

	// BestEffort is set when at least one blocked move had no safe
	// detour; the path may then pass inside a safety margin.
	BestEffort bool `json:"bestEffort"`
}

// state is the traversal state threaded through the per-line passes.
type state struct {
	dir        int // +1 left to right, -1 right to left
	x          float64
	path       []Point
	strips     []Strip
	bestEffort bool
}

// PlanCoverage plans a coverage path for the given wall and returns the
// path with its metrics. Obstacles must already be validated: within the
// wall and mutually non-overlapping.
func PlanCoverage(wallWidth, wallHeight float64, obstacles []Rect, toolWidth float64) Result {
	return NewParams(wallWidth, wallHeight, obstacles, toolWidth).Plan()
}

// Plan runs the boustrophedon sweep and assembles the final result.
// Planning is a pure function of the params: identical inputs produce
// identical output.
func (p Params) Plan() Result {
	st := state{dir: 1}

	lines := p.SweepLines()
	for i, y := range lines {
		hasNext := i < len(lines)-1
		var nextY float64
		if hasNext {
			nextY = lines[i+1]
		}
		st = p.traverseLine(st, y, nextY, hasNext)
	}

	res := Result{
		Path:         st.path,
		Strips:       st.strips,
		CoverageArea: p.coverageArea(st.strips),
		PathLength:   PathLength(st.path),
		BestEffort:   st.bestEffort,
	}
	res.Efficiency = Efficiency(p.WallWidth, p.WallHeight, p.Obstacles, res.CoverageArea)
	return res
}

// traverseLine paints every free segment of one sweep line, then records
// the transition to the next line and flips the sweep direction. A fully
// blocked line is skipped, but the vertical transition still happens.
func (p Params) traverseLine(st state, y, nextY float64, hasNext bool) state {
	free := p.FreeSegments(y)
	if len(free) == 0 {
		if hasNext {
			st = verticalMove(st, y, nextY)
		}
		st.dir = -st.dir
		return st
	}

	if st.dir == 1 {
		sort.Slice(free, func(i, j int) bool { return free[i].Start < free[j].Start })
	} else {
		sort.Slice(free, func(i, j int) bool { return free[i].End > free[j].End })
	}

	for _, seg := range free {
		entry, exit := seg.Start, seg.End
		if st.dir == -1 {
			entry, exit = seg.End, seg.Start
		}

		// Navigate to the segment entry unless already there.
		if math.Abs(st.x-entry) > PositionTolerance {
			waypoints, outcome := p.Route(st.x, entry, y)
			if outcome == RouteSideStep || outcome == RouteBlocked {
				st.bestEffort = true
			}
			st.path = append(st.path, waypoints...)
			st.x = entry
		}

		if needsEntryPoint(st.path, entry, y) {
			st.path = append(st.path, Point{X: entry, Y: y})
		}

		st.path = append(st.path, Point{X: exit, Y: y})
		st.strips = append(st.strips, Strip{Y: y, XStart: seg.Start, XEnd: seg.End})
		st.x = exit
	}

	if hasNext {
		st = verticalMove(st, y, nextY)
	}
	st.dir = -st.dir
	return st
}

// needsEntryPoint reports whether an explicit waypoint at (x, y) must be
// recorded before painting, i.e. the last path point is not already there.
func needsEntryPoint(path []Point, x, y float64) bool {
	if len(path) == 0 {
		return true
	}
	last := path[len(path)-1]
	return math.Abs(last.X-x) > PositionTolerance || math.Abs(last.Y-y) > PositionTolerance
}

// verticalMove records the transition to the next sweep height at the
// current X, skipping deltas below the position tolerance.
func verticalMove(st state, fromY, toY float64) state {
	if math.Abs(fromY-toY) > PositionTolerance {
		st.path = append(st.path, Point{X: st.x, Y: toY})
	}
	return st
}
