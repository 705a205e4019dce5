package plan

import "math"

// coverageArea sums the painted strips. Overlapping passes are counted
// twice; the extra top sweep line can overlap the line below it, so the
// total may exceed the truly covered area.
func (p Params) coverageArea(strips []Strip) float64 {
	total := 0.0
	for _, s := range strips {
		total += (s.XEnd - s.XStart) * p.ToolWidth
	}
	return total
}

// PathLength returns the total length of the polyline through points, or
// zero for fewer than two points.
func PathLength(points []Point) float64 {
	if len(points) < 2 {
		return 0
	}
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += points[i-1].Distance(points[i])
	}
	return total
}

// CoverageFromPath reconstructs covered area from a bare path, for stored
// trajectories that predate cached metrics. Only horizontal moves count as
// paint strokes, and only when their length is plausible for a single
// stroke: longer moves are travel, shorter ones are jitter.
func CoverageFromPath(points []Point, toolWidth float64) float64 {
	if len(points) < 2 {
		return 0
	}
	total := 0.0
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		if math.Abs(a.Y-b.Y) >= PositionTolerance {
			continue
		}
		d := math.Abs(b.X - a.X)
		if d > PositionTolerance && d < maxPaintDistance {
			total += d * toolWidth
		}
	}
	return total
}

// Efficiency returns covered area over paintable (non-obstacle) area. It is
// zero when nothing is paintable, and can exceed 1.0 when overlapping sweep
// passes over-count coverage.
func Efficiency(wallWidth, wallHeight float64, obstacles []Rect, coverageArea float64) float64 {
	available := wallWidth * wallHeight
	for _, obs := range obstacles {
		available -= obs.Area()
	}
	if available <= 0 {
		return 0
	}
	return coverageArea / available
}
