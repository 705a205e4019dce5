package plan

import "math"

// Point is a position on the wall plane, in meters. The origin is the
// bottom-left corner of the wall; Y grows upward.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance returns the Euclidean distance to other.
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Rect is an axis-aligned rectangle anchored at its bottom-left corner.
// It represents an obstacle, or an obstacle grown by a safety margin.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Contains reports whether p lies within the rectangle's closed bounds.
func (r Rect) Contains(p Point) bool {
	return r.X <= p.X && p.X <= r.X+r.Width &&
		r.Y <= p.Y && p.Y <= r.Y+r.Height
}

// IntersectsHorizontalLine reports whether the horizontal span
// [xStart, xEnd] at height y crosses the rectangle. A span that only
// touches an edge does not count as crossing.
func (r Rect) IntersectsHorizontalLine(y, xStart, xEnd float64) bool {
	if y < r.Y || y > r.Y+r.Height {
		return false
	}
	return !(xEnd <= r.X || xStart >= r.X+r.Width)
}

// Area returns width times height.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// Overlaps reports whether two rectangles share interior area. Rectangles
// that only share an edge do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	return !(r.X+r.Width <= other.X || other.X+other.Width <= r.X ||
		r.Y+r.Height <= other.Y || other.Y+other.Height <= r.Y)
}

// expand grows the rectangle by m on all four sides.
func (r Rect) expand(m float64) Rect {
	return Rect{
		X:      r.X - m,
		Y:      r.Y - m,
		Width:  r.Width + 2*m,
		Height: r.Height + 2*m,
	}
}
