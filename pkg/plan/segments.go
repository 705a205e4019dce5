package plan

import "math"

// Interval is a horizontal span [Start, End] on a sweep line.
type Interval struct {
	Start float64
	End   float64
}

// Width returns the span length.
func (iv Interval) Width() float64 {
	return iv.End - iv.Start
}

// FreeSegments returns the traversable spans of the sweep line at height y.
// Starting from the full wall width, each obstacle is processed in input
// order: it is grown by the safety margin (left edge clamped at zero, width
// clamped at the wall width) and carved out of the current spans. A span
// entirely inside the grown obstacle disappears; partial overlaps are
// truncated. Spans narrower than the minimum gap width are dropped because
// the tool cannot pass through them safely.
//
// The result may be empty when obstacles block the whole line.
func (p Params) FreeSegments(y float64) []Interval {
	segments := []Interval{{Start: 0, End: p.WallWidth}}

	for _, obs := range p.Obstacles {
		grown := Rect{
			X:      math.Max(0, obs.X-p.SafetyMargin),
			Y:      obs.Y - p.SafetyMargin,
			Width:  math.Min(p.WallWidth, obs.Width+2*p.SafetyMargin),
			Height: obs.Height + 2*p.SafetyMargin,
		}

		var next []Interval
		for _, seg := range segments {
			if !grown.IntersectsHorizontalLine(y, seg.Start, seg.End) {
				next = append(next, seg)
				continue
			}
			if seg.Start < grown.X {
				next = append(next, Interval{Start: seg.Start, End: math.Min(grown.X, seg.End)})
			}
			if grown.X+grown.Width < seg.End {
				next = append(next, Interval{Start: math.Max(grown.X+grown.Width, seg.Start), End: seg.End})
			}
		}
		segments = next
	}

	var free []Interval
	for _, seg := range segments {
		if seg.Width() >= p.MinGapWidth {
			free = append(free, seg)
		}
	}
	return free
}
